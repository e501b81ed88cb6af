// Package wasm provides the WebAssembly bindings for the sigma proof
// library: a JS-friendly wrapper around pkg/schnorr, pkg/dleq, and
// pkg/pedersen that marshals hex-encoded scalars, points and proofs (and
// plain-string messages) in and JS objects out.
//
// The bindings are built only under GOOS=js GOARCH=wasm; on other platforms
// the package holds just MaxMessageSize. The wasm/ command directory
// is the actual WebAssembly entry point and delegates to Initialize here,
// so the binding logic has exactly one implementation whether it is
// reached from a cmd-level wasm build or embedded in a larger program.
//
// JavaScript example usage:
//
//	const keyPair = Sigma.generateKeyPair();
//	const proof = Sigma.proveSchnorr(keyPair.privateKey, "hello");
//	const ok = Sigma.verifySchnorr(keyPair.publicKey, "hello", proof.proof);
package wasm

// MaxMessageSize bounds the message argument accepted by the proving
// functions, guarding against pathologically large JS strings being
// copied into the Go heap.
const MaxMessageSize = 1 * 1024 * 1024
