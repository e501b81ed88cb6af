// Package group wraps github.com/gtank/ristretto255 behind the fixed
// contract the sigma engine needs: scalar arithmetic modulo the Ristretto255
// group order, point addition and scalar multiplication, canonical 32-byte
// encoding and decoding, uniform scalar sampling, and constant-time
// equality.
//
// This package is the one external collaborator the core engine depends on
// (spec section 4.1). It deliberately exposes nothing beyond what the
// engine requires — no hash-to-curve, no batch operations, no alternate
// groups. A later port to a different prime-order group would replace this
// package's internals without touching pkg/relation or pkg/sigma.
package group
