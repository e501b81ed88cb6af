//go:build js && wasm

// Package main is the WebAssembly build entry point. The actual binding
// logic lives in pkg/wasm so it can be reused outside a standalone build.
package main

import sigmawasm "github.com/anupsv/sigmaproofs/pkg/wasm"

// Initialize installs the Sigma global object.
func Initialize() {
	sigmawasm.Initialize()
}
