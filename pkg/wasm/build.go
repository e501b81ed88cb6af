//go:build js && wasm

package wasm

import "syscall/js"

// Main is an alternative entry point for embedders that want an async
// ready handshake instead of the synchronous Initialize: it registers
// onSigmaModuleReady, calls the optional ready callback once bindings are
// installed, then resolves the sigmaModuleReady promise the host page is
// expected to expose.
func Main() {
	js.Global().Set("onSigmaModuleReady", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		Initialize()
		if len(args) > 0 && !args[0].IsUndefined() && args[0].Type() == js.TypeFunction {
			args[0].Invoke()
		}
		return nil
	}))
	js.Global().Call("sigmaModuleReady")
	select {}
}
