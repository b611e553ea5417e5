// Package wasmlite is a minimal WebAssembly execution engine: it decodes
// a module binary into structured sections and interprets exported
// functions, dispatching transparently to module-defined or
// embedder-registered host functions.
//
// Ex.
//
//	rt, _ := wasmlite.Instantiate(moduleBytes)
//	_ = rt.AddImport("env", "add", func(_ *interp.Store, args []wasm.Value) (*wasm.Value, error) {
//		v := wasm.I32(args[0].AsI32() * 2)
//		return &v, nil
//	})
//	result, _ := rt.Call("call_add", wasm.I32(5))
package wasmlite

import (
	"github.com/wasmlite/wasmlite/interp"
	"github.com/wasmlite/wasmlite/wasm/binary"
)

// Instantiate decodes a module binary and prepares it for execution.
// Decode and resolution failures abort instantiation entirely; no
// partially-built Runtime is returned.
func Instantiate(moduleBytes []byte, opts ...interp.Option) (*interp.Runtime, error) {
	m, err := binary.DecodeModule(moduleBytes)
	if err != nil {
		return nil, err
	}
	return interp.NewRuntime(m, opts...)
}
