package interp

import (
	"fmt"

	"github.com/wasmlite/wasmlite/wasm"
)

// HostFunc is a function implemented by the embedder. It receives mutable
// access to the Store and the arguments popped from the operand stack, in
// call order, and returns an optional result. A HostFunc may close over
// its own state; that state survives across invocations until the slot it
// occupies is re-registered.
type HostFunc func(store *Store, args []wasm.Value) (*wasm.Value, error)

// importRegistry maps (module, name) to the host function an external
// function instance delegates to. Registering under an occupied key
// replaces the slot wholesale, dropping the previous callable and any
// state it captured.
type importRegistry struct {
	modules map[string]map[string]HostFunc
}

func newImportRegistry() *importRegistry {
	return &importRegistry{modules: map[string]map[string]HostFunc{}}
}

func (r *importRegistry) register(module, name string, fn HostFunc) {
	m, ok := r.modules[module]
	if !ok {
		m = map[string]HostFunc{}
		r.modules[module] = m
	}
	m[name] = fn
}

// resolve distinguishes a missing module from a missing function within a
// known module so misconfiguration is diagnosable.
func (r *importRegistry) resolve(module, name string) (HostFunc, error) {
	m, ok := r.modules[module]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrImportModuleNotFound, module)
	}
	fn, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in module %q", ErrImportFunctionNotFound, name, module)
	}
	return fn, nil
}
