package interp

import (
	"fmt"

	"github.com/wasmlite/wasmlite/wasm"
)

// functionInstance is a closed variant: internalFunction carries code,
// externalFunction delegates to a registered host function. The
// interpreter dispatches over the two exhaustively.
type functionInstance interface {
	functionType() *wasm.FunctionType
}

// internalFunction is a module-defined function.
type internalFunction struct {
	typ        *wasm.FunctionType
	localTypes []wasm.ValueType
	body       []wasm.Instruction
}

// externalFunction stands in for a host function imported under
// (module, name). Resolution against the import registry happens at call
// time, not at build time, so imports may be registered after
// instantiation.
type externalFunction struct {
	typ    *wasm.FunctionType
	module string
	name   string
}

func (f *internalFunction) functionType() *wasm.FunctionType { return f.typ }
func (f *externalFunction) functionType() *wasm.FunctionType { return f.typ }

// Store is the read-only-in-shape result of instantiating a Module: a
// flat, index-stable function table and the export name table. Imported
// functions occupy [0, nImports) in declaration order and module-defined
// functions follow, index-aligned with the function section. A Call
// instruction's operand always indexes this combined table.
type Store struct {
	functions []functionInstance
	exports   map[string]wasm.Index
}

func newStore(m *wasm.Module) (*Store, error) {
	if len(m.FunctionSection) != len(m.CodeSection) {
		return nil, fmt.Errorf("function and code section have inconsistent lengths: %d != %d",
			len(m.FunctionSection), len(m.CodeSection))
	}

	s := &Store{exports: map[string]wasm.Index{}}

	// Imports first. The import/internal split of the index space depends
	// on this ordering, so it must not be interleaved with the loop below.
	for i, imp := range m.ImportSection {
		t, err := resolveFunctionType(m, imp.DescFunc)
		if err != nil {
			return nil, fmt.Errorf("import[%d] %s.%s: %w", i, imp.Module, imp.Name, err)
		}
		s.functions = append(s.functions, &externalFunction{typ: t, module: imp.Module, name: imp.Name})
	}

	for i, typeIndex := range m.FunctionSection {
		t, err := resolveFunctionType(m, typeIndex)
		if err != nil {
			return nil, fmt.Errorf("function[%d]: %w", i, err)
		}
		code := m.CodeSection[i]
		s.functions = append(s.functions, &internalFunction{
			typ:        t,
			localTypes: code.LocalTypes,
			body:       code.Body,
		})
	}

	for _, exp := range m.ExportSection {
		if int(exp.Index) >= len(s.functions) {
			return nil, fmt.Errorf("export %q: %w: %d", exp.Name, ErrExportIndexOutOfRange, exp.Index)
		}
		s.exports[exp.Name] = exp.Index
	}
	return s, nil
}

func resolveFunctionType(m *wasm.Module, index wasm.Index) (*wasm.FunctionType, error) {
	if m.TypeSection == nil {
		return nil, ErrMissingTypeSection
	}
	if int(index) >= len(m.TypeSection) {
		return nil, fmt.Errorf("%w: %d", ErrTypeIndexOutOfRange, index)
	}
	return m.TypeSection[index], nil
}

// NumFunctions returns the size of the combined function table.
func (s *Store) NumFunctions() int {
	return len(s.functions)
}

// ExportIndex returns the function table index an export name resolves to.
func (s *Store) ExportIndex(name string) (wasm.Index, bool) {
	index, ok := s.exports[name]
	return index, ok
}

// FunctionTypeOf returns the signature of the function at the given table
// index, or false if the index is out of range.
func (s *Store) FunctionTypeOf(index wasm.Index) (*wasm.FunctionType, bool) {
	if int(index) >= len(s.functions) {
		return nil, false
	}
	return s.functions[index].functionType(), true
}
