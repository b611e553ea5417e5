package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmlite/wasmlite/wasm"
)

func TestNewStore(t *testing.T) {
	i32 := wasm.ValueTypeI32
	m := &wasm.Module{
		TypeSection: []*wasm.FunctionType{
			{Params: []wasm.ValueType{i32, i32}, Results: []wasm.ValueType{i32}},
			{Params: []wasm.ValueType{i32}, Results: []wasm.ValueType{i32}},
		},
		ImportSection: []*wasm.Import{
			{Module: "env", Name: "add", Kind: wasm.ImportKindFunc, DescFunc: 0},
			{Module: "env", Name: "mul", Kind: wasm.ImportKindFunc, DescFunc: 0},
		},
		FunctionSection: []wasm.Index{1},
		CodeSection: []*wasm.Code{
			{Body: []wasm.Instruction{wasm.LocalGet{Index: 0}, wasm.End{}}},
		},
		ExportSection: []*wasm.Export{
			{Name: "identity", Kind: wasm.ExportKindFunc, Index: 2},
			{Name: "add", Kind: wasm.ExportKindFunc, Index: 0},
		},
	}

	s, err := newStore(m)
	require.NoError(t, err)

	// Imports occupy the low indexes in declaration order, module-defined
	// functions follow.
	require.Equal(t, 3, s.NumFunctions())
	require.IsType(t, &externalFunction{}, s.functions[0])
	require.IsType(t, &externalFunction{}, s.functions[1])
	require.IsType(t, &internalFunction{}, s.functions[2])

	ext := s.functions[1].(*externalFunction)
	require.Equal(t, "env", ext.module)
	require.Equal(t, "mul", ext.name)
	require.Equal(t, m.TypeSection[0], ext.functionType())

	in := s.functions[2].(*internalFunction)
	require.Equal(t, m.TypeSection[1], in.functionType())
	require.Equal(t, m.CodeSection[0].Body, in.body)

	index, ok := s.ExportIndex("identity")
	require.True(t, ok)
	require.Equal(t, wasm.Index(2), index)

	index, ok = s.ExportIndex("add")
	require.True(t, ok)
	require.Equal(t, wasm.Index(0), index)

	_, ok = s.ExportIndex("missing")
	require.False(t, ok)

	ft, ok := s.FunctionTypeOf(2)
	require.True(t, ok)
	require.Equal(t, m.TypeSection[1], ft)

	_, ok = s.FunctionTypeOf(3)
	require.False(t, ok)
}

func TestNewStore_Errors(t *testing.T) {
	i32 := wasm.ValueTypeI32

	tests := []struct {
		name        string
		input       *wasm.Module
		expectedErr error
	}{
		{
			name: "import without type section",
			input: &wasm.Module{
				ImportSection: []*wasm.Import{
					{Module: "env", Name: "add", Kind: wasm.ImportKindFunc, DescFunc: 0},
				},
			},
			expectedErr: ErrMissingTypeSection,
		},
		{
			name: "function without type section",
			input: &wasm.Module{
				FunctionSection: []wasm.Index{0},
				CodeSection:     []*wasm.Code{{Body: []wasm.Instruction{wasm.End{}}}},
			},
			expectedErr: ErrMissingTypeSection,
		},
		{
			name: "import type index out of range",
			input: &wasm.Module{
				TypeSection: []*wasm.FunctionType{{}},
				ImportSection: []*wasm.Import{
					{Module: "env", Name: "add", Kind: wasm.ImportKindFunc, DescFunc: 1},
				},
			},
			expectedErr: ErrTypeIndexOutOfRange,
		},
		{
			name: "function type index out of range",
			input: &wasm.Module{
				TypeSection:     []*wasm.FunctionType{{Results: []wasm.ValueType{i32}}},
				FunctionSection: []wasm.Index{2},
				CodeSection:     []*wasm.Code{{Body: []wasm.Instruction{wasm.End{}}}},
			},
			expectedErr: ErrTypeIndexOutOfRange,
		},
		{
			name: "export index out of range",
			input: &wasm.Module{
				TypeSection:     []*wasm.FunctionType{{}},
				FunctionSection: []wasm.Index{0},
				CodeSection:     []*wasm.Code{{Body: []wasm.Instruction{wasm.End{}}}},
				ExportSection: []*wasm.Export{
					{Name: "f", Kind: wasm.ExportKindFunc, Index: 1},
				},
			},
			expectedErr: ErrExportIndexOutOfRange,
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			_, err := newStore(tc.input)
			require.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestNewStore_FunctionCodeMismatch(t *testing.T) {
	_, err := newStore(&wasm.Module{
		TypeSection:     []*wasm.FunctionType{{}},
		FunctionSection: []wasm.Index{0, 0},
		CodeSection:     []*wasm.Code{{Body: []wasm.Instruction{wasm.End{}}}},
	})
	require.ErrorContains(t, err, "inconsistent lengths")
}
