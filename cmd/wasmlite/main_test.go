package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmlite/wasmlite/wasm"
	"github.com/wasmlite/wasmlite/wasm/binary"
)

func writeModule(t *testing.T, m *wasm.Module) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "module.wasm")
	require.NoError(t, os.WriteFile(path, binary.EncodeModule(m), 0o600))
	return path
}

func TestRootCmd(t *testing.T) {
	i32 := wasm.ValueTypeI32
	path := writeModule(t, &wasm.Module{
		TypeSection: []*wasm.FunctionType{
			{Params: []wasm.ValueType{i32, i32}, Results: []wasm.ValueType{i32}},
		},
		FunctionSection: []wasm.Index{0},
		CodeSection: []*wasm.Code{
			{Body: []wasm.Instruction{
				wasm.LocalGet{Index: 0},
				wasm.LocalGet{Index: 1},
				wasm.I32Mul{},
				wasm.End{},
			}},
		},
		ExportSection: []*wasm.Export{
			{Name: "mul", Kind: wasm.ExportKindFunc, Index: 0},
		},
	})

	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"run", path, "--invoke", "mul", "--arg", "6", "--arg", "7"})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "i32(42)\n", out.String())
}

// TestRootCmd_StubImports runs a module whose import is not registered by
// the embedder; --stub-imports substitutes a zero-returning stub.
func TestRootCmd_StubImports(t *testing.T) {
	i32 := wasm.ValueTypeI32
	path := writeModule(t, &wasm.Module{
		TypeSection: []*wasm.FunctionType{
			{Params: []wasm.ValueType{i32}, Results: []wasm.ValueType{i32}},
		},
		ImportSection: []*wasm.Import{
			{Module: "env", Name: "add", Kind: wasm.ImportKindFunc, DescFunc: 0},
		},
		FunctionSection: []wasm.Index{0},
		CodeSection: []*wasm.Code{
			{Body: []wasm.Instruction{
				wasm.LocalGet{Index: 0},
				wasm.Call{Index: 0},
				wasm.End{},
			}},
		},
		ExportSection: []*wasm.Export{
			{Name: "call_add", Kind: wasm.ExportKindFunc, Index: 1},
		},
	})

	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"run", path, "--invoke", "call_add", "--arg", "9", "--stub-imports"})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "i32(0)\n", out.String())
}

func TestRootCmd_Errors(t *testing.T) {
	path := writeModule(t, &wasm.Module{})

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "missing module file",
			args: []string{"run", filepath.Join(t.TempDir(), "nope.wasm"), "--invoke", "f"},
		},
		{
			name: "export not found",
			args: []string{"run", path, "--invoke", "f"},
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetOut(new(bytes.Buffer))
			cmd.SetErr(new(bytes.Buffer))
			cmd.SetArgs(tc.args)
			require.Error(t, cmd.Execute())
		})
	}
}
