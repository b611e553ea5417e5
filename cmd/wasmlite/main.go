// Command wasmlite decodes a module binary and invokes one of its
// exported functions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wasmlite/wasmlite/interp"
	"github.com/wasmlite/wasmlite/wasm"
	"github.com/wasmlite/wasmlite/wasm/binary"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "wasmlite",
		Short:         "wasmlite runs module binaries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newRunCmd())
	return cmd
}

func newRunCmd() *cobra.Command {
	var (
		invoke      string
		funcArgs    []int32
		stubImports bool
		debug       bool
	)

	cmd := &cobra.Command{
		Use:   "run <module.wasm>",
		Short: "Invoke an exported function from a module binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if debug {
				var err error
				if logger, err = zap.NewDevelopment(); err != nil {
					return err
				}
				defer logger.Sync() //nolint:errcheck
			}

			moduleBytes, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read module: %w", err)
			}

			m, err := binary.DecodeModule(moduleBytes)
			if err != nil {
				return fmt.Errorf("decode module: %w", err)
			}

			rt, err := interp.NewRuntime(m, interp.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("instantiate module: %w", err)
			}

			if stubImports {
				if err := registerStubs(rt, m, logger); err != nil {
					return err
				}
			}

			values := make([]wasm.Value, len(funcArgs))
			for i, a := range funcArgs {
				values[i] = wasm.I32(a)
			}

			result, err := rt.Call(invoke, values...)
			if err != nil {
				return fmt.Errorf("call %q: %w", invoke, err)
			}
			if result != nil {
				fmt.Fprintln(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&invoke, "invoke", "", "name of the exported function to call")
	cmd.Flags().Int32SliceVar(&funcArgs, "arg", nil, "i32 argument to pass, repeatable")
	cmd.Flags().BoolVar(&stubImports, "stub-imports", false,
		"register a logging stub for every declared import")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable instruction tracing")
	_ = cmd.MarkFlagRequired("invoke")
	return cmd
}

// registerStubs registers a host function for every declared import that
// logs its arguments and returns the zero value of its declared result
// kind, so modules with imports can be exercised standalone.
func registerStubs(rt *interp.Runtime, m *wasm.Module, logger *zap.Logger) error {
	for _, imp := range m.ImportSection {
		// NewRuntime already resolved every DescFunc, so indexing is safe.
		t := m.TypeSection[imp.DescFunc]
		module, name, results := imp.Module, imp.Name, t.Results
		fn := func(_ *interp.Store, args []wasm.Value) (*wasm.Value, error) {
			logger.Info("stubbed import called",
				zap.String("module", module),
				zap.String("name", name),
				zap.Stringers("args", args))
			if len(results) == 1 {
				v := wasm.ZeroValue(results[0])
				return &v, nil
			}
			return nil, nil
		}
		if err := rt.AddImport(module, name, fn); err != nil {
			return err
		}
	}
	return nil
}
