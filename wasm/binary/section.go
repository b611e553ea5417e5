package binary

import (
	"fmt"
	"io"

	"github.com/wasmlite/wasmlite/wasm"
	"github.com/wasmlite/wasmlite/wasm/leb128"
)

func decodeTypeSection(r io.Reader) ([]*wasm.FunctionType, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: get size of vector: %v", ErrMalformed, err)
	}

	result := make([]*wasm.FunctionType, vs)
	for i := uint32(0); i < vs; i++ {
		if result[i], err = decodeFunctionType(r); err != nil {
			return nil, fmt.Errorf("read %d-th type: %w", i, err)
		}
	}
	return result, nil
}

func decodeFunctionType(r io.Reader) (*wasm.FunctionType, error) {
	s, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read parameter count: %v", ErrMalformed, err)
	}

	paramTypes, err := decodeValueTypes(r, s)
	if err != nil {
		return nil, fmt.Errorf("could not read parameter types: %w", err)
	}

	s, _, err = leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read result count: %v", ErrMalformed, err)
	} else if s > 1 {
		return nil, fmt.Errorf("%w: multi value results", ErrUnsupported)
	}

	resultTypes, err := decodeValueTypes(r, s)
	if err != nil {
		return nil, fmt.Errorf("could not read result types: %w", err)
	}

	return &wasm.FunctionType{
		Params:  paramTypes,
		Results: resultTypes,
	}, nil
}

func decodeImportSection(r io.Reader) ([]*wasm.Import, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: get size of vector: %v", ErrMalformed, err)
	}

	result := make([]*wasm.Import, vs)
	for i := uint32(0); i < vs; i++ {
		if result[i], err = decodeImport(r); err != nil {
			return nil, fmt.Errorf("read %d-th import: %w", i, err)
		}
	}
	return result, nil
}

func decodeFunctionSection(r io.Reader) ([]wasm.Index, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: get size of vector: %v", ErrMalformed, err)
	}

	result := make([]wasm.Index, vs)
	for i := uint32(0); i < vs; i++ {
		if result[i], _, err = leb128.DecodeUint32(r); err != nil {
			return nil, fmt.Errorf("%w: get type index: %v", ErrMalformed, err)
		}
	}
	return result, nil
}

func decodeExportSection(r io.Reader) ([]*wasm.Export, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: get size of vector: %v", ErrMalformed, err)
	}

	names := make(map[string]struct{}, vs)
	result := make([]*wasm.Export, vs)
	for i := uint32(0); i < vs; i++ {
		export, err := decodeExport(r)
		if err != nil {
			return nil, fmt.Errorf("read %d-th export: %w", i, err)
		}
		if _, ok := names[export.Name]; ok {
			return nil, fmt.Errorf("%w: export[%d] duplicates name %q", ErrMalformed, i, export.Name)
		}
		names[export.Name] = struct{}{}
		result[i] = export
	}
	return result, nil
}

func decodeCodeSection(r io.Reader) ([]*wasm.Code, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: get size of vector: %v", ErrMalformed, err)
	}

	result := make([]*wasm.Code, vs)
	for i := uint32(0); i < vs; i++ {
		if result[i], err = decodeCode(r); err != nil {
			return nil, fmt.Errorf("read %d-th code segment: %w", i, err)
		}
	}
	return result, nil
}
