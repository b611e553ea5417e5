package binary

import (
	"fmt"
	"io"

	"github.com/wasmlite/wasmlite/wasm"
	"github.com/wasmlite/wasmlite/wasm/leb128"
)

func decodeImport(r io.Reader) (i *wasm.Import, err error) {
	i = &wasm.Import{}
	if i.Module, err = decodeName(r); err != nil {
		return nil, fmt.Errorf("import module: %w", err)
	}

	if i.Name, err = decodeName(r); err != nil {
		return nil, fmt.Errorf("import name: %w", err)
	}

	b := make([]byte, 1)
	if _, err = io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("%w: read import kind: %v", ErrMalformed, err)
	}

	i.Kind = b[0]
	switch i.Kind {
	case wasm.ImportKindFunc:
		if i.DescFunc, _, err = leb128.DecodeUint32(r); err != nil {
			return nil, fmt.Errorf("%w: read import func type index: %v", ErrMalformed, err)
		}
	default:
		return nil, fmt.Errorf("%w: import kind %#x", ErrUnsupported, b[0])
	}
	return
}
