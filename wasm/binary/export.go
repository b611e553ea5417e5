package binary

import (
	"fmt"
	"io"

	"github.com/wasmlite/wasmlite/wasm"
	"github.com/wasmlite/wasmlite/wasm/leb128"
)

func decodeExport(r io.Reader) (e *wasm.Export, err error) {
	e = &wasm.Export{}

	if e.Name, err = decodeName(r); err != nil {
		return nil, fmt.Errorf("export name: %w", err)
	}

	b := make([]byte, 1)
	if _, err = io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("%w: read export kind: %v", ErrMalformed, err)
	}

	e.Kind = b[0]
	switch e.Kind {
	case wasm.ExportKindFunc:
		if e.Index, _, err = leb128.DecodeUint32(r); err != nil {
			return nil, fmt.Errorf("%w: read export index: %v", ErrMalformed, err)
		}
	default:
		return nil, fmt.Errorf("%w: export kind %#x", ErrUnsupported, b[0])
	}
	return
}
