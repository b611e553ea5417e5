package binary

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/wasmlite/wasmlite/wasm"
	"github.com/wasmlite/wasmlite/wasm/leb128"
)

func decodeValueTypes(r io.Reader, num uint32) ([]wasm.ValueType, error) {
	if num == 0 {
		return nil, nil
	}
	buf := make([]wasm.ValueType, num)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: read value types: %v", ErrMalformed, err)
	}

	for _, v := range buf {
		switch v {
		case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64:
		default:
			return nil, fmt.Errorf("%w: invalid value type: %#x", ErrMalformed, v)
		}
	}
	return buf, nil
}

// decodeName reads a length-prefixed UTF-8 name.
func decodeName(r io.Reader) (string, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return "", fmt.Errorf("%w: read size of name: %v", ErrMalformed, err)
	}

	buf := make([]byte, vs)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: read bytes of name: %v", ErrMalformed, err)
	}

	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%w: name must be valid as utf8", ErrMalformed)
	}

	return string(buf), nil
}
