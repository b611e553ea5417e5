package binary

import (
	"fmt"
	"io"
	"math"

	"github.com/wasmlite/wasmlite/wasm"
	"github.com/wasmlite/wasmlite/wasm/leb128"
)

func decodeCode(r io.Reader) (*wasm.Code, error) {
	ss, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: get the size of code: %v", ErrMalformed, err)
	}

	lr := &io.LimitedReader{R: r, N: int64(ss)}

	// Local declarations come as groups of (count, kind) which expand to a
	// flat per-local sequence.
	ls, _, err := leb128.DecodeUint32(lr)
	if err != nil {
		return nil, fmt.Errorf("%w: get the size of locals: %v", ErrMalformed, err)
	}

	var localTypes []wasm.ValueType
	var sum uint64
	b := make([]byte, 1)
	for i := uint32(0); i < ls; i++ {
		n, _, err := leb128.DecodeUint32(lr)
		if err != nil {
			return nil, fmt.Errorf("%w: read n of locals: %v", ErrMalformed, err)
		}
		sum += uint64(n)
		if sum > math.MaxUint32 {
			return nil, fmt.Errorf("%w: too many locals: %d", ErrMalformed, sum)
		}

		if _, err = io.ReadFull(lr, b); err != nil {
			return nil, fmt.Errorf("%w: read type of local: %v", ErrMalformed, err)
		}
		switch vt := wasm.ValueType(b[0]); vt {
		case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64:
			for j := uint32(0); j < n; j++ {
				localTypes = append(localTypes, vt)
			}
		default:
			return nil, fmt.Errorf("%w: invalid local type: %#x", ErrMalformed, vt)
		}
	}

	body, err := decodeInstructions(lr)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if lr.N != 0 {
		return nil, fmt.Errorf("%w: %d bytes remain after the body's end", ErrMalformed, lr.N)
	}

	return &wasm.Code{
		LocalTypes: localTypes,
		Body:       body,
	}, nil
}
