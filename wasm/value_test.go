package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	require.Equal(t, int32(-5), I32(-5).AsI32())
	require.Equal(t, int64(-1<<40), I64(-1<<40).AsI64())
	require.Equal(t, float32(1.5), F32(1.5).AsF32())
	require.Equal(t, 2.25, F64(2.25).AsF64())

	require.Equal(t, "i32(-5)", I32(-5).String())
	require.Equal(t, "i64(7)", I64(7).String())
	require.Equal(t, "f32(1.5)", F32(1.5).String())
	require.Equal(t, "f64(2.25)", F64(2.25).String())
}

func TestZeroValue(t *testing.T) {
	for _, vt := range []ValueType{ValueTypeI32, ValueTypeI64, ValueTypeF32, ValueTypeF64} {
		v := ZeroValue(vt)
		require.Equal(t, vt, v.Type)
		require.Zero(t, v.Raw)
	}
}

func TestHasSameSignature(t *testing.T) {
	require.True(t, HasSameSignature(nil, nil))
	require.True(t, HasSameSignature([]ValueType{ValueTypeI32}, []ValueType{ValueTypeI32}))
	require.False(t, HasSameSignature([]ValueType{ValueTypeI32}, nil))
	require.False(t, HasSameSignature([]ValueType{ValueTypeI32}, []ValueType{ValueTypeI64}))
}
