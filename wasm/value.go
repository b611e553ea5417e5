package wasm

import (
	"fmt"
	"math"
)

// Value is one operand-stack or local slot: a value kind plus its raw bits.
// All kinds are carried in a uint64, encoded the same way for each kind so
// that copies are cheap and kind-polymorphic code stays branch-free.
type Value struct {
	Type ValueType
	Raw  uint64
}

// I32 wraps a signed 32-bit integer as a Value.
func I32(v int32) Value {
	return Value{Type: ValueTypeI32, Raw: uint64(uint32(v))}
}

// I64 wraps a signed 64-bit integer as a Value.
func I64(v int64) Value {
	return Value{Type: ValueTypeI64, Raw: uint64(v)}
}

// F32 wraps a float32 as a Value using its IEEE 754 bits.
func F32(v float32) Value {
	return Value{Type: ValueTypeF32, Raw: uint64(math.Float32bits(v))}
}

// F64 wraps a float64 as a Value using its IEEE 754 bits.
func F64(v float64) Value {
	return Value{Type: ValueTypeF64, Raw: math.Float64bits(v)}
}

// ZeroValue returns the zero of the given kind, used to initialize the
// declared locals of a function frame.
func ZeroValue(t ValueType) Value {
	return Value{Type: t}
}

// AsI32 returns the value interpreted as a signed 32-bit integer.
func (v Value) AsI32() int32 {
	return int32(uint32(v.Raw))
}

// AsI64 returns the value interpreted as a signed 64-bit integer.
func (v Value) AsI64() int64 {
	return int64(v.Raw)
}

// AsF32 returns the value interpreted as a float32.
func (v Value) AsF32() float32 {
	return math.Float32frombits(uint32(v.Raw))
}

// AsF64 returns the value interpreted as a float64.
func (v Value) AsF64() float64 {
	return math.Float64frombits(v.Raw)
}

func (v Value) String() string {
	switch v.Type {
	case ValueTypeI32:
		return fmt.Sprintf("i32(%d)", v.AsI32())
	case ValueTypeI64:
		return fmt.Sprintf("i64(%d)", v.AsI64())
	case ValueTypeF32:
		return fmt.Sprintf("f32(%g)", v.AsF32())
	case ValueTypeF64:
		return fmt.Sprintf("f64(%g)", v.AsF64())
	}
	return fmt.Sprintf("unknown(%#x)", v.Raw)
}
