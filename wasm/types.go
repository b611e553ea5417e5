// Package wasm holds the structural representation of a decoded module and
// the value/instruction model shared by the binary codec and the interpreter.
package wasm

// Index is an offset into one of the module's index spaces, e.g. a type
// index or a position in the combined function table.
type Index = uint32

// ValueType is the binary encoding of a value kind such as i32.
//
// Note: This is a type alias as it is easier to encode and decode in the
// binary format.
type ValueType = byte

const (
	ValueTypeI32 ValueType = 0x7f
	ValueTypeI64 ValueType = 0x7e
	ValueTypeF32 ValueType = 0x7d
	ValueTypeF64 ValueType = 0x7c
)

// ValueTypeName returns the type name of the given ValueType as a string.
// Note that ValueTypeName returns "unknown" for an undefined ValueType.
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	}
	return "unknown"
}

// FunctionType is the ordered parameter and result signature of a function.
// Results holds at most one entry; multi-value is not supported.
type FunctionType struct {
	Params  []ValueType
	Results []ValueType
}

// HasSameSignature returns true if the two value type sequences are equal.
func HasSameSignature(a []ValueType, b []ValueType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ImportKind indicates which import description is present.
type ImportKind = byte

// ImportKindFunc is the only import description this engine understands.
// Any other discriminant byte fails decoding.
const ImportKindFunc ImportKind = 0x00

// ExportKind indicates what Export.Index points to.
type ExportKind = byte

// ExportKindFunc is the only export description this engine understands.
const ExportKindFunc ExportKind = 0x00
