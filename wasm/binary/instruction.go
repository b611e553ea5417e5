package binary

import (
	"fmt"
	"io"

	"github.com/wasmlite/wasmlite/wasm"
	"github.com/wasmlite/wasmlite/wasm/leb128"
)

// decodeInstructions reads the instruction stream up to and including the
// End opcode that terminates a function body.
func decodeInstructions(r io.Reader) ([]wasm.Instruction, error) {
	var body []wasm.Instruction
	b := make([]byte, 1)
	for {
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, fmt.Errorf("%w: read opcode: %v", ErrMalformed, err)
		}

		switch op := b[0]; op {
		case wasm.OpcodeEnd:
			return append(body, wasm.End{}), nil
		case wasm.OpcodeNop:
			body = append(body, wasm.Nop{})
		case wasm.OpcodeDrop:
			body = append(body, wasm.Drop{})
		case wasm.OpcodeCall:
			index, _, err := leb128.DecodeUint32(r)
			if err != nil {
				return nil, fmt.Errorf("%w: read immediate of %s: %v", ErrMalformed, wasm.OpcodeName(op), err)
			}
			body = append(body, wasm.Call{Index: index})
		case wasm.OpcodeLocalGet:
			index, _, err := leb128.DecodeUint32(r)
			if err != nil {
				return nil, fmt.Errorf("%w: read immediate of %s: %v", ErrMalformed, wasm.OpcodeName(op), err)
			}
			body = append(body, wasm.LocalGet{Index: index})
		case wasm.OpcodeLocalSet:
			index, _, err := leb128.DecodeUint32(r)
			if err != nil {
				return nil, fmt.Errorf("%w: read immediate of %s: %v", ErrMalformed, wasm.OpcodeName(op), err)
			}
			body = append(body, wasm.LocalSet{Index: index})
		case wasm.OpcodeI32Const:
			v, _, err := leb128.DecodeInt32(r)
			if err != nil {
				return nil, fmt.Errorf("%w: read immediate of %s: %v", ErrMalformed, wasm.OpcodeName(op), err)
			}
			body = append(body, wasm.I32Const{Value: v})
		case wasm.OpcodeI32Add:
			body = append(body, wasm.I32Add{})
		case wasm.OpcodeI32Sub:
			body = append(body, wasm.I32Sub{})
		case wasm.OpcodeI32Mul:
			body = append(body, wasm.I32Mul{})
		default:
			return nil, fmt.Errorf("%w: opcode %#x", ErrUnsupported, op)
		}
	}
}

func encodeInstruction(instr wasm.Instruction) []byte {
	switch i := instr.(type) {
	case wasm.Call:
		return append([]byte{wasm.OpcodeCall}, leb128.EncodeUint32(i.Index)...)
	case wasm.LocalGet:
		return append([]byte{wasm.OpcodeLocalGet}, leb128.EncodeUint32(i.Index)...)
	case wasm.LocalSet:
		return append([]byte{wasm.OpcodeLocalSet}, leb128.EncodeUint32(i.Index)...)
	case wasm.I32Const:
		return append([]byte{wasm.OpcodeI32Const}, leb128.EncodeInt32(i.Value)...)
	default:
		return []byte{instr.Opcode()}
	}
}
