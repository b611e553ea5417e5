package wasm

// Opcode is the one-byte encoding of an instruction.
type Opcode = byte

const (
	OpcodeNop      Opcode = 0x01
	OpcodeEnd      Opcode = 0x0b
	OpcodeCall     Opcode = 0x10
	OpcodeDrop     Opcode = 0x1a
	OpcodeLocalGet Opcode = 0x20
	OpcodeLocalSet Opcode = 0x21
	OpcodeI32Const Opcode = 0x41
	OpcodeI32Add   Opcode = 0x6a
	OpcodeI32Sub   Opcode = 0x6b
	OpcodeI32Mul   Opcode = 0x6c
)

// OpcodeName returns the text-format mnemonic of the opcode, or "unknown".
func OpcodeName(op Opcode) string {
	switch op {
	case OpcodeNop:
		return "nop"
	case OpcodeEnd:
		return "end"
	case OpcodeCall:
		return "call"
	case OpcodeDrop:
		return "drop"
	case OpcodeLocalGet:
		return "local.get"
	case OpcodeLocalSet:
		return "local.set"
	case OpcodeI32Const:
		return "i32.const"
	case OpcodeI32Add:
		return "i32.add"
	case OpcodeI32Sub:
		return "i32.sub"
	case OpcodeI32Mul:
		return "i32.mul"
	}
	return "unknown"
}

// Instruction is a closed variant: the concrete types below are the entire
// set, and the interpreter dispatches over them exhaustively. Adding an
// opcode means adding a type here, a decode/encode arm in the binary
// package, and a dispatch arm in the interpreter.
type Instruction interface {
	// Opcode returns the binary encoding of this instruction.
	Opcode() Opcode

	// instruction keeps the variant closed to this package.
	instruction()
}

// Nop does nothing.
type Nop struct{}

// End terminates a function body. The interpreter pops the current frame,
// truncates the operand stack to the frame's base and re-pushes the single
// result when the function's arity is one.
type End struct{}

// Call invokes the function at Index in the combined function table:
// imported functions first, then module-defined ones.
type Call struct{ Index Index }

// Drop discards the top operand.
type Drop struct{}

// LocalGet pushes a copy of the current frame's local at Index.
type LocalGet struct{ Index Index }

// LocalSet pops the top operand into the current frame's local at Index.
type LocalSet struct{ Index Index }

// I32Const pushes a constant i32.
type I32Const struct{ Value int32 }

// I32Add pops the right then the left operand and pushes left+right.
type I32Add struct{}

// I32Sub pops the right then the left operand and pushes left-right.
type I32Sub struct{}

// I32Mul pops the right then the left operand and pushes left*right.
type I32Mul struct{}

func (Nop) Opcode() Opcode      { return OpcodeNop }
func (End) Opcode() Opcode      { return OpcodeEnd }
func (Call) Opcode() Opcode     { return OpcodeCall }
func (Drop) Opcode() Opcode     { return OpcodeDrop }
func (LocalGet) Opcode() Opcode { return OpcodeLocalGet }
func (LocalSet) Opcode() Opcode { return OpcodeLocalSet }
func (I32Const) Opcode() Opcode { return OpcodeI32Const }
func (I32Add) Opcode() Opcode   { return OpcodeI32Add }
func (I32Sub) Opcode() Opcode   { return OpcodeI32Sub }
func (I32Mul) Opcode() Opcode   { return OpcodeI32Mul }

func (Nop) instruction()      {}
func (End) instruction()      {}
func (Call) instruction()     {}
func (Drop) instruction()     {}
func (LocalGet) instruction() {}
func (LocalSet) instruction() {}
func (I32Const) instruction() {}
func (I32Add) instruction()   {}
func (I32Sub) instruction()   {}
func (I32Mul) instruction()   {}
