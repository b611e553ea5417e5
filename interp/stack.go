package interp

import "github.com/wasmlite/wasmlite/wasm"

const (
	initialOperandStackHeight = 1024
	initialFrameStackHeight   = 64
)

// operandStack is the single evaluation stack shared by all active
// frames. sp indexes the top entry; -1 means empty.
type operandStack struct {
	stack []wasm.Value
	sp    int
}

func newOperandStack() *operandStack {
	return &operandStack{
		stack: make([]wasm.Value, initialOperandStackHeight),
		sp:    -1,
	}
}

func (s *operandStack) depth() int {
	return s.sp + 1
}

func (s *operandStack) push(val wasm.Value) {
	if s.sp+1 == len(s.stack) {
		// grow stack
		s.stack = append(s.stack, val)
	} else {
		s.stack[s.sp+1] = val
	}
	s.sp++
}

func (s *operandStack) pop() wasm.Value {
	if s.sp < 0 {
		panic(ErrStackInvariant)
	}
	ret := s.stack[s.sp]
	s.sp--
	return ret
}

// frame is the per-invocation state of one active internal function.
// Host invocations never create a frame.
type frame struct {
	pc     int
	base   int // operand stack depth when the frame was entered
	arity  int
	locals []wasm.Value
	f      *internalFunction
}

// frameStack is the call stack: one entry per suspended or active
// internal function invocation.
type frameStack struct {
	stack []*frame
	sp    int
	limit int
}

func newFrameStack(limit int) *frameStack {
	return &frameStack{
		stack: make([]*frame, initialFrameStackHeight),
		sp:    -1,
		limit: limit,
	}
}

func (s *frameStack) peek() *frame {
	if s.sp < 0 {
		return nil
	}
	return s.stack[s.sp]
}

func (s *frameStack) pop() *frame {
	if s.sp < 0 {
		panic(ErrStackInvariant)
	}
	ret := s.stack[s.sp]
	s.sp--
	return ret
}

func (s *frameStack) push(val *frame) {
	if s.sp+1 >= s.limit {
		panic(ErrCallStackOverflow)
	}
	if s.sp+1 == len(s.stack) {
		// grow stack
		s.stack = append(s.stack, val)
	} else {
		s.stack[s.sp+1] = val
	}
	s.sp++
}
