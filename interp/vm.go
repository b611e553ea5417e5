// Package interp executes decoded modules: it builds the function table
// from a Module, resolves imports against a host-function registry, and
// runs a stack-based execute loop over the closed instruction set.
package interp

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/wasmlite/wasmlite/wasm"
)

// Runtime owns one Store, one import registry and the transient operand
// and call stacks. It is not safe for concurrent use from multiple
// goroutines; re-entrant calls from a host function on the same goroutine
// are fine and share the stacks.
type Runtime struct {
	store    *Store
	imports  *importRegistry
	operands *operandStack
	frames   *frameStack
	logger   *zap.Logger
}

// NewRuntime builds the Store from the module and wraps it with fresh
// stacks and an empty import registry. A resolution failure returns no
// Runtime.
func NewRuntime(m *wasm.Module, opts ...Option) (*Runtime, error) {
	store, err := newStore(m)
	if err != nil {
		return nil, fmt.Errorf("build store: %w", err)
	}
	r := &Runtime{
		store:    store,
		imports:  newImportRegistry(),
		operands: newOperandStack(),
		frames:   newFrameStack(defaultCallStackLimit),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Store returns the Runtime's function and export tables.
func (r *Runtime) Store() *Store {
	return r.store
}

// AddImport registers fn under (module, name), replacing any previous
// registration under the same key.
func (r *Runtime) AddImport(module, name string, fn HostFunc) error {
	if fn == nil {
		return errors.New("nil host function")
	}
	r.imports.register(module, name, fn)
	return nil
}

// Call invokes the named exported function with the given arguments and
// returns its optional result. On error the operand and call stacks are
// restored to their pre-call depths, so a failed call never poisons the
// next one.
func (r *Runtime) Call(exportName string, args ...wasm.Value) (result *wasm.Value, err error) {
	index, ok := r.store.exports[exportName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrExportNotFound, exportName)
	}
	f := r.store.functions[index]

	if np := len(f.functionType().Params); np != len(args) {
		return nil, fmt.Errorf("%q expects %d arguments, got %d", exportName, np, len(args))
	}

	prevOperandSP := r.operands.sp
	prevFrameSP := r.frames.sp
	defer func() {
		if v := recover(); v != nil {
			// Stack unwind. Restoring both depths keeps the Runtime
			// reusable after the error is reported.
			r.operands.sp = prevOperandSP
			r.frames.sp = prevFrameSP
			if e, ok := v.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("runtime error: %v", v)
			}
		}
	}()

	for _, arg := range args {
		r.operands.push(arg)
	}

	switch fn := f.(type) {
	case *internalFunction:
		r.pushFrame(fn)
		r.exec(prevFrameSP)
		if len(fn.typ.Results) == 1 {
			v := r.operands.pop()
			return &v, nil
		}
		return nil, nil
	case *externalFunction:
		// Host functions are invoked directly, never via a frame.
		return r.invokeExternal(fn)
	default:
		panic(fmt.Errorf("unknown function instance %T", f))
	}
}

// pushFrame pops the callee's parameters off the operand stack tail into
// its locals, zero-initializes the declared extra locals by kind, and
// pushes the new frame.
func (r *Runtime) pushFrame(f *internalFunction) {
	np := len(f.typ.Params)
	locals := make([]wasm.Value, np+len(f.localTypes))
	for i := np - 1; i >= 0; i-- {
		locals[i] = r.operands.pop()
	}
	for i, t := range f.localTypes {
		locals[np+i] = wasm.ZeroValue(t)
	}
	r.frames.push(&frame{
		base:   r.operands.depth(),
		arity:  len(f.typ.Results),
		locals: locals,
		f:      f,
	})
}

// invokeExternal pops the declared parameters off the operand stack tail
// in call order, resolves the host function and invokes it with mutable
// Store access. The result and any error are propagated unchanged.
func (r *Runtime) invokeExternal(f *externalFunction) (*wasm.Value, error) {
	np := len(f.typ.Params)
	args := make([]wasm.Value, np)
	for i := np - 1; i >= 0; i-- {
		args[i] = r.operands.pop()
	}

	fn, err := r.imports.resolve(f.module, f.name)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("invoke host function",
		zap.String("module", f.module), zap.String("name", f.name))
	return fn(r.store, args)
}

// exec interprets instructions until the call stack returns to returnSP,
// i.e. until the frame pushed by the caller has been popped by its End.
func (r *Runtime) exec(returnSP int) {
	for r.frames.sp > returnSP {
		frame := r.frames.peek()
		if frame.pc >= len(frame.f.body) {
			panic(fmt.Errorf("%w: pc %d beyond function body", ErrStackInvariant, frame.pc))
		}
		instr := frame.f.body[frame.pc]

		if ce := r.logger.Check(zap.DebugLevel, "exec"); ce != nil {
			ce.Write(
				zap.String("op", wasm.OpcodeName(instr.Opcode())),
				zap.Int("pc", frame.pc),
				zap.Int("operandSP", r.operands.sp),
				zap.Int("frameSP", r.frames.sp),
			)
		}

		switch i := instr.(type) {
		case wasm.Nop:
			frame.pc++
		case wasm.LocalGet:
			if int(i.Index) >= len(frame.locals) {
				panic(fmt.Errorf("invalid local index %d", i.Index))
			}
			r.operands.push(frame.locals[i.Index])
			frame.pc++
		case wasm.LocalSet:
			if int(i.Index) >= len(frame.locals) {
				panic(fmt.Errorf("invalid local index %d", i.Index))
			}
			frame.locals[i.Index] = r.operands.pop()
			frame.pc++
		case wasm.I32Const:
			r.operands.push(wasm.I32(i.Value))
			frame.pc++
		case wasm.I32Add:
			right := r.operands.pop()
			left := r.operands.pop()
			r.operands.push(wasm.I32(left.AsI32() + right.AsI32()))
			frame.pc++
		case wasm.I32Sub:
			right := r.operands.pop()
			left := r.operands.pop()
			r.operands.push(wasm.I32(left.AsI32() - right.AsI32()))
			frame.pc++
		case wasm.I32Mul:
			right := r.operands.pop()
			left := r.operands.pop()
			r.operands.push(wasm.I32(left.AsI32() * right.AsI32()))
			frame.pc++
		case wasm.Drop:
			r.operands.pop()
			frame.pc++
		case wasm.Call:
			if int(i.Index) >= len(r.store.functions) {
				panic(fmt.Errorf("invalid function index %d", i.Index))
			}
			// Resume past the call once the callee is done.
			frame.pc++
			switch callee := r.store.functions[i.Index].(type) {
			case *internalFunction:
				r.pushFrame(callee)
			case *externalFunction:
				// Host calls are synchronous and frameless: the optional
				// result lands directly on the shared operand stack.
				ret, err := r.invokeExternal(callee)
				if err != nil {
					panic(err)
				}
				if ret != nil {
					r.operands.push(*ret)
				}
			}
		case wasm.End:
			r.endFrame()
		default:
			panic(fmt.Errorf("unknown instruction %T", instr))
		}
	}
}

// endFrame pops the current frame and truncates the operand stack to the
// frame's base, preserving the single result when the arity is one. Extra
// values with arity zero, or a missing result with arity one, violate the
// interpreter's stack invariant and are reported, never trimmed.
func (r *Runtime) endFrame() {
	frame := r.frames.pop()
	switch frame.arity {
	case 0:
		if d := r.operands.depth(); d != frame.base {
			panic(fmt.Errorf("%w: %d values left above the frame base", ErrStackInvariant, d-frame.base))
		}
	case 1:
		if r.operands.depth() <= frame.base {
			panic(fmt.Errorf("%w: missing return value", ErrStackInvariant))
		}
		v := r.operands.pop()
		r.operands.sp = frame.base - 1
		r.operands.push(v)
	}
}
