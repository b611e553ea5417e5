package interp

import "go.uber.org/zap"

// defaultCallStackLimit bounds recursion depth; exceeding it fails the
// call with ErrCallStackOverflow.
const defaultCallStackLimit = 2000

// Option configures a Runtime at construction time.
type Option func(*Runtime)

// WithLogger replaces the default nop logger. Instruction dispatch and
// host invocations are traced at Debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runtime) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithCallStackLimit overrides the maximum call stack depth.
func WithCallStackLimit(limit int) Option {
	return func(r *Runtime) {
		if limit > 0 {
			r.frames.limit = limit
		}
	}
}
