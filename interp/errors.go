package interp

import "errors"

// Resolution errors abort instantiation; no partially-built Runtime is
// ever returned.
var (
	ErrMissingTypeSection    = errors.New("missing type section")
	ErrTypeIndexOutOfRange   = errors.New("type index out of range")
	ErrExportIndexOutOfRange = errors.New("export index out of range")
)

// Call-time errors abort the in-progress call. The operand and call
// stacks are restored to their pre-call depths before the error is
// returned, so the Runtime stays usable.
var (
	ErrExportNotFound         = errors.New("export not found")
	ErrImportModuleNotFound   = errors.New("import module not found")
	ErrImportFunctionNotFound = errors.New("import function not found")
	ErrStackInvariant         = errors.New("operand stack invariant violated")
	ErrCallStackOverflow      = errors.New("callstack overflow")
)
