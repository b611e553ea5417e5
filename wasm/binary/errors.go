package binary

import "errors"

var (
	// ErrMalformed indicates structurally invalid bytes: truncated or
	// over-length payloads, invalid UTF-8 in a name, or sections that
	// disagree with each other.
	ErrMalformed = errors.New("malformed binary")

	// ErrUnsupported indicates bytes this engine refuses to interpret:
	// unknown section codes, unknown import/export descriptors, unknown
	// opcodes. These fail loudly rather than being skipped so a module
	// using newer features is never silently mis-decoded.
	ErrUnsupported = errors.New("unsupported")
)
