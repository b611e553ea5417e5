package wasm

// SectionID identifies a section of a Module in the binary format.
type SectionID = byte

const (
	SectionIDType     SectionID = 1
	SectionIDImport   SectionID = 2
	SectionIDFunction SectionID = 3
	SectionIDExport   SectionID = 7
	SectionIDCode     SectionID = 10
)

// SectionIDName returns the canonical name of a module section.
func SectionIDName(sectionID SectionID) string {
	switch sectionID {
	case SectionIDType:
		return "type"
	case SectionIDImport:
		return "import"
	case SectionIDFunction:
		return "function"
	case SectionIDExport:
		return "export"
	case SectionIDCode:
		return "code"
	}
	return "unknown"
}

// Import is a declared dependency on a host-provided function. Only
// function imports exist; Kind is always ImportKindFunc and DescFunc is the
// index of the import's signature in the type section.
type Import struct {
	Module   string
	Name     string
	Kind     ImportKind
	DescFunc Index
}

// Export names an entry in the combined function index space.
type Export struct {
	Name  string
	Kind  ExportKind
	Index Index
}

// Code is the body of one module-defined function: its declared extra
// locals (flattened, one ValueType per local) and its instruction stream.
// Body always ends with End.
type Code struct {
	LocalTypes []ValueType
	Body       []Instruction
}

// Module is the decoded structural representation of one binary program
// unit. Each section is independently optional: a nil slice means the
// section was absent, which is distinct from present-but-empty. The store
// builder relies on that distinction, so decoders must never substitute an
// empty slice for a missing section.
type Module struct {
	TypeSection     []*FunctionType
	ImportSection   []*Import
	FunctionSection []Index
	CodeSection     []*Code
	ExportSection   []*Export
}
