// Package binary decodes and encodes the module binary format: a flat
// sequence of length-framed, code-tagged sections.
package binary

import (
	"bytes"
	"fmt"
	"io"

	"github.com/wasmlite/wasmlite/wasm"
	"github.com/wasmlite/wasmlite/wasm/leb128"
)

// reader tracks how many bytes have been consumed so section payloads can
// be checked against their declared lengths.
type reader struct {
	read   int
	buffer *bytes.Buffer
}

func (r *reader) Read(p []byte) (n int, err error) {
	n, err = r.buffer.Read(p)
	r.read += n
	return
}

// DecodeModule parses the byte stream into a Module. The stream begins at
// the first section; there is no preamble. Each section must consume
// exactly its declared payload length. Unrecognized section codes fail
// with ErrUnsupported instead of being skipped.
func DecodeModule(binary []byte) (*wasm.Module, error) {
	r := &reader{buffer: bytes.NewBuffer(binary)}

	m := &wasm.Module{}
	for {
		sectionID := make([]byte, 1)
		if _, err := io.ReadFull(r, sectionID); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: read section id: %v", ErrMalformed, err)
		}

		sectionSize, _, err := leb128.DecodeUint32(r)
		if err != nil {
			return nil, fmt.Errorf("%w: get size of section for id=%d: %v", ErrMalformed, sectionID[0], err)
		}

		sectionContentStart := r.read
		switch sectionID[0] {
		case wasm.SectionIDType:
			m.TypeSection, err = decodeTypeSection(r)
		case wasm.SectionIDImport:
			m.ImportSection, err = decodeImportSection(r)
		case wasm.SectionIDFunction:
			m.FunctionSection, err = decodeFunctionSection(r)
		case wasm.SectionIDExport:
			m.ExportSection, err = decodeExportSection(r)
		case wasm.SectionIDCode:
			m.CodeSection, err = decodeCodeSection(r)
		default:
			err = fmt.Errorf("%w: section id %d", ErrUnsupported, sectionID[0])
		}

		if err == nil && sectionContentStart+int(sectionSize) != r.read {
			err = fmt.Errorf("%w: invalid section length: expected to be %d but got %d",
				ErrMalformed, sectionSize, r.read-sectionContentStart)
		}

		if err != nil {
			return nil, fmt.Errorf("section %s: %w", wasm.SectionIDName(sectionID[0]), err)
		}
	}

	if len(m.FunctionSection) != len(m.CodeSection) {
		return nil, fmt.Errorf("%w: function and code section have inconsistent lengths: %d != %d",
			ErrMalformed, len(m.FunctionSection), len(m.CodeSection))
	}
	return m, nil
}
