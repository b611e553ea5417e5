package binary

import (
	"github.com/wasmlite/wasmlite/wasm"
	"github.com/wasmlite/wasmlite/wasm/leb128"
)

// EncodeModule implements the inverse of DecodeModule. Sections are
// emitted in section-code order; absent (nil) sections are skipped
// entirely, so decoding the result reproduces the input Module including
// its absent-vs-empty distinctions.
func EncodeModule(m *wasm.Module) (bytes []byte) {
	if m.TypeSection != nil {
		bytes = append(bytes, encodeTypeSection(m.TypeSection)...)
	}
	if m.ImportSection != nil {
		bytes = append(bytes, encodeImportSection(m.ImportSection)...)
	}
	if m.FunctionSection != nil {
		bytes = append(bytes, encodeFunctionSection(m.FunctionSection)...)
	}
	if m.ExportSection != nil {
		bytes = append(bytes, encodeExportSection(m.ExportSection)...)
	}
	if m.CodeSection != nil {
		bytes = append(bytes, encodeCodeSection(m.CodeSection)...)
	}
	return
}

// encodeSection encodes the section code, the size of its contents in
// bytes, followed by the contents.
func encodeSection(sectionID wasm.SectionID, contents []byte) []byte {
	return append([]byte{sectionID}, encodeSizePrefixed(contents)...)
}

// encodeSizePrefixed prepends the LEB128-encoded length of the given bytes.
func encodeSizePrefixed(data []byte) []byte {
	return append(leb128.EncodeUint32(uint32(len(data))), data...)
}

func encodeTypeSection(types []*wasm.FunctionType) []byte {
	contents := leb128.EncodeUint32(uint32(len(types)))
	for _, t := range types {
		contents = append(contents, encodeFunctionType(t)...)
	}
	return encodeSection(wasm.SectionIDType, contents)
}

func encodeFunctionType(t *wasm.FunctionType) []byte {
	data := append(leb128.EncodeUint32(uint32(len(t.Params))), t.Params...)
	data = append(data, leb128.EncodeUint32(uint32(len(t.Results)))...)
	return append(data, t.Results...)
}

func encodeImportSection(imports []*wasm.Import) []byte {
	contents := leb128.EncodeUint32(uint32(len(imports)))
	for _, i := range imports {
		contents = append(contents, encodeImport(i)...)
	}
	return encodeSection(wasm.SectionIDImport, contents)
}

func encodeImport(i *wasm.Import) []byte {
	data := encodeName(i.Module)
	data = append(data, encodeName(i.Name)...)
	data = append(data, i.Kind)
	return append(data, leb128.EncodeUint32(i.DescFunc)...)
}

func encodeFunctionSection(typeIndices []wasm.Index) []byte {
	contents := leb128.EncodeUint32(uint32(len(typeIndices)))
	for _, index := range typeIndices {
		contents = append(contents, leb128.EncodeUint32(index)...)
	}
	return encodeSection(wasm.SectionIDFunction, contents)
}

func encodeExportSection(exports []*wasm.Export) []byte {
	contents := leb128.EncodeUint32(uint32(len(exports)))
	for _, e := range exports {
		contents = append(contents, encodeExport(e)...)
	}
	return encodeSection(wasm.SectionIDExport, contents)
}

func encodeExport(e *wasm.Export) []byte {
	data := encodeName(e.Name)
	data = append(data, e.Kind)
	return append(data, leb128.EncodeUint32(e.Index)...)
}

func encodeCodeSection(code []*wasm.Code) []byte {
	contents := leb128.EncodeUint32(uint32(len(code)))
	for _, c := range code {
		contents = append(contents, encodeCode(c)...)
	}
	return encodeSection(wasm.SectionIDCode, contents)
}

// encodeCode encodes the size-prefixed function body: compressed local
// groups followed by the instruction stream.
func encodeCode(c *wasm.Code) []byte {
	var groups [][2]uint32 // count, kind
	for _, t := range c.LocalTypes {
		if n := len(groups); n > 0 && groups[n-1][1] == uint32(t) {
			groups[n-1][0]++
		} else {
			groups = append(groups, [2]uint32{1, uint32(t)})
		}
	}

	data := leb128.EncodeUint32(uint32(len(groups)))
	for _, g := range groups {
		data = append(data, leb128.EncodeUint32(g[0])...)
		data = append(data, byte(g[1]))
	}

	for _, instr := range c.Body {
		data = append(data, encodeInstruction(instr)...)
	}
	return encodeSizePrefixed(data)
}

func encodeName(name string) []byte {
	return append(leb128.EncodeUint32(uint32(len(name))), name...)
}
