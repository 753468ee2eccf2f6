// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package writedomain

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/Darxoon/paintelf/heap"
	"github.com/Darxoon/paintelf/obj"
	"github.com/Darxoon/paintelf/symgen"
)

// externalRefPaddingSymbolCount is the number of blank STInfoExternalRef
// symbols the legacy compiler always inserts between the last local
// symbol and the first named (global) one. Every sample object this
// tool handles carries exactly this many regardless of format or size;
// nothing observed ties the count to anything computable, so it is
// hard-coded here the same way the original tool did.
const externalRefPaddingSymbolCount = 12

// Assembled is everything Finalize produces for one content section:
// its bytes, the relocations that belong on it, and the raw .symtab /
// .strtab bytes the legacy compiler's naming passes produced. A schema
// adapter wires these into an obj.Container with BuildContainer.
type Assembled struct {
	Content         []byte
	Relocations     obj.Relocations
	SymtabContent   []byte
	LastLocalSymbol uint32
	StrtabContent   []byte
}

// Finalize resolves every block the domain's writers allocated,
// synthesizes the section's symbol table (renaming every anonymous and
// named-internal allocation through the legacy compiler's two-pass
// scheme, in its exact emission order), and resolves every pending
// relocation against the resulting symbol indices.
//
// cppFileName is the source file name the format's compiler recorded
// in the first .strtab entry (e.g. "data_fld_maplink.cpp" for maplink;
// each schema format hardcodes its own, matching the object the legacy
// compiler actually produced).
func (d *Domain) Finalize(cppFileName string) (*Assembled, error) {
	content, patches, err := d.Heap.Finalize(d.DebugRelocations)
	if err != nil {
		return nil, err
	}

	d.renameAnonymousInternals()
	d.renameNamedInternals()

	var namedDecls []symbolDeclaration
	var internalDecls []symbolDeclaration
	for _, decl := range d.declarations {
		if decl.name.isInternal() {
			internalDecls = append(internalDecls, decl)
		} else {
			namedDecls = append(namedDecls, decl)
		}
	}
	sort.SliceStable(internalDecls, func(i, j int) bool {
		return d.Heap.Resolve(internalDecls[i].offset) < d.Heap.Resolve(internalDecls[j].offset)
	})

	var symtab bytes.Buffer
	var strtab bytes.Buffer
	strtab.WriteByte(0)
	strtab.WriteString(cppFileName)
	strtab.WriteByte(0)

	symCount := 0
	symIndexByOffset := make(map[int]int)

	writeSymAt := func(nameOff uint32, s obj.Symbol) {
		b := make([]byte, 0x10)
		putSymbol(b, nameOff, s)
		symtab.Write(b)
		symCount++
	}

	writeSym := func(s obj.Symbol) {
		nameOff := uint32(0)
		if s.Name != "" {
			nameOff = uint32(strtab.Len())
			strtab.WriteString(s.Name)
			strtab.WriteByte(0)
		}
		writeSymAt(nameOff, s)
	}

	// null, file, section symbols. The file symbol's name offset (1)
	// points at the cppFileName already seeded at the head of strtab
	// above, so it bypasses writeSym's generic append.
	writeSym(obj.Symbol{})
	writeSymAt(1, obj.Symbol{Info: obj.STInfoFile, Shndx: obj.SHN_ABS})
	writeSym(obj.Symbol{Info: obj.STInfoSection, Shndx: 1})

	writeValueSym := func(decl symbolDeclaration, info uint8) {
		name, _ := decl.name.asStr()
		offset := d.Heap.Resolve(decl.offset)
		symIndexByOffset[offset] = symCount
		writeSym(obj.Symbol{Name: name, Value: uint32(offset), Size: decl.size, Info: info, Shndx: 1})
	}

	for _, decl := range internalDecls {
		writeValueSym(decl, obj.STInfoInternalObject)
	}

	lastLocal := uint32(symCount)

	for i := 0; i < externalRefPaddingSymbolCount; i++ {
		writeSym(obj.Symbol{Info: obj.STInfoExternalRef})
	}

	for _, decl := range namedDecls {
		writeValueSym(decl, obj.STInfoGlobalObject)
	}

	relocations, err := resolveRelocations(patches, symIndexByOffset)
	if err != nil {
		return nil, err
	}

	return &Assembled{
		Content:         content,
		Relocations:     relocations,
		SymtabContent:   symtab.Bytes(),
		LastLocalSymbol: lastLocal,
		StrtabContent:   strtab.Bytes(),
	}, nil
}

// putSymbol encodes s into b (a 16-byte SymbolHeader), with a caller-
// supplied name offset since the string table is built incrementally
// alongside the symbol table rather than known up front.
func putSymbol(b []byte, nameOff uint32, s obj.Symbol) {
	b[0], b[1], b[2], b[3] = byte(nameOff>>24), byte(nameOff>>16), byte(nameOff>>8), byte(nameOff)
	v := s.Value
	b[4], b[5], b[6], b[7] = byte(v>>24), byte(v>>16), byte(v>>8), byte(v)
	sz := s.Size
	b[8], b[9], b[10], b[11] = byte(sz>>24), byte(sz>>16), byte(sz>>8), byte(sz)
	b[12] = s.Info
	b[13] = s.Other
	b[14], b[15] = byte(s.Shndx>>8), byte(s.Shndx)
}

// renameAnonymousInternals is the legacy compiler's Step A: every
// Internal(c) declaration, regardless of c, is sorted once by resolved
// offset and named by one shared generator.
func (d *Domain) renameAnonymousInternals() {
	type entry struct {
		idx  int
		char byte
	}
	var entries []entry
	for i, decl := range d.declarations {
		if decl.name.kind == kindInternal {
			entries = append(entries, entry{i, decl.name.char})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return d.Heap.Resolve(d.declarations[entries[i].idx].offset) < d.Heap.Resolve(d.declarations[entries[j].idx].offset)
	})

	var gen symgen.Generator
	for _, e := range entries {
		tail := gen.Next()
		d.declarations[e.idx].name = internalUnmangled(string(e.char) + tail)
	}
}

// renameNamedInternals is Step B: InternalNamed(s) declarations are
// sorted by the legacy compiler's prefix-aware comparator and named by
// a second, independent shared generator.
func (d *Domain) renameNamedInternals() {
	var idxs []int
	for i, decl := range d.declarations {
		if decl.name.kind == kindInternalNamed {
			idxs = append(idxs, i)
		}
	}
	sort.SliceStable(idxs, func(i, j int) bool {
		a := d.declarations[idxs[i]].name.str
		b := d.declarations[idxs[j]].name.str
		if isLessSpecial(a, b) {
			return true
		}
		if isLessSpecial(b, a) {
			return false
		}
		return a < b
	})

	var gen symgen.Generator
	for _, i := range idxs {
		name := d.declarations[i].name.str
		tail := gen.Next()
		d.declarations[i].name = internalUnmangled(name[:1] + tail)
	}
}

// isLessSpecial reports the legacy compiler's quirky prefix rule: a
// sorts immediately before b if a is strictly longer than b, starts
// with b, and the first character past that shared prefix is
// lexicographically less than 'P'.
func isLessSpecial(a, b string) bool {
	if len(a) == len(b) || len(a) < len(b) || a[:len(b)] != b {
		return false
	}
	tail := a[len(b):]
	return tail[0] < 'P'
}

// resolveRelocations turns every heap patch into an obj.Relocation,
// looking up each target's final symbol index (recorded while writing
// the symbol table) and sorting by slot offset.
func resolveRelocations(patches []heap.ResolvedPatch, symIndexByOffset map[int]int) (obj.Relocations, error) {
	sort.Slice(patches, func(i, j int) bool { return patches[i].Slot < patches[j].Slot })

	out := make(obj.Relocations, 0, len(patches))
	for _, p := range patches {
		idx, ok := symIndexByOffset[p.Target]
		if !ok {
			return nil, fmt.Errorf("writedomain: relocation targets offset %#x with no symbol", p.Target)
		}
		out = append(out, obj.Relocation{Offset: uint32(p.Slot), SymIdx: idx, Type: obj.RelocAbs32})
	}
	return out, nil
}
