// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symtab implements symbol table lookup by name and section
// offset over the fixed object format's symbol table.
//
// Unlike a general linker's symbol table, this format never has
// overlapping or mapped-address symbols to disambiguate (it's a
// relocatable object full of plain data, never a loaded image), so the
// lookup here is a straightforward pair of maps rather than the
// interval-stack algorithm a general-purpose loader needs.
package symtab

import "github.com/Darxoon/paintelf/obj"

// NoSym is a placeholder index used to indicate "no symbol".
const NoSym = -1

// Table indexes a symbol table by name and by the section offset it
// points to.
type Table struct {
	syms []obj.Symbol

	name   map[string]int
	offset map[uint32]int
}

// NewTable builds a Table over syms, indexed by slice position (which
// is also the ELF symbol index used by relocations).
func NewTable(syms []obj.Symbol) *Table {
	t := &Table{
		syms:   syms,
		name:   make(map[string]int, len(syms)),
		offset: make(map[uint32]int, len(syms)),
	}
	for i, s := range syms {
		if s.Name != "" {
			t.name[s.Name] = i
		}
		if !s.IsLocal() || s.Info == obj.STInfoInternalObject || s.Info == obj.STInfoSection {
			t.offset[s.Value] = i
		}
	}
	return t
}

// Syms returns the underlying symbol slice, indexable by symbol index.
func (t *Table) Syms() []obj.Symbol {
	return t.syms
}

// Name returns the index of the symbol named name, or NoSym.
func (t *Table) Name(name string) int {
	if i, ok := t.name[name]; ok {
		return i
	}
	return NoSym
}

// Offset returns the index of the symbol whose value is off, or NoSym.
func (t *Table) Offset(off uint32) int {
	if i, ok := t.offset[off]; ok {
		return i
	}
	return NoSym
}

// Sym returns the i'th symbol.
func (t *Table) Sym(i int) obj.Symbol {
	return t.syms[i]
}
