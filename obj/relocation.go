// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import "sort"

// RelocType is the low byte of a relocation's r_info. This format's
// writer and reader only ever produce and consume the 32-bit absolute
// form; other type tags are rejected as structural errors.
type RelocType uint8

const RelocAbs32 RelocType = 1

// A Relocation is one RELA entry: the byte offset of the pointer slot
// it patches, the symbol table index and type it references, and an
// addend (always 0 for this format).
type Relocation struct {
	Offset  uint32
	SymIdx  int
	Type    RelocType
	Addend  uint32
}

const relocationSize = 12

func (r Relocation) info() uint32 {
	return uint32(r.SymIdx)<<8 | uint32(r.Type)
}

func decodeRelocation(b []byte) Relocation {
	info := be32(b[4:8])
	return Relocation{
		Offset: be32(b[0:4]),
		SymIdx: int(info >> 8),
		Type:   RelocType(info & 0xff),
		Addend: be32(b[8:12]),
	}
}

func (r Relocation) encode(b []byte) {
	putBE32(b[0:4], r.Offset)
	putBE32(b[4:8], r.info())
	putBE32(b[8:12], r.Addend)
}

// Relocations is a set of relocations for one content section, keyed
// conceptually by Offset (there is never more than one relocation per
// slot).
type Relocations []Relocation

// Sort orders rs by increasing Offset, the order the format requires
// on disk.
func (rs Relocations) Sort() {
	sort.Slice(rs, func(i, j int) bool { return rs[i].Offset < rs[j].Offset })
}

// At returns the relocation at the given section offset and whether
// one exists.
func (rs Relocations) At(offset uint32) (Relocation, bool) {
	for _, r := range rs {
		if r.Offset == offset {
			return r, true
		}
	}
	return Relocation{}, false
}
