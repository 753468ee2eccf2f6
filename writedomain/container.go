// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package writedomain

import "github.com/Darxoon/paintelf/obj"

// ContentSectionName is the single content section every format this
// tool handles writes into, for both the .rodata and (unused in
// practice, but modeled for fidelity) .data categories.
const ContentSectionName = ".rodata"

// BuildContainer wires an Assembled result into a fresh obj.Container:
// the content section (with its relocations attached), a generic
// .shstrtab built from the container's own section names, and the
// .symtab/.strtab meta sections in the order this format's reader
// expects.
func BuildContainer(identPad uint32, sectionAlign uint32, a *Assembled) *obj.Container {
	c := obj.NewContainer(identPad)

	c.AddContentSection(&obj.Section{
		Name:        ContentSectionName,
		Type:        obj.SHT_PROGBITS,
		Flags:       obj.SHF_ALLOC,
		AddrAlign:   sectionAlign,
		Content:     a.Content,
		Relocations: a.Relocations,
	})

	c.AddMetaSection(c.BuildShstrtab())
	c.AddMetaSection(&obj.Section{
		Name:      ".symtab",
		Type:      obj.SHT_SYMTAB,
		AddrAlign: 4,
		EntSize:   0x10,
		Info:      a.LastLocalSymbol,
		Content:   a.SymtabContent,
	})
	c.AddMetaSection(&obj.Section{
		Name:      ".strtab",
		Type:      obj.SHT_STRTAB,
		AddrAlign: 1,
		Content:   a.StrtabContent,
	})

	return c
}
