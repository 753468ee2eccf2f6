// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj implements the fixed ELF32 big-endian PowerPC relocatable
// object container used by the legacy game compiler: header, section
// table, content and meta sections, symbol table and relocations.
//
// Unlike a general-purpose object file library, this package commits to
// one format and supports both parsing and byte-exact serialization of
// it.
package obj

// Section types used by this format (a small subset of SHT_*).
const (
	SHT_NULL    = 0
	SHT_PROGBITS = 1
	SHT_SYMTAB  = 2
	SHT_STRTAB  = 3
	SHT_RELA    = 4
)

// Section flags used by this format.
const (
	SHF_WRITE     = 0x1
	SHF_ALLOC     = 0x2
	SHF_INFO_LINK = 0x40
)

// Symbol st_info values used by this format. These are the standard
// ELF32_ST_INFO(bind, type) encodings, but the legacy writer only ever
// produces this fixed set.
const (
	STInfoNull           = 0x00 // unused, first symtab entry
	STInfoInternalObject = 0x01 // STB_LOCAL, STT_OBJECT
	STInfoSection        = 0x03 // STB_LOCAL, STT_SECTION
	STInfoFile           = 0x04 // STB_LOCAL, STT_FILE
	STInfoExternalRef    = 0x10 // STB_GLOBAL, STT_NOTYPE (padding symbols)
	STInfoGlobalObject   = 0x11 // STB_GLOBAL, STT_OBJECT
)

// SHN_ABS is the special section index used by file symbols.
const SHN_ABS = 0xfff1

// identPrefix is the fixed 12-byte e_ident prefix shared by every object
// this format produces: magic, ELFCLASS32, ELFDATA2MSB, EV_CURRENT,
// followed by five zero bytes. The remaining 4 bytes of e_ident are a
// per-format value (Header.IdentPad).
var identPrefix = [12]byte{0x7f, 'E', 'L', 'F', 1, 2, 1, 0, 0, 0, 0, 0}

// Fixed header field values for this format.
const (
	headerType      = 1          // ET_REL
	headerVersion   = 1          // EV_CURRENT
	headerFlags     = 0x80000000 // observed in every sample object
	headerEhsize    = 0x34
	headerShentsize = 0x28
)

// Machine is the ELF e_machine value for this format: PowerPC.
const Machine = 0x14
