// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import "fmt"

// Header is the fixed-format ELF32 header used by this object format.
// Fields that never vary across samples (e_type, e_version, e_flags,
// e_ehsize, e_shentsize, and most of e_ident) are not stored here; they
// are filled in at serialize time from the constants in obj.go.
type Header struct {
	// IdentPad is the last 4 bytes of e_ident. It is 1 for the maplink
	// format family and 0 for every other format; its meaning beyond
	// that is not documented anywhere in the available samples.
	IdentPad uint32

	Entry     uint32
	Phoff     uint32
	Shoff     uint32
	Phnum     uint16
	Shnum     uint16
	Shstrndx  uint16
}

const headerSize = 0x34

func decodeHeader(b []byte) (Header, error) {
	if len(b) < headerSize {
		return Header{}, fmt.Errorf("obj: short header: got %d bytes, want %d", len(b), headerSize)
	}
	for i, want := range identPrefix {
		if b[i] != want {
			return Header{}, fmt.Errorf("obj: bad e_ident[%d]: got 0x%02x, want 0x%02x", i, b[i], want)
		}
	}
	be := be32
	h := Header{
		IdentPad: be(b[12:16]),
	}
	typ := be16(b[16:18])
	if typ != headerType {
		return Header{}, fmt.Errorf("obj: unsupported e_type %d, want ET_REL", typ)
	}
	machine := be16(b[18:20])
	if machine != Machine {
		return Header{}, fmt.Errorf("obj: unsupported e_machine 0x%x, want 0x%x (PowerPC)", machine, Machine)
	}
	version := be(b[20:24])
	if version != headerVersion {
		return Header{}, fmt.Errorf("obj: unsupported e_version %d", version)
	}
	h.Entry = be(b[24:28])
	h.Phoff = be(b[28:32])
	h.Shoff = be(b[32:36])
	flags := be(b[36:40])
	if flags != headerFlags {
		return Header{}, fmt.Errorf("obj: unexpected e_flags 0x%x", flags)
	}
	ehsize := be16(b[40:42])
	if ehsize != headerEhsize {
		return Header{}, fmt.Errorf("obj: unexpected e_ehsize %d", ehsize)
	}
	h.Phnum = be16(b[44:46])
	shentsize := be16(b[46:48])
	if shentsize != headerShentsize {
		return Header{}, fmt.Errorf("obj: unexpected e_shentsize %d", shentsize)
	}
	h.Shnum = be16(b[48:50])
	h.Shstrndx = be16(b[50:52])
	return h, nil
}

// encode writes the 0x34-byte header to b, leaving Shoff as given (the
// caller patches it in after section layout is known).
func (h Header) encode(b []byte) {
	copy(b[0:12], identPrefix[:])
	putBE32(b[12:16], h.IdentPad)
	putBE16(b[16:18], headerType)
	putBE16(b[18:20], Machine)
	putBE32(b[20:24], headerVersion)
	putBE32(b[24:28], h.Entry)
	putBE32(b[28:32], h.Phoff)
	putBE32(b[32:36], h.Shoff)
	putBE32(b[36:40], headerFlags)
	putBE16(b[40:42], headerEhsize)
	putBE16(b[42:44], 0) // e_phentsize, unused (Phnum is always 0)
	putBE16(b[44:46], h.Phnum)
	putBE16(b[46:48], headerShentsize)
	putBE16(b[48:50], h.Shnum)
	putBE16(b[50:52], h.Shstrndx)
}
