// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package writedomain adapts a heap.Heap into the small set of write
// capabilities a schema adapter needs to re-emit a content section:
// interned strings, boxed records, counted and null-terminated slices,
// and named top-level symbols. It also carries the bookkeeping
// Finalize needs afterward to synthesize the section's symbol table
// and relocations.
//
// This is the write-side counterpart of package readdomain, grounded
// on the original tool's ElfWriteDomain<C: ElfCategory>. The category
// type parameter there becomes a plain heap.Category value here; Go's
// lack of const-generic-like phantom types makes a runtime field the
// natural fit over a second generic parameter, and every format this
// tool handles only ever writes into one category per Domain anyway.
package writedomain

import (
	"github.com/Darxoon/paintelf/heap"
)

// symbolDeclaration is the write-time record of one named (or
// to-be-named) allocation, keyed by an unresolved heap.Token until
// Finalize resolves it.
type symbolDeclaration struct {
	name   SymbolName
	offset heap.Token
	size   uint32
}

// Domain accumulates a section's heap content plus every symbol
// declaration made while writing it.
type Domain struct {
	Heap             *heap.Heap
	Category         heap.Category
	StringDedupSize  uint32
	DebugRelocations bool

	stringMap     map[string]heap.Token
	declarations  []symbolDeclaration
	prevStringLen int
}

// New returns a Domain that writes into category, deduplicating
// strings only below stringDedupSize bytes into the section (the
// format's own constant — see the schema package for per-format
// values), and optionally tagging every relocation slot with its
// target for visual inspection instead of leaving it zero.
func New(category heap.Category, stringDedupSize uint32, debugRelocations bool) *Domain {
	return &Domain{
		Heap:             heap.New(),
		Category:         category,
		StringDedupSize:  stringDedupSize,
		DebugRelocations: debugRelocations,
		stringMap:        make(map[string]heap.Token),
	}
}

// Root returns a Writer over the domain's root block.
func (d *Domain) Root() *heap.Writer { return d.Heap.Root() }

func (d *Domain) putSymbol(decl symbolDeclaration) {
	d.declarations = append(d.declarations, decl)
}

// StringArgs controls WriteString/WriteStringOptional's deduplication
// behavior. The zero value does not deduplicate; DefaultStringArgs
// does, matching the original compiler's default for nearly every
// string field.
type StringArgs struct {
	// Deduplicate, when true (as in DefaultStringArgs), reuses an earlier
	// identical string written before the format's dedup cutoff
	// instead of allocating a new block.
	Deduplicate bool
}

// DefaultStringArgs is StringArgs{Deduplicate: true}.
var DefaultStringArgs = StringArgs{Deduplicate: true}

// WriteStringOptional writes value if non-nil, otherwise a literal nil
// pointer (a plain zero word — no relocation, matching a true null
// pointer on read-back).
func (d *Domain) WriteStringOptional(w *heap.Writer, value *string, args StringArgs) error {
	if value == nil {
		w.WriteU32(0)
		return nil
	}
	return d.WriteString(w, *value, args)
}

// WriteString interns and writes value, emitting a pointer token into
// w. Strings already seen (and still within the dedup cutoff) reuse
// their earlier allocation; otherwise a new block is allocated with an
// alignment heuristic matched to the legacy compiler's string packer:
// 4-byte aligned whenever the previous string exceeded 2 bytes or this
// one exceeds 1 byte, unaligned otherwise.
func (d *Domain) WriteString(w *heap.Writer, value string, args StringArgs) error {
	if args.Deduplicate && w.GlobalPosition() < int(d.StringDedupSize) {
		if tok, ok := d.stringMap[value]; ok {
			w.WriteToken(tok)
			return nil
		}
	}

	align := 0
	if d.prevStringLen > 2 || len(value) > 1 {
		align = 4
	}
	if args.Deduplicate {
		d.prevStringLen = len(value)
	}

	var size int
	tok, err := w.AllocateBlockAligned(d.Category, align, func(nw *heap.Writer) error {
		start := nw.Position()
		nw.WriteCString(value)
		if len(value) > 2 {
			nw.AlignTo(4)
		}
		size = nw.Position() - start
		return nil
	})
	if err != nil {
		return err
	}

	d.putSymbol(symbolDeclaration{name: Internal('.'), offset: tok, size: uint32(size)})
	if args.Deduplicate {
		d.stringMap[value] = tok
	}
	w.WriteToken(tok)
	return nil
}

// WriteBox allocates a 4-byte-aligned sub-block, runs content inside
// it, and emits a pointer token into w. If name is non-zero, the
// allocation is recorded as a named symbol declaration.
func (d *Domain) WriteBox(w *heap.Writer, name SymbolName, content func(*heap.Writer) error) error {
	var size int
	tok, err := w.AllocateBlockAligned(d.Category, 4, func(nw *heap.Writer) error {
		start := nw.Position()
		if err := content(nw); err != nil {
			return err
		}
		size = nw.Position() - start
		return nil
	})
	if err != nil {
		return err
	}
	w.WriteToken(tok)
	if name != NoName {
		d.putSymbol(symbolDeclaration{name: name, offset: tok, size: uint32(size)})
	}
	return nil
}

// WriteSliceOf allocates a 4-byte-aligned sub-block, writes each value
// in order via writeElem, then emits a pointer token followed by the
// element count as a trailing u32 in the parent block.
func WriteSliceOf[T any](d *Domain, w *heap.Writer, name SymbolName, values []T, writeElem func(*heap.Writer, T) error) error {
	var size int
	tok, err := w.AllocateBlockAligned(d.Category, 4, func(nw *heap.Writer) error {
		start := nw.Position()
		for _, v := range values {
			if err := writeElem(nw, v); err != nil {
				return err
			}
		}
		size = nw.Position() - start
		return nil
	})
	if err != nil {
		return err
	}
	w.WriteToken(tok)
	w.WriteU32(uint32(len(values)))
	if name != NoName {
		d.putSymbol(symbolDeclaration{name: name, offset: tok, size: uint32(size)})
	}
	return nil
}

// NullTerminatedArgs controls WriteNullTerminatedSliceOf.
type NullTerminatedArgs struct {
	// Name, if non-zero, records the allocation as a named symbol.
	Name SymbolName
	// WriteLength controls whether the element count is written as a
	// trailing u32 after the pointer token. Some formats (e.g. shop)
	// mark the end only with the sentinel and need just the pointer.
	WriteLength bool
}

// WriteNullTerminatedSliceOf is WriteSliceOf's null-terminated sibling:
// the written block additionally gets one trailing zero-valued
// sentinel element (written via writeElem with T's zero value) after
// the real ones, and the trailing count word is optional.
func WriteNullTerminatedSliceOf[T any](d *Domain, w *heap.Writer, args NullTerminatedArgs, values []T, writeElem func(*heap.Writer, T) error) error {
	var zero T
	var size int
	tok, err := w.AllocateBlockAligned(d.Category, 4, func(nw *heap.Writer) error {
		start := nw.Position()
		for _, v := range values {
			if err := writeElem(nw, v); err != nil {
				return err
			}
		}
		if err := writeElem(nw, zero); err != nil {
			return err
		}
		size = nw.Position() - start
		return nil
	})
	if err != nil {
		return err
	}
	w.WriteToken(tok)
	if args.WriteLength {
		w.WriteU32(uint32(len(values)))
	}
	if args.Name != NoName {
		d.putSymbol(symbolDeclaration{name: args.Name, offset: tok, size: uint32(size)})
	}
	return nil
}

// WriteBoxedSliceOf writes each value as its own individually boxed
// sub-block (see WriteBox) directly into w, in call order, followed by
// a trailing null-pointer sentinel. This is the write side of a
// top-level table read as a flat array of boxed-record pointers with
// no enclosing pointer or count of its own — the dispos/chr/lct
// formats' data-array entry points, where the stored element count
// already includes that trailing sentinel slot.
func WriteBoxedSliceOf[T any](d *Domain, w *heap.Writer, boxName SymbolName, values []T, writeBoxed func(*heap.Writer, T) error) error {
	for _, v := range values {
		if err := d.WriteBox(w, boxName, func(bw *heap.Writer) error {
			return writeBoxed(bw, v)
		}); err != nil {
			return err
		}
	}
	w.WriteU32(0)
	return nil
}

// WriteBoxedVecOf is WriteBoxedSliceOf's pointer-and-count sibling:
// the boxed elements and trailing null sentinel are written into a
// fresh 4-byte-aligned sub-block, and a token plus an explicit element
// count are emitted into w. The written count is len(values)+1, since
// the format's reader always subtracts one to drop the trailing
// sentinel slot it never materializes as a real element.
func WriteBoxedVecOf[T any](d *Domain, w *heap.Writer, name, boxName SymbolName, values []T, writeBoxed func(*heap.Writer, T) error) error {
	var size int
	tok, err := w.AllocateBlockAligned(d.Category, 4, func(nw *heap.Writer) error {
		start := nw.Position()
		if err := WriteBoxedSliceOf(d, nw, boxName, values, writeBoxed); err != nil {
			return err
		}
		size = nw.Position() - start
		return nil
	})
	if err != nil {
		return err
	}
	w.WriteToken(tok)
	w.WriteU32(uint32(len(values) + 1))
	if name != NoName {
		d.putSymbol(symbolDeclaration{name: name, offset: tok, size: uint32(size)})
	}
	return nil
}

// WriteSymbol runs content at w's current position and records it as a
// named, exported symbol covering the bytes content wrote — used for a
// schema's top-level count and data-array entry points, which must
// keep their original mangled names.
func (d *Domain) WriteSymbol(w *heap.Writer, name string, content func(*heap.Writer) error) error {
	tok := w.TokenAtCurrentPos()
	start := w.Position()
	if err := content(w); err != nil {
		return err
	}
	size := w.Position() - start
	d.putSymbol(symbolDeclaration{name: Unmangled(name), offset: tok, size: uint32(size)})
	return nil
}
