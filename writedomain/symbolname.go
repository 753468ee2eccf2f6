// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package writedomain

// kind tags the variant of a SymbolName.
type kind uint8

const (
	kindNone kind = iota
	kindInternal
	kindInternalNamed
	kindInternalUnmangled
	kindUnmangled
)

// SymbolName mirrors the legacy compiler's four-way symbol naming
// scheme. A freshly allocated block (a string or an unlabeled slice)
// starts out as Internal('x') for some category letter x; the two-pass
// synthesis in Finalize renames every Internal and InternalNamed
// declaration into an InternalUnmangled one before the symbol table is
// emitted. Unmangled names are the small set of exported, caller-chosen
// names (the schema's count/data-array entry points).
type SymbolName struct {
	kind kind
	char byte
	str  string
}

// NoName is the zero value: no symbol is recorded for this allocation.
var NoName SymbolName

// Internal returns a placeholder name tagged with category letter c,
// to be replaced by the shared name generator in Finalize's Step A.
func Internal(c byte) SymbolName { return SymbolName{kind: kindInternal, char: c} }

// InternalNamed returns a placeholder name derived from s, to be
// replaced by the shared name generator in Finalize's Step B. Used for
// slices keyed by a caller-visible identifier (e.g. a map group ID)
// where the original compiler still picked a short mangled name, but
// grouped mangled names by their source identifier's sort order.
func InternalNamed(s string) SymbolName { return SymbolName{kind: kindInternalNamed, str: s} }

// Unmangled returns a symbol name that is emitted verbatim and never
// touched by Finalize's renaming passes.
func Unmangled(s string) SymbolName { return SymbolName{kind: kindUnmangled, str: s} }

func internalUnmangled(s string) SymbolName { return SymbolName{kind: kindInternalUnmangled, str: s} }

// isInternal reports whether n is one of the three internal variants
// (anything that participates in, or has already been through,
// Finalize's renaming passes).
func (n SymbolName) isInternal() bool {
	switch n.kind {
	case kindInternal, kindInternalNamed, kindInternalUnmangled:
		return true
	default:
		return false
	}
}

// asStr returns n's final emitted name, if it has one yet.
func (n SymbolName) asStr() (string, bool) {
	switch n.kind {
	case kindInternalUnmangled, kindUnmangled:
		return n.str, true
	default:
		return "", false
	}
}
