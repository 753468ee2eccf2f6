// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pointer provides the section-relative offset type used
// throughout the object format and the alignment helpers built on it.
package pointer

import "fmt"

// Nil is the reserved Pointer value meaning "no target".
const Nil Pointer = 0

// A Pointer is a byte offset into a content section.
type Pointer uint32

// FromInt converts a non-negative int to a Pointer. It panics if n does
// not fit in 32 bits, mirroring the unwrap-on-overflow conversions the
// legacy format relies on elsewhere.
func FromInt(n int) Pointer {
	if n < 0 || uint64(n) > uint64(^uint32(0)) {
		panic(fmt.Sprintf("pointer out of range: %d", n))
	}
	return Pointer(n)
}

// Int returns p as an int.
func (p Pointer) Int() int {
	return int(p)
}

// IsNil reports whether p is the reserved nil offset.
func (p Pointer) IsNil() bool {
	return p == Nil
}

// Add returns p+n. It panics on overflow.
func (p Pointer) Add(n int) Pointer {
	r := int64(p) + int64(n)
	if r < 0 || r > int64(^uint32(0)) {
		panic(fmt.Sprintf("pointer arithmetic overflow: %d+%d", p, n))
	}
	return Pointer(r)
}

// roundDown2 rounds x down to a multiple of y, where y must be a power
// of 2.
func roundDown2(x, y int) int {
	if y&(y-1) != 0 {
		panic("y must be a power of 2")
	}
	return x &^ (y - 1)
}

// roundUp2 rounds x up to a multiple of y, where y must be a power of 2.
func roundUp2(x, y int) int {
	if y&(y-1) != 0 {
		panic("y must be a power of 2")
	}
	return (x + y - 1) &^ (y - 1)
}

// AlignTo returns the smallest multiple of align that is >= x. align
// must be a power of 2; align == 0 is treated as 1 (no alignment).
func AlignTo(x int, align int) int {
	if align == 0 {
		return x
	}
	return roundUp2(x, align)
}

// AlignDown returns the largest multiple of align that is <= x.
func AlignDown(x int, align int) int {
	if align == 0 {
		return x
	}
	return roundDown2(x, align)
}
