// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Darxoon/paintelf/heap"
	"github.com/Darxoon/paintelf/obj"
	"github.com/Darxoon/paintelf/readdomain"
	"github.com/Darxoon/paintelf/writedomain"
)

// buildAndReparse runs write against a fresh writedomain.Domain for ft,
// finalizes it into a full object, reassembles that object into bytes,
// reparses those bytes, and returns a readdomain.Domain over the
// reparsed .rodata section — exercising the same write-then-read path
// the CLI's asm/disasm round trip does, without touching the
// filesystem.
func buildAndReparse(t *testing.T, ft FileType, write func(*writedomain.Domain) error) *readdomain.Domain {
	t.Helper()

	d := writedomain.New(heap.CategoryRodata, ft.StringDedupSize(), false)
	require.NoError(t, write(d))

	assembled, err := d.Finalize(ft.CppFileName())
	require.NoError(t, err)

	container := writedomain.BuildContainer(ft.IdentPaddingWord(), 4, assembled)
	raw, err := container.Bytes()
	require.NoError(t, err)

	reparsed, err := obj.ParseBytes(raw)
	require.NoError(t, err)

	section := reparsed.Section(".rodata")
	require.NotNil(t, section)
	require.NotNil(t, section.Relocations)

	return readdomain.New(section.Content, section.Relocations, reparsed.Symbols)
}
