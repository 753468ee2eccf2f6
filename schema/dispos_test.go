// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Darxoon/paintelf/writedomain"
)

func sampleDispos() []DisposArea {
	talk := "talk_hello"
	return []DisposArea{
		{
			ID: "area_01",
			MapNpcs: []DisposNpc{
				{
					MapID: "map_01",
					Npcs: []Npc{
						{
							ID:           "npc_guard",
							Type:         "guard",
							Field0x10:    1.5,
							TalkFunction: &talk,
						},
					},
				},
			},
			MapMobjs: []DisposMobj{
				{
					MapID: "map_01",
					Mobjs: []Mobj{
						{ID: "mobj_crate", Type: "crate", Field0x8: 2.0},
					},
				},
			},
			MapItems: []DisposItem{
				{
					MapID: "map_01",
					Items: []DisposItemEntry{
						{ID: "item_coin", Field0x4: "common", Field0x8: 1.0},
					},
				},
			},
		},
	}
}

func TestDisposRoundTrip(t *testing.T) {
	areas := sampleDispos()

	d := buildAndReparse(t, FileTypeDispos, func(w *writedomain.Domain) error {
		return WriteDispos(w, areas)
	})

	got, err := ReadDispos(d)
	require.NoError(t, err)
	require.Equal(t, areas, got)
}
