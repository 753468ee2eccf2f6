// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Darxoon/paintelf/writedomain"
)

func sampleLct() []AreaLct {
	return []AreaLct{
		{
			AreaID: "area_01",
			Maps: []MapLct{
				{
					MapID: "map_01",
					Lcts: []Lct{
						{ID: "lct_entrance", Directory: "dir/entrance", FileName: "entrance.bin", Field0xc: 3},
						{ID: "lct_exit", Directory: "dir/exit", FileName: "exit.bin", Field0xc: 7},
					},
				},
			},
		},
	}
}

func TestLctRoundTrip(t *testing.T) {
	areas := sampleLct()

	d := buildAndReparse(t, FileTypeLct, func(w *writedomain.Domain) error {
		return WriteLct(w, areas)
	})

	got, err := ReadLct(d)
	require.NoError(t, err)
	require.Equal(t, areas, got)
}
