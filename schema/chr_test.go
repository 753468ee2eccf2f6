// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Darxoon/paintelf/writedomain"
)

func sampleChr() ChrData {
	mainFn := "npc_main"
	return ChrData{
		NpcData: []NpcDef{
			{
				ID:           "npc_mayor",
				Description:  "Town mayor",
				ModelPtr:     0x1000,
				Field0xc:     "c_class",
				Field0x14:    "e_class",
				MainFunction: &mainFn,
				Field0x50:    1.25,
				Field0x54:    2.5,
				Field0xa0:    3.75,
				Field0xa8:    4.0,
			},
		},
		MobjData: []MobjDef{
			{
				ID:          "mobj_sign",
				Description: "Wooden sign",
				ModelPtr:    0x2000,
				Field0x10:   "r_10",
				Field0x14:   "r_14",
				Field0x18:   "r_18",
				Field0x1c:   "r_1c",
			},
		},
	}
}

func TestChrRoundTrip(t *testing.T) {
	data := sampleChr()

	d := buildAndReparse(t, FileTypeChr, func(w *writedomain.Domain) error {
		return WriteChr(w, data)
	})

	got, err := ReadChr(d)
	require.NoError(t, err)
	require.Equal(t, data, got)
}
