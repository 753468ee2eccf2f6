// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"math"

	"github.com/Darxoon/paintelf/heap"
	"github.com/Darxoon/paintelf/readdomain"
	"github.com/Darxoon/paintelf/writedomain"
)

// MaplinkArea is one map's table of links to other maps.
type MaplinkArea struct {
	MapName string `yaml:"map_name"`
	Links   []Link `yaml:"links"`
}

// Link is one exit/transition point out of a map.
type Link struct {
	ID          string  `yaml:"id"`
	Destination string  `yaml:"destination"`
	LinkType    string  `yaml:"link_type"`
	Field0xc    string  `yaml:"field_0xc"`
	Field0x10   float32 `yaml:"field_0x10"`
	Field0x14   string  `yaml:"field_0x14"`
	Field0x18   string  `yaml:"field_0x18"`
	Field0x1c   string  `yaml:"field_0x1c"`
	Field0x20   string  `yaml:"field_0x20"`
	Field0x24   string  `yaml:"field_0x24"`
	Field0x28   uint32  `yaml:"field_0x28"`
	Field0x2c   string  `yaml:"field_0x2c"`
	Field0x30   string  `yaml:"field_0x30"`
	Field0x34   string  `yaml:"field_0x34"`
	Field0x38   string  `yaml:"field_0x38"`
}

// ReadMaplink decodes the dataCount/datas symbol pair into one
// MaplinkArea per map.
func ReadMaplink(d *readdomain.Domain) ([]MaplinkArea, error) {
	countSym, err := d.FindSymbol("dataCount__Q3_4data3fld7maplink")
	if err != nil {
		return nil, err
	}
	datasSym, err := d.FindSymbol("datas__Q3_4data3fld7maplink")
	if err != nil {
		return nil, err
	}

	r := d.NewReader()
	r.SetPosition(int(countSym.Value))
	count := r.ReadU32()

	r.SetPosition(int(datasSym.Value))
	areas := make([]MaplinkArea, count)
	for i := range areas {
		area, err := readMaplinkArea(d, r)
		if err != nil {
			return nil, err
		}
		areas[i] = area
	}
	return areas, nil
}

func readMaplinkArea(d *readdomain.Domain, r *readdomain.Reader) (MaplinkArea, error) {
	mapName, err := d.ReadString(r)
	if err != nil {
		return MaplinkArea{}, err
	}
	links, err := readdomain.ReadStdVecOf(d, r, readLinkWith(d))
	if err != nil {
		return MaplinkArea{}, err
	}
	return MaplinkArea{MapName: mapName, Links: links}, nil
}

func readLinkWith(d *readdomain.Domain) func(*readdomain.Reader) (Link, error) {
	return func(r *readdomain.Reader) (Link, error) {
		var l Link
		var err error
		if l.ID, err = d.ReadString(r); err != nil {
			return Link{}, err
		}
		if l.Destination, err = d.ReadString(r); err != nil {
			return Link{}, err
		}
		if l.LinkType, err = d.ReadString(r); err != nil {
			return Link{}, err
		}
		if l.Field0xc, err = d.ReadString(r); err != nil {
			return Link{}, err
		}
		l.Field0x10 = r.ReadF32()
		if l.Field0x14, err = d.ReadString(r); err != nil {
			return Link{}, err
		}
		if l.Field0x18, err = d.ReadString(r); err != nil {
			return Link{}, err
		}
		if l.Field0x1c, err = d.ReadString(r); err != nil {
			return Link{}, err
		}
		if l.Field0x20, err = d.ReadString(r); err != nil {
			return Link{}, err
		}
		if l.Field0x24, err = d.ReadString(r); err != nil {
			return Link{}, err
		}
		l.Field0x28 = r.ReadU32()
		if l.Field0x2c, err = d.ReadString(r); err != nil {
			return Link{}, err
		}
		if l.Field0x30, err = d.ReadString(r); err != nil {
			return Link{}, err
		}
		if l.Field0x34, err = d.ReadString(r); err != nil {
			return Link{}, err
		}
		if l.Field0x38, err = d.ReadString(r); err != nil {
			return Link{}, err
		}
		return l, nil
	}
}

// WriteMaplink re-emits areas as a fresh content section. The legacy
// tool's own write_maplink was not recovered from the decompilation
// this port is based on; this follows the read-side field order above
// and the sibling mapid format's write shape (a dataCount/datas symbol
// pair, each area's detail records grouped under a name keyed off the
// owning area, mirroring mapid's MapGroup.maps convention).
func WriteMaplink(d *writedomain.Domain, areas []MaplinkArea) error {
	w := d.Root()

	if err := d.WriteSymbol(w, "dataCount__Q3_4data3fld7maplink", func(w *heap.Writer) error {
		w.WriteU32(uint32(len(areas)))
		return nil
	}); err != nil {
		return err
	}

	return d.WriteSymbol(w, "datas__Q3_4data3fld7maplink", func(w *heap.Writer) error {
		for _, area := range areas {
			if err := writeMaplinkArea(d, w, area); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeMaplinkArea(d *writedomain.Domain, w *heap.Writer, area MaplinkArea) error {
	if err := d.WriteString(w, area.MapName, writedomain.DefaultStringArgs); err != nil {
		return err
	}
	return writedomain.WriteSliceOf(d, w, writedomain.InternalNamed(area.MapName), area.Links, writeLinkWith(d))
}

func writeLinkWith(d *writedomain.Domain) func(*heap.Writer, Link) error {
	return func(w *heap.Writer, l Link) error {
		if err := d.WriteString(w, l.ID, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, l.Destination, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, l.LinkType, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, l.Field0xc, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		w.WriteU32(math.Float32bits(l.Field0x10))
		if err := d.WriteString(w, l.Field0x14, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, l.Field0x18, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, l.Field0x1c, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, l.Field0x20, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, l.Field0x24, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		w.WriteU32(l.Field0x28)
		if err := d.WriteString(w, l.Field0x2c, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, l.Field0x30, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, l.Field0x34, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		return d.WriteString(w, l.Field0x38, writedomain.DefaultStringArgs)
	}
}
