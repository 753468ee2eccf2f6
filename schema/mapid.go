// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/Darxoon/paintelf/heap"
	"github.com/Darxoon/paintelf/readdomain"
	"github.com/Darxoon/paintelf/writedomain"
)

// MapGroup is one playable area's table of map IDs.
type MapGroup struct {
	ID   string          `yaml:"id"`
	Maps []MapDefinition `yaml:"maps"`
}

// MapDefinition is a single entry in a MapGroup's table.
type MapDefinition struct {
	GroupID     string `yaml:"group_id"`
	MapID       string `yaml:"map_id"`
	LevelID     string `yaml:"level_id"`
	Description string `yaml:"description"`
	Field0x10   string `yaml:"field_0x10"`
	Field0x14   string `yaml:"field_0x14"`
	Field0x18   string `yaml:"field_0x18"`
	Field0x1c   string `yaml:"field_0x1c"`
	Field0x20   uint32 `yaml:"field_0x20"`
	Field0x24   string `yaml:"field_0x24"`
	Field0x28   string `yaml:"field_0x28"`
	Field0x2c   uint32 `yaml:"field_0x2c"`
	Field0x30   uint32 `yaml:"field_0x30"`
	Field0x34   uint32 `yaml:"field_0x34"`
	Field0x38   uint32 `yaml:"field_0x38"`
	Field0x3c   uint32 `yaml:"field_0x3c"`
	Field0x40   uint32 `yaml:"field_0x40"`
	Field0x44   uint32 `yaml:"field_0x44"`
	Field0x48   uint32 `yaml:"field_0x48"`
	Field0x4c   uint32 `yaml:"field_0x4c"`
	Field0x50   uint32 `yaml:"field_0x50"`
	Field0x54   string `yaml:"field_0x54"`
	Field0x58   string `yaml:"field_0x58"`
	Field0x5c   string `yaml:"field_0x5c"`
	Field0x60   string `yaml:"field_0x60"`
	Field0x64   string `yaml:"field_0x64"`
	Field0x68   string `yaml:"field_0x68"`
	Field0x6c   string `yaml:"field_0x6c"`
	Field0x70   string `yaml:"field_0x70"`
	Field0x74   string `yaml:"field_0x74"`
	Field0x78   string `yaml:"field_0x78"`
	Field0x7c   string `yaml:"field_0x7c"`
}

// ReadMapID decodes the dataCount/datas symbol pair into one MapGroup
// per area.
func ReadMapID(d *readdomain.Domain) ([]MapGroup, error) {
	countSym, err := d.FindSymbol("dataCount__Q3_4data3fld5mapid")
	if err != nil {
		return nil, err
	}
	datasSym, err := d.FindSymbol("datas__Q3_4data3fld5mapid")
	if err != nil {
		return nil, err
	}

	r := d.NewReader()
	r.SetPosition(int(countSym.Value))
	count := r.ReadU32()

	r.SetPosition(int(datasSym.Value))
	groups := make([]MapGroup, count)
	for i := range groups {
		g, err := readMapGroup(d, r)
		if err != nil {
			return nil, err
		}
		groups[i] = g
	}
	return groups, nil
}

func readMapGroup(d *readdomain.Domain, r *readdomain.Reader) (MapGroup, error) {
	id, err := d.ReadString(r)
	if err != nil {
		return MapGroup{}, err
	}
	maps, err := readdomain.ReadStdVecOf(d, r, readMapDefinitionWith(d))
	if err != nil {
		return MapGroup{}, err
	}
	return MapGroup{ID: id, Maps: maps}, nil
}

func readMapDefinitionWith(d *readdomain.Domain) func(*readdomain.Reader) (MapDefinition, error) {
	return func(r *readdomain.Reader) (MapDefinition, error) {
		var m MapDefinition
		var err error
		for _, f := range []*string{
			&m.GroupID, &m.MapID, &m.LevelID, &m.Description,
			&m.Field0x10, &m.Field0x14, &m.Field0x18, &m.Field0x1c,
		} {
			if *f, err = d.ReadString(r); err != nil {
				return MapDefinition{}, err
			}
		}
		m.Field0x20 = r.ReadU32()
		if m.Field0x24, err = d.ReadString(r); err != nil {
			return MapDefinition{}, err
		}
		if m.Field0x28, err = d.ReadString(r); err != nil {
			return MapDefinition{}, err
		}
		for _, f := range []*uint32{
			&m.Field0x2c, &m.Field0x30, &m.Field0x34, &m.Field0x38,
			&m.Field0x3c, &m.Field0x40, &m.Field0x44, &m.Field0x48,
			&m.Field0x4c, &m.Field0x50,
		} {
			*f = r.ReadU32()
		}
		for _, f := range []*string{
			&m.Field0x54, &m.Field0x58, &m.Field0x5c, &m.Field0x60,
			&m.Field0x64, &m.Field0x68, &m.Field0x6c, &m.Field0x70,
			&m.Field0x74, &m.Field0x78, &m.Field0x7c,
		} {
			if *f, err = d.ReadString(r); err != nil {
				return MapDefinition{}, err
			}
		}
		return m, nil
	}
}

// WriteMapID re-emits groups, grounded directly on write_mapid: a
// dataCount symbol, then a datas symbol holding each group's fields in
// declaration order, with each group's map table keyed by the group's
// own ID (the legacy compiler's named-internal naming convention).
func WriteMapID(d *writedomain.Domain, groups []MapGroup) error {
	w := d.Root()

	if err := d.WriteSymbol(w, "dataCount__Q3_4data3fld5mapid", func(w *heap.Writer) error {
		w.WriteU32(uint32(len(groups)))
		return nil
	}); err != nil {
		return err
	}

	return d.WriteSymbol(w, "datas__Q3_4data3fld5mapid", func(w *heap.Writer) error {
		for _, g := range groups {
			if err := writeMapGroup(d, w, g); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeMapGroup(d *writedomain.Domain, w *heap.Writer, g MapGroup) error {
	if err := d.WriteString(w, g.ID, writedomain.StringArgs{Deduplicate: false}); err != nil {
		return err
	}
	return writedomain.WriteSliceOf(d, w, writedomain.InternalNamed(g.ID), g.Maps, writeMapDefinitionWith(d))
}

func writeMapDefinitionWith(d *writedomain.Domain) func(*heap.Writer, MapDefinition) error {
	return func(w *heap.Writer, m MapDefinition) error {
		for _, s := range []string{
			m.GroupID, m.MapID, m.LevelID, m.Description,
			m.Field0x10, m.Field0x14, m.Field0x18, m.Field0x1c,
		} {
			if err := d.WriteString(w, s, writedomain.DefaultStringArgs); err != nil {
				return err
			}
		}
		w.WriteU32(m.Field0x20)
		if err := d.WriteString(w, m.Field0x24, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, m.Field0x28, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		for _, v := range []uint32{
			m.Field0x2c, m.Field0x30, m.Field0x34, m.Field0x38,
			m.Field0x3c, m.Field0x40, m.Field0x44, m.Field0x48,
			m.Field0x4c, m.Field0x50,
		} {
			w.WriteU32(v)
		}
		for _, s := range []string{
			m.Field0x54, m.Field0x58, m.Field0x5c, m.Field0x60,
			m.Field0x64, m.Field0x68, m.Field0x6c, m.Field0x70,
			m.Field0x74, m.Field0x78, m.Field0x7c,
		} {
			if err := d.WriteString(w, s, writedomain.DefaultStringArgs); err != nil {
				return err
			}
		}
		return nil
	}
}
