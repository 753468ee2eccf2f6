// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/Darxoon/paintelf/heap"
	"github.com/Darxoon/paintelf/readdomain"
	"github.com/Darxoon/paintelf/writedomain"
)

// AreaLct is one area's location-trigger table, nested three levels
// deep: area -> map -> individual triggers. Unlike dispos's sub-tables,
// Maps and Lcts are both standard (pointer, count) vectors with no
// off-by-one convention of their own — only the outer area table
// carries the trailing-sentinel-in-count quirk.
type AreaLct struct {
	AreaID string    `yaml:"area_id"`
	Maps   []MapLct  `yaml:"maps"`
}

// MapLct is one map's trigger list within an AreaLct.
type MapLct struct {
	MapID string `yaml:"map_id"`
	Lcts  []Lct  `yaml:"lcts"`
}

// Lct is a single location trigger. Unlike AreaLct/MapLct it is an
// inline record, not individually boxed.
type Lct struct {
	ID        string `yaml:"id"`
	Directory string `yaml:"directory"`
	FileName  string `yaml:"file_name"`
	Field0xc  uint32 `yaml:"field_0xc"`
}

// ReadLct decodes the all_lctAnimeDataTbl{,Len} symbol pair: a run of
// boxed AreaLct records with the trailing-sentinel-included-in-count
// convention shared with dispos and chr.
func ReadLct(d *readdomain.Domain) ([]AreaLct, error) {
	countSym, err := d.FindSymbol("all_lctAnimeDataTblLen__Q2_4data3lct")
	if err != nil {
		return nil, err
	}
	dataSym, err := d.FindSymbol("all_lctAnimeDataTbl__Q2_4data3lct")
	if err != nil {
		return nil, err
	}

	r := d.NewReader()
	r.SetPosition(int(countSym.Value))
	count := r.ReadU32()

	r.SetPosition(int(dataSym.Value))
	return readdomain.ReadBoxedVecOf(d, r, count, readAreaLctBoxed)
}

func readAreaLctBoxed(d *readdomain.Domain, r *readdomain.Reader) (AreaLct, error) {
	v, err := readdomain.ReadBoxNullable(d, r, func(r *readdomain.Reader) (AreaLct, error) {
		var a AreaLct
		var err error
		if a.AreaID, err = d.ReadString(r); err != nil {
			return AreaLct{}, err
		}
		if a.Maps, err = readdomain.ReadStdVecOf(d, r, readMapLctBoxed(d)); err != nil {
			return AreaLct{}, err
		}
		return a, nil
	})
	if err != nil || v == nil {
		return AreaLct{}, err
	}
	return *v, nil
}

func readMapLctBoxed(d *readdomain.Domain) func(*readdomain.Reader) (MapLct, error) {
	return func(r *readdomain.Reader) (MapLct, error) {
		v, err := readdomain.ReadBoxNullable(d, r, func(r *readdomain.Reader) (MapLct, error) {
			var m MapLct
			var err error
			if m.MapID, err = d.ReadString(r); err != nil {
				return MapLct{}, err
			}
			if m.Lcts, err = readdomain.ReadStdVecOf(d, r, readLctWith(d)); err != nil {
				return MapLct{}, err
			}
			return m, nil
		})
		if err != nil || v == nil {
			return MapLct{}, err
		}
		return *v, nil
	}
}

func readLctWith(d *readdomain.Domain) func(*readdomain.Reader) (Lct, error) {
	return func(r *readdomain.Reader) (Lct, error) {
		var l Lct
		var err error
		if l.ID, err = d.ReadString(r); err != nil {
			return Lct{}, err
		}
		if l.Directory, err = d.ReadString(r); err != nil {
			return Lct{}, err
		}
		if l.FileName, err = d.ReadString(r); err != nil {
			return Lct{}, err
		}
		l.Field0xc = r.ReadU32()
		return l, nil
	}
}

// WriteLct re-emits areas. The legacy source's own README notes
// rebuilding the elf for this format "is not implemented yet"; this
// completes the writer with the same primitives the other formats use.
func WriteLct(d *writedomain.Domain, areas []AreaLct) error {
	w := d.Root()

	if err := d.WriteSymbol(w, "all_lctAnimeDataTblLen__Q2_4data3lct", func(w *heap.Writer) error {
		w.WriteU32(uint32(len(areas) + 1))
		return nil
	}); err != nil {
		return err
	}

	return d.WriteSymbol(w, "all_lctAnimeDataTbl__Q2_4data3lct", func(w *heap.Writer) error {
		return writedomain.WriteBoxedSliceOf(d, w, writedomain.Internal('l'), areas, writeAreaLctWith(d))
	})
}

func writeAreaLctWith(d *writedomain.Domain) func(*heap.Writer, AreaLct) error {
	return func(w *heap.Writer, a AreaLct) error {
		if err := d.WriteString(w, a.AreaID, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		return writedomain.WriteSliceOf(d, w, writedomain.InternalNamed(a.AreaID), a.Maps, writeMapLctWith(d))
	}
}

func writeMapLctWith(d *writedomain.Domain) func(*heap.Writer, MapLct) error {
	return func(w *heap.Writer, m MapLct) error {
		return d.WriteBox(w, writedomain.Internal('m'), func(w *heap.Writer) error {
			if err := d.WriteString(w, m.MapID, writedomain.DefaultStringArgs); err != nil {
				return err
			}
			return writedomain.WriteSliceOf(d, w, writedomain.InternalNamed(m.MapID), m.Lcts, writeLctWith(d))
		})
	}
}

func writeLctWith(d *writedomain.Domain) func(*heap.Writer, Lct) error {
	return func(w *heap.Writer, l Lct) error {
		if err := d.WriteString(w, l.ID, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, l.Directory, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, l.FileName, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		w.WriteU32(l.Field0xc)
		return nil
	}
}
