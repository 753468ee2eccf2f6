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

// DisposArea is one map's placement table: the NPCs, map objects and
// items scattered across it. Each area is individually boxed (pointed
// to, rather than inlined, in the top-level table), and each of its
// three sub-tables is itself a pointer+count pair of individually
// boxed records — the richest layout of any format this tool handles.
type DisposArea struct {
	ID       string       `yaml:"id"`
	MapNpcs  []DisposNpc  `yaml:"map_npcs"`
	MapMobjs []DisposMobj `yaml:"map_mobjs"`
	MapItems []DisposItem `yaml:"map_items"`
}

type DisposNpc struct {
	MapID string `yaml:"map_id"`
	Npcs  []Npc  `yaml:"npcs"`
}

type DisposMobj struct {
	MapID string `yaml:"map_id"`
	Mobjs []Mobj `yaml:"mobjs"`
}

type DisposItem struct {
	MapID string           `yaml:"map_id"`
	Items []DisposItemEntry `yaml:"items"`
}

// Npc is one placed NPC instance. Field names follow the offsets the
// legacy format uses for them; most carry no more descriptive name in
// the tool this was ported from either.
type Npc struct {
	ID             string  `yaml:"id"`
	Type           string  `yaml:"type"`
	Field0x8       uint32  `yaml:"field_0x8"`
	Field0xc       uint32  `yaml:"field_0xc"`
	Field0x10      float32 `yaml:"field_0x10"`
	Field0x14      float32 `yaml:"field_0x14"`
	Field0x18      float32 `yaml:"field_0x18"`
	Field0x1c      uint32  `yaml:"field_0x1c"`
	Field0x20      uint32  `yaml:"field_0x20"`
	Field0x24      uint32  `yaml:"field_0x24"`
	Field0x28      uint32  `yaml:"field_0x28"`
	Field0x2c      uint32  `yaml:"field_0x2c"`
	Field0x30      uint32  `yaml:"field_0x30"`
	Field0x34      uint32  `yaml:"field_0x34"`
	Field0x38      uint32  `yaml:"field_0x38"`
	Field0x3c      float32 `yaml:"field_0x3c"`
	Field0x40      uint32  `yaml:"field_0x40"`
	Field0x44      uint32  `yaml:"field_0x44"`
	Field0x48      uint32  `yaml:"field_0x48"`
	Field0x4c      uint32  `yaml:"field_0x4c"`
	Field0x50      uint32  `yaml:"field_0x50"`
	Field0x54      uint32  `yaml:"field_0x54"`
	Field0x58      uint32  `yaml:"field_0x58"`
	Field0x5c      uint32  `yaml:"field_0x5c"`
	Field0x60      uint32  `yaml:"field_0x60"`
	Field0x64      uint32  `yaml:"field_0x64"`
	Field0x68      uint32  `yaml:"field_0x68"`
	Field0x6c      uint32  `yaml:"field_0x6c"`
	Field0x70      uint32  `yaml:"field_0x70"`
	Field0x74      uint32  `yaml:"field_0x74"`
	Field0x78      uint32  `yaml:"field_0x78"`
	Field0x7c      uint32  `yaml:"field_0x7c"`
	Field0x80      uint32  `yaml:"field_0x80"`
	Field0x84      uint32  `yaml:"field_0x84"`
	Field0x88      uint32  `yaml:"field_0x88"`
	Field0x8c      uint32  `yaml:"field_0x8c"`
	Field0x90      uint32  `yaml:"field_0x90"`
	Field0x94      uint32  `yaml:"field_0x94"`
	Field0x98      uint32  `yaml:"field_0x98"`
	Field0x9c      uint32  `yaml:"field_0x9c"`
	Field0xa0      uint32  `yaml:"field_0xa0"`
	Field0xa4      uint32  `yaml:"field_0xa4"`
	Field0xa8      uint32  `yaml:"field_0xa8"`
	Field0xac      uint32  `yaml:"field_0xac"`
	Field0xb0      uint32  `yaml:"field_0xb0"`
	Field0xb4      uint32  `yaml:"field_0xb4"`
	Field0xb8      uint32  `yaml:"field_0xb8"`
	Field0xbc      uint32  `yaml:"field_0xbc"`
	Field0xc0      uint32  `yaml:"field_0xc0"`
	Field0xc4      uint32  `yaml:"field_0xc4"`
	Field0xc8      uint32  `yaml:"field_0xc8"`
	Field0xcc      uint32  `yaml:"field_0xcc"`
	Field0xd0      uint32  `yaml:"field_0xd0"`
	Field0xd4      uint32  `yaml:"field_0xd4"`
	Field0xd8      uint32  `yaml:"field_0xd8"`
	Field0xdc      uint32  `yaml:"field_0xdc"`
	Field0xe0      uint32  `yaml:"field_0xe0"`
	Field0xe4      uint32  `yaml:"field_0xe4"`
	Field0xe8      uint32  `yaml:"field_0xe8"`
	Field0xec      uint32  `yaml:"field_0xec"`
	Field0xf0      uint32  `yaml:"field_0xf0"`
	Field0xf4      uint32  `yaml:"field_0xf4"`
	Field0xf8      uint32  `yaml:"field_0xf8"`
	Field0xfc      uint32  `yaml:"field_0xfc"`
	Field0x100     uint32  `yaml:"field_0x100"`
	Field0x104     uint32  `yaml:"field_0x104"`
	Field0x108     uint32  `yaml:"field_0x108"`
	Field0x10c     uint32  `yaml:"field_0x10c"`
	Field0x110     uint32  `yaml:"field_0x110"`
	Field0x114     uint32  `yaml:"field_0x114"`
	InitFunction   *string `yaml:"init_function"`
	Field0x11c     uint32  `yaml:"field_0x11c"`
	MainFunction   *string `yaml:"main_function"`
	TalkFunction   *string `yaml:"talk_function"`
	Field0x128     uint32  `yaml:"field_0x128"`
	Field0x12c     uint32  `yaml:"field_0x12c"`
	Field0x130     uint32  `yaml:"field_0x130"`
	Field0x134     uint32  `yaml:"field_0x134"`
}

type Mobj struct {
	ID        string  `yaml:"id"`
	Type      string  `yaml:"type"`
	Field0x8  float32 `yaml:"field_0x8"`
	Field0xc  float32 `yaml:"field_0xc"`
	Field0x10 float32 `yaml:"field_0x10"`
	Field0x14 uint32  `yaml:"field_0x14"`
	Field0x18 uint32  `yaml:"field_0x18"`
	Field0x1c uint32  `yaml:"field_0x1c"`
	Field0x20 uint32  `yaml:"field_0x20"`
	Field0x24 uint32  `yaml:"field_0x24"`
	Field0x28 uint32  `yaml:"field_0x28"`
	Field0x2c uint32  `yaml:"field_0x2c"`
	Field0x30 uint32  `yaml:"field_0x30"`
	Field0x34 uint32  `yaml:"field_0x34"`
	Field0x38 uint32  `yaml:"field_0x38"`
	Field0x3c uint32  `yaml:"field_0x3c"`
	Field0x40 *string `yaml:"field_0x40"`
	Field0x44 uint32  `yaml:"field_0x44"`
	Field0x48 uint32  `yaml:"field_0x48"`
	Field0x4c uint32  `yaml:"field_0x4c"`
	Field0x50 uint32  `yaml:"field_0x50"`
	Field0x54 uint32  `yaml:"field_0x54"`
	Field0x58 uint32  `yaml:"field_0x58"`
	Field0x5c uint32  `yaml:"field_0x5c"`
	Field0x60 float32 `yaml:"field_0x60"`
	Field0x64 float32 `yaml:"field_0x64"`
	Field0x68 uint32  `yaml:"field_0x68"`
}

// DisposItemEntry is one item placed on a map (named Entry here to
// avoid colliding with the DisposItem group it belongs to).
type DisposItemEntry struct {
	ID        string `yaml:"id"`
	Field0x4  string `yaml:"field1_0x4"`
	Field0x8  float32 `yaml:"field2_0x8"`
	Field0xc  float32 `yaml:"field3_0xc"`
	Field0x10 float32 `yaml:"field4_0x10"`
	Field0x14 uint32  `yaml:"field5_0x14"`
	Field0x18 uint32  `yaml:"field6_0x18"`
	Field0x1c uint32  `yaml:"field7_0x1c"`
	Field0x20 uint32  `yaml:"field8_0x20"`
	Field0x24 uint32  `yaml:"field9_0x24"`
	Field0x28 uint32  `yaml:"field10_0x28"`
	Field0x2c uint32  `yaml:"field11_0x2c"`
	Field0x30 uint32  `yaml:"field12_0x30"`
	Field0x34 uint32  `yaml:"field13_0x34"`
	Field0x38 uint32  `yaml:"field14_0x38"`
	Field0x3c uint32  `yaml:"field15_0x3c"`
}

// ReadDispos decodes the all_disposDataTbl{,Len} symbol pair. The
// trailing table entry is a sentinel the legacy compiler always
// emitted alongside the real count, so the last slot is dropped.
func ReadDispos(d *readdomain.Domain) ([]DisposArea, error) {
	countSym, err := d.FindSymbol("all_disposDataTblLen__Q2_4data10DisposData")
	if err != nil {
		return nil, err
	}
	datasSym, err := d.FindSymbol("all_disposDataTbl__Q2_4data10DisposData")
	if err != nil {
		return nil, err
	}

	r := d.NewReader()
	r.SetPosition(int(countSym.Value))
	count := r.ReadU32()

	r.SetPosition(int(datasSym.Value))
	return readdomain.ReadBoxedVecOf(d, r, count, readDisposAreaBoxed)
}

func readDisposAreaBoxed(d *readdomain.Domain, r *readdomain.Reader) (DisposArea, error) {
	v, err := readdomain.ReadBoxNullable(d, r, func(r *readdomain.Reader) (DisposArea, error) {
		var a DisposArea
		var err error
		if a.ID, err = d.ReadString(r); err != nil {
			return DisposArea{}, err
		}
		if a.MapNpcs, err = readDisposVec(d, r, readDisposNpcBoxed); err != nil {
			return DisposArea{}, err
		}
		if a.MapMobjs, err = readDisposVec(d, r, readDisposMobjBoxed); err != nil {
			return DisposArea{}, err
		}
		if a.MapItems, err = readDisposVec(d, r, readDisposItemBoxed); err != nil {
			return DisposArea{}, err
		}
		return a, nil
	})
	if err != nil {
		return DisposArea{}, err
	}
	if v == nil {
		return DisposArea{}, nil
	}
	return *v, nil
}

// readDisposVec mirrors read_dispos_item_vec: a (pointer, count) pair
// whose trailing slot is again a sentinel dropped from the count. The
// element loop itself is readdomain.ReadBoxedVecOf.
func readDisposVec[T any](d *readdomain.Domain, r *readdomain.Reader, readOne func(*readdomain.Domain, *readdomain.Reader) (T, error)) ([]T, error) {
	p, err := d.ReadPointer(r)
	if err != nil {
		return nil, err
	}
	count := r.ReadU32()

	defer r.ScopedPos()()
	r.SetPosition(p.Int())

	out, err := readdomain.ReadBoxedVecOf(d, r, count, readOne)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func readDisposNpcBoxed(d *readdomain.Domain, r *readdomain.Reader) (DisposNpc, error) {
	v, err := readdomain.ReadBoxNullable(d, r, func(r *readdomain.Reader) (DisposNpc, error) {
		var n DisposNpc
		var err error
		if n.MapID, err = d.ReadString(r); err != nil {
			return DisposNpc{}, err
		}
		if n.Npcs, err = readdomain.ReadStdVecOf(d, r, readNpcWith(d)); err != nil {
			return DisposNpc{}, err
		}
		return n, nil
	})
	if err != nil || v == nil {
		return DisposNpc{}, err
	}
	return *v, nil
}

func readDisposMobjBoxed(d *readdomain.Domain, r *readdomain.Reader) (DisposMobj, error) {
	v, err := readdomain.ReadBoxNullable(d, r, func(r *readdomain.Reader) (DisposMobj, error) {
		var m DisposMobj
		var err error
		if m.MapID, err = d.ReadString(r); err != nil {
			return DisposMobj{}, err
		}
		if m.Mobjs, err = readdomain.ReadStdVecOf(d, r, readMobjWith(d)); err != nil {
			return DisposMobj{}, err
		}
		return m, nil
	})
	if err != nil || v == nil {
		return DisposMobj{}, err
	}
	return *v, nil
}

func readDisposItemBoxed(d *readdomain.Domain, r *readdomain.Reader) (DisposItem, error) {
	v, err := readdomain.ReadBoxNullable(d, r, func(r *readdomain.Reader) (DisposItem, error) {
		var it DisposItem
		var err error
		if it.MapID, err = d.ReadString(r); err != nil {
			return DisposItem{}, err
		}
		if it.Items, err = readdomain.ReadStdVecOf(d, r, readDisposItemEntryWith(d)); err != nil {
			return DisposItem{}, err
		}
		return it, nil
	})
	if err != nil || v == nil {
		return DisposItem{}, err
	}
	return *v, nil
}

func readNpcWith(d *readdomain.Domain) func(*readdomain.Reader) (Npc, error) {
	return func(r *readdomain.Reader) (Npc, error) {
		var n Npc
		var err error
		if n.ID, err = d.ReadString(r); err != nil {
			return Npc{}, err
		}
		if n.Type, err = d.ReadString(r); err != nil {
			return Npc{}, err
		}
		n.Field0x8 = r.ReadU32()
		n.Field0xc = r.ReadU32()
		n.Field0x10 = r.ReadF32()
		n.Field0x14 = r.ReadF32()
		n.Field0x18 = r.ReadF32()
		for _, f := range []*uint32{
			&n.Field0x1c, &n.Field0x20, &n.Field0x24, &n.Field0x28, &n.Field0x2c,
			&n.Field0x30, &n.Field0x34, &n.Field0x38,
		} {
			*f = r.ReadU32()
		}
		n.Field0x3c = r.ReadF32()
		for _, f := range []*uint32{
			&n.Field0x40, &n.Field0x44, &n.Field0x48, &n.Field0x4c, &n.Field0x50,
			&n.Field0x54, &n.Field0x58, &n.Field0x5c, &n.Field0x60, &n.Field0x64,
			&n.Field0x68, &n.Field0x6c, &n.Field0x70, &n.Field0x74, &n.Field0x78,
			&n.Field0x7c, &n.Field0x80, &n.Field0x84, &n.Field0x88, &n.Field0x8c,
			&n.Field0x90, &n.Field0x94, &n.Field0x98, &n.Field0x9c, &n.Field0xa0,
			&n.Field0xa4, &n.Field0xa8, &n.Field0xac, &n.Field0xb0, &n.Field0xb4,
			&n.Field0xb8, &n.Field0xbc, &n.Field0xc0, &n.Field0xc4, &n.Field0xc8,
			&n.Field0xcc, &n.Field0xd0, &n.Field0xd4, &n.Field0xd8, &n.Field0xdc,
			&n.Field0xe0, &n.Field0xe4, &n.Field0xe8, &n.Field0xec, &n.Field0xf0,
			&n.Field0xf4, &n.Field0xf8, &n.Field0xfc, &n.Field0x100, &n.Field0x104,
			&n.Field0x108, &n.Field0x10c, &n.Field0x110, &n.Field0x114,
		} {
			*f = r.ReadU32()
		}
		if s, ok, err := d.ReadStringOptional(r); err != nil {
			return Npc{}, err
		} else if ok {
			n.InitFunction = &s
		}
		n.Field0x11c = r.ReadU32()
		if s, ok, err := d.ReadStringOptional(r); err != nil {
			return Npc{}, err
		} else if ok {
			n.MainFunction = &s
		}
		if s, ok, err := d.ReadStringOptional(r); err != nil {
			return Npc{}, err
		} else if ok {
			n.TalkFunction = &s
		}
		n.Field0x128 = r.ReadU32()
		n.Field0x12c = r.ReadU32()
		n.Field0x130 = r.ReadU32()
		n.Field0x134 = r.ReadU32()
		return n, nil
	}
}

func readMobjWith(d *readdomain.Domain) func(*readdomain.Reader) (Mobj, error) {
	return func(r *readdomain.Reader) (Mobj, error) {
		var m Mobj
		var err error
		if m.ID, err = d.ReadString(r); err != nil {
			return Mobj{}, err
		}
		if m.Type, err = d.ReadString(r); err != nil {
			return Mobj{}, err
		}
		m.Field0x8 = r.ReadF32()
		m.Field0xc = r.ReadF32()
		m.Field0x10 = r.ReadF32()
		for _, f := range []*uint32{
			&m.Field0x14, &m.Field0x18, &m.Field0x1c, &m.Field0x20, &m.Field0x24,
			&m.Field0x28, &m.Field0x2c, &m.Field0x30, &m.Field0x34, &m.Field0x38,
			&m.Field0x3c,
		} {
			*f = r.ReadU32()
		}
		if s, ok, err := d.ReadStringOptional(r); err != nil {
			return Mobj{}, err
		} else if ok {
			m.Field0x40 = &s
		}
		for _, f := range []*uint32{
			&m.Field0x44, &m.Field0x48, &m.Field0x4c, &m.Field0x50,
			&m.Field0x54, &m.Field0x58, &m.Field0x5c,
		} {
			*f = r.ReadU32()
		}
		m.Field0x60 = r.ReadF32()
		m.Field0x64 = r.ReadF32()
		m.Field0x68 = r.ReadU32()
		return m, nil
	}
}

func readDisposItemEntryWith(d *readdomain.Domain) func(*readdomain.Reader) (DisposItemEntry, error) {
	return func(r *readdomain.Reader) (DisposItemEntry, error) {
		var it DisposItemEntry
		var err error
		if it.ID, err = d.ReadString(r); err != nil {
			return DisposItemEntry{}, err
		}
		if it.Field0x4, err = d.ReadString(r); err != nil {
			return DisposItemEntry{}, err
		}
		it.Field0x8 = r.ReadF32()
		it.Field0xc = r.ReadF32()
		it.Field0x10 = r.ReadF32()
		for _, f := range []*uint32{
			&it.Field0x14, &it.Field0x18, &it.Field0x1c, &it.Field0x20,
			&it.Field0x24, &it.Field0x28, &it.Field0x2c, &it.Field0x30,
			&it.Field0x34, &it.Field0x38, &it.Field0x3c,
		} {
			*f = r.ReadU32()
		}
		return it, nil
	}
}

// WriteDispos re-emits areas as a fresh content section. The legacy
// tool's own write path for this format was left unimplemented
// ("rebuilding the elf is not implemented yet"); this completes it
// using the same boxed-record and pointer+count primitives the read
// side above already establishes, run in reverse.
func WriteDispos(d *writedomain.Domain, areas []DisposArea) error {
	w := d.Root()

	if err := d.WriteSymbol(w, "all_disposDataTblLen__Q2_4data10DisposData", func(w *heap.Writer) error {
		w.WriteU32(uint32(len(areas) + 1))
		return nil
	}); err != nil {
		return err
	}

	return d.WriteSymbol(w, "all_disposDataTbl__Q2_4data10DisposData", func(w *heap.Writer) error {
		return writedomain.WriteBoxedSliceOf(d, w, writedomain.Internal('a'), areas, writeDisposAreaWith(d))
	})
}

func writeDisposAreaWith(d *writedomain.Domain) func(*heap.Writer, DisposArea) error {
	return func(w *heap.Writer, a DisposArea) error {
		if err := d.WriteString(w, a.ID, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := writedomain.WriteBoxedVecOf(d, w, writedomain.Internal('p'), writedomain.Internal('n'), a.MapNpcs, writeDisposNpcWith(d)); err != nil {
			return err
		}
		if err := writedomain.WriteBoxedVecOf(d, w, writedomain.Internal('q'), writedomain.Internal('o'), a.MapMobjs, writeDisposMobjWith(d)); err != nil {
			return err
		}
		return writedomain.WriteBoxedVecOf(d, w, writedomain.Internal('r'), writedomain.Internal('t'), a.MapItems, writeDisposItemWith(d))
	}
}

// writeDisposNpcWith writes one boxed DisposNpc's content. The map_id
// field deliberately defeats string deduplication, mirroring the TODO
// left in the original source ("turning off deduplication is a hack,
// figure out serialization order better") rather than fixing what
// byte-identity requires stay a quirk.
func writeDisposNpcWith(d *writedomain.Domain) func(*heap.Writer, DisposNpc) error {
	return func(w *heap.Writer, n DisposNpc) error {
		if err := d.WriteString(w, n.MapID, writedomain.StringArgs{Deduplicate: false}); err != nil {
			return err
		}
		return writedomain.WriteSliceOf(d, w, writedomain.InternalNamed(n.MapID), n.Npcs, writeNpcWith(d))
	}
}

func writeDisposMobjWith(d *writedomain.Domain) func(*heap.Writer, DisposMobj) error {
	return func(w *heap.Writer, m DisposMobj) error {
		if err := d.WriteString(w, m.MapID, writedomain.StringArgs{Deduplicate: false}); err != nil {
			return err
		}
		return writedomain.WriteSliceOf(d, w, writedomain.InternalNamed(m.MapID), m.Mobjs, writeMobjWith(d))
	}
}

func writeDisposItemWith(d *writedomain.Domain) func(*heap.Writer, DisposItem) error {
	return func(w *heap.Writer, it DisposItem) error {
		if err := d.WriteString(w, it.MapID, writedomain.StringArgs{Deduplicate: false}); err != nil {
			return err
		}
		return writedomain.WriteSliceOf(d, w, writedomain.InternalNamed(it.MapID), it.Items, writeDisposItemEntryWith(d))
	}
}

func writeNpcWith(d *writedomain.Domain) func(*heap.Writer, Npc) error {
	return func(w *heap.Writer, n Npc) error {
		if err := d.WriteString(w, n.ID, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, n.Type, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		w.WriteU32(n.Field0x8)
		w.WriteU32(n.Field0xc)
		w.WriteU32(math.Float32bits(n.Field0x10))
		w.WriteU32(math.Float32bits(n.Field0x14))
		w.WriteU32(math.Float32bits(n.Field0x18))
		for _, v := range []uint32{
			n.Field0x1c, n.Field0x20, n.Field0x24, n.Field0x28, n.Field0x2c,
			n.Field0x30, n.Field0x34, n.Field0x38,
		} {
			w.WriteU32(v)
		}
		w.WriteU32(math.Float32bits(n.Field0x3c))
		for _, v := range []uint32{
			n.Field0x40, n.Field0x44, n.Field0x48, n.Field0x4c, n.Field0x50,
			n.Field0x54, n.Field0x58, n.Field0x5c, n.Field0x60, n.Field0x64,
			n.Field0x68, n.Field0x6c, n.Field0x70, n.Field0x74, n.Field0x78,
			n.Field0x7c, n.Field0x80, n.Field0x84, n.Field0x88, n.Field0x8c,
			n.Field0x90, n.Field0x94, n.Field0x98, n.Field0x9c, n.Field0xa0,
			n.Field0xa4, n.Field0xa8, n.Field0xac, n.Field0xb0, n.Field0xb4,
			n.Field0xb8, n.Field0xbc, n.Field0xc0, n.Field0xc4, n.Field0xc8,
			n.Field0xcc, n.Field0xd0, n.Field0xd4, n.Field0xd8, n.Field0xdc,
			n.Field0xe0, n.Field0xe4, n.Field0xe8, n.Field0xec, n.Field0xf0,
			n.Field0xf4, n.Field0xf8, n.Field0xfc, n.Field0x100, n.Field0x104,
			n.Field0x108, n.Field0x10c, n.Field0x110, n.Field0x114,
		} {
			w.WriteU32(v)
		}
		if err := d.WriteStringOptional(w, n.InitFunction, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		w.WriteU32(n.Field0x11c)
		if err := d.WriteStringOptional(w, n.MainFunction, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteStringOptional(w, n.TalkFunction, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		w.WriteU32(n.Field0x128)
		w.WriteU32(n.Field0x12c)
		w.WriteU32(n.Field0x130)
		w.WriteU32(n.Field0x134)
		return nil
	}
}

func writeMobjWith(d *writedomain.Domain) func(*heap.Writer, Mobj) error {
	return func(w *heap.Writer, m Mobj) error {
		if err := d.WriteString(w, m.ID, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, m.Type, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		w.WriteU32(math.Float32bits(m.Field0x8))
		w.WriteU32(math.Float32bits(m.Field0xc))
		w.WriteU32(math.Float32bits(m.Field0x10))
		for _, v := range []uint32{
			m.Field0x14, m.Field0x18, m.Field0x1c, m.Field0x20, m.Field0x24,
			m.Field0x28, m.Field0x2c, m.Field0x30, m.Field0x34, m.Field0x38,
			m.Field0x3c,
		} {
			w.WriteU32(v)
		}
		if err := d.WriteStringOptional(w, m.Field0x40, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		for _, v := range []uint32{
			m.Field0x44, m.Field0x48, m.Field0x4c, m.Field0x50,
			m.Field0x54, m.Field0x58, m.Field0x5c,
		} {
			w.WriteU32(v)
		}
		w.WriteU32(math.Float32bits(m.Field0x60))
		w.WriteU32(math.Float32bits(m.Field0x64))
		w.WriteU32(m.Field0x68)
		return nil
	}
}

func writeDisposItemEntryWith(d *writedomain.Domain) func(*heap.Writer, DisposItemEntry) error {
	return func(w *heap.Writer, it DisposItemEntry) error {
		if err := d.WriteString(w, it.ID, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, it.Field0x4, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		w.WriteU32(math.Float32bits(it.Field0x8))
		w.WriteU32(math.Float32bits(it.Field0xc))
		w.WriteU32(math.Float32bits(it.Field0x10))
		for _, v := range []uint32{
			it.Field0x14, it.Field0x18, it.Field0x1c, it.Field0x20,
			it.Field0x24, it.Field0x28, it.Field0x2c, it.Field0x30,
			it.Field0x34, it.Field0x38, it.Field0x3c,
		} {
			w.WriteU32(v)
		}
		return nil
	}
}
