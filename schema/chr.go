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

// ChrData is the full character-definition table: every NPC and map
// object's stats and script hooks, keyed by nothing but table order.
//
// The legacy source also carries models/kusya_models/painky_models/
// player_data/party_data fields here, but every one of them was a
// hardcoded "TODO" placeholder never actually decoded from the object
// — there is no reader for them to port. They are dropped rather than
// carried forward as dead weight.
type ChrData struct {
	NpcData  []NpcDef  `yaml:"npc_data"`
	MobjData []MobjDef `yaml:"mobj_data"`
}

// NpcDef is one NPC's full definition: stats, position hooks and
// script callbacks. Field names follow the offsets the legacy format
// uses for them, matching the other dense records this tool handles.
type NpcDef struct {
	ID            string  `yaml:"id"`
	Description   string  `yaml:"description"`
	ModelPtr      uint32  `yaml:"model_ptr"`
	Field0xc      string  `yaml:"field_0xc"`
	Field0x10     uint32  `yaml:"field_0x10"`
	Field0x14     string  `yaml:"field_0x14"`
	Field0x18     *string `yaml:"field_0x18"`
	Field0x1c     *string `yaml:"field_0x1c"`
	MainFunction  *string `yaml:"main_function"`
	Field0x24     uint32  `yaml:"field_0x24"`
	ActionFunction *string `yaml:"action_function"`
	Field0x2c     *string `yaml:"field_0x2c"`
	Field0x30     *string `yaml:"field_0x30"`
	Field0x34     *string `yaml:"field_0x34"`
	Field0x38     *string `yaml:"field_0x38"`
	Field0x3c     *string `yaml:"field_0x3c"`
	Field0x40     *string `yaml:"field_0x40"`
	Field0x44     uint32  `yaml:"field_0x44"`
	Field0x48     *string `yaml:"field_0x48"`
	Field0x4c     *string `yaml:"field_0x4c"`
	Field0x50     float32 `yaml:"field_0x50"`
	Field0x54     float32 `yaml:"field_0x54"`
	Field0x58     uint32  `yaml:"field_0x58"`
	Field0x5c     uint32  `yaml:"field_0x5c"`
	Field0x60     uint32  `yaml:"field_0x60"`
	Field0x64     uint32  `yaml:"field_0x64"`
	Field0x68     *string `yaml:"field_0x68"`
	Field0x6c     *string `yaml:"field_0x6c"`
	Field0x70     *string `yaml:"field_0x70"`
	Field0x74     uint32  `yaml:"field_0x74"`
	Field0x78     *string `yaml:"field_0x78"`
	Field0x7c     *string `yaml:"field_0x7c"`
	Field0x80     *string `yaml:"field_0x80"`
	Field0x84     *string `yaml:"field_0x84"`
	Field0x88     *string `yaml:"field_0x88"`
	Field0x8c     float32 `yaml:"field_0x8c"`
	Field0x90     uint32  `yaml:"field_0x90"`
	Field0x94     *string `yaml:"field_0x94"`
	Field0x98     *string `yaml:"field_0x98"`
	Field0x9c     *string `yaml:"field_0x9c"`
	Field0xa0     float32 `yaml:"field_0xa0"`
	Field0xa4     *string `yaml:"field_0xa4"`
	Field0xa8     float32 `yaml:"field_0xa8"`
}

// MobjDef is one map object's definition.
type MobjDef struct {
	ID        string  `yaml:"id"`
	Description string `yaml:"description"`
	ModelPtr  uint32  `yaml:"model_ptr"`
	Field0xc  uint32  `yaml:"field_0xc"`
	Field0x10 string  `yaml:"field_0x10"`
	Field0x14 string  `yaml:"field_0x14"`
	Field0x18 string  `yaml:"field_0x18"`
	Field0x1c string  `yaml:"field_0x1c"`
	Field0x20 uint32  `yaml:"field_0x20"`
	Field0x24 uint32  `yaml:"field_0x24"`
	Field0x28 *string `yaml:"field_0x28"`
}

// ReadChr decodes the two independently-counted npcDataTable/
// mobjDataTable symbol pairs, each a run of boxed records terminated
// by the same trailing-sentinel-included-in-count convention as dispos.
func ReadChr(d *readdomain.Domain) (ChrData, error) {
	npcCountSym, err := d.FindSymbol("npcDataTableLen__Q2_4data3chr")
	if err != nil {
		return ChrData{}, err
	}
	npcDataSym, err := d.FindSymbol("npcDataTable__Q2_4data3chr")
	if err != nil {
		return ChrData{}, err
	}

	r := d.NewReader()
	r.SetPosition(int(npcCountSym.Value))
	npcCount := r.ReadU32()
	r.SetPosition(int(npcDataSym.Value))
	npcData, err := readdomain.ReadBoxedVecOf(d, r, npcCount, readNpcDefBoxed)
	if err != nil {
		return ChrData{}, err
	}

	mobjCountSym, err := d.FindSymbol("mobjDataTableLen__Q2_4data3chr")
	if err != nil {
		return ChrData{}, err
	}
	mobjDataSym, err := d.FindSymbol("mobjDataTable__Q2_4data3chr")
	if err != nil {
		return ChrData{}, err
	}

	r.SetPosition(int(mobjCountSym.Value))
	mobjCount := r.ReadU32()
	r.SetPosition(int(mobjDataSym.Value))
	mobjData, err := readdomain.ReadBoxedVecOf(d, r, mobjCount, readMobjDefBoxed)
	if err != nil {
		return ChrData{}, err
	}

	return ChrData{NpcData: npcData, MobjData: mobjData}, nil
}

func readNpcDefBoxed(d *readdomain.Domain, r *readdomain.Reader) (NpcDef, error) {
	v, err := readdomain.ReadBoxNullable(d, r, readNpcDefContent(d))
	if err != nil || v == nil {
		return NpcDef{}, err
	}
	return *v, nil
}

func readNpcDefContent(d *readdomain.Domain) func(*readdomain.Reader) (NpcDef, error) {
	return func(r *readdomain.Reader) (NpcDef, error) {
		var n NpcDef
		var err error
		if n.ID, err = d.ReadString(r); err != nil {
			return NpcDef{}, err
		}
		if n.Description, err = d.ReadString(r); err != nil {
			return NpcDef{}, err
		}
		n.ModelPtr = r.ReadU32()
		if n.Field0xc, err = d.ReadString(r); err != nil {
			return NpcDef{}, err
		}
		n.Field0x10 = r.ReadU32()
		if n.Field0x14, err = d.ReadString(r); err != nil {
			return NpcDef{}, err
		}
		for _, f := range []**string{&n.Field0x18, &n.Field0x1c} {
			s, ok, err := d.ReadStringOptional(r)
			if err != nil {
				return NpcDef{}, err
			}
			if ok {
				*f = &s
			}
		}
		if s, ok, err := d.ReadStringOptional(r); err != nil {
			return NpcDef{}, err
		} else if ok {
			n.MainFunction = &s
		}
		n.Field0x24 = r.ReadU32()
		if s, ok, err := d.ReadStringOptional(r); err != nil {
			return NpcDef{}, err
		} else if ok {
			n.ActionFunction = &s
		}
		for _, f := range []**string{
			&n.Field0x2c, &n.Field0x30, &n.Field0x34, &n.Field0x38,
			&n.Field0x3c, &n.Field0x40,
		} {
			s, ok, err := d.ReadStringOptional(r)
			if err != nil {
				return NpcDef{}, err
			}
			if ok {
				*f = &s
			}
		}
		n.Field0x44 = r.ReadU32()
		for _, f := range []**string{&n.Field0x48, &n.Field0x4c} {
			s, ok, err := d.ReadStringOptional(r)
			if err != nil {
				return NpcDef{}, err
			}
			if ok {
				*f = &s
			}
		}
		n.Field0x50 = r.ReadF32()
		n.Field0x54 = r.ReadF32()
		n.Field0x58 = r.ReadU32()
		n.Field0x5c = r.ReadU32()
		n.Field0x60 = r.ReadU32()
		n.Field0x64 = r.ReadU32()
		for _, f := range []**string{&n.Field0x68, &n.Field0x6c, &n.Field0x70} {
			s, ok, err := d.ReadStringOptional(r)
			if err != nil {
				return NpcDef{}, err
			}
			if ok {
				*f = &s
			}
		}
		n.Field0x74 = r.ReadU32()
		for _, f := range []**string{
			&n.Field0x78, &n.Field0x7c, &n.Field0x80, &n.Field0x84, &n.Field0x88,
		} {
			s, ok, err := d.ReadStringOptional(r)
			if err != nil {
				return NpcDef{}, err
			}
			if ok {
				*f = &s
			}
		}
		n.Field0x8c = r.ReadF32()
		n.Field0x90 = r.ReadU32()
		for _, f := range []**string{&n.Field0x94, &n.Field0x98, &n.Field0x9c} {
			s, ok, err := d.ReadStringOptional(r)
			if err != nil {
				return NpcDef{}, err
			}
			if ok {
				*f = &s
			}
		}
		n.Field0xa0 = r.ReadF32()
		if s, ok, err := d.ReadStringOptional(r); err != nil {
			return NpcDef{}, err
		} else if ok {
			n.Field0xa4 = &s
		}
		n.Field0xa8 = r.ReadF32()
		return n, nil
	}
}

func readMobjDefBoxed(d *readdomain.Domain, r *readdomain.Reader) (MobjDef, error) {
	v, err := readdomain.ReadBoxNullable(d, r, readMobjDefContent(d))
	if err != nil || v == nil {
		return MobjDef{}, err
	}
	return *v, nil
}

func readMobjDefContent(d *readdomain.Domain) func(*readdomain.Reader) (MobjDef, error) {
	return func(r *readdomain.Reader) (MobjDef, error) {
		var m MobjDef
		var err error
		if m.ID, err = d.ReadString(r); err != nil {
			return MobjDef{}, err
		}
		if m.Description, err = d.ReadString(r); err != nil {
			return MobjDef{}, err
		}
		m.ModelPtr = r.ReadU32()
		m.Field0xc = r.ReadU32()
		for _, f := range []*string{&m.Field0x10, &m.Field0x14, &m.Field0x18, &m.Field0x1c} {
			if *f, err = d.ReadString(r); err != nil {
				return MobjDef{}, err
			}
		}
		m.Field0x20 = r.ReadU32()
		m.Field0x24 = r.ReadU32()
		if s, ok, err := d.ReadStringOptional(r); err != nil {
			return MobjDef{}, err
		} else if ok {
			m.Field0x28 = &s
		}
		return m, nil
	}
}

// WriteChr re-emits npcData/mobjData, completing the writer the
// legacy source never implemented for this format (only read_chr
// exists upstream).
func WriteChr(d *writedomain.Domain, data ChrData) error {
	w := d.Root()

	if err := d.WriteSymbol(w, "npcDataTableLen__Q2_4data3chr", func(w *heap.Writer) error {
		w.WriteU32(uint32(len(data.NpcData) + 1))
		return nil
	}); err != nil {
		return err
	}
	if err := d.WriteSymbol(w, "npcDataTable__Q2_4data3chr", func(w *heap.Writer) error {
		return writedomain.WriteBoxedSliceOf(d, w, writedomain.Internal('c'), data.NpcData, writeNpcDefWith(d))
	}); err != nil {
		return err
	}

	if err := d.WriteSymbol(w, "mobjDataTableLen__Q2_4data3chr", func(w *heap.Writer) error {
		w.WriteU32(uint32(len(data.MobjData) + 1))
		return nil
	}); err != nil {
		return err
	}
	return d.WriteSymbol(w, "mobjDataTable__Q2_4data3chr", func(w *heap.Writer) error {
		return writedomain.WriteBoxedSliceOf(d, w, writedomain.Internal('d'), data.MobjData, writeMobjDefWith(d))
	})
}

func writeNpcDefWith(d *writedomain.Domain) func(*heap.Writer, NpcDef) error {
	return func(w *heap.Writer, n NpcDef) error {
		if err := d.WriteString(w, n.ID, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, n.Description, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		w.WriteU32(n.ModelPtr)
		if err := d.WriteString(w, n.Field0xc, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		w.WriteU32(n.Field0x10)
		if err := d.WriteString(w, n.Field0x14, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		for _, s := range []*string{n.Field0x18, n.Field0x1c} {
			if err := d.WriteStringOptional(w, s, writedomain.DefaultStringArgs); err != nil {
				return err
			}
		}
		if err := d.WriteStringOptional(w, n.MainFunction, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		w.WriteU32(n.Field0x24)
		if err := d.WriteStringOptional(w, n.ActionFunction, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		for _, s := range []*string{
			n.Field0x2c, n.Field0x30, n.Field0x34, n.Field0x38, n.Field0x3c, n.Field0x40,
		} {
			if err := d.WriteStringOptional(w, s, writedomain.DefaultStringArgs); err != nil {
				return err
			}
		}
		w.WriteU32(n.Field0x44)
		for _, s := range []*string{n.Field0x48, n.Field0x4c} {
			if err := d.WriteStringOptional(w, s, writedomain.DefaultStringArgs); err != nil {
				return err
			}
		}
		w.WriteU32(math.Float32bits(n.Field0x50))
		w.WriteU32(math.Float32bits(n.Field0x54))
		w.WriteU32(n.Field0x58)
		w.WriteU32(n.Field0x5c)
		w.WriteU32(n.Field0x60)
		w.WriteU32(n.Field0x64)
		for _, s := range []*string{n.Field0x68, n.Field0x6c, n.Field0x70} {
			if err := d.WriteStringOptional(w, s, writedomain.DefaultStringArgs); err != nil {
				return err
			}
		}
		w.WriteU32(n.Field0x74)
		for _, s := range []*string{n.Field0x78, n.Field0x7c, n.Field0x80, n.Field0x84, n.Field0x88} {
			if err := d.WriteStringOptional(w, s, writedomain.DefaultStringArgs); err != nil {
				return err
			}
		}
		w.WriteU32(math.Float32bits(n.Field0x8c))
		w.WriteU32(n.Field0x90)
		for _, s := range []*string{n.Field0x94, n.Field0x98, n.Field0x9c} {
			if err := d.WriteStringOptional(w, s, writedomain.DefaultStringArgs); err != nil {
				return err
			}
		}
		w.WriteU32(math.Float32bits(n.Field0xa0))
		if err := d.WriteStringOptional(w, n.Field0xa4, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		w.WriteU32(math.Float32bits(n.Field0xa8))
		return nil
	}
}

func writeMobjDefWith(d *writedomain.Domain) func(*heap.Writer, MobjDef) error {
	return func(w *heap.Writer, m MobjDef) error {
		if err := d.WriteString(w, m.ID, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		if err := d.WriteString(w, m.Description, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		w.WriteU32(m.ModelPtr)
		w.WriteU32(m.Field0xc)
		for _, s := range []string{m.Field0x10, m.Field0x14, m.Field0x18, m.Field0x1c} {
			if err := d.WriteString(w, s, writedomain.DefaultStringArgs); err != nil {
				return err
			}
		}
		w.WriteU32(m.Field0x20)
		w.WriteU32(m.Field0x24)
		return d.WriteStringOptional(w, m.Field0x28, writedomain.DefaultStringArgs)
	}
}
