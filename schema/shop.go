// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/Darxoon/paintelf/heap"
	"github.com/Darxoon/paintelf/readdomain"
	"github.com/Darxoon/paintelf/writedomain"
)

// Shop is one merchant's stock list.
type Shop struct {
	ShopID string     `yaml:"shop_id"`
	Items  []SoldItem `yaml:"items"`
}

// SoldItem is one entry in a Shop's stock list. Both fields are
// optional: a shop's item table is terminated by a record where both
// are unset, never by a separate count.
type SoldItem struct {
	ItemID      *string `yaml:"item_id"`
	Requirement *string `yaml:"requirement"`
}

func (s SoldItem) isZero() bool {
	return s.ItemID == nil && s.Requirement == nil
}

// ReadShops decodes the shopListLen/shopList symbol pair.
func ReadShops(d *readdomain.Domain) ([]Shop, error) {
	lenSym, err := d.FindSymbol("shopListLen__Q2_4data4shop")
	if err != nil {
		return nil, err
	}
	listSym, err := d.FindSymbol("shopList__Q2_4data4shop")
	if err != nil {
		return nil, err
	}

	r := d.NewReader()
	r.SetPosition(int(lenSym.Value))
	count := r.ReadU32()

	r.SetPosition(int(listSym.Value))
	shops := make([]Shop, count)
	for i := range shops {
		s, err := readShop(d, r)
		if err != nil {
			return nil, err
		}
		shops[i] = s
	}
	return shops, nil
}

func readShop(d *readdomain.Domain, r *readdomain.Reader) (Shop, error) {
	shopID, err := d.ReadString(r)
	if err != nil {
		return Shop{}, err
	}
	items, err := readdomain.ReadNullTerminatedVecOf(d, r, readSoldItemWith(d), SoldItem.isZero)
	if err != nil {
		return Shop{}, err
	}
	return Shop{ShopID: shopID, Items: items}, nil
}

func readSoldItemWith(d *readdomain.Domain) func(*readdomain.Reader) (SoldItem, error) {
	return func(r *readdomain.Reader) (SoldItem, error) {
		var item SoldItem
		itemID, hasItemID, err := d.ReadStringOptional(r)
		if err != nil {
			return SoldItem{}, err
		}
		if hasItemID {
			item.ItemID = &itemID
		}
		requirement, hasReq, err := d.ReadStringOptional(r)
		if err != nil {
			return SoldItem{}, err
		}
		if hasReq {
			item.Requirement = &requirement
		}
		return item, nil
	}
}

// WriteShops re-emits shops, grounded directly on write_shops: the
// shopList symbol (each shop's id then its item table) followed by the
// shopListLen symbol, in that literal order.
func WriteShops(d *writedomain.Domain, shops []Shop) error {
	w := d.Root()

	if err := d.WriteSymbol(w, "shopList__Q2_4data4shop", func(w *heap.Writer) error {
		for _, s := range shops {
			if err := writeShop(d, w, s); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return d.WriteSymbol(w, "shopListLen__Q2_4data4shop", func(w *heap.Writer) error {
		w.WriteU32(uint32(len(shops)))
		return nil
	})
}

func writeShop(d *writedomain.Domain, w *heap.Writer, s Shop) error {
	if err := d.WriteString(w, s.ShopID, writedomain.DefaultStringArgs); err != nil {
		return err
	}
	return writedomain.WriteNullTerminatedSliceOf(d, w, writedomain.NullTerminatedArgs{
		Name:        writedomain.Internal('s'),
		WriteLength: false,
	}, s.Items, writeSoldItemWith(d))
}

func writeSoldItemWith(d *writedomain.Domain) func(*heap.Writer, SoldItem) error {
	return func(w *heap.Writer, item SoldItem) error {
		if err := d.WriteStringOptional(w, item.ItemID, writedomain.DefaultStringArgs); err != nil {
			return err
		}
		return d.WriteStringOptional(w, item.Requirement, writedomain.DefaultStringArgs)
	}
}
