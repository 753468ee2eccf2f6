// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/pkg/errors"

	"github.com/Darxoon/paintelf/heap"
	"github.com/Darxoon/paintelf/readdomain"
	"github.com/Darxoon/paintelf/schema"
	"github.com/Darxoon/paintelf/writedomain"
)

// readFormat dispatches to the schema adapter matching fileType and
// wraps its result in a FileData, ready for YAML marshaling.
func readFormat(d *readdomain.Domain, fileType schema.FileType) (schema.FileData, error) {
	data := schema.FileData{Type: fileType}
	var err error
	switch fileType {
	case schema.FileTypeMaplink:
		data.Maplink, err = schema.ReadMaplink(d)
	case schema.FileTypeMapID:
		data.MapID, err = schema.ReadMapID(d)
	case schema.FileTypeShop:
		data.Shop, err = schema.ReadShops(d)
	case schema.FileTypeDispos:
		data.Dispos, err = schema.ReadDispos(d)
	case schema.FileTypeChr:
		var chr schema.ChrData
		chr, err = schema.ReadChr(d)
		data.Chr = &chr
	case schema.FileTypeLct:
		data.Lct, err = schema.ReadLct(d)
	default:
		return schema.FileData{}, errors.Errorf("unrecognized format %q", fileType)
	}
	if err != nil {
		return schema.FileData{}, errors.Wrapf(err, "reading %s", fileType)
	}
	return data, nil
}

// writeFormat dispatches data's populated field to the matching schema
// writer against a freshly built writedomain.Domain, every format in
// this tool's preferred content section (every sample object's
// .rodata, per the format survey this tool's schema registry is built
// on).
func writeFormat(data schema.FileData, debugRelocations bool) (*writedomain.Domain, error) {
	if data.Type == "" {
		return nil, errors.New("file data carries no type tag")
	}
	d := writedomain.New(heap.CategoryRodata, data.Type.StringDedupSize(), debugRelocations)

	var err error
	switch data.Type {
	case schema.FileTypeMaplink:
		err = schema.WriteMaplink(d, data.Maplink)
	case schema.FileTypeMapID:
		err = schema.WriteMapID(d, data.MapID)
	case schema.FileTypeShop:
		err = schema.WriteShops(d, data.Shop)
	case schema.FileTypeDispos:
		err = schema.WriteDispos(d, data.Dispos)
	case schema.FileTypeChr:
		if data.Chr == nil {
			return nil, errors.New("chr file data is missing its chr section")
		}
		err = schema.WriteChr(d, *data.Chr)
	case schema.FileTypeLct:
		err = schema.WriteLct(d, data.Lct)
	default:
		return nil, errors.Errorf("unrecognized format %q", data.Type)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "writing %s", data.Type)
	}
	return d, nil
}
