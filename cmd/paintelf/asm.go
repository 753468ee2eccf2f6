// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Darxoon/paintelf/schema"
	"github.com/Darxoon/paintelf/writedomain"
)

// sectionAlign is the .rodata section's sh_addralign, fixed across
// every format this tool handles.
const sectionAlign = 4

var (
	asmType  string
	asmDebug bool
)

var asmCmd = &cobra.Command{
	Use:   "asm <yaml-path>",
	Short: "Reassemble a YAML data file back into a data object",
	Long: `asm parses a YAML file, runs it through the schema adapter named
by --type, and writes a reassembled .elf file with the same base name.

With --debug, pointer slots carry their resolved target OR'd with
0x70000000 instead of the literal zero the production format requires.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsm,
}

func init() {
	rootCmd.AddCommand(asmCmd)

	asmCmd.Flags().StringVar(&asmType, "type", "", "format tag ("+strings.Join(fileTypeNames(), ", ")+")")
	asmCmd.Flags().BoolVar(&asmDebug, "debug", false, "tag relocation targets into pointer slots instead of zeroing them")
	asmCmd.MarkFlagRequired("type")
}

func runAsm(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	fileType, err := schema.ParseFileType(asmType)
	if err != nil {
		return errors.WithStack(err)
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return errors.Wrapf(err, "reading %s", inputPath)
	}

	var data schema.FileData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return errors.Wrapf(err, "parsing %s", inputPath)
	}
	data.Type = fileType

	domain, err := writeFormat(data, asmDebug)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", inputPath)
	}

	assembled, err := domain.Finalize(fileType.CppFileName())
	if err != nil {
		return errors.Wrapf(err, "finalizing %s", inputPath)
	}

	container := writedomain.BuildContainer(fileType.IdentPaddingWord(), sectionAlign, assembled)
	out, err := container.Bytes()
	if err != nil {
		return errors.Wrap(err, "serializing object")
	}

	outPath := withExt(inputPath, ".elf")
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", outPath)
	}
	return nil
}
