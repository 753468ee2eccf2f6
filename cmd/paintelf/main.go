// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command paintelf disassembles and reassembles the legacy game's
// ELF32 big-endian PowerPC data objects (map links, map IDs, shops,
// disposition tables, character definitions, location triggers) to and
// from YAML.
package main

func main() {
	Execute()
}
