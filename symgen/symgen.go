// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symgen implements the legacy compiler's deterministic short
// symbol name generator. Round-tripped binaries depend on its exact
// sequence, including an apparent off-by-one quirk in how its leading
// digit overflows, so this is a literal port rather than a redesign.
package symgen

// Alphabet is the 93-character set the generator cycles through.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@$%^&*()_+-=[]{};'\\:\"|,./<>?~`"

const alphabetLen = len(Alphabet)

// A Generator produces a strictly increasing sequence of short ASCII
// identifiers, odometer-style. The zero value is ready to use.
type Generator struct {
	indices []int
	result  []byte
}

// Next returns the next tail in the sequence. The very first call
// returns the empty string (it only seeds the generator's internal
// state); every call after that returns a non-empty tail.
func (g *Generator) Next() string {
	if len(g.indices) == 0 {
		g.indices = append(g.indices, 0)
		g.result = append(g.result, Alphabet[0])
		return ""
	}

	i := len(g.indices) - 1
	for g.countUp(i) {
		if i == 0 {
			g.indices = append(g.indices, 0)
			g.result = append(g.result, Alphabet[0])
			break
		}
		i--
	}
	return string(g.result)
}

// countUp increments the digit at index and reports whether it
// overflowed. The digit at index 0 never wraps back to 0 ('a') on
// overflow; it wraps to 1 instead, and the caller grows a new digit.
func (g *Generator) countUp(index int) bool {
	g.indices[index]++
	v := g.indices[index]
	overflow := v >= alphabetLen
	if overflow {
		if index == 0 {
			v = 1
		} else {
			v = 0
		}
		g.indices[index] = v
	}
	g.result[index] = Alphabet[v]
	return overflow
}
