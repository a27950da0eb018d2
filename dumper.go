// Copyright (c) 2025 The veb authors
// SPDX-License-Identifier: MIT

package veb

import (
	"fmt"
	"io"
	"strings"

	"github.com/vebtree/veb/internal/bitset"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (s *Set) dumpString() string {
	w := new(strings.Builder)
	s.dump(w)

	return w.String()
}

// dump the set structure and all the nodes to w.
func (s *Set) dump(w io.Writer) {
	if s == nil {
		return
	}

	fmt.Fprintf(w, "### size(%d)\n", s.size)
	if s.root != nil {
		dumpRec(w, s.root, totalBits, 0, "root")
	}
}

// dumpRec, rec-descent the tree; t is a *node or a *bitset.BitSet16.
func dumpRec(w io.Writer, t any, bits uint8, depth int, label string) {
	indent := strings.Repeat(".", depth*4)

	switch t := t.(type) {
	case *bitset.BitSet16:
		fmt.Fprintf(w, "%s%s(%d): bits(%v)\n", indent, label, bits, t.All())

	case *node:
		if !t.present {
			fmt.Fprintf(w, "%s%s(%d): empty\n", indent, label, bits)
			return
		}
		fmt.Fprintf(w, "%s%s(%d): min(%d) max(%d)\n", indent, label, bits, t.min, t.max)

		hi, lo := splitBits(bits)
		dumpRec(w, t.summary, hi, depth+1, "summary")

		switch kids := t.children.(type) {
		case []node:
			for i := range kids {
				if kids[i].present {
					dumpRec(w, &kids[i], lo, depth+1, fmt.Sprintf("child[%d]", i))
				}
			}
		case []bitset.BitSet16:
			for i := range kids {
				if !kids[i].IsEmpty() {
					dumpRec(w, &kids[i], lo, depth+1, fmt.Sprintf("child[%d]", i))
				}
			}
		}
	}
}
