// Copyright (c) 2025 The veb authors
// SPDX-License-Identifier: MIT

package veb

import (
	"slices"

	"github.com/vebtree/veb/internal/bitset"
)

// Clone returns a deep copy of the set. The copy shares no nodes with the
// original, mutating one never affects the other.
func (s *Set) Clone() *Set {
	c := &Set{size: s.size}
	if s.root != nil {
		root := s.root.cloneRec()
		c.root = &root
	}
	return c
}

// Equal reports whether s and o contain exactly the same elements.
//
// The tree layout is canonical, a given element set always produces the
// same structure, so structural comparison decides set equality.
func (s *Set) Equal(o *Set) bool {
	if s.size != o.size {
		return false
	}
	if s.size == 0 {
		return true
	}
	return s.root.equalRec(o.root)
}

// cloneRec clones the subtree, the copy has the identical bit layout.
func (n *node) cloneRec() (c node) {
	c.min, c.max, c.present = n.min, n.max, n.present

	switch s := n.summary.(type) {
	case *node:
		cs := s.cloneRec()
		c.summary = &cs
	case *bitset.BitSet16:
		d := *s
		c.summary = &d
	default:
		panic("logic error, unexpected summary type")
	}

	switch kids := n.children.(type) {
	case []node:
		ck := make([]node, len(kids))
		for i := range kids {
			ck[i] = kids[i].cloneRec()
		}
		c.children = ck
	case []bitset.BitSet16:
		c.children = slices.Clone(kids)
	default:
		panic("logic error, unexpected child type")
	}

	return c
}

// equalRec compares two subtrees of identical bit layout.
func (n *node) equalRec(o *node) bool {
	if n.present != o.present {
		return false
	}
	if !n.present {
		// empty subtrees have empty summaries and children
		return true
	}
	if n.min != o.min || n.max != o.max {
		return false
	}

	switch s := n.summary.(type) {
	case *node:
		if !s.equalRec(o.summary.(*node)) {
			return false
		}
	case *bitset.BitSet16:
		if *s != *o.summary.(*bitset.BitSet16) {
			return false
		}
	}

	switch kids := n.children.(type) {
	case []node:
		oKids := o.children.([]node)
		for i := range kids {
			if !kids[i].equalRec(&oKids[i]) {
				return false
			}
		}
	case []bitset.BitSet16:
		if !slices.Equal(kids, o.children.([]bitset.BitSet16)) {
			return false
		}
	}

	return true
}
