// Copyright (c) 2025 The veb authors
// SPDX-License-Identifier: MIT

// Package veb provides an ordered set of unsigned 16-bit integers backed
// by a van Emde Boas tree.
//
// Membership, insertion, deletion and, crucially, successor/predecessor
// queries all run in O(log log U) time for the universe U = 2^16, in
// practice at most four recursive levels.
//
// Internally, the tree halves the universe at every level: a level of
// 2^k values splits each value into ceil(k/2) high bits selecting a child
// and floor(k/2) low bits stored within it, with an auxiliary summary tree
// indexing the non-empty children. Once a level manages no more than 16
// values the subtree degenerates into a single 16-bit word.
//
// Every level caches its subtree's min and max, and the min is never
// stored in a child. Insertion into an empty child is therefore a
// constant-time set-min, which keeps every operation down to one real
// recursive call per level.
//
// The package exposes both a value-level API (Contains, Next, Prev, ...)
// and sorted bidirectional traversal via [Cursor] and the range iterators
// [Set.All] and [Set.Backward].
package veb
