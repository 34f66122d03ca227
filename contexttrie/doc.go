// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contexttrie implements the n-ary trie that both the
// tag-transition model and the emission model are built from. A path from
// the root, root -> t_k -> ... -> t_1, represents the reversed tag context
// (t_1, ..., t_k): the most recently emitted tag is the root's direct
// child, and older tags lie deeper. Each node counts the elements (tags, for the transition trie;
// wordforms, for the emission trie) seen in that context.
//
// Nodes live in a flat slice addressed by index rather than behind
// pointers, which keeps the deleted-interpolation traversal (package
// langmodel) cache-friendly and makes the structure trivial to hand to
// encoding/gob.
package contexttrie
