// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package langmodel builds a Brants-style deleted-interpolation smoothed
// probability model from a contexttrie.Trie of raw counts. It generalizes
// the trigram-only linear interpolation that citar's trigrams package
// implements to an arbitrary context depth, so the same code serves both
// the tag-transition model and the word-emission model.
package langmodel
