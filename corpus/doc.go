// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corpus reads and writes the word/lemma/tag triple formats used
// for training data and for tagging input and output. It replaces a
// tabular CoNLL-style reader with the separator-delimited triple format
// this project's training and tagging corpora actually use (see
// DESIGN.md for why the column-oriented format was not reused).
package corpus
