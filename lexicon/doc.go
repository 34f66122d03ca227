// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexicon provides the word/tag frequency tables that back known-
// word emission probabilities: one table for ordinary wordforms, and a
// parallel table for the abstract classes the special-token matcher
// produces.
package lexicon
