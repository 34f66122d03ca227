// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decoder implements the beamed Viterbi decoder: given a compiled
// hmodel.Model and a sentence, it searches a trellis of n-gram states to
// produce the most probable tag sequences, reconciling up to four sources
// of per-token evidence (a seen lexicon entry, an external morphological
// analyser, a matched special-token class, and the suffix guesser) plus
// an optional user-supplied pre-analysis per token.
//
// It generalizes citar's tagger.HMMTagger — a fixed trigram Viterbi over a
// single lexicon-or-suffix-handler choice per word — to an arbitrary tag
// order and the richer per-token evidence reconciliation this domain
// requires.
package decoder
