// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package purepos provides a hybrid statistical part-of-speech tagger and
// lemmatizer for morphologically rich languages.
//
// Tagging combines a trigram Hidden Markov Model over known words with a
// suffix-based guesser for words unseen during training, decoded with a
// pruned Viterbi search (package decoder). Lemmatization (package lemma)
// picks among lemma candidates produced by suffix-stripping transformation
// rules learned from the training corpus, optionally informed by an
// external morphological analyser.
//
// The architecture is inspired by Thorsten Brants' TnT tagger: TnT: A
// Statistical Part-of-Speech Tagger, Thorsten Brants, Proceedings of the
// sixth conference on Applied natural language processing, ANLC '00.
package purepos
