// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hmodel is the compiled model container: it owns the tag
// vocabulary, the lexicons, the context tries and the suffix guessers
// built from a training corpus, and the Compile step that freezes them
// into the smoothed, inference-ready structures the decoder and the
// lemma selector consult.
package hmodel
