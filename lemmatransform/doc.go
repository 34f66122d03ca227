// Copyright 2016 The Purepos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lemmatransform encodes the structural difference between a word
// and its lemma as a small, invertible value: a case adjustment on the
// first character plus a suffix removal/addition. Only the suffix-only
// encoding is implemented (see DESIGN.md for why the alternative
// longest-common-substring encoding was left out).
package lemmatransform
