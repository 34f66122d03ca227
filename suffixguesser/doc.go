// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package suffixguesser estimates tag distributions for words that were
// not seen (or seen only rarely) during training, using Brants-style
// successive abstraction over word suffixes. Two independent guessers are
// normally kept side by side, one trained on entirely lowercase words and
// one on words containing any uppercase letter, since capitalization is itself
// informative about part of speech in morphologically rich languages.
package suffixguesser
