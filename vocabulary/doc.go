// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vocabulary provides the bijection between tag strings and the
// dense integer ids the rest of purepos works with, plus a TagMapper that
// rewrites tag ids introduced after training (typically by a morphological
// analyser) back onto ids the trained model actually knows about.
package vocabulary
