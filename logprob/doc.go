// Copyright 2016 The Purepos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logprob holds the handful of constants and helpers that every
// probability-bearing package in purepos shares: everything is stored as a
// natural log, and a single sentinel value stands in both for "probability
// mass is zero" and for "this lookup deliberately failed".
package logprob
