// Ported from PurePos-Python3's purepos/common/analysisqueue.py.
// Copyright (c) 2015 Móréh Tamás. Licensed under the GNU Lesser General
// Public License v3; see http://www.gnu.org/licenses/.

// Package useranalysis parses the inline pre-analysis bracket syntax a
// tagging-input token may carry (word{{lemma1[tag1]$$0.3||lemma2[tag2]$$0.7}})
// into a per-position lexical sub-model the decoder consults in place of the
// trained emission model.
package useranalysis
