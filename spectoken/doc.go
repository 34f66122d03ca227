// Ported from PurePos-Python3's purepos/common/spectokenmatcher.py.
// Copyright (c) 2015 Móréh Tamás. Licensed under the GNU Lesser General
// Public License v3; see http://www.gnu.org/licenses/.

// Package spectoken classifies raw tokens into a small set of abstract
// "special token" classes (cardinals, HTML entities, punctuation runs) so
// that surface-distinct tokens that share the same class can share
// emission statistics, the way @CARD covers every undifferentiated
// number.
package spectoken
