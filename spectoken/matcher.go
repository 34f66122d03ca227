// Ported from PurePos-Python3's purepos/common/spectokenmatcher.py.
// Copyright (c) 2015 Móréh Tamás. Licensed under the GNU Lesser General
// Public License v3; see http://www.gnu.org/licenses/.

package spectoken

import "regexp"

// punctChars is the fixed set of characters a @PUNCT token may be made of.
const punctChars = `!"#$%&()*+,-./:;<=>?@[\]^_` + "`" + `{|}~«»…·→—•'`

type classPattern struct {
	class   string
	pattern *regexp.Regexp
}

// patterns is consulted in order; the first match wins.
var patterns = []classPattern{
	{"@CARD", regexp.MustCompile(`^[0-9]+$`)},
	{"@CARDPUNCT", regexp.MustCompile(`^[0-9]+\.$`)},
	{"@CARDSEPS", regexp.MustCompile(`^[0-9.,:-]*[0-9][0-9.,:-]*[0-9]$`)},
	{"@CARDSUFFIX", regexp.MustCompile(`^[0-9]+[a-zA-Z]{1,3}$`)},
	{"@HTMLENTITY", regexp.MustCompile(`^&[^;]+;?$`)},
	{"@PUNCT", regexp.MustCompile(`^[` + regexp.QuoteMeta(punctChars) + `]+$`)},
}

// Match returns the name of the first special-token class whose pattern
// matches token in its entirety, or "" if no class matches.
func Match(token string) string {
	for _, p := range patterns {
		if p.pattern.MatchString(token) {
			return p.class
		}
	}
	return ""
}

// Classes returns the ordered list of class names the matcher can produce.
func Classes() []string {
	names := make([]string, len(patterns))
	for i, p := range patterns {
		names[i] = p.class
	}
	return names
}
