package spectoken

import "testing"

func TestMatchClasses(t *testing.T) {
	cases := []struct {
		token string
		class string
	}{
		{"1234", "@CARD"},
		{"1984.", "@CARDPUNCT"},
		{"12-1993.10.01", "@CARDSEPS"},
		{"24th", "@CARDSUFFIX"},
		{"&amp;", "@HTMLENTITY"},
		{"&amp", "@HTMLENTITY"},
		{"...", "@PUNCT"},
		{"--", "@PUNCT"},
	}

	for _, c := range cases {
		if got := Match(c.token); got != c.class {
			t.Errorf("Match(%q) = %q, want %q", c.token, got, c.class)
		}
	}
}

func TestMatchOrdering(t *testing.T) {
	// "1984" matches both @CARD and @CARDSEPS; @CARD must win because it is
	// tried first.
	if got := Match("1984"); got != "@CARD" {
		t.Errorf("Match(%q) = %q, want @CARD", "1984", got)
	}
}

func TestMatchRejectsOrdinaryWords(t *testing.T) {
	for _, token := range []string{"alma", "Budapest", "dog's"} {
		if got := Match(token); got != "" {
			t.Errorf("Match(%q) = %q, want no match", token, got)
		}
	}
}

func TestClassesListsSixClasses(t *testing.T) {
	if len(Classes()) != 6 {
		t.Errorf("Classes() has %d entries, want 6", len(Classes()))
	}
}
