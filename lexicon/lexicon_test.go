package lexicon

import "testing"

func TestAddAndQuery(t *testing.T) {
	l := New()
	l.Add("dog", 3, 5)
	l.Add("dog", 3, 2)
	l.Add("dog", 4, 1)

	if got := l.Count("dog", 3); got != 7 {
		t.Errorf("Count(dog, 3) = %d, want 7", got)
	}
	if got := l.WordCount("dog"); got != 8 {
		t.Errorf("WordCount(dog) = %d, want 8", got)
	}

	tags := l.Tags("dog")
	if len(tags) != 2 {
		t.Errorf("Tags(dog) = %v, want 2 entries", tags)
	}
}

func TestUnknownWord(t *testing.T) {
	l := New()

	if tags := l.Tags("ghost"); tags != nil {
		t.Errorf("Tags(ghost) = %v, want nil", tags)
	}
	if got := l.WordCount("ghost"); got != 0 {
		t.Errorf("WordCount(ghost) = %d, want 0", got)
	}
}
