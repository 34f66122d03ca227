package vocabulary

import (
	"regexp"
	"testing"
)

func TestReservedSentinels(t *testing.T) {
	v := New()

	if id, ok := v.ID(BOSTag); !ok || id != BOSID {
		t.Errorf("ID(%q) = (%d, %v), want (%d, true)", BOSTag, id, ok, BOSID)
	}
	if id, ok := v.ID(EOSTag); !ok || id != EOSID {
		t.Errorf("ID(%q) = (%d, %v), want (%d, true)", EOSTag, id, ok, EOSID)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	v := New()

	first := v.Add("NOUN")
	second := v.Add("NOUN")

	if first != second {
		t.Errorf("Add(\"NOUN\") returned %d then %d, want stable id", first, second)
	}
}

func TestRoundTrip(t *testing.T) {
	v := New()

	tags := []string{"NOUN", "VERB", "ADJ"}
	ids := make([]int, len(tags))
	for i, tag := range tags {
		ids[i] = v.Add(tag)
	}

	for i, tag := range tags {
		gotTag, ok := v.Tag(ids[i])
		if !ok || gotTag != tag {
			t.Errorf("Tag(%d) = (%q, %v), want (%q, true)", ids[i], gotTag, ok, tag)
		}

		gotID, ok := v.ID(tag)
		if !ok || gotID != ids[i] {
			t.Errorf("ID(%q) = (%d, %v), want (%d, true)", tag, gotID, ok, ids[i])
		}
	}
}

func TestFreezeMarksUnseenIds(t *testing.T) {
	v := New()
	v.Add("NOUN")
	v.Add("VERB")
	v.Freeze()

	known := v.Add("VERB")
	if v.IsUnseen(known) {
		t.Errorf("IsUnseen(%d) = true for a tag known before Freeze", known)
	}

	unseen := v.Add("ADV")
	if !v.IsUnseen(unseen) {
		t.Errorf("IsUnseen(%d) = false for a tag added after Freeze", unseen)
	}
}

func TestTagMapperFallsBackToOriginal(t *testing.T) {
	v := New()
	v.Add("N.NOM")
	v.Freeze()

	mapper := NewTagMapper(v, []Rule{
		{Pattern: regexp.MustCompile(`^N\.ACC$`), Replacement: "N.NOM"},
	})

	unknown := v.Add("N.ACC")
	if got := mapper.Map(unknown); got != v.Add("N.NOM") {
		t.Errorf("Map(%d) = %d, want the id of N.NOM", unknown, got)
	}

	unmappable := v.Add("X.WAT")
	if got := mapper.Map(unmappable); got != unmappable {
		t.Errorf("Map(%d) = %d, want identity fallback %d", unmappable, got, unmappable)
	}
}
