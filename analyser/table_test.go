package analyser

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTable(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.tsv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadAndTags(t *testing.T) {
	path := writeTable(t, "futott\tfut/VERB\tfutás/NOUN\n")

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tags := tbl.Tags("futott")
	if len(tags) != 2 || tags[0] != "VERB" || tags[1] != "NOUN" {
		t.Errorf("Tags(%q) = %v, want [VERB NOUN]", "futott", tags)
	}

	if got := tbl.Tags("unknown"); got != nil {
		t.Errorf("Tags() for an unlisted word = %v, want nil", got)
	}
}

func TestAnalyse(t *testing.T) {
	path := writeTable(t, "futott\tfut/VERB\n")

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	anals := tbl.Analyse("futott")
	if len(anals) != 1 || anals[0].Lemma != "fut" || anals[0].Tag != "VERB" {
		t.Errorf("Analyse(%q) = %+v, want one (fut, VERB) entry", "futott", anals)
	}
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	path := writeTable(t, "futott\tfutVERB\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded on a line with no lemma/tag separator, want error")
	}
}
