package common

import (
	"strings"
	"testing"
)

func TestParseConfigAppliesDefaults(t *testing.T) {
	r := strings.NewReader("model = \"mymodel.gob\"\n")

	config, err := ParseConfig(r)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if config.Model != "mymodel.gob" {
		t.Errorf("Model = %q, want %q", config.Model, "mymodel.gob")
	}
	if config.TagOrder != 2 {
		t.Errorf("TagOrder = %d, want default 2", config.TagOrder)
	}
	if config.MaxResults != 1 {
		t.Errorf("MaxResults = %d, want default 1", config.MaxResults)
	}
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	r := strings.NewReader("model = \"m.gob\"\ntag_order = 3\nbeam_decoder = true\n")

	config, err := ParseConfig(r)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if config.TagOrder != 3 {
		t.Errorf("TagOrder = %d, want 3", config.TagOrder)
	}
	if !config.BeamDecoder {
		t.Errorf("BeamDecoder = false, want true")
	}
}
