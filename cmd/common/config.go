// Copyright 2016 Daniël de Kok. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config stores the CLI defaults shared by the purepos-train, purepos-tag
// and purepos-evaluate binaries. Any field also exposed as a flag can be
// overridden on the command line; the flag wins when both are set.
type Config struct {
	Model string

	TagOrder      int `toml:"tag_order"`
	EmissionOrder int `toml:"emission_order"`
	SuffixLength  int `toml:"suffix_length"`
	RareFreq      int `toml:"rare_frequency"`

	Analyzer string

	MaxGuessed  int     `toml:"max_guessed"`
	MaxResults  int     `toml:"max_results"`
	BeamTheta   float64 `toml:"beam_theta"`
	BeamDecoder bool    `toml:"beam_decoder"`

	Encoding       string
	Separator      string
	InputSeparator string `toml:"input_separator"`
	OnlyPosTags    bool   `toml:"only_pos_tags"`
	ColorStdout    bool   `toml:"color_stdout"`

	ClosedClass      string `toml:"closed_class"`
	LinguisticConfig string `toml:"linguistic_config"`

	// InputFile and OutputFile are set from --input-file/--output-file;
	// they have no TOML counterpart since a config file names a model,
	// not a particular invocation's data.
	InputFile  string
	OutputFile string
}

func defaultConfiguration() *Config {
	return &Config{
		Model: "model.gob",

		TagOrder:      2,
		EmissionOrder: 2,
		SuffixLength:  10,
		RareFreq:      10,

		Analyzer: "none",

		MaxGuessed: 10,
		MaxResults: 1,
		BeamTheta:  1000,

		Encoding:  "UTF-8",
		Separator: "#",
	}
}

// MustParseConfig reads and parses the TOML configuration file at filename,
// exiting the process on any failure. Model and ClosedClass are resolved
// relative to the configuration file's directory so a config and the model
// it names can be moved together.
func MustParseConfig(filename string) *Config {
	f, err := os.Open(filename)
	ExitIfError("cannot open configuration file", err)
	defer f.Close()

	config, err := ParseConfig(f)
	ExitIfError("cannot parse configuration file", err)

	config.Model = relToConfig(filename, config.Model)
	config.ClosedClass = relToConfig(filename, config.ClosedClass)
	config.LinguisticConfig = relToConfig(filename, config.LinguisticConfig)

	return config
}

// ParseConfig attempts to parse the configuration from the given reader.
func ParseConfig(reader io.Reader) (*Config, error) {
	config := defaultConfiguration()
	if _, err := toml.DecodeReader(reader, config); err != nil {
		return config, err
	}

	return config, nil
}

// relToConfig returns the path of a file relative to the directory of the
// configuration file, unless the path is absolute or empty.
func relToConfig(configPath, filePath string) string {
	if len(filePath) == 0 {
		return filePath
	}

	if filepath.IsAbs(filePath) {
		return filePath
	}

	return filepath.Join(filepath.Dir(configPath), filePath)
}
