// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/gob"
	"flag"
	"fmt"
	"os"

	"github.com/purepos-go/purepos/cmd/common"
	"github.com/purepos-go/purepos/corpus"
	"github.com/purepos-go/purepos/hmodel"
	"github.com/purepos-go/purepos/vocabulary"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] config input\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

var (
	closedClassFilename  = flag.String("closed-class", "", "file with closed-class tags")
	tagOrder             = flag.Int("tag-order", 0, "tag n-gram order (overrides config)")
	emissionOrder        = flag.Int("emission-order", 0, "emission n-gram order (overrides config)")
	suffixLength         = flag.Int("suffix-length", 0, "maximum suffix length (overrides config)")
	rareFrequency        = flag.Int("rare-frequency", 0, "rare word frequency threshold (overrides config)")
	linguisticConfigFile = flag.String("config-file", "", "linguistic XML configuration")
)

func main() {
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	config := common.MustParseConfig(flag.Arg(0))
	overrideIntFlags(config)

	linguistic := common.MustParseLinguisticConfig(firstNonEmpty(*linguisticConfigFile, config.LinguisticConfig))
	tagMappingRules, err := linguistic.TagMappingRules()
	common.ExitIfError("invalid tag_mapping rule", err)
	lemmaMappingRules, err := linguistic.LemmaMappingRules()
	common.ExitIfError("invalid lemma_mapping rule", err)

	closedClassNames := common.MustLoadClosedClass(firstNonEmpty(*closedClassFilename, config.ClosedClass))

	f, err := os.Open(flag.Arg(1))
	common.ExitIfError("cannot open training data", err)
	defer f.Close()

	reader := corpus.NewReader()
	sentences, parseErrs := reader.ReadAll(f)
	for _, e := range parseErrs {
		fmt.Fprintf(os.Stderr, "skipping sentence: %v\n", e)
	}

	m := hmodel.New(config.TagOrder, config.EmissionOrder, config.SuffixLength, config.RareFreq)
	m.GuessedLemmaMarker = linguistic.GuessedMarker
	m.Stats.ParseErrors = len(parseErrs)

	for _, sent := range sentences {
		m.AddSentence(sent)
	}

	if len(closedClassNames) > 0 {
		m.ClosedClassTags = make(map[int]bool, len(closedClassNames))
		for name := range closedClassNames {
			if id, ok := m.TagVocabulary.ID(name); ok {
				m.ClosedClassTags[id] = true
			}
		}
	}

	m.Compile(tagMappingRules)
	m.LemmaMapper = vocabulary.NewStringMapper(lemmaMappingRules)

	fmt.Fprintln(os.Stderr, m.Stats.String())

	out, err := os.Create(config.Model)
	common.ExitIfError("cannot open model for writing", err)
	defer out.Close()

	bufOut := bufio.NewWriter(out)
	defer bufOut.Flush()

	err = gob.NewEncoder(bufOut).Encode(m)
	common.ExitIfError("cannot encode model", err)
}

func overrideIntFlags(config *common.Config) {
	if *tagOrder != 0 {
		config.TagOrder = *tagOrder
	}
	if *emissionOrder != 0 {
		config.EmissionOrder = *emissionOrder
	}
	if *suffixLength != 0 {
		config.SuffixLength = *suffixLength
	}
	if *rareFrequency != 0 {
		config.RareFreq = *rareFrequency
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
