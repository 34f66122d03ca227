// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/gob"
	"flag"
	"fmt"
	"math"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/purepos-go/purepos/analyser"
	"github.com/purepos-go/purepos/cmd/common"
	"github.com/purepos-go/purepos/corpus"
	"github.com/purepos-go/purepos/decoder"
	"github.com/purepos-go/purepos/hmodel"
	"github.com/purepos-go/purepos/lemma"
	"github.com/purepos-go/purepos/useranalysis"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] config\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

var (
	cpuprofile     = flag.String("cpuprofile", "", "write cpu profile to file")
	analyzerFlag   = flag.String("analyzer", "", "none, integrated, or a path to a table-based analyser")
	maxGuessed     = flag.Int("max-guessed", 0, "maximum number of guessed tags (overrides config)")
	maxResults     = flag.Int("max-results", 0, "maximum number of tag sequence alternatives (overrides config)")
	beamTheta      = flag.Float64("beam-theta", 0, "beam pruning threshold (overrides config)")
	beamDecoder    = flag.Bool("beam-decoder", false, "use fixed-size beam pruning instead of threshold pruning")
	inputFileFlag  = flag.String("input-file", "", "input file (default: stdin)")
	outputFileFlag = flag.String("output-file", "", "output file (default: stdout)")
	separatorFlag  = flag.String("separator", "", "field separator (overrides config)")
	inputSepFlag   = flag.String("input-separator", "", "5-character pre-analysis bracket spec: delim/open/altsep/close/tagopen")
	onlyPosTags    = flag.Bool("only-pos-tags", false, "skip lemmatization")
	colorStdout    = flag.Bool("color-stdout", false, "colorize output written to stdout")
	configFileFlag = flag.String("config-file", "", "linguistic XML configuration")
)

// fixedBeamSize is the candidate cap --beam-decoder prunes to. The
// reference decoder leaves its beam_size unset by default and only the
// fixed-size strategy needs one at all; 100 keeps a fixed-beam run fast
// without the threshold strategy's per-step rescan of every survivor.
const fixedBeamSize = 100

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	config := common.MustParseConfig(flag.Arg(0))
	overrideFlags(config)

	common.HandleInterrupt()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		common.ExitIfError("cannot create CPU profile", err)
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	modelFile, err := os.Open(config.Model)
	common.ExitIfError("cannot open model", err)
	defer modelFile.Close()

	var m hmodel.Model
	if err := gob.NewDecoder(bufio.NewReader(modelFile)).Decode(&m); err != nil {
		common.ExitIfError("cannot load model", &hmodel.ModelLoadError{Path: config.Model, Err: err})
	}

	linguistic := common.MustParseLinguisticConfig(firstNonEmpty(*configFileFlag, config.LinguisticConfig))
	if linguistic.SuffixModelWeight != 0 {
		m.Theta *= linguistic.SuffixModelWeight
	}

	decAnalyser, lemAnalyser := loadAnalyser(config.Analyzer)

	dec := decoder.New(&m, decAnalyser)
	dec.FixedBeam = config.BeamDecoder
	dec.BeamSize = fixedBeamSize
	dec.MaxGuessed = config.MaxGuessed
	if config.BeamTheta > 0 {
		dec.LogBeamTheta = math.Log(config.BeamTheta)
	}

	var lemSelector *lemma.Selector
	if !config.OnlyPosTags {
		lemSelector = lemma.New(&m, lemAnalyser)
	}

	parser := useranalysis.NewParser()
	if config.InputSeparator != "" {
		parser = parserFromInputSeparator(config.InputSeparator)
	}

	inputFile := common.FileOrStdin(config.InputFile)
	defer inputFile.Close()

	outputFile := common.FileOrStdout(config.OutputFile)
	defer outputFile.Close()

	bufOut := bufio.NewWriter(outputFile)
	defer bufOut.Flush()

	writer := corpus.NewWriter()
	writer.FieldSep = config.Separator

	color := config.ColorStdout && outputFile == os.Stdout

	scanner := bufio.NewScanner(inputFile)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

lines:
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprintln(bufOut)
			continue
		}

		rawTokens := strings.Fields(line)
		words := make([]string, len(rawTokens))
		userAnals := make([]*useranalysis.OneWordLexicalModel, len(rawTokens))

		for i, tok := range rawTokens {
			if parser != nil && parser.IsPreAnalysed(tok) {
				anal, err := parser.Parse(tok, m.TagVocabulary)
				if err != nil {
					fmt.Fprintf(os.Stderr, "warning: skipping sentence: %v\n", err)
					fmt.Fprintln(bufOut)
					continue lines
				}
				words[i] = parser.Clean(tok)
				userAnals[i] = anal
			} else {
				words[i] = tok
			}
		}

		results := dec.Decode(words, userAnals, config.MaxResults)

		alternatives := make([]corpus.TaggedSentence, len(results))
		for i, r := range results {
			tokens := make([]corpus.Token, len(words))
			for j, word := range words {
				tagID := r.Tags[j]
				tagStr, _ := m.TagVocabulary.Tag(tagID)

				lemmaStr := word
				if lemSelector != nil {
					lemmaStr = lemSelector.FindBestLemma(word, tagID, userAnals[j]).Lemma
				}

				tokens[j] = corpus.Token{Word: word, Lemma: lemmaStr, Tag: tagStr}
			}
			alternatives[i] = corpus.TaggedSentence{Tokens: tokens, LogWeight: r.Weight}
		}

		if color {
			err = writeColored(bufOut, alternatives, writer.TokenSep, writer.FieldSep)
		} else {
			err = writer.WriteSentence(bufOut, alternatives)
		}
		common.ExitIfError("cannot write sentence", err)
	}
	common.ExitIfError("error reading input", scanner.Err())
}

func overrideFlags(config *common.Config) {
	if *analyzerFlag != "" {
		config.Analyzer = *analyzerFlag
	}
	if *maxGuessed != 0 {
		config.MaxGuessed = *maxGuessed
	}
	if *maxResults != 0 {
		config.MaxResults = *maxResults
	}
	if *beamTheta != 0 {
		config.BeamTheta = *beamTheta
	}
	if *beamDecoder {
		config.BeamDecoder = true
	}
	if *separatorFlag != "" {
		config.Separator = *separatorFlag
	}
	if *inputSepFlag != "" {
		config.InputSeparator = *inputSepFlag
	}
	if *onlyPosTags {
		config.OnlyPosTags = true
	}
	if *colorStdout {
		config.ColorStdout = true
	}

	config.InputFile = *inputFileFlag
	config.OutputFile = *outputFileFlag
}

func loadAnalyser(name string) (decoder.Analyser, lemma.Analyser) {
	switch name {
	case "", "none":
		return nil, nil
	case "integrated":
		err := &hmodel.AnalyserUnavailable{Name: "integrated", Err: fmt.Errorf("no integrated analyser module is bundled")}
		fmt.Fprintf(os.Stderr, "warning: %s, falling back to the null analyser\n", err)
		return nil, nil
	default:
		tbl, err := analyser.Load(name)
		common.ExitIfError("cannot load analyser table", err)
		return tbl, tbl
	}
}

func parserFromInputSeparator(spec string) *useranalysis.Parser {
	runes := []rune(spec)
	if len(runes) != 5 {
		fmt.Fprintf(os.Stderr, "warning: --input-separator must be exactly 5 characters, ignoring %q\n", spec)
		return useranalysis.NewParser()
	}

	return &useranalysis.Parser{
		Brackets: useranalysis.Brackets{
			Open:     string(runes[1]),
			AltSep:   string(runes[2]),
			Close:    string(runes[3]),
			TagOpen:  string(runes[4]),
			TagClose: useranalysis.DefaultBrackets().TagClose,
			ProbSep:  useranalysis.DefaultBrackets().ProbSep,
		},
	}
}

func writeColored(dst *bufio.Writer, alternatives []corpus.TaggedSentence, tokenSep, fieldSep string) error {
	const (
		cyan   = "\x1b[36m"
		green  = "\x1b[32m"
		yellow = "\x1b[33m"
		dim    = "\x1b[2m"
		reset  = "\x1b[0m"
	)

	rendered := make([]string, len(alternatives))
	for i, alt := range alternatives {
		parts := make([]string, len(alt.Tokens))
		for j, tok := range alt.Tokens {
			lemmaStr := strings.ReplaceAll(tok.Lemma, " ", "_")
			parts[j] = cyan + tok.Word + reset + dim + fieldSep + reset +
				green + lemmaStr + reset + dim + fieldSep + reset +
				yellow + tok.Tag + reset
		}
		rendered[i] = strings.Join(parts, tokenSep)
		if len(alternatives) > 1 {
			rendered[i] += fmt.Sprintf(dim+"$$%g$$"+reset, alt.LogWeight)
		}
	}

	_, err := fmt.Fprintln(dst, strings.Join(rendered, "\t"))
	return err
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
