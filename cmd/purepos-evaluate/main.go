// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/purepos-go/purepos/cmd/common"
	"github.com/purepos-go/purepos/corpus"
	"github.com/purepos-go/purepos/decoder"
	"github.com/purepos-go/purepos/hmodel"
	"github.com/purepos-go/purepos/lemma"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] config input\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	nFolds     = flag.Int("nfolds", 10, "number of cross-validation folds")
)

func main() {
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	if *nFolds < 2 {
		fmt.Fprintln(os.Stderr, "data should be split into at least 2 folds")
		os.Exit(1)
	}

	config := common.MustParseConfig(flag.Arg(0))

	f, err := os.Open(flag.Arg(1))
	common.ExitIfError("cannot open evaluation data", err)
	defer f.Close()

	reader := corpus.NewReader()
	sentences, parseErrs := reader.ReadAll(f)
	for _, e := range parseErrs {
		fmt.Fprintf(os.Stderr, "skipping sentence: %v\n", e)
	}

	if *cpuprofile != "" {
		prof, err := os.Create(*cpuprofile)
		common.ExitIfError("cannot create CPU profile", err)
		pprof.StartCPUProfile(prof)
		defer pprof.StopCPUProfile()
	}

	var knownCorrect, knownIncorrect, unknownCorrect, unknownIncorrect uint

	for fold := 0; fold < *nFolds; fold++ {
		train, test := splitFold(sentences, *nFolds, fold)

		m := hmodel.New(config.TagOrder, config.EmissionOrder, config.SuffixLength, config.RareFreq)
		for _, sent := range train {
			m.AddSentence(sent)
		}
		m.Compile(nil)

		dec := decoder.New(m, nil)
		lem := lemma.New(m, nil)
		eval := common.NewEvaluator(dec, lem, m)

		for _, sent := range test {
			err := eval.Process(sent)
			common.ExitIfError("error evaluating a sentence", err)
		}

		fmt.Printf("Fold %d accuracy: %.4f (known: %.4f, unknown: %.4f, lemma: %.4f)\n",
			fold, eval.Accuracy(), eval.KnownAccuracy(), eval.UnknownAccuracy(), eval.LemmaAccuracy())

		knownCorrect += eval.KnownCorrect()
		knownIncorrect += eval.KnownIncorrect()
		unknownCorrect += eval.UnknownCorrect()
		unknownIncorrect += eval.UnknownIncorrect()
	}

	accuracy := float64(knownCorrect+unknownCorrect) /
		float64(knownCorrect+unknownCorrect+knownIncorrect+unknownIncorrect)
	knownAccuracy := float64(knownCorrect) / float64(knownCorrect+knownIncorrect)
	unknownAccuracy := float64(unknownCorrect) / float64(unknownCorrect+unknownIncorrect)

	fmt.Printf("Overall accuracy: %.4f (known: %.4f, unknown: %.4f)\n",
		accuracy, knownAccuracy, unknownAccuracy)
}

// splitFold partitions sentences into a training set (every sentence not
// in fold) and a test set (every sentence whose index mod nFolds equals
// fold), round-robin rather than contiguous so a corpus sorted by genre or
// length does not skew any one fold.
func splitFold(sentences [][]corpus.Token, nFolds, fold int) (train, test [][]corpus.Token) {
	for i, sent := range sentences {
		if i%nFolds == fold {
			test = append(test, sent)
		} else {
			train = append(train, sent)
		}
	}
	return train, test
}
