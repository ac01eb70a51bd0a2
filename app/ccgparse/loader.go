// Package ccgparse wires parser.Driver into a gonuts/commander CLI
// subcommand, grounded on app/engparse.go's file-options/Command pattern.
package ccgparse

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/habeanf/yap-ccg/model"
	"github.com/habeanf/yap-ccg/sentence"
)

// leafCategory is a plain grammar-opaque category label, used by the
// supertag file loader below since the concrete grammar rule engine is an
// external collaborator out of this core's scope.
type leafCategory string

func (c leafCategory) String() string { return string(c) }

// FileLoader reads supertagged sentences from a simple line-oriented file:
// blank lines separate sentences, and each word line is
//
//	word<TAB>pos<TAB>cat1:logp1,cat2:logp2,...
//
// grounded on nlp/format/conll's line-per-token, blank-line-separated
// sentence convention.
type FileLoader struct {
	Path    string
	Lexicon *model.EnumLexicon
}

func (l *FileLoader) Load() ([]*sentence.Sentence, error) {
	file, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("ccgparse: opening supertag file: %w", err)
	}
	defer file.Close()

	var sents []*sentence.Sentence
	cur := &sentence.Sentence{}
	flush := func() {
		if len(cur.Words) == 0 {
			return
		}
		if l.Lexicon != nil {
			cur.AddIDs(l.Lexicon)
		}
		sents = append(sents, cur)
		cur = &sentence.Sentence{}
	}

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("ccgparse: line %d: expected word<TAB>pos<TAB>supertags, got %q", lineNo, line)
		}

		candidates, err := parseSuperTags(fields[2])
		if err != nil {
			return nil, fmt.Errorf("ccgparse: line %d: %w", lineNo, err)
		}

		cur.Words = append(cur.Words, fields[0])
		cur.POS = append(cur.POS, fields[1])
		cur.SuperTags = append(cur.SuperTags, candidates)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ccgparse: reading supertag file: %w", err)
	}
	flush()
	return sents, nil
}

func parseSuperTags(field string) ([]sentence.SuperTagCandidate, error) {
	parts := strings.Split(field, ",")
	candidates := make([]sentence.SuperTagCandidate, 0, len(parts))
	for _, p := range parts {
		catAndScore := strings.SplitN(p, ":", 2)
		if len(catAndScore) != 2 {
			return nil, fmt.Errorf("malformed supertag candidate %q", p)
		}
		logP, err := strconv.ParseFloat(catAndScore[1], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed supertag score in %q: %w", p, err)
		}
		candidates = append(candidates, sentence.SuperTagCandidate{
			Cat:       leafCategory(catAndScore[0]),
			LogPScore: logP,
		})
	}
	return candidates, nil
}
