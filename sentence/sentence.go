// Package sentence holds the pre-tagged input to the chart parser: words,
// POS tags and, per word, the candidate supertags produced upstream by a
// supertagger. Loading sentences from disk is an external collaborator
// (spec.md's SentenceLoader) and is represented here only by the Loader
// interface; this package owns the in-memory representation the rest of
// the parser reads.
package sentence

import "github.com/habeanf/yap-ccg/catcombination"

// SuperTagCandidate is one candidate lexical category for a word, with its
// initial lexical log-probability from the supertagger.
type SuperTagCandidate struct {
	Cat       catcombination.Category
	LogPScore float64
}

// Sentence is an ordered sequence of words, their POS tags and per-position
// candidate supertags, plus lexicon-resolved integer IDs for word and POS
// (spec.md §6: "per-position ID resolution through a lexicon").
type Sentence struct {
	Words   []string
	POS     []string
	WordIDs []int
	POSIDs  []int

	// SuperTags[i] holds the candidate categories for word i, as produced
	// by the upstream supertagger; the chart loader filters these by the
	// supertagger's own (tighter) beta.
	SuperTags [][]SuperTagCandidate

	outputSupertags []catcombination.Category
}

// NumWords returns the number of words in the sentence.
func (s *Sentence) NumWords() int {
	return len(s.Words)
}

// AddOutputSupertag records the category chosen for a leaf during
// dependency printing, mirroring Sentence.addOutputSupertag in the
// original, used by diagnostics that want to report the supertag actually
// used in the winning derivation rather than merely the raw candidates.
func (s *Sentence) AddOutputSupertag(cat catcombination.Category) {
	s.outputSupertags = append(s.outputSupertags, cat)
}

// OutputSupertags returns the categories recorded via AddOutputSupertag, in
// the order they were added.
func (s *Sentence) OutputSupertags() []catcombination.Category {
	return s.outputSupertags
}

// Lexicon resolves words and POS tags to small integer IDs, shared across
// sentences within a parsing run (spec.md §6's "per-position ID resolution
// through a lexicon").
type Lexicon interface {
	WordID(word string) int
	POSID(pos string) int
}

// AddIDs resolves every word and POS tag in the sentence through lex,
// populating WordIDs and POSIDs.
func (s *Sentence) AddIDs(lex Lexicon) {
	s.WordIDs = make([]int, len(s.Words))
	s.POSIDs = make([]int, len(s.POS))
	for i, w := range s.Words {
		s.WordIDs[i] = lex.WordID(w)
	}
	for i, p := range s.POS {
		s.POSIDs[i] = lex.POSID(p)
	}
}

// Loader loads supertagged sentences from an external source (file,
// stream, network); its concrete implementation is outside this core's
// scope (spec.md §1).
type Loader interface {
	Load() ([]*Sentence, error)
}
