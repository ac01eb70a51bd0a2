package model

import "github.com/habeanf/yap-ccg/util"

// EnumLexicon resolves words and POS tags to small dense integer IDs shared
// across every sentence in a parsing run, backed by util.EnumSet exactly as
// the teacher resolves word/POS/feature IDs throughout nlp/types.
type EnumLexicon struct {
	words *util.EnumSet
	pos   *util.EnumSet
}

// NewEnumLexicon allocates an empty lexicon with the teacher's approximate
// vocabulary-size capacity hints.
func NewEnumLexicon() *EnumLexicon {
	return &EnumLexicon{
		words: util.NewEnumSet(100000),
		pos:   util.NewEnumSet(64),
	}
}

// WordID returns word's ID, assigning a new one the first time it is seen.
func (l *EnumLexicon) WordID(word string) int {
	id, _ := l.words.Add(word)
	return id
}

// POSID returns pos's ID, assigning a new one the first time it is seen.
func (l *EnumLexicon) POSID(pos string) int {
	id, _ := l.pos.Add(pos)
	return id
}

// Freeze stops the lexicon from growing further, matching util.EnumSet's
// own frozen-set convention; call once training/loading is complete so that
// an unexpected out-of-vocabulary word panics loudly instead of silently
// renumbering IDs mid-run.
func (l *EnumLexicon) Freeze() {
	l.words.Frozen = true
	l.pos.Frozen = true
}
