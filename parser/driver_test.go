package parser

import (
	"math"
	"testing"

	"github.com/habeanf/yap-ccg/catcombination"
	"github.com/habeanf/yap-ccg/model"
	"github.com/habeanf/yap-ccg/rules"
	"github.com/habeanf/yap-ccg/sentence"
)

func sentWithSuperTags(tags ...[]sentence.SuperTagCandidate) *sentence.Sentence {
	words := make([]string, len(tags))
	pos := make([]string, len(tags))
	for i := range words {
		words[i] = "w"
		pos[i] = "N"
	}
	return &sentence.Sentence{Words: words, POS: pos, SuperTags: tags}
}

func TestParseSentenceSingleWordBetaPruning(t *testing.T) {
	sent := sentWithSuperTags([]sentence.SuperTagCandidate{
		{Cat: stubCategory("S1"), LogPScore: -1},
		{Cat: stubCategory("S2"), LogPScore: -3},
	})

	d := NewDriver(Config{BeamSize: 0, Beta: -1}, rules.Null{}, zeroFeatures{}, model.NewWeights(0))
	outcome, err := d.ParseSentence(sent, math.Inf(-1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a single-word sentence's root cell is cell(0,1) itself, already
	// populated by the leaves pass regardless of the rule engine.
	if outcome != Parsed {
		t.Fatalf("expected Parsed, got %v", outcome)
	}

	leaves := d.Chart().Cell(0, 1).SuperCategories()
	if len(leaves) != 1 || leaves[0].Cat.String() != "S1" {
		t.Fatalf("expected only S1 to survive beta pruning, got %v", leaves)
	}
}

func TestParseSentenceMaxWordsSkips(t *testing.T) {
	sent := sentWithSuperTags(
		[]sentence.SuperTagCandidate{{Cat: stubCategory("A")}},
		[]sentence.SuperTagCandidate{{Cat: stubCategory("B")}},
	)

	d := NewDriver(Config{MaxWords: 1}, rules.Null{}, zeroFeatures{}, model.NewWeights(0))
	outcome, err := d.ParseSentence(sent, math.Inf(-1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != SkippedMaxWords {
		t.Fatalf("expected SkippedMaxWords, got %v", outcome)
	}
	if !d.MaxWordsExceeded() {
		t.Fatalf("expected MaxWordsExceeded flag set")
	}
}

// alwaysCombineRule licenses exactly one combination per pair, for testing
// beam-capped binary combination end to end.
type alwaysCombineRule struct{}

func (alwaysCombineRule) Combine(left, right *catcombination.SuperCategory) []*catcombination.SuperCategory {
	return []*catcombination.SuperCategory{{Left: left, Right: right}}
}
func (alwaysCombineRule) TypeChange(*catcombination.SuperCategory) []*catcombination.SuperCategory {
	return nil
}
func (alwaysCombineRule) TypeRaise(*catcombination.SuperCategory) []*catcombination.SuperCategory {
	return nil
}

func TestParseSentenceTwoWordBeamCap(t *testing.T) {
	sent := sentWithSuperTags(
		[]sentence.SuperTagCandidate{{Cat: stubCategory("L1"), LogPScore: 0}, {Cat: stubCategory("L2"), LogPScore: -0.1}},
		[]sentence.SuperTagCandidate{{Cat: stubCategory("R1"), LogPScore: 0}, {Cat: stubCategory("R2"), LogPScore: -0.1}},
	)

	d := NewDriver(Config{BeamSize: 2, Beta: math.Inf(-1)}, alwaysCombineRule{}, zeroFeatures{}, model.NewWeights(0))
	outcome, err := d.ParseSentence(sent, math.Inf(-1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != Parsed {
		t.Fatalf("expected Parsed, got %v", outcome)
	}

	root := d.Chart().Root()
	if root.Len() != 2 {
		t.Fatalf("expected beam cap of 2 in root cell, got %d", root.Len())
	}
}

func TestParseSentenceExhaustedTriggersSkimmer(t *testing.T) {
	sent := sentWithSuperTags(
		[]sentence.SuperTagCandidate{{Cat: stubCategory("A"), LogPScore: -1}},
		[]sentence.SuperTagCandidate{{Cat: stubCategory("B"), LogPScore: -2}},
	)

	d := NewDriver(Config{BeamSize: 0, Beta: math.Inf(-1)}, rules.Null{}, zeroFeatures{}, model.NewWeights(0))
	outcome, err := d.ParseSentence(sent, math.Inf(-1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != Exhausted {
		t.Fatalf("expected Exhausted, got %v", outcome)
	}

	skimmed := d.Skim()
	if len(skimmed) != 2 {
		t.Fatalf("expected skimmer to cover both leaves separately, got %d: %v", len(skimmed), skimmed)
	}
}

func TestParseSentenceMaxSuperCatsTripwire(t *testing.T) {
	tags := make([][]sentence.SuperTagCandidate, 10)
	for i := range tags {
		tags[i] = []sentence.SuperTagCandidate{{Cat: stubCategory("X"), LogPScore: 0}}
	}
	sent := sentWithSuperTags(tags...)

	d := NewDriver(Config{BeamSize: 0, Beta: math.Inf(-1), MaxSuperCats: 5}, alwaysCombineRule{}, zeroFeatures{}, model.NewWeights(0))
	outcome, err := d.ParseSentence(sent, math.Inf(-1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != SkippedMaxSuperCats {
		t.Fatalf("expected SkippedMaxSuperCats, got %v", outcome)
	}
	if !d.MaxSuperCatsExceeded() {
		t.Fatalf("expected MaxSuperCatsExceeded flag set")
	}

	// chart must still be in a valid, clearable state
	d.Chart().Clear()
	if d.Chart().NumSuperCategories() != 0 {
		t.Fatalf("expected chart to clear cleanly after tripwire")
	}
}

func TestParseSentenceNeuralScorerMix(t *testing.T) {
	sent := sentWithSuperTags(
		[]sentence.SuperTagCandidate{{Cat: stubCategory("A"), LogPScore: 0}},
		[]sentence.SuperTagCandidate{{Cat: stubCategory("B"), LogPScore: 0}},
	)

	dep := catcombination.NewDependency(1, 1, 0, 0).Fill(2)
	combineRule := &depCombineRule{dep: dep}

	weights := model.NewWeights(0)
	weights.SetDepNN(1.0)

	d := NewDriver(Config{BeamSize: 0, Beta: math.Inf(-1)}, combineRule, zeroFeatures{}, weights)
	d.AttachDepNN(constDepNN{p: 0.5})

	outcome, err := d.ParseSentence(sent, math.Inf(-1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != Parsed {
		t.Fatalf("expected Parsed, got %v", outcome)
	}

	root := d.Chart().Root().SuperCategories()[0]
	wantDelta := math.Log(0.5) * float64(len(root.FilledDeps))
	if root.LogDepNNScore != wantDelta {
		t.Fatalf("expected LogDepNNScore %v, got %v", wantDelta, root.LogDepNNScore)
	}
}

type depCombineRule struct{ dep catcombination.FilledDependency }

func (r *depCombineRule) Combine(left, right *catcombination.SuperCategory) []*catcombination.SuperCategory {
	return []*catcombination.SuperCategory{{
		Left:       left,
		Right:      right,
		FilledDeps: []catcombination.FilledDependency{r.dep},
	}}
}
func (r *depCombineRule) TypeChange(*catcombination.SuperCategory) []*catcombination.SuperCategory {
	return nil
}
func (r *depCombineRule) TypeRaise(*catcombination.SuperCategory) []*catcombination.SuperCategory {
	return nil
}
