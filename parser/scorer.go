// Package parser implements the chart fill: scoring, binary combination
// (plain and cube-pruning), unary expansion, the CKY outer loop and the
// skimmer fallback. Grounded throughout on ChartParserBeam.java's
// parseSentence/combine/combineBetter/calcScore family.
package parser

import (
	"math"

	"github.com/habeanf/yap-ccg/catcombination"
	"github.com/habeanf/yap-ccg/model"
	"github.com/habeanf/yap-ccg/sentence"
)

// Scorer computes calcScore and its recursive diagnostic queries over a
// derivation subtree, given the collaborators that supply feature IDs,
// their weights, and an optional neural dependency score.
type Scorer struct {
	Features model.Features
	Weights  *model.Weights
	DepNN    model.DepNN // nil disables neural mixing
	Ignore   model.IgnorePolicy

	sent *sentence.Sentence

	// featureIDs is a reused scratch buffer, cleared at the start of every
	// leaf/unary/binary/root contribution (spec.md §9 scratch buffer reuse).
	// It must not escape a single Score call.
	featureIDs []int
}

// NewScorer returns a Scorer bound to sent. If ignore is nil, no dependency
// is ever ignored.
func NewScorer(features model.Features, weights *model.Weights, depNN model.DepNN, ignore model.IgnorePolicy, sent *sentence.Sentence) *Scorer {
	if ignore == nil {
		ignore = model.NoIgnore{}
	}
	return &Scorer{Features: features, Weights: weights, DepNN: depNN, Ignore: ignore, sent: sent}
}

func (s *Scorer) sumWeights(featureIDs []int) float64 {
	sum := 0.0
	for _, id := range featureIDs {
		sum += s.Weights.Get(id)
	}
	return sum
}

// ScoreLeaf assigns sc.Score from its initial lexical probability plus leaf
// feature contributions. Must be called exactly once per leaf supercategory
// (spec.md §4.5, "no double-scoring of leaves").
func (s *Scorer) ScoreLeaf(sc *catcombination.SuperCategory, wordID, posID int) {
	sc.Score = sc.LogPScore
	s.featureIDs = s.Features.Leaf(sc, wordID, posID)
	sc.Score += s.sumWeights(s.featureIDs)
	s.mixDepNN(sc)
}

// ScoreUnary assigns sc.Score from its child's score plus unary feature
// contributions.
func (s *Scorer) ScoreUnary(sc, child *catcombination.SuperCategory, ruleID int16) {
	sc.Score = child.Score
	s.featureIDs = s.Features.Unary(sc, child, ruleID)
	sc.Score += s.sumWeights(s.featureIDs)
	s.mixDepNN(sc)
}

// ScoreBinary assigns sc.Score from both children's scores plus binary
// feature contributions, and additionally root feature contributions when
// atRoot is true (spec.md §4.1's atRoot flag, true only at span = n).
func (s *Scorer) ScoreBinary(sc, left, right *catcombination.SuperCategory, atRoot bool) {
	sc.Score = left.Score + right.Score
	s.featureIDs = s.Features.Binary(sc, left, right)
	sc.Score += s.sumWeights(s.featureIDs)

	if atRoot {
		s.featureIDs = s.Features.Root(sc)
		sc.Score += s.sumWeights(s.featureIDs)
	}
	s.mixDepNN(sc)
}

// Score dispatches to ScoreLeaf/ScoreUnary/ScoreBinary based on sc's shape,
// assuming children are already scored (spec.md §4.5's calcScore). wordID
// and posID are used only for leaves.
func (s *Scorer) Score(sc *catcombination.SuperCategory, wordID, posID int, ruleID int16, atRoot bool) {
	switch {
	case sc.IsBinary():
		s.ScoreBinary(sc, sc.Left, sc.Right, atRoot)
	case sc.IsUnary():
		s.ScoreUnary(sc, sc.Left, ruleID)
	default:
		s.ScoreLeaf(sc, wordID, posID)
	}
}

func (s *Scorer) mixDepNN(sc *catcombination.SuperCategory) {
	if s.DepNN == nil {
		return
	}
	sc.LogDepNNScore = s.calcDepNNScore(sc)
	sc.Score += s.Weights.GetDepNN() * sc.LogDepNNScore
}

func (s *Scorer) calcDepNNScore(sc *catcombination.SuperCategory) float64 {
	total := 0.0
	for _, dep := range sc.FilledDeps {
		if s.Ignore.Ignore(dep) {
			continue
		}
		attrs := depAttributes(dep, s.sent)
		p := s.DepNN.PredictSoft(attrs)
		total += math.Log(p)
	}
	return total
}

// depAttributes builds the seven-slot attribute tuple a neural dependency
// scorer reads from a filled dependency and the sentence it belongs to.
// Kept as a free function (rather than a FilledDependency method) so that
// catcombination stays free of a dependency on sentence.
func depAttributes(dep catcombination.FilledDependency, sent *sentence.Sentence) model.DepAttributes {
	headWord, headPOS := wordAndPOS(sent, int(dep.HeadIndex))
	depWord, depPOS := wordAndPOS(sent, int(dep.Filler))

	return model.DepAttributes{
		headWord,
		depWord,
		itoa(int(dep.Var)),
		headPOS,
		depPOS,
		itoa(int(dep.RelID)),
		itoa(int(dep.ConjFactor)),
	}
}

func wordAndPOS(sent *sentence.Sentence, index int) (word, pos string) {
	if index <= 0 || index > len(sent.Words) {
		return "", ""
	}
	return sent.Words[index-1], sent.POS[index-1]
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// SumLeafInitialScore sums LogPScore over every leaf reachable from sc,
// a diagnostic used by training code (spec.md §4.5's sumLeafInitialScore).
func SumLeafInitialScore(sc *catcombination.SuperCategory) float64 {
	if sc.IsLeaf() {
		return sc.LogPScore
	}
	sum := SumLeafInitialScore(sc.Left)
	if sc.Right != nil {
		sum += SumLeafInitialScore(sc.Right)
	}
	return sum
}

// AverageSumDepNN returns the total LogDepNNScore of sc's subtree divided by
// the number of nodes in it (spec.md §4.5's averageSumDepNN).
func AverageSumDepNN(sc *catcombination.SuperCategory) float64 {
	sum, count := sumDepNN(sc)
	return sum / float64(count)
}

func sumDepNN(sc *catcombination.SuperCategory) (sum float64, count int) {
	sum = sc.LogDepNNScore
	count = 1
	if sc.Left != nil {
		leftSum, leftCount := sumDepNN(sc.Left)
		sum += leftSum
		count += leftCount
	}
	if sc.Right != nil {
		rightSum, rightCount := sumDepNN(sc.Right)
		sum += rightSum
		count += rightCount
	}
	return sum, count
}
