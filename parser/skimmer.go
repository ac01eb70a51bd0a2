package parser

import (
	"fmt"
	"io"
	"math"

	"github.com/habeanf/yap-ccg/catcombination"
	"github.com/habeanf/yap-ccg/chart"
	"github.com/habeanf/yap-ccg/sentence"
)

// Skimmer produces a fallback decoding when the chart root is empty:
// greedy best-cover over widest span first, then highest score, then
// recursion on the uncovered prefix and suffix (spec.md §4.6). Grounded on
// ChartParserBeam.java's private skimmer method.
func Skimmer(ch *chart.Chart, pos, span int) []*catcombination.SuperCategory {
	var best *catcombination.SuperCategory
	bestScore := math.Inf(-1)
	bestPos, bestSpan := 0, 0

	for j := span; j > 0; j-- {
		for i := pos; i <= pos+span-j; i++ {
			for _, sc := range ch.Cell(i, j).SuperCategories() {
				if sc.Score > bestScore {
					bestScore = sc.Score
					best = sc
					bestPos, bestSpan = i, j
				}
			}
		}
		if best != nil {
			break
		}
	}

	if best == nil {
		panic("parser: skimmer found no supercategory in a non-empty span; every leaf must have at least one supertag")
	}

	var out []*catcombination.SuperCategory
	if bestPos > pos {
		out = append(out, Skimmer(ch, pos, bestPos-pos)...)
	}
	out = append(out, best)
	if pos+span > bestPos+bestSpan {
		out = append(out, Skimmer(ch, bestPos+bestSpan, pos+span-bestPos-bestSpan)...)
	}
	return out
}

// WriteDeps writes every filled dependency reachable from sc, one per line,
// in pre-order (a node's own dependencies, then its left subtree's, then its
// right subtree's), and records each leaf's category, left to right, as an
// output supertag on sent. Used both for a normal root derivation and
// for the concatenation of partial derivations the skimmer selects.
func WriteDeps(w io.Writer, sc *catcombination.SuperCategory, sent *sentence.Sentence) error {
	for _, dep := range sc.FilledDeps {
		if _, err := fmt.Fprintf(w, "%d %d %d %d\n", dep.HeadIndex, dep.Filler, dep.RelID, dep.Var); err != nil {
			return err
		}
	}

	if sc.Left != nil {
		if err := WriteDeps(w, sc.Left, sent); err != nil {
			return err
		}
		if sc.Right != nil {
			if err := WriteDeps(w, sc.Right, sent); err != nil {
				return err
			}
		}
	} else {
		sent.AddOutputSupertag(sc.Cat)
	}
	return nil
}
