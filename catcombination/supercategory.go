package catcombination

import (
	"math"
	"sort"
)

// Category is the grammatical category label attached to a SuperCategory.
// Its internal structure (argument/result shape, slashes, features) belongs
// to the grammar rule engine and is opaque here; this package only needs it
// printable for diagnostics.
type Category interface {
	String() string
}

// SuperCategory is a node in the parse forest: either a leaf (no children),
// a unary derivation (Left set, Right nil) or a binary combination (both
// set). Structurally immutable once inserted into a Chart; Score and
// LogDepNNScore are the only fields a Scorer is allowed to mutate after
// construction.
type SuperCategory struct {
	Cat        Category
	FilledDeps []FilledDependency

	Left, Right *SuperCategory

	Score         float64
	LogDepNNScore float64
	LogPScore     float64 // initial lexical probability; meaningful for leaves only

	Vars    []Variable
	HeadVar int // index into Vars identifying the head variable, for feature enumeration over word/POS fillers
}

// IsLeaf reports whether this node has no children.
func (sc *SuperCategory) IsLeaf() bool {
	return sc.Left == nil
}

// IsUnary reports whether this node has exactly one child.
func (sc *SuperCategory) IsUnary() bool {
	return sc.Left != nil && sc.Right == nil
}

// IsBinary reports whether this node has two children.
func (sc *SuperCategory) IsBinary() bool {
	return sc.Left != nil && sc.Right != nil
}

// Variable returns the head variable's frame, or nil if HeadVar is out of
// range (e.g. the category carries no variables at all).
func (sc *SuperCategory) Variable() *Variable {
	if sc.HeadVar < 0 || sc.HeadVar >= len(sc.Vars) {
		return nil
	}
	return &sc.Vars[sc.HeadVar]
}

// CompareScore orders two supercategories by descending score, the ordering
// used throughout chart pruning and cube-pruning's frontier queue.
func CompareScore(a, b *SuperCategory) int {
	switch {
	case a.Score > b.Score:
		return -1
	case a.Score < b.Score:
		return 1
	default:
		return 0
	}
}

// SortByScoreDescending sorts supercategories from highest to lowest score
// in place; ties are left in their existing relative order (insertion
// order), which spec.md documents as the single frozen tiebreaker in place
// of the original's undefined tie behaviour.
func SortByScoreDescending(scs []*SuperCategory) {
	sort.SliceStable(scs, func(i, j int) bool {
		return scs[i].Score > scs[j].Score
	})
}

// MaxScore returns the highest Score among scs, or negative infinity if scs
// is empty.
func MaxScore(scs []*SuperCategory) float64 {
	max := math.Inf(-1)
	for _, sc := range scs {
		if sc.Score > max {
			max = sc.Score
		}
	}
	return max
}
