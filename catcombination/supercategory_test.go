package catcombination

import (
	"math"
	"testing"
)

type stubCategory string

func (s stubCategory) String() string { return string(s) }

func TestSortByScoreDescendingIsStableOnTies(t *testing.T) {
	a := &SuperCategory{Cat: stubCategory("a"), Score: 1}
	b := &SuperCategory{Cat: stubCategory("b"), Score: 1}
	c := &SuperCategory{Cat: stubCategory("c"), Score: 2}

	scs := []*SuperCategory{a, b, c}
	SortByScoreDescending(scs)

	if scs[0] != c {
		t.Fatalf("expected highest score first")
	}
	if scs[1] != a || scs[2] != b {
		t.Fatalf("expected ties to preserve insertion order, got %v %v", scs[1].Cat, scs[2].Cat)
	}
}

func TestMaxScoreEmpty(t *testing.T) {
	if got := MaxScore(nil); !math.IsInf(got, -1) {
		t.Fatalf("expected -Inf for empty input, got %v", got)
	}
}

func TestMaxScoreReturnsHighest(t *testing.T) {
	scs := []*SuperCategory{
		{Score: -5},
		{Score: 3},
		{Score: 1},
	}
	if got := MaxScore(scs); got != 3 {
		t.Fatalf("expected max score 3, got %v", got)
	}
}

func TestSuperCategoryShape(t *testing.T) {
	leaf := &SuperCategory{Cat: stubCategory("leaf")}
	if !leaf.IsLeaf() || leaf.IsUnary() || leaf.IsBinary() {
		t.Fatalf("expected leaf shape")
	}

	unary := &SuperCategory{Cat: stubCategory("unary"), Left: leaf}
	if unary.IsLeaf() || !unary.IsUnary() || unary.IsBinary() {
		t.Fatalf("expected unary shape")
	}

	binary := &SuperCategory{Cat: stubCategory("binary"), Left: leaf, Right: unary}
	if binary.IsLeaf() || binary.IsUnary() || !binary.IsBinary() {
		t.Fatalf("expected binary shape")
	}
}

func TestVariableReturnsHeadVarFrame(t *testing.T) {
	sc := &SuperCategory{
		Vars:    []Variable{NewVariable(0), NewVariable(1)},
		HeadVar: 1,
	}
	v := sc.Variable()
	if v == nil || v.ID != 1 {
		t.Fatalf("expected head variable with ID 1, got %v", v)
	}

	sc.HeadVar = 5
	if sc.Variable() != nil {
		t.Fatalf("expected nil for out-of-range HeadVar")
	}
}
