package chart

import (
	"math"
	"testing"

	"github.com/habeanf/yap-ccg/catcombination"
)

func newSC(score float64) *catcombination.SuperCategory {
	return &catcombination.SuperCategory{Score: score}
}

func TestApplyBeamCapsAndOrdersDescending(t *testing.T) {
	c := NewCell(0, 1, 0)
	c.AddNoDP([]*catcombination.SuperCategory{newSC(1), newSC(5), newSC(3), newSC(4)})

	c.ApplyBeam(2, math.Inf(-1))

	if c.Len() != 2 {
		t.Fatalf("expected beam cap of 2, got %d", c.Len())
	}
	if c.SuperCategories()[0].Score != 5 || c.SuperCategories()[1].Score != 4 {
		t.Fatalf("expected top-2 by score, got %v", c.SuperCategories())
	}
}

func TestApplyBeamBetaCutoff(t *testing.T) {
	c := NewCell(0, 1, 0)
	c.AddNoDP([]*catcombination.SuperCategory{newSC(0), newSC(-0.5), newSC(-2)})

	c.ApplyBeam(0, -1) // keep scores >= max - 1 = -1

	if c.Len() != 2 {
		t.Fatalf("expected 2 supercategories within beta cutoff, got %d: %v", c.Len(), c.SuperCategories())
	}
}

func TestApplyBeamOnEmptyCellIsNoop(t *testing.T) {
	c := NewCell(0, 1, 0)
	c.ApplyBeam(5, 0)
	if c.Len() != 0 {
		t.Fatalf("expected empty cell to remain empty")
	}
}

func TestCombinePreSuperCategoriesMergesAndCaps(t *testing.T) {
	c := NewCell(0, 2, 0)
	c.StagePreSuperCategories([]*catcombination.SuperCategory{newSC(1), newSC(4)})
	c.StagePreSuperCategories([]*catcombination.SuperCategory{newSC(3), newSC(2)})

	c.CombinePreSuperCategories(2)

	if c.Len() != 2 {
		t.Fatalf("expected cap of 2 after merge, got %d", c.Len())
	}
	if c.SuperCategories()[0].Score != 4 || c.SuperCategories()[1].Score != 3 {
		t.Fatalf("expected top-2 merged by score, got %v", c.SuperCategories())
	}
}
