// Package chart implements the triangular CKY table: Cell holds the
// supercategories committed for one (position, span) pair, and Chart is the
// 2-D array of cells plus the global supercategory count used for the
// MAX_SUPERCATS tripwire. Grounded on ChartParserBeam.java's cell/chart
// handling (applyBeam, combinePreSuperCategories, setCellSize).
package chart

import (
	"github.com/habeanf/yap-ccg/catcombination"
)

// Cell holds the committed supercategories for one (position, span) slot,
// plus a staging area used only by cube-pruning combination before it is
// folded into the committed list.
type Cell struct {
	Position int
	Span     int

	superCategories []*catcombination.SuperCategory

	// preSuperCategories holds one staged slice per split point k, appended
	// by the cube-pruning combiner and merged by CombinePreSuperCategories.
	preSuperCategories [][]*catcombination.SuperCategory
}

// NewCell returns an empty cell for the given position and span, with
// capacity pre-reserved per spec.md §4.7: (span-1) * beamSize^2 * 2 for
// spans greater than 1, covering combine enumeration plus unary expansion
// headroom.
func NewCell(position, span, beamSize int) *Cell {
	capacity := 0
	if span > 1 && beamSize > 0 {
		capacity = (span - 1) * beamSize * beamSize * 2
	}
	return &Cell{
		Position:        position,
		Span:            span,
		superCategories: make([]*catcombination.SuperCategory, 0, capacity),
	}
}

// SuperCategories returns the committed supercategories, in their current
// order (descending by score once ApplyBeam has run).
func (c *Cell) SuperCategories() []*catcombination.SuperCategory {
	return c.superCategories
}

// Len reports how many supercategories are currently committed.
func (c *Cell) Len() int {
	return len(c.superCategories)
}

// AddNoDP appends results to the committed list without duplicate
// detection; spec.md §4.7 makes deduplication the beam's responsibility,
// not the cell's.
func (c *Cell) AddNoDP(results []*catcombination.SuperCategory) {
	c.superCategories = append(c.superCategories, results...)
}

// StagePreSuperCategories records one split point's cube-pruning output for
// later merging by CombinePreSuperCategories.
func (c *Cell) StagePreSuperCategories(results []*catcombination.SuperCategory) {
	c.preSuperCategories = append(c.preSuperCategories, results)
}

// CombinePreSuperCategories merges every split point's staged results into
// the committed list, capped at beamSize by score, and clears the staging
// area. Used only under cube pruning, after all splits for a cell have run.
func (c *Cell) CombinePreSuperCategories(beamSize int) {
	var merged []*catcombination.SuperCategory
	for _, staged := range c.preSuperCategories {
		merged = append(merged, staged...)
	}
	c.preSuperCategories = nil

	catcombination.SortByScoreDescending(merged)
	if beamSize > 0 && len(merged) > beamSize {
		merged = merged[:beamSize]
	}
	c.superCategories = append(c.superCategories, merged...)
}

// ApplyBeam sorts the committed list descending by score, drops every entry
// scoring below maxScore + logBeta, and (if maxCount > 0) truncates to the
// first maxCount entries. logBeta is the already-logged cutoff offset (see
// LogBeta): 0 keeps only entries tied with the maximum, -Inf keeps all.
func (c *Cell) ApplyBeam(maxCount int, logBeta float64) {
	if len(c.superCategories) == 0 {
		return
	}

	catcombination.SortByScoreDescending(c.superCategories)
	maxScore := c.superCategories[0].Score
	threshold := maxScore + logBeta

	kept := c.superCategories[:0:0]
	for _, sc := range c.superCategories {
		if sc.Score < threshold {
			break // sorted descending: everything after also falls below
		}
		kept = append(kept, sc)
	}
	c.superCategories = kept

	if maxCount > 0 && len(c.superCategories) > maxCount {
		c.superCategories = c.superCategories[:maxCount]
	}
}

// MaxScore returns the highest score among the committed supercategories,
// or negative infinity if the cell is empty.
func (c *Cell) MaxScore() float64 {
	return catcombination.MaxScore(c.superCategories)
}
