package chart

import (
	"fmt"

	"github.com/habeanf/yap-ccg/catcombination"
	"github.com/habeanf/yap-ccg/sentence"
)

// Chart is the triangular (position, span) table over a sentence of
// numWords words, plus the global supercategory count used for the
// MAX_SUPERCATS tripwire (spec.md §3 Chart, §4.7).
type Chart struct {
	numWords int
	beamSize int

	// cells[i][j-1] is cell(i, j) for j in [1, numWords-i]; span 0 is never
	// stored, matching the chart's triangular shape.
	cells [][]*Cell

	numSuperCategories int
}

// New allocates an empty chart sized for numWords words. beamSize is used
// only to pre-reserve cell capacity (spec.md §4.7) and may be 0.
func New(numWords, beamSize int) *Chart {
	c := &Chart{numWords: numWords, beamSize: beamSize}
	c.allocate()
	return c
}

func (c *Chart) allocate() {
	c.cells = make([][]*Cell, c.numWords)
	for i := 0; i < c.numWords; i++ {
		maxSpan := c.numWords - i
		row := make([]*Cell, maxSpan)
		for j := 1; j <= maxSpan; j++ {
			row[j-1] = NewCell(i, j, c.beamSize)
		}
		c.cells[i] = row
	}
}

// Clear resets every cell and the global supercategory count, invalidating
// every supercategory built for the previous sentence (spec.md §4.7).
func (c *Chart) Clear() {
	c.allocate()
	c.numSuperCategories = 0
}

// Cell returns the slot at (position, span). Panics if out of the chart's
// triangular bounds, indicating a driver bug rather than recoverable input.
func (c *Chart) Cell(position, span int) *Cell {
	if position < 0 || position >= c.numWords || span < 1 || position+span > c.numWords {
		panic(fmt.Sprintf("chart: cell(%d,%d) out of bounds for %d words", position, span, c.numWords))
	}
	return c.cells[position][span-1]
}

// Root returns cell(0, numWords), the full-sentence span.
func (c *Chart) Root() *Cell {
	return c.Cell(0, c.numWords)
}

// NumWords returns the sentence length the chart was sized for.
func (c *Chart) NumWords() int {
	return c.numWords
}

// NumSuperCategories returns the running total of supercategories added
// across the whole chart since the last Clear.
func (c *Chart) NumSuperCategories() int {
	return c.numSuperCategories
}

// AddNoDP appends results to cell(position, span) and advances the global
// supercategory count, mirroring Chart.addNoDP/Chart.getNumSuperCategories.
func (c *Chart) AddNoDP(position, span int, results []*catcombination.SuperCategory) {
	c.Cell(position, span).AddNoDP(results)
	c.numSuperCategories += len(results)
}

// StagePreSuperCategories records one split's cube-pruning output under
// cell(position, span) and advances the global supercategory count.
func (c *Chart) StagePreSuperCategories(position, span int, results []*catcombination.SuperCategory) {
	c.Cell(position, span).StagePreSuperCategories(results)
	c.numSuperCategories += len(results)
}

// Load populates every width-1 cell from sent's per-word supertag
// candidates, filtering by the supertagger's own (tighter) logBeta cutoff;
// a candidate surviving into cell(i,1) becomes a leaf SuperCategory with no
// children and its LogPScore carried over (spec.md §4.1 step 2, §4.7).
func (c *Chart) Load(sent *sentence.Sentence, logBeta float64) error {
	if sent.NumWords() != c.numWords {
		return fmt.Errorf("chart: sentence has %d words, chart sized for %d", sent.NumWords(), c.numWords)
	}

	for i, candidates := range sent.SuperTags {
		if len(candidates) == 0 {
			continue
		}
		maxLogP := candidates[0].LogPScore
		for _, cand := range candidates {
			if cand.LogPScore > maxLogP {
				maxLogP = cand.LogPScore
			}
		}
		threshold := maxLogP + logBeta

		leaves := make([]*catcombination.SuperCategory, 0, len(candidates))
		for _, cand := range candidates {
			if cand.LogPScore < threshold {
				continue
			}
			leaves = append(leaves, &catcombination.SuperCategory{
				Cat:       cand.Cat,
				LogPScore: cand.LogPScore,
			})
		}
		c.AddNoDP(i, 1, leaves)
	}
	return nil
}
