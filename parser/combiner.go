package parser

import (
	"container/heap"

	"github.com/habeanf/yap-ccg/alg"
	"github.com/habeanf/yap-ccg/alg/rlheap"
	"github.com/habeanf/yap-ccg/catcombination"
	"github.com/habeanf/yap-ccg/chart"
	"github.com/habeanf/yap-ccg/rules"
)

// Combiner applies a rule engine's binary rules to every pair across two
// cells, scoring each result, and stages the output for commitment into a
// target cell. Grounded on ChartParserBeam.java's combine/combineBetter.
type Combiner struct {
	Rules       rules.Engine
	Scorer      *Scorer
	CubePruning bool
	BeamSize    int
}

// NewCombiner returns a Combiner using engine for rule application and
// scorer to score every produced supercategory.
func NewCombiner(engine rules.Engine, scorer *Scorer, cubePruning bool, beamSize int) *Combiner {
	return &Combiner{Rules: engine, Scorer: scorer, CubePruning: cubePruning, BeamSize: beamSize}
}

// Combine applies every binary rule to the cross product of the
// supercategories committed at (leftPos, leftSpan) and (rightPos,
// rightSpan), scores the results, and commits or stages them at (targetPos,
// targetSpan) depending on CubePruning. atRoot is true only when the
// target span equals the sentence length (spec.md §4.1's atRoot flag).
func (c *Combiner) Combine(ch *chart.Chart, leftPos, leftSpan, rightPos, rightSpan, targetPos, targetSpan int, atRoot bool) {
	left := ch.Cell(leftPos, leftSpan)
	right := ch.Cell(rightPos, rightSpan)
	if c.CubePruning {
		c.combineCube(ch, left, right, targetPos, targetSpan, atRoot)
	} else {
		c.combinePlain(ch, left, right, targetPos, targetSpan, atRoot)
	}
}

func (c *Combiner) combinePlain(ch *chart.Chart, left, right *chart.Cell, targetPos, targetSpan int, atRoot bool) {
	var out []*catcombination.SuperCategory
	for _, l := range left.SuperCategories() {
		for _, r := range right.SuperCategories() {
			out = append(out, c.Rules.Combine(l, r)...)
		}
	}
	for _, sc := range out {
		c.Scorer.ScoreBinary(sc, sc.Left, sc.Right, atRoot)
	}
	ch.AddNoDP(targetPos, targetSpan, out)
}

// pairCandidate is one entry in the cube-pruning priority queue: either a
// real scored result, or a sentinel carrying only the frontier coordinate
// that produced no result, so its neighbours are still explored (spec.md
// §4.2, §9 "priority queue with sentinel").
type pairCandidate struct {
	sc         *catcombination.SuperCategory // nil for a sentinel entry
	li, ri     int
}

// candidateHeap is a container/heap.Interface consumed via alg/rlheap,
// ordering sentinel entries as smallest so real results surface first.
type candidateHeap []*pairCandidate

var _ heap.Interface = &candidateHeap{}

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	switch {
	case a.sc == nil && b.sc == nil:
		return false
	case a.sc == nil:
		return false // sentinel is "smallest": never less than a real entry
	case b.sc == nil:
		return true
	default:
		return catcombination.CompareScore(a.sc, b.sc) < 0
	}
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) {
	*h = append(*h, x.(*pairCandidate))
}

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// encodePair packs a frontier coordinate into a single int so alg.Queue's
// int-only FIFO can carry it; rightSize bounds ri so the packing round-trips.
func encodePair(li, ri, rightSize int) int {
	return li*rightSize + ri
}

func decodePair(packed, rightSize int) (li, ri int) {
	return packed / rightSize, packed % rightSize
}

// combineCube is the k-best frontier search over the Cartesian product of
// left and right's (pre-sorted, descending) supercategories, grounded on
// ChartParserBeam.java's combineBetter.
func (c *Combiner) combineCube(ch *chart.Chart, left, right *chart.Cell, targetPos, targetSpan int, atRoot bool) {
	leftCats := left.SuperCategories()
	rightCats := right.SuperCategories()
	leftSize, rightSize := len(leftCats), len(rightCats)
	if leftSize == 0 || rightSize == 0 {
		return
	}

	if leftSize*rightSize <= c.BeamSize {
		c.combinePlain(ch, left, right, targetPos, targetSpan, atRoot)
		return
	}

	pairs := alg.NewQueueSlice(leftSize + rightSize)
	track := make([][]bool, leftSize)
	for i := range track {
		track[i] = make([]bool, rightSize)
	}

	enqueue := func(li, ri int) {
		if li < leftSize && ri < rightSize && !track[li][ri] {
			track[li][ri] = true
			pairs.Enqueue(encodePair(li, ri, rightSize))
		}
	}
	enqueue(0, 0)

	pq := &candidateHeap{}
	rlheap.Init(pq)

	kbest := make([]*catcombination.SuperCategory, 0, c.BeamSize)
	for len(kbest) < c.BeamSize {
		for {
			packed, ok := pairs.Dequeue()
			if !ok {
				break
			}
			li, ri := decodePair(packed, rightSize)
			out := c.Rules.Combine(leftCats[li], rightCats[ri])
			if len(out) == 0 {
				rlheap.Push(pq, &pairCandidate{sc: nil, li: li, ri: ri})
				continue
			}
			for _, sc := range out {
				c.Scorer.ScoreBinary(sc, sc.Left, sc.Right, atRoot)
				rlheap.Push(pq, &pairCandidate{sc: sc, li: li, ri: ri})
			}
		}

		if pq.Len() == 0 {
			break
		}
		top := rlheap.Pop(pq).(*pairCandidate)
		if top.sc != nil {
			kbest = append(kbest, top.sc)
		}
		enqueue(top.li+1, top.ri)
		enqueue(top.li, top.ri+1)
	}

	catcombination.SortByScoreDescending(kbest)
	ch.StagePreSuperCategories(targetPos, targetSpan, kbest)
}
