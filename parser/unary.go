package parser

import (
	"github.com/habeanf/yap-ccg/catcombination"
	"github.com/habeanf/yap-ccg/chart"
	"github.com/habeanf/yap-ccg/rules"
)

// UnaryExpander applies type-change then type-raise rules to a cell's
// committed supercategories, scoring each output and appending it into the
// same cell without duplicate detection (spec.md §4.4). Grounded on
// ChartParserBeam.java's typeChange/typeRaise.
type UnaryExpander struct {
	Rules  rules.Engine
	Scorer *Scorer
}

// NewUnaryExpander returns an UnaryExpander using engine for rule
// application and scorer to score every produced supercategory.
func NewUnaryExpander(engine rules.Engine, scorer *Scorer) *UnaryExpander {
	return &UnaryExpander{Rules: engine, Scorer: scorer}
}

// Expand applies type-change then type-raise to cell(position, span),
// appending outputs into the same cell via ch. It must never be called on
// the full-sentence root span (spec.md §4.1 step 5, §4.4).
func (u *UnaryExpander) Expand(ch *chart.Chart, position, span int) {
	cell := ch.Cell(position, span)

	var changed []*catcombination.SuperCategory
	for _, sc := range cell.SuperCategories() {
		changed = append(changed, u.Rules.TypeChange(sc)...)
	}
	for _, sc := range changed {
		u.Scorer.ScoreUnary(sc, sc.Left, 0)
	}
	ch.AddNoDP(position, span, changed)

	var raised []*catcombination.SuperCategory
	for _, sc := range cell.SuperCategories() {
		raised = append(raised, u.Rules.TypeRaise(sc)...)
	}
	for _, sc := range raised {
		u.Scorer.ScoreUnary(sc, sc.Left, 0)
	}
	ch.AddNoDP(position, span, raised)
}
