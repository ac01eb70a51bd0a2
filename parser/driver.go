package parser

import (
	"fmt"
	"log"
	"time"

	"github.com/habeanf/yap-ccg/catcombination"
	"github.com/habeanf/yap-ccg/chart"
	"github.com/habeanf/yap-ccg/model"
	"github.com/habeanf/yap-ccg/rules"
	"github.com/habeanf/yap-ccg/sentence"
)

// Outcome is the result of a parseSentence call (spec.md §4.1).
type Outcome int

const (
	Parsed Outcome = iota
	SkippedMaxWords
	SkippedMaxSuperCats
	Exhausted
)

func (o Outcome) String() string {
	switch o {
	case Parsed:
		return "Parsed"
	case SkippedMaxWords:
		return "Skipped(MaxWords)"
	case SkippedMaxSuperCats:
		return "Skipped(MaxSuperCats)"
	case Exhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// Config holds the parser's accepted options and no others (spec.md §6).
type Config struct {
	CubePruning      bool
	BeamSize         int
	Beta             float64
	MaxWords         int
	MaxSuperCats     int
	AltMarkedup      bool
	EisnerNormalForm bool
	Diagnostics      bool
}

// Hooks are the injected pre-/post-parse callback pair standing in for the
// original's preParse/postParse subclass hooks (spec.md §9). Either may be
// nil. PreParse returning false aborts the sentence before any fill work.
type Hooks struct {
	PreParse  func(sent *sentence.Sentence) bool
	PostParse func(position, span, numWords int)
}

// Driver runs the CKY outer loop over a chart: leaf scoring and unary
// expansion for width 1, then binary combination, optional unary expansion
// and beam pruning for widths 2..n (spec.md §4.1). Grounded on
// ChartParserBeam.java's parseSentence.
type Driver struct {
	Config Config
	Hooks  Hooks

	Rules    rules.Engine
	Features model.Features
	Weights  *model.Weights
	DepNN    model.DepNN // nil disables neural mixing
	Ignore   model.IgnorePolicy
	Metrics  *Metrics // nil disables prometheus reporting

	chart                *chart.Chart
	maxWordsExceeded     bool
	maxSuperCatsExceeded bool
}

// NewDriver returns a Driver wired to the given collaborators and config.
func NewDriver(cfg Config, engine rules.Engine, features model.Features, weights *model.Weights) *Driver {
	return &Driver{Config: cfg, Rules: engine, Features: features, Weights: weights}
}

// AttachDepNN unconditionally (re)attaches the given neural dependency
// scorer, replacing any previously attached one. The original's initDepNN only reinstantiated the
// model when one was already attached (a no-op on first call); this is
// documented in DESIGN.md as an intentional bug fix (spec.md §9 open
// question).
func (d *Driver) AttachDepNN(depnn model.DepNN) {
	d.DepNN = depnn
}

// MaxWordsExceeded reports whether the most recent ParseSentence call
// returned SkippedMaxWords.
func (d *Driver) MaxWordsExceeded() bool { return d.maxWordsExceeded }

// MaxSuperCatsExceeded reports whether the most recent ParseSentence call
// returned SkippedMaxSuperCats.
func (d *Driver) MaxSuperCatsExceeded() bool { return d.maxSuperCatsExceeded }

// Chart returns the chart built by the most recent ParseSentence call.
func (d *Driver) Chart() *chart.Chart { return d.chart }

// ParseSentence fills the chart for sent and returns the outcome (spec.md
// §4.1). leafBeta is the supertagger's own (tighter) beta used when loading
// leaves; the cell beta used throughout the rest of the fill comes from
// d.Config.Beta.
func (d *Driver) ParseSentence(sent *sentence.Sentence, leafBeta float64) (Outcome, error) {
	start := time.Now()
	outcome, err := d.parseSentence(sent, leafBeta)
	d.Metrics.Observe(outcome, time.Since(start).Seconds())
	return outcome, err
}

func (d *Driver) parseSentence(sent *sentence.Sentence, leafBeta float64) (Outcome, error) {
	d.maxWordsExceeded = false
	d.maxSuperCatsExceeded = false

	numWords := sent.NumWords()
	if d.Config.MaxWords > 0 && numWords > d.Config.MaxWords {
		log.Printf("sentence has %d words; MAX_WORDS exceeded", numWords)
		d.maxWordsExceeded = true
		return SkippedMaxWords, nil
	}

	d.chart = chart.New(numWords, d.Config.BeamSize)
	if err := d.chart.Load(sent, chart.LogBeta(leafBeta)); err != nil {
		return Exhausted, fmt.Errorf("parser: loading chart: %w", err)
	}

	if d.Hooks.PreParse != nil && !d.Hooks.PreParse(sent) {
		return Exhausted, nil
	}

	scorer := NewScorer(d.Features, d.Weights, d.DepNN, d.Ignore, sent)
	combiner := NewCombiner(d.Rules, scorer, d.Config.CubePruning, d.Config.BeamSize)
	unary := NewUnaryExpander(d.Rules, scorer)
	logBeta := chart.LogBeta(d.Config.Beta)

	// Leaves pass: type-change before type-raise (type-change outputs may
	// be type-raised, never the reverse), then beta-only prune (no cap).
	for i := 0; i < numWords; i++ {
		cell := d.chart.Cell(i, 1)
		for _, sc := range cell.SuperCategories() {
			wordID, posID := 0, 0
			if i < len(sent.WordIDs) {
				wordID = sent.WordIDs[i]
			}
			if i < len(sent.POSIDs) {
				posID = sent.POSIDs[i]
			}
			scorer.ScoreLeaf(sc, wordID, posID)
		}

		unary.Expand(d.chart, i, 1)
		cell.ApplyBeam(0, logBeta)

		if d.Hooks.PostParse != nil {
			d.Hooks.PostParse(i, 1, numWords)
		}
	}

	// Fill pass: widths 2..n.
	for j := 2; j <= numWords; j++ {
		for i := 0; i <= numWords-j; i++ {
			for k := 1; k < j; k++ {
				if d.Config.MaxSuperCats > 0 && d.chart.NumSuperCategories() > d.Config.MaxSuperCats {
					d.maxSuperCatsExceeded = true
					log.Printf("MAX_SUPERCATS exceeded (%d > %d)", d.chart.NumSuperCategories(), d.Config.MaxSuperCats)
					return SkippedMaxSuperCats, nil
				}

				atRoot := j == numWords
				combiner.Combine(d.chart, i, k, i+k, j-k, i, j, atRoot)
			}

			if d.Config.CubePruning {
				d.chart.Cell(i, j).CombinePreSuperCategories(d.Config.BeamSize)
			}

			if j < numWords {
				unary.Expand(d.chart, i, j)
			}

			d.chart.Cell(i, j).ApplyBeam(d.Config.BeamSize, logBeta)

			if d.Hooks.PostParse != nil {
				d.Hooks.PostParse(i, j, numWords)
			}
		}
	}

	if d.chart.Root().Len() == 0 {
		return Exhausted, nil
	}
	return Parsed, nil
}

// Skim runs the skimmer fallback decoder over the full sentence span,
// recording the invocation in d.Metrics. Callers should invoke this only
// when ParseSentence returned Exhausted (spec.md §4.6).
func (d *Driver) Skim() []*catcombination.SuperCategory {
	d.Metrics.ObserveSkimmer()
	return Skimmer(d.chart, 0, d.chart.NumWords())
}
