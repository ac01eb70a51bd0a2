// Package model holds the feature and weight tables a Scorer consults, plus
// the optional neural dependency scorer and the dependency-ignore policy.
// Weights is grounded on model/Weights.java: a dense array keyed by feature
// ID, loaded from a preface-commented text file by LoadWeights.
package model

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/habeanf/yap-ccg/catcombination"
)

// Weights is a dense lookup table from feature ID to its learned weight,
// plus the scalar mixing coefficient applied to the neural dependency
// score when one is attached.
type Weights struct {
	values    []float64
	depNNCoef float64
}

// NewWeights allocates a zero-valued table for numFeatures features.
func NewWeights(numFeatures int) *Weights {
	return &Weights{values: make([]float64, numFeatures)}
}

// GetDepNN returns the scalar coefficient mixing the neural dependency
// score into a supercategory's total score.
func (w *Weights) GetDepNN() float64 {
	return w.depNNCoef
}

// SetDepNN sets the neural-dependency-score mixing coefficient.
func (w *Weights) SetDepNN(coef float64) {
	w.depNNCoef = coef
}

// Get returns the weight for id, or 0 if id is out of range; features never
// fired during training are assumed to contribute nothing, matching the
// original's implicit zero-weight default for unseen feature IDs.
func (w *Weights) Get(id int) float64 {
	if id < 0 || id >= len(w.values) {
		return 0
	}
	return w.values[id]
}

// Set assigns the weight for id, growing the table if necessary.
func (w *Weights) Set(id int, weight float64) {
	if id >= len(w.values) {
		grown := make([]float64, id+1)
		copy(grown, w.values)
		w.values = grown
	}
	w.values[id] = weight
}

// LoadWeights reads one weight per line from filename, skipping a leading
// '#'-prefixed preface (grounded on Preface.readPreface/util/conf's comment
// convention), in feature-ID order starting from 0.
func LoadWeights(filename string, numFeatures int) (*Weights, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("model: opening weights file: %w", err)
	}
	defer file.Close()

	w := NewWeights(numFeatures)
	scanner := bufio.NewScanner(file)
	id := 0
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > 0 && line[0] == '#' {
			continue
		}
		weight, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("model: parsing weight %d: %w", id, err)
		}
		w.Set(id, weight)
		id++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("model: reading weights file: %w", err)
	}
	if id != numFeatures {
		return nil, fmt.Errorf("model: number of weights (%d) != number of features (%d)", id, numFeatures)
	}
	return w, nil
}

// Features extracts the feature IDs contributed by a leaf, unary or binary
// combination step; its concrete template set is grammar-specific and out
// of this core's scope (spec.md §1, §6).
type Features interface {
	Leaf(sc *catcombination.SuperCategory, wordID, posID int) []int
	Unary(parent, child *catcombination.SuperCategory, ruleID int16) []int
	Binary(parent, left, right *catcombination.SuperCategory) []int
	Root(sc *catcombination.SuperCategory) []int
}

// NoFeatures fires no feature IDs at any level. It exists so the CLI and
// tests have something concrete to wire a Scorer to without depending on a
// grammar-specific feature template set, mirroring rules.Null.
type NoFeatures struct{}

var _ Features = NoFeatures{}

func (NoFeatures) Leaf(*catcombination.SuperCategory, int, int) []int                      { return nil }
func (NoFeatures) Unary(*catcombination.SuperCategory, *catcombination.SuperCategory, int16) []int {
	return nil
}
func (NoFeatures) Binary(*catcombination.SuperCategory, *catcombination.SuperCategory, *catcombination.SuperCategory) []int {
	return nil
}
func (NoFeatures) Root(*catcombination.SuperCategory) []int { return nil }

// DepAttributes is the seven-slot attribute tuple a neural dependency
// scorer reads: head word, dependent word, variable slot, head POS,
// dependent POS, and two grammar-specific extras (e.g. relation name and
// conjunction factor), mirroring depnn.io.Dependency's seven added fields.
type DepAttributes [7]string

// DepNN predicts a soft (0,1] probability for a filled dependency given its
// attribute tuple; a network trained independently of the linear feature
// weights. Its concrete architecture is out of this core's scope.
type DepNN interface {
	PredictSoft(attrs DepAttributes) float64
}

// IgnorePolicy decides whether a filled dependency should be excluded from
// scoring, matching rules.IgnorePolicy's contract; kept as a separate type
// here so model implementations need not import rules.
type IgnorePolicy interface {
	Ignore(dep catcombination.FilledDependency) bool
}

// NoIgnore never excludes a dependency.
type NoIgnore struct{}

// Ignore always returns false.
func (NoIgnore) Ignore(catcombination.FilledDependency) bool { return false }
