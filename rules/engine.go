// Package rules declares the combinatory grammar rule engine as an external
// collaborator: applying, type-changing and type-raising categories is
// grammar-specific and out of this core's scope (spec.md §1, §6). This
// package holds only the boundary interfaces and a no-op stand-in grounded
// on the commented-out Trivial pattern in alg/transition/model/trivial.go.
package rules

import "github.com/habeanf/yap-ccg/catcombination"

// Engine applies combinatory rules over supercategories. Combine tries every
// binary rule for the ordered pair (left, right) and returns one
// SuperCategory per rule that licenses a combination; TypeChange and
// TypeRaise do the same for the unary rules, given a single child.
//
// Implementations own all grammar-specific state (rule instances, their
// ordering, markedup feature unification) and must be safe for concurrent
// read-only use; Engine itself carries no mutable per-call scratch state.
type Engine interface {
	Combine(left, right *catcombination.SuperCategory) []*catcombination.SuperCategory
	TypeChange(child *catcombination.SuperCategory) []*catcombination.SuperCategory
	TypeRaise(child *catcombination.SuperCategory) []*catcombination.SuperCategory
}

// RelationNamer maps a dependency's relation ID back to its grammar-defined
// name. Nothing in this repository calls it: WriteDeps prints the numeric
// relation ID.
type RelationNamer interface {
	RelationName(relID int16) string
}

// IgnorePolicy decides whether a filled dependency should be omitted from
// scoring and output, e.g. because its relation is a closed-class relation
// the grammar treats as structural rather than semantic.
type IgnorePolicy interface {
	Ignore(dep catcombination.FilledDependency) bool
}

// Null is a rule engine that licenses no combinations at all. It exists so
// that the CLI and tests have something concrete to wire the parser driver
// to without depending on a real grammar implementation, mirroring the
// no-op Trivial model commented out in alg/transition/model/trivial.go.
type Null struct{}

var _ Engine = Null{}

// Combine always returns nil: Null licenses no binary combinations.
func (Null) Combine(left, right *catcombination.SuperCategory) []*catcombination.SuperCategory {
	return nil
}

// TypeChange always returns nil: Null licenses no unary type-change rules.
func (Null) TypeChange(child *catcombination.SuperCategory) []*catcombination.SuperCategory {
	return nil
}

// TypeRaise always returns nil: Null licenses no unary type-raising rules.
func (Null) TypeRaise(child *catcombination.SuperCategory) []*catcombination.SuperCategory {
	return nil
}
