package catcombination

// Dependency is an unfilled grammatical relation awaiting a filler word,
// grounded on cat_combination/Dependency.java. It is totally ordered
// lexicographically over (RelID, HeadIndex, Var, LRange, UnaryRuleID);
// ConjFactor is an average divisor carried for a downstream max-recall
// decoder and is deliberately excluded from both the ordering and the hash.
type Dependency struct {
	RelID       int16
	HeadIndex   int16 // position of the head word in the sentence; never 0
	Var         byte  // variable ID associated with the filler slot
	UnaryRuleID int16 // non-zero if this dependency arose from a unary rule
	LRange      int16 // set by the head-passing mechanism; see WithHeadPassing
	ConjFactor  int16 // average divisor for multiple slot fillers; excluded from Hash
}

// NewDependency constructs a dependency for a head word directly bearing
// the relation. headIndex must be non-zero: a dependency can never have
// the artificial root (word 0) as its head.
func NewDependency(relID, headIndex int16, v byte, unaryRuleID int16) Dependency {
	if headIndex == 0 {
		panic("catcombination: dependency headIndex must be non-zero")
	}
	return Dependency{RelID: relID, HeadIndex: headIndex, Var: v, UnaryRuleID: unaryRuleID, ConjFactor: 1}
}

// WithVar clones a dependency onto a new variable and unary rule ID, as
// happens when a UnaryRule's SuperCategory constructor re-homes its child's
// dependencies.
func (d Dependency) WithVar(v byte, unaryRuleID int16) Dependency {
	d.Var = v
	d.UnaryRuleID = unaryRuleID
	return d
}

// WithHeadPassing clones a dependency onto a new variable via the
// head-passing mechanism, taking the larger of the two LRange values; the
// choice of LRange when there are two options is, per the original, an
// arbitrary tie-break never motivated any further.
func (d Dependency) WithHeadPassing(v byte, lrange int16) Dependency {
	d.Var = v
	if lrange > d.LRange {
		d.LRange = lrange
	}
	return d
}

// Fill binds this dependency's variable to a concrete word index, producing
// a FilledDependency.
func (d Dependency) Fill(wordIndex int16) FilledDependency {
	return FilledDependency{Dependency: d, Filler: wordIndex}
}

func cmpInt16(a, b int16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpByte(a, b byte) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Compare implements the total order over (RelID, HeadIndex, Var, LRange,
// UnaryRuleID); Compare(other) == 0 iff Equal(other), matching spec.md's
// dependency ordering law.
func (d Dependency) Compare(other Dependency) int {
	if c := cmpInt16(d.RelID, other.RelID); c != 0 {
		return c
	}
	if c := cmpInt16(d.HeadIndex, other.HeadIndex); c != 0 {
		return c
	}
	if c := cmpByte(d.Var, other.Var); c != 0 {
		return c
	}
	if c := cmpInt16(d.LRange, other.LRange); c != 0 {
		return c
	}
	return cmpInt16(d.UnaryRuleID, other.UnaryRuleID)
}

// Equal reports whether two dependencies compare equal; ConjFactor plays no
// part, matching the Java equals()/compareTo() pair.
func (d Dependency) Equal(other Dependency) bool {
	return d.Compare(other) == 0
}

// Hash combines the same keys used for ordering (excluding ConjFactor), so
// that Equal implies equal Hash.
func (d Dependency) Hash() uint64 {
	h := uint64(d.RelID)
	h = h*1000003 + uint64(uint16(d.HeadIndex))
	h = h*1000003 + uint64(d.Var)
	h = h*1000003 + uint64(uint16(d.LRange))
	h = h*1000003 + uint64(uint16(d.UnaryRuleID))
	return h
}

// FilledDependency is a Dependency whose variable has been unified with a
// concrete word index.
type FilledDependency struct {
	Dependency
	Filler int16
}

// Equal reports structural equality including the filler word.
func (f FilledDependency) Equal(other FilledDependency) bool {
	return f.Dependency.Equal(other.Dependency) && f.Filler == other.Filler
}
