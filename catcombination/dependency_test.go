package catcombination

import "testing"

func TestDependencyOrderingLawMatchesEquality(t *testing.T) {
	a := NewDependency(1, 2, 3, 0)
	b := NewDependency(1, 2, 3, 0)
	c := NewDependency(1, 2, 4, 0)

	if a.Compare(b) != 0 {
		t.Fatalf("expected a.Compare(b) == 0, got %d", a.Compare(b))
	}
	if !a.Equal(b) {
		t.Fatalf("expected a.Equal(b)")
	}
	if a.Compare(c) == 0 || a.Equal(c) {
		t.Fatalf("expected a and c to differ by Var")
	}
}

func TestDependencyHashConsistentWithEqual(t *testing.T) {
	a := NewDependency(5, 7, 1, 2)
	b := NewDependency(5, 7, 1, 2)
	b.ConjFactor = 99 // excluded from both ordering and hash

	if !a.Equal(b) {
		t.Fatalf("expected a.Equal(b) despite differing ConjFactor")
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("expected equal dependencies to hash equally")
	}
}

func TestNewDependencyPanicsOnZeroHeadIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for headIndex == 0")
		}
	}()
	NewDependency(1, 0, 0, 0)
}

func TestWithHeadPassingKeepsLargerLRange(t *testing.T) {
	d := NewDependency(1, 2, 0, 0)
	d.LRange = 5

	smaller := d.WithHeadPassing(9, 3)
	if smaller.LRange != 5 {
		t.Fatalf("expected LRange to stay at 5, got %d", smaller.LRange)
	}

	larger := d.WithHeadPassing(9, 10)
	if larger.LRange != 10 {
		t.Fatalf("expected LRange to become 10, got %d", larger.LRange)
	}
}

func TestFillProducesFilledDependencyEquality(t *testing.T) {
	d := NewDependency(1, 2, 0, 0)
	f1 := d.Fill(3)
	f2 := d.Fill(3)
	f3 := d.Fill(4)

	if !f1.Equal(f2) {
		t.Fatalf("expected identical fills to be equal")
	}
	if f1.Equal(f3) {
		t.Fatalf("expected different fillers to differ")
	}
}
