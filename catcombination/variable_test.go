package catcombination

import (
	"reflect"
	"testing"
)

func TestVariableBindAndWords(t *testing.T) {
	v := NewVariable(2)
	v.Bind(5)
	v.Bind(7)

	if got := v.Words(); !reflect.DeepEqual(got, []int{5, 7}) {
		t.Fatalf("expected [5 7], got %v", got)
	}
	if v.Fillers[len(v.Fillers)-1] != Sentinel {
		t.Fatalf("expected fillers to end in sentinel, got %v", v.Fillers)
	}
}

func TestVariableCopyIsIndependent(t *testing.T) {
	v := NewVariable(1)
	v.Bind(3)

	cp := v.Copy()
	cp.Bind(4)

	if reflect.DeepEqual(v.Words(), cp.Words()) {
		t.Fatalf("expected copy mutation not to affect original")
	}
}
