package testing

import (
	"testing"
)

func TestTracker_Lifecycle(t *testing.T) {
	var c Counters

	tr := NewTracker(&c, 7)
	if c.Constructed != 1 || c.Live() != 1 {
		t.Errorf("Constructed = %d, Live = %d, want 1 and 1", c.Constructed, c.Live())
	}

	cl := tr.Clone()
	if cl.Value != 7 || c.Cloned != 1 || c.Constructed != 2 {
		t.Errorf("Clone() = %d, Cloned = %d, Constructed = %d", cl.Value, c.Cloned, c.Constructed)
	}

	tr.Release()
	tr.Release()
	if !tr.Released() || c.Released != 1 || c.Double != 1 {
		t.Errorf("Released = %d, Double = %d, want 1 and 1", c.Released, c.Double)
	}
	if cl.Released() {
		t.Error("releasing the original should not release the clone")
	}
}

func TestBag_Clone(t *testing.T) {
	original := Bag{Items: []int{1, 2}}
	cloned := original.Clone()

	cloned.Items[0] = 9
	if original.Items[0] != 1 {
		t.Error("Clone() should deep copy Items")
	}
}
