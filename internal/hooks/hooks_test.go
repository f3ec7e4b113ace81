package hooks

import (
	"testing"

	"github.com/zoobzio/vessel"
	vesseltest "github.com/zoobzio/vessel/testing"
)

// ptrClone clones through a pointer receiver.
type ptrClone struct {
	items []int
}

func (p *ptrClone) Clone() ptrClone {
	return ptrClone{items: append([]int(nil), p.items...)}
}

// valueRelease releases through a value receiver into a shared counter.
type valueRelease struct {
	count *int
}

func (v valueRelease) Release() { *v.count++ }

func TestCopy(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		v := 5
		if got := Copy(&v); got != 5 {
			t.Errorf("Copy() = %d, want 5", got)
		}
	})

	t.Run("value receiver", func(t *testing.T) {
		b := vesseltest.Bag{Items: []int{1}}
		got := Copy(&b)
		got.Items[0] = 2
		if b.Items[0] != 1 {
			t.Error("Copy() should deep copy via Clone")
		}
	})

	t.Run("pointer receiver", func(t *testing.T) {
		p := ptrClone{items: []int{1}}
		got := Copy(&p)
		got.items[0] = 2
		if p.items[0] != 1 {
			t.Error("Copy() should deep copy via pointer Clone")
		}
	})
}

func TestCopier(t *testing.T) {
	tests := []struct {
		name string
		deep bool
		got  bool
	}{
		{"int", false, deepOf[int]()},
		{"value receiver", true, deepOf[vesseltest.Bag]()},
		{"pointer receiver", true, deepOf[ptrClone]()},
		{"interface", false, deepOf[any]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.deep {
				t.Errorf("deep = %v, want %v", tt.got, tt.deep)
			}
		})
	}
}

func TestCopier_Func(t *testing.T) {
	fn, _ := Copier[ptrClone]()

	p := ptrClone{items: []int{1}}
	got := fn(&p)
	got.items[0] = 2
	if p.items[0] != 1 {
		t.Error("Copier() func should deep copy")
	}

	plain, _ := Copier[string]()
	s := "x"
	if plain(&s) != "x" {
		t.Error("Copier() func should copy plain values")
	}
}

func TestRelease(t *testing.T) {
	var c vesseltest.Counters
	tr := vesseltest.NewTracker(&c, 1)
	Release(&tr)
	if c.Released != 1 {
		t.Errorf("Released = %d, want 1", c.Released)
	}

	n := 0
	Release(&valueRelease{count: &n})
	if n != 1 {
		t.Errorf("value receiver release count = %d, want 1", n)
	}

	v := 3
	Release(&v) // no hook, must not panic
}

func TestReleaser(t *testing.T) {
	if Releaser[int]() != nil {
		t.Error("Releaser[int]() should be nil")
	}

	var c vesseltest.Counters
	tr := vesseltest.NewTracker(&c, 1)
	Releaser[vesseltest.Tracker]()(&tr)
	if c.Released != 1 {
		t.Errorf("Released = %d, want 1", c.Released)
	}

	n := 0
	Releaser[valueRelease]()(&valueRelease{count: &n})
	if n != 1 {
		t.Errorf("value receiver release count = %d, want 1", n)
	}

	var dynamic any = valueRelease{count: &n}
	Releaser[any]()(&dynamic)
	if n != 2 {
		t.Errorf("dynamic release count = %d, want 2", n)
	}
}

func TestReleaser_Pointer(t *testing.T) {
	if Releaser[*vesseltest.Tracker]() != nil {
		t.Error("Releaser[*Tracker]() should be nil")
	}
	if Releaser[*valueRelease]() != nil {
		t.Error("Releaser[*valueRelease]() should be nil")
	}

	n := 0
	var dynamic any = &valueRelease{count: &n}
	Releaser[any]()(&dynamic)
	if n != 0 {
		t.Errorf("dynamic pointer release count = %d, want 0", n)
	}
}

func TestRelease_Pointer(t *testing.T) {
	var c vesseltest.Counters
	tr := vesseltest.NewTracker(&c, 1)
	p := &tr

	Release(&p)
	if c.Released != 0 {
		t.Errorf("Released = %d, want 0", c.Released)
	}
}

func TestRelease_Nil(t *testing.T) {
	var p *vesseltest.Tracker
	Release(&p)

	var dynamic vessel.Releaser = (*vesseltest.Tracker)(nil)
	Release(&dynamic)
	Releaser[vessel.Releaser]()(&dynamic)

	var empty vessel.Releaser
	Release(&empty)
	Releaser[vessel.Releaser]()(&empty)
}

// node clones itself through its pointer type.
type node struct {
	val int
}

func (n *node) Clone() *node {
	c := *n
	return &c
}

func TestCopy_NilPointer(t *testing.T) {
	var p *node
	if got := Copy(&p); got != nil {
		t.Errorf("Copy() = %v, want nil", got)
	}

	fn, deep := Copier[*node]()
	if !deep {
		t.Error("Copier[*node]() should clone")
	}
	if got := fn(&p); got != nil {
		t.Errorf("Copier() func = %v, want nil", got)
	}

	q := &node{val: 1}
	if got := fn(&q); got == q || got.val != 1 {
		t.Errorf("Copier() func = %p (%d), want a distinct copy of %p", got, got.val, q)
	}

	var dynamic vessel.Cloner[*node] = (*node)(nil)
	if got := Copy(&dynamic); got != dynamic {
		t.Error("Copy() of a nil dynamic value should return it unchanged")
	}
}

func deepOf[T any]() bool {
	_, deep := Copier[T]()
	return deep
}
