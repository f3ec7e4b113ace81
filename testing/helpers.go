// Package testing provides test utilities for vessel containers.
package testing

import (
	"github.com/zoobzio/vessel"
)

var (
	_ vessel.Cloner[Tracker] = Tracker{}
	_ vessel.Releaser        = (*Tracker)(nil)
	_ vessel.Cloner[Bag]     = Bag{}
)

// Counters records the lifecycle of Tracker values.
// Counters are not safe for concurrent use.
type Counters struct {
	Constructed int // NewTracker calls plus clones
	Cloned      int // Clone calls
	Released    int // first Release call per value
	Double      int // Release calls on an already released value
}

// Live returns the number of constructed values not yet released.
func (c *Counters) Live() int {
	return c.Constructed - c.Released
}

// Tracker is an instrumented value that reports construction, cloning and
// release to its Counters.
type Tracker struct {
	Value int

	counters *Counters
	released bool
}

// NewTracker constructs a Tracker reporting to c.
func NewTracker(c *Counters, value int) Tracker {
	c.Constructed++
	return Tracker{Value: value, counters: c}
}

// Clone implements vessel.Cloner[Tracker].
func (t Tracker) Clone() Tracker {
	t.counters.Constructed++
	t.counters.Cloned++
	return Tracker{Value: t.Value, counters: t.counters}
}

// Release implements vessel.Releaser.
func (t *Tracker) Release() {
	if t.released {
		t.counters.Double++
		return
	}
	t.released = true
	t.counters.Released++
}

// Released reports whether Release has run on this value.
func (t *Tracker) Released() bool {
	return t.released
}

// Point is a plain struct with no hooks.
type Point struct {
	ID   int
	Name string
}

// Bag owns a slice and deep copies it on Clone.
type Bag struct {
	Items []int
}

// Clone implements vessel.Cloner[Bag].
func (b Bag) Clone() Bag {
	items := make([]int, len(b.Items))
	copy(items, b.Items)
	return Bag{Items: items}
}
