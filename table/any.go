// Package table implements the vessel container with per-type function
// tables.
//
// Every stored value lives behind an unsafe.Pointer in the same concrete
// record struct. The record references the vtable of its type: three plain
// functions instantiated once per type and shared by all records of it.
package table

import (
	"unsafe"

	"github.com/zoobzio/vessel"
	"github.com/zoobzio/vessel/internal/slot"
)

// record is an erased value of the type described by vt.
type record struct {
	vt    *vtable
	value unsafe.Pointer
}

func newRecord[T any](p *T) *record {
	return &record{vt: tableOf[T](), value: unsafe.Pointer(p)}
}

func (r *record) Clone() *record {
	return r.vt.clone(r)
}

func (r *record) Identify() vessel.Token {
	return r.vt.identify()
}

func (r *record) Destroy() {
	r.vt.destroy(r)
}

// Any holds at most one value of any type.
//
// The zero value is an empty container ready for use. An Any must not be
// copied after first use; use Clone or Move instead. Any is not safe for
// concurrent mutation.
type Any struct {
	slot slot.Slot[*record]
}

// New returns a container holding v.
// If v is itself a *Any, the result is a copy of that container rather than
// a container wrapping it.
func New[T any](v T) *Any {
	if src, ok := any(v).(*Any); ok {
		return src.Clone()
	}

	a := &Any{}
	a.slot.Adopt(newRecord(&v))
	return a
}

// Store replaces the contents of a with v.
// The new value is fully stored before the old one is released.
func Store[T any](a *Any, v T) {
	if src, ok := any(v).(*Any); ok {
		a.CopyFrom(src)
		return
	}
	a.slot.Adopt(newRecord(&v))
}

// Emplace releases the current value of a, stores v and returns a pointer to
// the stored value.
func Emplace[T any](a *Any, v T) *T {
	rec := a.slot.Emplace(func() *record {
		return newRecord(&v)
	})
	return (*T)(rec.value)
}

// EmplaceFunc releases the current value of a, then constructs a T in place
// starting from its zero value. init may be nil.
func EmplaceFunc[T any](a *Any, init func(*T)) *T {
	rec := a.slot.Emplace(func() *record {
		p := new(T)
		if init != nil {
			init(p)
		}
		return newRecord(p)
	})
	return (*T)(rec.value)
}

// Extract returns a pointer to the stored value.
// Writes through the pointer mutate the value inside a.
// It fails with ErrBadCast when a is empty or holds another type.
func Extract[T any](a *Any) (*T, error) {
	want := vessel.TypeOf[T]()
	if a == nil {
		return nil, slot.Mismatch(want, vessel.NoType)
	}
	if err := a.slot.Expect(want); err != nil {
		return nil, err
	}
	return (*T)(a.slot.Record().value), nil
}

// Get returns a copy of the stored value.
// It fails with ErrBadCast when a is empty or holds another type.
func Get[T any](a *Any) (T, error) {
	p, err := Extract[T](a)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// MustExtract is like Extract but panics on failure.
func MustExtract[T any](a *Any) *T {
	p, err := Extract[T](a)
	if err != nil {
		panic(err)
	}
	return p
}

// Clone returns an independent copy of a.
func (a *Any) Clone() *Any {
	c := &Any{}
	if a != nil {
		c.slot.Adopt(a.slot.CloneRecord())
	}
	return c
}

// Move transfers the contents of a to a new container and leaves a empty.
// The stored value is neither copied nor released.
func (a *Any) Move() *Any {
	m := &Any{}
	if a != nil {
		m.slot.Adopt(a.slot.Take())
	}
	return m
}

// CopyFrom replaces the contents of a with a copy of src.
// Assigning a container to itself leaves it unchanged.
func (a *Any) CopyFrom(src *Any) {
	if src == nil {
		a.Reset()
		return
	}
	a.slot.CopyFrom(&src.slot)
}

// MoveFrom replaces the contents of a with those of src and leaves src empty.
// Assigning a container to itself leaves it unchanged.
func (a *Any) MoveFrom(src *Any) {
	if src == nil {
		a.Reset()
		return
	}
	a.slot.MoveFrom(&src.slot)
}

// Reset releases the stored value and leaves a empty.
func (a *Any) Reset() {
	a.slot.Reset()
}

// Swap exchanges the contents of a and other.
func (a *Any) Swap(other *Any) {
	a.slot.Swap(&other.slot)
}

// HasValue reports whether a holds a value.
func (a *Any) HasValue() bool {
	return a != nil && a.slot.Full()
}

// Type returns the token of the stored type, or vessel.NoType when empty.
func (a *Any) Type() vessel.Token {
	if a == nil {
		return vessel.NoType
	}
	return a.slot.Type()
}

func (a *Any) String() string {
	if !a.HasValue() {
		return "Any(<empty>)"
	}
	return "Any(" + a.Type().String() + ")"
}
