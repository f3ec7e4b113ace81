// Package slot implements the ownership slot shared by every container
// variant: a single exclusive reference to an erasure record, plus the copy,
// move, assignment, swap and reset logic built on top of it.
package slot

import (
	"context"

	"github.com/zoobzio/vessel"
)

// Record is the erasure record contract a slot drives.
// The zero value of R means "no record".
type Record[R any] interface {
	comparable

	// Clone returns a new, independent record holding a copy of the value.
	Clone() R

	// Identify returns the token of the stored type.
	Identify() vessel.Token

	// Destroy releases the stored value. Called at most once per record.
	Destroy()
}

// Slot exclusively owns at most one record.
// A Slot must not be copied after first use.
type Slot[R Record[R]] struct {
	noCopy noCopy //nolint:unused

	rec R
}

// Full reports whether the slot owns a record.
func (s *Slot[R]) Full() bool {
	var none R
	return s.rec != none
}

// Record returns the owned record, or the zero R when empty.
// Ownership stays with the slot.
func (s *Slot[R]) Record() R {
	return s.rec
}

// Type returns the stored type, or NoType when empty.
func (s *Slot[R]) Type() vessel.Token {
	if !s.Full() {
		return vessel.NoType
	}
	return s.rec.Identify()
}

// Reset destroys the owned record, if any, and leaves the slot empty.
func (s *Slot[R]) Reset() {
	if !s.Full() {
		return
	}
	rec := s.rec
	var none R
	s.rec = none
	rec.Destroy()
}

// Swap exchanges the records of two slots without touching the values.
func (s *Slot[R]) Swap(other *Slot[R]) {
	s.rec, other.rec = other.rec, s.rec
}

// Take transfers the owned record out, leaving the slot empty.
func (s *Slot[R]) Take() R {
	rec := s.rec
	var none R
	s.rec = none
	return rec
}

// Adopt takes ownership of rec, destroying the previous record afterwards.
// The new record is installed before the old one is destroyed.
func (s *Slot[R]) Adopt(rec R) {
	tmp := Slot[R]{rec: rec}
	s.Swap(&tmp)
	tmp.Reset()
}

// Emplace destroys the current record and then installs the one returned by
// build. The slot is empty while build runs.
func (s *Slot[R]) Emplace(build func() R) R {
	s.Reset()
	s.rec = build()
	return s.rec
}

// CloneRecord returns an independent copy of the owned record, or the zero R
// when empty.
func (s *Slot[R]) CloneRecord() R {
	if !s.Full() {
		var none R
		return none
	}
	return s.rec.Clone()
}

// CopyFrom replaces the owned record with a clone of src's record.
// The clone is fully built before s changes, so a panic while cloning leaves
// both slots as they were. Copying a slot onto itself is a no-op.
func (s *Slot[R]) CopyFrom(src *Slot[R]) {
	if s == src {
		return
	}
	s.Adopt(src.CloneRecord())
}

// MoveFrom replaces the owned record with src's record, leaving src empty.
// Moving a slot onto itself is a no-op.
func (s *Slot[R]) MoveFrom(src *Slot[R]) {
	if s == src {
		return
	}
	s.Adopt(src.Take())
}

// Expect returns nil if the slot holds want and a BadCastError otherwise.
func (s *Slot[R]) Expect(want vessel.Token) error {
	have := s.Type()
	if have == want {
		return nil
	}
	return Mismatch(want, have)
}

// Mismatch builds the BadCastError for a rejected extraction and reports it.
func Mismatch(want, have vessel.Token) error {
	err := vessel.NewBadCastError(want, have)
	emitBadCast(context.Background(), want, have, err)
	return err
}
