package slot

import (
	"errors"
	"testing"

	"github.com/zoobzio/vessel"
)

// fakeRecord logs the operations a slot performs on it.
type fakeRecord struct {
	value     int
	log       *[]string
	destroyed bool
}

func (r *fakeRecord) Clone() *fakeRecord {
	*r.log = append(*r.log, "clone")
	return &fakeRecord{value: r.value, log: r.log}
}

func (r *fakeRecord) Identify() vessel.Token {
	return vessel.TypeOf[int]()
}

func (r *fakeRecord) Destroy() {
	*r.log = append(*r.log, "destroy")
	r.destroyed = true
}

func newFake(log *[]string, v int) *fakeRecord {
	return &fakeRecord{value: v, log: log}
}

func TestSlot_Empty(t *testing.T) {
	var s Slot[*fakeRecord]

	if s.Full() {
		t.Error("zero Slot should be empty")
	}
	if s.Type() != vessel.NoType {
		t.Errorf("Type() = %s, want NoType", s.Type())
	}
	if s.CloneRecord() != nil {
		t.Error("CloneRecord() on empty slot should be nil")
	}

	s.Reset() // no-op
}

func TestSlot_Adopt(t *testing.T) {
	var log []string
	var s Slot[*fakeRecord]

	first := newFake(&log, 1)
	s.Adopt(first)
	second := newFake(&log, 2)
	s.Adopt(second)

	if s.Record() != second {
		t.Error("Adopt() should install the new record")
	}
	if !first.destroyed || second.destroyed {
		t.Error("Adopt() should destroy only the previous record")
	}
	if len(log) != 1 {
		t.Errorf("log = %v, want one destroy", log)
	}
}

func TestSlot_Emplace_DestroysFirst(t *testing.T) {
	var log []string
	var s Slot[*fakeRecord]
	s.Adopt(newFake(&log, 1))

	s.Emplace(func() *fakeRecord {
		log = append(log, "build")
		return newFake(&log, 2)
	})

	if len(log) != 2 || log[0] != "destroy" || log[1] != "build" {
		t.Errorf("log = %v, want [destroy build]", log)
	}
}

func TestSlot_CopyFrom(t *testing.T) {
	var log []string
	var a, b Slot[*fakeRecord]
	a.Adopt(newFake(&log, 1))
	b.Adopt(newFake(&log, 2))
	old := b.Record()

	b.CopyFrom(&a)

	if b.Record() == a.Record() {
		t.Fatal("CopyFrom() should not alias records")
	}
	if b.Record().value != 1 || !old.destroyed {
		t.Error("CopyFrom() should install a clone and destroy the old record")
	}
	if len(log) != 2 || log[0] != "clone" || log[1] != "destroy" {
		t.Errorf("log = %v, want [clone destroy]", log)
	}
}

func TestSlot_CopyFrom_PanicLeavesTarget(t *testing.T) {
	var log []string
	var src, dst Slot[*fakeRecord]
	src.Adopt(&fakeRecord{value: 1, log: nil}) // nil log panics in Clone
	dst.Adopt(newFake(&log, 2))
	kept := dst.Record()

	func() {
		defer func() { _ = recover() }()
		dst.CopyFrom(&src)
	}()

	if dst.Record() != kept || kept.destroyed {
		t.Error("a failed clone should leave the target untouched")
	}
	if src.Record().value != 1 {
		t.Error("a failed clone should leave the source untouched")
	}
}

func TestSlot_Self(t *testing.T) {
	var log []string
	var s Slot[*fakeRecord]
	s.Adopt(newFake(&log, 1))
	rec := s.Record()

	s.CopyFrom(&s)
	s.MoveFrom(&s)

	if s.Record() != rec || rec.destroyed {
		t.Error("self assignment should leave the slot unchanged")
	}
	if len(log) != 0 {
		t.Errorf("log = %v, want no operations", log)
	}
}

func TestSlot_MoveFrom(t *testing.T) {
	var log []string
	var a, b Slot[*fakeRecord]
	a.Adopt(newFake(&log, 1))
	rec := a.Record()

	b.MoveFrom(&a)

	if a.Full() {
		t.Error("MoveFrom() should empty the source")
	}
	if b.Record() != rec {
		t.Error("MoveFrom() should transfer the record itself")
	}
	if len(log) != 0 {
		t.Errorf("log = %v, want no operations", log)
	}
}

func TestSlot_SwapTake(t *testing.T) {
	var log []string
	var a, b Slot[*fakeRecord]
	a.Adopt(newFake(&log, 1))

	a.Swap(&b)
	if a.Full() || !b.Full() {
		t.Fatal("Swap() should exchange records")
	}

	rec := b.Take()
	if b.Full() || rec == nil || rec.destroyed {
		t.Error("Take() should hand over the record without destroying it")
	}
	if len(log) != 0 {
		t.Errorf("log = %v, want no operations", log)
	}
}

func TestSlot_Expect(t *testing.T) {
	var log []string
	var s Slot[*fakeRecord]

	if err := s.Expect(vessel.TypeOf[int]()); !errors.Is(err, vessel.ErrBadCast) {
		t.Errorf("Expect() on empty slot = %v, want ErrBadCast", err)
	}

	s.Adopt(newFake(&log, 1))
	if err := s.Expect(vessel.TypeOf[int]()); err != nil {
		t.Errorf("Expect(int) error: %v", err)
	}
	if err := s.Expect(vessel.TypeOf[string]()); !errors.Is(err, vessel.ErrBadCast) {
		t.Errorf("Expect(string) = %v, want ErrBadCast", err)
	}
}

func TestMismatch(t *testing.T) {
	err := Mismatch(vessel.TypeOf[string](), vessel.NoType)

	var bce *vessel.BadCastError
	if !errors.As(err, &bce) {
		t.Fatalf("Mismatch() = %T, want *vessel.BadCastError", err)
	}
	if bce.Want != vessel.TypeOf[string]() || !bce.Have.IsNone() {
		t.Errorf("Mismatch() = (%s, %s)", bce.Want, bce.Have)
	}
}
