package testing

import (
	"errors"
	"fmt"
	stdtesting "testing"

	"github.com/zoobzio/vessel"
)

// Container is the method set shared by every vessel container variant.
type Container[C any] interface {
	Clone() C
	Move() C
	CopyFrom(src C)
	MoveFrom(src C)
	Reset()
	Swap(other C)
	HasValue() bool
	Type() vessel.Token
	String() string
}

// Ops binds the generic functions of one variant to the value type T.
type Ops[C any, T any] struct {
	New         func(T) C
	Store       func(C, T)
	Emplace     func(C, T) *T
	EmplaceFunc func(C, func(*T)) *T
	Extract     func(C) (*T, error)
	Get         func(C) (T, error)
	MustExtract func(C) *T
}

// Variant describes one container implementation to the contract suite.
type Variant[C Container[C]] struct {
	// Empty returns a new empty container.
	Empty func() C

	Int        Ops[C, int]
	Float      Ops[C, float64]
	String     Ops[C, string]
	Slice      Ops[C, []int]
	IntPtr     Ops[C, *int]
	Point      Ops[C, Point]
	Bag        Ops[C, Bag]
	Celsius    Ops[C, Celsius]
	Stringer   Ops[C, fmt.Stringer]
	Tracker    Ops[C, Tracker]
	TrackerPtr Ops[C, *Tracker]
	Releaser   Ops[C, vessel.Releaser]
	Nested     Ops[C, C]
}

// Celsius is a named float with a String method.
type Celsius float64

func (c Celsius) String() string { return fmt.Sprintf("%gC", float64(c)) }

// Run checks the container contract against v.
func (v Variant[C]) Run(t *stdtesting.T) {
	tests := []struct {
		name string
		fn   func(*stdtesting.T)
	}{
		{"ZeroValue", v.testZeroValue},
		{"New", v.testNew},
		{"New_FromContainer", v.testNewFromContainer},
		{"New_InterfaceType", v.testNewInterfaceType},
		{"Clone", v.testClone},
		{"Clone_Empty", v.testCloneEmpty},
		{"Clone_DeepCopy", v.testCloneDeepCopy},
		{"Move", v.testMove},
		{"Move_Empty", v.testMoveEmpty},
		{"CopyFrom", v.testCopyFrom},
		{"CopyFrom_Self", v.testCopyFromSelf},
		{"CopyFrom_Empty", v.testCopyFromEmpty},
		{"CopyFrom_ReleasesPrevious", v.testCopyFromReleasesPrevious},
		{"MoveFrom", v.testMoveFrom},
		{"MoveFrom_Self", v.testMoveFromSelf},
		{"MoveFrom_Empty", v.testMoveFromEmpty},
		{"NilSource", v.testNilSource},
		{"NilContainer", v.testNilContainer},
		{"Store_ReassignDifferentTypes", v.testStoreReassign},
		{"Store_Container", v.testStoreContainer},
		{"Scenario", v.testScenario},
		{"Emplace", v.testEmplace},
		{"Emplace_OverExisting", v.testEmplaceOverExisting},
		{"EmplaceFunc", v.testEmplaceFunc},
		{"EmplaceFunc_NilInit", v.testEmplaceFuncNilInit},
		{"Emplace_ReleasesBeforeConstructing", v.testEmplaceReleasesFirst},
		{"Reset", v.testReset},
		{"Swap", v.testSwap},
		{"Swap_WithEmpty", v.testSwapWithEmpty},
		{"Swap_BothEmpty", v.testSwapBothEmpty},
		{"Swap_NoCopyOrRelease", v.testSwapNoCopyOrRelease},
		{"Extract", v.testExtract},
		{"Extract_BadCast", v.testExtractBadCast},
		{"Extract_NamedType", v.testExtractNamedType},
		{"MustExtract_Panics", v.testMustExtractPanics},
		{"Lifetime", v.testLifetime},
		{"Lifetime_Copy", v.testLifetimeCopy},
		{"Lifetime_Move", v.testLifetimeMove},
		{"Lifetime_Store", v.testLifetimeStore},
		{"Lifetime_SharedPointer", v.testLifetimeSharedPointer},
		{"NilPointer", v.testNilPointer},
		{"NilInterface", v.testNilInterface},
		{"WithSlice", v.testWithSlice},
		{"WithPointer", v.testWithPointer},
		{"InSlice", v.testInSlice},
		{"String", v.testString},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.fn)
	}
}

func (v Variant[C]) testZeroValue(t *stdtesting.T) {
	a := v.Empty()

	if a.HasValue() {
		t.Error("zero container should be empty")
	}
	if a.Type() != vessel.NoType {
		t.Errorf("Type() = %s, want NoType", a.Type())
	}
}

func (v Variant[C]) testNew(t *stdtesting.T) {
	t.Run("int", func(t *stdtesting.T) {
		a := v.Int.New(42)
		if !a.HasValue() {
			t.Fatal("HasValue() should be true")
		}
		if a.Type() != vessel.TypeOf[int]() {
			t.Errorf("Type() = %s, want int", a.Type())
		}
		if got, _ := v.Int.Get(a); got != 42 {
			t.Errorf("Get() = %d, want 42", got)
		}
	})

	t.Run("string", func(t *stdtesting.T) {
		a := v.String.New("hello")
		if a.Type() != vessel.TypeOf[string]() {
			t.Errorf("Type() = %s, want string", a.Type())
		}
		if got, _ := v.String.Get(a); got != "hello" {
			t.Errorf("Get() = %q, want %q", got, "hello")
		}
	})

	t.Run("struct", func(t *stdtesting.T) {
		p := Point{ID: 123, Name: "test"}
		a := v.Point.New(p)
		if a.Type() != vessel.TypeOf[Point]() {
			t.Errorf("Type() = %s, want Point", a.Type())
		}
		if got, _ := v.Point.Get(a); got != p {
			t.Errorf("Get() = %+v, want %+v", got, p)
		}
	})

	t.Run("float64", func(t *stdtesting.T) {
		a := v.Float.New(3.14)
		if got, _ := v.Float.Get(a); got != 3.14 {
			t.Errorf("Get() = %v, want 3.14", got)
		}
	})
}

func (v Variant[C]) testNewFromContainer(t *stdtesting.T) {
	src := v.Int.New(7)
	a := v.Nested.New(src)

	if a.Type() != vessel.TypeOf[int]() {
		t.Fatalf("Type() = %s, want int (not a nested container)", a.Type())
	}

	*v.Int.MustExtract(src) = 8
	if got, _ := v.Int.Get(a); got != 7 {
		t.Errorf("Get() = %d, want 7", got)
	}
}

func (v Variant[C]) testNewInterfaceType(t *stdtesting.T) {
	original := v.Stringer.New(Celsius(21))
	copied := original.Clone()

	if copied.Type() != vessel.TypeOf[fmt.Stringer]() {
		t.Fatalf("Type() = %s, want fmt.Stringer", copied.Type())
	}
	if _, err := v.Celsius.Extract(copied); !errors.Is(err, vessel.ErrBadCast) {
		t.Errorf("Extract[Celsius]() error = %v, want ErrBadCast", err)
	}
	if got := (*v.Stringer.MustExtract(copied)).String(); got != "21C" {
		t.Errorf("String() = %q, want %q", got, "21C")
	}
}

func (v Variant[C]) testClone(t *stdtesting.T) {
	original := v.Int.New(100)
	copied := original.Clone()

	if !original.HasValue() || !copied.HasValue() {
		t.Fatal("both containers should hold a value")
	}
	if copied.Type() != vessel.TypeOf[int]() {
		t.Errorf("Type() = %s, want int", copied.Type())
	}

	*v.Int.MustExtract(original) = 200

	if got, _ := v.Int.Get(original); got != 200 {
		t.Errorf("original = %d, want 200", got)
	}
	if got, _ := v.Int.Get(copied); got != 100 {
		t.Errorf("copy = %d, want 100", got)
	}
}

func (v Variant[C]) testCloneEmpty(t *stdtesting.T) {
	original := v.Empty()
	copied := original.Clone()

	if original.HasValue() || copied.HasValue() {
		t.Error("both containers should be empty")
	}
	if copied.Type() != vessel.NoType {
		t.Errorf("Type() = %s, want NoType", copied.Type())
	}
}

func (v Variant[C]) testCloneDeepCopy(t *stdtesting.T) {
	original := v.Bag.New(Bag{Items: []int{1, 2, 3}})
	copied := original.Clone()

	v.Bag.MustExtract(original).Items[0] = 99

	if got := v.Bag.MustExtract(copied).Items[0]; got != 1 {
		t.Errorf("copy Items[0] = %d, want 1", got)
	}
}

func (v Variant[C]) testMove(t *stdtesting.T) {
	original := v.Float.New(3.14)
	moved := original.Move()

	if original.HasValue() {
		t.Error("source should be empty after Move()")
	}
	if got, _ := v.Float.Get(moved); got != 3.14 {
		t.Errorf("Get() = %v, want 3.14", got)
	}
}

func (v Variant[C]) testMoveEmpty(t *stdtesting.T) {
	original := v.Empty()
	moved := original.Move()

	if original.HasValue() || moved.HasValue() {
		t.Error("both containers should be empty")
	}
}

func (v Variant[C]) testCopyFrom(t *stdtesting.T) {
	original := v.Int.New(42)
	assigned := v.Empty()

	assigned.CopyFrom(original)

	if got, _ := v.Int.Get(assigned); got != 42 {
		t.Errorf("Get() = %d, want 42", got)
	}

	*v.Int.MustExtract(original) = 100
	if got, _ := v.Int.Get(assigned); got != 42 {
		t.Errorf("assigned = %d, want 42 after mutating source", got)
	}
}

func (v Variant[C]) testCopyFromSelf(t *stdtesting.T) {
	var c Counters
	a := v.Tracker.New(NewTracker(&c, 42))

	a.CopyFrom(a)

	if got := v.Tracker.MustExtract(a).Value; got != 42 {
		t.Errorf("Value = %d, want 42", got)
	}
	if c.Cloned != 0 || c.Released != 0 {
		t.Errorf("self copy cloned %d and released %d values, want none", c.Cloned, c.Released)
	}
}

func (v Variant[C]) testCopyFromEmpty(t *stdtesting.T) {
	a := v.Int.New(42)
	empty := v.Empty()

	a.CopyFrom(empty)

	if a.HasValue() || empty.HasValue() {
		t.Error("both containers should be empty")
	}
}

func (v Variant[C]) testCopyFromReleasesPrevious(t *stdtesting.T) {
	var c Counters
	a := v.Tracker.New(NewTracker(&c, 1))

	a.CopyFrom(v.String.New("other"))

	if c.Released != 1 {
		t.Errorf("Released = %d, want 1", c.Released)
	}
	if got, _ := v.String.Get(a); got != "other" {
		t.Errorf("Get() = %q, want %q", got, "other")
	}
}

func (v Variant[C]) testMoveFrom(t *stdtesting.T) {
	original := v.String.New("test")
	assigned := v.Empty()

	assigned.MoveFrom(original)

	if original.HasValue() {
		t.Error("source should be empty after MoveFrom()")
	}
	if assigned.Type() != vessel.TypeOf[string]() {
		t.Errorf("Type() = %s, want string", assigned.Type())
	}
	if got, _ := v.String.Get(assigned); got != "test" {
		t.Errorf("Get() = %q, want %q", got, "test")
	}
}

func (v Variant[C]) testMoveFromSelf(t *stdtesting.T) {
	var c Counters
	a := v.Tracker.New(NewTracker(&c, 42))

	a.MoveFrom(a)

	if !a.HasValue() {
		t.Fatal("self move should keep the value")
	}
	if got := v.Tracker.MustExtract(a).Value; got != 42 {
		t.Errorf("Value = %d, want 42", got)
	}
	if c.Released != 0 {
		t.Errorf("Released = %d, want 0", c.Released)
	}
}

func (v Variant[C]) testMoveFromEmpty(t *stdtesting.T) {
	a := v.Int.New(42)
	empty := v.Empty()

	a.MoveFrom(empty)

	if a.HasValue() || empty.HasValue() {
		t.Error("both containers should be empty")
	}
}

func (v Variant[C]) testNilSource(t *stdtesting.T) {
	var none C

	a := v.Int.New(1)
	a.CopyFrom(none)
	if a.HasValue() {
		t.Error("CopyFrom(nil) should empty the container")
	}

	b := v.Int.New(1)
	b.MoveFrom(none)
	if b.HasValue() {
		t.Error("MoveFrom(nil) should empty the container")
	}
}

func (v Variant[C]) testNilContainer(t *stdtesting.T) {
	var a C

	if a.HasValue() {
		t.Error("nil container should report no value")
	}
	if a.Type() != vessel.NoType {
		t.Errorf("Type() = %s, want NoType", a.Type())
	}
	if a.Clone().HasValue() || a.Move().HasValue() {
		t.Error("Clone() and Move() of nil should be empty")
	}
}

func (v Variant[C]) testStoreReassign(t *stdtesting.T) {
	a := v.Empty()

	v.Int.Store(a, 42)
	if got, _ := v.Int.Get(a); got != 42 {
		t.Errorf("Get() = %d, want 42", got)
	}

	v.String.Store(a, "hello")
	if a.Type() != vessel.TypeOf[string]() {
		t.Errorf("Type() = %s, want string", a.Type())
	}
	if got, _ := v.String.Get(a); got != "hello" {
		t.Errorf("Get() = %q, want %q", got, "hello")
	}

	v.Float.Store(a, 3.14)
	if got, _ := v.Float.Get(a); got != 3.14 {
		t.Errorf("Get() = %v, want 3.14", got)
	}

	a.Reset()
	if a.HasValue() {
		t.Error("Reset() should empty the container")
	}
}

func (v Variant[C]) testStoreContainer(t *stdtesting.T) {
	a := v.Empty()
	src := v.Int.New(5)

	v.Nested.Store(a, src)

	if a.Type() != vessel.TypeOf[int]() {
		t.Fatalf("Type() = %s, want int", a.Type())
	}
	if !src.HasValue() {
		t.Error("storing a container should copy it, not move it")
	}
}

func (v Variant[C]) testScenario(t *stdtesting.T) {
	c := v.Empty()

	v.Int.Emplace(c, 7)
	if got, _ := v.Int.Get(c); got != 7 {
		t.Fatalf("Get() = %d, want 7", got)
	}

	v.String.Store(c, "hi")
	if c.Type() != vessel.TypeOf[string]() {
		t.Fatalf("Type() = %s, want string", c.Type())
	}
	if got, _ := v.String.Get(c); got != "hi" {
		t.Fatalf("Get() = %q, want %q", got, "hi")
	}

	c.Reset()
	if c.HasValue() {
		t.Fatal("Reset() should empty the container")
	}
}

func (v Variant[C]) testEmplace(t *stdtesting.T) {
	a := v.Empty()

	p := v.String.Emplace(a, "emplaced")

	if a.Type() != vessel.TypeOf[string]() {
		t.Errorf("Type() = %s, want string", a.Type())
	}
	if *p != "emplaced" {
		t.Errorf("Emplace() = %q, want %q", *p, "emplaced")
	}

	*p = "changed"
	if got, _ := v.String.Get(a); got != "changed" {
		t.Errorf("Get() = %q, want %q", got, "changed")
	}
}

func (v Variant[C]) testEmplaceOverExisting(t *stdtesting.T) {
	a := v.Int.New(100)

	p := v.Float.Emplace(a, 2.71)

	if a.Type() != vessel.TypeOf[float64]() {
		t.Errorf("Type() = %s, want float64", a.Type())
	}
	if *p != 2.71 {
		t.Errorf("Emplace() = %v, want 2.71", *p)
	}
	if _, err := v.Int.Extract(a); !errors.Is(err, vessel.ErrBadCast) {
		t.Errorf("Extract[int]() error = %v, want ErrBadCast", err)
	}
}

func (v Variant[C]) testEmplaceFunc(t *stdtesting.T) {
	a := v.Empty()

	p := v.Point.EmplaceFunc(a, func(p *Point) {
		p.ID = 789
		p.Name = "emplaced"
	})

	if p.ID != 789 || p.Name != "emplaced" {
		t.Errorf("EmplaceFunc() = %+v", *p)
	}
	if got := v.Point.MustExtract(a); got != p {
		t.Error("EmplaceFunc() should return a pointer to the stored value")
	}
}

func (v Variant[C]) testEmplaceFuncNilInit(t *stdtesting.T) {
	a := v.Empty()

	p := v.Point.EmplaceFunc(a, nil)

	if *p != (Point{}) {
		t.Errorf("EmplaceFunc(nil) = %+v, want zero value", *p)
	}
	if !a.HasValue() {
		t.Error("HasValue() should be true")
	}
}

func (v Variant[C]) testEmplaceReleasesFirst(t *stdtesting.T) {
	var c Counters
	a := v.Tracker.New(NewTracker(&c, 42))

	releasedFirst := false
	v.String.EmplaceFunc(a, func(s *string) {
		releasedFirst = c.Released == 1
		*s = "x"
	})

	if !releasedFirst {
		t.Error("previous value should be released before the new one is constructed")
	}
	if c.Released != 1 || c.Double != 0 {
		t.Errorf("Released = %d, Double = %d, want 1 and 0", c.Released, c.Double)
	}
	if a.Type() != vessel.TypeOf[string]() {
		t.Errorf("Type() = %s, want string", a.Type())
	}
}

func (v Variant[C]) testReset(t *stdtesting.T) {
	a := v.Int.New(42)

	a.Reset()

	if a.HasValue() {
		t.Error("HasValue() should be false after Reset()")
	}
	if a.Type() != vessel.NoType {
		t.Errorf("Type() = %s, want NoType", a.Type())
	}

	a.Reset()
	if a.HasValue() {
		t.Error("Reset() on an empty container should keep it empty")
	}
}

func (v Variant[C]) testSwap(t *stdtesting.T) {
	a := v.Int.New(42)
	b := v.String.New("hello")

	a.Swap(b)

	if a.Type() != vessel.TypeOf[string]() || b.Type() != vessel.TypeOf[int]() {
		t.Fatalf("types = (%s, %s), want (string, int)", a.Type(), b.Type())
	}
	if got, _ := v.String.Get(a); got != "hello" {
		t.Errorf("a = %q, want %q", got, "hello")
	}
	if got, _ := v.Int.Get(b); got != 42 {
		t.Errorf("b = %d, want 42", got)
	}
}

func (v Variant[C]) testSwapWithEmpty(t *stdtesting.T) {
	a := v.Int.New(42)
	b := v.Empty()

	a.Swap(b)

	if a.HasValue() {
		t.Error("a should be empty")
	}
	if got, _ := v.Int.Get(b); got != 42 {
		t.Errorf("b = %d, want 42", got)
	}
}

func (v Variant[C]) testSwapBothEmpty(t *stdtesting.T) {
	a, b := v.Empty(), v.Empty()

	a.Swap(b)

	if a.HasValue() || b.HasValue() {
		t.Error("both containers should stay empty")
	}
}

func (v Variant[C]) testSwapNoCopyOrRelease(t *stdtesting.T) {
	var c Counters
	a := v.Tracker.New(NewTracker(&c, 1))
	b := v.Tracker.New(NewTracker(&c, 2))
	pa := v.Tracker.MustExtract(a)

	a.Swap(b)

	if c.Cloned != 0 || c.Released != 0 {
		t.Errorf("Swap() cloned %d and released %d values, want none", c.Cloned, c.Released)
	}
	if v.Tracker.MustExtract(b) != pa {
		t.Error("Swap() should move the stored value, not copy it")
	}
}

func (v Variant[C]) testExtract(t *stdtesting.T) {
	a := v.Int.New(42)

	p, err := v.Int.Extract(a)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if *p != 42 {
		t.Errorf("Extract() = %d, want 42", *p)
	}

	*p = 100
	if got, _ := v.Int.Get(a); got != 100 {
		t.Errorf("Get() = %d, want 100", got)
	}
}

func (v Variant[C]) testExtractBadCast(t *stdtesting.T) {
	var none C
	tests := []struct {
		name string
		a    C
		have vessel.Token
	}{
		{"wrong type", v.Int.New(42), vessel.TypeOf[int]()},
		{"empty", v.Empty(), vessel.NoType},
		{"nil", none, vessel.NoType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *stdtesting.T) {
			p, err := v.String.Extract(tt.a)
			if p != nil {
				t.Error("Extract() should return nil on failure")
			}
			AssertBadCast(t, err, vessel.TypeOf[string](), tt.have)

			got, err := v.String.Get(tt.a)
			if got != "" {
				t.Errorf("Get() = %q, want zero value", got)
			}
			AssertBadCast(t, err, vessel.TypeOf[string](), tt.have)
		})
	}
}

func (v Variant[C]) testExtractNamedType(t *stdtesting.T) {
	a := v.Celsius.New(1)

	_, err := v.Float.Extract(a)
	AssertBadCast(t, err, vessel.TypeOf[float64](), vessel.TypeOf[Celsius]())
}

func (v Variant[C]) testMustExtractPanics(t *stdtesting.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, vessel.ErrBadCast) {
			t.Errorf("recover() = %v, want ErrBadCast", r)
		}
	}()

	v.Int.MustExtract(v.String.New("x"))
}

func (v Variant[C]) testLifetime(t *stdtesting.T) {
	var c Counters

	a := v.Tracker.New(NewTracker(&c, 42))
	if c.Constructed != 1 {
		t.Errorf("Constructed = %d, want 1", c.Constructed)
	}

	a.Reset()
	if c.Released != 1 || c.Live() != 0 {
		t.Errorf("Released = %d, Live = %d, want 1 and 0", c.Released, c.Live())
	}
}

func (v Variant[C]) testLifetimeCopy(t *stdtesting.T) {
	var c Counters

	original := v.Tracker.New(NewTracker(&c, 42))
	copied := original.Clone()
	if c.Cloned != 1 {
		t.Errorf("Cloned = %d, want 1", c.Cloned)
	}

	original.Reset()
	copied.Reset()

	if c.Released != 2 || c.Double != 0 || c.Live() != 0 {
		t.Errorf("Released = %d, Double = %d, Live = %d, want 2, 0, 0", c.Released, c.Double, c.Live())
	}
}

func (v Variant[C]) testLifetimeMove(t *stdtesting.T) {
	var c Counters

	original := v.Tracker.New(NewTracker(&c, 42))
	moved := original.Move()
	if c.Cloned != 0 {
		t.Errorf("Cloned = %d, want 0", c.Cloned)
	}

	original.Reset()
	if c.Released != 0 {
		t.Errorf("Reset() of a moved-from container released %d values", c.Released)
	}

	moved.Reset()
	if c.Constructed != 1 || c.Released != 1 || c.Double != 0 {
		t.Errorf("Constructed = %d, Released = %d, Double = %d, want 1, 1, 0",
			c.Constructed, c.Released, c.Double)
	}
}

func (v Variant[C]) testLifetimeStore(t *stdtesting.T) {
	var c Counters
	a := v.Tracker.New(NewTracker(&c, 1))

	v.Tracker.Store(a, NewTracker(&c, 2))

	if c.Released != 1 {
		t.Errorf("Released = %d, want 1", c.Released)
	}
	if got := v.Tracker.MustExtract(a); got.Value != 2 || got.Released() {
		t.Errorf("stored tracker = %+v, want live value 2", *got)
	}
}

// A stored pointer is a shared handle: copies alias the pointee and no
// container releases it.
func (v Variant[C]) testLifetimeSharedPointer(t *stdtesting.T) {
	var c Counters
	tr := NewTracker(&c, 1)

	a := v.TrackerPtr.New(&tr)
	b := a.Clone()

	if got := *v.TrackerPtr.MustExtract(b); got != &tr {
		t.Errorf("clone holds %p, want the shared pointer %p", got, &tr)
	}

	a.Reset()
	b.Reset()
	v.TrackerPtr.Emplace(b, &tr)
	v.Int.Store(b, 0)

	if c.Cloned != 0 || c.Released != 0 || c.Double != 0 {
		t.Errorf("Cloned = %d, Released = %d, Double = %d, want 0, 0, 0",
			c.Cloned, c.Released, c.Double)
	}
	if tr.Released() {
		t.Error("pointee should be left for its owner to release")
	}
}

func (v Variant[C]) testNilPointer(t *stdtesting.T) {
	a := v.TrackerPtr.New(nil)

	if !a.HasValue() {
		t.Fatal("a nil pointer is a value")
	}
	if got := *v.TrackerPtr.MustExtract(a.Clone()); got != nil {
		t.Errorf("clone holds %p, want nil", got)
	}

	a.Reset()
	if a.HasValue() {
		t.Error("Reset() should empty the container")
	}
}

func (v Variant[C]) testNilInterface(t *stdtesting.T) {
	tests := []struct {
		name  string
		value vessel.Releaser
	}{
		{"typed nil", (*Tracker)(nil)},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *stdtesting.T) {
			a := v.Releaser.New(tt.value)
			b := a.Clone()

			a.Reset()
			v.Int.Emplace(b, 1)

			if a.HasValue() {
				t.Error("Reset() should empty the container")
			}
		})
	}
}

func (v Variant[C]) testWithSlice(t *stdtesting.T) {
	a := v.Slice.New([]int{1, 2, 3})

	s := v.Slice.MustExtract(a)
	if len(*s) != 3 || (*s)[0] != 1 {
		t.Fatalf("Extract() = %v, want [1 2 3]", *s)
	}

	*s = append(*s, 4)
	if got, _ := v.Slice.Get(a); len(got) != 4 {
		t.Errorf("len = %d, want 4", len(got))
	}
}

func (v Variant[C]) testWithPointer(t *stdtesting.T) {
	value := 42
	a := v.IntPtr.New(&value)

	p, err := v.IntPtr.Get(a)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if p != &value || *p != 42 {
		t.Errorf("Get() = %p (%d), want %p", p, *p, &value)
	}
}

func (v Variant[C]) testInSlice(t *stdtesting.T) {
	items := []C{
		v.Int.New(42),
		v.String.New("test"),
		v.Point.New(Point{ID: 1, Name: "item"}),
	}

	copies := make([]C, len(items))
	for i, a := range items {
		copies[i] = a.Clone()
	}

	if got, _ := v.Int.Get(copies[0]); got != 42 {
		t.Errorf("copies[0] = %d, want 42", got)
	}
	if got, _ := v.String.Get(copies[1]); got != "test" {
		t.Errorf("copies[1] = %q, want %q", got, "test")
	}
	if got, _ := v.Point.Get(copies[2]); got.ID != 1 {
		t.Errorf("copies[2].ID = %d, want 1", got.ID)
	}
}

func (v Variant[C]) testString(t *stdtesting.T) {
	if got := v.Empty().String(); got != "Any(<empty>)" {
		t.Errorf("String() = %q", got)
	}
	if got := fmt.Sprint(v.Int.New(1)); got != "Any(int)" {
		t.Errorf("String() = %q", got)
	}
}

// AssertBadCast fails t unless err is a *vessel.BadCastError for want and have.
func AssertBadCast(t stdtesting.TB, err error, want, have vessel.Token) {
	t.Helper()

	if !errors.Is(err, vessel.ErrBadCast) {
		t.Fatalf("error = %v, want ErrBadCast", err)
	}
	var bce *vessel.BadCastError
	if !errors.As(err, &bce) {
		t.Fatalf("error = %T, want *vessel.BadCastError", err)
	}
	if bce.Want != want || bce.Have != have {
		t.Errorf("BadCastError = (want %s, have %s), expected (want %s, have %s)", bce.Want, bce.Have, want, have)
	}
}
