package vessel

// Cloner allows stored types to provide deep copy logic.
//
// When a container holding T is copied, Clone is called instead of a plain
// Go assignment. The method may use a value or a pointer receiver.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. For simple value types with no pointers,
// slices, or maps, implementing Cloner is unnecessary.
//
// For types with reference fields, ensure deep copying:
//
//	func (o Order) Clone() Order {
//	    items := make([]Item, len(o.Items))
//	    copy(items, o.Items)
//	    return Order{ID: o.ID, Items: items}
//	}
type Cloner[T any] interface {
	Clone() T
}

// Releaser allows stored types to run teardown when a container drops them.
//
// Release is called exactly once per stored value: on Reset, when Emplace
// replaces the value, or when an assignment replaces it. Moving or swapping a
// container never releases.
//
// Pointers are handles, not owned values. A container holding a *T copies the
// pointer and never calls Release on the pointee, even when *T implements
// Releaser. Store T itself to have the container own its teardown.
//
// Go has no destructors. A container that is simply discarded does not
// release its value; call Reset before dropping the last reference when
// teardown matters:
//
//	a := table.New(openConn())
//	defer a.Reset()
type Releaser interface {
	Release()
}
