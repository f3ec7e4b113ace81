// Package vessel provides a value container that holds a single value of any
// type behind a uniform handle.
//
// The container behaves like a regular value: it can be copied, moved,
// assigned, swapped and reset, while the concrete type it holds is decided
// only when a value is placed into it. A later typed extraction recovers the
// original type and rejects mismatches with ErrBadCast.
//
// # Erasure Strategies
//
// Two interchangeable implementations share one contract:
//
//   - dispatch - each stored value lives in a generic record reached through
//     a Go interface; clone, identify and destroy are interface methods.
//   - table - each stored value lives behind an unsafe.Pointer in one
//     concrete record that references a per-type table of plain functions,
//     built once per type and shared by every record of that type.
//
// Pick one. Both expose identical functions and methods.
//
// # Basic Usage
//
//	import "github.com/zoobzio/vessel/table"
//
//	var box table.Any
//	table.Emplace(&box, 7)
//
//	n, _ := table.Extract[int](&box)
//	*n = 8 // mutates the stored value in place
//
//	table.Store(&box, "hi")
//	box.Type() == vessel.TypeOf[string]() // true
//
//	_, err := table.Extract[int](&box)
//	errors.Is(err, vessel.ErrBadCast) // true
//
//	box.Reset()
//	box.HasValue() // false
//
// # Value Semantics
//
// Containers are used through pointers and must not be copied with plain
// assignment; go vet reports such copies. Use Clone for an independent copy
// and Move to transfer ownership:
//
//	a := table.New(42)
//	b := a.Clone() // independent value
//	c := a.Move()  // a is now empty
//
// # Copy and Release Hooks
//
// Copies use Go assignment unless the stored type implements Cloner[T], in
// which case Clone is called for every container copy. Types implementing
// Releaser have Release called exactly once when their container drops them
// through Reset, Emplace or assignment. Swap and Move never copy or release.
// Stored pointers are shared on copy and never released.
//
// Dropping the last reference to a container does not release its value. A
// container's lifetime ends at Reset, so code that owns teardown resets
// explicitly, typically with defer.
//
// # Type Tokens
//
// TypeOf returns a comparable Token per Go type. Empty containers report
// NoType. Tokens are allocated once per type and stay stable for the lifetime
// of the process.
package vessel
