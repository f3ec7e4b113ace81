package dispatch

import (
	"github.com/zoobzio/vessel"
	"github.com/zoobzio/vessel/internal/hooks"
)

// record is an erased value. The concrete record type is chosen when the
// value is stored and never changes.
type record interface {
	Clone() record
	Identify() vessel.Token
	Destroy()
}

// typedRecord holds a value of T.
type typedRecord[T any] struct {
	value T
}

func newRecord[T any](v T) *typedRecord[T] {
	return &typedRecord[T]{value: v}
}

func (r *typedRecord[T]) Clone() record {
	return &typedRecord[T]{value: hooks.Copy(&r.value)}
}

func (r *typedRecord[T]) Identify() vessel.Token {
	return vessel.TypeOf[T]()
}

func (r *typedRecord[T]) Destroy() {
	hooks.Release(&r.value)

	var zero T
	r.value = zero
}
