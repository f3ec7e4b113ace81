// Package hooks resolves how values of a type are copied and released.
//
// Pointers are stored as handles: copying a container copies the pointer,
// so the pointee is shared and never released by the container. Release
// hooks only run on values the container owns outright.
package hooks

import (
	"reflect"

	"github.com/zoobzio/vessel"
)

// CopyFunc returns an independent copy of the value at src.
type CopyFunc[T any] func(src *T) T

// ReleaseFunc runs teardown on the value at v.
type ReleaseFunc[T any] func(v *T)

// Copy copies the value at src, checking for Cloner on every call.
func Copy[T any](src *T) T {
	if isNil(any(*src)) {
		return *src
	}
	if c, ok := any(*src).(vessel.Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(src).(vessel.Cloner[T]); ok {
		return c.Clone()
	}
	return *src
}

// Release calls Release on the value at v if it implements Releaser.
// Pointers and nil values are never released.
func Release[T any](v *T) {
	if isHandle(any(*v)) {
		return
	}
	if r, ok := any(*v).(vessel.Releaser); ok {
		r.Release()
		return
	}
	if r, ok := any(v).(vessel.Releaser); ok {
		r.Release()
	}
}

// Copier decides once how values of T are copied.
// deep is true when T provides its own Clone.
func Copier[T any]() (fn CopyFunc[T], deep bool) {
	// you can't assert directly on a type parameter
	var zero T
	if _, ok := any(zero).(vessel.Cloner[T]); ok {
		if reflect.TypeFor[T]().Kind() == reflect.Pointer {
			return clonePointerValue[T], true
		}
		return cloneValue[T], true
	}
	if _, ok := any(&zero).(vessel.Cloner[T]); ok {
		return clonePointer[T], true
	}
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		// the dynamic type decides
		return Copy[T], false
	}
	return copyValue[T], false
}

// Releaser decides once how values of T are released.
// It returns nil when T has no teardown or is a pointer type.
func Releaser[T any]() ReleaseFunc[T] {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer:
		return nil
	case reflect.Interface:
		return Release[T]
	}

	var zero T
	if _, ok := any(zero).(vessel.Releaser); ok {
		return releaseValue[T]
	}
	if _, ok := any(&zero).(vessel.Releaser); ok {
		return releasePointer[T]
	}
	return nil
}

func cloneValue[T any](src *T) T {
	return any(*src).(vessel.Cloner[T]).Clone()
}

// clonePointerValue clones a pointer type providing its own Clone.
func clonePointerValue[T any](src *T) T {
	if isNil(any(*src)) {
		return *src
	}
	return any(*src).(vessel.Cloner[T]).Clone()
}

func clonePointer[T any](src *T) T {
	return any(src).(vessel.Cloner[T]).Clone()
}

func copyValue[T any](src *T) T {
	return *src
}

func releaseValue[T any](v *T) {
	any(*v).(vessel.Releaser).Release()
}

func releasePointer[T any](v *T) {
	any(v).(vessel.Releaser).Release()
}

// isNil reports whether v is a nil interface or a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// isHandle reports whether v is nil or a pointer the container does not own.
func isHandle(v any) bool {
	return v == nil || reflect.TypeOf(v).Kind() == reflect.Pointer
}
