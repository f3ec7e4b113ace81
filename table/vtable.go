package table

import (
	"context"
	"sync"
	"unsafe"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/vessel"
	"github.com/zoobzio/vessel/internal/hooks"
)

// vtable holds the operations for one stored type.
// One vtable exists per type; it is immutable once built.
type vtable struct {
	clone    func(r *record) *record
	identify func() vessel.Token
	destroy  func(r *record)
}

// tableEntry guards the one-time construction of a vtable.
type tableEntry struct {
	once sync.Once
	vt   vtable
}

// tables maps vessel.Token to *tableEntry.
var tables sync.Map

// tableOf returns the shared vtable for T, building it on first use.
func tableOf[T any]() *vtable {
	token := vessel.TypeOf[T]()

	e, ok := tables.Load(token)
	if !ok {
		e, _ = tables.LoadOrStore(token, new(tableEntry))
	}

	entry := e.(*tableEntry)
	entry.once.Do(func() {
		entry.vt = buildTable[T](token)
	})
	return &entry.vt
}

// buildTable instantiates the operations for T.
func buildTable[T any](token vessel.Token) vtable {
	copyFn, deep := hooks.Copier[T]()
	releaseFn := hooks.Releaser[T]()

	vt := vtable{
		identify: func() vessel.Token {
			return token
		},
		clone: func(r *record) *record {
			v := copyFn((*T)(r.value))
			return &record{vt: r.vt, value: unsafe.Pointer(&v)}
		},
		destroy: func(r *record) {
			if releaseFn != nil {
				releaseFn((*T)(r.value))
			}
			r.value = nil
		},
	}

	emitTableBuilt(context.Background(), token, deep, releaseFn != nil)
	return vt
}

// Built returns the number of vtables that exist.
func Built() int {
	n := 0
	tables.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// emitTableBuilt emits an event when the vtable for a type is built.
func emitTableBuilt(ctx context.Context, token vessel.Token, deep, release bool) {
	capitan.Emit(ctx, vessel.SignalTableBuilt,
		vessel.KeyTypeName.Field(token.String()),
		vessel.KeyTypeID.Field(token.ID()),
		vessel.KeyCopyMode.Field(copyMode(deep)),
		vessel.KeyReleaseMode.Field(releaseMode(release)),
	)
}

func copyMode(deep bool) string {
	if deep {
		return "clone"
	}
	return "assign"
}

func releaseMode(release bool) string {
	if release {
		return "release"
	}
	return "none"
}
