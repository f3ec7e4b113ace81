package vessel

import (
	"context"
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

var (
	registry   = make(map[reflect.Type]*typeInfo)
	registryMu sync.RWMutex
)

// TypeOf returns the token for T, registering T on first use.
// Safe for concurrent use.
func TypeOf[T any]() Token {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock lookup
	registryMu.RLock()
	if info, ok := registry[typ]; ok {
		registryMu.RUnlock()
		return Token{info: info}
	}
	registryMu.RUnlock()

	// Scan outside the lock; a racing scan of the same type is discarded.
	fields := fieldsOf[T](typ)

	info, created := register(typ, fields)
	if created {
		emitTypeRegistered(context.Background(), info.name, info.id)
	}
	return Token{info: info}
}

// register stores typ under the write lock unless another caller got there
// first.
func register(typ reflect.Type, fields []string) (*typeInfo, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if info, ok := registry[typ]; ok {
		return info, false
	}

	info := &typeInfo{
		id:     len(registry) + 1,
		rtype:  typ,
		name:   typ.String(),
		fields: fields,
	}
	registry[typ] = info
	return info, true
}

// Registered returns the number of types that have been assigned a token.
func Registered() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// fieldsOf lists the exported fields of named struct types.
func fieldsOf[T any](typ reflect.Type) []string {
	if typ.Kind() != reflect.Struct || typ.Name() == "" {
		return nil
	}

	// sentinel caches by bare type name, so same-named types from other
	// scopes or packages can come back; only trust metadata that matches typ.
	meta := sentinel.Scan[T]()
	if !describes(meta, typ) {
		return exportedFields(typ)
	}

	names := make([]string, 0, len(meta.Fields))
	for _, field := range meta.Fields {
		names = append(names, field.Name)
	}
	if len(names) == 0 {
		return nil
	}
	return names
}

// describes reports whether meta was scanned from typ.
func describes(meta sentinel.Metadata, typ reflect.Type) bool {
	if meta.TypeName != typ.Name() || meta.PackageName != typ.PkgPath() {
		return false
	}

	exported := 0
	for i := 0; i < typ.NumField(); i++ {
		if typ.Field(i).IsExported() {
			exported++
		}
	}
	if exported != len(meta.Fields) {
		return false
	}

	for _, field := range meta.Fields {
		if len(field.Index) != 1 || field.Index[0] >= typ.NumField() {
			return false
		}
		sf := typ.Field(field.Index[0])
		if sf.Name != field.Name || sf.Type != field.ReflectType {
			return false
		}
	}
	return true
}

// exportedFields lists exported field names straight from reflection.
func exportedFields(typ reflect.Type) []string {
	var names []string
	for i := 0; i < typ.NumField(); i++ {
		if sf := typ.Field(i); sf.IsExported() {
			names = append(names, sf.Name)
		}
	}
	return names
}
