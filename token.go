package vessel

import "reflect"

// typeInfo is the process-wide descriptor behind a Token.
// It is immutable once published by the registry.
type typeInfo struct {
	id     int
	rtype  reflect.Type
	name   string
	fields []string
}

// Token identifies a Go type. Tokens are comparable with ==; two tokens are
// equal exactly when they denote the same type.
//
// The zero Token is NoType.
type Token struct {
	info *typeInfo
}

// NoType is the token reported by an empty container.
var NoType Token

// IsNone reports whether t is NoType.
func (t Token) IsNone() bool {
	return t.info == nil
}

// ID returns the number assigned to the type when it was first registered.
// IDs start at 1. NoType has ID 0.
func (t Token) ID() int {
	if t.info == nil {
		return 0
	}
	return t.info.id
}

// Name returns the Go type string, e.g. "int" or "[]string".
// NoType has an empty name.
func (t Token) Name() string {
	if t.info == nil {
		return ""
	}
	return t.info.name
}

// ReflectType returns the reflect.Type for the token, or nil for NoType.
func (t Token) ReflectType() reflect.Type {
	if t.info == nil {
		return nil
	}
	return t.info.rtype
}

// Fields returns the exported field names of a named struct type.
// Non-struct types and NoType return nil.
func (t Token) Fields() []string {
	if t.info == nil || len(t.info.fields) == 0 {
		return nil
	}
	out := make([]string, len(t.info.fields))
	copy(out, t.info.fields)
	return out
}

func (t Token) String() string {
	if t.info == nil {
		return "<none>"
	}
	return t.info.name
}
