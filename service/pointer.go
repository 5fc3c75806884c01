package service

import "reflect"

// Ptr returns a pointer whose value is v.
func Ptr[T any](v T) *T {
	return &v
}

// Value is like *p but it returns the zero value if p is nil.
func Value[T any](p *T) T {
	var zero T
	return ValueOr(p, zero)
}

// ValueOr is like *p but it returns def if p is nil. Used to resolve optional settings against configured defaults.
func ValueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// StrPanic panics with panicMessage if s is empty; otherwise returns s.
// Called from constructors when validating required settings.
func StrPanic(s string, panicMessage string) string {
	if s == "" {
		panic(panicMessage)
	}
	return s
}

// NilPanic panics with panicMessage if v is nil (nil interface, pointer, slice, map, chan or func); otherwise returns v.
// Called from constructors when validating required dependencies.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// isNil reports whether v is nil or a typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
