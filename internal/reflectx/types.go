package reflectx

import "reflect"

// TypeFor returns the reflect.Type for T, working for interface types as
// well as concrete ones.
func TypeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Name returns a stable human-readable name for a type, used in error
// messages, log lines and health reports.
func Name(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// NameOf returns the name of a value's dynamic type.
func NameOf(v any) string {
	if v == nil {
		return "<nil>"
	}
	return Name(reflect.TypeOf(v))
}

// IsZero reports whether v holds its type's zero value. An invalid
// reflect.Value (untyped nil) counts as zero.
func IsZero(v reflect.Value) bool {
	return !v.IsValid() || v.IsZero()
}

// IsNil reports whether v is a nil pointer, interface, map, slice, channel
// or function. Non-nilable kinds are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
