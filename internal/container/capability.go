package container

import (
	"context"
	"reflect"
)

// Connectable is the lifecycle capability. A type that implements it is
// eligible for injection and participates in Connect/Disconnect sweeps.
// There is no registration requirement beyond implementing the interface.
type Connectable interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
}

// Pingable is the health-check capability. Ping returns an error when the
// underlying resource is unhealthy.
type Pingable interface {
	Ping(ctx context.Context) error
}

var (
	connectableType = reflect.TypeOf((*Connectable)(nil)).Elem()
	pingableType    = reflect.TypeOf((*Pingable)(nil)).Elem()
	errorType       = reflect.TypeOf((*error)(nil)).Elem()
)

// IsConnectable reports whether values of type t carry the lifecycle
// capability. Detection is a type-set membership check, not an inheritance
// check: any type whose method set matches qualifies.
func IsConnectable(t reflect.Type) bool {
	return t != nil && t.Implements(connectableType)
}

// IsPingable reports whether values of type t carry the health-check
// capability.
func IsPingable(t reflect.Type) bool {
	return t != nil && t.Implements(pingableType)
}

// AsConnectable returns the Connectable view of an instance, if any.
func AsConnectable(v any) (Connectable, bool) {
	c, ok := v.(Connectable)
	return c, ok
}

// AsPingable returns the Pingable view of an instance, if any.
func AsPingable(v any) (Pingable, bool) {
	p, ok := v.(Pingable)
	return p, ok
}
