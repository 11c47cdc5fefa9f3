package magnet

import (
	"reflect"
	"sync"

	"github.com/mvoloshyn/magnet/internal/container"
	"github.com/mvoloshyn/magnet/internal/reflectx"
)

// Bind maps abstract type I to concrete type T in the base binding layer.
// After binding, resolving I constructs (or reuses) the T singleton and
// caches it under both types.
//
//	magnet.Bind[UserStore, *PostgresUserStore](c)
func Bind[I, T any](c *Container) error {
	if err := c.internal.Bind(typeFor[I](), typeFor[T]()); err != nil {
		return newError(ErrCodeInvalidBinding, err.Error(), nil).
			WithDependency(reflectx.Name(typeFor[I]()))
	}
	return nil
}

// MustBind is Bind, panicking on error.
func MustBind[I, T any](c *Container) {
	if err := Bind[I, T](c); err != nil {
		panic(err)
	}
}

// Force marks T as injectable even though it is not connectable. Use it
// for plain value dependencies (configs, clocks) that should still be
// filled from the graph.
func Force[T any](c *Container) {
	c.internal.Force(typeFor[T]())
}

// Binding is one abstract-to-concrete mapping inside an override layer.
// Build them with BindTo and BindValue.
type Binding struct {
	abstract reflect.Type
	concrete reflect.Type
	value    any
	hasValue bool
}

// BindTo maps I to T for the lifetime of an override scope.
func BindTo[I, T any]() Binding {
	return Binding{
		abstract: typeFor[I](),
		concrete: typeFor[T](),
	}
}

// BindValue maps I to the given ready instance for the lifetime of an
// override scope. The instance is seeded into the node cache, so it is
// what every dependent sees, and it participates in lifecycle sweeps if
// connectable. This is the substitution hook for tests.
func BindValue[I any](impl I) Binding {
	return Binding{
		abstract: typeFor[I](),
		concrete: reflect.TypeOf(impl),
		value:    impl,
		hasValue: true,
	}
}

// OverrideScope is a pushed override layer. Release pops it and restores
// the bindings and cached nodes exactly as they were before the push.
type OverrideScope struct {
	c     *Container
	layer *container.OverrideLayer

	mu       sync.Mutex
	released bool
}

// Override pushes an override layer resolving the given bindings ahead of
// everything below it. Scopes must be released in reverse push order, from
// the same goroutine discipline as the pushes; concurrent override scopes
// on one container are not supported.
func (c *Container) Override(bindings ...Binding) (*OverrideScope, error) {
	specs := make([]container.BindingSpec, len(bindings))
	for i, b := range bindings {
		specs[i] = container.BindingSpec{
			Abstract: b.abstract,
			Concrete: b.concrete,
			Value:    b.value,
			HasValue: b.hasValue,
		}
	}

	layer, err := c.internal.PushOverride(specs)
	if err != nil {
		return nil, newError(ErrCodeInvalidBinding, err.Error(), nil)
	}

	return &OverrideScope{c: c, layer: layer}, nil
}

// Release pops the override layer. Releasing twice, or releasing a scope
// that is not the most recently pushed one, is an error and leaves the
// container untouched.
func (s *OverrideScope) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return wrapEngine(container.ErrOverrideReleased)
	}

	if err := s.c.internal.PopOverride(s.layer); err != nil {
		return wrapEngine(err)
	}

	s.released = true
	return nil
}
