package magnet

import (
	"reflect"

	"github.com/mvoloshyn/magnet/internal/reflectx"
)

func typeFor[T any]() reflect.Type {
	return reflectx.TypeFor[T]()
}

// Register registers a constructor for T. The constructor's parameters are
// its dependency slots: each must be connectable or forced injectable, and
// each is resolved from the graph when T is first requested. The
// constructor may return (T) or (T, error).
//
//	magnet.Register[*UserService](c, func(db *Database, cache *Cache) *UserService {
//		return &UserService{db: db, cache: cache}
//	})
func Register[T any](c *Container, constructor any) error {
	err := c.internal.RegisterConstructor(typeFor[T](), reflect.ValueOf(constructor))
	if err != nil {
		wrapped := wrapEngine(err)
		if e, ok := wrapped.(*Error); ok {
			return e.WithDependency(reflectx.Name(typeFor[T]()))
		}
		return newError(ErrCodeRegistrationFailed, wrapped.Error(), nil).
			WithDependency(reflectx.Name(typeFor[T]()))
	}
	return nil
}

// MustRegister is Register, panicking on error.
func MustRegister[T any](c *Container, constructor any) {
	if err := Register[T](c, constructor); err != nil {
		panic(err)
	}
}

// RegisterValue registers a pre-built value for T. The value must not be
// nil; it is never re-constructed and joins lifecycle sweeps if it is
// connectable.
func RegisterValue[T any](c *Container, value T) error {
	if err := c.internal.RegisterValue(typeFor[T](), value); err != nil {
		wrapped := wrapEngine(err)
		if e, ok := wrapped.(*Error); ok {
			return e.WithDependency(reflectx.Name(typeFor[T]()))
		}
		return newError(ErrCodeRegistrationFailed, wrapped.Error(), nil).
			WithDependency(reflectx.Name(typeFor[T]()))
	}
	return nil
}

// MustRegisterValue is RegisterValue, panicking on error.
func MustRegisterValue[T any](c *Container, value T) {
	if err := RegisterValue(c, value); err != nil {
		panic(err)
	}
}
