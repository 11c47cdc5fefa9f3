package magnet

import "github.com/mvoloshyn/magnet/internal/reflectx"

// Resolve resolves T to its singleton instance, constructing it and its
// transitive dependencies on first call. Two Resolve calls for the same
// type on the same container return the identical instance.
func Resolve[T any](c *Container) (T, error) {
	var zero T

	node, err := c.internal.Resolve(typeFor[T]())
	if err != nil {
		return zero, wrapEngine(err)
	}

	typed, ok := node.Instance.(T)
	if !ok {
		return zero, newError(ErrCodeConstructionFailed, "resolved instance has unexpected type", nil).
			WithDependency(reflectx.Name(typeFor[T]()))
	}

	return typed, nil
}

// MustResolve is Resolve, panicking on error.
func MustResolve[T any](c *Container) T {
	v, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// InstancesByType returns every resolved instance that satisfies T, in
// construction order. Useful for adapters that need all dependencies
// implementing a particular interface.
func InstancesByType[T any](c *Container) []T {
	var out []T
	for _, instance := range c.internal.Instances() {
		if typed, ok := instance.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}
