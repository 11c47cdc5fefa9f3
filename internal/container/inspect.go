package container

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/mvoloshyn/magnet/internal/reflectx"
)

// TagKey marks a struct field as forcefully injectable, independent of
// whether its type is connectable:
//
//	type Service struct {
//		DB    *Database          // injected: connectable
//		Clock *Clock `magnet:"inject"` // injected: forced
//		Name  string             // left zero
//	}
const TagKey = "magnet"

// DependencySpec describes one dependency slot of a constructible target:
// a constructor parameter or a struct field.
type DependencySpec struct {
	Name   string
	Type   reflect.Type
	Forced bool
}

var (
	structSpecCache sync.Map // reflect.Type -> []DependencySpec
	funcSpecCache   sync.Map // reflect.Type -> []DependencySpec
)

// ConstructorSpecs returns the dependency slots of a constructor function
// type, memoized per signature. Every parameter is a slot; eligibility is
// decided by the resolver.
func ConstructorSpecs(fnType reflect.Type) []DependencySpec {
	if cached, ok := funcSpecCache.Load(fnType); ok {
		return cached.([]DependencySpec)
	}

	specs := make([]DependencySpec, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		specs = append(specs, DependencySpec{
			Name: fmt.Sprintf("arg%d", i),
			Type: fnType.In(i),
		})
	}

	funcSpecCache.Store(fnType, specs)
	return specs
}

// StructSpecs returns the dependency slots of a struct type: its exported
// fields, in declaration order, memoized per type. Fields tagged
// `magnet:"inject"` are marked forced.
func StructSpecs(t reflect.Type) []DependencySpec {
	if cached, ok := structSpecCache.Load(t); ok {
		return cached.([]DependencySpec)
	}

	specs := make([]DependencySpec, 0, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		forced := false
		if tag, ok := field.Tag.Lookup(TagKey); ok {
			for part := range strings.SplitSeq(tag, ",") {
				if part == "inject" {
					forced = true
				}
			}
		}

		specs = append(specs, DependencySpec{
			Name:   field.Name,
			Type:   field.Type,
			Forced: forced,
		})
	}

	structSpecCache.Store(t, specs)
	return specs
}

// eligible reports whether a slot should be filled from the graph: its
// effective (post-binding) type is connectable, it is forced by tag, or
// its type was force-registered on this container. Bindings apply before
// the capability check, so an abstract slot bound to a connectable
// implementation injects. Plain value types stay with the caller. Called
// with the container mutex held.
func (c *Container) eligible(spec DependencySpec) bool {
	if spec.Forced || IsConnectable(c.bindings.resolveType(spec.Type)) {
		return true
	}
	_, forced := c.forced[spec.Type]
	return forced
}

// Injectable reports whether t would be filled from the graph when it
// appears as an unmarked slot: its effective type is connectable, or t is
// force-registered.
func (c *Container) Injectable(t reflect.Type) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if IsConnectable(c.bindings.resolveType(t)) {
		return true
	}

	_, forced := c.forced[t]
	return forced
}

// ValidateConstructor checks the shape expected by Register: a
// non-variadic func returning the target type, optionally with a trailing
// error.
func ValidateConstructor(target reflect.Type, fn reflect.Value) error {
	if fn.Kind() != reflect.Func {
		return fmt.Errorf("constructor for %s must be a function, got %s", reflectx.Name(target), fn.Kind())
	}

	fnType := fn.Type()
	if fnType.IsVariadic() {
		return fmt.Errorf("constructor for %s must not be variadic", reflectx.Name(target))
	}

	switch fnType.NumOut() {
	case 1:
	case 2:
		if !fnType.Out(1).Implements(errorType) {
			return fmt.Errorf("constructor for %s: second return value must be error", reflectx.Name(target))
		}
	default:
		return fmt.Errorf("constructor for %s must return the value and an optional error", reflectx.Name(target))
	}

	if !fnType.Out(0).AssignableTo(target) {
		return fmt.Errorf("constructor returns %s, not assignable to %s", reflectx.Name(fnType.Out(0)), reflectx.Name(target))
	}

	return nil
}
