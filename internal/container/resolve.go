package container

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/mvoloshyn/magnet/internal/reflectx"
)

// Resolve resolves a type to its singleton node, constructing it and its
// transitive dependencies on first request. Resolution is serialized per
// container: concurrent callers queue on the container mutex, so the cache
// and the resolution stack are never observed mid-flight.
func (c *Container) Resolve(requested reflect.Type) (*Node, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.resolveLocked(requested, "")
}

func (c *Container) resolveLocked(requested reflect.Type, slot string) (*Node, error) {
	effective := c.bindings.resolveType(requested)

	if node, ok := c.nodes[effective]; ok {
		if requested != effective {
			c.nodes[requested] = node
		}
		return node, nil
	}

	if slices.Contains(c.resolving, effective) {
		return nil, c.cycleError(effective)
	}

	c.resolving = append(c.resolving, effective)
	defer func() {
		c.resolving = c.resolving[:len(c.resolving)-1]
	}()

	instance, err := c.construct(effective, slot)
	if err != nil {
		return nil, err
	}

	node := newNode(effective, instance)
	c.nodes[effective] = node
	if requested != effective {
		c.nodes[requested] = node
	}
	c.order = append(c.order, node)

	c.logger.Debug("resolved dependency", "type", reflectx.Name(effective))
	return node, nil
}

// construct builds an instance of t: through its registered constructor or
// value if one exists, otherwise by zero-constructing a struct pointer and
// injecting its eligible fields. Dependencies are resolved depth-first, so
// every dependency lands in the construction list before its dependent.
func (c *Container) construct(t reflect.Type, slot string) (any, error) {
	if e, ok := c.entries[t]; ok {
		if e.kind == entryValue {
			return e.value, nil
		}
		return c.callConstructor(t, e.fn)
	}

	if t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct {
		return c.constructStruct(t)
	}

	return nil, &UnresolvableError{Type: reflectx.Name(t), Slot: slot}
}

func (c *Container) callConstructor(t reflect.Type, fn reflect.Value) (any, error) {
	specs := ConstructorSpecs(fn.Type())

	args := make([]reflect.Value, len(specs))
	for i, spec := range specs {
		if !c.eligible(spec) {
			return nil, &UnresolvableError{Type: reflectx.Name(spec.Type), Slot: fmt.Sprintf("%s %s", reflectx.Name(t), spec.Name)}
		}

		dep, err := c.resolveLocked(spec.Type, spec.Name)
		if err != nil {
			return nil, err
		}
		args[i] = reflect.ValueOf(dep.Instance)
	}

	results := fn.Call(args)
	if len(results) == 2 && !results[1].IsNil() {
		return nil, &ConstructError{Type: reflectx.Name(t), Cause: results[1].Interface().(error)}
	}

	return results[0].Interface(), nil
}

func (c *Container) constructStruct(t reflect.Type) (any, error) {
	elem := t.Elem()
	specs := StructSpecs(elem)

	value := reflect.New(elem)
	for _, spec := range specs {
		if !c.eligible(spec) {
			continue
		}

		dep, err := c.resolveLocked(spec.Type, spec.Name)
		if err != nil {
			return nil, err
		}

		field := value.Elem().FieldByName(spec.Name)
		field.Set(reflect.ValueOf(dep.Instance))
	}

	return value.Interface(), nil
}

func (c *Container) cycleError(closing reflect.Type) *CycleError {
	start := slices.Index(c.resolving, closing)

	chain := make([]string, 0, len(c.resolving)-start+1)
	for _, t := range c.resolving[start:] {
		chain = append(chain, reflectx.Name(t))
	}
	chain = append(chain, reflectx.Name(closing))

	return &CycleError{Chain: chain}
}
