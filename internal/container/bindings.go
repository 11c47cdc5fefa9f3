package container

import (
	"fmt"
	"reflect"

	"github.com/mvoloshyn/magnet/internal/reflectx"
)

// BindingSpec maps an abstract type to the concrete type that satisfies
// it. A spec may carry a pre-built value, in which case the value is seeded
// into the node cache when the spec is applied (used by test overrides).
type BindingSpec struct {
	Abstract reflect.Type
	Concrete reflect.Type
	Value    any
	HasValue bool
}

// OverrideLayer is one pushed layer of the binding stack. Pushing swaps in
// a fresh node cache and construction list; the displaced ones are held
// here and restored verbatim on pop.
type OverrideLayer struct {
	mapping map[reflect.Type]reflect.Type

	savedNodes map[reflect.Type]*Node
	savedOrder []*Node
}

// bindingStack is the binding registry: a mutable base layer plus a stack
// of override layers. Type resolution searches top-down, first match wins.
type bindingStack struct {
	base   map[reflect.Type]reflect.Type
	layers []*OverrideLayer
}

func newBindingStack() *bindingStack {
	return &bindingStack{base: make(map[reflect.Type]reflect.Type)}
}

func (s *bindingStack) resolveType(t reflect.Type) reflect.Type {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if concrete, ok := s.layers[i].mapping[t]; ok {
			return concrete
		}
	}
	if concrete, ok := s.base[t]; ok {
		return concrete
	}
	return t
}

// Bind adds or replaces a base-layer binding.
func (c *Container) Bind(abstract, concrete reflect.Type) error {
	if err := checkBinding(abstract, concrete); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.bindings.base[abstract] = concrete
	return nil
}

// Force marks a type as injectable even though it is not connectable.
func (c *Container) Force(t reflect.Type) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.forced[t] = struct{}{}
}

// PushOverride pushes an override layer and returns a token for popping
// it. The current node cache and construction list are set aside so the
// layer resolves against a clean slate; popping restores them exactly.
// Specs carrying a value are seeded as ready nodes under both their
// abstract and concrete types.
func (c *Container) PushOverride(specs []BindingSpec) (*OverrideLayer, error) {
	mapping := make(map[reflect.Type]reflect.Type, len(specs))
	for _, spec := range specs {
		if err := checkBinding(spec.Abstract, spec.Concrete); err != nil {
			return nil, err
		}
		mapping[spec.Abstract] = spec.Concrete
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	layer := &OverrideLayer{
		mapping:    mapping,
		savedNodes: c.nodes,
		savedOrder: c.order,
	}

	c.nodes = make(map[reflect.Type]*Node)
	c.order = nil
	c.bindings.layers = append(c.bindings.layers, layer)

	for _, spec := range specs {
		if !spec.HasValue {
			continue
		}
		node := newNode(spec.Concrete, spec.Value)
		c.nodes[spec.Concrete] = node
		c.nodes[spec.Abstract] = node
		c.order = append(c.order, node)
	}

	return layer, nil
}

// PopOverride pops the given layer. Layers must pop in reverse push order.
func (c *Container) PopOverride(layer *OverrideLayer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.bindings.layers)
	if n == 0 || c.bindings.layers[n-1] != layer {
		return ErrNotTopOverride
	}

	c.bindings.layers = c.bindings.layers[:n-1]
	c.nodes = layer.savedNodes
	c.order = layer.savedOrder
	return nil
}

func checkBinding(abstract, concrete reflect.Type) error {
	if abstract == nil || concrete == nil {
		return fmt.Errorf("binding types must not be nil")
	}
	if abstract.Kind() == reflect.Interface && !concrete.Implements(abstract) {
		return fmt.Errorf("%s does not implement %s", reflectx.Name(concrete), reflectx.Name(abstract))
	}
	if abstract.Kind() != reflect.Interface && !concrete.AssignableTo(abstract) {
		return fmt.Errorf("%s is not assignable to %s", reflectx.Name(concrete), reflectx.Name(abstract))
	}
	return nil
}
