package container

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/mvoloshyn/magnet/internal/reflectx"
)

type entryKind int

const (
	entryConstructor entryKind = iota
	entryValue
)

type entry struct {
	kind  entryKind
	fn    reflect.Value
	value any
}

// Container owns the binding registry, the node cache and the
// construction-ordered node list. It is the unit of lifetime: independent
// containers never share state. A single mutex serializes resolution,
// registration and binding mutation (resolution is synchronous by
// contract; only lifecycle hooks suspend). Lifecycle sweeps take their own
// lock so connect hooks can block without holding up resolution.
type Container struct {
	mu sync.Mutex

	logger    *slog.Logger
	bindings  *bindingStack
	entries   map[reflect.Type]entry
	forced    map[reflect.Type]struct{}
	nodes     map[reflect.Type]*Node
	order     []*Node
	resolving []reflect.Type

	lifecycleMu sync.Mutex
}

type Config struct {
	Logger *slog.Logger
}

func New(cfg *Config) *Container {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Container{
		logger:   logger,
		bindings: newBindingStack(),
		entries:  make(map[reflect.Type]entry),
		forced:   make(map[reflect.Type]struct{}),
		nodes:    make(map[reflect.Type]*Node),
	}
}

// RegisterConstructor registers fn as the constructor for t. The
// constructor's parameters are its dependency slots.
func (c *Container) RegisterConstructor(t reflect.Type, fn reflect.Value) error {
	if err := ValidateConstructor(t, fn); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[t]; exists {
		return ErrAlreadyRegistered
	}

	c.entries[t] = entry{kind: entryConstructor, fn: fn}
	return nil
}

// RegisterValue registers a pre-built value for t. The value becomes the
// node instance on first resolve; it participates in lifecycle sweeps if
// it is connectable. Nil values are rejected here rather than surfacing
// later as an injection panic.
func (c *Container) RegisterValue(t reflect.Type, value any) error {
	if reflectx.IsNil(value) {
		return fmt.Errorf("nil value for %s", reflectx.Name(t))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[t]; exists {
		return ErrAlreadyRegistered
	}

	c.entries[t] = entry{kind: entryValue, value: value}
	return nil
}

// Size returns the number of cached nodes.
func (c *Container) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.order)
}

// Instances returns resolved instances in construction order.
func (c *Container) Instances() []any {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]any, len(c.order))
	for i, n := range c.order {
		out[i] = n.Instance
	}
	return out
}

// Nodes returns the construction-ordered node list. The slice is a copy;
// the nodes are shared.
func (c *Container) Nodes() []*Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotOrderLocked()
}

func (c *Container) snapshotOrderLocked() []*Node {
	out := make([]*Node, len(c.order))
	copy(out, c.order)
	return out
}
