package container

import (
	"context"
	"fmt"

	"github.com/mvoloshyn/magnet/internal/reflectx"
)

// Connect walks the construction-ordered node list and connects each
// connectable node, one at a time. Sequential order is a correctness
// requirement: a dependent may assume its dependencies are live inside its
// own connect hook. On failure or cancellation, every node connected so
// far is disconnected again, in reverse order, before the error surfaces.
func (c *Container) Connect(ctx context.Context) error {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	order := c.Nodes()

	var connected []*Node
	for _, node := range order {
		if err := ctx.Err(); err != nil {
			c.rollback(context.WithoutCancel(ctx), connected)
			return err
		}

		conn, ok := AsConnectable(node.Instance)
		if !ok || node.State() == StateConnected {
			continue
		}

		name := reflectx.Name(node.Type)
		node.setState(StateConnecting)
		c.logger.Debug("connecting dependency", "type", name)

		if err := conn.Connect(ctx); err != nil {
			node.setState(StateFailed)
			c.rollback(context.WithoutCancel(ctx), connected)
			return &ConnectError{Type: name, Cause: err}
		}

		node.setState(StateConnected)
		connected = append(connected, node)
	}

	return nil
}

// rollback disconnects the given nodes in reverse order. Failures are
// logged, not returned: rollback runs on the way out of a failed or
// cancelled connect sweep and must not mask the original error.
func (c *Container) rollback(ctx context.Context, connected []*Node) {
	for i := len(connected) - 1; i >= 0; i-- {
		node := connected[i]
		if err := c.disconnectNode(ctx, node); err != nil {
			c.logger.Error("rollback disconnect failed", "type", reflectx.Name(node.Type), "error", err)
		}
	}
}

// Disconnect walks the node list in reverse construction order and
// disconnects every connected node. Failures are collected, never
// short-circuited: every node gets its disconnect attempt, and the
// aggregate is reported once the sweep completes.
func (c *Container) Disconnect(ctx context.Context) error {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	order := c.Nodes()

	var failures []error
	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if node.State() != StateConnected {
			continue
		}

		if err := c.disconnectNode(ctx, node); err != nil {
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		return &DisconnectError{Failures: failures}
	}
	return nil
}

func (c *Container) disconnectNode(ctx context.Context, node *Node) error {
	conn, ok := AsConnectable(node.Instance)
	if !ok {
		return nil
	}

	name := reflectx.Name(node.Type)
	node.setState(StateDisconnecting)
	c.logger.Debug("disconnecting dependency", "type", name)

	if err := conn.Disconnect(ctx); err != nil {
		node.setState(StateFailed)
		return fmt.Errorf("disconnect %s: %w", name, err)
	}

	node.setState(StateDisconnected)
	return nil
}
