package container

import (
	"reflect"
	"sync/atomic"
)

type NodeState int32

const (
	StateCreated NodeState = iota
	StateConnecting
	StateConnected
	StateDisconnecting
	StateDisconnected
	StateFailed
)

var stateNames = map[NodeState]string{
	StateCreated:       "created",
	StateConnecting:    "connecting",
	StateConnected:     "connected",
	StateDisconnecting: "disconnecting",
	StateDisconnected:  "disconnected",
	StateFailed:        "failed",
}

func (s NodeState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Node is a resolved singleton: one exists per effective type per
// container. Lifecycle sweeps move its state through the connect state
// machine; resolution never touches state after creation.
type Node struct {
	Type     reflect.Type
	Instance any

	state atomic.Int32
}

func newNode(t reflect.Type, instance any) *Node {
	n := &Node{Type: t, Instance: instance}
	n.state.Store(int32(StateCreated))
	return n
}

func (n *Node) State() NodeState {
	return NodeState(n.state.Load())
}

func (n *Node) setState(s NodeState) {
	n.state.Store(int32(s))
}
