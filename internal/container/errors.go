package container

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAlreadyRegistered = errors.New("type already registered")
	ErrNotTopOverride    = errors.New("override released out of push order")
	ErrOverrideReleased  = errors.New("override already released")
)

// CycleError reports a cyclic dependency. Chain holds the full cycle path,
// ending with the type that closed the cycle.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return "cyclic dependency: " + strings.Join(e.Chain, " -> ")
}

// UnresolvableError reports a dependency slot that has no binding and is
// not constructible.
type UnresolvableError struct {
	Type string
	Slot string
}

func (e *UnresolvableError) Error() string {
	if e.Slot != "" {
		return fmt.Sprintf("cannot resolve %s (slot %s): no registered constructor and not a struct pointer", e.Type, e.Slot)
	}
	return fmt.Sprintf("cannot resolve %s: no registered constructor and not a struct pointer", e.Type)
}

// ConstructError wraps a constructor failure.
type ConstructError struct {
	Type  string
	Cause error
}

func (e *ConstructError) Error() string {
	return fmt.Sprintf("constructor for %s failed: %v", e.Type, e.Cause)
}

func (e *ConstructError) Unwrap() error { return e.Cause }

// ConnectError wraps a failed connect hook. By the time it surfaces, every
// node connected before the failing one has been disconnected again.
type ConnectError struct {
	Type  string
	Cause error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect %s: %v", e.Type, e.Cause)
}

func (e *ConnectError) Unwrap() error { return e.Cause }

// DisconnectError aggregates every disconnect failure from a full reverse
// sweep. The sweep never stops early, so Failures holds one entry per
// failed node.
type DisconnectError struct {
	Failures []error
}

func (e *DisconnectError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("disconnect failures (%d): %s", len(e.Failures), strings.Join(msgs, "; "))
}

func (e *DisconnectError) Unwrap() []error { return e.Failures }
