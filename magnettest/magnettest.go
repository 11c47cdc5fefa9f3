// Package magnettest provides helpers for testing code wired through a
// magnet container: a scriptable connectable/pingable stub and an
// override helper bound to the test lifecycle.
package magnettest

import (
	"context"
	"sync"

	"github.com/mvoloshyn/magnet"
)

type TB interface {
	Helper()
	Fatalf(format string, args ...any)
	Cleanup(f func())
}

// Stub is a connectable, pingable stand-in for a real dependency. Its
// lifecycle hooks are no-ops unless an error is scripted, and every call
// is recorded, so lifecycle orchestration stays observable and unaffected.
type Stub struct {
	ConnectErr    error
	DisconnectErr error
	PingErr       error

	mu          sync.Mutex
	connects    int
	disconnects int
	pings       int
}

func (s *Stub) Connect(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connects++
	return s.ConnectErr
}

func (s *Stub) Disconnect(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disconnects++
	return s.DisconnectErr
}

func (s *Stub) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pings++
	return s.PingErr
}

func (s *Stub) Connects() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connects
}

func (s *Stub) Disconnects() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disconnects
}

func (s *Stub) Pings() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pings
}

// Replace overrides I with the given implementation for the remainder of
// the test. The override is released in t.Cleanup; stacked Replace calls
// release in reverse order because cleanups run last-in-first-out.
func Replace[I any](tb TB, c *magnet.Container, impl I) {
	tb.Helper()

	scope, err := c.Override(magnet.BindValue[I](impl))
	if err != nil {
		tb.Fatalf("failed to override %T: %v", impl, err)
	}

	tb.Cleanup(func() {
		if err := scope.Release(); err != nil {
			tb.Fatalf("failed to release override: %v", err)
		}
	})
}

// MustResolve resolves T or fails the test.
func MustResolve[T any](tb TB, c *magnet.Container) T {
	tb.Helper()

	v, err := magnet.Resolve[T](c)
	if err != nil {
		tb.Fatalf("failed to resolve: %v", err)
	}
	return v
}

// RequireConnect connects the container or fails the test, and registers
// a cleanup that disconnects it.
func RequireConnect(tb TB, ctx context.Context, c *magnet.Container) {
	tb.Helper()

	if err := c.Connect(ctx); err != nil {
		tb.Fatalf("failed to connect container: %v", err)
	}

	tb.Cleanup(func() {
		if err := c.Disconnect(context.WithoutCancel(ctx)); err != nil {
			tb.Fatalf("failed to disconnect container: %v", err)
		}
	})
}
