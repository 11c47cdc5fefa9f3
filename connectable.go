package magnet

import (
	"context"

	"github.com/mvoloshyn/magnet/internal/container"
)

// Connectable is the lifecycle capability: a type exposing start/stop
// hooks used to acquire and release a resource. Implementing it is what
// makes a type injectable without any further marking; detection is
// structural, there is nothing to inherit or register.
type Connectable = container.Connectable

// Pingable is the health-check capability. Ping returns an error when the
// dependency is unhealthy.
type Pingable = container.Pingable

// NopConnectable is an embeddable no-op implementation of Connectable.
// Embed it to make a type injectable when it has no real resource to
// manage, including mocks used with Override:
//
//	type fakeStore struct {
//		magnet.NopConnectable
//	}
type NopConnectable struct{}

func (NopConnectable) Connect(context.Context) error { return nil }

func (NopConnectable) Disconnect(context.Context) error { return nil }

// IsConnectable reports whether T carries the lifecycle capability.
func IsConnectable[T any]() bool {
	return container.IsConnectable(typeFor[T]())
}

// IsPingable reports whether T carries the health-check capability.
func IsPingable[T any]() bool {
	return container.IsPingable(typeFor[T]())
}
