package magnet

import (
	"context"
	"log/slog"

	"github.com/mvoloshyn/magnet/internal/container"
)

// Container owns a dependency graph: a binding registry, a cache of
// resolved singletons and their construction order, and the lifecycle
// state of every connectable node. Containers are independent; nothing is
// shared between two containers, and there is no process-wide instance.
type Container struct {
	internal *container.Container
	config   *containerConfig
}

type containerConfig struct {
	logger *slog.Logger
}

// New creates an empty container.
func New(opts ...Option) *Container {
	cfg := &containerConfig{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	internal := container.New(
		&container.Config{
			Logger: cfg.logger,
		},
	)

	return &Container{
		internal: internal,
		config:   cfg,
	}
}

// Connect connects every resolved connectable node, sequentially, in
// construction order, so each node's dependencies are live before its own
// connect hook runs. If a hook fails or ctx is cancelled mid-sweep, the
// nodes connected so far are disconnected again in reverse order before
// the error is returned.
func (c *Container) Connect(ctx context.Context) error {
	return wrapEngine(c.internal.Connect(ctx))
}

// Disconnect disconnects every connected node in reverse construction
// order. Every node gets a disconnect attempt even when earlier ones fail;
// failures are aggregated into a single error.
func (c *Container) Disconnect(ctx context.Context) error {
	return wrapEngine(c.internal.Disconnect(ctx))
}

// PingAll pings every resolved pingable node and returns one report per
// node. Individual failures are carried in the reports, never returned as
// an error; interpreting the aggregate is the caller's job.
func (c *Container) PingAll(ctx context.Context) []HealthReport {
	return c.internal.PingAll(ctx)
}

// Healthy runs PingAll and returns the first failure as an error, or nil
// when every pingable node is up.
func (c *Container) Healthy(ctx context.Context) error {
	for _, report := range c.PingAll(ctx) {
		if report.Status == HealthStatusDown {
			return newError(ErrCodeHealthcheckFailed, "dependency unhealthy", report.Error).
				WithDependency(report.Name)
		}
	}
	return nil
}

// Size returns the number of resolved nodes.
func (c *Container) Size() int {
	return c.internal.Size()
}

// Instances returns every resolved instance in construction order.
func (c *Container) Instances() []any {
	return c.internal.Instances()
}
