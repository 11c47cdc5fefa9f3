// Package magnet is a dependency-injection container for resource-holding
// clients. Given a target type or function, it resolves the transitive
// graph of its dependencies, constructs each node exactly once per
// container, and drives an ordered connect/disconnect lifecycle plus
// health checks over the resolved graph.
//
// # Quick Start
//
// Types that implement Connectable are injectable automatically:
//
//	type Database struct{ conn *sql.DB }
//
//	func (d *Database) Connect(ctx context.Context) error    { /* open */ return nil }
//	func (d *Database) Disconnect(ctx context.Context) error { /* close */ return nil }
//
//	type UserService struct {
//		DB *Database // struct-pointer targets get connectable fields injected
//	}
//
//	c := magnet.New()
//	svc, err := magnet.Resolve[*UserService](c)
//
//	err = c.Connect(ctx)    // dependency-first, one node at a time
//	defer c.Disconnect(ctx) // reverse order, every node attempted
//
// # Registration
//
// Struct pointers resolve without registration. Types that need
// construction logic register a constructor whose parameters are their
// dependency slots:
//
//	magnet.Register[*UserService](c, func(db *Database) *UserService {
//		return &UserService{db: db}
//	})
//
//	magnet.RegisterValue[*Config](c, cfg) // pre-built value
//
// # Forced Injection
//
// Non-connectable types are left for the caller unless forced, either
// per container or per struct field:
//
//	magnet.Force[*Config](c)
//
//	type Service struct {
//		Clock *Clock `magnet:"inject"`
//	}
//
// # Bindings and Overrides
//
// Bind maps an interface to the concrete type that satisfies it; Override
// pushes a temporary layer on top, typically for tests:
//
//	magnet.Bind[UserStore, *PostgresUserStore](c)
//
//	scope, _ := c.Override(magnet.BindValue[UserStore](&fakeStore{}))
//	defer scope.Release()
//
// Overrides stack; Release restores the exact prior state, cached
// singletons included. Scopes must release in reverse push order.
//
// # Lifecycle
//
// Connect walks nodes in construction order, strictly one at a time, so a
// node's dependencies are always live inside its own connect hook. A
// failed connect rolls back the nodes already connected (in reverse)
// before the error surfaces. Disconnect sweeps in reverse order and never
// stops early; failures are aggregated.
//
// # Health Checks
//
// Nodes implementing Pingable are polled by PingAll, which reports
// per-dependency status without ever failing fast:
//
//	for _, r := range c.PingAll(ctx) {
//		if r.Status == magnet.HealthStatusDown {
//			log.Printf("%s is down: %v", r.Name, r.Error)
//		}
//	}
//
// # Injection Facade
//
// Inject wraps a function so injectable parameters are filled from the
// graph at call time, while explicit arguments always win:
//
//	wrapped, _ := magnet.InjectT(c, func(ctx context.Context, db *Database, limit int) error {
//		...
//	})
//	wrapped(ctx, nil, 50) // db resolved from the graph, limit passed through
//
// Run ties it together for process entrypoints: resolve, connect, call,
// disconnect:
//
//	magnet.Run(ctx, c, func(ctx context.Context, srv *Server) error {
//		return srv.Serve(ctx)
//	})
package magnet
