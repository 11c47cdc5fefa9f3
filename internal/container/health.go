package container

import (
	"context"
	"sync"
	"time"

	"github.com/mvoloshyn/magnet/internal/reflectx"
)

type HealthStatus string

const (
	HealthStatusUp   HealthStatus = "up"
	HealthStatusDown HealthStatus = "down"
)

// HealthReport is the health-check result for one pingable node.
type HealthReport struct {
	Name    string
	Status  HealthStatus
	Error   error
	Latency time.Duration
}

// PingAll pings every pingable node and returns one report per node. Ping
// failures are reported, never raised, and one unhealthy node does not
// stop the sweep. Unlike connect and disconnect, pings carry no ordering
// contract, so they fan out concurrently.
func (c *Container) PingAll(ctx context.Context) []HealthReport {
	order := c.Nodes()

	var reports []HealthReport
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, node := range order {
		pingable, ok := AsPingable(node.Instance)
		if !ok {
			continue
		}

		wg.Add(1)
		go func(name string, p Pingable) {
			defer wg.Done()

			c.logger.Debug("pinging dependency", "type", name)

			start := time.Now()
			err := p.Ping(ctx)
			latency := time.Since(start)

			report := HealthReport{
				Name:    name,
				Status:  HealthStatusUp,
				Latency: latency,
			}
			if err != nil {
				report.Status = HealthStatusDown
				report.Error = err
			}

			mu.Lock()
			reports = append(reports, report)
			mu.Unlock()
		}(reflectx.Name(node.Type), pingable)
	}

	wg.Wait()
	return reports
}
