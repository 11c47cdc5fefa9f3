package magnet

import "github.com/mvoloshyn/magnet/internal/container"

type HealthStatus = container.HealthStatus

const (
	HealthStatusUp   = container.HealthStatusUp
	HealthStatusDown = container.HealthStatusDown
)

// HealthReport is the result of pinging one dependency: its name, up/down
// status, the failure (if any) and the observed latency.
type HealthReport = container.HealthReport
