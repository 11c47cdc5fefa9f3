package magnet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingDB struct {
	NopConnectable
	err error
}

func (p *pingDB) Ping(context.Context) error { return p.err }

type pingCache struct {
	NopConnectable
	err error
}

func (p *pingCache) Ping(context.Context) error { return p.err }

type pingQueue struct {
	NopConnectable
	err error
}

func (p *pingQueue) Ping(context.Context) error { return p.err }

func TestPingAll_ReportsEveryDependency(t *testing.T) {
	t.Parallel()

	c := New()
	MustResolve[*pingDB](c)
	MustResolve[*pingCache](c)
	queue := MustResolve[*pingQueue](c)
	queue.err = errors.New("broker unreachable")

	reports := c.PingAll(context.Background())
	require.Len(t, reports, 3)

	byName := make(map[string]HealthReport, len(reports))
	for _, r := range reports {
		byName[r.Name] = r
	}

	down := byName["*magnet.pingQueue"]
	assert.Equal(t, HealthStatusDown, down.Status)
	assert.EqualError(t, down.Error, "broker unreachable")

	assert.Equal(t, HealthStatusUp, byName["*magnet.pingDB"].Status)
	assert.NoError(t, byName["*magnet.pingDB"].Error)
	assert.Equal(t, HealthStatusUp, byName["*magnet.pingCache"].Status)
}

func TestPingAll_SkipsNonPingable(t *testing.T) {
	t.Parallel()

	c, _ := newChain()
	MustResolve[*testTop](c)
	MustResolve[*pingDB](c)

	reports := c.PingAll(context.Background())
	require.Len(t, reports, 1)
	assert.Equal(t, "*magnet.pingDB", reports[0].Name)
}

func TestHealthy(t *testing.T) {
	t.Parallel()

	c := New()
	db := MustResolve[*pingDB](c)

	ctx := context.Background()
	require.NoError(t, c.Healthy(ctx))

	cause := errors.New("connection reset")
	db.err = cause

	err := c.Healthy(ctx)
	require.Error(t, err)
	assert.True(t, IsHealthcheckFailed(err))
	assert.ErrorIs(t, err, cause)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "*magnet.pingDB", e.Dependency)
}
