package magnet

import (
	"context"
	"sync"
)

// recorder collects lifecycle events across test fixtures so ordering can
// be asserted.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

// testLeaf -> testMid -> testTop is the canonical three-level chain.
type testLeaf struct {
	rec *recorder

	connectErr    error
	disconnectErr error
}

func (l *testLeaf) Connect(context.Context) error {
	l.rec.add("connect leaf")
	return l.connectErr
}

func (l *testLeaf) Disconnect(context.Context) error {
	l.rec.add("disconnect leaf")
	return l.disconnectErr
}

type testMid struct {
	rec  *recorder
	leaf *testLeaf

	connectErr    error
	disconnectErr error
}

func (m *testMid) Connect(context.Context) error {
	m.rec.add("connect mid")
	return m.connectErr
}

func (m *testMid) Disconnect(context.Context) error {
	m.rec.add("disconnect mid")
	return m.disconnectErr
}

type testTop struct {
	rec *recorder
	mid *testMid

	connectErr error
}

func (t *testTop) Connect(context.Context) error {
	t.rec.add("connect top")
	return t.connectErr
}

func (t *testTop) Disconnect(context.Context) error {
	t.rec.add("disconnect top")
	return nil
}

// newChain registers the leaf/mid/top constructors on a fresh container
// and returns the container plus the shared recorder.
func newChain() (*Container, *recorder) {
	c := New()
	rec := &recorder{}

	MustRegister[*testLeaf](c, func() *testLeaf {
		rec.add("construct leaf")
		return &testLeaf{rec: rec}
	})
	MustRegister[*testMid](c, func(leaf *testLeaf) *testMid {
		rec.add("construct mid")
		return &testMid{rec: rec, leaf: leaf}
	})
	MustRegister[*testTop](c, func(mid *testMid) *testTop {
		rec.add("construct top")
		return &testTop{rec: rec, mid: mid}
	})

	return c, rec
}
