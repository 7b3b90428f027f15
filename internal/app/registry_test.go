package app

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerwave/peerwave/internal/core"
)

type recConn struct {
	mu     sync.Mutex
	frames []core.Frame
}

func (r *recConn) TrySend(f core.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
	return nil
}

func (r *recConn) Close() {}

func (r *recConn) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func TestRegistryConnectAssignsUniqueIDs(t *testing.T) {
	r := NewRegistry()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		sid := r.Connect()
		require.NotEmpty(t, sid)
		assert.False(t, seen[string(sid)])
		seen[string(sid)] = true
	}
}

func TestRegistrySendTo(t *testing.T) {
	r := NewRegistry()
	sid := r.Connect()
	conn := &recConn{}
	r.Bind(sid, conn, nil)

	r.SendTo(sid, core.Frame("hello"))
	assert.Equal(t, 1, conn.count())

	// Unknown target is a silent no-op, not an error.
	r.SendTo("ghost", core.Frame("hello"))

	r.Unbind(sid)
	r.SendTo(sid, core.Frame("after unbind"))
	assert.Equal(t, 1, conn.count())
}

func TestRegistryCancel(t *testing.T) {
	r := NewRegistry()
	sid := r.Connect()
	canceled := false
	r.Bind(sid, &recConn{}, func() { canceled = true })

	require.True(t, r.Cancel(sid))
	assert.True(t, canceled)
	assert.False(t, r.Cancel("ghost"))
}
