package app

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/peerwave/peerwave/internal/core"
	"github.com/peerwave/peerwave/internal/domain"
)

type sessionEntry struct {
	Conn   core.SignalConnection
	Cancel context.CancelFunc
}

// Registry maps each live transport connection to a stable identifier
// and provides best-effort delivery primitives. It knows nothing about
// rooms.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.ConnID]*sessionEntry
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[domain.ConnID]*sessionEntry)}
}

// Connect returns a fresh unique identifier for a newly established
// connection. Accepting the connection is a transport-layer decision
// made before this is invoked, so there is no failure mode.
func (r *Registry) Connect() domain.ConnID {
	sid := domain.ConnID(uuid.NewString())
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("connection registered")
	return sid
}

func (r *Registry) Bind(sid domain.ConnID, conn core.SignalConnection, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sid] = &sessionEntry{Conn: conn, Cancel: cancel}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("bound signal")
}

func (r *Registry) Get(sid domain.ConnID) (core.SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[sid]; ok {
		return e.Conn, true
	}
	return nil, false
}

// SendTo delivers one frame to one connection. An unknown or closed
// target is a silent no-op: callers are not required to check liveness
// first, which avoids races with concurrent leaves.
func (r *Registry) SendTo(sid domain.ConnID, data core.Frame) {
	conn, ok := r.Get(sid)
	if !ok {
		log.Debug().Str("module", "app.registry").Str("sid", string(sid)).Msg("send to unknown connection dropped")
		return
	}
	if err := conn.TrySend(data); err != nil {
		log.Debug().Err(err).Str("module", "app.registry").Str("sid", string(sid)).Msg("send dropped")
	}
}

// Unbind discards the identifier entirely; subsequent SendTo calls
// targeting it become silent no-ops.
func (r *Registry) Unbind(sid domain.ConnID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("unbind session")
}

func (r *Registry) Cancel(sid domain.ConnID) bool {
	r.mu.RLock()
	e, ok := r.sessions[sid]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("canceled session")
	return true
}
