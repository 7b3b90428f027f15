package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/peerwave/peerwave/internal/core"
	"github.com/peerwave/peerwave/internal/domain"
)

// RoomTable owns the roomId → room mapping. Structural membership
// changes (join, leave, disconnect) happen under the table lock so the
// no-empty-rooms invariant holds after every operation: a room is
// deleted in the same critical section that empties it.
type RoomTable struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]core.RoomService
}

func NewRoomTable() *RoomTable {
	return &RoomTable{rooms: make(map[domain.RoomID]core.RoomService)}
}

func (t *RoomTable) Get(id domain.RoomID) (core.RoomService, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	room, ok := t.rooms[id]
	return room, ok
}

// AddMember inserts ms into the room, creating the room lazily on the
// first join to a previously unknown id. Returns the room.
func (t *RoomTable) AddMember(id domain.RoomID, sid domain.ConnID, ms core.MemberSession) core.RoomService {
	t.mu.Lock()
	defer t.mu.Unlock()
	room, ok := t.rooms[id]
	if !ok {
		room = core.NewRoomService(&domain.Room{ID: id})
		t.rooms[id] = room
		log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room created")
	}
	room.AddMember(sid, ms)
	return room
}

// RemoveMember deletes sid from the room and drops the room itself when
// it becomes empty. Missing room or member is a no-op.
func (t *RoomTable) RemoveMember(id domain.RoomID, sid domain.ConnID) (*domain.Participant, core.RoomService, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	room, ok := t.rooms[id]
	if !ok {
		return nil, nil, false
	}
	p, ok := room.RemoveMember(sid)
	if !ok {
		return nil, nil, false
	}
	if room.MemberCount() == 0 {
		delete(t.rooms, id)
		log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("empty room deleted")
	}
	return p, room, true
}

// Departure records one room a disconnecting member was removed from.
type Departure struct {
	Room        core.RoomService
	Participant *domain.Participant
}

// RemoveAll removes sid from every room it belongs to, dropping rooms
// that become empty, and reports each departure for broadcast.
func (t *RoomTable) RemoveAll(sid domain.ConnID) []Departure {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []Departure
	for id, room := range t.rooms {
		p, ok := room.RemoveMember(sid)
		if !ok {
			continue
		}
		if room.MemberCount() == 0 {
			delete(t.rooms, id)
			log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("empty room deleted")
		}
		out = append(out, Departure{Room: room, Participant: p})
	}
	return out
}

func (t *RoomTable) List() []core.RoomInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]core.RoomInfo, 0, len(t.rooms))
	for id, room := range t.rooms {
		out = append(out, core.RoomInfo{ID: id, MemberCount: room.MemberCount()})
	}
	return out
}

func (t *RoomTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rooms)
}
