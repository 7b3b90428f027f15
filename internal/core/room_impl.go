package core

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/peerwave/peerwave/internal/domain"
)

// roomImpl is a threadsafe in-memory room.
// It never closes adapter-owned resources.
type roomImpl struct {
	room    *domain.Room
	mu      sync.RWMutex
	members map[domain.ConnID]MemberSession
}

func NewRoomService(room *domain.Room) RoomService {
	return &roomImpl{
		room:    room,
		members: make(map[domain.ConnID]MemberSession),
	}
}

func (r *roomImpl) Room() *domain.Room { return r.room }

func (r *roomImpl) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

func (r *roomImpl) AddMember(sid domain.ConnID, ms MemberSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[sid] = ms
	log.Info().Str("module", "core.room").Str("room", string(r.room.ID)).Str("sid", string(sid)).Msg("member added")
}

func (r *roomImpl) RemoveMember(sid domain.ConnID) (*domain.Participant, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ms, ok := r.members[sid]
	if !ok {
		return nil, false
	}
	delete(r.members, sid)
	log.Info().Str("module", "core.room").Str("room", string(r.room.ID)).Str("sid", string(sid)).Msg("member removed")
	return ms.Meta(), true
}

func (r *roomImpl) SetCamera(sid domain.ConnID, on bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	ms, ok := r.members[sid]
	if !ok {
		return false
	}
	ms.Meta().CameraOn = on
	return true
}

func (r *roomImpl) SetMic(sid domain.ConnID, on bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	ms, ok := r.members[sid]
	if !ok {
		return false
	}
	ms.Meta().MicOn = on
	return true
}

func (r *roomImpl) Notify(except domain.ConnID, data Frame) PublishResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := PublishResult{}
	for sid, ms := range r.members {
		if sid == except {
			continue
		}
		if err := ms.Signal().TrySend(data); err != nil {
			res.Dropped++
			continue
		}
		res.Sent++
	}
	log.Debug().Str("module", "core.room").Str("room", string(r.room.ID)).Int("sent", res.Sent).Int("dropped", res.Dropped).Msg("notify result")
	return res
}

func (r *roomImpl) MembersSnapshot(except domain.ConnID) []domain.Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Participant, 0, len(r.members))
	for sid, ms := range r.members {
		if sid == except {
			continue
		}
		out = append(out, *ms.Meta())
	}
	return out
}
