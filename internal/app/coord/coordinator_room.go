package coord

import (
	"github.com/rs/zerolog/log"

	"github.com/peerwave/peerwave/internal/core"
	"github.com/peerwave/peerwave/internal/domain"
	"github.com/peerwave/peerwave/internal/protocol"
)

// Join inserts the caller into the room (creating it lazily), replies
// with a snapshot of the other members and announces the newcomer to
// them. Joining a room the caller is already in overwrites the entry
// and resets its flags.
func (c *Coordinator) Join(sid domain.ConnID, roomID domain.RoomID, name string) {
	conn, ok := c.Registry.Get(sid)
	if !ok {
		return
	}
	p := domain.NewParticipant(sid, name)
	room := c.Rooms.AddMember(roomID, sid, core.NewMemberSession(p, conn))
	log.Info().Str("module", "coord").Str("sid", string(sid)).Str("room", string(roomID)).Str("name", name).Msg("join")

	frame, err := protocol.Encode(protocol.EvtExistingParticipants, room.MembersSnapshot(sid))
	if err != nil {
		log.Error().Err(err).Str("module", "coord").Msg("encode existing-participants")
		return
	}
	c.Registry.SendTo(sid, frame)

	frame, err = protocol.Encode(protocol.EvtUserJoined, p)
	if err != nil {
		log.Error().Err(err).Str("module", "coord").Msg("encode user-joined")
		return
	}
	room.Notify(sid, frame)
}

// Leave removes the caller from the room if present and announces the
// departure to the remaining members. The room is deleted the instant
// it becomes empty.
func (c *Coordinator) Leave(sid domain.ConnID, roomID domain.RoomID) {
	p, room, ok := c.Rooms.RemoveMember(roomID, sid)
	if !ok {
		return
	}
	log.Info().Str("module", "coord").Str("sid", string(sid)).Str("room", string(roomID)).Msg("leave")
	c.announceLeft(sid, room, p)
}

// Disconnect performs leave-processing for every room the connection
// belonged to, then discards the identifier entirely.
func (c *Coordinator) Disconnect(sid domain.ConnID) {
	for _, dep := range c.Rooms.RemoveAll(sid) {
		c.announceLeft(sid, dep.Room, dep.Participant)
	}
	c.Registry.Unbind(sid)
	log.Info().Str("module", "coord").Str("sid", string(sid)).Msg("disconnect")
}

func (c *Coordinator) announceLeft(sid domain.ConnID, room core.RoomService, p *domain.Participant) {
	left := protocol.UserLeft{ID: string(sid), Name: p.Name}
	frame, err := protocol.Encode(protocol.EvtUserLeft, left)
	if err != nil {
		log.Error().Err(err).Str("module", "coord").Msg("encode user-left")
		return
	}
	room.Notify(sid, frame)
}

// ToggleCamera updates the caller's camera flag and announces the new
// state to the other members. A caller that is no longer a member
// (race with a concurrent leave) is a silent no-op, never an error.
func (c *Coordinator) ToggleCamera(sid domain.ConnID, roomID domain.RoomID, on bool) {
	room, ok := c.Rooms.Get(roomID)
	if !ok {
		return
	}
	if !room.SetCamera(sid, on) {
		return
	}
	frame, err := protocol.Encode(protocol.EvtUserToggleCamera, protocol.UserToggleCamera{ID: string(sid), IsCameraOn: on})
	if err != nil {
		log.Error().Err(err).Str("module", "coord").Msg("encode toggle-camera")
		return
	}
	room.Notify(sid, frame)
}

// ToggleMic mirrors ToggleCamera for the microphone flag.
func (c *Coordinator) ToggleMic(sid domain.ConnID, roomID domain.RoomID, on bool) {
	room, ok := c.Rooms.Get(roomID)
	if !ok {
		return
	}
	if !room.SetMic(sid, on) {
		return
	}
	frame, err := protocol.Encode(protocol.EvtUserToggleMic, protocol.UserToggleMic{ID: string(sid), IsMicOn: on})
	if err != nil {
		log.Error().Err(err).Str("module", "coord").Msg("encode toggle-mic")
		return
	}
	room.Notify(sid, frame)
}
