package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/peerwave/peerwave/internal/domain"
	"github.com/peerwave/peerwave/internal/protocol"
)

func (ctl *Controller) handleJoin(sid domain.ConnID, data []byte) {
	var p protocol.JoinRoomPayload
	if err := protocol.DecodePayload(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad join payload")
		return
	}
	ctl.Coord.Join(sid, domain.RoomID(p.RoomID), p.UserName)
}

// handleLeave accepts the bare-string form ("roomId") the clients send,
// falling back to an object with a roomId field.
func (ctl *Controller) handleLeave(sid domain.ConnID, data []byte) {
	var roomID string
	if err := json.Unmarshal(data, &roomID); err != nil {
		var p struct {
			RoomID string `json:"roomId"`
		}
		if err := json.Unmarshal(data, &p); err != nil {
			log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad leave payload")
			return
		}
		roomID = p.RoomID
	}
	if roomID == "" {
		return
	}
	ctl.Coord.Leave(sid, domain.RoomID(roomID))
}
