package signal

import (
	"github.com/rs/zerolog/log"

	"github.com/peerwave/peerwave/internal/domain"
	"github.com/peerwave/peerwave/internal/protocol"
)

func (ctl *Controller) handleChat(sid domain.ConnID, data []byte) {
	var p protocol.ChatPayload
	if err := protocol.DecodePayload(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad chat payload")
		return
	}
	ctl.Coord.SendChat(domain.RoomID(p.RoomID), p.Message)
}

func (ctl *Controller) handleToggleCamera(sid domain.ConnID, data []byte) {
	var p protocol.ToggleCameraPayload
	if err := protocol.DecodePayload(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad toggle-camera payload")
		return
	}
	ctl.Coord.ToggleCamera(sid, domain.RoomID(p.RoomID), *p.IsCameraOn)
}

func (ctl *Controller) handleToggleMic(sid domain.ConnID, data []byte) {
	var p protocol.ToggleMicPayload
	if err := protocol.DecodePayload(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad toggle-mic payload")
		return
	}
	ctl.Coord.ToggleMic(sid, domain.RoomID(p.RoomID), *p.IsMicOn)
}
