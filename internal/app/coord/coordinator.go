// Package coord contains the room coordinator: it applies
// join/leave/toggle/relay events to room state and decides which
// connections receive which outbound frames. Transport details stay in
// the adapters; delivery goes through the registry and room fan-out.
package coord

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/peerwave/peerwave/internal/app"
	"github.com/peerwave/peerwave/internal/domain"
	"github.com/peerwave/peerwave/internal/protocol"
)

type Coordinator struct {
	Registry *app.Registry
	Rooms    *app.RoomTable
}

// RelaySignal forwards an offer, answer or ice-candidate body to one
// target connection, tagged with the declared sender. Deliberately no
// room lookup and no membership check: signaling payloads are opaque
// and room scoping is the clients' responsibility. An unknown target
// is a silent no-op.
func (c *Coordinator) RelaySignal(kind protocol.SignalKind, to, from string, body json.RawMessage) {
	frame, err := protocol.Encode(string(kind), protocol.NewSignalForward(kind, from, body))
	if err != nil {
		log.Error().Err(err).Str("module", "coord").Str("kind", string(kind)).Msg("encode signal")
		return
	}
	log.Debug().Str("module", "coord").Str("kind", string(kind)).Str("from", from).Str("to", to).Msg("relay signal")
	c.Registry.SendTo(domain.ConnID(to), frame)
}

// SendChat broadcasts the verbatim message to every member of the
// room, the sender included. Missing room is a silent no-op.
func (c *Coordinator) SendChat(roomID domain.RoomID, message json.RawMessage) {
	room, ok := c.Rooms.Get(roomID)
	if !ok {
		return
	}
	frame, err := protocol.Encode(protocol.EvtReceiveMessage, message)
	if err != nil {
		log.Error().Err(err).Str("module", "coord").Msg("encode chat")
		return
	}
	room.Notify("", frame)
}
