package signal

import (
	"github.com/rs/zerolog/log"

	"github.com/peerwave/peerwave/internal/protocol"
)

// handleSignalRelay covers offer, answer and ice-candidate. The body
// is opaque; only the addressing fields are required.
func (ctl *Controller) handleSignalRelay(kind protocol.SignalKind, data []byte) {
	var p protocol.SignalPayload
	if err := protocol.DecodePayload(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("kind", string(kind)).Msg("bad signal payload")
		return
	}
	ctl.Coord.RelaySignal(kind, p.To, p.From, p.Body(kind))
}
