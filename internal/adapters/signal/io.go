package signal

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/peerwave/peerwave/internal/domain"
	"github.com/peerwave/peerwave/internal/protocol"
)

const writeWait = 5 * time.Second

func (ctl *Controller) writePump(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(ctl.cfg.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (ctl *Controller) readPump(ctx context.Context, sid domain.ConnID, c *wsConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump closing")
		ctl.Coord.Registry.Cancel(sid)
		ctl.Coord.Disconnect(sid)
		ctl.Limiter.Forget(sid)
		c.Close()
	}()

	// Pongs must arrive within a bit more than one ping period.
	pongWait := ctl.cfg.PingPeriod * 10 / 9
	c.conn.SetReadLimit(ctl.cfg.ReadLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				log.Info().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump read error")
				return
			}
			ctl.handleFrame(sid, data)
		}
	}
}

// handleFrame is the dispatch boundary: one envelope in, zero or more
// coordinator calls out. Malformed or unknown input never errors back
// to the client.
func (ctl *Controller) handleFrame(sid domain.ConnID, data []byte) {
	if !ctl.Limiter.Allow(sid) {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("rate limited, frame dropped")
		return
	}

	env, err := protocol.Decode(data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad json")
		return
	}

	switch env.Event {
	case protocol.EvtJoinRoom:
		ctl.handleJoin(sid, env.Data)
	case protocol.EvtLeaveRoom:
		ctl.handleLeave(sid, env.Data)
	case protocol.EvtOffer:
		ctl.handleSignalRelay(protocol.SignalOffer, env.Data)
	case protocol.EvtAnswer:
		ctl.handleSignalRelay(protocol.SignalAnswer, env.Data)
	case protocol.EvtICECandidate:
		ctl.handleSignalRelay(protocol.SignalICECandidate, env.Data)
	case protocol.EvtSendMessage:
		ctl.handleChat(sid, env.Data)
	case protocol.EvtToggleCamera:
		ctl.handleToggleCamera(sid, env.Data)
	case protocol.EvtToggleMic:
		ctl.handleToggleMic(sid, env.Data)
	default:
		log.Warn().Str("module", "signal").Str("event", env.Event).Msg("unknown event")
	}
}
