// Package signal is the WebSocket adapter: it upgrades connections,
// runs the read/write pumps and dispatches inbound events to the
// coordinator. Room semantics never leak into this package.
package signal

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/peerwave/peerwave/internal/app"
	"github.com/peerwave/peerwave/internal/app/coord"
	"github.com/peerwave/peerwave/internal/config"
	"github.com/peerwave/peerwave/internal/core"
)

var ErrBackpressure = errors.New("backpressure")

type Controller struct {
	Coord   *coord.Coordinator
	Limiter *app.MsgRateLimiter

	cfg      *config.Config
	upgrader websocket.Upgrader
}

func NewController(cfg *config.Config, c *coord.Coordinator) *Controller {
	ctl := &Controller{
		Coord:   c,
		Limiter: app.NewMsgRateLimiter(cfg.MsgLimit, cfg.MsgInterval),
		cfg:     cfg,
	}
	ctl.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if cfg.CORSOrigin == "*" {
				return true
			}
			return r.Header.Get("Origin") == cfg.CORSOrigin
		},
	}
	return ctl
}

type wsConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *wsConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

// HandleSignal upgrades the request, registers the connection and
// starts its pumps. One read pump per connection keeps inbound events
// from the same sender in order.
func (ctl *Controller) HandleSignal(ctx context.Context, c *gin.Context) {
	ws, err := ctl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("ws upgrade")
		return
	}

	sid := ctl.Coord.Registry.Connect()
	log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("new WS connection")

	conn := &wsConn{
		conn: ws,
		send: make(chan core.Frame, 32),
	}

	ctx, cancel := context.WithCancel(ctx)
	ctl.Coord.Registry.Bind(sid, conn, cancel)

	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, sid, conn)
}
