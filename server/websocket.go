package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/lightsout/internal/log"
	"github.com/katalvlaran/lightsout/worker"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// client is one websocket connection. Requests are answered in arrival
// order; replies are written by writePump only.
type client struct {
	conn *websocket.Conn
	send chan worker.Response
	quit chan struct{} // closed when writePump stops
}

func (c *client) reply(resp worker.Response) bool {
	select {
	case c.send <- resp:
		return true
	case <-c.quit:
		return false
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger().Warn(log.Server, "websocket upgrade", "err", err)
		return
	}
	c := &client{conn: conn, send: make(chan worker.Response, 16), quit: make(chan struct{})}

	go c.writePump(s.logger())
	s.readPump(r.Context(), c)
	<-c.quit
}

func (s *Server) readPump(ctx context.Context, c *client) {
	defer close(c.send)
	c.conn.SetReadLimit(s.opts.maxRequestBytes)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger().Warn(log.Server, "websocket read", "err", err)
			}
			return
		}

		var req worker.Request
		if err := json.Unmarshal(message, &req); err != nil {
			if !c.reply(worker.Response{Error: "invalid request: " + err.Error()}) {
				return
			}
			continue
		}
		if !c.reply(s.dispatcher.Do(ctx, req)) {
			return
		}
	}
}

func (c *client) writePump(logger log.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		close(c.quit)
	}()

	for {
		select {
		case resp, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteJSON(resp); err != nil {
				logger.Warn(log.Server, "websocket write", "err", err)
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
