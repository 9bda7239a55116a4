package bridge

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/tijarati/tijarati_host/internal/dto"
)

// WSResponder writes correlated responses to a websocket connection. gorilla
// connections allow one concurrent writer, so writes are serialized here.
type WSResponder struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func NewWSResponder(conn *websocket.Conn) *WSResponder {
	return &WSResponder{conn: conn}
}

var _ Responder = (*WSResponder)(nil)

func (r *WSResponder) Respond(ctx context.Context, id string, result any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conn.WriteJSON(dto.BridgeResponse{ID: id, Result: result})
}

// ServeConn pumps messages off a websocket connection until it closes. Each
// message is handled on its own goroutine so a slow operation never blocks
// the read loop.
func (h *Handler) ServeConn(ctx context.Context, conn *websocket.Conn) {
	responder := NewWSResponder(conn)
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Error("Bridge connection closed unexpectedly", slog.String("error", err.Error()))
			}
			return
		}
		go h.HandleMessage(ctx, raw, responder)
	}
}
