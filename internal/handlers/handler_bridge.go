package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/tijarati/tijarati_host/internal/bridge"
	"github.com/tijarati/tijarati_host/internal/middleware"
)

// bridgeHandler upgrades HTTP requests to the websocket bridge channel.
type bridgeHandler struct {
	bridge   *bridge.Handler
	upgrader websocket.Upgrader
}

func newBridgeHandler(b *bridge.Handler, checkOrigin func(*http.Request) bool) *bridgeHandler {
	return &bridgeHandler{
		bridge: b,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin,
		},
	}
}

func registerBridgeRoutes(r *gin.Engine, b *bridge.Handler, checkOrigin func(*http.Request) bool) {
	h := newBridgeHandler(b, checkOrigin)
	r.GET("/bridge", h.serve)
}

func (h *bridgeHandler) serve(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Bridge upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	logger.Info("Bridge connection established")
	h.bridge.ServeConn(c.Request.Context(), conn)
	logger.Info("Bridge connection closed")
}
