package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tijarati/tijarati_host/internal/core/ports/services"
	"github.com/tijarati/tijarati_host/internal/middleware"
)

// statusHandler serves host status and dashboard summary.
type statusHandler struct {
	summaryService portssvc.SummarySvcFacade
	version        string
}

func newStatusHandler(ss portssvc.SummarySvcFacade, version string) *statusHandler {
	return &statusHandler{summaryService: ss, version: version}
}

func registerStatusRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade, version string) {
	h := newStatusHandler(summaryService, version)

	rg.GET("/status", h.status)
	rg.GET("/summary", h.summary)
}

func (h *statusHandler) status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

func (h *statusHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.summaryService.Summary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
