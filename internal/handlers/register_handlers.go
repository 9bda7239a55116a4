package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tijarati/tijarati_host/internal/bridge"
	portssvc "github.com/tijarati/tijarati_host/internal/core/ports/services"
	"github.com/tijarati/tijarati_host/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	bridgeHandler *bridge.Handler,
	version string,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// The bridge channel lives outside the API group; it upgrades to a
	// websocket and speaks the envelope protocol from then on.
	registerBridgeRoutes(r, bridgeHandler, originChecker(cfg))

	setupAPIRoutes(r, services, version)
}

// setupAPIRoutes configures the /api group and delegates to specific entity
// route registrations.
func setupAPIRoutes(r *gin.Engine, services *portssvc.ServiceContainer, version string) {
	api := r.Group("/api")

	registerStatusRoutes(api, services.Summary, version)
	registerTransactionRoutes(api, services.Transaction)
	registerPartnerRoutes(api, services.Partner)
}

// originChecker admits bridge upgrades from the configured origins; "*"
// admits every origin, which suits an embedded UI host serving localhost.
func originChecker(cfg *config.Config) func(*http.Request) bool {
	allowAll := false
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = struct{}{}
	}

	return func(r *http.Request) bool {
		if allowAll {
			return true
		}
		origin := r.Header.Get("Origin")
		if origin == "" {
			// Non-browser clients send no Origin header.
			return true
		}
		_, ok := allowed[origin]
		return ok
	}
}
