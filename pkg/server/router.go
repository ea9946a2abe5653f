package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires all API routes onto a gin engine.
func SetupRouter(h *Handlers, corsOrigins []string, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(corsMiddleware(corsOrigins))

	router.GET("/health", h.Health)
	router.GET("/signer", h.Signer)
	router.GET("/chains", h.Chains)
	router.POST("/sign", h.Sign)

	swapRoutes := router.Group("/swap")
	{
		swapRoutes.GET("/quote", h.Quote)
		swapRoutes.POST("/build", h.Build)
	}

	return router
}
