package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"portfolio/internal/api/middleware"
	"portfolio/internal/config"
	"portfolio/internal/metrics"
)

// NewRouter builds the Gin engine with the shared middleware chain, the
// health and metrics endpoints, and the uniform 404 fallback.
func NewRouter(cfg *config.Config, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.CorrelationIDMiddleware(),
		middleware.SlogLoggerMiddleware(logger),
		metrics.GinMiddleware(),
	)

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.API.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Correlation-ID"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	router.NoRoute(func(c *gin.Context) {
		NotFound(c, "Route not found")
	})

	return router
}
