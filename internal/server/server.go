package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/config"
	"screening-backend/internal/screening"
	"screening-backend/internal/services/health"
	"screening-backend/internal/shared/server/middleware"
)

// NewEngine builds the gin engine with middleware and routes registered.
func NewEngine(cfg config.Config, handler *screening.Handler, healthSvc *health.Service) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.Logging(),
		gin.Recovery(),
	)

	registerRoutes(engine, handler, healthSvc)
	return engine
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
