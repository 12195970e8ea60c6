package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/screening"
	"screening-backend/internal/services/health"
	"screening-backend/internal/shared/metrics"
	"screening-backend/internal/shared/server/middleware"
)

func registerRoutes(r *gin.Engine, handler *screening.Handler, healthSvc *health.Service) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, healthSvc.Status())
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.Use(middleware.Auth())

	handler.RegisterRoutes(api)
}
