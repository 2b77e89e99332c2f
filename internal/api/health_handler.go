/*
Package api - Shift Planning HTTP API Handlers

==============================================================================
FILE: internal/api/health_handler.go
==============================================================================

DESCRIPTION:
    Handles health check endpoints for monitoring and container orchestration.
    Provides liveness, readiness, and general health status.

DEVELOPER GUIDELINES:
    OK to modify: Add more health checks
    CAUTION: ReadyCheck database ping
    DO NOT modify: Response format (breaks monitoring)

ENDPOINTS:
    GET /health - General health status
    GET /ready  - Database connectivity check
    GET /live   - Process liveness check
*/
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// RegisterHealthRoutes wires the health endpoints onto routerGroup.
func RegisterHealthRoutes(routerGroup *gin.RouterGroup, db *gorm.DB) {
	h := NewHealthHandler(db)
	routerGroup.GET("/health", h.HealthCheck)
	routerGroup.GET("/ready", h.ReadyCheck)
	routerGroup.GET("/live", h.LivenessCheck)
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
		"service":   "shiftplan-backend",
	})
}

func (h *HealthHandler) ReadyCheck(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "not ready",
			"database": "unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"database": "available",
	})
}

func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "live",
	})
}
