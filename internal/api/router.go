/*
Package api - Shift Planning HTTP API Handlers

==============================================================================
FILE: internal/api/router.go
==============================================================================

DESCRIPTION:
    Central routing configuration for the shift planning API. Sets up the
    health endpoints and the schedule generation endpoint.

DEVELOPER GUIDELINES:
    OK to modify: Add new route groups, new handlers
    CAUTION: Changing existing route paths (breaks frontend)
    Follow RESTful conventions for new endpoints

ROUTE STRUCTURE:
    /api/v1
    └── /schedules/generate (POST)
*/
package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/caretech/shiftplan/internal/config"
	"github.com/caretech/shiftplan/internal/services"
)

// Router sets up all API routes
type Router struct {
	db        *gorm.DB
	appConfig *config.AppConfig
}

// NewRouter creates a new router
func NewRouter(db *gorm.DB, appConfig *config.AppConfig) *Router {
	return &Router{
		db:        db,
		appConfig: appConfig,
	}
}

// Setup configures all routes
func (r *Router) Setup(routerGroup *gin.RouterGroup) {
	if r.appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	RegisterHealthRoutes(routerGroup, r.db)

	v1 := routerGroup.Group("/api/v1")
	{
		scheduleService := services.NewScheduleService(r.db, r.appConfig)
		scheduleHandler := NewScheduleHandler(scheduleService)
		scheduleHandler.RegisterRoutes(v1)
	}
}
