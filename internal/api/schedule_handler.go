/*
Package api - Shift Planning HTTP API Handlers

==============================================================================
FILE: internal/api/schedule_handler.go
==============================================================================

DESCRIPTION:
    Handles schedule generation. Accepts a full month's roster/task/
    requirement/absence/holiday data in one request body and returns both
    the solved schedule and the path of the generated workbook.

ENDPOINTS:
    POST /schedules/generate - Solve one month and export its workbook
*/
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/caretech/shiftplan/internal/errors"
	"github.com/caretech/shiftplan/internal/dtos"
	"github.com/caretech/shiftplan/internal/services"
)

// ScheduleHandler handles schedule-generation endpoints.
type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// RegisterRoutes registers schedule routes.
func (h *ScheduleHandler) RegisterRoutes(router *gin.RouterGroup) {
	schedules := router.Group("/schedules")
	{
		schedules.POST("/generate", h.GenerateSchedule)
	}
}

// GenerateSchedule solves a month's shift-assignment problem and exports it.
// @Summary Generate a monthly shift schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body dtos.GenerateScheduleRequest true "Schedule generation request"
// @Success 200 {object} dtos.GenerateScheduleResponse
// @Failure 400 {object} map[string]string
// @Router /schedules/generate [post]
func (h *ScheduleHandler) GenerateSchedule(c *gin.Context) {
	var req dtos.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	result, path, err := h.scheduleService.Generate(c.Request.Context(), req)
	if err != nil {
		if appErrors.Is(err, appErrors.ErrNoSolution) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "no_solution",
				"message": appErrors.ErrNoSolution.Message,
			})
			return
		}
		c.JSON(appErrors.GetHTTPStatus(err), gin.H{
			"error":   appErrors.GetErrorCode(err),
			"message": appErrors.GetErrorMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, services.ToResponse(result, path))
}
