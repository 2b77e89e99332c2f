package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGenerateScheduleRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewScheduleHandler(nil)
	router := gin.New()
	router.POST("/schedules/generate", handler.GenerateSchedule)

	req := httptest.NewRequest(http.MethodPost, "/schedules/generate", bytes.NewBufferString(`{not-json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateScheduleRejectsMissingRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewScheduleHandler(nil)
	router := gin.New()
	router.POST("/schedules/generate", handler.GenerateSchedule)

	// Missing "staff" and "tasks", both required with min=1.
	body := `{"year": 2026, "month": 8}`
	req := httptest.NewRequest(http.MethodPost, "/schedules/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
