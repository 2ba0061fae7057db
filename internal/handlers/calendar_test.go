package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhinsching/agora-signage/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupCalendarRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/calendar/month", GetMonthGridHandler)
	return r
}

// Ошибки конфигурации отклоняются на границе вызова, до чтения событий
// и построения сетки.
func TestGetMonthGridHandlerNegativeMaxVisible(t *testing.T) {
	r := setupCalendarRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/calendar/month?max_visible=-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp response.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CONFIG_OUT_OF_RANGE", resp.Code)
}

func TestGetMonthGridHandlerBadWeekStart(t *testing.T) {
	r := setupCalendarRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/calendar/month?week_start=wednesday", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp response.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CONFIG_OUT_OF_RANGE", resp.Code)
}

func TestGetMonthGridHandlerBadMonth(t *testing.T) {
	r := setupCalendarRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/calendar/month?month=13", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp response.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
}
