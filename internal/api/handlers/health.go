package handlers

import (
	"net/http"
	"time"

	"rotation-manager-backend/internal/rotation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db    *gorm.DB
	cycle *rotation.Cycle
}

// NewHealthHandler creates a new health handler. A nil db reports the
// database service as disabled rather than unhealthy.
func NewHealthHandler(db *gorm.DB, cycle *rotation.Cycle) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cycle: cycle,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
	Rotation  RotationStats     `json:"rotation"`
}

// RotationStats summarizes the loaded rotation cycle
type RotationStats struct {
	TeamSize   int `json:"team_size"`
	CycleWeeks int `json:"cycle_weeks"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health returns the health status of the application
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  make(map[string]string),
		Rotation: RotationStats{
			TeamSize:   len(h.cycle.Engineers()),
			CycleWeeks: h.cycle.Len(),
		},
	}

	if h.db == nil {
		response.Services["database"] = "disabled"
	} else if sqlDB, err := h.db.DB(); err != nil {
		response.Status = "unhealthy"
		response.Services["database"] = "error: " + err.Error()
	} else if err := sqlDB.Ping(); err != nil {
		response.Status = "unhealthy"
		response.Services["database"] = "error: " + err.Error()
	} else {
		response.Services["database"] = "healthy"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Live returns the liveness status of the application
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
