package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "rotation-manager-backend/internal/errors"
	"rotation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles HTTP requests for schedule queries
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(service *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

func parseWeek(c *gin.Context) (int, bool) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week number"})
		return 0, false
	}
	return week, true
}

// GetWeek returns the rendered schedule for one week
func (h *ScheduleHandler) GetWeek(c *gin.Context) {
	week, ok := parseWeek(c)
	if !ok {
		return
	}

	view, err := h.service.Week(week)
	if err != nil {
		if errors.Is(err, apperrors.ErrWeekOutOfHorizon) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetPattern returns the base or effective day-off pattern for a week
func (h *ScheduleHandler) GetPattern(c *gin.Context) {
	week, ok := parseWeek(c)
	if !ok {
		return
	}

	layer := service.PatternLayer(c.DefaultQuery("layer", string(service.PatternLayerEffective)))

	pattern, err := h.service.Pattern(week, layer)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrWeekOutOfHorizon):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, pattern)
}

// GetOnCall returns the on-call engineer for a week
func (h *ScheduleHandler) GetOnCall(c *gin.Context) {
	week, ok := parseWeek(c)
	if !ok {
		return
	}

	oncall, err := h.service.OnCall(week)
	if err != nil {
		if errors.Is(err, apperrors.ErrWeekOutOfHorizon) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, oncall)
}

// GetWeekForDate resolves a calendar date to its schedule week
func (h *ScheduleHandler) GetWeekForDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required"})
		return
	}

	week, err := h.service.WeekForDate(date)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "week": week})
}

// GetEngineers returns the roster
func (h *ScheduleHandler) GetEngineers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"engineers": h.service.Engineers()})
}

// GetFairness returns the cycle-wide day-off distribution
func (h *ScheduleHandler) GetFairness(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Fairness())
}
