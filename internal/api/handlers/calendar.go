package handlers

import (
	"net/http"
	"strconv"

	apperrors "rotation-manager-backend/internal/errors"
	"rotation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CalendarHandler handles HTTP requests for calendar exports
type CalendarHandler struct {
	service *service.CalendarService
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(service *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

func parseWeeksQuery(c *gin.Context) (int, bool) {
	weeksStr := c.Query("weeks")
	if weeksStr == "" {
		return 0, true
	}
	weeks, err := strconv.Atoi(weeksStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weeks parameter"})
		return 0, false
	}
	return weeks, true
}

// GetICal returns the schedule as an iCalendar document
func (h *CalendarHandler) GetICal(c *gin.Context) {
	weeks, ok := parseWeeksQuery(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition", `attachment; filename="rotation.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", h.service.ICal(weeks))
}

// GetEngineerICal returns one engineer's personal calendar
func (h *CalendarHandler) GetEngineerICal(c *gin.Context) {
	weeks, ok := parseWeeksQuery(c)
	if !ok {
		return
	}

	name := c.Param("name")
	out, err := h.service.ICalForEngineer(name, weeks)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", out)
}

// GetCSV returns the schedule as CSV
func (h *CalendarHandler) GetCSV(c *gin.Context) {
	weeks, ok := parseWeeksQuery(c)
	if !ok {
		return
	}

	out, err := h.service.CSV(weeks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="rotation.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
}
