package handlers

import (
	"net/http"
	"strconv"

	"carebook/services/schedule"
	"carebook/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves availability, template and override endpoints.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// ResolveDayHandler returns the effective working-hours definition for one
// consultant-date, after override-over-template precedence.
func (h *ScheduleHandler) ResolveDayHandler(c *gin.Context) {
	consultantID := c.Param("consultantID")
	date := c.Param("date")

	resolved, err := h.Service.ResolveDay(c.Request.Context(), consultantID, date)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// DaySlotsHandler returns the slot sequence for one consultant-date. An
// optional ?duration= query overrides the resolved slot duration.
func (h *ScheduleHandler) DaySlotsHandler(c *gin.Context) {
	consultantID := c.Param("consultantID")
	date := c.Param("date")

	duration := 0
	if raw := c.Query("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be an integer number of minutes"})
			return
		}
		duration = parsed
	}

	slots, err := h.Service.DaySlots(c.Request.Context(), consultantID, date, duration)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// DayAvailabilityHandler returns the full availability picture for one
// consultant-date, including booked appointments.
func (h *ScheduleHandler) DayAvailabilityHandler(c *gin.Context) {
	consultantID := c.Param("consultantID")
	date := c.Param("date")

	availability, err := h.Service.DayAvailability(c.Request.Context(), consultantID, date, 0)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}

// WeekAvailabilityHandler returns seven days of availability starting at the
// :weekStart date.
func (h *ScheduleHandler) WeekAvailabilityHandler(c *gin.Context) {
	consultantID := c.Param("consultantID")
	weekStart := c.Param("weekStart")

	week, err := h.Service.WeekAvailability(c.Request.Context(), consultantID, weekStart)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}
