package handlers

import (
	"net/http"

	"carebook/middleware"
	"carebook/models"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// overrideRequest is the write payload for date overrides.
type overrideRequest struct {
	Date            string                 `json:"date" binding:"required"`
	WorkingInterval models.WorkingInterval `json:"working_interval"`
	Reason          string                 `json:"reason"`
}

// CreateOverrideHandler stores a date-specific override for the consultant in the path.
func (h *ScheduleHandler) CreateOverrideHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req overrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Error("Invalid override payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	ov := &models.Override{
		ConsultantID:    c.Param("consultantID"),
		Date:            req.Date,
		WorkingInterval: req.WorkingInterval,
		Reason:          req.Reason,
		CreatedBy: models.CreatedBy{
			UserID: actor.UserID,
			Role:   actor.Role,
			Name:   actor.Name,
		},
	}

	created, err := h.Service.CreateOverride(c.Request.Context(), ov)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Schedule override created successfully",
		"override": created,
	})
}

// UpdateOverrideHandler replaces an override's mutable fields.
func (h *ScheduleHandler) UpdateOverrideHandler(c *gin.Context) {
	var req overrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	ov := &models.Override{
		ID:              c.Param("overrideID"),
		Date:            req.Date,
		WorkingInterval: req.WorkingInterval,
		Reason:          req.Reason,
	}

	updated, err := h.Service.UpdateOverride(c.Request.Context(), ov)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Schedule override updated successfully",
		"override": updated,
	})
}

// DeleteOverrideHandler soft-deletes an override so the weekly template
// resumes for that date.
func (h *ScheduleHandler) DeleteOverrideHandler(c *gin.Context) {
	if err := h.Service.DeleteOverride(c.Request.Context(), c.Param("overrideID")); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule override removed"})
}

// ListOverridesHandler returns the consultant's overrides, optionally bounded
// by ?from= and ?to= dates.
func (h *ScheduleHandler) ListOverridesHandler(c *gin.Context) {
	overrides, err := h.Service.ListOverrides(c.Request.Context(), c.Param("consultantID"), c.Query("from"), c.Query("to"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overrides": overrides})
}
