package handlers

import (
	"net/http"

	"carebook/middleware"
	"carebook/models"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// templateRequest is the write payload for weekly templates.
type templateRequest struct {
	EffectiveFrom       string             `json:"effective_from" binding:"required"`
	EffectiveTo         string             `json:"effective_to"`
	WorkingDays         models.WorkingDays `json:"working_days"`
	DefaultSlotDuration int                `json:"default_slot_duration"`
	Notes               string             `json:"notes"`
}

// CreateTemplateHandler stores a new weekly template for the consultant in the path.
func (h *ScheduleHandler) CreateTemplateHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Error("Invalid template payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	tpl := &models.WeeklyTemplate{
		ConsultantID:        c.Param("consultantID"),
		EffectiveFrom:       req.EffectiveFrom,
		EffectiveTo:         req.EffectiveTo,
		WorkingDays:         req.WorkingDays,
		DefaultSlotDuration: req.DefaultSlotDuration,
		Notes:               req.Notes,
		CreatedBy: models.CreatedBy{
			UserID: actor.UserID,
			Role:   actor.Role,
			Name:   actor.Name,
		},
	}

	created, err := h.Service.CreateTemplate(c.Request.Context(), tpl)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Weekly schedule created successfully",
		"template": created,
	})
}

// UpdateTemplateHandler replaces a template's mutable fields.
func (h *ScheduleHandler) UpdateTemplateHandler(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	tpl := &models.WeeklyTemplate{
		ID:                  c.Param("templateID"),
		EffectiveFrom:       req.EffectiveFrom,
		EffectiveTo:         req.EffectiveTo,
		WorkingDays:         req.WorkingDays,
		DefaultSlotDuration: req.DefaultSlotDuration,
		Notes:               req.Notes,
	}

	updated, err := h.Service.UpdateTemplate(c.Request.Context(), tpl)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Weekly schedule updated successfully",
		"template": updated,
	})
}

// DeactivateTemplateHandler soft-deletes a template.
func (h *ScheduleHandler) DeactivateTemplateHandler(c *gin.Context) {
	if err := h.Service.DeactivateTemplate(c.Request.Context(), c.Param("templateID")); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Weekly schedule deactivated"})
}

// CloneTemplateHandler copies an existing template onto a new effective range.
func (h *ScheduleHandler) CloneTemplateHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req struct {
		EffectiveFrom string `json:"effective_from" binding:"required"`
		EffectiveTo   string `json:"effective_to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	createdBy := models.CreatedBy{UserID: actor.UserID, Role: actor.Role, Name: actor.Name}
	clone, err := h.Service.CloneTemplate(c.Request.Context(), c.Param("templateID"), req.EffectiveFrom, req.EffectiveTo, createdBy)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Weekly schedule copied successfully",
		"template": clone,
	})
}

// ListTemplatesHandler returns the consultant's active templates.
func (h *ScheduleHandler) ListTemplatesHandler(c *gin.Context) {
	templates, err := h.Service.ListTemplates(c.Request.Context(), c.Param("consultantID"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}
