package routes

import (
	"net/http"
	"time"

	"carebook/handlers"
	"carebook/middleware"
	"carebook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers read-only availability endpoints. Reads
// require authentication but no schedule-management role: booking staff and
// customer-facing services query availability for any consultant.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/:consultantID/day/:date", hb.ResolveDayHandler)
		api.GET("/:consultantID/slots/:date", hb.DaySlotsHandler)
		api.GET("/:consultantID/availability/:date", hb.DayAvailabilityHandler)
		api.GET("/:consultantID/week/:weekStart", hb.WeekAvailabilityHandler)
	}
}

// RegisterTemplateRoutes registers weekly-template management endpoints.
// Writes are restricted: staff and admins manage any consultant, consultants
// only themselves.
func RegisterTemplateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule/:consultantID/templates")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListTemplatesHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireScheduleAccess())
		protected.POST("", hb.CreateTemplateHandler)
		protected.PUT("/:templateID", hb.UpdateTemplateHandler)
		protected.DELETE("/:templateID", hb.DeactivateTemplateHandler)
		protected.POST("/:templateID/clone", hb.CloneTemplateHandler)
	}
}

// RegisterOverrideRoutes registers date-override management endpoints.
func RegisterOverrideRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule/:consultantID/overrides")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListOverridesHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireScheduleAccess())
		protected.POST("", hb.CreateOverrideHandler)
		protected.PUT("/:overrideID", hb.UpdateOverrideHandler)
		protected.DELETE("/:overrideID", hb.DeleteOverrideHandler)
	}
}

// RegisterAuthRoutes registers the staff token endpoint used by internal
// services to mint schedule-management tokens in development.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/token", func(c *gin.Context) {
			var req struct {
				UserID string `json:"user_id" binding:"required"`
				Role   string `json:"role" binding:"required"`
				Name   string `json:"name"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
				return
			}
			if req.Role != utils.RoleConsultant && req.Role != utils.RoleStaff && req.Role != utils.RoleAdmin {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
				return
			}
			token, err := utils.GenerateToken(req.UserID, req.Role, req.Name, 24*time.Hour)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"token": token})
		})
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Carebook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterTemplateRoutes(r, hb)
	RegisterOverrideRoutes(r, hb)
}
