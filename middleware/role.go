package middleware

import (
	"net/http"

	"carebook/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole restricts an endpoint to the listed roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
	}
}

// RequireScheduleAccess allows staff and admins to manage any consultant's
// schedule, while consultants may only manage their own. The consultant ID is
// read from the :consultantID path parameter.
func RequireScheduleAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		if actor.Role == utils.RoleStaff || actor.Role == utils.RoleAdmin {
			c.Next()
			return
		}
		if actor.Role == utils.RoleConsultant && actor.UserID == c.Param("consultantID") {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Consultants may only manage their own schedule"})
	}
}
