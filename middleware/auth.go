package middleware

import (
	"net/http"
	"strings"

	"carebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token and stores the acting user in
// the context for the role and ownership checks downstream.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		actor, err := utils.ActorFromToken(tokenString)
		if err != nil {
			utils.GetLogger().Warn("Rejected token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("actor", actor)
		c.Next()
	}
}

// ActorFromContext returns the authenticated actor set by JWTAuthMiddleware.
func ActorFromContext(c *gin.Context) (utils.Actor, bool) {
	value, exists := c.Get("actor")
	if !exists {
		return utils.Actor{}, false
	}
	actor, ok := value.(utils.Actor)
	return actor, ok
}
