package utils

import (
	"errors"
	"net/http"

	"carebook/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Kind    string `json:"kind,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	logger := GetLogger()
	logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// JSONDomainError maps a scheduling domain error onto the matching HTTP status.
// Foreign errors fall through to a 500 without leaking internals.
func JSONDomainError(c *gin.Context, err error) {
	var se *models.Error
	if !errors.As(err, &se) {
		logger := GetLogger()
		logger.Error("unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal Server Error"})
		return
	}

	status := http.StatusInternalServerError
	switch se.Kind {
	case models.ErrKindFormat:
		status = http.StatusBadRequest
	case models.ErrKindValidation:
		status = http.StatusUnprocessableEntity
	case models.ErrKindNotFound:
		status = http.StatusNotFound
	case models.ErrKindConflict:
		status = http.StatusConflict
	}
	c.JSON(status, ErrorResponse{Kind: string(se.Kind), Field: se.Field, Message: se.Message})
}
