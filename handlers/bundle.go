// File: carebook/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability endpoints.
	ResolveDayHandler       gin.HandlerFunc
	DaySlotsHandler         gin.HandlerFunc
	DayAvailabilityHandler  gin.HandlerFunc
	WeekAvailabilityHandler gin.HandlerFunc

	// Template endpoints.
	CreateTemplateHandler     gin.HandlerFunc
	UpdateTemplateHandler     gin.HandlerFunc
	DeactivateTemplateHandler gin.HandlerFunc
	CloneTemplateHandler      gin.HandlerFunc
	ListTemplatesHandler      gin.HandlerFunc

	// Override endpoints.
	CreateOverrideHandler gin.HandlerFunc
	UpdateOverrideHandler gin.HandlerFunc
	DeleteOverrideHandler gin.HandlerFunc
	ListOverridesHandler  gin.HandlerFunc
}
