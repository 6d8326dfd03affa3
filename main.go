// File: carebook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carebook/config"
	"carebook/cron"
	"carebook/database"
	appointmentRepo "carebook/database/repository/appointment"
	overrideRepo "carebook/database/repository/override"
	templateRepo "carebook/database/repository/template"
	"carebook/handlers"
	"carebook/middleware"
	"carebook/routes"
	"carebook/services/schedule"
	"carebook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitLockClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	tplRepo := templateRepo.NewMongoTemplateRepo()
	ovRepo := overrideRepo.NewMongoOverrideRepo()
	aptRepo := appointmentRepo.NewMongoAppointmentRepo()

	for _, repo := range []interface{ EnsureIndexes() error }{tplRepo, ovRepo, aptRepo} {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Templates:           tplRepo,
		Overrides:           ovRepo,
		Appointments:        aptRepo,
		Locks:               utils.NewConsultantLock(utils.GetLockClient()),
		DefaultSlotDuration: config.AppConfig.DefaultSlotDuration,
	}
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Availability endpoints.
		ResolveDayHandler:       scheduleHandler.ResolveDayHandler,
		DaySlotsHandler:         scheduleHandler.DaySlotsHandler,
		DayAvailabilityHandler:  scheduleHandler.DayAvailabilityHandler,
		WeekAvailabilityHandler: scheduleHandler.WeekAvailabilityHandler,

		// Template endpoints.
		CreateTemplateHandler:     scheduleHandler.CreateTemplateHandler,
		UpdateTemplateHandler:     scheduleHandler.UpdateTemplateHandler,
		DeactivateTemplateHandler: scheduleHandler.DeactivateTemplateHandler,
		CloneTemplateHandler:      scheduleHandler.CloneTemplateHandler,
		ListTemplatesHandler:      scheduleHandler.ListTemplatesHandler,

		// Override endpoints.
		CreateOverrideHandler: scheduleHandler.CreateOverrideHandler,
		UpdateOverrideHandler: scheduleHandler.UpdateOverrideHandler,
		DeleteOverrideHandler: scheduleHandler.DeleteOverrideHandler,
		ListOverridesHandler:  scheduleHandler.ListOverridesHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for the nightly template-expiry sweep.
	cron.InitScheduleWorker(tplRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
