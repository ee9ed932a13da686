// File: slotbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"slotbook/config"
	"slotbook/cron"
	"slotbook/database"
	appointmentRepo "slotbook/database/repository/appointment"
	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/routes"
	"slotbook/services/scheduling"
	"slotbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	policy, err := scheduling.NewPolicy(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid scheduling policy: %v", err)
	}

	database.InitDB()
	utils.InitCache()

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// services.
	var cache *scheduling.AvailabilityCache
	if client := utils.GetCacheClient(); client != nil {
		cache = &scheduling.AvailabilityCache{
			Client: client,
			TTL:    time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second,
		}
	}
	schedulingService := scheduling.NewSchedulingService(apptRepo, policy, cache)

	appointmentHandler := handlers.NewAppointmentHandler(schedulingService, logger)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogMiddleware(logger))
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, appointmentHandler)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	if config.AppConfig.RetentionDays > 0 && config.AppConfig.RedisAddr != "" {
		cron.InitRetentionWorker(apptRepo)
	}

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
	database.CloseDB(ctx)

	logger.Sugar().Info("main: server stopped gracefully")
}
