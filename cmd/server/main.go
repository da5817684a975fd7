package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/synergysphere/synergysphere-api/internal/config"
	"github.com/synergysphere/synergysphere-api/internal/database"
	"github.com/synergysphere/synergysphere-api/internal/handlers"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	srv := handlers.NewServer(cfg)

	// Periodic workload recalculation
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.WorkloadCron, func() {
		if err := srv.Workloads.RecalculateAll(); err != nil {
			log.Printf("Workload recalculation failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule workload recalculation: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := srv.Engine.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
