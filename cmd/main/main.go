package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"dynamic/catalogs/internal/config"
	"dynamic/catalogs/internal/container"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting Dynamic Catalogs addon...")

	// Load configuration using viper
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Info("Configuration loaded successfully")

	// Initialize container with all dependencies
	app, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Run the application
	if err := app.Run(ctx); err != nil {
		log.Errorf("Application exited with error: %v", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		log.Warnf("Cleanup failed: %v", err)
	}

	log.Info("Application finished successfully")
}
