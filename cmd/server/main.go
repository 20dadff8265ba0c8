package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"leadsearch/internal/config"
	"leadsearch/internal/db"
	"leadsearch/internal/jobs"
	"leadsearch/internal/metrics"
	"leadsearch/internal/search"
	"leadsearch/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	if cfg.IsDev() {
		if err := database.SeedDevLeads(ctx); err != nil {
			log.Printf("Warning: failed to seed dev leads: %v", err)
		}
	}

	// Register the agent search collector
	metrics.Init(database)

	svc, err := search.New(database, cfg.PageSize, slog.Default())
	if err != nil {
		log.Fatalf("Failed to create search service: %v", err)
	}

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database, svc); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Audit log retention
	if cfg.LogRetention > 0 {
		pruner := jobs.NewLogPruner(database, time.Hour, cfg.LogRetention)
		go pruner.Start(ctx)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
