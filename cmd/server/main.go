package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"uniassist/internal/config"
	"uniassist/internal/db"
	"uniassist/internal/jobs"
	"uniassist/internal/metrics"
	"uniassist/internal/nlp"
	"uniassist/internal/pipeline"
	"uniassist/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Load the knowledge base (subject vocabulary, mapping, recommendations)
	knowledge, err := config.LoadKnowledge()
	if err != nil {
		log.Fatalf("Failed to load knowledge base: %v", err)
	}

	// Initialize the morphological analyzer for the configured language
	analyzer, err := nlp.NewAnalyzer(cfg.Language)
	if err != nil {
		log.Fatalf("Failed to initialize analyzer: %v", err)
	}
	if ra, ok := analyzer.(*nlp.RussianAnalyzer); ok && len(knowledge.Lexicon) > 0 {
		ra.Extend(knowledge.Lexicon)
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

	// Seed catalog records in development
	if cfg.IsDev() {
		if err := database.SeedDevLiterature(ctx, cfg.Faculty); err != nil {
			log.Printf("Warning: failed to seed literature: %v", err)
		}
	}

	// Initialize metrics
	metrics.Init(database)

	// Wire the query pipeline
	pipe := pipeline.New(database, analyzer, knowledge, cfg.Faculty)

	// Initialize server and routes
	srv := server.New(cfg)
	srv.RegisterRoutes(database, pipe)

	// Start background literature URL checker
	jobCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()
	checker := jobs.NewURLChecker(database, cfg.URLCheckInterval, cfg.URLCheckMaxAge)
	go checker.Start(jobCtx)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancelJobs()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
