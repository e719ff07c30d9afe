package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fundsight/Fund-Analytics-Backend/internal/api"
	"github.com/fundsight/Fund-Analytics-Backend/internal/config"
	"github.com/fundsight/Fund-Analytics-Backend/internal/database"
	"github.com/fundsight/Fund-Analytics-Backend/internal/fundfeed"
	"github.com/fundsight/Fund-Analytics-Backend/internal/llm"
	"github.com/fundsight/Fund-Analytics-Backend/internal/provider"
	"github.com/fundsight/Fund-Analytics-Backend/internal/repository"
	"github.com/fundsight/Fund-Analytics-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Fund feed and provider. The collection is loaded lazily by the
	// first caller that requests fund data.
	feedClient := fundfeed.NewFeedClient(cfg.Feed.CSVURL, cfg.Feed.Timeout)
	fundProvider := provider.New(feedClient)

	// Research backend. A missing API key degrades research to its
	// disabled state instead of failing startup.
	var llmClient llm.Client = llm.Disabled{}
	if cfg.Research.APIKey == "" {
		log.Println("GEMINI_API_KEY not set, research runs in disabled mode")
	} else {
		gemini, err := llm.NewGemini(context.Background(), cfg.Research.APIKey, cfg.Research.Model)
		if err != nil {
			log.Printf("Failed to initialize research backend, running disabled: %v", err)
		} else {
			llmClient = gemini
		}
	}

	// Create repositories and services
	datasetRepo := repository.NewDatasetRepository(db)

	systemService := service.NewSystemService(db, fundProvider)
	fundService := service.NewFundService(fundProvider)
	researchService := service.NewResearchService(llmClient)
	uploadService, err := service.NewUploadService(datasetRepo, cfg.Upload.EncryptionKey)
	if err != nil {
		log.Fatalf("Failed to create upload service: %v", err)
	}
	dispatcher := service.NewDispatcher(fundService, researchService, cfg.Mock.FundsLatency, cfg.Mock.SearchLatency)

	// Background retry: when a caller-triggered ingestion has failed,
	// keep retrying on a schedule until the cache is populated. The
	// single-flight guard in the provider makes this safe alongside
	// caller-driven loads.
	scheduler := cron.New()
	if cfg.Feed.RetrySchedule != "" {
		_, err := scheduler.AddFunc(cfg.Feed.RetrySchedule, func() {
			if fundProvider.Loaded() || fundProvider.LastError() == nil {
				return
			}
			log.Println("Retrying fund feed ingestion")
			fundProvider.Load(context.Background())
		})
		if err != nil {
			log.Fatalf("Invalid ingest retry schedule %q: %v", cfg.Feed.RetrySchedule, err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Create router
	router := api.NewRouter(systemService, fundService, researchService, uploadService, dispatcher, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
