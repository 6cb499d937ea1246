package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-tracker/internal/config"
	"inventory-tracker/internal/database"
	"inventory-tracker/internal/handler"
	"inventory-tracker/internal/repository"
	"inventory-tracker/internal/router"
	"inventory-tracker/internal/seed"
	"inventory-tracker/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting inventory-tracker server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Apply schema
	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	locationRepo := repository.NewLocationRepository(pool, logger)
	inventoryRepo := repository.NewInventoryRepository(pool, logger)

	// Initialize services
	inventoryService := service.NewInventoryService(productRepo, locationRepo, inventoryRepo, logger)

	// Seed the location catalogue
	if err := seedLocations(ctx, cfg.Seed, inventoryService, logger); err != nil {
		return fmt.Errorf("failed to seed locations: %w", err)
	}

	// Initialize HTTP handlers
	renderer, err := handler.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	inventoryHandler := handler.NewInventoryHandler(inventoryService, renderer, logger)

	// Initialize router
	mux := router.New(inventoryHandler, cfg.CORS.AllowedOrigins, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// seedLocations registers the configured location lists. An S3 loader that
// cannot be initialised is skipped with a warning so local files still load.
func seedLocations(ctx context.Context, cfg config.SeedConfig, adder seed.LocationAdder, logger zerolog.Logger) error {
	var sources []seed.Source

	fileLoader := seed.NewFileLoader(logger)
	for _, file := range cfg.Files {
		sources = append(sources, seed.Source{Loader: fileLoader, Name: file})
	}

	if cfg.S3Enabled {
		s3Loader, err := seed.NewS3Loader(ctx, cfg.Bucket, cfg.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, seeding from local files only")
		} else {
			for _, key := range cfg.Keys {
				sources = append(sources, seed.Source{Loader: s3Loader, Name: key})
			}
		}
	}

	if len(sources) == 0 {
		logger.Debug().Msg("no location seed sources configured")
		return nil
	}

	_, err := seed.NewSeeder(sources, adder, logger).Run(ctx)
	return err
}
