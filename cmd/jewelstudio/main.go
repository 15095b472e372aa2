// Package main is the entry point for the JewelStudio server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"jewelstudio/internal/ai"
	"jewelstudio/internal/cache"
	"jewelstudio/internal/config"
	"jewelstudio/internal/database"
	"jewelstudio/internal/generate"
	"jewelstudio/internal/handlers"
	"jewelstudio/internal/middleware"
	"jewelstudio/internal/prompt"
	"jewelstudio/internal/router"
	"jewelstudio/internal/storage"
	"jewelstudio/internal/store"
)

func main() {
	// Load configuration from the environment (and .env in development).
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger())

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.Connect(connectCtx, cfg.DSN(), database.Pool{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	cancelConnect()
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed a sample item in development (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for batch results.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyAddr(), cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()
	batches := cache.NewResultCache(valkeyClient, cfg.ResultTTL)

	itemStore := store.NewItemStore(db)
	assetStore := store.NewAssetStore(db)

	// Template overrides live in PostgreSQL; the factory set covers the rest.
	templates := prompt.NewStore(store.NewPromptOverrideStore(db))
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	err = templates.Load(loadCtx)
	cancelLoad()
	if err != nil {
		slog.Error("failed to load prompt templates", "error", err)
		os.Exit(1)
	}

	registry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"gemini": {APIKey: cfg.GeminiKey, Model: cfg.GeminiModel, ModelImage: cfg.GeminiModelImage, BaseURL: cfg.GeminiBaseURL},
		"openai": {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
	})

	// A nil interface keeps the orchestrator's "backend not configured" path.
	var backend generate.Backend
	available := registry.Available()
	sort.Strings(available)
	switch {
	case len(available) == 0:
		slog.Warn("no ai provider has an api key, generation disabled", "provider", cfg.AIProvider)
	case !registry.HasProvider(cfg.AIProvider):
		slog.Warn("selected ai provider has no api key, falling back", "provider", cfg.AIProvider, "fallback", available[0])
		if err := registry.SetActive(available[0]); err != nil {
			slog.Error("failed to select ai provider", "error", err)
			os.Exit(1)
		}
		fallthrough
	default:
		backend = registry
		slog.Info("ai providers initialized",
			"active", registry.ActiveName(),
			"available", available,
			"image_generation", registry.SupportsImageGeneration(),
		)
	}

	orchestrator := generate.New(backend, templates, cfg.MaxConcurrent)

	// S3 storage is optional; saving image assets needs it.
	var objects handlers.ObjectStore
	if cfg.StorageEnabled() {
		storageClient, err := storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		if storageClient != nil {
			objects = storageClient
			slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
		}
	} else {
		slog.Warn("s3 storage not configured, saving image assets disabled")
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	defer limiter.Stop()

	studio := handlers.NewStudio(orchestrator, registry, templates, batches, cfg.MaxUploadBytes())
	catalog := handlers.NewCatalog(itemStore, assetStore, objects)

	r := router.New(studio, catalog, router.Options{
		GenerateTimeout: cfg.RequestTimeout,
		Limiter:         limiter,
		Providers:       handlers.NewProviders(registry),
	})

	// WriteTimeout must outlast the generation timeout so a settled batch
	// can still be written.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 30*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
