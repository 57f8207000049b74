// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/memorias-pessoais/memorias-api/internal/adapters/http"
	"github.com/memorias-pessoais/memorias-api/internal/adapters/http/handlers"
	"github.com/memorias-pessoais/memorias-api/internal/adapters/mongodb"
	"github.com/memorias-pessoais/memorias-api/internal/app"
	"github.com/memorias-pessoais/memorias-api/internal/platform/config"
	"github.com/memorias-pessoais/memorias-api/internal/platform/logging"
	"github.com/memorias-pessoais/memorias-api/internal/platform/telemetry"
	"github.com/memorias-pessoais/memorias-api/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Connect to MongoDB and ensure the schema indexes exist
	mongoClient, err := mongodb.Connect(ctx, mongodb.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
		QueryTimeout:   cfg.Mongo.QueryTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("connecting to mongodb: %w", err)
	}

	defer func() {
		if disconnectErr := mongoClient.Disconnect(ctx); disconnectErr != nil {
			logger.Error("mongodb disconnect error", slog.Any("error", disconnectErr))
		}
	}()

	if err := mongoClient.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensuring mongodb indexes: %w", err)
	}

	// 6. Create health registry with the database as a readiness dependency
	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(mongoClient); err != nil {
		return fmt.Errorf("registering mongodb health check: %w", err)
	}

	// 7. Create repositories (outbound adapters)
	categoriaRepo := mongodb.NewCategoriaRepository(mongoClient)
	memoriaRepo := mongodb.NewMemoriaRepository(mongoClient)
	pessoaRepo := mongodb.NewPessoaRepository(mongoClient)
	grupoRepo := mongodb.NewGrupoRepository(mongoClient)

	// 8. Create application services
	categoriaService := app.NewCategoriaService(app.CategoriaServiceConfig{
		Categorias: categoriaRepo,
		Memorias:   memoriaRepo,
		Logger:     logger,
	})
	memoriaService := app.NewMemoriaService(app.MemoriaServiceConfig{
		Memorias:   memoriaRepo,
		Categorias: categoriaRepo,
		Pessoas:    pessoaRepo,
		Logger:     logger,
	})
	pessoaService := app.NewPessoaService(app.PessoaServiceConfig{
		Pessoas:  pessoaRepo,
		Memorias: memoriaRepo,
		Logger:   logger,
	})
	grupoService := app.NewGrupoService(app.GrupoServiceConfig{
		Grupos:   grupoRepo,
		Pessoas:  pessoaRepo,
		Memorias: memoriaRepo,
		Logger:   logger,
	})

	// 9. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)

	// 10. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 11. Setup router with all middleware and routes
	routerCfg := http.RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		HealthHandler: healthHandler,
		Categorias:    handlers.NewCategoriaHandler(categoriaService),
		Memorias:      handlers.NewMemoriaHandler(memoriaService),
		Pessoas:       handlers.NewPessoaHandler(pessoaService),
		Grupos:        handlers.NewGrupoHandler(grupoService),
		Timeout:       http.DefaultRequestTimeout,
	}
	http.SetupRouter(server.Engine(), routerCfg)

	// 12. Start server (non-blocking)
	serverErr := server.Start()

	// 13. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
