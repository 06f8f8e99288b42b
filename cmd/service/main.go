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

	"github.com/joho/godotenv"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/cache"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/clients"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/clients/acl"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/cookie"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/http"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/http/handlers"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/scraper"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/app"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/platform/clock"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/platform/config"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/platform/logging"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/platform/telemetry"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/ports"
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

	// 1. Load .env if present (local development convenience; the
	// provider credential usually lives there)
	_ = godotenv.Load()

	// 2. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 3. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 4. Initialize logging
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
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.Bool("api_credential", cfg.ZenQuotes.HasCredential()),
	)

	// 5. Initialize telemetry (noop if disabled)
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

	// 6. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 7. The scraper is always available: it is the keyword and quote
	// source without a credential, and the middle fallback tier with one
	pageSource := scraper.New(scraper.Config{
		BaseURL: cfg.ZenQuotes.WebBaseURL,
		Timeout: cfg.ZenQuotes.PageTimeout,
		Logger:  logger,
	})

	if err := healthRegistry.Register(pageSource); err != nil {
		return fmt.Errorf("registering scraper health check: %w", err)
	}

	// 8. The official API adapter exists only when a real credential is
	// configured; the placeholder value counts as absent
	var apiSource *acl.ZenQuotes

	if cfg.ZenQuotes.HasCredential() {
		httpClient, clientErr := clients.New(&clients.Config{
			BaseURL:     cfg.ZenQuotes.APIBaseURL,
			ServiceName: acl.ServiceName,
			Timeout:     cfg.ZenQuotes.QuoteTimeout,
			Retry:       cfg.Client.Retry,
			Circuit:     cfg.Client.CircuitBreaker,
			Logger:      logger,
		})
		if clientErr != nil {
			return fmt.Errorf("creating HTTP client: %w", clientErr)
		}

		apiSource, err = acl.New(acl.Config{
			Client:     httpClient,
			APIKey:     cfg.ZenQuotes.APIKey,
			WebBaseURL: cfg.ZenQuotes.WebBaseURL,
			Logger:     logger,
		})
		if err != nil {
			return fmt.Errorf("creating API adapter: %w", err)
		}

		if err := healthRegistry.Register(apiSource); err != nil {
			return fmt.Errorf("registering API health check: %w", err)
		}
	}

	// 9. Application layer
	clk := clock.System{}
	keywordCache := cache.NewMemory(clk)

	keywordCfg := app.KeywordServiceConfig{
		Source:      pageSource,
		SourceLabel: app.SourceScrape,
		Cache:       keywordCache,
		Clock:       clk,
		TTL:         cfg.Cache.KeywordTTL,
		Logger:      logger,
	}
	if apiSource != nil {
		keywordCfg.Source = apiSource
		keywordCfg.SourceLabel = app.SourceAPI
	}
	keywordService := app.NewKeywordService(keywordCfg)

	tiers := make([]app.Provider, 0, 2)
	if apiSource != nil {
		tiers = append(tiers, app.Provider{Name: app.SourceAPI, Fetch: apiSource.QuotesByKeyword})
	}
	tiers = append(tiers, app.Provider{Name: app.SourceScrape, Fetch: pageSource.QuotesByKeyword})

	chain := app.NewChain(logger, app.MaxQuotesPerKeyword, tiers...)

	quoteCfg := app.QuoteServiceConfig{
		Chain:    chain,
		Keywords: keywordService,
		Clock:    clk,
		Logger:   logger,
	}
	if apiSource != nil {
		quoteCfg.Today = apiSource
	}
	quoteService := app.NewQuoteService(quoteCfg)

	// 10. Handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	keywordsHandler := handlers.NewKeywordsHandler(keywordService, clk)
	quotesHandler := handlers.NewQuotesHandler(quoteService, cookie.NewSelectionStore(), clk)
	qodHandler := handlers.NewQODHandler(quoteService, cookie.NewQODStore(), clk)

	// 11. HTTP server and router
	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		HealthHandler: healthHandler,
		Keywords:      keywordsHandler,
		Quotes:        quotesHandler,
		QOD:           qodHandler,
		Timeout:       http.DefaultRequestTimeout,
	})

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
