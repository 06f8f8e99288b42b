package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/http/handlers"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/http/middleware"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/platform/config"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests. Generous
// enough to cover a 15s scrape attempt plus fallback work.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// Keywords handles the keyword listing endpoint.
	Keywords *handlers.KeywordsHandler

	// Quotes handles the quote listing endpoints.
	Quotes *handlers.QuotesHandler

	// QOD handles the quote-of-the-day endpoint.
	QOD *handlers.QODHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline (applied on the API group)
//
// Route groups:
//   - /-/ (internal): Health endpoints and metrics
//   - /api/ (public): Quote endpoints
//   - /qod: plain-text alias for /api/qod
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Apply global middleware in order
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	// Wrong method on a known route is 405, not 404
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "method not allowed")
	})

	// Register health endpoints (no timeout for probes)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
		engine.GET("/metrics", gin.WrapH(handlers.MetricsHandler()))
	}

	// API routes share a request deadline
	api := engine.Group("/api")
	if cfg.Timeout > 0 {
		api.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	api.GET("/keywords", cfg.Keywords.List)
	api.GET("/keyword/:keyword", cfg.Quotes.ByKeyword)
	api.GET("/quotes", cfg.Quotes.List)
	api.GET("/qod", cfg.QOD.Get)

	// Plain-text alias used by terminal clients
	engine.GET("/qod", cfg.QOD.Get)
}

// SetupMinimalRouter sets up a minimal router with just health endpoints.
// Useful for testing or lightweight deployments.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}
