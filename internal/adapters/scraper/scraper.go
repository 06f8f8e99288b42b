package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
)

const (
	// serviceName identifies the scraped site in errors and health checks.
	serviceName = "zenquotes-web"

	// defaultTimeout bounds a single page fetch.
	defaultTimeout = 15 * time.Second

	// userAgent is sent on every page request. The provider serves the
	// same markup to browsers; a browser user agent keeps the response
	// consistent with what the extractor expects.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

// Config configures the page scraper.
type Config struct {
	// BaseURL is the provider's web root, e.g. "https://zenquotes.io".
	BaseURL string

	// Timeout bounds each page fetch. Defaults to 15s.
	Timeout time.Duration

	// Logger is an optional structured logger.
	Logger *slog.Logger
}

// Scraper fetches the provider's keyword index and per-keyword pages and
// runs them through the extractor. Implements ports.KeywordSource,
// ports.QuoteSource, and ports.HealthChecker.
type Scraper struct {
	http    *resty.Client
	baseURL string
	logger  *slog.Logger
}

// New creates a scraper for the given provider base URL.
func New(cfg Config) *Scraper {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", userAgent)

	return &Scraper{
		http:    client,
		baseURL: cfg.BaseURL,
		logger:  logger.With(slog.String("component", "scraper")),
	}
}

// Keywords fetches and extracts the provider's keyword index page.
// Implements ports.KeywordSource.
func (s *Scraper) Keywords(ctx context.Context) ([]domain.Keyword, error) {
	html, err := s.fetch(ctx, "/keywords")
	if err != nil {
		return nil, err
	}

	keywords := ExtractKeywords(html, s.baseURL)
	if len(keywords) == 0 {
		return nil, domain.NewExtractionError("keyword index", "no stretched-link anchors matched")
	}

	s.logger.DebugContext(ctx, "extracted keywords", slog.Int("count", len(keywords)))

	return keywords, nil
}

// QuotesByKeyword fetches and extracts a single keyword page.
// Implements ports.QuoteSource.
func (s *Scraper) QuotesByKeyword(ctx context.Context, keyword string) ([]domain.Quote, error) {
	if keyword == "" {
		return nil, domain.NewValidationError("keyword", "is required")
	}

	html, err := s.fetch(ctx, "/keywords/"+url.PathEscape(keyword))
	if err != nil {
		return nil, err
	}

	quotes := ExtractQuotes(html, keyword)
	if len(quotes) == 0 {
		return nil, domain.NewExtractionError("keyword page", "no blockquote blocks matched")
	}

	s.logger.DebugContext(ctx, "extracted quotes",
		slog.String("keyword", keyword),
		slog.Int("count", len(quotes)),
	)

	return quotes, nil
}

// fetch retrieves a page body, mapping transport failures and non-2xx
// statuses to domain errors.
func (s *Scraper) fetch(ctx context.Context, path string) (string, error) {
	resp, err := s.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return "", domain.NewUnavailableError(serviceName, err.Error())
	}

	if !resp.IsSuccess() {
		return "", domain.NewUnavailableError(serviceName, fmt.Sprintf("HTTP %d", resp.StatusCode()))
	}

	return resp.String(), nil
}

// Name returns the health check name for the scraped site.
// Implements ports.HealthChecker.
func (s *Scraper) Name() string {
	return serviceName
}

// Check verifies the keyword index page is reachable.
// Implements ports.HealthChecker.
func (s *Scraper) Check(ctx context.Context) error {
	resp, err := s.http.R().SetContext(ctx).Get("/keywords")
	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("keyword index returned status %d", resp.StatusCode())
	}

	return nil
}
