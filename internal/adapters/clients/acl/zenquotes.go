package acl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/clients"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
)

// ServiceName identifies the provider in logs, errors, and health checks.
const ServiceName = "zenquotes-api"

// Config configures the ZenQuotes API adapter.
type Config struct {
	// Client is the instrumented HTTP client, pointed at the API base
	// URL (e.g. "https://zenquotes.io").
	Client *clients.Client

	// APIKey is the credential embedded in every request path.
	APIKey string

	// WebBaseURL is the provider's public site, used to build keyword
	// source URLs (e.g. "https://zenquotes.io").
	WebBaseURL string

	// Logger is an optional logger. If nil, a default logger is used.
	Logger *slog.Logger
}

// ZenQuotes adapts the provider's official JSON API to the application
// ports. All operations make a single attempt; failures surface as
// recoverable domain errors for the fallback chain.
type ZenQuotes struct {
	client  *clients.Client
	apiKey  string
	webBase string
	logger  *slog.Logger
}

// New creates a ZenQuotes API adapter.
func New(cfg Config) (*ZenQuotes, error) {
	if cfg.Client == nil {
		return nil, errors.New("client is required")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("api key is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ZenQuotes{
		client:  cfg.Client,
		apiKey:  cfg.APIKey,
		webBase: strings.TrimSuffix(cfg.WebBaseURL, "/"),
		logger:  logger.With(slog.String("component", "acl.ZenQuotes")),
	}, nil
}

// QuotesByKeyword retrieves up to 50 quotes for a keyword from
// GET /api/quotes/{key}?keyword={keyword}.
func (z *ZenQuotes) QuotesByKeyword(ctx context.Context, keyword string) ([]domain.Quote, error) {
	if keyword == "" {
		return nil, domain.NewValidationError("keyword", "keyword is required")
	}

	path := fmt.Sprintf("/api/quotes/%s?keyword=%s", url.PathEscape(z.apiKey), url.QueryEscape(keyword))

	dtos, err := z.fetch(ctx, path, "get quotes")
	if err != nil {
		return nil, err
	}

	quotes := translateQuotes(dtos, keyword)
	if len(quotes) == 0 {
		return nil, domain.NewExtractionError(ServiceName, "no quotes for keyword "+keyword)
	}

	return quotes, nil
}

// Keywords retrieves the keyword list from GET /api/keywords/{key}.
// The API returns a flat array of names; source URLs point at the
// provider's public keyword pages.
func (z *ZenQuotes) Keywords(ctx context.Context) ([]domain.Keyword, error) {
	path := "/api/keywords/" + url.PathEscape(z.apiKey)

	body, err := z.get(ctx, path, "get keywords")
	if err != nil {
		return nil, err
	}

	names, err := decodeResponse[[]string](body)
	if err != nil {
		return nil, domain.NewExtractionError(ServiceName, err.Error())
	}

	seen := make(map[string]bool, len(names))
	keywords := make([]domain.Keyword, 0, len(names))

	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		keywords = append(keywords, domain.Keyword{
			Name:      name,
			SourceURL: z.webBase + "/keywords/" + name,
		})
	}

	if len(keywords) == 0 {
		return nil, domain.NewExtractionError(ServiceName, "empty keyword list")
	}

	return keywords, nil
}

// Today retrieves the provider's quote of the day from
// GET /api/today/{key}. The response is a single-element array.
func (z *ZenQuotes) Today(ctx context.Context) (domain.Quote, error) {
	path := "/api/today/" + url.PathEscape(z.apiKey)

	dtos, err := z.fetch(ctx, path, "get quote of the day")
	if err != nil {
		return domain.Quote{}, err
	}

	quotes := translateQuotes(dtos, "daily")
	if len(quotes) == 0 {
		return domain.Quote{}, domain.NewExtractionError(ServiceName, "no quote of the day received")
	}

	return quotes[0], nil
}

// Name implements ports.HealthChecker.
func (z *ZenQuotes) Name() string {
	return ServiceName
}

// Check implements ports.HealthChecker by probing the daily endpoint.
func (z *ZenQuotes) Check(ctx context.Context) error {
	_, err := z.Today(ctx)

	return err
}

// fetch retrieves and decodes a quote array response.
func (z *ZenQuotes) fetch(ctx context.Context, path, operation string) ([]quoteDTO, error) {
	body, err := z.get(ctx, path, operation)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeResponse[[]quoteDTO](body)
	if err != nil {
		return nil, domain.NewExtractionError(ServiceName, err.Error())
	}

	return dtos, nil
}

// get executes a GET and maps failures to domain errors. The returned
// body is open; callers must close it (decodeResponse does).
func (z *ZenQuotes) get(ctx context.Context, path, operation string) (io.ReadCloser, error) {
	resp, err := z.client.Get(ctx, path)
	if err != nil {
		return nil, MapHTTPError(nil, err, operation)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, operation)
	}

	return resp.Body, nil
}
