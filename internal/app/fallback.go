package app

import (
	"context"
	"log/slog"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
)

// Provider is one tier of the fallback chain: a named fetch over an
// upstream source. An error and an empty result are equivalent, both
// move the chain to the next tier.
type Provider struct {
	// Name labels the tier in responses and logs ("api", "scrape").
	Name string

	// Fetch retrieves quotes for a keyword from this tier.
	Fetch func(ctx context.Context, keyword string) ([]domain.Quote, error)
}

// Chain walks an ordered list of providers until one yields a non-empty
// result, ending at the static dataset. Quotes therefore never returns
// an empty slice and never returns an error, which is what lets the
// HTTP layer promise 200 with content under any upstream failure.
type Chain struct {
	providers []Provider
	limit     int
	logger    *slog.Logger
}

// NewChain creates a fallback chain over the given providers, tried in
// order. Results are capped at limit quotes per fetch.
func NewChain(logger *slog.Logger, limit int, providers ...Provider) *Chain {
	if logger == nil {
		logger = slog.Default()
	}

	return &Chain{
		providers: providers,
		limit:     limit,
		logger:    logger,
	}
}

// Quotes fetches quotes for a keyword, returning the first non-empty
// tier result and the name of the tier that produced it. Tier failures
// are logged, never propagated.
func (c *Chain) Quotes(ctx context.Context, keyword string) ([]domain.Quote, string) {
	for _, p := range c.providers {
		quotes, err := p.Fetch(ctx, keyword)
		if err != nil {
			c.logger.WarnContext(ctx, "quote tier failed",
				slog.String("tier", p.Name),
				slog.String("keyword", keyword),
				slog.Any("error", err),
			)

			continue
		}

		if len(quotes) == 0 {
			c.logger.WarnContext(ctx, "quote tier returned no quotes",
				slog.String("tier", p.Name),
				slog.String("keyword", keyword),
			)

			continue
		}

		if len(quotes) > c.limit {
			quotes = quotes[:c.limit]
		}

		return quotes, p.Name
	}

	return StaticQuotes(keyword, c.limit), SourceFallback
}
