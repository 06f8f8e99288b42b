package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/platform/clock"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/ports"
)

const (
	// MaxQuotesPerKeyword caps how many quotes a single keyword request
	// returns, matching the provider's page size.
	MaxQuotesPerKeyword = 50

	// DefaultQuoteCount is the page size for filtered quote requests.
	DefaultQuoteCount = 10

	// RandomKeywordCount is how many keywords the landing selection
	// draws from.
	RandomKeywordCount = 3
)

// QuoteService orchestrates quote-related use cases over the fallback
// chain. Its operations never fail on upstream errors, only on invalid
// input.
type QuoteService struct {
	chain    *Chain
	keywords *KeywordService
	today    ports.TodaySource
	clock    clock.Clock
	logger   *slog.Logger
}

// QuoteServiceConfig contains dependencies for the quote service.
type QuoteServiceConfig struct {
	Chain    *Chain
	Keywords *KeywordService

	// Today is the provider's dedicated quote-of-the-day operation.
	// Nil when the configured source has none (the scraper); a daily
	// keyword rotation is used instead.
	Today ports.TodaySource

	Clock  clock.Clock
	Logger *slog.Logger
}

// NewQuoteService creates a quote service with the provided dependencies.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Clock == nil {
		cfg.Clock = clock.System{}
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &QuoteService{
		chain:    cfg.Chain,
		keywords: cfg.Keywords,
		today:    cfg.Today,
		clock:    cfg.Clock,
		logger:   cfg.Logger,
	}
}

// QuotesByKeyword returns up to limit quotes for a keyword together
// with the source label they came from. Selection within a result set
// is deterministic first-N. Only an empty keyword produces an error.
func (s *QuoteService) QuotesByKeyword(ctx context.Context, keyword string, limit int) ([]domain.Quote, string, error) {
	if keyword == "" {
		return nil, "", domain.NewValidationError("keyword", "keyword is required")
	}

	if limit <= 0 || limit > MaxQuotesPerKeyword {
		limit = MaxQuotesPerKeyword
	}

	quotes, source := s.chain.Quotes(ctx, keyword)
	if len(quotes) > limit {
		quotes = quotes[:limit]
	}

	return relabel(quotes, keyword), source, nil
}

// RandomQuotes returns one quote from each of count randomly selected
// keywords, fetched concurrently. lastSelected, when present in the
// current keyword set, takes the first slot; the remaining slots are a
// shuffled prefix of the rest.
func (s *QuoteService) RandomQuotes(ctx context.Context, count int, lastSelected string) []domain.Quote {
	if count <= 0 {
		count = RandomKeywordCount
	}

	available, _ := s.keywords.Keywords(ctx)

	selected := selectKeywords(domain.KeywordNames(available), count, lastSelected)
	if len(selected) == 0 {
		return StaticQuotes("", count)
	}

	fns := make([]func(context.Context) (domain.Quote, error), 0, len(selected))
	for _, keyword := range selected {
		fns = append(fns, func(ctx context.Context) (domain.Quote, error) {
			quotes, _ := s.chain.Quotes(ctx, keyword)

			return quotes[0], nil
		})
	}

	quotes, err := Parallel(ctx, fns...)
	if err != nil {
		// Only context cancellation can get here; the chain itself
		// never fails.
		s.logger.WarnContext(ctx, "random quote fetch interrupted",
			slog.Any("error", err),
		)

		return StaticQuotes("", count)
	}

	return relabel(quotes, "")
}

// QuoteOfTheDay returns today's quote and its source label. The
// provider's daily endpoint is used when available; otherwise one
// keyword from a fixed rotation is resolved through the chain. The
// category is always "daily".
func (s *QuoteService) QuoteOfTheDay(ctx context.Context) (domain.Quote, string) {
	if s.today != nil {
		quote, err := s.today.Today(ctx)
		if err == nil {
			quote.Category = "daily"

			return quote, SourceAPI
		}

		s.logger.WarnContext(ctx, "daily quote endpoint failed",
			slog.Any("error", err),
		)
	}

	keyword := rotationKeywords[s.clock.Now().YearDay()%len(rotationKeywords)]

	quotes, source := s.chain.Quotes(ctx, keyword)
	quote := quotes[0]
	quote.Category = "daily"

	return quote, source
}

// QODLine renders a quote in the plain-text daily format.
func QODLine(q domain.Quote) string {
	return fmt.Sprintf(`"%s" - %s`, q.Text, q.Author)
}

// DayStamp renders the calendar date used to scope the daily quote
// cookie cache.
func DayStamp(t time.Time) string {
	return t.Format("Mon Jan 2 2006")
}

// selectKeywords picks count keywords from names. last, when present,
// is pinned to the first slot; the rest are shuffled and a prefix taken.
func selectKeywords(names []string, count int, last string) []string {
	pool := slices.Clone(names)
	picked := make([]string, 0, count)

	if last != "" && slices.Contains(pool, last) {
		picked = append(picked, last)
		pool = slices.DeleteFunc(pool, func(name string) bool { return name == last })
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	for _, name := range pool {
		if len(picked) == count {
			break
		}

		picked = append(picked, name)
	}

	return picked
}
