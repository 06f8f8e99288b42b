// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/platform/clock"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/ports"
)

// keywordCacheKey is the fixed cache identifier for the keyword list.
const keywordCacheKey = "zenquotes:keywords"

// DefaultKeywordTTL is how long a fetched keyword list stays fresh.
const DefaultKeywordTTL = 24 * time.Hour

// cachedKeywords is the stored cache entry. Freshness is decided from
// the embedded timestamp, not from the cache adapter's own expiry, so
// the window survives adapter swaps.
type cachedKeywords struct {
	Data      []domain.Keyword `json:"data"`
	Source    string           `json:"source"`
	Timestamp int64            `json:"timestamp"`
}

// KeywordService serves the keyword list with a time-boxed cache in
// front of the configured upstream source. It never fails: when the
// source and the cache are both unusable it serves the static list.
type KeywordService struct {
	source ports.KeywordSource
	label  string
	cache  ports.Cache
	clock  clock.Clock
	ttl    time.Duration
	logger *slog.Logger
}

// KeywordServiceConfig contains dependencies for the keyword service.
type KeywordServiceConfig struct {
	Source ports.KeywordSource

	// SourceLabel names the configured source in responses, "api" or
	// "scrape". Defaults to "scrape".
	SourceLabel string

	Cache  ports.Cache
	Clock  clock.Clock
	TTL    time.Duration
	Logger *slog.Logger
}

// NewKeywordService creates a keyword service. A nil clock defaults to
// the system clock; a zero TTL defaults to 24 hours.
func NewKeywordService(cfg KeywordServiceConfig) *KeywordService {
	if cfg.SourceLabel == "" {
		cfg.SourceLabel = SourceScrape
	}

	if cfg.Clock == nil {
		cfg.Clock = clock.System{}
	}

	if cfg.TTL <= 0 {
		cfg.TTL = DefaultKeywordTTL
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &KeywordService{
		source: cfg.Source,
		label:  cfg.SourceLabel,
		cache:  cfg.Cache,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
		logger: cfg.Logger,
	}
}

// Keywords returns the keyword list and the source label it came from.
// Cache entries younger than the TTL are served without refetching.
// A miss or stale entry triggers an upstream fetch; fetch failures fall
// back to the static list and are not cached, so the next call retries.
// Concurrent refreshes may race; last write wins, which is harmless for
// an idempotent recomputation.
func (s *KeywordService) Keywords(ctx context.Context) ([]domain.Keyword, string) {
	if cached, source, ok := s.fromCache(ctx); ok {
		return cached, source
	}

	keywords, err := s.source.Keywords(ctx)
	if err != nil || len(keywords) == 0 {
		s.logger.WarnContext(ctx, "keyword fetch failed, serving static list",
			slog.Any("error", err),
		)

		return StaticKeywords(), SourceFallback
	}

	s.store(ctx, keywords)

	return keywords, s.label
}

func (s *KeywordService) fromCache(ctx context.Context) ([]domain.Keyword, string, bool) {
	raw, err := s.cache.Get(ctx, keywordCacheKey)
	if err != nil {
		return nil, "", false
	}

	var entry cachedKeywords
	if err := json.Unmarshal(raw, &entry); err != nil {
		s.logger.WarnContext(ctx, "discarding unreadable keyword cache entry",
			slog.Any("error", err),
		)

		return nil, "", false
	}

	written := time.UnixMilli(entry.Timestamp)
	if s.clock.Now().Sub(written) >= s.ttl || len(entry.Data) == 0 {
		return nil, "", false
	}

	return entry.Data, entry.Source, true
}

// store writes the fetched list to the cache. Best-effort: a failed
// write is logged and the fresh data is still served.
func (s *KeywordService) store(ctx context.Context, keywords []domain.Keyword) {
	entry := cachedKeywords{
		Data:      keywords,
		Source:    s.label,
		Timestamp: s.clock.Now().UnixMilli(),
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to encode keyword cache entry",
			slog.Any("error", err),
		)

		return
	}

	if err := s.cache.Set(ctx, keywordCacheKey, raw, s.ttl); err != nil {
		s.logger.WarnContext(ctx, "failed to cache keyword list",
			slog.Any("error", err),
		)
	}
}
