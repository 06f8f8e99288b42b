// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"
	"time"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
)

// QuoteSource fetches quotes from an upstream provider. Both the official
// API adapter and the HTML scraper implement this, normalized to the same
// domain shape.
type QuoteSource interface {
	// QuotesByKeyword retrieves up to 50 quotes for the given keyword.
	// Returns domain.ErrUnavailable when the provider is unreachable and
	// domain.ErrExtraction when it responded with nothing usable. Both
	// are recoverable; callers fall back to the next tier.
	QuotesByKeyword(ctx context.Context, keyword string) ([]domain.Quote, error)
}

// KeywordSource fetches the list of known keywords from an upstream provider.
type KeywordSource interface {
	// Keywords retrieves the provider's keyword list, deduplicated by
	// name with first-seen order preserved.
	Keywords(ctx context.Context) ([]domain.Keyword, error)
}

// TodaySource is implemented by providers that expose a dedicated
// quote-of-the-day operation. Sources without one (the scraper) simply
// don't implement it; callers derive a daily quote instead.
type TodaySource interface {
	// Today retrieves the provider's quote of the day.
	Today(ctx context.Context) (domain.Quote, error)
}

// Cache defines the contract for caching operations.
// Entries carry their own freshness metadata; expiry is enforced on read.
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns domain.ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with a TTL. A TTL of 0 means no
	// expiration. Set is best-effort: callers must not treat a failed
	// write as a failed operation.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache.
	// Does not return an error if the key does not exist.
	Delete(ctx context.Context, key string) error
}
