//go:build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/clients"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/clients/acl"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/platform/config"
)

const testAPIKey = "test-key"

// testAdapterConfig returns a client config suitable for adapter
// integration testing.
func testAdapterConfig(baseURL string) *clients.Config {
	return &clients.Config{
		ServiceName: acl.ServiceName,
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       100 * time.Millisecond,
			HalfOpenLimit: 2,
		},
	}
}

func newAdapter(t *testing.T, baseURL string) *acl.ZenQuotes {
	t.Helper()

	client, err := clients.New(testAdapterConfig(baseURL))
	require.NoError(t, err)

	adapter, err := acl.New(acl.Config{
		Client:     client,
		APIKey:     testAPIKey,
		WebBaseURL: "https://zenquotes.io",
	})
	require.NoError(t, err)

	return adapter
}

// TestZenQuotesAdapter_QuotesByKeyword_Integration verifies the full
// flow of fetching keyword quotes through the adapter.
func TestZenQuotesAdapter_QuotesByKeyword_Integration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Credential travels in the path, keyword in the query
		assert.Equal(t, "/api/quotes/"+testAPIKey, r.URL.Path)
		assert.Equal(t, "courage", r.URL.Query().Get("keyword"))
		assert.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"q": "Fortune favors the bold.", "a": "Virgil"},
			{"q": "He who is brave is free.", "a": "Seneca"},
			{"q": "Unattributed wisdom.", "a": ""}
		]`))
	}))
	defer server.Close()

	adapter := newAdapter(t, server.URL)

	quotes, err := adapter.QuotesByKeyword(context.Background(), "courage")

	require.NoError(t, err)
	require.Len(t, quotes, 3)
	assert.Equal(t, "Fortune favors the bold.", quotes[0].Text)
	assert.Equal(t, "Virgil", quotes[0].Author)
	assert.Equal(t, "courage", quotes[0].Category)
	assert.Equal(t, 1, quotes[0].ID)
	assert.Equal(t, domain.UnknownAuthor, quotes[2].Author)
}

// TestZenQuotesAdapter_Keywords_Integration verifies keyword listing,
// including deduplication and source URL construction.
func TestZenQuotesAdapter_Keywords_Integration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/keywords/"+testAPIKey, r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["love", "courage", "love", ""]`))
	}))
	defer server.Close()

	adapter := newAdapter(t, server.URL)

	keywords, err := adapter.Keywords(context.Background())

	require.NoError(t, err)
	require.Len(t, keywords, 2)
	assert.Equal(t, "love", keywords[0].Name)
	assert.Equal(t, "https://zenquotes.io/keywords/love", keywords[0].SourceURL)
	assert.Equal(t, "courage", keywords[1].Name)
}

// TestZenQuotesAdapter_Today_Integration verifies the quote-of-the-day
// endpoint returns a single quote.
func TestZenQuotesAdapter_Today_Integration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/today/"+testAPIKey, r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"q": "Well begun is half done.", "a": "Aristotle"}]`))
	}))
	defer server.Close()

	adapter := newAdapter(t, server.URL)

	quote, err := adapter.Today(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Well begun is half done.", quote.Text)
	assert.Equal(t, "Aristotle", quote.Author)
}

// TestZenQuotesAdapter_ErrorMapping_NotFound verifies that 404 responses
// surface as domain NotFoundError.
func TestZenQuotesAdapter_ErrorMapping_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	adapter := newAdapter(t, server.URL)

	_, err := adapter.QuotesByKeyword(context.Background(), "nothing")

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err), "expected NotFoundError")
}

// TestZenQuotesAdapter_ErrorMapping_RateLimit verifies that 429
// responses surface as domain UnavailableError.
func TestZenQuotesAdapter_ErrorMapping_RateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	adapter := newAdapter(t, server.URL)

	_, err := adapter.Keywords(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err), "expected UnavailableError")
	assert.Contains(t, err.Error(), "rate limit")
}

// TestZenQuotesAdapter_ErrorMapping_ServiceUnavailable verifies that
// 5xx responses surface as domain UnavailableError.
func TestZenQuotesAdapter_ErrorMapping_ServiceUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`internal server error`))
	}))
	defer server.Close()

	adapter := newAdapter(t, server.URL)

	_, err := adapter.QuotesByKeyword(context.Background(), "anything")

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err), "expected UnavailableError")
}

// TestZenQuotesAdapter_ErrorMapping_CircuitOpen verifies that circuit
// breaker open state surfaces as domain UnavailableError without
// touching the server.
func TestZenQuotesAdapter_ErrorMapping_CircuitOpen(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := testAdapterConfig(server.URL)
	cfg.Circuit.MaxFailures = 2

	client, err := clients.New(cfg)
	require.NoError(t, err)

	adapter, err := acl.New(acl.Config{
		Client:     client,
		APIKey:     testAPIKey,
		WebBaseURL: "https://zenquotes.io",
	})
	require.NoError(t, err)

	// Trip the circuit breaker
	_, _ = adapter.QuotesByKeyword(context.Background(), "one")
	_, _ = adapter.QuotesByKeyword(context.Background(), "two")

	// This call should fail fast with circuit open
	callsBefore := calls
	_, err = adapter.QuotesByKeyword(context.Background(), "three")

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err), "expected UnavailableError")
	assert.Contains(t, err.Error(), "circuit breaker open")
	assert.Equal(t, callsBefore, calls, "no server call when circuit is open")
}

// TestZenQuotesAdapter_EmptyResult verifies that an empty quote array
// surfaces as an extraction error, moving the chain to the next tier.
func TestZenQuotesAdapter_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	adapter := newAdapter(t, server.URL)

	_, err := adapter.QuotesByKeyword(context.Background(), "obscure")

	require.Error(t, err)
	assert.True(t, domain.IsExtraction(err), "expected ExtractionError")
}

// TestZenQuotesAdapter_InputValidation verifies that a blank keyword is
// rejected before any network call.
func TestZenQuotesAdapter_InputValidation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("server should not be called for invalid input")
	}))
	defer server.Close()

	adapter := newAdapter(t, server.URL)

	_, err := adapter.QuotesByKeyword(context.Background(), "")

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err), "expected ValidationError")
}

// TestZenQuotesAdapter_HealthCheck verifies the health probe follows
// the daily endpoint.
func TestZenQuotesAdapter_HealthCheck(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/today/"+testAPIKey, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"q": "ok", "a": "ok"}]`))
	}))
	defer healthy.Close()

	adapter := newAdapter(t, healthy.URL)
	assert.NoError(t, adapter.Check(context.Background()))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	adapter = newAdapter(t, down.URL)
	assert.Error(t, adapter.Check(context.Background()))
}
