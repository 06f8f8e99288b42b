package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/cache"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/platform/clock"
)

func quotesFor(keywords ...string) map[string][]domain.Quote {
	out := make(map[string][]domain.Quote, len(keywords))
	for _, kw := range keywords {
		out[kw] = []domain.Quote{
			{ID: 7, Text: "quote about " + kw, Author: "Author", Category: kw},
			{ID: 8, Text: "another about " + kw, Author: "Author", Category: kw},
		}
	}

	return out
}

func newQuoteService(t *testing.T, quoteSrc *fakeQuoteSource, keywordSrc *fakeKeywordSource, today *fakeTodaySource) *QuoteService {
	t.Helper()

	clk := clock.NewFake(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	keywords := NewKeywordService(KeywordServiceConfig{
		Source:      keywordSrc,
		SourceLabel: SourceScrape,
		Cache:       cache.NewMemory(clk),
		Clock:       clk,
		Logger:      discardLogger(),
	})

	chain := NewChain(discardLogger(), MaxQuotesPerKeyword,
		Provider{Name: SourceScrape, Fetch: quoteSrc.QuotesByKeyword},
	)

	cfg := QuoteServiceConfig{
		Chain:    chain,
		Keywords: keywords,
		Clock:    clk,
		Logger:   discardLogger(),
	}
	if today != nil {
		cfg.Today = today
	}

	return NewQuoteService(cfg)
}

func TestQuotesByKeyword_EmptyKeywordIsValidationError(t *testing.T) {
	svc := newQuoteService(t, &fakeQuoteSource{}, &fakeKeywordSource{}, nil)

	_, _, err := svc.QuotesByKeyword(context.Background(), "", 0)

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestQuotesByKeyword_RelabelsResults(t *testing.T) {
	svc := newQuoteService(t, &fakeQuoteSource{quotes: quotesFor("hope")}, &fakeKeywordSource{}, nil)

	quotes, source, err := svc.QuotesByKeyword(context.Background(), "hope", 0)

	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, SourceScrape, source)

	for i, q := range quotes {
		assert.Equal(t, i+1, q.ID)
		assert.Equal(t, "hope", q.Category)
	}
}

func TestQuotesByKeyword_HonorsLimit(t *testing.T) {
	many := make([]domain.Quote, 40)
	for i := range many {
		many[i] = domain.Quote{ID: i, Text: "q", Author: "a", Category: "life"}
	}

	src := &fakeQuoteSource{quotes: map[string][]domain.Quote{"life": many}}
	svc := newQuoteService(t, src, &fakeKeywordSource{}, nil)

	quotes, _, err := svc.QuotesByKeyword(context.Background(), "life", DefaultQuoteCount)

	require.NoError(t, err)
	assert.Len(t, quotes, DefaultQuoteCount)
}

func TestQuotesByKeyword_FailingUpstreamStillReturnsQuotes(t *testing.T) {
	src := &fakeQuoteSource{err: errors.New("always down")}
	svc := newQuoteService(t, src, &fakeKeywordSource{}, nil)

	quotes, source, err := svc.QuotesByKeyword(context.Background(), "success", 0)

	require.NoError(t, err)
	assert.NotEmpty(t, quotes)
	assert.Equal(t, SourceFallback, source)
}

func TestRandomQuotes_OneQuotePerKeyword(t *testing.T) {
	keywordSrc := &fakeKeywordSource{keywords: []domain.Keyword{
		{Name: "alpha"}, {Name: "beta"}, {Name: "gamma"}, {Name: "delta"},
	}}
	quoteSrc := &fakeQuoteSource{quotes: quotesFor("alpha", "beta", "gamma", "delta")}
	svc := newQuoteService(t, quoteSrc, keywordSrc, nil)

	quotes := svc.RandomQuotes(context.Background(), 3, "")

	require.Len(t, quotes, 3)

	seen := make(map[string]bool)
	for i, q := range quotes {
		assert.Equal(t, i+1, q.ID)
		assert.False(t, seen[q.Category], "keyword %q selected twice", q.Category)
		seen[q.Category] = true
	}
}

func TestRandomQuotes_LastSelectedComesFirst(t *testing.T) {
	keywordSrc := &fakeKeywordSource{keywords: []domain.Keyword{
		{Name: "alpha"}, {Name: "beta"}, {Name: "gamma"}, {Name: "delta"},
	}}
	quoteSrc := &fakeQuoteSource{quotes: quotesFor("alpha", "beta", "gamma", "delta")}
	svc := newQuoteService(t, quoteSrc, keywordSrc, nil)

	quotes := svc.RandomQuotes(context.Background(), 2, "gamma")

	require.Len(t, quotes, 2)
	assert.Equal(t, "gamma", quotes[0].Category)
}

func TestRandomQuotes_UnknownLastSelectedIsIgnored(t *testing.T) {
	keywordSrc := &fakeKeywordSource{keywords: []domain.Keyword{
		{Name: "alpha"}, {Name: "beta"},
	}}
	quoteSrc := &fakeQuoteSource{quotes: quotesFor("alpha", "beta")}
	svc := newQuoteService(t, quoteSrc, keywordSrc, nil)

	quotes := svc.RandomQuotes(context.Background(), 2, "retired-keyword")

	require.Len(t, quotes, 2)
	for _, q := range quotes {
		assert.NotEqual(t, "retired-keyword", q.Category)
	}
}

func TestRandomQuotes_FailingUpstreamStillReturnsQuotes(t *testing.T) {
	svc := newQuoteService(t,
		&fakeQuoteSource{err: errors.New("always down")},
		&fakeKeywordSource{err: errors.New("always down")},
		nil,
	)

	quotes := svc.RandomQuotes(context.Background(), 3, "")

	assert.NotEmpty(t, quotes)
}

func TestQuoteOfTheDay_UsesTodaySource(t *testing.T) {
	today := &fakeTodaySource{quote: domain.Quote{Text: "seize the day", Author: "Horace"}}
	svc := newQuoteService(t, &fakeQuoteSource{}, &fakeKeywordSource{}, today)

	quote, source := svc.QuoteOfTheDay(context.Background())

	assert.Equal(t, "seize the day", quote.Text)
	assert.Equal(t, "daily", quote.Category)
	assert.Equal(t, SourceAPI, source)
}

func TestQuoteOfTheDay_TodayFailureFallsBackToChain(t *testing.T) {
	today := &fakeTodaySource{err: errors.New("api down")}
	svc := newQuoteService(t, &fakeQuoteSource{err: errors.New("scrape down")}, &fakeKeywordSource{}, today)

	quote, source := svc.QuoteOfTheDay(context.Background())

	assert.NotEmpty(t, quote.Text)
	assert.Equal(t, "daily", quote.Category)
	assert.Equal(t, SourceFallback, source)
}

func TestQuoteOfTheDay_WithoutTodaySource(t *testing.T) {
	rotated := rotationKeywords[time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).YearDay()%len(rotationKeywords)]
	quoteSrc := &fakeQuoteSource{quotes: quotesFor(rotationKeywords...)}
	svc := newQuoteService(t, quoteSrc, &fakeKeywordSource{}, nil)

	quote, source := svc.QuoteOfTheDay(context.Background())

	assert.Equal(t, "quote about "+rotated, quote.Text)
	assert.Equal(t, "daily", quote.Category)
	assert.Equal(t, SourceScrape, source)
}

func TestQODLine(t *testing.T) {
	line := QODLine(domain.Quote{Text: "Stay hungry", Author: "Steve Jobs"})

	assert.Equal(t, `"Stay hungry" - Steve Jobs`, line)
}

func TestDayStamp(t *testing.T) {
	stamp := DayStamp(time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC))

	assert.Equal(t, "Sat Jun 1 2024", stamp)

	// Same calendar day, different time of day.
	assert.Equal(t, stamp, DayStamp(time.Date(2024, 6, 1, 0, 0, 1, 0, time.UTC)))
}

func TestSelectKeywords(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e"}

	t.Run("pins last selected", func(t *testing.T) {
		picked := selectKeywords(names, 3, "d")

		require.Len(t, picked, 3)
		assert.Equal(t, "d", picked[0])
	})

	t.Run("caps at available keywords", func(t *testing.T) {
		picked := selectKeywords([]string{"a"}, 3, "")

		assert.Equal(t, []string{"a"}, picked)
	})

	t.Run("no duplicates", func(t *testing.T) {
		picked := selectKeywords(names, 5, "c")

		seen := make(map[string]bool)
		for _, name := range picked {
			assert.False(t, seen[name])
			seen[name] = true
		}
	})

	t.Run("empty pool", func(t *testing.T) {
		assert.Empty(t, selectKeywords(nil, 3, "x"))
	})
}
