package app

import (
	"context"
	"time"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
)

type fakeQuoteSource struct {
	quotes map[string][]domain.Quote
	err    error
	calls  int
}

func (f *fakeQuoteSource) QuotesByKeyword(_ context.Context, keyword string) ([]domain.Quote, error) {
	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	return f.quotes[keyword], nil
}

type fakeKeywordSource struct {
	keywords []domain.Keyword
	err      error
	calls    int
}

func (f *fakeKeywordSource) Keywords(_ context.Context) ([]domain.Keyword, error) {
	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	return f.keywords, nil
}

type fakeTodaySource struct {
	quote domain.Quote
	err   error
	calls int
}

func (f *fakeTodaySource) Today(_ context.Context) (domain.Quote, error) {
	f.calls++

	if f.err != nil {
		return domain.Quote{}, f.err
	}

	return f.quote, nil
}

type failingCache struct {
	getErr error
	setErr error
}

func (f *failingCache) Get(_ context.Context, _ string) ([]byte, error) {
	return nil, f.getErr
}

func (f *failingCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return f.setErr
}

func (f *failingCache) Delete(_ context.Context, _ string) error {
	return nil
}
