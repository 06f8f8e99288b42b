package dto

import (
	"time"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
)

// QuoteDTO is the wire representation of a quote.
type QuoteDTO struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// KeywordDTO is the wire representation of a keyword.
type KeywordDTO struct {
	Name      string `json:"name"`
	SourceURL string `json:"sourceUrl,omitempty"`
}

// QuoteListResponse is the envelope returned by the per-keyword endpoint.
// Success stays true even when fallback content is served.
type QuoteListResponse struct {
	Success   bool       `json:"success"`
	Data      []QuoteDTO `json:"data"`
	Keyword   string     `json:"keyword"`
	Source    string     `json:"source"`
	Count     int        `json:"count"`
	Timestamp int64      `json:"timestamp"`
}

// KeywordListResponse is the envelope returned by the keywords endpoint.
type KeywordListResponse struct {
	Success   bool         `json:"success"`
	Data      []KeywordDTO `json:"data"`
	Source    string       `json:"source"`
	Timestamp int64        `json:"timestamp"`
}

// RequestError is the body for parameter validation failures.
// The only non-200 business response this API produces.
type RequestError struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
}

// QuoteFromDomain converts a domain quote to its wire form.
func QuoteFromDomain(q domain.Quote) QuoteDTO {
	return QuoteDTO{
		ID:       q.ID,
		Text:     q.Text,
		Author:   q.Author,
		Category: q.Category,
	}
}

// QuotesFromDomain converts a slice of domain quotes to wire form.
// Always returns a non-nil slice so JSON renders [] rather than null.
func QuotesFromDomain(quotes []domain.Quote) []QuoteDTO {
	out := make([]QuoteDTO, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, QuoteFromDomain(q))
	}

	return out
}

// KeywordsFromDomain converts a slice of domain keywords to wire form.
func KeywordsFromDomain(keywords []domain.Keyword) []KeywordDTO {
	out := make([]KeywordDTO, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, KeywordDTO{Name: k.Name, SourceURL: k.SourceURL})
	}

	return out
}

// NewQuoteListResponse builds the per-keyword response envelope.
func NewQuoteListResponse(quotes []domain.Quote, keyword, source string, now time.Time) QuoteListResponse {
	data := QuotesFromDomain(quotes)

	return QuoteListResponse{
		Success:   true,
		Data:      data,
		Keyword:   keyword,
		Source:    source,
		Count:     len(data),
		Timestamp: now.UnixMilli(),
	}
}

// NewKeywordListResponse builds the keywords response envelope.
func NewKeywordListResponse(keywords []domain.Keyword, source string, now time.Time) KeywordListResponse {
	return KeywordListResponse{
		Success:   true,
		Data:      KeywordsFromDomain(keywords),
		Source:    source,
		Timestamp: now.UnixMilli(),
	}
}

// NewRequestError builds a validation failure body.
func NewRequestError(message string, now time.Time) RequestError {
	return RequestError{
		Success:   false,
		Error:     message,
		Timestamp: now.UnixMilli(),
	}
}
