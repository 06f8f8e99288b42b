package acl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
)

// quoteDTO is the provider's wire format for a single quote.
// Field names follow the ZenQuotes API documentation.
type quoteDTO struct {
	Q string `json:"q"` // quote text
	A string `json:"a"` // author
	I string `json:"i,omitempty"` // author image URL
	C string `json:"c,omitempty"` // character count
	H string `json:"h,omitempty"` // pre-rendered HTML
}

// translateQuote converts a wire record to a domain quote. A missing
// attribution becomes the Unknown placeholder; id is response-local.
func translateQuote(dto quoteDTO, id int, category string) domain.Quote {
	author := dto.A
	if author == "" {
		author = domain.UnknownAuthor
	}

	return domain.Quote{
		ID:       id,
		Text:     dto.Q,
		Author:   author,
		Category: category,
	}
}

// translateQuotes converts a wire response to domain quotes, skipping
// records with no text. IDs are assigned by output position.
func translateQuotes(dtos []quoteDTO, category string) []domain.Quote {
	quotes := make([]domain.Quote, 0, len(dtos))
	for _, dto := range dtos {
		if dto.Q == "" {
			continue
		}

		quotes = append(quotes, translateQuote(dto, len(quotes)+1, category))
	}

	return quotes
}

// decodeResponse reads and decodes a JSON response body, closing it.
func decodeResponse[T any](body io.ReadCloser) (T, error) {
	var result T

	if body == nil {
		return result, fmt.Errorf("response body is nil")
	}
	defer func() { _ = body.Close() }()

	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return result, fmt.Errorf("decoding response: %w", err)
	}

	return result, nil
}
