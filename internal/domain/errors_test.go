package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "with id",
			err:      NewNotFoundError("keyword", "motivation"),
			expected: `keyword with id "motivation" not found`,
		},
		{
			name:     "without id",
			err:      NewNotFoundError("keyword", ""),
			expected: "keyword not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrNotFound))
			assert.True(t, IsNotFound(tt.err))
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("keyword", "is required")

	assert.Equal(t, "validation failed for keyword: is required", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, IsValidation(err))

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "keyword", validationErr.Field)
}

func TestUnavailableError(t *testing.T) {
	err := NewUnavailableError("zenquotes", "connection refused")

	assert.Equal(t, `service "zenquotes" unavailable: connection refused`, err.Error())
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.True(t, IsUnavailable(err))

	bare := NewUnavailableError("zenquotes", "")
	assert.Equal(t, `service "zenquotes" unavailable`, bare.Error())
}

func TestExtractionError(t *testing.T) {
	err := NewExtractionError("keyword page", "no matching blocks")

	assert.Equal(t, "extracting from keyword page: no matching blocks", err.Error())
	assert.True(t, errors.Is(err, ErrExtraction))
	assert.True(t, IsExtraction(err))
}

func TestErrorChecks_WrappedErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"wrapped not found", fmt.Errorf("outer: %w", NewNotFoundError("quote", "1")), IsNotFound},
		{"wrapped unavailable", fmt.Errorf("outer: %w", NewUnavailableError("api", "timeout")), IsUnavailable},
		{"wrapped extraction", fmt.Errorf("outer: %w", NewExtractionError("html", "empty")), IsExtraction},
		{"wrapped validation", fmt.Errorf("outer: %w", NewValidationError("f", "m")), IsValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
		})
	}
}

func TestErrorChecks_Mismatches(t *testing.T) {
	plain := errors.New("plain")

	assert.False(t, IsNotFound(plain))
	assert.False(t, IsValidation(plain))
	assert.False(t, IsUnavailable(plain))
	assert.False(t, IsExtraction(plain))
	assert.False(t, IsNotFound(nil))
}

func TestKeywordHelpers(t *testing.T) {
	keywords := []Keyword{
		{Name: "love", SourceURL: "https://zenquotes.io/keywords/love"},
		{Name: "hope", SourceURL: "https://zenquotes.io/keywords/hope"},
	}

	assert.Equal(t, []string{"love", "hope"}, KeywordNames(keywords))
	assert.True(t, ContainsKeyword(keywords, "hope"))
	assert.False(t, ContainsKeyword(keywords, "wisdom"))
	assert.Empty(t, KeywordNames(nil))
}
