package app

import (
	"strings"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
)

// Source labels reported alongside quote and keyword responses so the
// front-end can tell live data from substituted data.
const (
	SourceAPI      = "api"
	SourceScrape   = "scrape"
	SourceFallback = "fallback"
)

// staticQuotes is the last fallback tier. Every public operation can
// serve from it, so it must never be empty.
var staticQuotes = []domain.Quote{
	{ID: 1, Text: "Success is the sum of small efforts, repeated day in and day out.", Author: "Robert Collier", Category: "success"},
	{ID: 2, Text: "Don't wait for the perfect moment, take the moment and make it perfect.", Author: "Zoey Sayward", Category: "action"},
	{ID: 3, Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs", Category: "work"},
	{ID: 4, Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt", Category: "dreams"},
	{ID: 5, Text: "It is not about being perfect, it is about being better than yesterday.", Author: domain.UnknownAuthor, Category: "growth"},
	{ID: 6, Text: "Motivation is what gets you started. Habit is what keeps you going.", Author: "Jim Ryun", Category: "habits"},
	{ID: 7, Text: "Every day is a new opportunity to change your life.", Author: domain.UnknownAuthor, Category: "opportunity"},
	{ID: 8, Text: "Failure is simply the opportunity to begin again, this time more intelligently.", Author: "Henry Ford", Category: "failure"},
	{ID: 9, Text: "Believe in yourself and anything is possible.", Author: domain.UnknownAuthor, Category: "confidence"},
	{ID: 10, Text: "Discipline is the bridge between goals and accomplishment.", Author: "Jim Rohn", Category: "discipline"},
	{ID: 11, Text: "Don't let what you cannot do interfere with what you can do.", Author: "John Wooden", Category: "action"},
	{ID: 12, Text: "The only limit to our realization of tomorrow is our doubts of today.", Author: "Franklin D. Roosevelt", Category: "limits"},
	{ID: 13, Text: "Perseverance is the road to success.", Author: "Charlie Chaplin", Category: "perseverance"},
	{ID: 14, Text: "Your only limit is you.", Author: domain.UnknownAuthor, Category: "limitations"},
	{ID: 15, Text: "Life is 10% what happens to you and 90% how you react to it.", Author: "Charles R. Swindoll", Category: "attitude"},
	{ID: 16, Text: "The best time to plant a tree was 20 years ago. The second best time is now.", Author: "Chinese Proverb", Category: "action"},
	{ID: 17, Text: "Don't wish it were easier, wish you were better.", Author: "Jim Rohn", Category: "growth"},
	{ID: 18, Text: "The difference between ordinary and extraordinary is that little extra.", Author: "Jimmy Johnson", Category: "excellence"},
}

// staticKeywordNames mirrors the provider's documented keyword set and
// is served when neither the API nor the scraper can produce one.
var staticKeywordNames = []string{
	"love", "happiness", "success", "motivation", "inspiration",
	"wisdom", "life", "friendship", "courage", "hope",
	"dreams", "change", "leadership", "creativity", "peace",
	"strength", "gratitude", "mindfulness", "growth", "perseverance",
	"kindness", "faith", "adventure", "learning", "freedom",
}

// rotationKeywords is the short list used where a single keyword must be
// chosen without any upstream data, such as the daily quote rotation.
var rotationKeywords = []string{
	"love", "success", "life", "happiness", "motivation",
	"wisdom", "courage", "hope", "dreams", "change",
}

// StaticQuotes returns up to n fallback quotes for a keyword. Quotes
// whose category or text contains the keyword are preferred; when
// nothing matches, the first n entries are relabeled with the requested
// category so the caller still receives a shaped, non-empty result.
// An empty keyword returns the whole dataset (capped at n).
func StaticQuotes(keyword string, n int) []domain.Quote {
	if n <= 0 || n > len(staticQuotes) {
		n = len(staticQuotes)
	}

	if keyword == "" {
		return relabel(staticQuotes[:n], "")
	}

	needle := strings.ToLower(keyword)

	matched := make([]domain.Quote, 0, n)
	for _, q := range staticQuotes {
		if strings.Contains(strings.ToLower(q.Category), needle) ||
			strings.Contains(strings.ToLower(q.Text), needle) {
			matched = append(matched, q)
			if len(matched) == n {
				break
			}
		}
	}

	if len(matched) > 0 {
		return relabel(matched, "")
	}

	return relabel(staticQuotes[:n], keyword)
}

// StaticKeywords returns the fallback keyword list as domain records.
// Fallback keywords carry no source URL.
func StaticKeywords() []domain.Keyword {
	keywords := make([]domain.Keyword, 0, len(staticKeywordNames))
	for _, name := range staticKeywordNames {
		keywords = append(keywords, domain.Keyword{Name: name})
	}

	return keywords
}

// relabel copies quotes, reassigning response-local IDs and, when
// category is non-empty, overwriting each quote's category with it.
func relabel(quotes []domain.Quote, category string) []domain.Quote {
	out := make([]domain.Quote, len(quotes))
	for i, q := range quotes {
		q.ID = i + 1
		if category != "" {
			q.Category = category
		}
		out[i] = q
	}

	return out
}
