// Package scraper extracts keywords and quotes from the quote provider's
// public HTML pages. It is the credential-free path: when no API key is
// configured, these pages are the only upstream source.
//
// Extraction is best-effort by design. The provider's markup is not a
// contract; restructured pages yield zero matches, never an error, and
// callers treat an empty result like a failed fetch.
package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
)

// MaxQuotesPerPage caps extraction from a single keyword page.
const MaxQuotesPerPage = 50

// keywordHrefPrefix is the relative path the keyword index uses for its
// stretched-link anchors.
const keywordHrefPrefix = "../keywords/"

// attributedQuote splits a decoded blockquote of the form `"text" — author`.
// The em dash is the provider's separator; the surrounding quotation marks
// belong to the markup, not the quote, and are stripped.
var attributedQuote = regexp.MustCompile(`^"(.+)"\s*—\s*(.+)$`)

// typographicMarks maps the curly quotation marks the provider emits (via
// named entities) to their straight equivalents.
var typographicMarks = strings.NewReplacer(
	"“", `"`, // &ldquo;
	"”", `"`, // &rdquo;
	"‘", "'", // &lsquo;
	"’", "'", // &rsquo;
)

// ExtractKeywords parses the keyword index page into a deduplicated,
// order-preserving keyword list. It looks for anchors carrying the
// stretched-link class with a relative keywords href. Malformed or
// restructured HTML yields an empty list, not an error.
func ExtractKeywords(html, baseURL string) []domain.Keyword {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	base := strings.TrimSuffix(baseURL, "/")
	seen := make(map[string]bool)

	var keywords []domain.Keyword

	doc.Find("a.stretched-link").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || !strings.HasPrefix(href, keywordHrefPrefix) {
			return
		}

		name := strings.TrimPrefix(href, keywordHrefPrefix)
		name = strings.Trim(name, "/")
		if name == "" || seen[name] {
			return
		}
		seen[name] = true

		keywords = append(keywords, domain.Keyword{
			Name:      name,
			SourceURL: base + "/keywords/" + name,
		})
	})

	return keywords
}

// ExtractQuotes parses a single keyword page into at most MaxQuotesPerPage
// quotes. Each blockquote.blockquote element is entity-decoded and split on
// the `"text" — author` pattern; blocks that don't match become a quote with
// the full decoded text and an "Unknown" author. IDs are positional within
// this result only.
func ExtractQuotes(html, keyword string) []domain.Quote {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var quotes []domain.Quote

	doc.Find("blockquote.blockquote").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		block := typographicMarks.Replace(strings.TrimSpace(sel.Text()))
		if block == "" {
			return true
		}

		text, author := splitQuoteBlock(block)
		quotes = append(quotes, domain.Quote{
			ID:       len(quotes) + 1,
			Text:     text,
			Author:   author,
			Category: keyword,
		})

		return len(quotes) < MaxQuotesPerPage
	})

	return quotes
}

// splitQuoteBlock separates a decoded block into quote text and author.
func splitQuoteBlock(block string) (text, author string) {
	if m := attributedQuote.FindStringSubmatch(block); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}

	return block, domain.UnknownAuthor
}
