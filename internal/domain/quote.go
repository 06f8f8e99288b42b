// Package domain contains core business entities and rules.
package domain

// Quote represents a quotation with its author and the keyword it was
// retrieved under. This is a domain entity - it has no knowledge of
// external systems.
type Quote struct {
	// ID identifies the quote within a single response. It is not
	// globally stable across fetches.
	ID int

	// Text is the quote itself.
	Text string

	// Author is who said or wrote the quote. "Unknown" when the
	// source did not carry an attribution.
	Author string

	// Category is the keyword under which the quote was retrieved.
	Category string
}

// UnknownAuthor is the attribution used when a source block carries no
// recognizable author.
const UnknownAuthor = "Unknown"

// Keyword represents a topical category under which quotes are grouped.
type Keyword struct {
	// Name is the keyword itself, e.g. "motivation".
	Name string

	// SourceURL is the provider page listing quotes for this keyword.
	SourceURL string
}

// KeywordNames flattens a keyword list to its names, preserving order.
func KeywordNames(keywords []Keyword) []string {
	names := make([]string, 0, len(keywords))
	for _, k := range keywords {
		names = append(names, k.Name)
	}

	return names
}

// ContainsKeyword reports whether name appears in the keyword list.
func ContainsKeyword(keywords []Keyword, name string) bool {
	for _, k := range keywords {
		if k.Name == name {
			return true
		}
	}

	return false
}
