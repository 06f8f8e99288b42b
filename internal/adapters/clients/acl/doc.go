// Package acl implements the anti-corruption layer for the ZenQuotes
// official API.
//
// The ACL pattern keeps the provider's wire format out of the domain:
// the API's terse {q, a, i, c, h} records are translated to domain
// types at this boundary, and provider failures are mapped to domain
// errors. Nothing above this package knows what the provider's JSON
// looks like.
//
// The adapter implements ports.QuoteSource, ports.KeywordSource and
// ports.TodaySource, making it interchangeable with the HTML scraper
// from the application layer's point of view. It is only wired when an
// API credential is configured.
package acl
