// Package cookie persists small pieces of per-visitor state in HTTP
// cookies: the most recently viewed keyword and the quote-of-the-day
// cache. Cookies are advisory state; every read has a sensible answer
// when they are missing, expired, or tampered with.
package cookie

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Cookie names.
const (
	// LastSelectedKeyword biases which keyword is surfaced first on the
	// next visit. Advisory only; callers validate it against the live
	// keyword set before use.
	LastSelectedKeyword = "lastSelectedKeyword"

	// QODCache holds the rendered quote-of-the-day line.
	QODCache = "qod_cache"

	// QODDate holds the calendar date QODCache was rendered for.
	QODDate = "qod_date"
)

const (
	selectionMaxAge = 30 * 24 * time.Hour
	qodMaxAge       = 24 * time.Hour

	cookiePath = "/"
)

// SelectionStore reads and records the last selected keyword.
type SelectionStore struct{}

// NewSelectionStore creates a selection store.
func NewSelectionStore() *SelectionStore {
	return &SelectionStore{}
}

// Read returns the persisted keyword, or "" when unset or expired.
func (*SelectionStore) Read(c *gin.Context) string {
	value, err := c.Cookie(LastSelectedKeyword)
	if err != nil {
		return ""
	}

	return value
}

// Record persists the keyword with a 30-day expiry. No validation is
// performed here; stale keywords are filtered at read time.
func (*SelectionStore) Record(c *gin.Context, keyword string) {
	c.SetCookie(LastSelectedKeyword, keyword, int(selectionMaxAge.Seconds()), cookiePath, "", false, false)
}

// Clear drops the persisted keyword.
func (*SelectionStore) Clear(c *gin.Context) {
	c.SetCookie(LastSelectedKeyword, "", -1, cookiePath, "", false, false)
}

// QODStore caches the quote of the day for the remainder of the
// calendar day via a cookie pair: the rendered line and the date it was
// rendered for. The cache is valid only while the stored date matches
// the current one.
type QODStore struct{}

// NewQODStore creates a quote-of-the-day store.
func NewQODStore() *QODStore {
	return &QODStore{}
}

// Read returns the cached line when it was rendered for today.
func (*QODStore) Read(c *gin.Context, today string) (string, bool) {
	date, err := c.Cookie(QODDate)
	if err != nil || date != today {
		return "", false
	}

	cached, err := c.Cookie(QODCache)
	if err != nil || cached == "" {
		return "", false
	}

	return cached, true
}

// Write stores the rendered line for today with a 24h expiry.
func (*QODStore) Write(c *gin.Context, line, today string) {
	maxAge := int(qodMaxAge.Seconds())
	c.SetCookie(QODCache, line, maxAge, cookiePath, "", false, true)
	c.SetCookie(QODDate, today, maxAge, cookiePath, "", false, true)
}
