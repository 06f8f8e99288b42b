package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/cookie"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/app"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/platform/clock"
)

// DailyQuoteProvider serves the quote of the day. Never fails; the
// provider rotates through the static dataset when upstreams are down.
type DailyQuoteProvider interface {
	QuoteOfTheDay(ctx context.Context) (domain.Quote, string)
}

// QODHandler handles the quote-of-the-day endpoint.
type QODHandler struct {
	daily DailyQuoteProvider
	store *cookie.QODStore
	clock clock.Clock
}

// NewQODHandler creates a quote-of-the-day handler.
func NewQODHandler(daily DailyQuoteProvider, store *cookie.QODStore, clk clock.Clock) *QODHandler {
	return &QODHandler{
		daily: daily,
		store: store,
		clock: clk,
	}
}

// Get handles GET /api/qod and GET /qod.
// Responds text/plain with the rendered line. The line is cached in a
// cookie pair scoped to the calendar day: a repeat visit on the same day
// serves the cached line without consulting any upstream.
func (h *QODHandler) Get(c *gin.Context) {
	today := app.DayStamp(h.clock.Now())

	if line, ok := h.store.Read(c, today); ok {
		c.String(http.StatusOK, "%s", line)
		return
	}

	quote, _ := h.daily.QuoteOfTheDay(c.Request.Context())
	line := app.QODLine(quote)

	h.store.Write(c, line, today)
	c.String(http.StatusOK, "%s", line)
}
