package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/cookie"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/http/dto"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/app"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/platform/clock"
)

// QuoteProvider serves quotes through the fallback chain. Implementations
// never surface upstream failures; the only possible error is parameter
// validation.
type QuoteProvider interface {
	QuotesByKeyword(ctx context.Context, keyword string, limit int) ([]domain.Quote, string, error)
	RandomQuotes(ctx context.Context, count int, lastSelected string) []domain.Quote
}

// QuotesHandler handles the quote listing endpoints.
type QuotesHandler struct {
	quotes    QuoteProvider
	selection *cookie.SelectionStore
	clock     clock.Clock
}

// NewQuotesHandler creates a quotes handler.
func NewQuotesHandler(quotes QuoteProvider, selection *cookie.SelectionStore, clk clock.Clock) *QuotesHandler {
	return &QuotesHandler{
		quotes:    quotes,
		selection: selection,
		clock:     clk,
	}
}

// listQuery holds the optional query parameters for the quote list endpoint.
type listQuery struct {
	Keyword string `form:"keyword"`
}

// ByKeyword handles GET /api/keyword/:keyword.
// Responds with the envelope format and records the keyword as the
// visitor's last selection. A blank keyword is the only 400 this
// endpoint produces.
func (h *QuotesHandler) ByKeyword(c *gin.Context) {
	keyword := strings.TrimSpace(c.Param("keyword"))
	if keyword == "" {
		c.JSON(http.StatusBadRequest, dto.NewRequestError("keyword is required", h.clock.Now()))
		return
	}

	quotes, source, err := h.quotes.QuotesByKeyword(c.Request.Context(), keyword, app.MaxQuotesPerKeyword)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewRequestError(err.Error(), h.clock.Now()))
		return
	}

	h.selection.Record(c, keyword)

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes, keyword, source, h.clock.Now()))
}

// List handles GET /api/quotes.
// Returns a bare quote array: filtered by keyword when one is supplied,
// otherwise a random selection biased toward the visitor's last selected
// keyword.
func (h *QuotesHandler) List(c *gin.Context) {
	var q listQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewRequestError("invalid query parameters", h.clock.Now()))
		return
	}

	if q.Keyword == "" {
		last := h.selection.Read(c)
		quotes := h.quotes.RandomQuotes(c.Request.Context(), app.RandomKeywordCount, last)
		c.JSON(http.StatusOK, dto.QuotesFromDomain(quotes))

		return
	}

	quotes, _, err := h.quotes.QuotesByKeyword(c.Request.Context(), q.Keyword, app.DefaultQuoteCount)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewRequestError(err.Error(), h.clock.Now()))
		return
	}

	c.JSON(http.StatusOK, dto.QuotesFromDomain(quotes))
}
