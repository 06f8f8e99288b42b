package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/http/dto"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/platform/clock"
)

// KeywordProvider serves the available keyword list together with the
// label of the tier that produced it.
type KeywordProvider interface {
	Keywords(ctx context.Context) ([]domain.Keyword, string)
}

// KeywordsHandler handles the keyword listing endpoint.
type KeywordsHandler struct {
	keywords KeywordProvider
	clock    clock.Clock
}

// NewKeywordsHandler creates a keywords handler.
func NewKeywordsHandler(keywords KeywordProvider, clk clock.Clock) *KeywordsHandler {
	return &KeywordsHandler{
		keywords: keywords,
		clock:    clk,
	}
}

// List handles GET /api/keywords.
// Always responds 200; on upstream failure the provider substitutes the
// static keyword list and labels the source accordingly.
func (h *KeywordsHandler) List(c *gin.Context) {
	keywords, source := h.keywords.Keywords(c.Request.Context())

	c.JSON(http.StatusOK, dto.NewKeywordListResponse(keywords, source, h.clock.Now()))
}
