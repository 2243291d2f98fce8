package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/omaratef3221/omaratef3221.github.io/internal/normalize"
	"github.com/omaratef3221/omaratef3221.github.io/internal/services"
)

type ScholarHandler struct {
	portfolio *services.PortfolioService
}

func NewScholarHandler(portfolio *services.PortfolioService) *ScholarHandler {
	return &ScholarHandler{portfolio: portfolio}
}

// GetProfile handles GET /api/scholar/:authorId
func (h *ScholarHandler) GetProfile(c *gin.Context) {
	payload, err := h.portfolio.GetScholar(c.Request.Context(), c.Param("authorId"))
	if err != nil {
		writeFallback(c, err, normalize.FallbackScholar())
		return
	}
	writePayload(c, payload)
}
