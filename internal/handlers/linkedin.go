package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/omaratef3221/omaratef3221.github.io/internal/normalize"
	"github.com/omaratef3221/omaratef3221.github.io/internal/services"
)

type LinkedInHandler struct {
	portfolio *services.PortfolioService
}

func NewLinkedInHandler(portfolio *services.PortfolioService) *LinkedInHandler {
	return &LinkedInHandler{portfolio: portfolio}
}

// GetProfile handles GET /api/linkedin/:username
func (h *LinkedInHandler) GetProfile(c *gin.Context) {
	payload, err := h.portfolio.GetLinkedIn(c.Request.Context(), c.Param("username"))
	if err != nil {
		writeFallback(c, err, normalize.FallbackLinkedIn())
		return
	}
	writePayload(c, payload)
}
