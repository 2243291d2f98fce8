package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omaratef3221/omaratef3221.github.io/internal/normalize"
	"github.com/omaratef3221/omaratef3221.github.io/internal/services"
)

type GitHubHandler struct {
	portfolio *services.PortfolioService
}

func NewGitHubHandler(portfolio *services.PortfolioService) *GitHubHandler {
	return &GitHubHandler{portfolio: portfolio}
}

// GetProfile handles GET /api/github/:username
func (h *GitHubHandler) GetProfile(c *gin.Context) {
	payload, err := h.portfolio.GetGitHub(c.Request.Context(), c.Param("username"))
	if err != nil {
		writeFallback(c, err, normalize.FallbackGitHub())
		return
	}
	writePayload(c, payload)
}

// GetStarred handles GET /api/github/:username/starred
func (h *GitHubHandler) GetStarred(c *gin.Context) {
	payload, err := h.portfolio.GetStarred(c.Request.Context(), c.Param("username"))
	if err != nil {
		fallback := normalize.FallbackStarred()
		c.JSON(http.StatusOK, gin.H{
			"error":                err.Error(),
			"fallback":             true,
			"starred_repositories": fallback.StarredRepositories,
			"total_starred":        fallback.TotalStarred,
		})
		return
	}
	writePayload(c, payload)
}

// GetPinned handles GET /api/github/:username/pinned
func (h *GitHubHandler) GetPinned(c *gin.Context) {
	payload, err := h.portfolio.GetPinned(c.Request.Context(), c.Param("username"))
	if err != nil {
		fallback := normalize.FallbackPinned()
		c.JSON(http.StatusOK, gin.H{
			"error":               err.Error(),
			"fallback":            true,
			"pinned_repositories": fallback.PinnedRepositories,
			"total_pinned":        fallback.TotalPinned,
		})
		return
	}
	writePayload(c, payload)
}
