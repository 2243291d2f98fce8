package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omaratef3221/omaratef3221.github.io/internal/services"
	"github.com/omaratef3221/omaratef3221.github.io/pkg/logger"
)

type CacheHandler struct {
	portfolio *services.PortfolioService
}

func NewCacheHandler(portfolio *services.PortfolioService) *CacheHandler {
	return &CacheHandler{portfolio: portfolio}
}

// Clear handles POST /api/cache/clear
func (h *CacheHandler) Clear(c *gin.Context) {
	if err := h.portfolio.ClearCache(c.Request.Context()); err != nil {
		logger.WithError(err).Error("Failed to clear cache")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cache"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cache cleared successfully"})
}

// Status handles GET /api/cache/status
func (h *CacheHandler) Status(c *gin.Context) {
	status, err := h.portfolio.CacheStatus(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("Failed to read cache status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cache status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cache_count": len(status),
		"cache_info":  status,
	})
}
