package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/omaratef3221/omaratef3221.github.io/internal/services"
)

// SetupRoutes registers the API under /api, the health check and the
// static front-end fallback
func SetupRoutes(router *gin.Engine, portfolioService *services.PortfolioService, contactService *services.ContactService, staticDir string) {
	// Initialize handlers
	scholarHandler := NewScholarHandler(portfolioService)
	githubHandler := NewGitHubHandler(portfolioService)
	linkedInHandler := NewLinkedInHandler(portfolioService)
	contactHandler := NewContactHandler(contactService)
	cacheHandler := NewCacheHandler(portfolioService)
	healthHandler := NewHealthHandler()
	notFoundHandler := NewNotFoundHandler(staticDir)

	api := router.Group("/api")
	{
		api.GET("/scholar/:authorId", scholarHandler.GetProfile)

		api.GET("/github/:username", githubHandler.GetProfile)
		api.GET("/github/:username/starred", githubHandler.GetStarred)
		api.GET("/github/:username/pinned", githubHandler.GetPinned)

		api.GET("/linkedin/:username", linkedInHandler.GetProfile)

		api.POST("/contact", contactHandler.Submit)

		api.POST("/cache/clear", cacheHandler.Clear)
		api.GET("/cache/status", cacheHandler.Status)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	// Everything else is the front-end
	router.NoRoute(notFoundHandler.NotFound)
}
