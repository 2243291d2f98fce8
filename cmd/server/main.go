package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omaratef3221/omaratef3221.github.io/internal/cache"
	"github.com/omaratef3221/omaratef3221.github.io/internal/gateway"
	"github.com/omaratef3221/omaratef3221.github.io/internal/handlers"
	"github.com/omaratef3221/omaratef3221.github.io/internal/middleware"
	"github.com/omaratef3221/omaratef3221.github.io/internal/services"
	"github.com/omaratef3221/omaratef3221.github.io/pkg/config"
	"github.com/omaratef3221/omaratef3221.github.io/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize cache
	store, err := cache.New(cfg.Cache.Backend, cfg.Cache.DSN)
	if err != nil {
		logger.Fatalf("Failed to initialize cache: %v", err)
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	// Initialize upstream gateways
	httpClient := gateway.NewHTTPClient(cfg.Upstream.Timeout)

	githubClient, err := gateway.NewGitHubClient(httpClient, cfg.GitHub.Token, cfg.GitHub.BaseURL)
	if err != nil {
		logger.Fatalf("Failed to initialize GitHub client: %v", err)
	}
	if cfg.GitHub.Token == "" {
		logger.Info("GITHUB_TOKEN not set, using anonymous GitHub API access")
	}

	var scholarGateway gateway.ScholarGateway = gateway.DisabledScholar{}
	if cfg.Scholar.Enabled() {
		scholarGateway = gateway.NewScholarClient(httpClient, cfg.Scholar.BaseURL, cfg.Scholar.APIKey)
	} else {
		logger.Warn("Google Scholar API not available (SCHOLAR_API_KEY not set), serving fallback data")
	}

	var linkedInGateway gateway.LinkedInGateway = gateway.DisabledLinkedIn{}
	if cfg.LinkedIn.Enabled() {
		linkedInGateway = gateway.NewLinkedInClient(httpClient, cfg.LinkedIn.BaseURL, cfg.LinkedIn.APIKey, cfg.LinkedIn.APIHost)
	} else {
		logger.Warn("LinkedIn API not available (LINKEDIN_API_KEY not set), serving fallback data")
	}

	// Initialize services
	portfolioService := services.NewPortfolioService(store, githubClient, scholarGateway, linkedInGateway)
	contactService := services.NewContactService(services.LogRecorder{})

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))

	// Setup routes
	handlers.SetupRoutes(router, portfolioService, contactService, cfg.Server.StaticDir)

	// Setup server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Infof("Server starting on :%s (static files from %s)", cfg.Server.Port, cfg.Server.StaticDir)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server stopped")
}
