package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	GitHub   GitHubConfig
	Scholar  ScholarConfig
	LinkedIn LinkedInConfig
	Cache    CacheConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
	StaticDir    string
	CORSOrigins  []string
}

type UpstreamConfig struct {
	Timeout time.Duration
}

type GitHubConfig struct {
	Token   string
	BaseURL string
}

type ScholarConfig struct {
	APIKey  string
	BaseURL string
}

type LinkedInConfig struct {
	APIKey  string
	APIHost string
	BaseURL string
}

type CacheConfig struct {
	Backend string
	DSN     string
}

type LogConfig struct {
	Level string
}

// Enabled reports whether the Scholar integration has credentials.
func (c ScholarConfig) Enabled() bool {
	return c.APIKey != ""
}

// Enabled reports whether the LinkedIn integration has credentials.
func (c LinkedInConfig) Enabled() bool {
	return c.APIKey != ""
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "5001"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
			StaticDir:    getEnv("STATIC_DIR", "./static"),
			CORSOrigins:  getEnvAsList("CORS_ORIGINS", []string{"*"}),
		},
		Upstream: UpstreamConfig{
			Timeout: getEnvAsDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		},
		GitHub: GitHubConfig{
			Token:   getEnv("GITHUB_TOKEN", ""),
			BaseURL: getEnv("GITHUB_API_URL", ""),
		},
		Scholar: ScholarConfig{
			APIKey:  getEnv("SCHOLAR_API_KEY", ""),
			BaseURL: getEnv("SCHOLAR_API_URL", "https://serpapi.com/search.json"),
		},
		LinkedIn: LinkedInConfig{
			APIKey:  getEnv("LINKEDIN_API_KEY", ""),
			APIHost: getEnv("LINKEDIN_API_HOST", "linkedin-data-api.p.rapidapi.com"),
			BaseURL: getEnv("LINKEDIN_API_URL", "https://linkedin-data-api.p.rapidapi.com/"),
		},
		Cache: CacheConfig{
			Backend: getEnv("CACHE_BACKEND", "memory"),
			DSN:     getEnv("CACHE_DSN", "file:portfolio_cache?mode=memory&cache=shared"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return AppConfig, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("10s") or plain seconds ("10").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping empty items
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
