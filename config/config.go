package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultExportRoute = "/metagrid-router.php"
	DefaultExportUser  = "guest"
)

const (
	defaultPort              = "8080"
	defaultQueryTimeout      = 10 * time.Second
	defaultRateLimitRequests = 60
	defaultRateLimitWindow   = time.Minute
)

type Config struct {
	// database path (the CMS sqlite file)
	DatabasePath string

	// API key required from the spider, empty means open access
	APIKey string

	// http settings
	Port           string
	ExportRoute    string
	PublicBasePath string // overrides the base path derived from the request path
	AllowedOrigins []string

	// user whose group supplies hidden trees and hide-totally settings
	ExportUser string

	QueryTimeout time.Duration

	// per-IP limiter, RateLimitRequests == 0 disables it
	RateLimitRequests int
	RateLimitWindow   time.Duration

	LogLevel  string
	LogFormat string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvDurationOrDefault(envVar string, defaultVal time.Duration) time.Duration {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := time.ParseDuration(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %s. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func LoadConfig() (Config, error) {
	route := getEnvOrDefault("EXPORT_ROUTE", DefaultExportRoute)
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}

	cfg := Config{
		DatabasePath:      getEnvOrDefault("DATABASE_PATH", "humo.db"),
		APIKey:            os.Getenv("API_KEY"),
		Port:              getEnvOrDefault("PORT", defaultPort),
		ExportRoute:       route,
		PublicBasePath:    strings.TrimRight(os.Getenv("PUBLIC_BASE_PATH"), "/"),
		AllowedOrigins:    splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		ExportUser:        getEnvOrDefault("EXPORT_USER", DefaultExportUser),
		QueryTimeout:      getEnvDurationOrDefault("QUERY_TIMEOUT", defaultQueryTimeout),
		RateLimitRequests: getEnvIntOrDefault("RATE_LIMIT_REQUESTS", defaultRateLimitRequests),
		RateLimitWindow:   getEnvDurationOrDefault("RATE_LIMIT_WINDOW", defaultRateLimitWindow),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:         getEnvOrDefault("LOG_FORMAT", "json"),
	}

	return cfg, nil
}
