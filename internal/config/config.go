package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	FrontendURL    string
	SearchDepth    int
	MaxSearchDepth int
	MaxTreeNodes   int64
	ParallelSearch bool
	LogLevel       string
	LogPretty      bool
	LogFile        string
	JWTSecret      string
}

var AppConfig *Config

// LoadEnv reads .env from the working directory or its parent. A missing
// file is not an error: the process environment still applies.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Debug().Msg("No .env file found")
		}
	}
}

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOrigins := []string{frontendURL}
	for _, origin := range strings.Split(GetEnv("ALLOWED_ORIGINS", ""), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}

	// Search
	maxDepth := GetEnvAsInt("MAX_SEARCH_DEPTH", 7)
	if maxDepth < 0 {
		maxDepth = 0
	}
	depth := clamp(GetEnvAsInt("SEARCH_DEPTH", 6), 0, maxDepth)
	// a full depth-7 tree from the empty board is 960,800 nodes
	maxNodes := GetEnvAsInt("MAX_TREE_NODES", 1_000_000)
	if maxNodes < 0 {
		maxNodes = 0
	}

	AppConfig = &Config{
		Port:           port,
		AllowedOrigins: allowedOrigins,
		FrontendURL:    frontendURL,
		SearchDepth:    depth,
		MaxSearchDepth: maxDepth,
		MaxTreeNodes:   int64(maxNodes),
		ParallelSearch: GetEnvAsBool("PARALLEL_SEARCH", false),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		LogPretty:      GetEnvAsBool("LOG_PRETTY", false),
		LogFile:        GetEnv("C4_LOG_FILE", ""),
		JWTSecret:      GetEnv("JWT_SECRET", ""),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("Invalid integer value, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Bool("default", defaultValue).Msg("Invalid boolean value, using default")
		return defaultValue
	}
	return value
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
