// Package server is the HTTP surface of the verification engine: two
// request/response operations plus health and metrics. It owns no state
// beyond its Verifier; nothing it handles is ever persisted.
package server

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the daemon configuration, read from the environment with an
// optional .env file.
type Config struct {
	Port                 string
	DisposableListFile   string
	FreeProviderListFile string
	DNSTimeout           time.Duration
	DNSCacheTTL          time.Duration
	RequestTimeout       time.Duration
	BulkMaxAddresses     int
	LogLevel             string
}

// Load reads the configuration. Every value has a working default, so a
// bare environment yields a usable daemon with the embedded lists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:                 getEnv("SERVER_PORT", "8080"),
		DisposableListFile:   getEnv("DISPOSABLE_LIST_FILE", ""),
		FreeProviderListFile: getEnv("FREE_PROVIDER_LIST_FILE", ""),
		DNSTimeout:           getEnvAsDuration("DNS_TIMEOUT", 5*time.Second),
		DNSCacheTTL:          getEnvAsDuration("DNS_CACHE_TTL", 5*time.Minute),
		RequestTimeout:       getEnvAsDuration("REQUEST_TIMEOUT", 60*time.Second),
		BulkMaxAddresses:     getEnvAsInt("BULK_MAX_ADDRESSES", 5000),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback
	}
	return value
}
