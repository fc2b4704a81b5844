package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Backend selects which store implementation serves requests.
type Backend string

const (
	BackendMongo  Backend = "mongo"
	BackendMemory Backend = "memory"
)

// Config aggregates application configuration values.
type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	TokenTTL       time.Duration
	StoreBackend   Backend
	SeedDemoData   bool
	AllowedOrigins string
	LogLevel       string
	LogFormat      string // text|json
}

const (
	defaultPort     = "5000"
	defaultMongoURI = "mongodb://localhost:27017"
	defaultMongoDB  = "mesh"
	defaultTokenTTL = 24 * time.Hour
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:           valueOrDefault("PORT", defaultPort),
		MongoURI:       valueOrDefault("MONGO_URI", defaultMongoURI),
		MongoDB:        valueOrDefault("MONGO_DB", defaultMongoDB),
		JWTSecret:      valueOrDefault("JWT_SECRET", "fallback-secret-key"),
		TokenTTL:       defaultTokenTTL,
		StoreBackend:   BackendMongo,
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		LogLevel:       valueOrDefault("LOG_LEVEL", "info"),
		LogFormat:      valueOrDefault("LOG_FORMAT", "text"),
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}

	switch backend := strings.ToLower(os.Getenv("STORE_BACKEND")); backend {
	case "", string(BackendMongo):
		cfg.StoreBackend = BackendMongo
	case string(BackendMemory):
		cfg.StoreBackend = BackendMemory
	default:
		return Config{}, fmt.Errorf("invalid STORE_BACKEND %q: want mongo or memory", backend)
	}

	if v := os.Getenv("SEED_DEMO_DATA"); v == "true" || v == "1" {
		cfg.SeedDemoData = true
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
