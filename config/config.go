package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	MongoURI      string
	MongoDatabase string
	RedisURL      string
	CartBackend   string // "memory" or "redis"
	CartTTL       time.Duration
	JWTSecret     string
	TokenTTL      time.Duration
	KafkaBrokers  string
	OrderTopic    string // empty disables order event publishing
	DeliveryFee   float64
	AllowDegraded bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		Env:           getEnv("APP_ENV", "development"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "delivery"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		CartBackend:   getEnv("CART_BACKEND", "memory"),
		CartTTL:       getDuration("CART_TTL", 7*24*time.Hour),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      getDuration("TOKEN_TTL", 30*24*time.Hour),
		KafkaBrokers:  getEnv("KAFKA_BROKERS", "localhost:9092"),
		OrderTopic:    os.Getenv("KAFKA_ORDER_TOPIC"),
		DeliveryFee:   getFloat("DELIVERY_FEE", 5.00),
		AllowDegraded: os.Getenv("ALLOW_DEGRADED") == "true",
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.CartBackend != "memory" && cfg.CartBackend != "redis" {
		return nil, fmt.Errorf("CART_BACKEND must be \"memory\" or \"redis\", got %q", cfg.CartBackend)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}
