package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	JWTSecret string
	JWTExpiry time.Duration

	// Entry requests left PENDING longer than this are swept to REJECTED.
	PendingRequestTTL time.Duration
	PendingSweepSpec  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	jwtExpHours, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	pendingTTLMin, _ := strconv.Atoi(getEnv("PENDING_REQUEST_TTL_MINUTES", "30"))

	return &Config{
		ServerPort:        getEnv("PORT", "8080"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret"),
		JWTExpiry:         time.Duration(jwtExpHours) * time.Hour,
		PendingRequestTTL: time.Duration(pendingTTLMin) * time.Minute,
		PendingSweepSpec:  getEnv("PENDING_SWEEP_CRON", "*/5 * * * *"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
