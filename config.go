package main

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the boutique backend. Postgres
// settings are read separately in database.ConnectPostgres.
type Config struct {
	Port        string
	Env         string
	RedisURL    string
	CartTTL     time.Duration
	SeedCatalog bool

	// Notification (SMTP)
	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	EmailFrom string
	QueueSize int

	// Object storage for product images
	S3Bucket         string
	S3Prefix         string
	S3Endpoint       string
	CloudfrontDomain string
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cartTTLHours := 168 // one week, mirrors the session cookie
	if v := os.Getenv("CART_TTL_HOURS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cartTTLHours = parsed
		}
	}

	queueSize := 64
	if v := os.Getenv("NOTIFY_QUEUE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			queueSize = parsed
		}
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("APP_ENV", "development"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		CartTTL:     time.Duration(cartTTLHours) * time.Hour,
		SeedCatalog: os.Getenv("SEED_CATALOG") == "true",

		SMTPHost:  os.Getenv("SMTP_HOST"),
		SMTPPort:  getEnv("SMTP_PORT", "587"),
		SMTPUser:  os.Getenv("SMTP_USER"),
		SMTPPass:  os.Getenv("SMTP_PASS"),
		EmailFrom: os.Getenv("EMAIL_FROM"),
		QueueSize: queueSize,

		S3Bucket:         os.Getenv("AWS_S3_BUCKET"),
		S3Prefix:         getEnv("AWS_S3_PREFIX", "products/"),
		S3Endpoint:       os.Getenv("AWS_S3_ENDPOINT"),
		CloudfrontDomain: os.Getenv("AWS_CLOUDFRONT_DOMAIN"),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
