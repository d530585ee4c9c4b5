package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	ServerPort string
	CORSOrigin string

	// Hotel API (the store this service consumes)
	HotelAPIURL     string
	HotelAPIToken   string
	HotelAPITimeout time.Duration

	// SMTP, optional: the service runs without mail when unset
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
	SummaryEmail  string

	// S3 report archiving, optional
	AWSRegion string
	S3Bucket  string

	SchedulerEnabled bool
}

// LoadConfig reads the configuration from the environment, loading a .env
// file first when one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		CORSOrigin:       getEnv("CORS_ORIGIN", "http://localhost:3000"),
		HotelAPIURL:      os.Getenv("HOTEL_API_URL"),
		HotelAPIToken:    os.Getenv("HOTEL_API_TOKEN"),
		HotelAPITimeout:  parseDuration(getEnv("HOTEL_API_TIMEOUT", "15s")),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPassword:     os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:     getEnv("SMTP_FROM_NAME", "Gestion Chambres"),
		SMTPFromEmail:    os.Getenv("SMTP_FROM_EMAIL"),
		SummaryEmail:     os.Getenv("SUMMARY_EMAIL"),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		S3Bucket:         os.Getenv("S3_BUCKET_NAME"),
		SchedulerEnabled: parseBool(getEnv("SCHEDULER_ENABLED", "true")),
	}

	if cfg.HotelAPIURL == "" {
		return nil, fmt.Errorf("HOTEL_API_URL est requis")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return true
	}
	return b
}
