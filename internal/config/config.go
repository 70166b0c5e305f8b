package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries everything the process reads from the environment.
// Loaded once in main and injected into constructors; nothing reads
// os.Getenv at call time.
type Config struct {
	DatabaseURL string
	HTTPAddr    string

	ChapaSecretKey     string
	ChapaBaseURL       string
	ChapaTimeout       time.Duration
	PaymentCallbackURL string
	Currency           string

	MailWorkers   int
	MailQueueSize int
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPAddr:    envOrDefault("HTTP_ADDR", ":8080"),

		ChapaSecretKey:     os.Getenv("CHAPA_SECRET_KEY"),
		ChapaBaseURL:       envOrDefault("CHAPA_BASE_URL", "https://api.chapa.co/v1/transaction"),
		PaymentCallbackURL: envOrDefault("PAYMENT_CALLBACK_URL", "https://yourdomain.com/payments/verify/"),
		Currency:           envOrDefault("PAYMENT_CURRENCY", "ETB"),

		MailWorkers:   envOrDefaultInt("MAIL_WORKERS", 2),
		MailQueueSize: envOrDefaultInt("MAIL_QUEUE_SIZE", 256),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.ChapaSecretKey == "" {
		return nil, fmt.Errorf("CHAPA_SECRET_KEY is empty")
	}

	timeoutSec := envOrDefaultInt("CHAPA_TIMEOUT_SECONDS", 15)
	if timeoutSec <= 0 {
		return nil, fmt.Errorf("CHAPA_TIMEOUT_SECONDS must be positive, got %d", timeoutSec)
	}
	cfg.ChapaTimeout = time.Duration(timeoutSec) * time.Second

	return cfg, nil
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
