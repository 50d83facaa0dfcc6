package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Database
	SQLiteDBPath string

	// Zero-shot classifier (Hugging Face inference API)
	HFAPIURL   string
	HFAPIToken string
	HFModel    string
	HFTimeout  time.Duration

	// AMQP (optional; empty URL disables event publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Worker
	AuditLogPath string
}

func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "10000"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/shekelbot.db"),

		HFAPIURL:   getEnv("HF_API_URL", "https://api-inference.huggingface.co"),
		HFAPIToken: getEnv("HF_API_TOKEN", ""),
		HFModel:    getEnv("HF_MODEL", "valhalla/distilbart-mnli-12-3"),
		HFTimeout:  getEnvDuration("HF_TIMEOUT", 60*time.Second),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "shekelbot"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "expense_events"),

		AuditLogPath: getEnv("AUDIT_LOG_PATH", "./data/audit.jsonl"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate SQLite path
	if c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty")
	} else {
		dir := filepath.Dir(c.SQLiteDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	}

	// Validate classifier endpoint
	if parsedURL, err := url.Parse(c.HFAPIURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid classifier API URL '%s': %v", c.HFAPIURL, err))
	} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid classifier API URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
	}

	if c.HFModel == "" {
		errors = append(errors, "classifier model cannot be empty")
	}

	if c.HFTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid classifier timeout %v: must be at least 1 second", c.HFTimeout))
	} else if c.HFTimeout > 10*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid classifier timeout %v: must be at most 10 minutes", c.HFTimeout))
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.AuditLogPath == "" {
		errors = append(errors, "audit log path cannot be empty")
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
