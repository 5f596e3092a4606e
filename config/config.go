package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the storefront API
type Config struct {
	Port     string
	LogLevel string
	Mongo    MongoConfig
	RabbitMQ RabbitMQConfig
	Email    EmailConfig
}

// MongoConfig holds the document store connection settings
type MongoConfig struct {
	URI      string
	Database string
}

// RabbitMQConfig holds the order event publisher settings.
// An empty URL disables publishing.
type RabbitMQConfig struct {
	URL      string
	Exchange string
}

// EmailConfig holds the Postmark order notification settings.
// Email is sent only when both Token and NotifyTo are set.
type EmailConfig struct {
	Token    string
	Sender   string
	NotifyTo string
}

// Load reads configuration from the environment, loading a .env file first
// when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "5000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017/"),
			Database: getEnv("DB_NAME", "foodapp"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      getEnv("RABBITMQ_URL", ""),
			Exchange: getEnv("ORDERS_EXCHANGE", "orders_topic"),
		},
		Email: EmailConfig{
			Token:    getEnv("POSTMARK_API_TOKEN", ""),
			Sender:   getEnv("EMAIL_SENDER", ""),
			NotifyTo: getEnv("ORDER_NOTIFY_EMAIL", ""),
		},
	}
}

// EmailEnabled reports whether order notification emails should be sent
func (c *Config) EmailEnabled() bool {
	return c.Email.Token != "" && c.Email.NotifyTo != ""
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
