// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `validate:"oneof=development staging production test"`
	Server      ServerConfig
	API         APIConfig
	Log         LogConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Store       StoreConfig
	MockAPI     MockAPIConfig
}

type ServerConfig struct {
	Port        string `validate:"required,numeric"`
	Host        string
	ReadTimeout int `validate:"gte=0"`
	IdleTimeout int `validate:"gte=0"`
}

// APIConfig points at the remote product catalog.
type APIConfig struct {
	BaseURL   string `validate:"required,url"`
	Timeout   int    `validate:"gte=0"` // in seconds, 0 keeps the http.Client default
	UserAgent string
}

type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"oneof=text json"`
}

type RateLimitConfig struct {
	RPS   float64 `validate:"gte=0"`
	Burst int     `validate:"gte=0"`
}

type CORSConfig struct {
	AllowedOrigins []string
}

type StoreConfig struct {
	// LatestDetailOnly drops detail responses that were superseded by a newer request.
	LatestDetailOnly bool
}

type MockAPIConfig struct {
	Port     string `validate:"required,numeric"`
	DelayMS  int    `validate:"gte=0"`
	SeedFile string // JSON array of products; empty uses the bundled sample
}

var validate = validator.New()

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			Host:        getEnv("SERVER_HOST", ""),
			ReadTimeout: getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			IdleTimeout: getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		API: APIConfig{
			BaseURL:   getEnv("API_BASE_URL", "http://localhost:8081/"),
			Timeout:   getEnvAsInt("API_TIMEOUT", 30),
			UserAgent: getEnv("API_USER_AGENT", "productlist/1.0"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvAsFloat("RATE_LIMIT_RPS", 10),
			Burst: getEnvAsInt("RATE_LIMIT_BURST", 20),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Store: StoreConfig{
			LatestDetailOnly: getEnvAsBool("DETAIL_LATEST_ONLY", false),
		},
		MockAPI: MockAPIConfig{
			Port:     getEnv("MOCK_API_PORT", "8081"),
			DelayMS:  getEnvAsInt("MOCK_API_DELAY_MS", 0),
			SeedFile: getEnv("MOCK_API_SEED_FILE", ""),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Environment == "production" && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("API base URL must use https in production")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
