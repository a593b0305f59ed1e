package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the application configuration
type AppConfig struct {
	Environment string
	Port        string

	DBDriver          string
	DBURL             string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	RedisAddress  string
	RedisPoolSize int

	LogLevel  string
	LogFormat string

	ClinicTimezone string

	RateLimitRPS   float64
	RateLimitBurst int

	CORSAllowedOrigins []string

	TracingEnabled    bool
	OTLPEndpoint      string
	TracingSampleRate float64
}

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// LoadConfig loads configuration from an optional .env file and the environment.
func LoadConfig() (*AppConfig, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &AppConfig{
		Environment:        getEnv("APP_ENV", "production"),
		Port:               getEnv("PORT", "8930"),
		DBDriver:           strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
		DBURL:              os.Getenv("DB_URL"),
		DBMaxOpenConns:     getEnvAsInt("DB_MAX_OPEN_CONNS", 40),
		DBMaxIdleConns:     getEnvAsInt("DB_MAX_IDLE_CONNS", 20),
		DBConnMaxLifetime:  getEnvAsDuration("DB_CONN_MAX_LIFETIME", 10*time.Minute),
		RedisAddress:       os.Getenv("REDIS_URL"),
		RedisPoolSize:      getEnvAsInt("REDIS_POOL_SIZE", 10),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		ClinicTimezone:     getEnv("CLINIC_TIMEZONE", "Local"),
		RateLimitRPS:       getEnvAsFloat("RATE_LIMIT_RPS", 15),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 30),
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:8930"}),
		TracingEnabled:     getEnvAsBool("TRACING_ENABLED", false),
		OTLPEndpoint:       getEnv("OTLP_ENDPOINT", "localhost:4318"),
		TracingSampleRate:  getEnvAsFloat("TRACING_SAMPLE_RATE", 0.1),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports missing or inconsistent settings.
func (c *AppConfig) Validate() error {
	if c.DBURL == "" {
		return errors.New("missing DB_URL environment variable")
	}
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// Location resolves the clinic time zone used for "today" boundaries and form input.
func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.ClinicTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid CLINIC_TIMEZONE %q: %w", c.ClinicTimezone, err)
	}
	return loc, nil
}

// Address returns the listen address of the HTTP server.
func (c *AppConfig) Address() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultValue int) int {
	if value, exists := os.LookupEnv(name); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Printf("Warning: Invalid integer value for %s, using default: %d", name, defaultValue)
	}
	return defaultValue
}

func getEnvAsFloat(name string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(name); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Warning: Invalid float value for %s, using default: %v", name, defaultValue)
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(name); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		log.Printf("Warning: Invalid boolean value for %s, using default: %t", name, defaultValue)
	}
	return defaultValue
}

func getEnvAsDuration(name string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(name); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
		log.Printf("Warning: Invalid duration value for %s, using default: %s", name, defaultValue.String())
	}
	return defaultValue
}

func getEnvAsSlice(name string, defaultValue []string) []string {
	value, exists := os.LookupEnv(name)
	if !exists {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			result = append(result, t)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
