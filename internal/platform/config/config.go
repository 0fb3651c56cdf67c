// Package config loads the runtime configuration for the tick store.
//
// The provisioning command writes a .env artifact once; afterwards the
// values are treated as immutable process-wide settings. Binaries load the
// artifact with godotenv and pass an explicit Config to the constructors
// instead of reading the environment deep inside the stack.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults for optional settings.
const (
	DefaultDBPort            = "5432"
	DefaultDBSSLMode         = "prefer"
	DefaultPolygonBaseURL    = "https://api.polygon.io"
	DefaultPolygonTimeout    = 30 * time.Second
	DefaultRequestsPerMinute = 200
	DefaultTokenTTL          = 24 * time.Hour
)

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

// DSN renders the connection string for the postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// RedisConfig holds the optional cache settings. An empty Host disables
// caching entirely; the store then reads straight from the database.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// Addr returns host:port for the redis client.
func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// PolygonConfig holds the market data API settings.
type PolygonConfig struct {
	APIKey            string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int
}

// AuthConfig holds the operator credentials for the HTTP API.
type AuthConfig struct {
	JWTSecret    string
	TokenTTL     time.Duration
	OperatorHash string // bcrypt hash of the operator password
}

// Config is the root configuration shared by all binaries.
type Config struct {
	DB      DBConfig
	Redis   RedisConfig
	Polygon PolygonConfig
	Auth    AuthConfig
}

// Load reads the configuration from environment variables and applies
// defaults for optional fields.
func Load() Config {
	cfg := Config{
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			Name:     os.Getenv("DB_NAME"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     os.Getenv("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Polygon: PolygonConfig{
			APIKey:  os.Getenv("POLYGON_API_KEY"),
			BaseURL: os.Getenv("POLYGON_BASE_URL"),
		},
		Auth: AuthConfig{
			JWTSecret:    os.Getenv("JWT_SECRET"),
			OperatorHash: os.Getenv("OPERATOR_PASSWORD_HASH"),
		},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.DB.Port == "" {
		c.DB.Port = DefaultDBPort
	}
	if c.DB.SSLMode == "" {
		c.DB.SSLMode = DefaultDBSSLMode
	}
	if c.Polygon.BaseURL == "" {
		c.Polygon.BaseURL = DefaultPolygonBaseURL
	}
	if c.Polygon.Timeout == 0 {
		c.Polygon.Timeout = DefaultPolygonTimeout
	}
	if c.Polygon.RequestsPerMinute == 0 {
		if v, err := strconv.Atoi(os.Getenv("POLYGON_REQUESTS_PER_MINUTE")); err == nil && v > 0 {
			c.Polygon.RequestsPerMinute = v
		} else {
			c.Polygon.RequestsPerMinute = DefaultRequestsPerMinute
		}
	}
	if c.Auth.TokenTTL == 0 {
		if d, err := time.ParseDuration(os.Getenv("TOKEN_TTL")); err == nil && d > 0 {
			c.Auth.TokenTTL = d
		} else {
			c.Auth.TokenTTL = DefaultTokenTTL
		}
	}
}

// Validate checks the fields every binary needs to reach the database.
func (c Config) Validate() error {
	if c.DB.Host == "" {
		return errors.New("DB_HOST is required")
	}
	if c.DB.Name == "" {
		return errors.New("DB_NAME is required")
	}
	if c.DB.User == "" {
		return errors.New("DB_USER is required")
	}
	if c.DB.Password == "" {
		return errors.New("DB_PASSWORD is required")
	}
	return nil
}
