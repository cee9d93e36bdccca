package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the link service
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`
	GoEnv    string `yaml:"go_env"`

	// Database (application role, subject to row level security)
	DatabaseURL      string `yaml:"database_url"`
	DatabaseHost     string `yaml:"db_host"`
	DatabasePort     string `yaml:"db_port"`
	DatabaseName     string `yaml:"db_name"`
	DatabaseUser     string `yaml:"db_user"`
	DatabasePassword string `yaml:"db_password"`
	DatabaseSSLMode  string `yaml:"db_ssl_mode"`

	// Service role connection, used only for applying policies and
	// running migrations. Bypasses row level security.
	ServiceDatabaseURL string `yaml:"service_database_url"`

	// Kratos
	KratosPublicURL string `yaml:"kratos_public_url"`
	KratosAdminURL  string `yaml:"kratos_admin_url"`

	// Admin
	AdminAPIKey  string   `yaml:"admin_api_key"`
	AdminUserIDs []string `yaml:"admin_user_ids"`

	// Rate limiting
	RateLimitPerSecond float64 `yaml:"rate_limit_per_second"`
	RateLimitBurst     int     `yaml:"rate_limit_burst"`
}

// Load reads configuration from environment variables, optionally
// overlaid with a YAML file named by LINKSPACE_CONFIG. Environment
// variables win over file values.
func Load() (*Config, error) {
	config := &Config{}

	if path := os.Getenv("LINKSPACE_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", fallback(config.Port, "9600"))
	config.Host = getEnvOrDefault("HOST", fallback(config.Host, "0.0.0.0"))
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", fallback(config.LogLevel, "info"))
	config.GoEnv = getEnvOrDefault("GO_ENV", fallback(config.GoEnv, "development"))

	// Database configuration. Either a full DSN or host/name parts.
	config.DatabaseURL = getEnvOrDefault("DATABASE_URL", config.DatabaseURL)
	config.DatabaseHost = getEnvOrDefault("DB_HOST", fallback(config.DatabaseHost, "linkspace-postgres"))
	config.DatabasePort = getEnvOrDefault("DB_PORT", fallback(config.DatabasePort, "5432"))
	config.DatabaseName = getEnvOrDefault("DB_NAME", fallback(config.DatabaseName, "linkspace_db"))
	config.DatabaseUser = getEnvOrDefault("DB_USER", fallback(config.DatabaseUser, "linkspace_app"))
	config.DatabasePassword = getEnvOrDefault("DB_PASSWORD", config.DatabasePassword)
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", fallback(config.DatabaseSSLMode, "require"))

	if config.DatabaseURL == "" && config.DatabasePassword == "" {
		return nil, fmt.Errorf("either DATABASE_URL or DB_PASSWORD is required")
	}

	config.ServiceDatabaseURL = getEnvOrDefault("SERVICE_DATABASE_URL", config.ServiceDatabaseURL)

	// Kratos configuration
	config.KratosPublicURL = getEnvOrDefault("KRATOS_PUBLIC_URL", config.KratosPublicURL)
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	config.KratosAdminURL = getEnvOrDefault("KRATOS_ADMIN_URL", config.KratosAdminURL)
	if config.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	// Admin configuration
	config.AdminAPIKey = getEnvOrDefault("ADMIN_API_KEY", config.AdminAPIKey)
	if ids := os.Getenv("ADMIN_USER_IDS"); ids != "" {
		config.AdminUserIDs = splitList(ids)
	}

	// Rate limiting
	rps := getEnvOrDefault("RATE_LIMIT_PER_SECOND", "")
	if rps != "" {
		parsed, err := strconv.ParseFloat(rps, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_PER_SECOND: %w", err)
		}
		config.RateLimitPerSecond = parsed
	}
	if config.RateLimitPerSecond <= 0 {
		config.RateLimitPerSecond = 20
	}

	burst := getEnvOrDefault("RATE_LIMIT_BURST", "")
	if burst != "" {
		parsed, err := strconv.ParseInt(burst, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
		}
		config.RateLimitBurst = int(parsed)
	}
	if config.RateLimitBurst <= 0 {
		config.RateLimitBurst = 40
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port range (1-65535)
	port, err := strconv.ParseInt(c.Port, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	for _, rawURL := range []string{c.KratosPublicURL, c.KratosAdminURL} {
		parsed, err := url.Parse(rawURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("invalid Kratos URL: %s", rawURL)
		}
	}

	for _, id := range c.AdminUserIDs {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("invalid admin user ID %q: %w", id, err)
		}
	}

	return nil
}

// DatabaseDSN returns the connection string for the application role.
func (c *Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(c.DatabaseUser),
		url.QueryEscape(c.DatabasePassword),
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// ServiceDatabaseDSN returns the connection string for the service
// role. Falls back to the application DSN when no dedicated service
// connection is configured, which is common in development.
func (c *Config) ServiceDatabaseDSN() string {
	if c.ServiceDatabaseURL != "" {
		return c.ServiceDatabaseURL
	}
	return c.DatabaseDSN()
}

// IsAdmin reports whether the given user ID is configured as an admin.
func (c *Config) IsAdmin(userID uuid.UUID) bool {
	id := userID.String()
	for _, adminID := range c.AdminUserIDs {
		if strings.EqualFold(adminID, id) {
			return true
		}
	}
	return false
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.GoEnv, "production")
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func fallback(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
