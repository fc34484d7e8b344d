package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration.
// All three binaries read the same file; each consumes its own section.
type Config struct {
	Registrar struct {
		Port string `yaml:"port" env:"REGISTRAR_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"registrar"`

	Frontend struct {
		Port        string `yaml:"port" env:"FRONTEND_PORT"`
		Mode        string `yaml:"mode" env:"SERVER_MODE"`
		StaticDir   string `yaml:"static_dir" env:"FRONTEND_STATIC_DIR"`
		TemplateDir string `yaml:"template_dir" env:"FRONTEND_TEMPLATE_DIR"`
		APIBaseURL  string `yaml:"api_base_url" env:"FRONTEND_API_BASE_URL"`
	} `yaml:"frontend"`

	Edge struct {
		Port            string `yaml:"port" env:"EDGE_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		RegistrarURL    string `yaml:"registrar_url" env:"EDGE_REGISTRAR_URL"`
		FrontendURL     string `yaml:"frontend_url" env:"EDGE_FRONTEND_URL"`
		UpstreamTimeout string `yaml:"upstream_timeout" env:"EDGE_UPSTREAM_TIMEOUT"`
	} `yaml:"edge"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Registrar defaults
	config.Registrar.Port = "5000"
	config.Registrar.Mode = "development"

	// Frontend defaults
	config.Frontend.Port = "3000"
	config.Frontend.Mode = "development"
	config.Frontend.StaticDir = "web/public"
	config.Frontend.TemplateDir = "web/templates"
	config.Frontend.APIBaseURL = "http://localhost:5000"

	// Edge defaults
	config.Edge.Port = "80"
	config.Edge.Mode = "development"
	config.Edge.RegistrarURL = "http://localhost:5000"
	config.Edge.FrontendURL = "http://localhost:3000"
	config.Edge.UpstreamTimeout = "30s"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "campusreg"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}

	for name, raw := range map[string]string{
		"edge registrar URL":    config.Edge.RegistrarURL,
		"edge frontend URL":     config.Edge.FrontendURL,
		"frontend API base URL": config.Frontend.APIBaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s: %q", name, raw)
		}
	}

	if _, err := time.ParseDuration(config.Edge.UpstreamTimeout); err != nil {
		return fmt.Errorf("invalid edge upstream timeout format: %w", err)
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection max lifetime format: %w", err)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
