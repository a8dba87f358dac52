package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration. Values come from the YAML
// config file and may be overridden per-field with environment variables.
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

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

	JWT struct {
		Secret                string `yaml:"secret" env:"SECRET_KEY"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Email struct {
		Host       string `yaml:"host" env:"SMTP_SERVER"`
		Port       int    `yaml:"port" env:"SMTP_PORT"`
		Username   string `yaml:"username" env:"SMTP_USERNAME"`
		Password   string `yaml:"password" env:"SMTP_PASSWORD"`
		FromName   string `yaml:"from_name" env:"SMTP_FROM_NAME"`
		AdminEmail string `yaml:"admin_email" env:"ADMIN_EMAIL"`
	} `yaml:"email"`

	CORS struct {
		// AllowedOrigins is consulted only in production mode; development
		// falls back to the localhost origins.
		AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ORIGINS"`
	} `yaml:"cors"`

	Pagination PaginationConfig `yaml:"pagination"`

	Upload struct {
		MaxFileSize       int64  `yaml:"max_file_size" env:"MAX_FILE_SIZE"`
		AllowedExtensions string `yaml:"allowed_extensions" env:"ALLOWED_FILE_EXTENSIONS"`
		StoragePath       string `yaml:"storage_path" env:"UPLOAD_STORAGE_PATH"`
	} `yaml:"upload"`

	Cache struct {
		AnalyticsTTL string `yaml:"analytics_ttl" env:"CACHE_TTL"`
	} `yaml:"cache"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// PaginationConfig bounds list endpoint page sizes
type PaginationConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"DEFAULT_PAGE_SIZE"`
	MaxPageSize     int `yaml:"max_page_size" env:"MAX_PAGE_SIZE"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; environment variables alone are enough.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

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
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "mtendere_admin"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// Tokens are valid for 24 hours unless configured otherwise.
	config.JWT.AccessTokenExpiration = "24h"
	config.JWT.Issuer = "mtendereeduconsult.com"

	config.Email.Host = "smtp.gmail.com"
	config.Email.Port = 587
	config.Email.FromName = "Mtendere Education Admin System"
	config.Email.AdminEmail = "mtendereeduconsult@gmail.com"

	config.Pagination.DefaultPageSize = 20
	config.Pagination.MaxPageSize = 100

	config.Upload.MaxFileSize = 10 << 20 // 10MB
	config.Upload.AllowedExtensions = "jpg,jpeg,png,gif,pdf,doc,docx"
	config.Upload.StoragePath = "uploads"

	config.Cache.AnalyticsTTL = "5m"

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

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid access token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.Cache.AnalyticsTTL); err != nil {
		return fmt.Errorf("invalid analytics cache TTL format: %w", err)
	}

	if config.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("max file size must be positive")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
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

// CORSOrigins returns the list of allowed CORS origins for the current mode.
// Development stays permissive for local frontends; production only allows
// the configured list.
func (c *Config) CORSOrigins() []string {
	if !c.IsProduction() {
		return []string{"http://localhost:3000", "http://localhost:8000", "http://127.0.0.1:8000"}
	}

	var origins []string
	for _, origin := range strings.Split(c.CORS.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// AllowedUploadExtensions returns the normalized list of allowed file extensions.
func (c *Config) AllowedUploadExtensions() []string {
	var exts []string
	for _, ext := range strings.Split(c.Upload.AllowedExtensions, ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}
	return exts
}
