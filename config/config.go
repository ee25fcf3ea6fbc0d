package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StoragePgx      = "pgx"
	StorageMongo    = "mongo"
)

const developmentJWTSecret = "dev-only-secret-change-me"

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Auth
	JWT       JWTConfig
	RateLimit RateLimitConfig

	// Property listings specifics
	Storage StorageConfig
	Listing ListingConfig
	Seed    SeedConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type RateLimitConfig struct {
	AuthPerMin int
}

// StorageConfig selects the listing and user store.
type StorageConfig struct {
	Driver        string
	DSN           string
	SnapshotDir   string // memory driver only; empty keeps data in RAM
	MongoDatabase string
}

type ListingConfig struct {
	QueryCacheSize int
	FeaturedCount  int
}

type SeedConfig struct {
	Path string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))

	// Auth
	cfg.JWT.Secret = expandEnvVar(viper.GetString("jwt.secret"))
	if cfg.JWT.Secret == "" && cfg.Environment.Name != "production" {
		cfg.JWT.Secret = developmentJWTSecret
	}
	cfg.JWT.Expiration = viper.GetDuration("jwt.expiration")
	cfg.RateLimit.AuthPerMin = viper.GetInt("rate_limit.auth_per_min")

	// Property listings specifics
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.DSN = expandEnvVar(viper.GetString("storage.dsn"))
	cfg.Storage.SnapshotDir = viper.GetString("storage.snapshot_dir")
	cfg.Storage.MongoDatabase = viper.GetString("storage.mongo_database")
	cfg.Listing.QueryCacheSize = viper.GetInt("listing.query_cache_size")
	cfg.Listing.FeaturedCount = viper.GetInt("listing.featured_count")
	cfg.Seed.Path = viper.GetString("seed.path")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	viper.SetDefault("jwt.secret", developmentJWTSecret)
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("rate_limit.auth_per_min", 30)
	viper.SetDefault("storage.driver", StorageMemory)
	viper.SetDefault("storage.mongo_database", "property_listings")
	viper.SetDefault("listing.query_cache_size", 256)
	viper.SetDefault("listing.featured_count", 3)
}

func (cfg *Config) validate() error {
	switch cfg.Storage.Driver {
	case StorageMemory:
	case StorageSQLite, StoragePostgres, StoragePgx, StorageMongo:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for driver %q", cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}

	if cfg.JWT.Secret == "" {
		return errors.New("jwt.secret is required")
	}
	if cfg.Environment.Name == "production" && cfg.JWT.Secret == developmentJWTSecret {
		return errors.New("jwt.secret must be set in production")
	}
	if cfg.JWT.Expiration <= 0 {
		return errors.New("jwt.expiration must be positive")
	}
	return nil
}

// Watch calls onChange with the reloaded logger level whenever the config
// file changes on disk. Only the logger level is hot-reloadable; every other
// key needs a restart.
func Watch(onChange func(level string)) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(viper.GetString("logger.level"))
	})
	viper.WatchConfig()
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
