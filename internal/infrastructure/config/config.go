package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "oficina/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server" yaml:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database" yaml:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth" yaml:"auth"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit" yaml:"ratelimit"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email" yaml:"email"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis" yaml:"redis"`
	Receipt   sharedConfig.ReceiptConfig   `mapstructure:"receipt" yaml:"receipt"`
	Upload    sharedConfig.UploadConfig    `mapstructure:"upload" yaml:"upload"`
	Telemetry sharedConfig.TelemetryConfig `mapstructure:"telemetry" yaml:"telemetry"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (optional) and OFICINA_* environment
// variables. Outside production a local .env file is loaded first.
func Load(env string) (*Config, error) {
	if !isProductionEnv(env) {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("OFICINA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Set replaces the global configuration. Used by tests and tooling.
func Set(cfg *Config) {
	appConfigMu.Lock()
	appConfig = cfg
	appConfigMu.Unlock()
}

// Validate rejects combinations that are unsafe to run.
func (c *Config) Validate() error {
	if c.Server.IsProduction() {
		if slices.Contains(c.Server.AllowedOrigins, "*") {
			return errors.New("server.allowed_origins must not contain '*' in production")
		}
		if c.Auth.JWT.Secret == "" || c.Auth.JWT.Secret == defaultJWTSecret {
			return errors.New("auth.jwt.secret must be set in production")
		}
	}
	switch c.Database.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.RateLimit.MaxAttempts <= 0 {
		return errors.New("ratelimit.max_attempts must be positive")
	}
	return nil
}

func isProductionEnv(env string) bool {
	if env == "" {
		env = os.Getenv("OFICINA_SERVER_MODE")
	}
	return env == "release" || env == "production"
}

const defaultJWTSecret = "change-me-in-production"

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:5173")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("server.static_dir", "static")
	v.SetDefault("server.timezone", "America/Sao_Paulo")

	// Database defaults
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "oficina.db")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 15)
	v.SetDefault("database.conn_max_lifetime", 30)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.jwt.secret", defaultJWTSecret)
	v.SetDefault("auth.jwt.access_exp_minutes", 60)
	v.SetDefault("auth.cookie.enabled", false)
	v.SetDefault("auth.cookie.name", "access_token")
	v.SetDefault("auth.cookie.domain", "")
	v.SetDefault("auth.cookie.path", "/")
	v.SetDefault("auth.cookie.secure", false)
	v.SetDefault("auth.cookie.same_site", "Lax")

	// Login rate limit defaults
	v.SetDefault("ratelimit.max_attempts", 50)
	v.SetDefault("ratelimit.lockout_seconds", 1000)
	v.SetDefault("ratelimit.store_timeout_ms", 500)
	v.SetDefault("ratelimit.public_per_minute", 60)

	// Email defaults (empty host disables delivery)
	v.SetDefault("email.smtp_host", "")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "")
	v.SetDefault("email.from_name", "Oficina")
	v.SetDefault("email.use_ssl", false)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("receipt.shop_name", "Oficina")
	v.SetDefault("receipt.shop_phone", "")
	v.SetDefault("receipt.shop_address", "")

	v.SetDefault("upload.max_photo_bytes", 11*1024*1024)

	v.SetDefault("telemetry.service_name", "oficina")
	v.SetDefault("telemetry.otlp_endpoint", "")
	v.SetDefault("telemetry.insecure", true)
}
