package config

import (
	"fmt"
	"net/url"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host" yaml:"host"`
	Port           int      `mapstructure:"port" yaml:"port"`
	Mode           string   `mapstructure:"mode" yaml:"mode"`
	BaseURL        string   `mapstructure:"base_url" yaml:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	StaticDir      string   `mapstructure:"static_dir" yaml:"static_dir"`
	Timezone       string   `mapstructure:"timezone" yaml:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether the server runs in release mode.
func (s *ServerConfig) IsProduction() bool {
	return s.Mode == "release" || s.Mode == "production"
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" yaml:"driver"`
	Host            string `mapstructure:"host" yaml:"host"`
	Port            int    `mapstructure:"port" yaml:"port"`
	Username        string `mapstructure:"username" yaml:"username"`
	Password        string `mapstructure:"password" yaml:"password"`
	Database        string `mapstructure:"database" yaml:"database"`
	SSLMode         string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"`
}

// GetDSN builds the driver specific connection string. For sqlite the
// database field is used as the file path.
func (d *DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case "postgres":
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
	case "sqlite":
		return d.Database
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.Username, url.QueryEscape(d.Password), d.Host, d.Port, d.Database)
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost" yaml:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret" yaml:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes" yaml:"access_exp_minutes"`
}

type CookieConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Name     string `mapstructure:"name" yaml:"name"`
	Domain   string `mapstructure:"domain" yaml:"domain"`
	Path     string `mapstructure:"path" yaml:"path"`
	Secure   bool   `mapstructure:"secure" yaml:"secure"`
	SameSite string `mapstructure:"same_site" yaml:"same_site"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password" yaml:"password"`
	JWT      JWTConfig      `mapstructure:"jwt" yaml:"jwt"`
	Cookie   CookieConfig   `mapstructure:"cookie" yaml:"cookie"`
}

// RateLimitConfig bounds failed login attempts per email and origin.
type RateLimitConfig struct {
	MaxAttempts    int64 `mapstructure:"max_attempts" yaml:"max_attempts"`
	LockoutSeconds int   `mapstructure:"lockout_seconds" yaml:"lockout_seconds"`
	StoreTimeoutMs int   `mapstructure:"store_timeout_ms" yaml:"store_timeout_ms"`

	// PublicPerMinute caps unauthenticated tracking lookups per IP.
	PublicPerMinute int64 `mapstructure:"public_per_minute" yaml:"public_per_minute"`
}

func (r *RateLimitConfig) Lockout() time.Duration {
	return time.Duration(r.LockoutSeconds) * time.Second
}

func (r *RateLimitConfig) StoreTimeout() time.Duration {
	return time.Duration(r.StoreTimeoutMs) * time.Millisecond
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host" yaml:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port" yaml:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user" yaml:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password" yaml:"smtp_password"`
	FromAddress  string `mapstructure:"from_address" yaml:"from_address"`
	FromName     string `mapstructure:"from_name" yaml:"from_name"`
	UseSSL       bool   `mapstructure:"use_ssl" yaml:"use_ssl"`
}

// Enabled reports whether enough SMTP settings exist to send mail.
func (e *EmailConfig) Enabled() bool {
	return e.SMTPHost != "" && e.FromAddress != ""
}

type RedisConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type ReceiptConfig struct {
	ShopName    string `mapstructure:"shop_name" yaml:"shop_name"`
	ShopPhone   string `mapstructure:"shop_phone" yaml:"shop_phone"`
	ShopAddress string `mapstructure:"shop_address" yaml:"shop_address"`
}

type UploadConfig struct {
	MaxPhotoBytes int64 `mapstructure:"max_photo_bytes" yaml:"max_photo_bytes"`
}

type TelemetryConfig struct {
	ServiceName  string `mapstructure:"service_name" yaml:"service_name"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint"`
	Insecure     bool   `mapstructure:"insecure" yaml:"insecure"`
}

// Enabled reports whether traces should be exported.
func (t *TelemetryConfig) Enabled() bool {
	return t.OTLPEndpoint != ""
}
