// Package config loads process configuration from the environment.
//
// Values are read once at startup. An optional .env file in the working
// directory is loaded first; variables already present in the environment
// take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// MinSecretLength is the minimum accepted length of JWT_SECRET in bytes.
const MinSecretLength = 32

// Config is the full process configuration.
type Config struct {
	Service   ServiceConfig
	Logging   LoggingConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Tracing   TracingConfig
	Profiling ProfilingConfig
	Shutdown  ShutdownConfig
}

type ServiceConfig struct {
	Name    string
	Version string
	Env     string
	Port    string
}

type LoggingConfig struct {
	Level string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
}

// DSN returns the connection URL understood by pgxpool.ParseConfig. Every
// component is escaped, so credentials may contain any character.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

// AuthConfig holds the token and password hashing parameters.
// TokenTTL of zero means issued tokens carry no expiry.
type AuthConfig struct {
	Secret     string
	TokenTTL   time.Duration
	BcryptCost int
	Header     string
}

// RateLimitConfig configures the per-client limiter on the credential
// endpoints. RPS of zero disables it.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type CORSConfig struct {
	AllowOrigins []string
}

type TracingConfig struct {
	Enabled    bool
	Endpoint   string
	SampleRate float64
}

type ProfilingConfig struct {
	Enabled  bool
	Endpoint string
}

type ShutdownConfig struct {
	Timeout             string
	ReadinessDrainDelay string
}

// Load reads configuration from the environment, applying defaults for
// anything unset. It never fails; call Validate before using the result.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Service: ServiceConfig{
			Name:    getEnv("SERVICE_NAME", "exam-service"),
			Version: getEnv("SERVICE_VERSION", "dev"),
			Env:     getEnv("ENV", "development"),
			Port:    getEnv("PORT", "5000"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "exams"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
		},
		Auth: AuthConfig{
			Secret:     os.Getenv("JWT_SECRET"),
			TokenTTL:   getEnvDuration("TOKEN_TTL", 0),
			BcryptCost: getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
			Header:     getEnv("AUTH_HEADER", "Authorization"),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("RATE_LIMIT_RPS", 0),
			Burst: getEnvInt("RATE_LIMIT_BURST", 5),
		},
		CORS: CORSConfig{
			AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		},
		Tracing: TracingConfig{
			Enabled:    getEnvBool("TRACING_ENABLED", false),
			Endpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			SampleRate: getEnvFloat("OTEL_SAMPLE_RATE", 1.0),
		},
		Profiling: ProfilingConfig{
			Enabled:  getEnvBool("PROFILING_ENABLED", false),
			Endpoint: getEnv("PYROSCOPE_ENDPOINT", "http://localhost:4040"),
		},
		Shutdown: ShutdownConfig{
			Timeout:             getEnv("SHUTDOWN_TIMEOUT", "10s"),
			ReadinessDrainDelay: getEnv("READINESS_DRAIN_DELAY", "0s"),
		},
	}
}

// Validate reports the first configuration problem that would make the
// service unsafe or unable to start.
func (c *Config) Validate() error {
	if c.Auth.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if len(c.Auth.Secret) < MinSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", MinSecretLength)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.Auth.TokenTTL < 0 {
		return errors.New("TOKEN_TTL must not be negative")
	}
	if c.Auth.Header == "" {
		return errors.New("AUTH_HEADER must not be empty")
	}
	if port, err := strconv.Atoi(c.Service.Port); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid PORT %q", c.Service.Port)
	}
	if c.Database.MaxConns <= 0 {
		return errors.New("DB_MAX_CONNS must be positive")
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate limit values must not be negative")
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return errors.New("OTEL_SAMPLE_RATE must be between 0 and 1")
	}
	return nil
}

// GetShutdownTimeoutDuration returns the HTTP shutdown timeout, falling back
// to 10s when the value cannot be parsed.
func (c *Config) GetShutdownTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Shutdown.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// GetReadinessDrainDelayDuration returns how long /ready reports 503 before
// the HTTP server starts shutting down.
func (c *Config) GetReadinessDrainDelayDuration() time.Duration {
	d, err := time.ParseDuration(c.Shutdown.ReadinessDrainDelay)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
