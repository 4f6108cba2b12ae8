// internal/pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingRequiredConfig is returned when a required setting is empty or a placeholder
var ErrMissingRequiredConfig = errors.New("missing required configuration")

// Upstream modes
const (
	UpstreamHTTP   = "http"
	UpstreamMemory = "memory"
)

// Config holds all application configuration
type Config struct {
	// Application
	App AppConfig

	// Upstream inventory API
	Upstream UpstreamConfig

	// Redis
	Redis RedisConfig

	// Asynq
	Asynq AsynqConfig

	// View sessions
	Views ViewsConfig

	// AWS
	AWS AWSConfig

	// Security
	Security SecurityConfig

	// Server
	Server ServerConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string `validate:"set"`
	Environment string // development, staging, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
	Debug       bool
}

// UpstreamConfig holds the inventory API client configuration
type UpstreamConfig struct {
	Mode        string // http, memory
	BaseURL     string
	AuthBaseURL string
	Timeout     time.Duration
	// RateLimit is outbound requests per second, RateBurst the bucket size
	RateLimit    float64 `validate:"gt=0"`
	RateBurst    int
	ServiceToken string
	// TokenSecretName names an AWS Secrets Manager secret holding the service token
	TokenSecretName string
	TokenSecretKey  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int `validate:"gt=0"`
	MinIdleConns int
	PoolTimeout  time.Duration
	// TTL is how long a fetched collection stays cached
	TTL          time.Duration
	CacheEnabled bool
}

// AsynqConfig holds Asynq configuration
type AsynqConfig struct {
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	Concurrency          int
	Queues               map[string]int // queue name -> priority
	StrictPriority       bool
	RetryMax             int
	ShutdownTimeout      time.Duration
	HealthCheckInterval  time.Duration
	DelayedTaskCheckTime time.Duration
}

// ViewsConfig bounds the mounted list view sessions
type ViewsConfig struct {
	IdleTimeout   time.Duration `validate:"gt=0"`
	MaxSessions   int           `validate:"gt=0"`
	SweepInterval time.Duration
	MountTimeout  time.Duration
	// RefreshInterval is how often the worker rewarms every cached collection
	RefreshInterval time.Duration
}

// AWSConfig holds AWS configuration
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// SecurityConfig holds security configuration
type SecurityConfig struct {
	RateLimitRequests int `validate:"gt=0"`
	RateLimitDuration time.Duration
	AllowedOrigins    []string
	TrustedProxies    []string
	SecureHeaders     bool
	RequestIDHeader   string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string `validate:"set"`
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	MaxHeaderBytes  int
	GracefulTimeout time.Duration
	TLSEnabled      bool
	TLSCertFile     string
	TLSKeyFile      string
}

// Load loads configuration from environment variables
func Load(logger *slog.Logger) (*Config, error) {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	// Load .env file in development
	if appEnv == "development" || appEnv == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetTypeByDefaultValue(true)

	setDefaults()

	redisHost := envString("REDIS_HOST", "localhost")
	redisPort := envString("REDIS_PORT", "6379")

	cfg := &Config{
		App: AppConfig{
			Name:        envString("APP_NAME", "meta4-erp"),
			Environment: appEnv,
			Version:     envString("APP_VERSION", "dev"),
			LogLevel:    envString("LOG_LEVEL", "debug"),
			LogFormat:   envString("LOG_FORMAT", "json"),
			Debug:       env("APP_DEBUG", appEnv == "development", strconv.ParseBool),
		},
		Upstream: UpstreamConfig{
			Mode:            envString("UPSTREAM_MODE", UpstreamHTTP),
			BaseURL:         envString("UPSTREAM_BASE_URL", "https://campaigns.createyourmeta-iv.com/inventory/store-count"),
			AuthBaseURL:     envString("UPSTREAM_AUTH_BASE_URL", "https://campaigns.createyourmeta-iv.com"),
			Timeout:         env("UPSTREAM_TIMEOUT", 15*time.Second, time.ParseDuration),
			RateLimit:       env("UPSTREAM_RATE_LIMIT", 10, parseFloat),
			RateBurst:       env("UPSTREAM_RATE_BURST", 20, strconv.Atoi),
			ServiceToken:    envString("UPSTREAM_SERVICE_TOKEN", ""),
			TokenSecretName: envString("UPSTREAM_TOKEN_SECRET", ""),
			TokenSecretKey:  envString("UPSTREAM_TOKEN_SECRET_KEY", "UPSTREAM_SERVICE_TOKEN"),
		},
		Redis: RedisConfig{
			Host:         redisHost,
			Port:         redisPort,
			Password:     envString("REDIS_PASSWORD", ""),
			DB:           env("REDIS_DB", 0, strconv.Atoi),
			MaxRetries:   env("REDIS_MAX_RETRIES", 3, strconv.Atoi),
			DialTimeout:  env("REDIS_DIAL_TIMEOUT", 5*time.Second, time.ParseDuration),
			ReadTimeout:  env("REDIS_READ_TIMEOUT", 3*time.Second, time.ParseDuration),
			WriteTimeout: env("REDIS_WRITE_TIMEOUT", 3*time.Second, time.ParseDuration),
			PoolSize:     env("REDIS_POOL_SIZE", 10, strconv.Atoi),
			MinIdleConns: env("REDIS_MIN_IDLE_CONNS", 2, strconv.Atoi),
			PoolTimeout:  env("REDIS_POOL_TIMEOUT", 4*time.Second, time.ParseDuration),
			TTL:          env("REDIS_TTL", 5*time.Minute, time.ParseDuration),
			CacheEnabled: env("CACHE_ENABLED", true, strconv.ParseBool),
		},
		Asynq: AsynqConfig{
			RedisAddr:            fmt.Sprintf("%s:%s", redisHost, redisPort),
			RedisPassword:        envString("REDIS_PASSWORD", ""),
			RedisDB:              env("ASYNQ_REDIS_DB", 0, strconv.Atoi),
			Concurrency:          env("ASYNQ_CONCURRENCY", 4, strconv.Atoi),
			Queues:               parseQueues(envString("ASYNQ_QUEUES", "critical:6,default:3,low:1")),
			StrictPriority:       env("ASYNQ_STRICT_PRIORITY", false, strconv.ParseBool),
			RetryMax:             env("ASYNQ_RETRY_MAX", 3, strconv.Atoi),
			ShutdownTimeout:      env("ASYNQ_SHUTDOWN_TIMEOUT", 30*time.Second, time.ParseDuration),
			HealthCheckInterval:  env("ASYNQ_HEALTH_CHECK_INTERVAL", 30*time.Second, time.ParseDuration),
			DelayedTaskCheckTime: env("ASYNQ_DELAYED_TASK_CHECK", 5*time.Second, time.ParseDuration),
		},
		Views: ViewsConfig{
			IdleTimeout:     env("VIEW_IDLE_TIMEOUT", 15*time.Minute, time.ParseDuration),
			MaxSessions:     env("VIEW_MAX_SESSIONS", 1000, strconv.Atoi),
			SweepInterval:   env("VIEW_SWEEP_INTERVAL", time.Minute, time.ParseDuration),
			MountTimeout:    env("VIEW_MOUNT_TIMEOUT", 10*time.Second, time.ParseDuration),
			RefreshInterval: env("COLLECTION_REFRESH_INTERVAL", 5*time.Minute, time.ParseDuration),
		},
		AWS: AWSConfig{
			Region:          envString("AWS_REGION", "us-east-1"),
			AccessKeyID:     envString("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: envString("AWS_SECRET_ACCESS_KEY", ""),
		},
		Security: SecurityConfig{
			RateLimitRequests: env("RATE_LIMIT_REQUESTS", 100, strconv.Atoi),
			RateLimitDuration: env("RATE_LIMIT_DURATION", time.Minute, time.ParseDuration),
			AllowedOrigins:    env("ALLOWED_ORIGINS", []string{"*"}, splitList),
			TrustedProxies:    env("TRUSTED_PROXIES", []string{}, splitList),
			SecureHeaders:     env("SECURE_HEADERS", appEnv == "production", strconv.ParseBool),
			RequestIDHeader:   envString("REQUEST_ID_HEADER", "X-Request-ID"),
		},
		Server: ServerConfig{
			Host:            envString("SERVER_HOST", "0.0.0.0"),
			Port:            envString("SERVER_PORT", "8080"),
			ReadTimeout:     env("SERVER_READ_TIMEOUT", 15*time.Second, time.ParseDuration),
			WriteTimeout:    env("SERVER_WRITE_TIMEOUT", 30*time.Second, time.ParseDuration),
			IdleTimeout:     env("SERVER_IDLE_TIMEOUT", 60*time.Second, time.ParseDuration),
			MaxHeaderBytes:  env("SERVER_MAX_HEADER_BYTES", 1<<20, strconv.Atoi), // 1 MB
			GracefulTimeout: env("SERVER_GRACEFUL_TIMEOUT", 30*time.Second, time.ParseDuration),
			TLSEnabled:      env("TLS_ENABLED", false, strconv.ParseBool),
			TLSCertFile:     envString("TLS_CERT_FILE", ""),
			TLSKeyFile:      envString("TLS_KEY_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate runs the base rules, plus the production rules in production
func (c *Config) Validate() error {
	rules := baseRules
	if c.IsProduction() {
		rules = append(slices.Clip(baseRules), productionRules...)
	}

	for _, check := range rules {
		if err := check(c); err != nil {
			return err
		}
	}
	return nil
}

// GetServerAddress returns the formatted server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GetRedisAddress returns the formatted redis address
func (c *Config) GetRedisAddress() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}

func setDefaults() {
	viper.SetDefault("APP_NAME", "meta4-erp")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("UPSTREAM_MODE", UpstreamHTTP)
}

// env reads key through viper. Unset or unparsable values yield def.
func env[T any](key string, def T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(viper.GetString(key))
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		return def
	}
	return v
}

func envString(key, def string) string {
	return env(key, def, func(s string) (string, error) { return s, nil })
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// splitList parses a comma separated list, dropping blank entries
func splitList(s string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out, nil
}

// parseQueues reads "name:priority" pairs. No valid pair means {"default": 1}.
func parseQueues(raw string) map[string]int {
	queues := make(map[string]int)
	for _, pair := range strings.Split(raw, ",") {
		name, weight, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSpace(weight)); err == nil {
			queues[strings.TrimSpace(name)] = n
		}
	}
	if len(queues) == 0 {
		queues["default"] = 1
	}
	return queues
}
