package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the pricing service
type Config struct {
	AppName   string          `mapstructure:"app_name"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	GRPC      GRPCConfig      `mapstructure:"grpc"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Pricing   PricingConfig   `mapstructure:"pricing"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

// HTTPConfig holds REST API configuration
type HTTPConfig struct {
	Address         string        `mapstructure:"address"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// GRPCConfig holds gRPC server configuration
type GRPCConfig struct {
	Address          string        `mapstructure:"address"`
	EnableReflection bool          `mapstructure:"enable_reflection"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
}

// PostgresConfig holds PostgreSQL configuration
type PostgresConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// RedisConfig holds Redis configuration. An empty address disables the quote cache.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	DB       int    `mapstructure:"db"`
	Password string `mapstructure:"password"`
}

// KafkaConfig holds booking event publisher configuration
type KafkaConfig struct {
	Enabled    bool     `mapstructure:"enabled"`
	Brokers    []string `mapstructure:"brokers"`
	Topic      string   `mapstructure:"topic"`
	ClientID   string   `mapstructure:"client_id"`
	MaxRetries int      `mapstructure:"max_retries"`

	// The outbox relay runs even when Kafka is disabled and drains into a no-op publisher
	OutboxInterval  time.Duration `mapstructure:"outbox_interval"`
	OutboxBatchSize int           `mapstructure:"outbox_batch_size"`
}

// AuthConfig holds bearer token validation settings. One of the keys must be set.
type AuthConfig struct {
	PublicKeyPEM string `mapstructure:"public_key_pem"`
	HMACSecret   string `mapstructure:"hmac_secret"`
	Issuer       string `mapstructure:"issuer"`
}

// PricingConfig holds quote computation settings
type PricingConfig struct {
	SearchConcurrency int           `mapstructure:"search_concurrency"`
	CacheTTL          time.Duration `mapstructure:"cache_ttl"`
	MaxNights         int           `mapstructure:"max_nights"`
}

// TracingConfig holds OpenTelemetry configuration
type TracingConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	JaegerEndpoint string  `mapstructure:"jaeger_endpoint"`
	SamplingRatio  float64 `mapstructure:"sampling_ratio"`
	Environment    string  `mapstructure:"environment"`
}

// MetricsConfig holds the Prometheus endpoint configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// RateLimitConfig holds per-client request limits. Limiting needs Redis.
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return unmarshal(v)
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() (*Config, error) {
	return unmarshal(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values. Every key read from the
// environment needs a default so AutomaticEnv can bind it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "pricing-service")

	v.SetDefault("http.address", ":8080")
	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 15*time.Second)
	v.SetDefault("http.shutdown_timeout", 30*time.Second)

	v.SetDefault("grpc.address", ":8081")
	v.SetDefault("grpc.enable_reflection", false)
	v.SetDefault("grpc.request_timeout", 15*time.Second)

	v.SetDefault("postgres.dsn", "")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 2)
	v.SetDefault("postgres.max_conn_lifetime", time.Hour)
	v.SetDefault("postgres.auto_migrate", true)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.password", "")

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "booking-events")
	v.SetDefault("kafka.client_id", "pricing-service")
	v.SetDefault("kafka.max_retries", 3)
	v.SetDefault("kafka.outbox_interval", 2*time.Second)
	v.SetDefault("kafka.outbox_batch_size", 50)

	v.SetDefault("auth.public_key_pem", "")
	v.SetDefault("auth.hmac_secret", "")
	v.SetDefault("auth.issuer", "")

	v.SetDefault("pricing.search_concurrency", 8)
	v.SetDefault("pricing.cache_ttl", 2*time.Minute)
	v.SetDefault("pricing.max_nights", 365)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.jaeger_endpoint", "http://localhost:14268/api/traces")
	v.SetDefault("tracing.sampling_ratio", 1.0)
	v.SetDefault("tracing.environment", "development")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.address", ":9090")

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests_per_minute", 120)

	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.AppName == "" {
		return fmt.Errorf("app_name is required")
	}
	if c.HTTP.Address == "" && c.GRPC.Address == "" {
		return fmt.Errorf("at least one of http.address or grpc.address is required")
	}
	if c.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn is required")
	}
	if c.Postgres.MaxConns <= 0 {
		return fmt.Errorf("postgres.max_conns must be greater than 0")
	}
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required when kafka is enabled")
		}
		if c.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka is enabled")
		}
	}
	if c.Kafka.OutboxInterval <= 0 || c.Kafka.OutboxBatchSize <= 0 {
		return fmt.Errorf("kafka.outbox_interval and kafka.outbox_batch_size must be greater than 0")
	}
	if c.Auth.PublicKeyPEM == "" && c.Auth.HMACSecret == "" {
		return fmt.Errorf("auth.public_key_pem or auth.hmac_secret is required")
	}
	if c.Pricing.SearchConcurrency <= 0 {
		return fmt.Errorf("pricing.search_concurrency must be greater than 0")
	}
	if c.Pricing.CacheTTL < 0 {
		return fmt.Errorf("pricing.cache_ttl must not be negative")
	}
	if c.Pricing.MaxNights <= 0 {
		return fmt.Errorf("pricing.max_nights must be greater than 0")
	}
	if c.Tracing.SamplingRatio < 0 || c.Tracing.SamplingRatio > 1 {
		return fmt.Errorf("tracing.sampling_ratio must be between 0 and 1")
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be greater than 0")
	}
	return nil
}

// CacheEnabled reports whether quotes should be cached in Redis
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != "" && c.Pricing.CacheTTL > 0
}
