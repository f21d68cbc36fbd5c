package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Security      SecurityConfig      `mapstructure:"security"`
	Recommend     RecommendConfig     `mapstructure:"recommend"`
	Jobs          JobsConfig          `mapstructure:"jobs"`
	Log           LogConfig           `mapstructure:"log"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DatabaseConfig holds MongoDB connection settings
type DatabaseConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	Name           string        `mapstructure:"name"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	AuthSource     string        `mapstructure:"auth_source"`
	ReplicaSet     string        `mapstructure:"replica_set"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// JWTConfig holds JWT token settings
type JWTConfig struct {
	Secret              string        `mapstructure:"secret"`
	AccessTokenDuration time.Duration `mapstructure:"access_token_duration"`
	Issuer              string        `mapstructure:"issuer"`
}

// SecurityConfig holds auth enforcement settings. The API ships open by
// default; RequireAuth gates every /api route behind a bearer token.
type SecurityConfig struct {
	RequireAuth bool `mapstructure:"require_auth"`
}

// RecommendConfig holds external recommender settings
type RecommendConfig struct {
	BaseURL          string        `mapstructure:"base_url"`
	APIKey           string        `mapstructure:"api_key"`
	Timeout          time.Duration `mapstructure:"timeout"`
	BreakerThreshold int           `mapstructure:"breaker_threshold"`
	BreakerCooldown  time.Duration `mapstructure:"breaker_cooldown"`
}

// JobsConfig holds background job settings
type JobsConfig struct {
	QueueKey              string        `mapstructure:"queue_key"`
	Concurrency           int           `mapstructure:"concurrency"`
	MaxRetries            int           `mapstructure:"max_retries"`
	CleanupSchedule       string        `mapstructure:"cleanup_schedule"`
	ReconcileSchedule     string        `mapstructure:"reconcile_schedule"`
	NotificationRetention time.Duration `mapstructure:"notification_retention"`
	LockTTL               time.Duration `mapstructure:"lock_ttl"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// ObservabilityConfig holds metrics and tracing settings
type ObservabilityConfig struct {
	MetricsEnabled bool `mapstructure:"metrics_enabled"`
	TracingEnabled bool `mapstructure:"tracing_enabled"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file details
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/bookloop/")

	// Set environment variable prefix
	v.SetEnvPrefix("BOOKLOOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required settings
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "bookloop")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", true)

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 27017)
	v.SetDefault("database.name", "bookloop")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.connect_timeout", 10*time.Second)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// JWT defaults
	v.SetDefault("jwt.secret", os.Getenv("JWT_SECRET"))
	v.SetDefault("jwt.access_token_duration", 24*time.Hour)
	v.SetDefault("jwt.issuer", "bookloop")

	// Security defaults
	v.SetDefault("security.require_auth", false)

	// Recommender defaults
	v.SetDefault("recommend.base_url", "")
	v.SetDefault("recommend.api_key", os.Getenv("GEMINI_API_KEY"))
	v.SetDefault("recommend.timeout", 3*time.Second)
	v.SetDefault("recommend.breaker_threshold", 5)
	v.SetDefault("recommend.breaker_cooldown", 30*time.Second)

	// Jobs defaults
	v.SetDefault("jobs.queue_key", "bookloop:jobs")
	v.SetDefault("jobs.concurrency", 4)
	v.SetDefault("jobs.max_retries", 3)
	v.SetDefault("jobs.cleanup_schedule", "0 3 * * *")
	v.SetDefault("jobs.reconcile_schedule", "*/30 * * * *")
	v.SetDefault("jobs.notification_retention", 30*24*time.Hour)
	v.SetDefault("jobs.lock_ttl", 5*time.Minute)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "json")

	// Observability defaults
	v.SetDefault("observability.metrics_enabled", true)
	v.SetDefault("observability.tracing_enabled", false)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Security.RequireAuth && c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required when auth is enforced")
	}
	if c.Jobs.Concurrency < 1 {
		return fmt.Errorf("jobs concurrency must be at least 1")
	}
	return nil
}

// MongoURI returns the MongoDB connection URI.
func (c *DatabaseConfig) MongoURI() string {
	if c.User != "" && c.Password != "" {
		uri := fmt.Sprintf("mongodb://%s:%s@%s:%d/%s",
			c.User, c.Password, c.Host, c.Port, c.Name)
		return c.appendMongoOptions(uri)
	}
	uri := fmt.Sprintf("mongodb://%s:%d/%s", c.Host, c.Port, c.Name)
	return c.appendMongoOptions(uri)
}

// appendMongoOptions adds optional query parameters to the MongoDB URI.
func (c *DatabaseConfig) appendMongoOptions(uri string) string {
	params := []string{}
	if c.AuthSource != "" {
		params = append(params, "authSource="+c.AuthSource)
	}
	if c.ReplicaSet != "" {
		params = append(params, "replicaSet="+c.ReplicaSet)
	}
	if len(params) > 0 {
		uri += "?" + strings.Join(params, "&")
	}
	return uri
}

// Addr returns the host:port address for the Redis client.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsProduction returns true when running in the production environment.
func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}
