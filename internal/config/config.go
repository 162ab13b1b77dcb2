package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Log       LogConfig       `mapstructure:"log"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Seed      SeedConfig      `mapstructure:"seed"`

	// Set from command line flags, never from the file.
	MigrateOnly bool `mapstructure:"-"`
}

type ServerConfig struct {
	Port   string
	Mode   string
	Locale string
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
	// Path is the database file when Driver is sqlite.
	Path string
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
	CookieName string        `mapstructure:"cookie_name"`
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	StatsTTL time.Duration `mapstructure:"stats_ttl_seconds"`
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests      int `mapstructure:"max_requests"`
	WindowMinutes    int `mapstructure:"window_minutes"`
	LoginMaxRequests int `mapstructure:"login_max_requests"`
}

type SeedConfig struct {
	AdminPassword string `mapstructure:"admin_password"`
	SampleTest    bool   `mapstructure:"sample_test"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.locale", "en")

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "phishing_trainer.db")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)

	v.SetDefault("jwt.expire_hours", 24)
	v.SetDefault("jwt.cookie_name", "session")

	v.SetDefault("redis.stats_ttl_seconds", 30)

	v.SetDefault("log.file", "logs/app.log")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age", 30)
	v.SetDefault("log.compress", true)

	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)
	v.SetDefault("rate_limit.login_max_requests", 10)

	v.SetDefault("seed.admin_password", "admin123")
	v.SetDefault("seed.sample_test", true)
}

// LoadConfig reads config.yaml from path. A key can be overridden from the
// environment as PHISH_TRAINER_<SECTION>_<KEY>, e.g.
// PHISH_TRAINER_REDIS_STATS_TTL_SECONDS, except the keys bound explicitly
// below, which are read from their unprefixed variable (JWT_SECRET, ...).
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("PHISH_TRAINER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Database
	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")
	v.BindEnv("database.path", "DATABASE_PATH")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	v.BindEnv("redis.enabled", "REDIS_ENABLED")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("server.locale", "SERVER_LOCALE")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	// Seed
	v.BindEnv("seed.admin_password", "ADMIN_PASSWORD")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour
	cfg.Redis.StatsTTL = cfg.Redis.StatsTTL * time.Second

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Database.Driver == DriverSQLite {
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				os.MkdirAll(dir, 0755)
			}
		}
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret must be set")
	}

	// release mode needs a real secret
	if c.Server.Mode == "release" && len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(c.JWT.Secret))
	}

	if c.RateLimit.MaxRequests <= 0 || c.RateLimit.WindowMinutes <= 0 || c.RateLimit.LoginMaxRequests <= 0 {
		return fmt.Errorf("rate_limit values must be positive")
	}

	return nil
}

// IsRelease reports whether cookies should be marked Secure.
func (c *Config) IsRelease() bool {
	return c.Server.Mode == "release"
}
