package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Session       SessionConfig
	Password      PasswordConfig
	Redis         RedisConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ELDERCARE_APP_ENV" required:"true"`
	Port         string `envconfig:"ELDERCARE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"ELDERCARE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ELDERCARE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"ELDERCARE_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"ELDERCARE_DB_DSN" default:"eldercare.db"`

	MaxOpenConns    int           `envconfig:"ELDERCARE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ELDERCARE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ELDERCARE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ELDERCARE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) validate() error {
	switch db.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", db.Driver)
	}
	if db.DSN == "" {
		return fmt.Errorf("ELDERCARE_DB_DSN is required")
	}
	return nil
}

// SessionConfig shapes the signed session cookie. The signing secret is
// injected from the environment and never defaulted.
type SessionConfig struct {
	Secret     string `envconfig:"ELDERCARE_SESSION_SECRET" required:"true"`
	CookieName string `envconfig:"ELDERCARE_SESSION_COOKIE" default:"eldercare_session"`
	Issuer     string `envconfig:"ELDERCARE_SESSION_ISSUER" default:"eldercare"`
	TTLMinutes int    `envconfig:"ELDERCARE_SESSION_TTL_MINUTES" default:"1440"`
	Secure     bool   `envconfig:"ELDERCARE_SESSION_SECURE" default:"false"`
}

// TTL returns the session lifetime configured in minutes.
func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"ELDERCARE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"ELDERCARE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"ELDERCARE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"ELDERCARE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"ELDERCARE_ARGON_KEY_LEN" default:"32"`
}

// RedisConfig is optional; when URL is empty the rate limiter is disabled
// and the app runs without redis.
type RedisConfig struct {
	URL          string        `envconfig:"ELDERCARE_REDIS_URL"`
	PoolSize     int           `envconfig:"ELDERCARE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ELDERCARE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ELDERCARE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ELDERCARE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ELDERCARE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != ""
}

type AuthRateLimitConfig struct {
	Window        time.Duration `envconfig:"ELDERCARE_AUTH_RATE_LIMIT_WINDOW" default:"1m"`
	UsernameLimit int           `envconfig:"ELDERCARE_AUTH_RATE_LIMIT_USERNAME_LIMIT" default:"5"`
	IPLimit       int           `envconfig:"ELDERCARE_AUTH_RATE_LIMIT_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ELDERCARE_AUTO_MIGRATE" default:"true"`
}
