package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	// RedirectAfter is the pause the client shows before leaving the
	// registration wizard for the login page.
	RedirectAfter time.Duration `env:"REGISTER_REDIRECT_AFTER, default=5s"`
	// SeedDefaultUser registers the demo administrator at startup.
	SeedDefaultUser bool `env:"SEED_DEFAULT_USER, default=true"`
	// ActivityWorkers is the number of activity log workers.
	ActivityWorkers int `env:"ACTIVITY_WORKERS, default=4"`

	Store     StoreConfig
	Session   SessionConfig
	Token     TokenConfig
	Password  PasswordConfig
	RateLimit RateLimitConfig
	Mongo     MongoConfig
	Redis     RedisConfig
}

// StoreConfig selects the user directory and activity log backend.
type StoreConfig struct {
	Driver     string        `env:"STORE_DRIVER,      default=memory"`
	LatencyMin time.Duration `env:"STORE_LATENCY_MIN, default=300ms"`
	LatencyMax time.Duration `env:"STORE_LATENCY_MAX, default=1000ms"`
}

// SessionConfig selects the device token, tab state and dedup backend.
type SessionConfig struct {
	Driver string        `env:"SESSION_DRIVER, default=memory"`
	TabTTL time.Duration `env:"TAB_TTL,        default=12h"`
}

type TokenConfig struct {
	Format string        `env:"TOKEN_FORMAT, default=opaque"`
	Secret string        `env:"TOKEN_SECRET"`
	TTL    time.Duration `env:"TOKEN_TTL,    default=0s"`
}

type PasswordConfig struct {
	Hashing    string `env:"PASSWORD_HASHING, default=bcrypt"`
	BcryptCost int    `env:"BCRYPT_COST,      default=10"`
}

type RateLimitConfig struct {
	// AuthRPS limits requests per second per client IP on /api/auth.
	AuthRPS   float64 `env:"AUTH_RATE_LIMIT, default=5"`
	AuthBurst int     `env:"AUTH_RATE_BURST, default=10"`
}

type MongoConfig struct {
	URI         string `env:"MONGO_URI,       default=mongodb://localhost:27017"`
	Database    string `env:"MONGO_DB,        default=trade_portal"`
	MaxPoolSize uint64 `env:"MONGO_POOL_SIZE, default=0"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
	DriverRedis  = "redis"

	TokenOpaque = "opaque"
	TokenJWT    = "jwt"

	HashBcrypt = "bcrypt"
	HashPlain  = "plain"
)

// Load reads an optional .env file and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	return process(ctx, envconfig.OsLookuper())
}

func process(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown drivers and incomplete token settings.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverMongo:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.Store.Driver)
	}
	switch c.Session.Driver {
	case DriverMemory, DriverRedis:
	default:
		return fmt.Errorf("config: unknown SESSION_DRIVER %q", c.Session.Driver)
	}
	switch c.Token.Format {
	case TokenOpaque:
	case TokenJWT:
		if c.Token.Secret == "" {
			return errors.New("config: TOKEN_SECRET is required when TOKEN_FORMAT=jwt")
		}
	default:
		return fmt.Errorf("config: unknown TOKEN_FORMAT %q", c.Token.Format)
	}
	switch c.Password.Hashing {
	case HashBcrypt, HashPlain:
	default:
		return fmt.Errorf("config: unknown PASSWORD_HASHING %q", c.Password.Hashing)
	}
	if c.Store.LatencyMax < c.Store.LatencyMin {
		return errors.New("config: STORE_LATENCY_MAX must not be below STORE_LATENCY_MIN")
	}
	return nil
}
