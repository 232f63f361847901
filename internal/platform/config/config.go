// Package config loads process configuration from flags, environment,
// an optional config file and a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	settings "stock_ticker/internal/feature/settings/domain"
)

// EnvPrefix prefixes every environment variable, e.g. SST_REDIS_HOST.
const EnvPrefix = "SST"

// Config is the process configuration.
type Config struct {
	ServerAddr string
	LogLevel   string

	Redis    RedisConfig
	Database DatabaseConfig
	Twelve   ProviderConfig
	FMP      ProviderConfig
	Cache    CacheConfig
	Nonce    NonceConfig

	// RateLimitPerMinute caps upstream calls made by the cache warmer.
	RateLimitPerMinute int

	// Constants are the process-wide settings layer.
	Constants settings.Values
}

// RedisConfig configures the quote cache. An empty Host disables Redis.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port.
func (r RedisConfig) Addr() string { return r.Host + ":" + r.Port }

// DatabaseConfig configures the option and banner symbol store.
type DatabaseConfig struct {
	Driver  string
	DSN     string
	Migrate bool
}

// ProviderConfig configures one upstream quote API.
type ProviderConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CacheConfig configures quote caching.
type CacheConfig struct {
	TTL           time.Duration
	Namespace     string
	SweepInterval time.Duration
}

// NonceConfig configures refresh tokens. An empty Secret makes the server
// generate one at startup.
type NonceConfig struct {
	Secret   string
	Lifetime time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("log_level", "info")

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "file:stock_ticker.db?_foreign_keys=on")
	v.SetDefault("database.migrate", true)

	v.SetDefault("twelve.base_url", "https://api.twelvedata.com")
	v.SetDefault("twelve.timeout", 12*time.Second)
	v.SetDefault("fmp.base_url", "https://financialmodelingprep.com")
	v.SetDefault("fmp.timeout", 12*time.Second)

	v.SetDefault("cache.ttl", 60*time.Minute)
	v.SetDefault("cache.namespace", "quotes")
	v.SetDefault("cache.sweep_interval", 5*time.Minute)

	v.SetDefault("nonce.secret", "")
	v.SetDefault("nonce.lifetime", 12*time.Hour)

	// Twelve Data free plan: 8 credits per minute
	v.SetDefault("ratelimit.per_minute", 8)

	for _, name := range settings.OptionNames {
		v.SetDefault(name, "")
	}
}

// Load reads the configuration. Precedence: flags > environment > config
// file > defaults. flags may be nil; only flags whose names match a key
// (dots written as dashes, e.g. --server-addr) are bound.
func Load(flags *pflag.FlagSet) (Config, error) {
	loadDotenv()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/stock_ticker/")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		slog.Debug("loaded config file", "file", v.ConfigFileUsed())
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return Config{}, err
		}
	}

	return fromViper(v), nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", ".")
		if !isKnownKey(v, key) {
			key = strings.ReplaceAll(f.Name, "-", "_")
		}
		if !isKnownKey(v, key) {
			return
		}
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

func isKnownKey(v *viper.Viper, key string) bool {
	for _, k := range v.AllKeys() {
		if k == key {
			return true
		}
	}
	return false
}

func fromViper(v *viper.Viper) Config {
	constants := settings.Values{}
	for _, name := range settings.OptionNames {
		if val := strings.TrimSpace(v.GetString(name)); val != "" {
			constants[name] = val
		}
	}

	return Config{
		ServerAddr: v.GetString("server.addr"),
		LogLevel:   v.GetString("log_level"),
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetString("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Database: DatabaseConfig{
			Driver:  v.GetString("database.driver"),
			DSN:     v.GetString("database.dsn"),
			Migrate: v.GetBool("database.migrate"),
		},
		Twelve: ProviderConfig{
			BaseURL: v.GetString("twelve.base_url"),
			Timeout: v.GetDuration("twelve.timeout"),
		},
		FMP: ProviderConfig{
			BaseURL: v.GetString("fmp.base_url"),
			Timeout: v.GetDuration("fmp.timeout"),
		},
		Cache: CacheConfig{
			TTL:           v.GetDuration("cache.ttl"),
			Namespace:     v.GetString("cache.namespace"),
			SweepInterval: v.GetDuration("cache.sweep_interval"),
		},
		Nonce: NonceConfig{
			Secret:   v.GetString("nonce.secret"),
			Lifetime: v.GetDuration("nonce.lifetime"),
		},
		RateLimitPerMinute: v.GetInt("ratelimit.per_minute"),
		Constants:          constants,
	}
}

// loadDotenv loads .env into the environment without overriding variables
// that are already set. NO_DOTENV=1 skips it; ENV_FILE selects another file.
func loadDotenv() {
	if os.Getenv("NO_DOTENV") == "1" {
		return
	}
	path := ".env"
	if p := os.Getenv("ENV_FILE"); p != "" {
		path = p
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load env file", "path", path, "error", err)
	}
}
