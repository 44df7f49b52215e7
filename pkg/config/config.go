// Package config loads server configuration from a TOML file.
//
// All fields have working defaults, so a missing config file is not an
// error: the server starts with the built-in reference data, a file cache
// under the user cache directory, and the default listen address.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/fieldgeneral/playcall/pkg/errors"
)

// Cache backend names accepted in the config file.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config holds server settings.
type Config struct {
	// Addr is the HTTP listen address (host:port).
	Addr string `toml:"addr"`

	// DataDir optionally overrides the embedded reference data with
	// defenses.json and offensive_concepts.json from this directory.
	DataDir string `toml:"data_dir"`

	// CacheBackend selects the diagram cache: "file", "redis", or "none".
	CacheBackend string `toml:"cache_backend"`

	// CacheDir is the directory for the file cache backend.
	CacheDir string `toml:"cache_dir"`

	// RedisAddr is the Redis address for the redis cache backend.
	RedisAddr string `toml:"redis_addr"`

	// CacheTTL is how long rendered diagrams stay cached.
	CacheTTL duration `toml:"cache_ttl"`
}

// duration wraps time.Duration for TOML decoding of strings like "12h".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Addr:         ":5002",
		CacheBackend: CacheFile,
		CacheDir:     defaultCacheDir(),
		RedisAddr:    "localhost:6379",
		CacheTTL:     duration{24 * time.Hour},
	}
}

// Load reads the TOML config at path on top of the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.CacheBackend {
	case CacheFile, CacheRedis, CacheNone:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"cache_backend must be one of: file, redis, none (got %q)", c.CacheBackend)
	}
}

// TTL returns the configured cache TTL.
func (c Config) TTL() time.Duration {
	return c.CacheTTL.Duration
}

func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".playcall-cache"
	}
	return filepath.Join(base, "playcall")
}
