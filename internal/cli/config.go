package cli

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cliquer/internal/server"
	"github.com/matzehuels/cliquer/pkg/analysis"
	"github.com/matzehuels/cliquer/pkg/clique"
	"github.com/matzehuels/cliquer/pkg/errors"
)

// Cache backends selectable in the [cache] section.
const (
	backendNone  = "none"
	backendFile  = "file"
	backendRedis = "redis"
)

// Config is the TOML configuration file. Every field has a default, so an
// absent file is equivalent to an empty one.
type Config struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Cache    CacheConfig    `toml:"cache"`
	Server   ServerConfig   `toml:"server"`
}

// AnalysisConfig holds defaults for the analysis commands.
type AnalysisConfig struct {
	Prefix   string `toml:"prefix"`
	Parallel bool   `toml:"parallel"`
	Workers  int    `toml:"workers"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend       string   `toml:"backend"`
	Dir           string   `toml:"dir"`
	TTL           duration `toml:"ttl"`
	RedisAddr     string   `toml:"redis_addr"`
	RedisPassword string   `toml:"redis_password"`
	RedisDB       int      `toml:"redis_db"`
	KeyPrefix     string   `toml:"key_prefix"`
}

// ServerConfig configures "cliquer serve".
type ServerConfig struct {
	Addr         string   `toml:"addr"`
	MaxBodyBytes int64    `toml:"max_body_bytes"`
	Timeout      duration `toml:"timeout"`
}

// duration decodes Go duration strings such as "24h" or "90s".
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

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// defaultConfig returns the configuration used when no file is present.
func defaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Prefix: clique.DefaultPrefix,
		},
		Cache: CacheConfig{
			Backend:   backendNone,
			TTL:       duration{analysis.DefaultCacheTTL},
			RedisAddr: "localhost:6379",
			KeyPrefix: appName + ":",
		},
		Server: ServerConfig{
			Addr:         server.DefaultAddr,
			MaxBodyBytes: server.DefaultMaxBodyBytes,
			Timeout:      duration{server.DefaultTimeout},
		},
	}
}

// loadConfig reads the TOML file at path over the defaults. An empty path
// falls back to the default location, which may be absent.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := errors.ValidatePrefix(c.Analysis.Prefix); err != nil {
		return errors.New(errors.ErrCodeInvalidConfig, "analysis.prefix: %s", errors.UserMessage(err))
	}
	if c.Analysis.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "analysis.workers must be >= 0, got %d", c.Analysis.Workers)
	}
	switch c.Cache.Backend {
	case backendNone, backendFile, backendRedis:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"cache.backend %q (must be one of: %s, %s, %s)", c.Cache.Backend, backendNone, backendFile, backendRedis)
	}
	if c.Cache.Backend == backendRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if c.Server.MaxBodyBytes < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.max_body_bytes must not be negative")
	}
	return nil
}

// defaultConfigPath returns $XDG_CONFIG_HOME/cliquer/config.toml, falling
// back to ~/.config/cliquer/config.toml.
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
