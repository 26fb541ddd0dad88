package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the file-backed CLI configuration. Every field has a
// working default; the config file and command flags only override.
type Config struct {
	// CacheDir overrides the XDG cache directory for file-backed caching.
	CacheDir string `toml:"cache_dir"`

	// Listen is the serve command's bind address.
	Listen string `toml:"listen"`

	Layout LayoutConfig `toml:"layout"`
	Redis  RedisConfig  `toml:"redis"`
	Mongo  MongoConfig  `toml:"mongo"`
}

// LayoutConfig sets default spacing for computed layouts.
type LayoutConfig struct {
	NodeGap float64 `toml:"node_gap"`
	RankGap float64 `toml:"rank_gap"`
}

// RedisConfig enables the Redis cache backend when Addr is set.
type RedisConfig struct {
	Addr string `toml:"addr"`
}

// MongoConfig enables layout persistence for the serve command when URI
// is set.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Listen: ":8080",
	}
}

// LoadConfig reads the TOML config at path, or the default location
// (~/.config/evoviz/config.toml) when path is empty. A missing default
// file is not an error; a missing explicit path is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return cfg, nil
		}
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG config location for the CLI.
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
