package internal

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type Config struct {
	File        string `toml:"file"`
	HistoryFile string `toml:"history_file"`
	Exclusive   bool   `toml:"exclusive"`
	AutoLoad    bool   `toml:"auto_load"`
	LogLevel    string `toml:"log_level"`
	SentryDSN   string `toml:"sentry_dsn"`
}

const DEFAULT_FILE = "./contacts.db"
const DEFAULT_HISTORY_FILE_NAME = ".contacts_history"
const DEFAULT_LOG_LEVEL = "warn"

func DefaultConfig() *Config {
	return &Config{
		File:        DEFAULT_FILE,
		HistoryFile: filepath.Join(os.TempDir(), DEFAULT_HISTORY_FILE_NAME),
		AutoLoad:    true,
		LogLevel:    DEFAULT_LOG_LEVEL,
	}
}

// LoadConfig reads a TOML file over the defaults. Keys missing from the
// file keep their default value.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, errors.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// SlogLevel maps LogLevel ("debug", "info", "warn", "error") to a slog
// level. Unknown values fall back to warn.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}
