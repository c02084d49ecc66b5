// Package config loads the optional drip.toml file that supplies defaults
// for the command line tool. Flags always win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const DefaultPath = "drip.toml"

type Config struct {
	Roots    []string    `toml:"roots"`
	Format   string      `toml:"format"`
	Color    bool        `toml:"color"`
	LogLevel string      `toml:"log_level"`
	REPL     REPLConfig  `toml:"repl"`
	Watch    WatchConfig `toml:"watch"`
}

type REPLConfig struct {
	HistoryFile string `toml:"history_file"`
	Prompt      string `toml:"prompt"`
}

type WatchConfig struct {
	Debounce Duration `toml:"debounce"`
}

// Duration reads Go duration strings such as "250ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the file at path. A missing file yields the defaults unless
// the path was given explicitly.
func Load(path string, explicit bool) (*Config, error) {
	var c Config
	_, err := toml.DecodeFile(path, &c)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return Default(), nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config file not found: %s", path)
	default:
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	c.applyDefaults()
	c.expandEnvVars()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if len(c.Roots) == 0 {
		c.Roots = []string{"."}
	}
	if c.Format == "" {
		c.Format = "text"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "→ "
	}
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 200 * time.Millisecond
	}
}

func (c *Config) expandEnvVars() {
	for idx, root := range c.Roots {
		c.Roots[idx] = os.ExpandEnv(root)
	}
	c.REPL.HistoryFile = os.ExpandEnv(c.REPL.HistoryFile)
}
