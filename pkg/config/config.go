package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/miketth/numcaps/pkg/numcaps"
	"codeberg.org/miketth/numcaps/pkg/relayout"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	StoreSQLite = "sqlite"
	StoreJSON   = "json"
	StoreMemory = "memory"
)

const appName = "numcaps"

var ErrUnknownStore = errors.New("unknown store")

type PairConfig struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

type Config struct {
	PollInterval time.Duration     `yaml:"poll_interval"`
	WidthLimit   int               `yaml:"width_limit"`
	Store        string            `yaml:"store"`
	StorePath    string            `yaml:"store_path"`
	Layouts      []relayout.Layout `yaml:"layouts"`
	Pairs        []PairConfig      `yaml:"pairs"`
}

// DefaultPath is where the config file is looked up when -config is not
// given.
func DefaultPath() string {
	if path, err := xdg.SearchConfigFile(appName + "/config.yaml"); err == nil {
		return path
	}
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// Load reads the YAML config at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.PollInterval <= 0 {
		c.PollInterval = numcaps.DefaultPollInterval
	}
	if c.WidthLimit <= 0 {
		c.WidthLimit = numcaps.DefaultWidthLimit
	}
	if c.Store == "" {
		c.Store = StoreJSON
	}
	if len(c.Pairs) == 0 {
		c.Pairs = []PairConfig{{First: relayout.Ukrainian.Name, Second: relayout.English.Name}}
	}
}

func (c *Config) validate() error {
	switch c.Store {
	case StoreSQLite, StoreJSON, StoreMemory:
	default:
		return fmt.Errorf("store %q: %w", c.Store, ErrUnknownStore)
	}

	if _, err := c.BuildPairs(); err != nil {
		return err
	}

	return nil
}

// BuildPairs resolves the configured pairs against the built-in layouts
// overlaid with the configured ones.
func (c *Config) BuildPairs() ([]relayout.Pair, error) {
	registry := relayout.DefaultRegistry()
	for _, l := range c.Layouts {
		registry.Add(l)
	}

	pairs := make([]relayout.Pair, 0, len(c.Pairs))
	for _, pc := range c.Pairs {
		p, err := registry.Pair(pc.First, pc.Second)
		if err != nil {
			return nil, fmt.Errorf("pair %s/%s: %w", pc.First, pc.Second, err)
		}
		pairs = append(pairs, p)
	}

	return pairs, nil
}

// StoreFile returns the settings file for the selected store, creating its
// parent directory under the XDG data home when no path is configured.
func (c *Config) StoreFile() (string, error) {
	if c.StorePath != "" {
		return c.StorePath, nil
	}

	var name string
	switch c.Store {
	case StoreSQLite:
		name = "settings.db"
	case StoreJSON:
		name = "settings.json"
	default:
		return "", nil
	}

	path, err := xdg.DataFile(appName + "/" + name)
	if err != nil {
		return "", fmt.Errorf("resolve data file: %w", err)
	}
	return path, nil
}
