// Package config loads chattext's TOML config file, with overrides from the environment
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml"

	"awesome-dragon.science/go/chattext/pkg/log"
	"awesome-dragon.science/go/chattext/pkg/placeholder"
)

// EnvPrefix is prepended to every environment variable that overrides config
const EnvPrefix = "CHATTEXT_"

// Defaults used when a key is absent from the config
const (
	DefaultLogLevel     = "info"
	DefaultProviderName = "PlaceholderAPI"
)

// Config is the main config struct
type Config struct {
	OriginalPath string `toml:"-"`

	LogLevel string   `toml:"log_level"`
	Provider Provider `toml:"provider"`
}

// Provider configures the built in placeholder provider
type Provider struct {
	Name      string            `toml:"name"`
	Enabled   bool              `toml:"enabled"`
	HostStats bool              `toml:"host_stats"`
	Static    map[string]string `toml:"static"`
	Players   []Player          `toml:"players"`
}

// Player is a known player that can be used with the console's "as" command
type Player struct {
	Name string `toml:"name"`
	UUID string `toml:"uuid"`
}

// Default returns the config used when no config file exists
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Provider: Provider{Name: DefaultProviderName, Enabled: true, HostStats: true},
	}
}

// GetConfig fetches the config located at the given path. If the file does not exist, the default config is used.
// Environment overrides are applied in both cases
func GetConfig(path string) (*Config, error) {
	var out *Config

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		out = Default()
	} else {
		tree, err := toml.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read or parse config file: %w", err)
		}

		if out, err = makeConfig(tree); err != nil {
			return nil, fmt.Errorf("could not unmarshal config: %w", err)
		}
	}

	out.OriginalPath = path

	return finish(out)
}

// Parse parses the given TOML string as a config. Environment overrides are applied
func Parse(data string) (*Config, error) {
	tree, err := toml.Load(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}

	out, err := makeConfig(tree)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return finish(out)
}

// overrides holds everything that can be set from the environment. Unset variables leave their field nil
type overrides struct {
	LogLevel          *string `env:"LOG_LEVEL"`
	ProviderName      *string `env:"PROVIDER_NAME"`
	ProviderEnabled   *bool   `env:"PROVIDER_ENABLED"`
	ProviderHostStats *bool   `env:"PROVIDER_HOST_STATS"`
}

func (o *overrides) apply(c *Config) {
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}

	if o.ProviderName != nil {
		c.Provider.Name = *o.ProviderName
	}

	if o.ProviderEnabled != nil {
		c.Provider.Enabled = *o.ProviderEnabled
	}

	if o.ProviderHostStats != nil {
		c.Provider.HostStats = *o.ProviderHostStats
	}
}

func finish(c *Config) (*Config, error) {
	o := overrides{}
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("could not apply environment overrides: %w", err)
	}

	o.apply(c)

	if err := validateConfig(c); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return c, nil
}

func makeConfig(tree *toml.Tree) (*Config, error) {
	out := new(Config)
	if err := tree.Unmarshal(out); err != nil {
		return nil, err
	}

	if out.LogLevel == "" {
		out.LogLevel = DefaultLogLevel
	}

	if out.Provider.Name == "" {
		out.Provider.Name = DefaultProviderName
	}

	// bools cant tell "false" and "missing" apart once unmarshalled
	if !tree.Has("provider.enabled") {
		out.Provider.Enabled = true
	}

	if !tree.Has("provider.host_stats") {
		out.Provider.HostStats = true
	}

	return out, nil
}

func validateConfig(c *Config) error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	seen := make(map[string]bool)

	for i, p := range c.Provider.Players {
		if p.Name == "" {
			return fmt.Errorf("player %d has no name", i)
		}

		if seen[p.Name] {
			return fmt.Errorf("player %q is listed more than once", p.Name)
		}

		seen[p.Name] = true

		if _, err := placeholder.NewOfflinePlayer(p.Name, p.UUID); err != nil {
			return err
		}
	}

	return nil
}

// Level returns the configured log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.INFO
	}

	return level
}

// Players returns every configured player, keyed by name
func (c *Config) Players() map[string]*placeholder.OfflinePlayer {
	out := make(map[string]*placeholder.OfflinePlayer, len(c.Provider.Players))

	for _, p := range c.Provider.Players {
		if player, err := placeholder.NewOfflinePlayer(p.Name, p.UUID); err == nil {
			out[p.Name] = player
		}
	}

	return out
}
