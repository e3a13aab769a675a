// Package config loads flashdeck settings from defaults, an optional YAML
// file, FLASHDECK_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix    = "FLASHDECK"
	DefaultMode  = "random"
	DefaultCount = 1
)

// Config holds all application configuration.
type Config struct {
	// Assets is where source decks live: empty for the bundled decks, an
	// http(s) URL, or a local directory.
	Assets  string    `mapstructure:"assets"`
	Mode    string    `mapstructure:"mode" validate:"oneof=random count"`
	Count   int       `mapstructure:"count" validate:"gte=0"`
	Sources []string  `mapstructure:"source"`
	File    string    `mapstructure:"file"`
	Filters []Filter  `mapstructure:"filters" validate:"dive"`
	Log     LogConfig `mapstructure:"log"`
}

// Filter is a named shortcut that loads one or more sources together.
type Filter struct {
	Label   string   `mapstructure:"label" validate:"required"`
	Sources []string `mapstructure:"sources" validate:"required,min=1,dive,required"`
}

// LogConfig controls the structured log output.
type LogConfig struct {
	File string `mapstructure:"file"`
	// Level is debug, info, warn or error. Unknown names fall back to info
	// with a warning from the logger.
	Level string `mapstructure:"level"`
}

// DefaultPath returns ~/.config/flashdeck/config.yml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "flashdeck", "config.yml"), nil
}

// Load reads configuration. configPath may be empty to use DefaultPath, which
// is allowed to be missing; an explicit configPath must exist. flags, when
// non-nil, override everything else for the flags the user actually set.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("assets", "")
	v.SetDefault("mode", DefaultMode)
	v.SetDefault("count", DefaultCount)
	v.SetDefault("source", []string{})
	v.SetDefault("file", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	explicit := configPath != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = p
	}
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || os.IsNotExist(err)
		if explicit || !missing {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// flagKeys maps config keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"assets":    "assets",
	"mode":      "mode",
	"count":     "count",
	"source":    "source",
	"file":      "file",
	"log.file":  "log-file",
	"log.level": "log-level",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports every violation.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
