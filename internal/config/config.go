// Package config loads the settings of a piper run from defaults, an optional config file,
// an optional .env file and PIPER_* environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load, as in PIPER_LOG_LEVEL
const EnvPrefix = "PIPER"

// Config holds the settings of a piper run
type Config struct {
	Log         LogConfig    `mapstructure:"log"`
	Input       InputConfig  `mapstructure:"input"`
	Output      OutputConfig `mapstructure:"output"`
	Pipes       []string     `mapstructure:"pipes" validate:"min=1,dive,required"`
	Concurrency int          `mapstructure:"concurrency" validate:"min=1"`
}

// LogConfig configures logging
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error fatal TRACE DEBUG INFO WARN ERROR FATAL"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// InputConfig configures the parsing of inputs
type InputConfig struct {
	Format      string `mapstructure:"format" validate:"omitempty,oneof=csv jsonl snapshot"` // inferred from file extensions when empty
	Delimiter   string `mapstructure:"delimiter"`
	NilValue    string `mapstructure:"nil_value"`
	HeaderLines int    `mapstructure:"header_lines" validate:"min=0"`
}

// OutputConfig configures the serialization of outputs
type OutputConfig struct {
	Format    string `mapstructure:"format" validate:"omitempty,oneof=csv jsonl snapshot"` // same as the input format when empty
	Dir       string `mapstructure:"dir"`                                                // next to each input when empty
	Delimiter string `mapstructure:"delimiter"`
}

// InputDelimiter returns the input delimiter as a rune
func (c *Config) InputDelimiter() rune {
	return delimiterRune(c.Input.Delimiter)
}

// OutputDelimiter returns the output delimiter as a rune
func (c *Config) OutputDelimiter() rune {
	return delimiterRune(c.Output.Delimiter)
}

func delimiterRune(s string) rune {
	if s == `\t` {
		return '\t'
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// SetDefaults registers the default value of every setting
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("input.format", "")
	v.SetDefault("input.delimiter", ",")
	v.SetDefault("input.nil_value", "")
	v.SetDefault("input.header_lines", 1)
	v.SetDefault("output.format", "")
	v.SetDefault("output.dir", "")
	v.SetDefault("output.delimiter", ",")
	v.SetDefault("pipes", []string{"magic"})
	v.SetDefault("concurrency", 4)
}

// LoaderConfig holds optional file overrides
type LoaderConfig struct {
	ConfigFile string // config file path (optional), in any format viper supports
	EnvFile    string // .env file path (optional)
	Viper      *viper.Viper
}

// LoaderOption is a functional option for Load
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithViper loads settings from an existing viper instance, for example one with bound command-line flags
func WithViper(v *viper.Viper) LoaderOption {
	return func(lc *LoaderConfig) { lc.Viper = v }
}

// Load produces a validated Config
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	v := lc.Viper
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	// variables which are already set take precedence over the .env file
	if lc.EnvFile != "" {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			return nil, fmt.Errorf("failed to load .env file %s: %w", lc.EnvFile, err)
		}
	}
	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", lc.ConfigFile, err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks that every setting holds a usable value
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 && c.Input.Delimiter != `\t` {
		return fmt.Errorf("invalid config: input delimiter %q must be a single character", c.Input.Delimiter)
	}
	if utf8.RuneCountInString(c.Output.Delimiter) != 1 && c.Output.Delimiter != `\t` {
		return fmt.Errorf("invalid config: output delimiter %q must be a single character", c.Output.Delimiter)
	}
	return nil
}
