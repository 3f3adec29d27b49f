// Package config loads CLI settings from a YAML file, the environment and
// command-line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"schema-caster/options"
	"schema-caster/primitive"
)

// EnvPrefix prefixes environment overrides, e.g. SCHEMA_CASTER_LOG_LEVEL.
const EnvPrefix = "SCHEMA_CASTER"

const (
	KeyLogLevel  = "log_level"
	KeyFormat    = "format"
	KeyStrict    = "strict"
	KeyAllowLoss = "allow_loss"
	KeySchemaID  = "schema_id"
)

type Config struct {
	LogLevel  string   `mapstructure:"log_level"`
	Format    string   `mapstructure:"format"`
	Strict    bool     `mapstructure:"strict"`
	AllowLoss []string `mapstructure:"allow_loss"`
	SchemaID  int      `mapstructure:"schema_id"`
}

// New returns a viper instance with defaults and environment overrides set.
// Flags may be bound to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyFormat, "json")
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyAllowLoss, []string{})
	v.SetDefault(KeySchemaID, 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file at path into v and decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfig loads the config file at path over the defaults and environment.
func LoadConfig(path string) (*Config, error) {
	return Load(New(), path)
}

func (c *Config) validate() error {
	switch c.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("invalid %s %q, expected json or yaml", KeyFormat, c.Format)
	}

	_, err := c.allowedLosses()

	return err
}

func (c *Config) allowedLosses() ([]primitive.LossEnum, error) {
	losses := make([]primitive.LossEnum, 0, len(c.AllowLoss))
	for _, name := range c.AllowLoss {
		loss, ok := primitive.ParseLoss(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("invalid %s %q, expected one of %s",
				KeyAllowLoss, name, strings.Join(primitive.LossNames(), ", "))
		}

		losses = append(losses, loss)
	}

	return losses, nil
}

// Options returns the reverse conversion options described by c.
func (c *Config) Options() []options.Option {
	opts := []options.Option{options.WithSchemaID(c.SchemaID)}

	if c.Strict {
		losses, _ := c.allowedLosses()
		opts = append(opts, options.WithStrict(losses...))
	}

	return opts
}
