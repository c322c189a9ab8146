// Package config loads brandgen settings with viper. Precedence: flags,
// then BRANDGEN_* environment variables, then the config file, then defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. BRANDGEN_OUTPUT_DIR.
const EnvPrefix = "BRANDGEN"

// Config covers where output goes and how the run reports. The artwork
// itself is fixed.
type Config struct {
	OutputDir string        `mapstructure:"output_dir"`
	FontPath  string        `mapstructure:"font_path"`
	Jobs      int           `mapstructure:"jobs"`
	Manifest  bool          `mapstructure:"manifest"`
	Only      []string      `mapstructure:"only"`
	Logging   LoggingConfig `mapstructure:"log"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

// SetDefaults registers every key so env overrides bind without a file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output_dir", "assets/images")
	v.SetDefault("font_path", "")
	v.SetDefault("jobs", 1)
	v.SetDefault("manifest", false)
	v.SetDefault("only", []string{})
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// New returns a viper instance with defaults and env binding. file, when
// set, is read as the config file; a missing default file is not an error.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
		return v, nil
	}

	v.SetConfigName("brandgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Load decodes and validates v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects an empty output_dir, jobs below 1 and unknown log formats.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}
