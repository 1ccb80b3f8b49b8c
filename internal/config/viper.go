// Package config provides Viper-based hierarchical configuration management:
// defaults, then an optional YAML file, then BENEFIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by the application.
const EnvPrefix = "BENEFIT"

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	AI struct {
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Cards struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"cards" yaml:"cards"`

	Output struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"output" yaml:"output"`
}

// HasAPIKey reports whether the generative-model capability can be enabled.
func (c *Config) HasAPIKey() bool {
	return strings.TrimSpace(c.AI.APIKey) != ""
}

// InitializeConfig loads configuration from the standard locations.
func InitializeConfig() (*Config, error) {
	return InitializeConfigFromFile("")
}

// InitializeConfigFromFile loads configuration, reading configFile when it is
// non-empty instead of searching the standard locations. A missing file in the
// standard locations is not an error; a missing explicit file is.
func InitializeConfigFromFile(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.smart-benefit")
		v.AddConfigPath(".smart-benefit")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// The API key may come from the prefixed variable or the conventional Gemini one.
	if err := v.BindEnv("ai.api_key", EnvPrefix+"_AI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind API key environment variables: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ai.model", "gemini-2.5-flash")
	v.SetDefault("ai.timeout_seconds", 30)
	v.SetDefault("ai.api_key", "")

	v.SetDefault("cards.file", "")

	v.SetDefault("output.format", "text")
}

// IsValidOutputFormat reports whether format is a supported report format.
func IsValidOutputFormat(format string) bool {
	switch format {
	case "text", "csv", "json":
		return true
	}
	return false
}

// Validate checks the configuration, e.g. after command-line overrides.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if !IsValidOutputFormat(config.Output.Format) {
		return fmt.Errorf("invalid output format: %s (must be 'text', 'csv' or 'json')", config.Output.Format)
	}

	if strings.TrimSpace(config.AI.Model) == "" {
		return fmt.Errorf("ai.model must not be empty")
	}

	// 0 disables the deadline applied by commands.
	if config.AI.TimeoutSeconds < 0 || config.AI.TimeoutSeconds > 300 {
		return fmt.Errorf("ai.timeout_seconds must be between 0 and 300, got: %d", config.AI.TimeoutSeconds)
	}

	return nil
}
