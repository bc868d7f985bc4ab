package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/longkey1/chatbox/internal/chatbox"
	"github.com/spf13/viper"
)

// Config holds the configuration for the chat client
type Config struct {
	Endpoint       string `toml:"endpoint" mapstructure:"endpoint" validate:"required"` // Base URL or full /predict URL
	Locale         string `toml:"locale" mapstructure:"locale" validate:"oneof=id en"`
	Greeting       string `toml:"greeting" mapstructure:"greeting"` // Empty = locale greeting
	ShowTimestamps bool   `toml:"show_timestamps" mapstructure:"show_timestamps"`
	LogLevel       string `toml:"log_level" mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat      string `toml:"log_format" mapstructure:"log_format" validate:"oneof=text json"`
	LogFile        string `toml:"log_file" mapstructure:"log_file"` // Empty = stderr (discarded in full-screen mode)
}

// Texts returns the widget strings for the configured locale, with the
// greeting override applied.
func (c *Config) Texts() (chatbox.Texts, error) {
	texts, err := chatbox.TextsFor(c.Locale)
	if err != nil {
		return chatbox.Texts{}, err
	}
	if c.Greeting != "" {
		texts.Greeting = c.Greeting
	}
	return texts, nil
}

// NewDefaultConfig returns a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		Endpoint:       "http://127.0.0.1:5000",
		Locale:         chatbox.DefaultLocale,
		Greeting:       "",
		ShowTimestamps: true,
		LogLevel:       "info",
		LogFormat:      "text",
		LogFile:        "",
	}
}

// SetDefaults registers the default values with viper.
func SetDefaults() {
	d := NewDefaultConfig()
	viper.SetDefault("endpoint", d.Endpoint)
	viper.SetDefault("locale", d.Locale)
	viper.SetDefault("greeting", d.Greeting)
	viper.SetDefault("show_timestamps", d.ShowTimestamps)
	viper.SetDefault("log_level", d.LogLevel)
	viper.SetDefault("log_format", d.LogFormat)
	viper.SetDefault("log_file", d.LogFile)
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	endpoint, err := expandEnvVar(config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("error expanding endpoint: %v", err)
	}
	config.Endpoint = endpoint

	config.Locale = normalize(config.Locale)
	config.LogLevel = normalize(config.LogLevel)
	config.LogFormat = normalize(config.LogFormat)

	if config.LogFile != "" {
		logFile, err := ResolvePath(config.LogFile)
		if err != nil {
			return nil, fmt.Errorf("error resolving log file path '%s': %v", config.LogFile, err)
		}
		config.LogFile = logFile
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
