package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppPort           int           `mapstructure:"APP_PORT"`
	GeminiAPIKey      string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel       string        `mapstructure:"GEMINI_MODEL"`
	GeminiTemperature float32       `mapstructure:"GEMINI_TEMPERATURE"`
	GeminiTimeout     time.Duration `mapstructure:"GEMINI_TIMEOUT"`
	RequestTimeout    time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`

	// ConfigFileUsed is the path of the config file that was read, if any.
	ConfigFileUsed string `mapstructure:"-"`
}

// ErrMissingAPIKey is returned by Validate when no backend credential is configured.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY (or API_KEY) environment variable not set")

// LoadConfig reads configuration from, in increasing priority: defaults, an
// optional config.yaml in the working directory, a local .env file and the
// process environment.
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_PORT", 8000)
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_TEMPERATURE", 0.3)
	v.SetDefault("GEMINI_TIMEOUT", "60s")
	v.SetDefault("REQUEST_TIMEOUT", "90s")
	v.SetDefault("LOG_LEVEL", "INFO")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// API_KEY is the name used by earlier deployments.
	if err := v.BindEnv("GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.ConfigFileUsed = v.ConfigFileUsed()

	return &cfg, nil
}

// Validate reports configuration that must abort startup.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GeminiAPIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.AppPort <= 0 || c.AppPort > 65535 {
		return fmt.Errorf("APP_PORT %d is out of range", c.AppPort)
	}
	if c.GeminiTemperature < 0 || c.GeminiTemperature > 2 {
		return fmt.Errorf("GEMINI_TEMPERATURE %.2f is out of range [0, 2]", c.GeminiTemperature)
	}
	return nil
}
