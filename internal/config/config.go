// Package config loads application configuration from file and environment
// and bootstraps the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Base URL resolution modes.
const (
	ModeFixedOrigin = "fixed_origin" // fixed loopback backend
	ModeSameOrigin  = "same_origin"  // explicit origin from config
)

// FixedOrigin is the loopback backend used in fixed_origin mode.
const FixedOrigin = "http://127.0.0.1:8000"

// Config holds the full application configuration.
type Config struct {
	API    APIConfig    `yaml:"api" mapstructure:"api"`
	Render RenderConfig `yaml:"render" mapstructure:"render"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// APIConfig configures backend resolution for the metrics client.
type APIConfig struct {
	Mode        string `yaml:"mode" mapstructure:"mode"`
	Origin      string `yaml:"origin" mapstructure:"origin"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// BaseURL resolves the backend base URL from the configured mode. Unknown
// modes and same_origin without an origin fall back to the fixed loopback.
func (a APIConfig) BaseURL() string {
	if a.Mode == ModeSameOrigin && a.Origin != "" {
		return strings.TrimRight(a.Origin, "/")
	}
	return FixedOrigin
}

// RenderConfig configures the display conventions.
type RenderConfig struct {
	// Locale drives currency grouping and symbol, e.g. "en-IN" or "en-US".
	// One locale applies uniformly to every monetary field.
	Locale string `yaml:"locale" mapstructure:"locale"`
}

// ServerConfig configures the local demo backend.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CHURNVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("api.mode", ModeFixedOrigin)
	v.SetDefault("api.origin", "")
	v.SetDefault("api.timeout_secs", 30)
	v.SetDefault("render.locale", "en-IN")
	v.SetDefault("server.port", 8000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
