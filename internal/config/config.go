// Package config loads the server configuration from YAML with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ServerConfig holds transport and session limits.
type ServerConfig struct {
	WebSocket   WebSocketConfig `mapstructure:"websocket"`
	MaxSessions int             `mapstructure:"max_sessions"`
	// TurnTimeout force-ends sessions idle beyond the limit. Zero
	// disables the janitor.
	TurnTimeout time.Duration `mapstructure:"turn_timeout"`
}

// WebSocketConfig configures the WebSocket listener.
type WebSocketConfig struct {
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DatabaseConfig configures the optional snapshot store.
type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
	MinConns int32  `mapstructure:"min_conns"`
}

// Load reads configuration from the given file. A missing file is not an
// error: defaults plus TARTAPIES_* environment overrides apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("TARTAPIES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.websocket.address", ":8080")
	v.SetDefault("server.websocket.allowed_origins", []string{"*"})
	v.SetDefault("server.websocket.write_timeout", 10*time.Second)
	v.SetDefault("server.max_sessions", 1000)
	v.SetDefault("server.turn_timeout", time.Duration(0))
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.max_conns", 4)
	v.SetDefault("database.min_conns", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
