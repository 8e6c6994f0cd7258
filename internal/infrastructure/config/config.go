package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix scopes environment overrides, e.g. BENKYO_SERVER_HTTP_PORT.
const EnvPrefix = "BENKYO"

// Config holds all configuration for our application
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Quiz   QuizConfig   `mapstructure:"quiz"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host        string   `mapstructure:"host"`
	HTTPPort    int      `mapstructure:"http_port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// QuizConfig holds study settings. An empty TopicsDir selects the built-in
// topics; a zero Seed draws one from the OS.
type QuizConfig struct {
	TopicsDir    string `mapstructure:"topics_dir"`
	DefaultCount int    `mapstructure:"default_count"`
	Seed         uint64 `mapstructure:"seed"`
	Hints        bool   `mapstructure:"hints"`
}

// Addr is the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.HTTPPort)
}

// Load reads configuration from the global viper instance, which cobra flags
// are bound to.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper(), viper.GetString("config"))
}

// LoadFrom reads configuration into v from an optional file, the environment
// and defaults. Without an explicit file a .env in . or ./config is used if
// present.
func LoadFrom(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".env")
		v.SetConfigType("env")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Set default values
	setDefaults(v)

	// Enable reading from environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read configuration file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects settings the application cannot run with.
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Quiz.DefaultCount != 10 && c.Quiz.DefaultCount != 20 {
		return fmt.Errorf("invalid quiz.default_count %d: must be 10 or 20", c.Quiz.DefaultCount)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Quiz defaults
	v.SetDefault("quiz.topics_dir", "")
	v.SetDefault("quiz.default_count", 10)
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("quiz.hints", true)
}
