// Package config loads scriptforge settings from defaults, an optional YAML
// file, .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"scriptforge/internal/generator"
	"scriptforge/internal/script"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every SCRIPTFORGE_* override.
const EnvPrefix = "SCRIPTFORGE"

// Theme choices.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// EnvFiles are loaded, when present, before the environment is read.
var EnvFiles = []string{".env", "env/.env"}

// Config is the complete scriptforge configuration.
type Config struct {
	Gemini  GeminiConfig  `mapstructure:"gemini"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
	MCP     MCPConfig     `mapstructure:"mcp"`
}

// GeminiConfig selects the credential and model preset.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"` // also GEMINI_API_KEY or API_KEY
	Model  string `mapstructure:"model"`   // flash, pro, flash-2
}

// TUIConfig controls the terminal UI.
type TUIConfig struct {
	TickInterval  time.Duration `mapstructure:"tick_interval"`  // loading phrase rotation (default: 2.5s)
	Theme         string        `mapstructure:"theme"`          // auto, light, dark
	DefaultLength string        `mapstructure:"default_length"` // concise, standard, extended
}

// LoggingConfig controls the slog output.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"` // TUI log directory
}

// MCPConfig names the MCP server implementation.
type MCPConfig struct {
	ServerName    string `mapstructure:"server_name"`
	ServerVersion string `mapstructure:"server_version"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Gemini: GeminiConfig{
			Model: generator.DefaultModelKey,
		},
		TUI: TUIConfig{
			TickInterval:  2500 * time.Millisecond,
			Theme:         ThemeAuto,
			DefaultLength: string(script.DefaultLength),
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   filepath.Join(ConfigDir(), "logs"),
		},
		MCP: MCPConfig{
			ServerName:    "scriptforge",
			ServerVersion: "1.0.0",
		},
	}
}

// ConfigDir is where config.yaml and logs live by default.
func ConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "scriptforge")
	}
	return ".scriptforge"
}

// SetDefaults registers DefaultConfig values with v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("gemini.api_key", d.Gemini.APIKey)
	v.SetDefault("gemini.model", d.Gemini.Model)
	v.SetDefault("tui.tick_interval", d.TUI.TickInterval)
	v.SetDefault("tui.theme", d.TUI.Theme)
	v.SetDefault("tui.default_length", d.TUI.DefaultLength)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.dir", d.Logging.Dir)
	v.SetDefault("mcp.server_name", d.MCP.ServerName)
	v.SetDefault("mcp.server_version", d.MCP.ServerVersion)
}

// Load reads configuration into a Config. configFile may be empty, in which
// case config.yaml is looked up in ConfigDir and the working directory.
func Load(v *viper.Viper, configFile string) (Config, error) {
	for _, f := range EnvFiles {
		_ = godotenv.Load(f) // optional
	}

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("gemini.api_key", EnvPrefix+"_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY")
	_ = v.BindEnv("gemini.model", EnvPrefix+"_GEMINI_MODEL", "GEMINI_MODEL")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithAPIKey returns a copy of the config with a different API key.
func (c Config) WithAPIKey(key string) Config {
	c.Gemini.APIKey = key
	return c
}

// WithModel returns a copy of the config with a different model preset.
func (c Config) WithModel(model string) Config {
	c.Gemini.Model = model
	return c
}

// WithTickInterval returns a copy of the config with a different phrase interval.
func (c Config) WithTickInterval(d time.Duration) Config {
	c.TUI.TickInterval = d
	return c
}

// WithTheme returns a copy of the config with a different theme.
func (c Config) WithTheme(theme string) Config {
	c.TUI.Theme = theme
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
// A missing API key is not a configuration error; it surfaces on generation.
func (c Config) Validate() error {
	if _, ok := generator.AvailableModels[c.Gemini.Model]; !ok {
		return &ConfigError{Field: "gemini.model", Message: fmt.Sprintf("unknown model %q", c.Gemini.Model)}
	}
	if c.TUI.TickInterval <= 0 {
		return &ConfigError{Field: "tui.tick_interval", Message: "must be positive"}
	}
	switch c.TUI.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return &ConfigError{Field: "tui.theme", Message: "must be auto, light or dark"}
	}
	if _, err := script.ParseLength(c.TUI.DefaultLength); err != nil {
		return &ConfigError{Field: "tui.default_length", Message: err.Error()}
	}
	return nil
}

// DarkMode resolves the theme, asking detect when the theme is auto.
func (c Config) DarkMode(detect func() bool) bool {
	switch c.TUI.Theme {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	default:
		return detect != nil && detect()
	}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
