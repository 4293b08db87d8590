package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/minefield/internal/common"
)

// Config holds all configuration for the application
type Config struct {
	Board   BoardConfig   `mapstructure:"board"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	Events  EventsConfig  `mapstructure:"events"`
}

// BoardConfig holds board generation settings
type BoardConfig struct {
	Width     int   `mapstructure:"width"`
	MineCount int   `mapstructure:"mine_count"`
	Seed      int64 `mapstructure:"seed"` // 0 means seed from the clock
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls how generated boards are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Verify bool   `mapstructure:"verify"`
}

// EventsConfig controls the board event logger
type EventsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	DevMode bool `mapstructure:"dev_mode"`
}

var (
	// Global config instance
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper

	// overlayPath is the environment overlay merged over the main file, if any
	overlayPath string
)

var (
	validLogLevels     = []string{"debug", "info", "warn", "error"}
	validLogFormats    = []string{"console", "json"}
	validOutputFormats = []string{"text", "json", "yaml"}
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("board.width", 7)
	v.SetDefault("board.mine_count", 10)
	v.SetDefault("board.seed", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("output.format", "text")
	v.SetDefault("output.verify", false)

	v.SetDefault("events.enabled", true)
	v.SetDefault("events.dev_mode", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	mu.Lock()
	defer mu.Unlock()

	v = viper.New()
	overlayPath = ""

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, dir := range searchPaths {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix("MINEFIELD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return fmt.Errorf("error reading config file: %w", err)
	}

	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	cfg = next
	return nil
}

var searchPaths = []string{".", "./config", "/etc/minefield"}

// A missing file means defaults; anything else is a broken config
func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// Get returns the global config instance
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()

	if c == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
		mu.RLock()
		c = cfg
		mu.RUnlock()
	}
	return c
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded config. The
// overlay is looked up next to the main config file, or in the default
// search paths when no file was loaded. A missing overlay is not an error.
// The main file stays the one reported by ConfigFilePath and watched by
// WatchConfig; the overlay is merged again on every reload.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	path, ok := findOverlay(fmt.Sprintf("config.%s.yaml", env))
	if !ok {
		return nil
	}

	if err := mergeOverlay(v, path); err != nil {
		return err
	}

	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	overlayPath = path
	cfg = next
	return nil
}

func findOverlay(name string) (string, bool) {
	dirs := searchPaths
	if used := v.ConfigFileUsed(); used != "" {
		dirs = []string{filepath.Dir(used)}
	}
	for _, dir := range dirs {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// mergeOverlay reads path with its own viper instance so target keeps
// pointing at the main config file.
func mergeOverlay(target *viper.Viper, path string) error {
	overlay := viper.New()
	overlay.SetConfigFile(path)
	if err := overlay.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading environment config %s: %w", path, err)
	}
	if err := target.MergeConfigMap(overlay.AllSettings()); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", path, err)
	}
	return nil
}

// Set overrides a key at runtime. Overrides take precedence over the config
// file and survive reloads. The result is not validated; call Validate once
// all overrides are in.
func Set(key string, value interface{}) error {
	mu.Lock()
	defer mu.Unlock()

	v.Set(key, value)

	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config after setting %s: %w", key, err)
	}
	cfg = next
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	mu.RLock()
	defer mu.RUnlock()
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file. onChange receives the
// reloaded config, or the error if the new file is rejected; a rejected file
// leaves the previous config in place.
func WatchConfig(onChange func(*Config, error)) {
	mu.RLock()
	w := v
	mu.RUnlock()

	w.OnConfigChange(func(e fsnotify.Event) {
		c, err := reload(w)
		if onChange != nil {
			onChange(c, err)
		}
	})
	w.WatchConfig()
}

func reload(w *viper.Viper) (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	// The watcher logs read errors without reporting them, so read again
	if err := w.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if overlayPath != "" {
		if err := mergeOverlay(w, overlayPath); err != nil {
			return nil, err
		}
	}

	next := &Config{}
	if err := w.Unmarshal(next); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if w == v {
		cfg = next
	}
	return next, nil
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Board.MineCount < 0 {
		return fmt.Errorf("board.mine_count must be non-negative")
	}
	if err := common.ValidateBoardRequest(c.Board.Width, c.Board.MineCount); err != nil {
		return fmt.Errorf("board: %w", err)
	}

	if !contains(validLogLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of %s", strings.Join(validLogLevels, ", "))
	}
	if !contains(validLogFormats, c.Logging.Format) {
		return fmt.Errorf("logging.format must be one of %s", strings.Join(validLogFormats, ", "))
	}
	if !contains(validOutputFormats, c.Output.Format) {
		return fmt.Errorf("output.format must be one of %s", strings.Join(validOutputFormats, ", "))
	}

	return nil
}

func contains(values []string, s string) bool {
	for _, val := range values {
		if val == s {
			return true
		}
	}
	return false
}
