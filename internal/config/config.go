package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdexport/internal/fileutil"
	"github.com/alnah/go-mdexport/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppName names the per-user config directory.
const AppName = "go-mdexport"

// Field length limits.
const (
	MaxThemeLength    = 1024 // name or path to a .json/.css theme
	MaxIDLength       = 64   // code theme and platform ids
	MaxBasePathLength = 1024
	MaxWorkers        = 64
	MaxCacheSize      = 1 << 16
)

// Log levels and formats accepted in log.level / log.format.
const (
	LogLevelOff = "off"
	LogText     = "text"
	LogJSON     = "json"
)

// Config holds all configuration for rendering and export.
type Config struct {
	Theme     string       `yaml:"theme"`     // Built-in or custom theme name, or path to .json/.css
	CodeTheme string       `yaml:"codeTheme"` // Code highlight palette id
	Platform  string       `yaml:"platform"`  // Default export target
	Workers   int          `yaml:"workers"`   // 0 = auto
	Cache     CacheConfig  `yaml:"cache"`
	Assets    AssetsConfig `yaml:"assets"`
	Log       LogConfig    `yaml:"log"`
}

// CacheConfig sizes the render cache.
type CacheConfig struct {
	Size int `yaml:"size"` // Entries; 0 disables caching
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// LogConfig selects the CLI log handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error, off
	Format string `yaml:"format"` // text, json
}

// SlogLevel maps Level to a slog level. ok is false for "off".
// An empty level means info.
func (l LogConfig) SlogLevel() (level slog.Level, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "", "info":
		return slog.LevelInfo, true, nil
	case "debug":
		return slog.LevelDebug, true, nil
	case "warn", "warning":
		return slog.LevelWarn, true, nil
	case "error":
		return slog.LevelError, true, nil
	case LogLevelOff:
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("%w: log.level %q (must be debug, info, warn, error, or off)", ErrInvalidValue, l.Level)
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for callers that
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("theme", c.Theme, MaxThemeLength); err != nil {
		return err
	}
	if err := validateFieldLength("codeTheme", c.CodeTheme, MaxIDLength); err != nil {
		return err
	}
	if err := validateFieldLength("platform", c.Platform, MaxIDLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxBasePathLength); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}
	if c.Cache.Size < 0 || c.Cache.Size > MaxCacheSize {
		return fmt.Errorf("%w: cache.size must be between 0 and %d, got %d", ErrInvalidValue, MaxCacheSize, c.Cache.Size)
	}

	if _, _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", LogText, LogJSON:
		// valid
	default:
		return fmt.Errorf("%w: log.format %q (must be text or json)", ErrInvalidValue, c.Log.Format)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Theme:     "default",
		CodeTheme: "github",
		Platform:  "wechat",
		Workers:   0,
		Cache:     CacheConfig{Size: 128},
		Assets:    AssetsConfig{BasePath: ""},
		Log:       LogConfig{Level: "info", Format: LogText},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Searched: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	if err := yamlutil.ReadStrict(f, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NotFoundError lists every location searched for a config file.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: tried %s", ErrConfigNotFound, strings.Join(e.Searched, ", "))
}

// Is reports whether target is ErrConfigNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, $XDG_CONFIG_HOME/go-mdexport/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Searched: triedPaths}
}

// Dump renders the effective configuration as YAML.
func (c *Config) Dump() (string, error) {
	out, err := yamlutil.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
