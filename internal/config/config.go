package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/priscilaarruda/sorobo-chef-agent/internal/fileutil"
	"github.com/priscilaarruda/sorobo-chef-agent/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory under the user config dir searched for
// named configs.
const AppDirName = "sorobo"

// Field length limits.
const (
	MaxDirLength      = 4096 // PATH_MAX on Linux
	MaxBackendLength  = 10   // "fpdf", "chrome"
	MaxPageSizeLength = 10   // "letter", "a4", "legal"
	MaxTimeoutLength  = 20   // "90s", "2m30s"
)

// Accepted values, mirrored from the renderer so the config can be
// checked before any backend starts.
var (
	validBackends  = []string{"fpdf", "chrome"}
	validPageSizes = []string{"a4", "letter", "legal"}
)

// Margin bounds in centimeters.
const (
	MinMargin = 0.5
	MaxMargin = 5.0
)

// MaxWorkers caps render.workers.
const MaxWorkers = 32

// Defaults.
const (
	DefaultOutputDir = "recipes"
	DefaultBackend   = "fpdf"
	DefaultPageSize  = "a4"
	DefaultMargin    = 2.0
)

// Config holds the renderer and CLI settings.
type Config struct {
	Output  OutputConfig `yaml:"output"`
	Backend string       `yaml:"backend"` // "fpdf" (default) or "chrome"
	Page    PageConfig   `yaml:"page"`
	Render  RenderConfig `yaml:"render"`
}

// OutputConfig defines where artifacts go.
type OutputConfig struct {
	Dir string `yaml:"dir"` // destination directory (default: "recipes")
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size   string  `yaml:"size"`   // "a4", "letter", "legal" (default: "a4")
	Margin float64 `yaml:"margin"` // centimeters (default: 2)
}

// RenderConfig defines rendering limits.
type RenderConfig struct {
	Timeout string `yaml:"timeout"` // Go duration, e.g. "30s" (empty = renderer default)
	Workers int    `yaml:"workers"` // 0 = auto
}

// TimeoutDuration parses Render.Timeout. Empty means zero.
func (r RenderConfig) TimeoutDuration() (time.Duration, error) {
	if r.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(r.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: render.timeout %q: %v", ErrInvalidValue, r.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: render.timeout must be positive, got %s", ErrInvalidValue, d)
	}
	return d, nil
}

// Validate checks lengths, enumerations and ranges. Zero values are
// accepted and mean "use the default".
func (c *Config) Validate() error {
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("backend", c.Backend, MaxBackendLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.timeout", c.Render.Timeout, MaxTimeoutLength); err != nil {
		return err
	}

	if err := validateOneOf("backend", c.Backend, validBackends); err != nil {
		return err
	}
	if err := validateOneOf("page.size", c.Page.Size, validPageSizes); err != nil {
		return err
	}

	if c.Page.Margin != 0 && (c.Page.Margin < MinMargin || c.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: page.margin must be between %.1f and %.1f cm, got %.2f",
			ErrInvalidValue, MinMargin, MaxMargin, c.Page.Margin)
	}

	if _, err := c.Render.TimeoutDuration(); err != nil {
		return err
	}
	if c.Render.Workers < 0 || c.Render.Workers > MaxWorkers {
		return fmt.Errorf("%w: render.workers must be between 0 and %d, got %d",
			ErrInvalidValue, MaxWorkers, c.Render.Workers)
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

func validateOneOf(fieldName, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Output:  OutputConfig{Dir: DefaultOutputDir},
		Backend: DefaultBackend,
		Page:    PageConfig{Size: DefaultPageSize, Margin: DefaultMargin},
	}
}

// applyDefaults fills zero values from DefaultConfig.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Output.Dir == "" {
		c.Output.Dir = d.Output.Dir
	}
	if c.Backend == "" {
		c.Backend = d.Backend
	}
	if c.Page.Size == "" {
		c.Page.Size = d.Page.Size
	}
	if c.Page.Margin == 0 {
		c.Page.Margin = d.Page.Margin
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
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

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// userConfigDir is swapped in tests.
var userConfigDir = os.UserConfigDir

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/sorobo/
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

	if dir, err := userConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(dir, AppDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Name: name, Tried: triedPaths}
}

// NotFoundError lists every path searched for a named config.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

// Unwrap makes errors.Is(err, ErrConfigNotFound) hold.
func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }
