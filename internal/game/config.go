package game

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/shardshell/internal/mapload"
	"github.com/samdwyer/shardshell/internal/theme"
	"github.com/samdwyer/shardshell/internal/world"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "SHARDSHELL_"

// Config holds game configuration options.
type Config struct {
	// MapPath is an image or text map to load. Empty means generate one.
	MapPath string `yaml:"map" env:"MAP"`
	// MapWidth and MapHeight size the generated map.
	MapWidth  int `yaml:"map_width" env:"MAP_WIDTH"`
	MapHeight int `yaml:"map_height" env:"MAP_HEIGHT"`
	// Seed for random number generation. Used for reproducible map generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed" env:"SEED"`

	// ViewWidth and ViewHeight size the viewport in map cells.
	ViewWidth  int `yaml:"view_width" env:"VIEW_WIDTH"`
	ViewHeight int `yaml:"view_height" env:"VIEW_HEIGHT"`

	Theme      string   `yaml:"theme" env:"THEME"`
	WallColors []string `yaml:"wall_colors" env:"WALL_COLORS" envSeparator:","`
	Language   string   `yaml:"language" env:"LANGUAGE"`

	LogFile   string `yaml:"log_file" env:"LOG_FILE"`
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
	Telemetry bool   `yaml:"telemetry" env:"TELEMETRY"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		MapWidth:   world.DefaultWidth,
		MapHeight:  world.DefaultHeight,
		ViewWidth:  20,
		ViewHeight: 10,
		Theme:      theme.DefaultID,
		WallColors: []string{mapload.DefaultWallColor},
		Language:   DefaultLanguage,
		LogFile:    "shardshell.log",
		LogLevel:   "info",
		Telemetry:  true,
	}
}

// LoadConfig returns the defaults overlaid with the YAML file at path.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the SHARDSHELL_* variables in environ.
// A nil environ reads the process environment. Unset variables leave their
// fields alone.
func (c *Config) ApplyEnv(environ map[string]string) error {
	err := env.ParseWithOptions(c, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	})
	if err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}

// TraceAttributes describes the session for the telemetry resource.
func (c Config) TraceAttributes() []attribute.KeyValue {
	source := "generated"
	if c.MapPath != "" {
		source = "file"
	}
	return []attribute.KeyValue{
		attribute.String("shardshell.map.source", source),
		attribute.String("shardshell.theme", c.Theme),
		attribute.String("shardshell.language", c.Language),
		attribute.Int("shardshell.view.width", c.ViewWidth),
		attribute.Int("shardshell.view.height", c.ViewHeight),
	}
}

// Validate checks the config against the available themes.
func (c Config) Validate(themes *theme.Registry) error {
	if c.ViewWidth < 1 || c.ViewHeight < 1 {
		return fmt.Errorf("%w: viewport %dx%d must be at least 1x1", ErrInvalidConfig, c.ViewWidth, c.ViewHeight)
	}
	if c.MapPath == "" && (c.MapWidth < 3 || c.MapHeight < 3) {
		return fmt.Errorf("%w: generated map %dx%d must be at least 3x3", ErrInvalidConfig, c.MapWidth, c.MapHeight)
	}
	if _, err := themes.Resolve(c.Theme); err != nil {
		return fmt.Errorf("%w: %v (available: %s)", ErrInvalidConfig, err, strings.Join(themes.IDs(), ", "))
	}
	if _, err := mapload.NewClassifier(c.WallColors...); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalidConfig, err)
	}
	if !HasLanguage(c.Language) {
		return fmt.Errorf("%w: no translations for language %q", ErrInvalidConfig, c.Language)
	}
	return nil
}
