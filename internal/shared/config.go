package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Catalog source kinds accepted in [CatalogConfig.Source].
const (
	SourceGenerated = "generated"
	SourceFile      = "file"
	SourceSQLite    = "sqlite"
)

// Color schemes accepted in [UIConfig.ColorScheme].
const (
	SchemeDark  = "dark"
	SchemeLight = "light"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Catalog CatalogConfig `toml:"catalog"`
	Log     LogConfig     `toml:"log"`
}

// UIConfig contains rendering and animation settings for the player screen.
type UIConfig struct {
	ColorScheme       string  `toml:"color_scheme"`
	Animations        bool    `toml:"animations"`
	FPS               int     `toml:"fps"`
	SpringFrequency   float64 `toml:"spring_frequency"`
	SpringDamping     float64 `toml:"spring_damping"`
	PanelDurationMS   int     `toml:"panel_duration_ms"`
	StubLogIntervalMS int     `toml:"stub_log_interval_ms"`
}

// CatalogConfig selects where playlist entries come from.
type CatalogConfig struct {
	Source string `toml:"source"`
	Count  int    `toml:"count"`
	Path   string `toml:"path"`
}

// LogConfig contains log destination settings used while the TUI owns the terminal.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep the values from [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports the first setting that cannot drive the screen.
func (c *Config) Validate() error {
	switch c.UI.ColorScheme {
	case SchemeDark, SchemeLight:
	default:
		return fmt.Errorf("%w: color_scheme must be %q or %q, got %q", ErrInvalidConfig, SchemeDark, SchemeLight, c.UI.ColorScheme)
	}

	if c.UI.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.UI.FPS)
	}
	if c.UI.SpringFrequency <= 0 || c.UI.SpringDamping <= 0 {
		return fmt.Errorf("%w: spring_frequency and spring_damping must be positive", ErrInvalidConfig)
	}
	if c.UI.PanelDurationMS <= 0 {
		return fmt.Errorf("%w: panel_duration_ms must be positive, got %d", ErrInvalidConfig, c.UI.PanelDurationMS)
	}
	if c.UI.StubLogIntervalMS < 0 {
		return fmt.Errorf("%w: stub_log_interval_ms must not be negative", ErrInvalidConfig)
	}

	switch c.Catalog.Source {
	case SourceGenerated:
		if c.Catalog.Count < 0 {
			return fmt.Errorf("%w: count must not be negative, got %d", ErrInvalidConfig, c.Catalog.Count)
		}
	case SourceFile, SourceSQLite:
		if c.Catalog.Path == "" {
			return fmt.Errorf("%w: %s source requires a path", ErrInvalidConfig, c.Catalog.Source)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedSource, c.Catalog.Source)
	}

	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
