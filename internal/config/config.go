package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// Config holds the application configuration
type Config struct {
	UI     UIConfig     `toml:"ui"`
	Theme  ThemeConfig  `toml:"theme"`
	Store  StoreConfig  `toml:"store"`
	Export ExportConfig `toml:"export"`
	Log    LogConfig    `toml:"log"`
}

// UIConfig holds table and palette settings
type UIConfig struct {
	PageSize    int    `toml:"page_size"`
	PaletteMode string `toml:"palette_mode"`
}

// ThemeConfig points at an optional palette file
type ThemeConfig struct {
	Path string `toml:"path"`
}

// StoreConfig holds contact store settings
type StoreConfig struct {
	IDPolicy string `toml:"id_policy"`
}

// ExportConfig holds snapshot export settings
type ExportConfig struct {
	Format string `toml:"format"`
	Dir    string `toml:"dir"`
}

// LogConfig holds logging settings. An empty Path disables logging.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

var (
	validPageSizes    = []int{5, 10, 25}
	validPaletteModes = []string{"dark", "light"}
	validIDPolicies   = []string{"length", "next"}
)

const appDir = "contacts-board"

// Default returns the default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	base := filepath.Join(homeDir, ".config", appDir)
	return &Config{
		UI: UIConfig{
			PageSize:    5,
			PaletteMode: "dark",
		},
		Theme: ThemeConfig{
			Path: filepath.Join(base, "palette.toml"),
		},
		Store: StoreConfig{
			IDPolicy: "length",
		},
		Export: ExportConfig{
			Format: "sqlite",
			Dir:    filepath.Join(base, "exports"),
		},
		Log: LogConfig{
			Path:  filepath.Join(base, "contacts-board.log"),
			Level: "info",
		},
	}
}

// Path returns the standard config file location
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}
	return filepath.Join(homeDir, ".config", appDir, "config.toml"), nil
}

// Load loads configuration from the standard location
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from a specific path. A missing file yields
// the defaults.
func LoadFrom(configPath string) (*Config, error) {
	cfg := Default()

	configPath = expandPath(configPath)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.Theme.Path = expandPath(cfg.Theme.Path)
	cfg.Export.Dir = expandPath(cfg.Export.Dir)
	cfg.Log.Path = expandPath(cfg.Log.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}

	return cfg, nil
}

// Validate reports the first setting outside its allowed set
func (c *Config) Validate() error {
	if !slices.Contains(validPageSizes, c.UI.PageSize) {
		return fmt.Errorf("ui.page_size %d must be one of %v", c.UI.PageSize, validPageSizes)
	}
	if !slices.Contains(validPaletteModes, c.UI.PaletteMode) {
		return fmt.Errorf("ui.palette_mode %q must be one of %v", c.UI.PaletteMode, validPaletteModes)
	}
	if !slices.Contains(validIDPolicies, c.Store.IDPolicy) {
		return fmt.Errorf("store.id_policy %q must be one of %v", c.Store.IDPolicy, validIDPolicies)
	}
	if c.Export.Format == "" {
		return fmt.Errorf("export.format must not be empty")
	}
	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// Save saves the configuration to the standard location
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo saves the configuration to a specific path
func (c *Config) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return nil
}
