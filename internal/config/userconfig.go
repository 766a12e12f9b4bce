package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/Gaurav-Gosain/floatwin/internal/gesture"
)

// configFile is the config location relative to the XDG config home.
const configFile = "floatwin/config.toml"

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Geometry   GeometryConfig   `toml:"geometry"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	BorderStyle     string `toml:"border_style"`      // Border style: rounded, normal, thick, double, hidden, block, ascii, outer-half-block, inner-half-block
	Theme           string `toml:"theme"`             // Color theme name (e.g., dracula, nord, my-custom-theme)
	HideCloseButton bool   `toml:"hide_close_button"` // Hide the close button of the default header
	HeaderHeight    int    `toml:"header_height"`     // Header rows per window (default: 1, max: 3)
}

// GeometryConfig holds window size limits and gesture tuning, in cells.
type GeometryConfig struct {
	MinWidth      int `toml:"min_width"`
	MinHeight     int `toml:"min_height"`
	DefaultWidth  int `toml:"default_width"`
	DefaultHeight int `toml:"default_height"`
	GrabOffset    int `toml:"grab_offset"`     // Rows between the window top and the pointer after dragging out of fullscreen
	DoubleClickMS int `toml:"double_click_ms"` // Max milliseconds between two header presses of a double click
	CornerHandle  int `toml:"corner_handle"`
	EdgeThickness int `toml:"edge_thickness"`
	EdgeInset     int `toml:"edge_inset"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			BorderStyle:  "rounded",
			HeaderHeight: DefaultHeaderHeight,
		},
		Geometry: GeometryConfig{
			MinWidth:      MinWindowWidth,
			MinHeight:     MinWindowHeight,
			DefaultWidth:  DefaultWindowWidth,
			DefaultHeight: DefaultWindowHeight,
			GrabOffset:    GrabOffset,
			DoubleClickMS: int(DoubleClickWindow / time.Millisecond),
			CornerHandle:  CornerHandle,
			EdgeThickness: EdgeThickness,
			EdgeInset:     EdgeInset,
		},
	}
}

// Limits converts the geometry section into gesture limits.
func (c *UserConfig) Limits() gesture.Limits {
	g := c.Geometry
	return gesture.Limits{
		MinWidth:      float64(g.MinWidth),
		MinHeight:     float64(g.MinHeight),
		DefaultWidth:  float64(g.DefaultWidth),
		DefaultHeight: float64(g.DefaultHeight),
		GrabOffset:    float64(g.GrabOffset),
		DoubleClick:   time.Duration(g.DoubleClickMS) * time.Millisecond,
		CornerHandle:  float64(g.CornerHandle),
		EdgeThickness: float64(g.EdgeThickness),
		EdgeInset:     float64(g.EdgeInset),
	}
}

// LoadUserConfig loads the user configuration from XDG config directory,
// writing the defaults there on first run.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		return createDefaultConfig()
	}
	return LoadFile(configPath)
}

// LoadFile reads, completes and validates the config file at path.
// Warnings are logged; validation errors fail the load.
func LoadFile(path string) (*UserConfig, error) {
	cfg, validation, err := CheckFile(path)
	if err != nil {
		return nil, err
	}

	for _, warn := range validation.Warnings {
		log.Warn("config warning", "section", warn.Field, "key", warn.Key, "msg", warn.Message)
	}
	if validation.HasErrors() {
		for _, e := range validation.Errors {
			log.Error("config error", "section", e.Field, "key", e.Key, "msg", e.Message)
		}
		return nil, fmt.Errorf("%w: %d error(s) in %s", ErrInvalidConfig, len(validation.Errors), path)
	}

	return cfg, nil
}

// CheckFile reads the config file at path, fills in defaults and
// validates it without logging.
func CheckFile(path string) (*UserConfig, *ValidationResult, error) {
	// #nosec G304 - path is the user's config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingGeometry(&cfg, defaultCfg)

	return &cfg, ValidateConfig(&cfg), nil
}

// createDefaultConfig writes the default config file into the user's
// config directory.
func createDefaultConfig() (*UserConfig, error) {
	configPath, err := xdg.ConfigFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return WriteDefault(configPath)
}

// WriteDefault writes the commented default config to path, replacing any
// existing file.
func WriteDefault(path string) (*UserConfig, error) {
	cfg := DefaultConfig()

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# floatwin configuration file\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPEARANCE\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# border_style: " + strings.Join(BorderStyles, ", ") + "\n")
	sb.WriteString("#   Default: rounded. Fullscreen windows always get square corners.\n")
	sb.WriteString("# theme: Color theme name. Empty uses standard terminal colors.\n")
	sb.WriteString("#   Custom themes: ~/.config/floatwin/themes/*.json\n")
	sb.WriteString("# hide_close_button: Hide the close button of the default header\n")
	sb.WriteString("# header_height: Header rows per window, 1 to 3\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# GEOMETRY (terminal cells)\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# min_width, min_height: Resize floor\n")
	sb.WriteString("# default_width, default_height: Size of windows opened without one\n")
	sb.WriteString("# grab_offset: Rows above the pointer when dragging out of fullscreen\n")
	sb.WriteString("# double_click_ms: Max delay between the presses of a double click\n")
	sb.WriteString("# corner_handle, edge_thickness, edge_inset: Resize strip sizes\n")
	sb.WriteString("# ============================================================================\n\n")

	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg, nil
}

// fillMissingAppearance fills in any missing appearance settings with defaults
func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}
	if cfg.Appearance.HeaderHeight == 0 {
		cfg.Appearance.HeaderHeight = defaultCfg.Appearance.HeaderHeight
	}
}

// fillMissingGeometry replaces unset (zero) geometry values with defaults.
func fillMissingGeometry(cfg, defaultCfg *UserConfig) {
	g, d := &cfg.Geometry, defaultCfg.Geometry
	for _, f := range []struct {
		v   *int
		def int
	}{
		{&g.MinWidth, d.MinWidth},
		{&g.MinHeight, d.MinHeight},
		{&g.DefaultWidth, d.DefaultWidth},
		{&g.DefaultHeight, d.DefaultHeight},
		{&g.GrabOffset, d.GrabOffset},
		{&g.DoubleClickMS, d.DoubleClickMS},
		{&g.CornerHandle, d.CornerHandle},
		{&g.EdgeThickness, d.EdgeThickness},
		{&g.EdgeInset, d.EdgeInset},
	} {
		if *f.v == 0 {
			*f.v = f.def
		}
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		return xdg.ConfigFile(configFile)
	}
	return path, nil
}

// Exists reports whether a config file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
