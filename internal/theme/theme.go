// Package theme provides color themes for floating window frames.
package theme

import (
	"image/color"
	"slices"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming is disabled and standard terminal colors are used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			log.Warn("error loading custom themes", "err", err)
		}
	}

	if ok := tint.SetTintID(themeName); !ok {
		log.Warn("unknown theme, using default", "theme", themeName)
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Names returns the sorted IDs of every registered theme, custom themes
// included.
func Names() []string {
	tint.NewDefaultRegistry()
	if themesDir, err := GetThemesDir(); err == nil {
		_, _ = LoadCustomThemes(themesDir)
	}
	ids := tint.TintIDs()
	slices.Sort(ids)
	return ids
}

// BorderUnfocused returns the color for unfocused window borders.
func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#7f7f7f")
	}
	return t.BrightBlack
}

// BorderFocused returns the color for the focused window border.
func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	return t.BrightCyan
}

// HeaderFg returns the header text color.
func HeaderFg(focused bool) color.Color {
	t := Current()
	if t == nil {
		if focused {
			return lipgloss.Color("#000000")
		}
		return lipgloss.Color("#e5e5e5")
	}
	if focused {
		return t.Black
	}
	return t.Fg
}

// HeaderBg returns the header background. The focused window gets the
// accent color.
func HeaderBg(focused bool) color.Color {
	t := Current()
	if t == nil {
		if focused {
			return lipgloss.Color("#AFFFFF")
		}
		return lipgloss.Color("#303030")
	}
	if focused {
		return t.BrightCyan
	}
	return t.BrightBlack
}

// CloseButton returns the color of the close button glyph.
func CloseButton() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd0000")
	}
	return t.Red
}

// Accent returns the color used for highlights inside window content.
func Accent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5c5cff")
	}
	return t.BrightBlue
}

// Muted returns the color for secondary text inside window content.
func Muted() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#7f7f7f")
	}
	return t.BrightBlack
}

// Success returns the color for healthy values, such as low load.
func Success() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cd00")
	}
	return t.Green
}

// Warning returns the color for elevated values.
func Warning() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cdcd00")
	}
	return t.Yellow
}
