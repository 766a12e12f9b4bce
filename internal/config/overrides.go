package config

import (
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/floatwin/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII characters instead of Unicode glyphs
	ASCIIOnly bool

	// BorderStyle overrides the window border style
	BorderStyle string

	// HideCloseButton hides the close button of the default header
	HideCloseButton bool

	// ThemeName is the theme to load
	ThemeName string
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	if overrides.ASCIIOnly {
		UseASCIIOnly = true
	}

	if overrides.BorderStyle != "" {
		BorderStyle = overrides.BorderStyle
	} else if userConfig != nil && userConfig.Appearance.BorderStyle != "" {
		BorderStyle = userConfig.Appearance.BorderStyle
	}

	// OR of CLI flag and user config
	HideCloseButton = overrides.HideCloseButton
	if userConfig != nil {
		HideCloseButton = HideCloseButton || userConfig.Appearance.HideCloseButton
	}

	if userConfig != nil && userConfig.Appearance.HeaderHeight > 0 {
		HeaderHeight = min(userConfig.Appearance.HeaderHeight, MaxHeaderHeight)
	}

	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil {
		themeName = userConfig.Appearance.Theme
	}
	if err := theme.Initialize(themeName); err != nil {
		log.Warn("failed to load theme", "theme", themeName, "err", err)
	}
}
