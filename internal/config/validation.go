package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Gaurav-Gosain/floatwin/internal/theme"
)

// ErrInvalidConfig is returned when the config file fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError is one problem found in the config file.
type ValidationError struct {
	Field   string // config section
	Key     string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Field, e.Key, e.Message)
}

// ValidationResult collects errors, which stop startup, and warnings,
// which are only logged.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors reports whether validation found errors.
func (r *ValidationResult) HasErrors() bool { return len(r.Errors) > 0 }

// HasWarnings reports whether validation found warnings.
func (r *ValidationResult) HasWarnings() bool { return len(r.Warnings) > 0 }

func (r *ValidationResult) errorf(field, key, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warnf(field, key, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

// ValidateConfig checks cfg after defaults have been filled in.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	r := &ValidationResult{}

	a := cfg.Appearance
	if !slices.Contains(BorderStyles, a.BorderStyle) {
		r.errorf("appearance", "border_style", "unknown style %q", a.BorderStyle)
	}
	if a.HeaderHeight < 1 || a.HeaderHeight > MaxHeaderHeight {
		r.errorf("appearance", "header_height", "must be between 1 and %d, got %d", MaxHeaderHeight, a.HeaderHeight)
	}
	if a.Theme != "" && !slices.Contains(theme.Names(), a.Theme) {
		r.warnf("appearance", "theme", "unknown theme %q, the default theme is used", a.Theme)
	}

	g := cfg.Geometry
	for _, f := range []struct {
		key string
		v   int
	}{
		{"min_width", g.MinWidth}, {"min_height", g.MinHeight},
		{"default_width", g.DefaultWidth}, {"default_height", g.DefaultHeight},
		{"grab_offset", g.GrabOffset}, {"double_click_ms", g.DoubleClickMS},
		{"corner_handle", g.CornerHandle}, {"edge_thickness", g.EdgeThickness},
		{"edge_inset", g.EdgeInset},
	} {
		if f.v < 0 {
			r.errorf("geometry", f.key, "must not be negative, got %d", f.v)
		}
	}

	// Border plus header plus one body row.
	if minH := a.HeaderHeight + 3; g.MinHeight < minH {
		r.errorf("geometry", "min_height", "must be at least %d to fit the header, got %d", minH, g.MinHeight)
	}
	if g.MinWidth < 4 {
		r.errorf("geometry", "min_width", "must be at least 4, got %d", g.MinWidth)
	}
	if g.DefaultWidth < g.MinWidth {
		r.warnf("geometry", "default_width", "%d is below min_width %d and will be clamped on resize", g.DefaultWidth, g.MinWidth)
	}
	if g.DefaultHeight < g.MinHeight {
		r.warnf("geometry", "default_height", "%d is below min_height %d and will be clamped on resize", g.DefaultHeight, g.MinHeight)
	}
	if g.DoubleClickMS > 2000 {
		r.warnf("geometry", "double_click_ms", "%dms makes slow header presses toggle fullscreen", g.DoubleClickMS)
	}

	return r
}
