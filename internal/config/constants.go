// Package config provides floatwin's appearance settings, geometry limits
// and the user configuration file.
package config

import (
	"time"

	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/floatwin/internal/gesture"
)

// =============================================================================
// Window Geometry (terminal cells)
// =============================================================================

const (
	// DefaultWindowWidth is the width of a window opened without a size.
	DefaultWindowWidth = 40

	// DefaultWindowHeight is the height of a window opened without a size.
	DefaultWindowHeight = 12

	// MinWindowWidth is the narrowest a window can be resized to.
	MinWindowWidth = 20

	// MinWindowHeight is the shortest a window can be resized to.
	MinWindowHeight = 6

	// GrabOffset is how far above the pointer a window is placed when it
	// is dragged out of fullscreen. One row puts the pointer on the header.
	GrabOffset = 1

	// DoubleClickWindow is the time two header presses may be apart to
	// count as a double click.
	DoubleClickWindow = 200 * time.Millisecond

	// CornerHandle, EdgeThickness and EdgeInset size the resize strips.
	// In cells every strip is the border itself.
	CornerHandle  = 1
	EdgeThickness = 1
	EdgeInset     = 1

	// DefaultHeaderHeight is the number of header rows.
	DefaultHeaderHeight = 1

	// MaxHeaderHeight bounds the header_height setting.
	MaxHeaderHeight = 3
)

// =============================================================================
// FPS
// =============================================================================

const (
	// NormalFPS is the refresh rate of the demo program.
	NormalFPS = 60
)

// DefaultLimits returns the cell-scaled gesture limits.
func DefaultLimits() gesture.Limits {
	return gesture.Limits{
		MinWidth:      MinWindowWidth,
		MinHeight:     MinWindowHeight,
		DefaultWidth:  DefaultWindowWidth,
		DefaultHeight: DefaultWindowHeight,
		GrabOffset:    GrabOffset,
		DoubleClick:   DoubleClickWindow,
		CornerHandle:  CornerHandle,
		EdgeThickness: EdgeThickness,
		EdgeInset:     EdgeInset,
	}
}

// UseASCIIOnly controls whether to use ASCII characters instead of Unicode
// glyphs. Set via --ascii-only flag.
var UseASCIIOnly = false

// BorderStyle controls which border style to use for windows.
// Set via --border-style flag or appearance.border_style config.
var BorderStyle = "rounded"

// HideCloseButton hides the close button of the default header.
// Set via --hide-close-button flag or appearance.hide_close_button config.
var HideCloseButton = false

// HeaderHeight is the number of header rows of every window.
// Set via appearance.header_height config.
var HeaderHeight = DefaultHeaderHeight

// BorderStyles lists the accepted border_style values.
var BorderStyles = []string{
	"rounded", "normal", "thick", "double", "hidden", "block", "ascii",
	"outer-half-block", "inner-half-block",
}

// GetBorderForStyle returns the lipgloss Border for the current style
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly || BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "block":
		return lipgloss.BlockBorder()
	case "outer-half-block":
		return lipgloss.OuterHalfBlockBorder()
	case "inner-half-block":
		return lipgloss.InnerHalfBlockBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// =============================================================================
// Window Decoration Characters
// =============================================================================

const (
	// WindowButtonClose is the close button of the default header.
	WindowButtonClose = " ⤫ "
	// WindowButtonCloseASCII is the ASCII fallback of WindowButtonClose.
	WindowButtonCloseASCII = " X "
	// DragHandle is the grip glyph drawn by headers with a drag handle.
	DragHandle = "⋮⋮"
	// DragHandleASCII is the ASCII fallback of DragHandle.
	DragHandleASCII = "::"
)

// GetWindowButtonClose returns the appropriate close button character
func GetWindowButtonClose() string {
	if UseASCIIOnly {
		return WindowButtonCloseASCII
	}
	return WindowButtonClose
}

// GetDragHandle returns the appropriate drag handle glyph
func GetDragHandle() string {
	if UseASCIIOnly {
		return DragHandleASCII
	}
	return DragHandle
}
