// Package geometry provides the positions, lengths and rectangles used by
// floating windows.
package geometry

import (
	"math"
	"strconv"
	"strings"
)

// Point is a position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Length is a window dimension: either a plain number or a CSS-length
// string such as "400px" or "50%".
type Length struct {
	value float64
	raw   string
	isRaw bool
}

// Px returns a numeric length.
func Px(v float64) Length {
	return Length{value: v}
}

// CSS returns a string length. It is resolved lazily against a viewport.
func CSS(s string) Length {
	return Length{raw: s, isRaw: true}
}

// IsString reports whether the length was given as a string.
func (l Length) IsString() bool {
	return l.isRaw
}

// IsZero reports whether the length was never set.
func (l Length) IsZero() bool {
	return !l.isRaw && l.value == 0
}

// String returns the length as it was given.
func (l Length) String() string {
	if l.isRaw {
		return l.raw
	}
	return strconv.FormatFloat(l.value, 'f', -1, 64)
}

// Resolve converts the length to a number.
//
// Numbers resolve to themselves. Strings with a leading number ("400",
// "400px", "12.5em") resolve to that number, percentages resolve to a
// fraction of extent, and anything else resolves to fallback. Negative,
// infinite and NaN results are invalid lengths and resolve to fallback too.
func (l Length) Resolve(extent, fallback float64) float64 {
	v, ok := l.value, true
	if l.isRaw {
		v, ok = parseLength(l.raw, extent)
	}
	if !ok || !valid(v) {
		return fallback
	}
	return v
}

func valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func parseLength(raw string, extent float64) (float64, bool) {
	s := strings.TrimSpace(raw)
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return 0, false
		}
		return extent * v / 100, true
	}
	return leadingNumber(s)
}

// leadingNumber parses the longest numeric prefix of s.
func leadingNumber(s string) (float64, bool) {
	end := 0
	seenDigit := false
	seenDot := false
scan:
	for end < len(s) {
		c := s[end]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case c == '.' && !seenDot:
			seenDot = true
		case (c == '-' || c == '+') && end == 0:
		default:
			break scan
		}
		end++
	}
	if !seenDigit {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Size is a window size whose dimensions may be numbers or strings.
type Size struct {
	Width  Length
	Height Length
}

// Sz is shorthand for a numeric Size.
func Sz(width, height float64) Size {
	return Size{Width: Px(width), Height: Px(height)}
}

// Resolve converts both dimensions to numbers against the viewport,
// falling back to def for unparseable strings.
func (s Size) Resolve(viewport Dims, def Dims) Dims {
	return Dims{
		Width:  s.Width.Resolve(viewport.Width, def.Width),
		Height: s.Height.Resolve(viewport.Height, def.Height),
	}
}

// Dims is a resolved, numeric size.
type Dims struct {
	Width, Height float64
}

// Size converts d back to a numeric Size.
func (d Dims) Size() Size {
	return Sz(d.Width, d.Height)
}

// Geometry is a window's position and size.
type Geometry struct {
	Position Point
	Size     Size
}

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }
