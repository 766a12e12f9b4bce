package gesture

import "strings"

// Direction identifies one of the eight resize affordances of a window.
type Direction uint8

const (
	// North resizes from the top edge.
	North Direction = iota + 1
	// South resizes from the bottom edge.
	South
	// East resizes from the right edge.
	East
	// West resizes from the left edge.
	West
	// NorthEast resizes from the top-right corner.
	NorthEast
	// NorthWest resizes from the top-left corner.
	NorthWest
	// SouthEast resizes from the bottom-right corner.
	SouthEast
	// SouthWest resizes from the bottom-left corner.
	SouthWest
)

// Directions lists the affordances in stacking order: later entries sit
// on top of earlier ones, so corners win over the edges they touch.
var Directions = []Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

var directionNames = map[Direction]string{
	North:     "n",
	South:     "s",
	East:      "e",
	West:      "w",
	NorthEast: "ne",
	NorthWest: "nw",
	SouthEast: "se",
	SouthWest: "sw",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "none"
}

// ParseDirection parses a compass tag such as "se".
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range directionNames {
		if name == s {
			return d, true
		}
	}
	return 0, false
}

// IsCorner reports whether d is one of the four corners.
func (d Direction) IsCorner() bool {
	return d >= NorthEast && d <= SouthWest
}

// HasNorth reports whether d moves the top edge.
func (d Direction) HasNorth() bool {
	return d == North || d == NorthEast || d == NorthWest
}

// HasSouth reports whether d moves the bottom edge.
func (d Direction) HasSouth() bool {
	return d == South || d == SouthEast || d == SouthWest
}

// HasEast reports whether d moves the right edge.
func (d Direction) HasEast() bool {
	return d == East || d == NorthEast || d == SouthEast
}

// HasWest reports whether d moves the left edge.
func (d Direction) HasWest() bool {
	return d == West || d == NorthWest || d == SouthWest
}
