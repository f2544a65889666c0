// Package palette maps seat levels and hold states to display colors.
//
// Two level policies and two state schemes are provided, matching the two
// variants of the viewer. A Palette bundles one of each and is treated as
// immutable configuration once built.
package palette

import (
	"fmt"
	"sort"

	"github.com/terassyi/venueview/internal/event"
)

// Color is a 24-bit RGB color.
type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// RGB returns a Color from three channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Gray returns a grayscale Color with every channel set to v.
func Gray(v uint8) Color {
	return Color{R: v, G: v, B: v}
}

// Hex renders the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Palette is the immutable color configuration used by the display driver.
type Palette struct {
	Policy Policy
	Scheme Scheme
}

// Default returns the palette of the classic viewer: gradient levels with the
// tinted state scheme.
func Default() Palette {
	return Palette{Policy: Gradient{}, Scheme: Tinted()}
}

// LevelColor returns the color for a seat level in a rows×cols venue.
func (p Palette) LevelColor(level, rows, cols int) Color {
	return p.Policy.Color(level, rows, cols)
}

// StateColor returns the color for a hold state.
func (p Palette) StateColor(state event.HoldState) Color {
	return p.Scheme.For(state)
}

// clampShade limits a computed shade to a valid channel value. Shades are
// computed in float64 so extreme levels cannot wrap around.
func clampShade(n float64) uint8 {
	switch {
	case n < 0:
		return 0
	case n > 255:
		return 255
	default:
		return uint8(n)
	}
}

// sortedNames returns the keys of m in lexical order.
func sortedNames[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
