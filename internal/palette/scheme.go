package palette

import (
	"strings"

	"github.com/terassyi/venueview/internal/errors"
	"github.com/terassyi/venueview/internal/event"
)

const (
	SchemeTinted = "tinted"
	SchemeGray   = "gray"
)

// Scheme is the fixed state→color table applied by SeatHold events.
type Scheme struct {
	Name      string `json:"name" yaml:"name"`
	Available Color  `json:"available" yaml:"available"`
	Held      Color  `json:"held" yaml:"held"`
	Reserved  Color  `json:"reserved" yaml:"reserved"`
	Expired   Color  `json:"expired" yaml:"expired"`
	Invalid   Color  `json:"invalid" yaml:"invalid"`
}

// Tinted is the scheme of the classic viewer.
func Tinted() Scheme {
	return Scheme{
		Name:      SchemeTinted,
		Available: RGB(100, 100, 100),
		Held:      RGB(150, 130, 130),
		Reserved:  RGB(200, 200, 200),
		Expired:   RGB(180, 205, 180),
		Invalid:   RGB(200, 100, 100),
	}
}

// GrayScheme is the scheme of the compact viewer. Available and Held share
// the same gray.
func GrayScheme() Scheme {
	return Scheme{
		Name:      SchemeGray,
		Available: Gray(96),
		Held:      Gray(96),
		Reserved:  Gray(64),
		Expired:   Gray(192),
		Invalid:   RGB(200, 100, 100),
	}
}

// For returns the color for a hold state. Unknown states use Invalid.
func (s Scheme) For(state event.HoldState) Color {
	switch state {
	case event.StateAvailable:
		return s.Available
	case event.StateHeld:
		return s.Held
	case event.StateReserved:
		return s.Reserved
	case event.StateExpired:
		return s.Expired
	default:
		return s.Invalid
	}
}

// Entries returns the scheme as (state, color) pairs in display order.
func (s Scheme) Entries() []Entry {
	return []Entry{
		{State: event.StateAvailable, Color: s.Available},
		{State: event.StateHeld, Color: s.Held},
		{State: event.StateReserved, Color: s.Reserved},
		{State: event.StateExpired, Color: s.Expired},
		{State: event.StateInvalid, Color: s.Invalid},
	}
}

// Entry is one row of a scheme.
type Entry struct {
	State event.HoldState
	Color Color
}

// Override replaces the color of a single state.
func (s Scheme) Override(state event.HoldState, c Color) Scheme {
	switch state {
	case event.StateAvailable:
		s.Available = c
	case event.StateHeld:
		s.Held = c
	case event.StateReserved:
		s.Reserved = c
	case event.StateExpired:
		s.Expired = c
	default:
		s.Invalid = c
	}
	return s
}

var schemes = map[string]func() Scheme{
	SchemeTinted: Tinted,
	SchemeGray:   GrayScheme,
}

// SchemeNames returns the accepted scheme names.
func SchemeNames() []string {
	return sortedNames(schemes)
}

// SchemeByName resolves a scheme from its configuration name.
func SchemeByName(name string) (Scheme, error) {
	build, ok := schemes[strings.ToLower(name)]
	if !ok {
		return Scheme{}, errors.NewInvalidValueError("scheme", strings.Join(SchemeNames(), ", "), name)
	}
	return build(), nil
}
