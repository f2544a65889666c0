// Package event parses venue status lines into typed events.
//
// The line grammar is:
//
//	line       := venue_line | seat_line | hold_line | ""
//	venue_line := "Venue" SP pair
//	seat_line  := "Seat" SP pair SP integer
//	hold_line  := "SeatHold" SP state (SP pair)+
//	pair       := integer "x" integer
//
// Lines whose first token is not one of the three keywords are ignored.
package event

import "fmt"

// Kind identifies the variant of an Event.
type Kind int

const (
	KindIgnore Kind = iota
	KindVenue
	KindSeat
	KindHold
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindVenue:
		return "Venue"
	case KindSeat:
		return "Seat"
	case KindHold:
		return "SeatHold"
	default:
		return "Ignore"
	}
}

// Keywords that select the event kind.
const (
	keywordVenue = "Venue"
	keywordSeat  = "Seat"
	keywordHold  = "SeatHold"
)

// HoldState is the state carried by a SeatHold line.
type HoldState int

const (
	StateInvalid HoldState = iota
	StateAvailable
	StateHeld
	StateReserved
	StateExpired
)

// String implements fmt.Stringer.
func (s HoldState) String() string {
	switch s {
	case StateAvailable:
		return "Available"
	case StateHeld:
		return "Held"
	case StateReserved:
		return "Reserved"
	case StateExpired:
		return "Expired"
	default:
		return "Invalid"
	}
}

// ParseHoldState maps a state token to a HoldState. Matching is exact and
// case-sensitive; anything unrecognized is StateInvalid.
func ParseHoldState(token string) HoldState {
	switch token {
	case "Available":
		return StateAvailable
	case "Held":
		return StateHeld
	case "Reserved":
		return StateReserved
	case "Expired":
		return StateExpired
	default:
		return StateInvalid
	}
}

// Coord addresses one seat.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String renders the coordinate in input form, e.g. "0x3".
func (c Coord) String() string {
	return fmt.Sprintf("%dx%d", c.Row, c.Col)
}

// Venue declares the seat grid dimensions.
type Venue struct {
	Rows int
	Cols int
}

// Seat sets one seat to a color level.
type Seat struct {
	Coord
	Level int
}

// Hold applies a state to one or more seats.
type Hold struct {
	State HoldState
	// RawState is the state token as it appeared in the input.
	RawState string
	Seats    []Coord
}

// Event is one parsed input line. Exactly one of Venue, Seat, or Hold is set,
// matching Kind; an Ignore event has none.
type Event struct {
	Kind  Kind
	Venue *Venue
	Seat  *Seat
	Hold  *Hold
}

// Ignore is the event for blank and unrecognized lines.
var Ignore = Event{Kind: KindIgnore}

// String renders the event back into its input line form.
func (e Event) String() string {
	switch e.Kind {
	case KindVenue:
		return fmt.Sprintf("%s %dx%d", keywordVenue, e.Venue.Rows, e.Venue.Cols)
	case KindSeat:
		return fmt.Sprintf("%s %s %d", keywordSeat, e.Seat.Coord, e.Seat.Level)
	case KindHold:
		s := keywordHold + " " + e.Hold.RawState
		for _, c := range e.Hold.Seats {
			s += " " + c.String()
		}
		return s
	default:
		return ""
	}
}
