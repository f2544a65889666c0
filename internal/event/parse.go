package event

import (
	"strconv"
	"strings"

	"github.com/terassyi/venueview/internal/errors"
)

// Parse maps one raw line to an Event. Blank lines and lines with an unknown
// keyword yield Ignore. A line that starts with a known keyword but does not
// match its rule yields a *errors.ParseError.
func Parse(line string) (Event, error) {
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" {
		return Ignore, nil
	}

	tokens := strings.Split(line, " ")
	// Trailing separators carry no token.
	for len(tokens) > 1 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}

	switch tokens[0] {
	case keywordVenue:
		return parseVenue(line, tokens)
	case keywordSeat:
		return parseSeat(line, tokens)
	case keywordHold:
		return parseHold(line, tokens)
	default:
		return Ignore, nil
	}
}

// parseVenue handles "Venue <rows>x<cols>".
func parseVenue(line string, tokens []string) (Event, error) {
	if len(tokens) < 2 {
		return Ignore, errors.NewMalformedLineError(line, "Venue <rows>x<cols>")
	}
	rows, cols, err := parsePair(line, tokens[1])
	if err != nil {
		return Ignore, err
	}
	if rows <= 0 || cols <= 0 {
		return Ignore, errors.NewBadCoordinateError(line, tokens[1], nil).
			WithExpected("positive <rows>x<cols>")
	}
	return Event{Kind: KindVenue, Venue: &Venue{Rows: rows, Cols: cols}}, nil
}

// parseSeat handles "Seat <row>x<col> <level>".
func parseSeat(line string, tokens []string) (Event, error) {
	if len(tokens) < 3 {
		return Ignore, errors.NewMalformedLineError(line, "Seat <row>x<col> <level>")
	}
	row, col, err := parsePair(line, tokens[1])
	if err != nil {
		return Ignore, err
	}
	level, err := strconv.Atoi(tokens[2])
	if err != nil {
		return Ignore, errors.NewBadNumberError(line, tokens[2], err)
	}
	return Event{Kind: KindSeat, Seat: &Seat{Coord: Coord{Row: row, Col: col}, Level: level}}, nil
}

// parseHold handles "SeatHold <state> <row>x<col> [<row>x<col> ...]".
func parseHold(line string, tokens []string) (Event, error) {
	if len(tokens) < 3 {
		return Ignore, errors.NewMalformedLineError(line, "SeatHold <state> <row>x<col> [<row>x<col> ...]")
	}
	seats := make([]Coord, 0, len(tokens)-2)
	for _, tok := range tokens[2:] {
		row, col, err := parsePair(line, tok)
		if err != nil {
			return Ignore, err
		}
		seats = append(seats, Coord{Row: row, Col: col})
	}
	return Event{Kind: KindHold, Hold: &Hold{
		State:    ParseHoldState(tokens[1]),
		RawState: tokens[1],
		Seats:    seats,
	}}, nil
}

// ParsePair parses a "<a>x<b>" token into its two integers.
func ParsePair(token string) (int, int, error) {
	return parsePair(token, token)
}

func parsePair(line, token string) (int, int, error) {
	left, right, ok := strings.Cut(token, "x")
	if !ok || strings.Contains(right, "x") {
		return 0, 0, errors.NewBadCoordinateError(line, token, nil)
	}
	a, err := strconv.Atoi(left)
	if err != nil {
		return 0, 0, errors.NewBadCoordinateError(line, token, err)
	}
	b, err := strconv.Atoi(right)
	if err != nil {
		return 0, 0, errors.NewBadCoordinateError(line, token, err)
	}
	return a, b, nil
}
