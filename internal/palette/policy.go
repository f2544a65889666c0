package palette

import (
	"math"
	"strings"

	"github.com/terassyi/venueview/internal/errors"
)

// Policy derives a seat color from an intensity level.
type Policy interface {
	// Name returns the configuration name of the policy.
	Name() string
	// Color returns the color for level in a rows×cols venue.
	Color(level, rows, cols int) Color
}

const (
	PolicyGradient = "gradient"
	PolicyOffset   = "offset"
)

// Gradient normalizes the level by the venue size (rows*cols) and maps the
// resulting fraction onto the shade range [26, 226], darker for higher levels.
type Gradient struct{}

// Name implements Policy.
func (Gradient) Name() string { return PolicyGradient }

// Color implements Policy.
func (Gradient) Color(level, rows, cols int) Color {
	span := float64(rows) * float64(cols)
	var percent float64
	if rows > 0 && cols > 0 {
		percent = float64(level) / span
	}
	return Gray(clampShade(256 - (math.Trunc(200*percent) + 26)))
}

// Offset subtracts the raw level from a fixed brightness of 236.
type Offset struct{}

// Name implements Policy.
func (Offset) Name() string { return PolicyOffset }

// Color implements Policy.
func (Offset) Color(level, _, _ int) Color {
	return Gray(clampShade(256 - 20 - float64(level)))
}

var policies = map[string]Policy{
	PolicyGradient: Gradient{},
	PolicyOffset:   Offset{},
}

// PolicyNames returns the accepted policy names.
func PolicyNames() []string {
	return sortedNames(policies)
}

// PolicyByName resolves a policy from its configuration name.
func PolicyByName(name string) (Policy, error) {
	p, ok := policies[strings.ToLower(name)]
	if !ok {
		return nil, errors.NewInvalidValueError("colorPolicy", strings.Join(PolicyNames(), ", "), name)
	}
	return p, nil
}
