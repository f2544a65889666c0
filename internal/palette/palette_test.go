package palette

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terassyi/venueview/internal/errors"
	"github.com/terassyi/venueview/internal/event"
	"pgregory.net/rapid"
)

func TestColor_Hex(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "#968282", RGB(150, 130, 130).Hex())
	assert.Equal(t, "#000000", Gray(0).Hex())
	assert.Equal(t, "rgb(1,2,3)", RGB(1, 2, 3).String())
}

func TestGradient_Color(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		level int
		rows  int
		cols  int
		want  uint8
	}{
		{name: "zero level", level: 0, rows: 10, cols: 10, want: 230},
		{name: "half range", level: 50, rows: 10, cols: 10, want: 130},
		{name: "full range", level: 100, rows: 10, cols: 10, want: 30},
		{name: "truncates fraction", level: 1, rows: 3, cols: 1, want: 164},
		{name: "beyond range clamps low", level: 1000, rows: 2, cols: 2, want: 0},
		{name: "negative level clamps high", level: -100, rows: 1, cols: 1, want: 255},
		{name: "zero span", level: 5, rows: 0, cols: 0, want: 230},
		{name: "negative span", level: 5, rows: -2, cols: -3, want: 230},
		{name: "most negative level", level: -math.MaxInt, rows: 1, cols: 1, want: 255},
		{name: "largest level", level: math.MaxInt, rows: 1, cols: 1, want: 0},
		{name: "span overflows int", level: math.MaxInt, rows: math.MaxInt, cols: math.MaxInt, want: 230},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, Gray(tt.want), Gradient{}.Color(tt.level, tt.rows, tt.cols))
		})
	}
}

func TestOffset_Color(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		level int
		want  uint8
	}{
		{name: "zero", level: 0, want: 236},
		{name: "five", level: 5, want: 231},
		{name: "clamps low", level: 500, want: 0},
		{name: "clamps high", level: -40, want: 255},
		{name: "min int", level: math.MinInt, want: 255},
		{name: "max int", level: math.MaxInt, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// venue size does not matter for the offset policy
			assert.Equal(t, Gray(tt.want), Offset{}.Color(tt.level, 7, 9))
		})
	}
}

func TestScheme_For(t *testing.T) {
	t.Parallel()

	tinted := Tinted()
	assert.Equal(t, RGB(100, 100, 100), tinted.For(event.StateAvailable))
	assert.Equal(t, RGB(150, 130, 130), tinted.For(event.StateHeld))
	assert.Equal(t, RGB(200, 200, 200), tinted.For(event.StateReserved))
	assert.Equal(t, RGB(180, 205, 180), tinted.For(event.StateExpired))
	assert.Equal(t, RGB(200, 100, 100), tinted.For(event.StateInvalid))

	gray := GrayScheme()
	assert.Equal(t, Gray(96), gray.For(event.StateAvailable))
	assert.Equal(t, Gray(96), gray.For(event.StateHeld))
	assert.Equal(t, Gray(64), gray.For(event.StateReserved))
	assert.Equal(t, Gray(192), gray.For(event.StateExpired))
	assert.Equal(t, RGB(200, 100, 100), gray.For(event.StateInvalid))
}

func TestScheme_Override(t *testing.T) {
	t.Parallel()

	s := Tinted().Override(event.StateHeld, RGB(1, 2, 3))
	assert.Equal(t, RGB(1, 2, 3), s.Held)
	assert.Equal(t, Tinted().Available, s.Available)
	assert.Equal(t, RGB(150, 130, 130), Tinted().Held, "override must not mutate the preset")
}

func TestScheme_Entries(t *testing.T) {
	t.Parallel()

	entries := GrayScheme().Entries()
	require.Len(t, entries, 5)
	assert.Equal(t, event.StateAvailable, entries[0].State)
	assert.Equal(t, event.StateInvalid, entries[4].State)
	assert.Equal(t, Gray(192), entries[3].Color)
}

func TestByName(t *testing.T) {
	t.Parallel()

	p, err := PolicyByName("Offset")
	require.NoError(t, err)
	assert.Equal(t, PolicyOffset, p.Name())

	_, err = PolicyByName("rainbow")
	var cfgErr *errors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "colorPolicy", cfgErr.Field)
	assert.Equal(t, "gradient, offset", cfgErr.Expected)

	s, err := SchemeByName("gray")
	require.NoError(t, err)
	assert.Equal(t, SchemeGray, s.Name)

	_, err = SchemeByName("neon")
	require.Error(t, err)

	assert.Equal(t, []string{"gray", "tinted"}, SchemeNames())
}

func TestPalette(t *testing.T) {
	t.Parallel()

	p := Default()
	assert.Equal(t, PolicyGradient, p.Policy.Name())
	assert.Equal(t, Gray(230), p.LevelColor(0, 4, 4))
	assert.Equal(t, RGB(150, 130, 130), p.StateColor(event.StateHeld))
}

func TestProperty_ExtremeLevelsClampMonotonically(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(1, 1<<20).Draw(t, "rows")
		a := rapid.Int().Draw(t, "a")
		b := rapid.IntMin(a).Draw(t, "b")

		for _, p := range []Policy{Gradient{}, Offset{}} {
			if p.Color(b, rows, 1).R > p.Color(a, rows, 1).R {
				t.Fatalf("%s: level %d brighter than %d", p.Name(), b, a)
			}
		}
	})
}

func TestProperty_PoliciesAreGrayscaleAndMonotonic(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(1, 100).Draw(t, "rows")
		cols := rapid.IntRange(1, 100).Draw(t, "cols")
		a := rapid.IntRange(-1000, 20000).Draw(t, "a")
		b := rapid.IntRange(a, 20001).Draw(t, "b")

		for _, p := range []Policy{Gradient{}, Offset{}} {
			ca := p.Color(a, rows, cols)
			cb := p.Color(b, rows, cols)
			if ca.R != ca.G || ca.G != ca.B {
				t.Fatalf("%s: not grayscale: %v", p.Name(), ca)
			}
			if cb.R > ca.R {
				t.Fatalf("%s: higher level %d produced brighter shade than %d", p.Name(), b, a)
			}
		}
	})
}
