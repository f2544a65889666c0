package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terassyi/venueview/internal/driver"
	"github.com/terassyi/venueview/internal/errors"
	"github.com/terassyi/venueview/internal/grid"
	"github.com/terassyi/venueview/internal/palette"
)

func testSnapshot(t *testing.T) Snapshot {
	t.Helper()
	g, err := grid.New(2, 3, palette.Gray(255))
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 1, palette.RGB(0x10, 0x20, 0x30)))
	return NewSnapshot(g, driver.Stats{Consumed: 3, Applied: 2, Dropped: 1})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"toml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewSnapshot(t *testing.T) {
	t.Parallel()
	s := testSnapshot(t)
	assert.Equal(t, 2, s.Rows)
	assert.Equal(t, 3, s.Cols)
	assert.Equal(t, [][]string{
		{"#ffffff", "#102030", "#ffffff"},
		{"#ffffff", "#ffffff", "#ffffff"},
	}, s.Cells)
	assert.Equal(t, 1, s.Stats.Dropped)
}

func TestNewSnapshot_NilGrid(t *testing.T) {
	t.Parallel()
	s := NewSnapshot(nil, driver.Stats{Consumed: 1, Ignored: 1})
	assert.Nil(t, s.Cells)
	assert.Zero(t, s.Rows)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, s, FormatText))
	assert.Contains(t, buf.String(), "No venue declared.")
	assert.Contains(t, buf.String(), "consumed=1 applied=0 ignored=1 dropped=0")
}

func TestPrint_Text(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, testSnapshot(t), FormatText))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"ROW", "0", "1", "2"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "#ffffff", "#102030", "#ffffff"}, strings.Fields(lines[1]))
	assert.Equal(t, "consumed=3 applied=2 ignored=0 dropped=1", lines[3])
}

func TestPrint_JSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	want := testSnapshot(t)
	require.NoError(t, Print(&buf, want, FormatJSON))

	var got Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestPrint_YAML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	want := testSnapshot(t)
	require.NoError(t, Print(&buf, want, FormatYAML))
	assert.Contains(t, buf.String(), "rows: 2")

	var got Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestPrintReport_Text(t *testing.T) {
	t.Parallel()

	t.Run("clean", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		r := Report{Input: "in.txt", Snapshot: Snapshot{Stats: Stats{Consumed: 4}}}
		require.NoError(t, PrintReport(&buf, r, FormatText))
		assert.Equal(t, "in.txt: ok (4 lines)\n", buf.String())
	})

	t.Run("dropped", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		r := Report{
			Input:    "in.txt",
			Snapshot: Snapshot{Stats: Stats{Consumed: 4, Dropped: 1}},
			Dropped:  []Dropped{NewDropped(3, "Seat 9x9 1", errors.NewOutOfBoundsError(9, 9, 2, 2))},
		}
		require.NoError(t, PrintReport(&buf, r, FormatText))
		out := buf.String()
		assert.Contains(t, out, "LINE")
		assert.Contains(t, out, "E301")
		assert.Contains(t, out, `"Seat 9x9 1"`)
		assert.Contains(t, out, "in.txt: 1 of 4 lines dropped")
	})
}

func TestPrintReport_JSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := Report{
		Input:   "stdin",
		Dropped: []Dropped{NewDropped(1, "Seat x 1", errors.NewBadCoordinateError("Seat x 1", "x", nil))},
	}
	require.NoError(t, PrintReport(&buf, r, FormatJSON))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	dropped := got["dropped"].([]any)
	require.Len(t, dropped, 1)
	assert.Equal(t, "E202", dropped[0].(map[string]any)["code"])
}
