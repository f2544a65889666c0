// Package printer writes grid snapshots and validation reports as text
// tables, JSON, or YAML.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-yaml"

	"github.com/terassyi/venueview/internal/driver"
	"github.com/terassyi/venueview/internal/errors"
	"github.com/terassyi/venueview/internal/grid"
)

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", errors.NewInvalidValueError("output", "text, json, yaml", s)
	}
}

// Stats mirrors driver.Stats with serialization tags.
type Stats struct {
	Consumed int `json:"consumed" yaml:"consumed"`
	Applied  int `json:"applied" yaml:"applied"`
	Ignored  int `json:"ignored" yaml:"ignored"`
	Dropped  int `json:"dropped" yaml:"dropped"`
}

// Snapshot is the printable state of a viewer run.
type Snapshot struct {
	Rows  int `json:"rows" yaml:"rows"`
	Cols  int `json:"cols" yaml:"cols"`
	// Cells holds one hex color per seat, row-major. Nil before any venue.
	Cells [][]string `json:"cells" yaml:"cells"`
	Stats Stats      `json:"stats" yaml:"stats"`
}

// NewSnapshot captures g and st. g may be nil.
func NewSnapshot(g *grid.Grid, st driver.Stats) Snapshot {
	s := Snapshot{Stats: Stats(st)}
	if g == nil {
		return s
	}
	s.Rows, s.Cols = g.Rows(), g.Cols()
	for _, row := range g.Snapshot() {
		hex := make([]string, len(row))
		for c, col := range row {
			hex[c] = col.Hex()
		}
		s.Cells = append(s.Cells, hex)
	}
	return s
}

// Dropped is one rejected input line.
type Dropped struct {
	Line  int    `json:"line" yaml:"line"`
	Text  string `json:"text" yaml:"text"`
	Code  string `json:"code,omitempty" yaml:"code,omitempty"`
	Error string `json:"error" yaml:"error"`
}

// NewDropped builds a Dropped entry from a driver error.
func NewDropped(lineNo int, text string, err error) Dropped {
	return Dropped{Line: lineNo, Text: text, Code: string(errors.CodeOf(err)), Error: err.Error()}
}

// Report is the output of validating an input.
type Report struct {
	Input    string    `json:"input" yaml:"input"`
	Snapshot Snapshot  `json:"snapshot" yaml:"snapshot"`
	Dropped  []Dropped `json:"dropped" yaml:"dropped"`
}

// Print writes a snapshot in the given format.
func Print(w io.Writer, s Snapshot, f Format) error {
	switch f {
	case FormatJSON:
		return printJSON(w, s)
	case FormatYAML:
		return printYAML(w, s)
	default:
		printSnapshotTable(w, s)
		return nil
	}
}

// PrintReport writes a validation report in the given format.
func PrintReport(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatJSON:
		return printJSON(w, r)
	case FormatYAML:
		return printYAML(w, r)
	}

	if len(r.Dropped) == 0 {
		fmt.Fprintf(w, "%s: ok (%d lines)\n", r.Input, r.Snapshot.Stats.Consumed)
	} else {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "LINE\tCODE\tTEXT\tERROR")
		for _, d := range r.Dropped {
			fmt.Fprintf(tw, "%d\t%s\t%q\t%s\n", d.Line, d.Code, d.Text, d.Error)
		}
		tw.Flush()
		fmt.Fprintf(w, "%s: %d of %d lines dropped\n", r.Input, len(r.Dropped), r.Snapshot.Stats.Consumed)
	}
	return nil
}

// printSnapshotTable renders one row per grid row with a column per seat.
func printSnapshotTable(w io.Writer, s Snapshot) {
	if s.Cells == nil {
		fmt.Fprintln(w, "No venue declared.")
	} else {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		header := []string{"ROW"}
		for c := 0; c < s.Cols; c++ {
			header = append(header, strconv.Itoa(c))
		}
		fmt.Fprintln(tw, strings.Join(header, "\t"))
		for r, row := range s.Cells {
			fmt.Fprintln(tw, strconv.Itoa(r)+"\t"+strings.Join(row, "\t"))
		}
		tw.Flush()
	}
	fmt.Fprintf(w, "consumed=%d applied=%d ignored=%d dropped=%d\n",
		s.Stats.Consumed, s.Stats.Applied, s.Stats.Ignored, s.Stats.Dropped)
}

// printJSON outputs v as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// printYAML outputs v as YAML.
func printYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}
