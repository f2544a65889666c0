package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/terassyi/venueview/internal/driver"
	"github.com/terassyi/venueview/internal/errors"
	"github.com/terassyi/venueview/internal/printer"
	"github.com/terassyi/venueview/internal/queue"
	"github.com/terassyi/venueview/internal/source"
)

var (
	validateInput  string
	validateFormat string
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check an event stream without animating it",
	Long: `Validate reads the whole input, applies every line instantly and reports
each dropped line with its error code. It exits non-zero if any line was
dropped.

Examples:
  venueview validate events.txt
  producer | venueview validate -o json`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
			return flagError(cmd, err)
		}
		return nil
	},
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "inputFile", "i", "", "Input file (default: stdin)")
	validateCmd.Flags().StringVarP(&validateFormat, "output", "o", "text", "Output format (text, json, yaml)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	applyNoColor()

	path := validateInput
	if len(args) == 1 {
		path = args[0]
	}
	format, err := printer.ParseFormat(validateFormat)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	pal, err := cfg.Palette()
	if err != nil {
		return err
	}
	show, err := cfg.ShowMode()
	if err != nil {
		return err
	}

	in, err := source.Open(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	report, err := validateStream(cmd.Context(), inputName(path), in,
		driver.WithPalette(pal),
		driver.WithShowMode(show),
		driver.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		return err
	}

	if err := printer.PrintReport(cmd.OutOrStdout(), report, format); err != nil {
		return err
	}
	if n := len(report.Dropped); n > 0 {
		return &silentError{msg: fmt.Sprintf("%d lines dropped", n)}
	}
	return nil
}

// validateStream reads r to the end and applies every line in order.
func validateStream(ctx context.Context, name string, r io.Reader, opts ...driver.Option) (printer.Report, error) {
	q := queue.New()
	if _, err := source.NewReader(name, r).ReadAll(ctx, q); err != nil {
		return printer.Report{}, err
	}

	d := driver.New(q, nil, opts...)
	report := printer.Report{Input: name, Dropped: []printer.Dropped{}}
	for lineNo := 1; ; lineNo++ {
		res := d.Tick()
		if !res.Consumed {
			break
		}
		if res.Err != nil {
			if !errors.IsRecoverable(res.Err) {
				return printer.Report{}, res.Err
			}
			report.Dropped = append(report.Dropped, printer.NewDropped(lineNo, res.Line, res.Err))
		}
	}
	report.Snapshot = printer.NewSnapshot(d.Grid(), d.Stats())
	return report, nil
}
