package main

import (
	"github.com/spf13/cobra"
)

const outputJSON = "json"

// globalFlags are shared by every command that builds a viewer configuration.
type globalFlags struct {
	configPath  string
	preset      string
	colorPolicy string
	scheme      string
	show        string
	logLevel    string
	noColor     bool
}

// viewFlags are specific to the live viewer.
type viewFlags struct {
	inputFile   string
	speed       int
	usage       bool
	headless    bool
	exitOnDrain bool
	output      string
	auditDir    string
}

var (
	globalOpts globalFlags
	viewOpts   viewFlags
)

var rootCmd = &cobra.Command{
	Use:   "venueview",
	Short: "Live seat map viewer for venue event streams",
	Long: `venueview reads a text stream of venue events and animates a seat map,
consuming one line per tick.

Input lines:
  Venue <rows>x<cols>                    declare the venue size
  Seat <row>x<col> <level>               color a seat by intensity
  SeatHold <state> <row>x<col> [...]     color seats by hold state

Examples:
  producer | venueview
  venueview -i events.txt --speed 50
  venueview -i events.txt --preset compact --headless --exit-on-drain -o json`,
	Args:          noArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runView,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&globalOpts.configPath, "config", "", "Config file (.cue, .yaml); defaults to ~/.config/venueview/config.cue if present")
	pf.StringVar(&globalOpts.preset, "preset", "", "Viewer preset (classic, compact)")
	pf.StringVar(&globalOpts.colorPolicy, "color-policy", "", "Seat level color policy (gradient, offset)")
	pf.StringVar(&globalOpts.scheme, "scheme", "", "Hold state color scheme (tinted, gray)")
	pf.StringVar(&globalOpts.show, "show", "", "When the grid is first shown (lazy, eager)")
	pf.StringVar(&globalOpts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.BoolVar(&globalOpts.noColor, "no-color", false, "Disable colored output")

	f := rootCmd.Flags()
	f.StringVarP(&viewOpts.inputFile, "inputFile", "i", "", "Input file (default: stdin)")
	f.IntVar(&viewOpts.speed, "speed", 200, "Tick interval in milliseconds")
	f.BoolVarP(&viewOpts.usage, "usage", "u", false, "Print usage and exit")
	f.BoolVar(&viewOpts.headless, "headless", false, "Run without the terminal UI (default when stdout is not a terminal)")
	f.BoolVar(&viewOpts.exitOnDrain, "exit-on-drain", false, "Headless: exit once input ended and every line was consumed")
	f.StringVarP(&viewOpts.output, "output", "o", "", "Headless: print the final grid on exit (text, json, yaml)")
	f.StringVar(&viewOpts.auditDir, "audit-dir", "", "Write session transcripts to this directory")

	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.AddCommand(
		versionCmd,
		validateCmd,
	)
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return flagError(cmd, err)
	}
	return nil
}
