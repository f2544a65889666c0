package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/terassyi/venueview/internal/errors"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	os.Exit(run())
}

// run executes the root command and maps its error to an exit code.
func run() int {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}
	return report(os.Stderr, cmd, err)
}

// report prints err for the command that failed and returns the exit code.
// Commands asked for JSON output get their error as JSON too.
func report(w io.Writer, cmd *cobra.Command, err error) int {
	switch e := err.(type) {
	case *usageError:
		fmt.Fprintf(w, "Error: %v\n\n", e.err)
		fmt.Fprint(w, e.cmd.UsageString())
		return 0
	case *silentError:
		return 1
	}

	formatter := errors.NewFormatter(w, globalOpts.noColor)
	if wantsJSON(cmd) {
		if data, jerr := formatter.FormatJSON(err); jerr == nil {
			fmt.Fprintln(w, string(data))
			return 1
		}
	}
	formatter.Write(err)
	return 1
}

func wantsJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	f := cmd.Flags().Lookup("output")
	return f != nil && f.Value.String() == outputJSON
}
