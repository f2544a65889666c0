package main

import (
	"strings"

	"github.com/spf13/cobra"
)

// legacyFlags maps single-dash long options to their cobra spelling.
var legacyFlags = map[string]string{
	"-inputFile": "--inputFile",
	"-speed":     "--speed",
	"-usage":     "--usage",
	"-Usage":     "--usage",
}

// normalizeArgs rewrites legacy single-dash long options, including the
// "-speed=100" form. Arguments after "--" are left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		name, value, hasValue := strings.Cut(arg, "=")
		if long, ok := legacyFlags[name]; ok {
			if hasValue {
				arg = long + "=" + value
			} else {
				arg = long
			}
		}
		out = append(out, arg)
	}
	return out
}

// usageError is a command-line parsing error. It is reported with the usage
// text and a zero exit status.
type usageError struct {
	cmd *cobra.Command
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// silentError carries a failing exit status for a command that already
// reported its result.
type silentError struct {
	msg string
}

func (e *silentError) Error() string { return e.msg }

func flagError(cmd *cobra.Command, err error) error {
	return &usageError{cmd: cmd, err: err}
}
