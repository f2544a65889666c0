package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	verrors "github.com/terassyi/venueview/internal/errors"
)

func commandWithOutput(value string) *cobra.Command {
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().StringP("output", "o", "text", "")
	if value != "" {
		_ = cmd.Flags().Set("output", value)
	}
	return cmd
}

func TestReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cmd      *cobra.Command
		err      error
		code     int
		contains []string
		empty    bool
	}{
		{
			name:     "usage error",
			cmd:      commandWithOutput(""),
			err:      flagError(&cobra.Command{Use: "venueview"}, assert.AnError),
			code:     0,
			contains: []string{"Error: " + assert.AnError.Error(), "Usage:"},
		},
		{
			name:  "silent error",
			cmd:   commandWithOutput(""),
			err:   &silentError{msg: "2 lines dropped"},
			code:  1,
			empty: true,
		},
		{
			name:     "text",
			cmd:      commandWithOutput(""),
			err:      verrors.NewInputOpenError("missing.txt", assert.AnError),
			code:     1,
			contains: []string{"[E101]", "missing.txt"},
		},
		{
			name:     "no command",
			cmd:      nil,
			err:      verrors.NewNoVenueError(0, 0),
			code:     1,
			contains: []string{"[E302]"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			assert.Equal(t, tt.code, report(&buf, tt.cmd, tt.err))
			if tt.empty {
				assert.Empty(t, buf.String())
			}
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestReport_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	code := report(&buf, commandWithOutput(outputJSON), verrors.NewInvalidValueError("speed", "positive milliseconds", "0"))
	assert.Equal(t, 1, code)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	inner, ok := decoded["error"].(map[string]any)
	require.True(t, ok, "got %s", buf.String())
	assert.Equal(t, "E402", inner["code"])
}
