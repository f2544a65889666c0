package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terassyi/venueview/internal/driver"
	"github.com/terassyi/venueview/internal/errors"
)

func quietLogger() driver.Option {
	return driver.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestValidateStream_Clean(t *testing.T) {
	t.Parallel()
	in := "Venue 2x2\nSeat 0x0 1\nSeatHold Held 1x1\n\nUnknown line\n"
	report, err := validateStream(context.Background(), "in.txt", strings.NewReader(in), quietLogger())
	require.NoError(t, err)

	assert.Equal(t, "in.txt", report.Input)
	assert.Empty(t, report.Dropped)
	assert.NotNil(t, report.Dropped)
	assert.Equal(t, 5, report.Snapshot.Stats.Consumed)
	assert.Equal(t, 3, report.Snapshot.Stats.Applied)
	assert.Equal(t, 2, report.Snapshot.Rows)
}

func TestValidateStream_ReportsLineNumbers(t *testing.T) {
	t.Parallel()
	in := strings.Join([]string{
		"Seat 0x0 1",
		"Venue 2x2",
		"Seat 0x0 x",
		"Seat 5x5 1",
		"SeatHold Held 0x0 9x9",
		"Seat 1x1 2",
	}, "\n")
	report, err := validateStream(context.Background(), "stdin", strings.NewReader(in), quietLogger())
	require.NoError(t, err)

	require.Len(t, report.Dropped, 4)
	assert.Equal(t, 1, report.Dropped[0].Line)
	assert.Equal(t, string(errors.CodeNoVenue), report.Dropped[0].Code)
	assert.Equal(t, 3, report.Dropped[1].Line)
	assert.Equal(t, string(errors.CodeBadNumber), report.Dropped[1].Code)
	assert.Equal(t, 4, report.Dropped[2].Line)
	assert.Equal(t, string(errors.CodeOutOfBounds), report.Dropped[2].Code)
	assert.Equal(t, 5, report.Dropped[3].Line)
	assert.Equal(t, "SeatHold Held 0x0 9x9", report.Dropped[3].Text)
	assert.Equal(t, 2, report.Snapshot.Stats.Applied)
}

func TestValidateStream_Eager(t *testing.T) {
	t.Parallel()
	report, err := validateStream(context.Background(), "stdin", strings.NewReader("Venue 1x3\n"),
		quietLogger(), driver.WithShowMode(driver.ShowEager))
	require.NoError(t, err)
	assert.Equal(t, 3, report.Snapshot.Cols)
}

func TestValidateStream_LazyNoSeat(t *testing.T) {
	t.Parallel()
	report, err := validateStream(context.Background(), "stdin", strings.NewReader("Venue 1x3\n"), quietLogger())
	require.NoError(t, err)
	assert.Nil(t, report.Snapshot.Cells)
}
