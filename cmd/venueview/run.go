package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/terassyi/venueview/internal/audit"
	"github.com/terassyi/venueview/internal/config"
	"github.com/terassyi/venueview/internal/driver"
	verrors "github.com/terassyi/venueview/internal/errors"
	"github.com/terassyi/venueview/internal/printer"
	"github.com/terassyi/venueview/internal/queue"
	"github.com/terassyi/venueview/internal/source"
	"github.com/terassyi/venueview/internal/ui"
)

// viewSession holds what both display modes share.
type viewSession struct {
	cfg        *config.Config
	queue      *queue.Lines
	reader     *source.Reader
	inputName  string
	driverOpts []driver.Option
	format     printer.Format
}

func runView(cmd *cobra.Command, _ []string) error {
	if viewOpts.usage {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return nil
	}
	applyNoColor()

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

	var format printer.Format
	if viewOpts.output != "" {
		if format, err = printer.ParseFormat(viewOpts.output); err != nil {
			return err
		}
	}

	in, err := source.Open(viewOpts.inputFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	s := &viewSession{
		cfg:       cfg,
		queue:     queue.New(),
		reader:    source.NewReader(viewOpts.inputFile, in),
		inputName: inputName(viewOpts.inputFile),
		format:    format,
		driverOpts: []driver.Option{
			driver.WithPalette(pal),
			driver.WithShowMode(show),
		},
	}

	store := openAudit(cfg, s.inputName)
	if store != nil {
		defer closeAudit(store, cfg.AuditKeep)
		s.driverOpts = append(s.driverOpts, driver.WithRecorder(store))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if viewOpts.headless || !ui.IsTerminal(os.Stdout) {
		return runHeadless(ctx, s, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
	return runTUI(ctx, s, cmd.OutOrStdout())
}

// runTUI runs the viewer as a Bubble Tea program (for TTY mode).
func runTUI(ctx context.Context, s *viewSession, w io.Writer) error {
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(w), tea.WithContext(ctx)}
	if viewOpts.inputFile == "" {
		// stdin carries the event stream; keys come from the terminal.
		progOpts = append(progOpts, tea.WithInputTTY())
	}

	// The driver logs from inside Update, so records go through a mailbox
	// that starts forwarding once the program exists.
	mailbox := ui.NewMailbox()
	defer mailbox.Close()
	logger := slog.New(ui.NewTUILogHandler(mailbox, s.cfg.SlogLevel()))

	model := ui.NewViewerModel(s.queue, ui.ModelOptions{
		Interval:      s.cfg.Speed,
		Input:         s.inputName,
		DriverOptions: append(s.driverOpts, driver.WithLogger(logger)),
	})
	p := tea.NewProgram(model, progOpts...)
	mailbox.Start(p)

	// Route slog output into the TUI log panel instead of stderr
	prevLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(prevLogger)

	reporter := ui.NewSourceReporter(p)
	go func() {
		n, err := s.reader.ReadAll(ctx, s.queue)
		if err != nil && ctx.Err() == nil {
			reporter.Fail(err)
			return
		}
		slog.Debug("input ended", "lines", n)
		reporter.Done(n)
	}()

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return verrors.Wrap(verrors.CategoryInput, "terminal UI failed", err).
			WithDetail("input", s.inputName).
			WithHint("run with --headless when no terminal is available")
	}

	// AltScreen clears on exit, so reprint the final frame to scrollback
	fmt.Fprintln(w, model.FinalView())
	return model.Err()
}

// runHeadless drives the viewer on a ticker, echoing lines to w.
func runHeadless(ctx context.Context, s *viewSession, w, errW io.Writer) error {
	prevLogger := slog.Default()
	logger := slog.New(slog.NewTextHandler(errW, &slog.HandlerOptions{Level: s.cfg.SlogLevel()}))
	slog.SetDefault(logger)
	defer slog.SetDefault(prevLogger)

	var progress *ui.DrainProgress
	if viewOpts.exitOnDrain && ui.IsTerminal(os.Stderr) {
		progress = ui.NewDrainProgress(errW)
	}

	h := ui.NewHeadless(s.queue, ui.HeadlessOptions{
		Interval:      s.cfg.Speed,
		ExitOnDrain:   viewOpts.exitOnDrain,
		Progress:      progress,
		DriverOptions: append(s.driverOpts, driver.WithEcho(w), driver.WithLogger(logger)),
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return readSource(gctx, s.reader, s.queue)
	})
	g.Go(func() error {
		defer cancel()
		return h.Run(gctx)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("viewer stopped", "stats", ui.Summary(h.Driver().Stats()))
	if s.format != "" {
		snap := printer.NewSnapshot(h.Driver().Grid(), h.Driver().Stats())
		return printer.Print(w, snap, s.format)
	}
	return nil
}

// readSource runs the line source until it ends or ctx is done. A read
// blocked on an open stdin is abandoned when ctx is done; the process is
// about to exit.
func readSource(ctx context.Context, r *source.Reader, q *queue.Lines) error {
	errc := make(chan error, 1)
	go func() {
		n, err := r.ReadAll(ctx, q)
		slog.Debug("input ended", "lines", n)
		errc <- err
	}()
	select {
	case err := <-errc:
		if err != nil && errors.Is(err, ctx.Err()) {
			return nil
		}
		return err
	case <-ctx.Done():
		return nil
	}
}

// openAudit creates the session store if an audit directory is configured.
func openAudit(cfg *config.Config, input string) *audit.Store {
	if cfg.AuditDir == "" {
		return nil
	}
	dir, err := config.ExpandHome(cfg.AuditDir)
	if err != nil {
		slog.Warn("failed to resolve audit directory", "dir", cfg.AuditDir, "error", err)
		return nil
	}
	store, err := audit.NewStore(dir, input)
	if err != nil {
		slog.Warn("failed to create audit store", "error", err)
		return nil
	}
	return store
}

func closeAudit(store *audit.Store, keep int) {
	if err := store.Close(); err != nil {
		slog.Warn("failed to close audit session", "error", err)
	}
	if lines, dropped := store.Counts(); lines > 0 {
		slog.Debug("audit session written", "dir", store.SessionDir(), "lines", lines, "dropped", dropped)
	}
	if err := store.Cleanup(keep); err != nil {
		slog.Warn("failed to clean up old audit sessions", "error", err)
	}
}

func applyNoColor() {
	if globalOpts.noColor {
		color.NoColor = true
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func inputName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}
