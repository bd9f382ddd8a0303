// Command textsync-demo hosts four text widgets bound to a simulated native
// soft keyboard that runs on its own goroutine.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"

	"github.com/iw2rmb/textsync"
	"github.com/iw2rmb/textsync/internal/config"
	"github.com/iw2rmb/textsync/internal/logging"
	"github.com/iw2rmb/textsync/keyboard"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("textsync-demo", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML file overriding the built-in widgets")
	dumpConfig := fs.Bool("dump-config", false, "print the effective configuration and exit")
	showVersion := fs.Bool("version", false, "print the version and exit")
	noColor := fs.Bool("no-color", false, "disable colors")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		_, err := fmt.Fprintln(stdout, textsync.VersionTag())
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *dumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log, ring, closeLog, err := newLogger(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer closeLog()

	if *noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	sim := keyboard.NewSimulated(cfg.Keyboard.Height)
	if len(cfg.Keyboard.Corrections) > 0 {
		sim.Corrections = cfg.Keyboard.Corrections
	}
	inputs := make(chan keyInput, 64)
	m, err := newModel(cfg, sim, inputs, log, ring)
	if err != nil {
		return err
	}

	log.Info("demo started", slog.String("version", textsync.Version()), slog.Int("widgets", len(cfg.Widgets)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return runInput(ctx, sim, inputs)
	})
	g.Go(func() error {
		defer cancel()
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	})
	return g.Wait()
}

// newLogger logs to path when set, otherwise into a ring shown in the
// status line.
func newLogger(path string, level slog.Level) (*slog.Logger, *logging.Ring, func(), error) {
	if path == "" {
		ring := logging.NewRing(50, level)
		return slog.New(ring), ring, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return logging.New(f, level), nil, func() { _ = f.Close() }, nil
}
