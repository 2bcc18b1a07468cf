package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/lukaszgryglicki/tesseract4d/internal/term"
	"github.com/lukaszgryglicki/tesseract4d/internal/tesseract4d"
	"github.com/lukaszgryglicki/tesseract4d/internal/window"
)

func main() {
	if err := start(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// start runs the program and returns after every deferred cleanup, so the
// log file and cpu profile are closed even when the run fails.
func start(args []string) error {
	fs := pflag.NewFlagSet("tesseract4d", pflag.ContinueOnError)
	tesseract4d.Flags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfgPath, _ := fs.GetString("config")

	cfg, err := tesseract4d.LoadConfig(cfgPath, fs)
	if err != nil {
		return err
	}
	tesseract4d.Debug = cfg.Debug || os.Getenv("DEBUG") != ""

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if os.Getenv("PROFILE") != "" {
		f, err := os.Create("cpu.out")
		if err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("starting profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		tesseract4d.Logger.Error().Err(err).Msg("run failed")
		return err
	}
	return nil
}

func run(ctx context.Context, cfg *tesseract4d.Config) error {
	switch strings.ToLower(cfg.Host) {
	case "info":
		_, err := tesseract4d.Describe(cfg.Dimension)
		return err
	case "term":
		return tesseract4d.Run(ctx, cfg, term.New(cfg.FPS, cfg.ViewCamera()))
	case "window":
		return tesseract4d.Run(ctx, cfg, window.New(cfg.Width, cfg.Height, cfg.ViewCamera()))
	default:
		host, err := tesseract4d.HeadlessHost(cfg)
		if err != nil {
			return err
		}
		return tesseract4d.Run(ctx, cfg, host)
	}
}

// setupLogging sends logs to the configured file, or stderr. The term host
// owns the terminal, so without a file it logs nothing.
func setupLogging(cfg *tesseract4d.Config) (func(), error) {
	if cfg.LogFile == "" {
		var w io.Writer = os.Stderr
		if strings.EqualFold(cfg.Host, "term") {
			w = nil
		}
		tesseract4d.SetupLogging(cfg.LogLevel, w)
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	tesseract4d.SetupLogging(cfg.LogLevel, f)
	closed := false
	return func() {
		if !closed {
			closed = true
			_ = f.Close()
		}
	}, nil
}
