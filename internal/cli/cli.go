// Package cli is the broz command line: it resolves the launch, checks the
// target and runs one window until it is closed.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"GoBroz/internal/app"
	"GoBroz/internal/config"
	"GoBroz/internal/host"
	"GoBroz/internal/logging"
	"GoBroz/internal/probe"
	"GoBroz/internal/winstate"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2/pkg/options"
)

// StartupError reports a window that could not be brought up: the target
// could not be loaded or the host failed.
type StartupError struct {
	URL string
	Err error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("failed to open %s: %v", e.URL, e.Err)
}

func (e *StartupError) Unwrap() error { return e.Err }

// Env holds the process-level collaborators of the command.
type Env struct {
	Stdout       io.Writer
	Stderr       io.Writer
	SettingsPath string
	StatePath    string
	LogPath      string
	Probe        func(ctx context.Context, url string) error
	Run          func(opts *options.App) error
}

// DefaultEnv wires the real paths, the network probe and the Wails runtime.
func DefaultEnv() Env {
	return Env{
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		SettingsPath: config.SettingsPath(),
		StatePath:    config.StatePath(),
		LogPath:      config.LogPath(),
		Probe:        probe.Check,
		Run:          host.Run,
	}
}

type flags struct {
	top, frame, child, debug bool
	width, height, x, y      string
}

func (f flags) options() config.Options {
	return config.Options{
		Top:    f.top,
		Frame:  f.frame,
		Width:  f.width,
		Height: f.height,
		X:      f.x,
		Y:      f.y,
		Child:  f.child,
		Debug:  f.debug,
	}
}

// NewCommand builds the root command.
func NewCommand(env Env) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "broz [url]",
		Short: "A borderless browser for screen recording and demos",
		Long: "Open url in a frameless, draggable window. Window size and position " +
			"are remembered between launches.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var url string
			if len(args) > 0 {
				url = args[0]
			}
			return launch(cmd.Context(), env, url, f)
		},
	}
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	fl := cmd.Flags()
	fl.BoolVar(&f.top, "top", false, "Keep the window on top of others")
	fl.StringVar(&f.width, "width", "", "Window width in pixels")
	fl.StringVar(&f.height, "height", "", "Window height in pixels")
	fl.BoolVar(&f.frame, "frame", false, "Keep the native window frame")
	fl.BoolVar(&f.debug, "debug", false, "Verbose logging")

	// set on windows opened by a page
	fl.StringVar(&f.x, "x", "", "Window x position")
	fl.StringVar(&f.y, "y", "", "Window y position")
	fl.BoolVar(&f.child, "child", false, "Window was opened by another window")
	for _, name := range []string{"x", "y", "child"} {
		_ = fl.MarkHidden(name)
	}
	return cmd
}

func launch(ctx context.Context, env Env, url string, f flags) error {
	settings, settingsErr := config.LoadSettings(env.SettingsPath)
	cfg, err := config.Resolve(url, f.options(), settings.DefaultURL)
	if err != nil {
		return err
	}

	log, closer := logging.New(logging.Options{Debug: cfg.Debug, File: env.LogPath, Console: env.Stderr})
	defer closer.Close()
	if settingsErr != nil {
		log.Warn().Err(settingsErr).Str("path", env.SettingsPath).Msg("using default settings")
	}
	ctx = log.WithContext(ctx)

	target := cfg.TargetURL()
	if env.Probe != nil {
		pctx, cancel := probe.WithTimeout(ctx, 0)
		err := env.Probe(pctx, target)
		cancel()
		if err != nil {
			return &StartupError{URL: target, Err: err}
		}
	}

	var store *winstate.Store
	if !cfg.Child {
		store = winstate.Open(env.StatePath, config.AppName,
			winstate.WithDelay(settings.SaveDelay),
			winstate.WithLogger(log))
	}
	a := app.New(cfg, app.Deps{
		Settings: settings,
		Store:    store,
		Attach:   host.Attach,
		Log:      log,
	})

	watchCtx, stop := context.WithCancel(ctx)
	defer stop()
	watchSettings(watchCtx, env.SettingsPath, a)

	if err := env.Run(host.BuildOptions(a, a.Logger())); err != nil {
		return &StartupError{URL: target, Err: err}
	}
	return nil
}

// watchSettings applies settings.yaml edits to the running window.
func watchSettings(ctx context.Context, path string, a *app.App) {
	log := zerolog.Ctx(ctx)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Warn().Err(err).Msg("settings directory")
		return
	}
	updates := make(chan config.Settings)
	if err := config.Watch(ctx, path, updates, *log); err != nil {
		log.Warn().Err(err).Msg("settings hot reload disabled")
		return
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case s := <-updates:
				a.ApplySettings(s)
			}
		}
	}()
}

// Execute runs the command and returns the process exit code.
func Execute(ctx context.Context, env Env, args []string) int {
	cmd := NewCommand(env)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(env.Stderr, "broz:", describe(err))
		return 1
	}
	return 0
}

func describe(err error) string {
	var cerr *config.ConfigError
	if errors.As(err, &cerr) {
		return cerr.Error() + " (expected a positive integer)"
	}
	return err.Error()
}
