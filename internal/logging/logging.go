// Package logging sets up the zerolog logger shared by the launcher and the
// Wails runtime.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// Options controls where logs go.
type Options struct {
	Debug   bool
	File    string    // JSON log file; empty disables it
	Console io.Writer // human readable output; nil means stderr
}

// New returns a logger writing to the console and, when set, to a file.
// The returned closer releases the file.
func New(opts Options) (zerolog.Logger, io.Closer) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{Out: console, TimeFormat: time.Kitchen}}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err == nil {
			if f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
				writers = append(writers, f)
				closer = f
			}
		}
	}

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return log, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Wails adapts a zerolog.Logger to the logger.Logger interface Wails uses
// for its own diagnostics.
type Wails struct {
	log zerolog.Logger
}

// NewWails routes Wails log output into log, tagged with component=wails.
func NewWails(log zerolog.Logger) *Wails {
	return &Wails{log: log.With().Str("component", "wails").Logger()}
}

var _ wailslogger.Logger = (*Wails)(nil)

func (w *Wails) Print(message string)   { w.log.Log().Msg(message) }
func (w *Wails) Trace(message string)   { w.log.Trace().Msg(message) }
func (w *Wails) Debug(message string)   { w.log.Debug().Msg(message) }
func (w *Wails) Info(message string)    { w.log.Info().Msg(message) }
func (w *Wails) Warning(message string) { w.log.Warn().Msg(message) }
func (w *Wails) Error(message string)   { w.log.Error().Msg(message) }

// Fatal logs at error level. Wails exits on its own after a fatal message,
// so this must not call os.Exit.
func (w *Wails) Fatal(message string) { w.log.Error().Bool("fatal", true).Msg(message) }

// Level maps the zerolog level onto the Wails log level.
func Level(log zerolog.Logger) wailslogger.LogLevel {
	switch log.GetLevel() {
	case zerolog.TraceLevel:
		return wailslogger.TRACE
	case zerolog.DebugLevel:
		return wailslogger.DEBUG
	case zerolog.WarnLevel:
		return wailslogger.WARNING
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return wailslogger.ERROR
	default:
		return wailslogger.INFO
	}
}
