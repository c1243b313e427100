package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wailsapp/wails/v2/pkg/options"
)

type recorder struct {
	probed []string
	opts   *options.App
}

func testEnv(t *testing.T, rec *recorder, stderr *bytes.Buffer) Env {
	t.Helper()
	dir := t.TempDir()
	return Env{
		Stdout:       &bytes.Buffer{},
		Stderr:       stderr,
		SettingsPath: filepath.Join(dir, "config", "settings.yaml"),
		StatePath:    filepath.Join(dir, "config", "window-state.json"),
		LogPath:      filepath.Join(dir, "cache", "broz.log"),
		Probe: func(ctx context.Context, url string) error {
			rec.probed = append(rec.probed, url)
			return nil
		},
		Run: func(opts *options.App) error {
			rec.opts = opts
			return nil
		},
	}
}

func TestCommandFlags(t *testing.T) {
	flags := NewCommand(Env{}).Flags()
	tests := []struct {
		name     string
		flagType string
		hidden   bool
	}{
		{"top", "bool", false},
		{"frame", "bool", false},
		{"width", "string", false},
		{"height", "string", false},
		{"debug", "bool", false},
		{"x", "string", true},
		{"y", "string", true},
		{"child", "bool", true},
	}
	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Fatalf("expected flag %q not found", tt.name)
		}
		if f.Value.Type() != tt.flagType {
			t.Fatalf("flag %q: type %q want %q", tt.name, f.Value.Type(), tt.flagType)
		}
		if f.Hidden != tt.hidden {
			t.Fatalf("flag %q: hidden=%v want %v", tt.name, f.Hidden, tt.hidden)
		}
	}
}

func TestExecuteOpensWindow(t *testing.T) {
	var rec recorder
	var stderr bytes.Buffer
	env := testEnv(t, &rec, &stderr)

	code := Execute(context.Background(), env, []string{"example.com", "--top", "--width", "800"})
	if code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, stderr.String())
	}
	if len(rec.probed) != 1 || rec.probed[0] != "http://example.com" {
		t.Fatalf("probed %v", rec.probed)
	}
	if rec.opts == nil {
		t.Fatal("host was not run")
	}
	if rec.opts.Width != 800 || rec.opts.Height != 540 {
		t.Fatalf("size=%dx%d want 800x540", rec.opts.Width, rec.opts.Height)
	}
	if !rec.opts.AlwaysOnTop || !rec.opts.Frameless {
		t.Fatalf("unexpected window options %+v", rec.opts)
	}
	if _, err := os.Stat(filepath.Dir(env.SettingsPath)); err != nil {
		t.Fatalf("settings directory not created: %v", err)
	}
}

func TestExecuteDefaultURLFromSettings(t *testing.T) {
	var rec recorder
	var stderr bytes.Buffer
	env := testEnv(t, &rec, &stderr)
	if err := os.MkdirAll(filepath.Dir(env.SettingsPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(env.SettingsPath, []byte("default_url: localhost:3000\ndefault_width: 640\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := Execute(context.Background(), env, nil); code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, stderr.String())
	}
	if len(rec.probed) != 1 || rec.probed[0] != "http://localhost:3000" {
		t.Fatalf("probed %v", rec.probed)
	}
	if rec.opts.Width != 640 {
		t.Fatalf("width=%d want 640", rec.opts.Width)
	}
}

func TestExecuteRejectsBadSize(t *testing.T) {
	for _, args := range [][]string{
		{"--width", "abc"},
		{"--height", "0"},
		{"example.com", "--width", "-5"},
	} {
		var rec recorder
		var stderr bytes.Buffer
		env := testEnv(t, &rec, &stderr)
		if code := Execute(context.Background(), env, args); code != 1 {
			t.Fatalf("%v: exit=%d want 1", args, code)
		}
		if !strings.Contains(stderr.String(), "invalid --") {
			t.Fatalf("%v: stderr=%q", args, stderr.String())
		}
		if len(rec.probed) != 0 || rec.opts != nil {
			t.Fatalf("%v: launch continued after config error", args)
		}
	}
}

func TestExecuteUnreachable(t *testing.T) {
	var rec recorder
	var stderr bytes.Buffer
	env := testEnv(t, &rec, &stderr)
	env.Probe = func(context.Context, string) error { return errors.New("no such host") }

	if code := Execute(context.Background(), env, []string{"nowhere.invalid"}); code != 1 {
		t.Fatalf("exit=%d want 1", code)
	}
	if !strings.Contains(stderr.String(), "failed to open http://nowhere.invalid: no such host") {
		t.Fatalf("stderr=%q", stderr.String())
	}
	if rec.opts != nil {
		t.Fatal("window created for unreachable target")
	}
}

func TestExecuteHostFailure(t *testing.T) {
	var rec recorder
	var stderr bytes.Buffer
	env := testEnv(t, &rec, &stderr)
	hostErr := errors.New("webview missing")
	env.Run = func(*options.App) error { return hostErr }

	code := Execute(context.Background(), env, []string{"https://example.com"})
	if code != 1 {
		t.Fatalf("exit=%d want 1", code)
	}
	if !strings.Contains(stderr.String(), "webview missing") {
		t.Fatalf("stderr=%q", stderr.String())
	}
}

func TestStartupErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	var err error = &StartupError{URL: "http://x", Err: cause}
	if !errors.Is(err, cause) {
		t.Fatal("StartupError should unwrap to its cause")
	}
	var se *StartupError
	if !errors.As(err, &se) || se.URL != "http://x" {
		t.Fatalf("errors.As failed: %v", err)
	}
}

func TestExecuteChildWindow(t *testing.T) {
	var rec recorder
	var stderr bytes.Buffer
	env := testEnv(t, &rec, &stderr)

	args := []string{"https://example.com/popup", "--x=60", "--y=70", "--width=800", "--height=600", "--child"}
	if code := Execute(context.Background(), env, args); code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, stderr.String())
	}
	if !rec.opts.StartHidden {
		t.Fatal("positioned child should start hidden")
	}
	if rec.opts.Width != 800 || rec.opts.Height != 600 {
		t.Fatalf("size=%dx%d", rec.opts.Width, rec.opts.Height)
	}
}

func TestExecuteDebugLogging(t *testing.T) {
	var rec recorder
	var quiet, verbose bytes.Buffer

	if code := Execute(context.Background(), testEnv(t, &rec, &quiet), []string{"example.com"}); code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, quiet.String())
	}
	if strings.Contains(quiet.String(), "watching settings") {
		t.Fatalf("debug output without --debug: %s", quiet.String())
	}
	if code := Execute(context.Background(), testEnv(t, &rec, &verbose), []string{"example.com", "--debug"}); code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, verbose.String())
	}
	if !strings.Contains(verbose.String(), "watching settings") {
		t.Fatalf("--debug did not raise the level: %s", verbose.String())
	}
}
