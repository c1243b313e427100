// Package host runs the window controller on the Wails runtime.
package host

import (
	"context"

	"GoBroz/internal/app"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Window implements app.Window with the Wails runtime bound to ctx.
type Window struct {
	ctx context.Context
}

// Attach wraps the context Wails passes to OnStartup.
func Attach(ctx context.Context) app.Window {
	return &Window{ctx: ctx}
}

var _ app.Window = (*Window)(nil)

func (w *Window) Position() (int, int) {
	if !isWailsContext(w.ctx) {
		return 0, 0
	}
	return runtime.WindowGetPosition(w.ctx)
}

func (w *Window) SetPosition(x, y int) {
	if isWailsContext(w.ctx) {
		runtime.WindowSetPosition(w.ctx, x, y)
	}
}

func (w *Window) Size() (int, int) {
	if !isWailsContext(w.ctx) {
		return 0, 0
	}
	return runtime.WindowGetSize(w.ctx)
}

func (w *Window) SetSize(width, height int) {
	if isWailsContext(w.ctx) {
		runtime.WindowSetSize(w.ctx, width, height)
	}
}

func (w *Window) Center() {
	if isWailsContext(w.ctx) {
		runtime.WindowCenter(w.ctx)
	}
}

func (w *Window) Show() {
	if isWailsContext(w.ctx) {
		runtime.WindowShow(w.ctx)
	}
}

// SetAlwaysOnTop toggles the floating window level.
func (w *Window) SetAlwaysOnTop(on bool) {
	if isWailsContext(w.ctx) {
		runtime.WindowSetAlwaysOnTop(w.ctx, on)
	}
}

func (w *Window) IsFullscreen() bool {
	if !isWailsContext(w.ctx) {
		return false
	}
	return runtime.WindowIsFullscreen(w.ctx)
}

func (w *Window) SetFullscreen(on bool) {
	if !isWailsContext(w.ctx) {
		return
	}
	if on {
		runtime.WindowFullscreen(w.ctx)
	} else {
		runtime.WindowUnfullscreen(w.ctx)
	}
}

func (w *Window) ExecJS(script string) {
	if isWailsContext(w.ctx) {
		runtime.WindowExecJS(w.ctx, script)
	}
}

func (w *Window) SetClipboard(text string) error {
	if !isWailsContext(w.ctx) {
		return nil
	}
	return runtime.ClipboardSetText(w.ctx, text)
}

func (w *Window) OpenExternal(url string) {
	if isWailsContext(w.ctx) {
		runtime.BrowserOpenURL(w.ctx, url)
	}
}

// SetMenu replaces the application menu.
func (w *Window) SetMenu(items []app.MenuItem) {
	if !isWailsContext(w.ctx) {
		return
	}
	runtime.MenuSetApplicationMenu(w.ctx, BuildMenu(items))
	runtime.MenuUpdateApplicationMenu(w.ctx)
}

// isWailsContext reports whether ctx came from the Wails runtime. Runtime
// calls on any other context abort the process, and tests run without one.
func isWailsContext(ctx context.Context) bool {
	return ctx != nil && ctx.Value("frontend") != nil
}
