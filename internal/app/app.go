// Package app is the window controller: it owns the launch configuration,
// drives the native window through the Window interface, persists geometry
// through the state store and exposes a small command channel to the page.
package app

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"GoBroz/internal/config"
	"GoBroz/internal/winstate"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Zoom limits of the embedded web view.
const (
	MinZoom = 0.25
	MaxZoom = 5.0
)

// ChildOffset is how far a window opened by the page is shifted from its opener.
const ChildOffset = 50

// geometryPoll is how often the window is sampled for move/resize.
const geometryPoll = 200 * time.Millisecond

// Deps are the collaborators of an App.
type Deps struct {
	Settings config.Settings
	Store    *winstate.Store // nil for child windows, which do not persist geometry
	Attach   func(ctx context.Context) Window
	Spawn    Spawner
	Log      zerolog.Logger
}

// App controls one native window. Each broz process owns exactly one
// window; pages that open new windows get a new process.
type App struct {
	mu  sync.Mutex
	ctx context.Context

	id       string
	cfg      config.LaunchConfig
	settings config.Settings
	store    *winstate.Store
	attach   func(ctx context.Context) Window
	spawn    Spawner
	log      zerolog.Logger
	initial  winstate.Geometry

	win        Window
	stopWatch  context.CancelFunc
	booted     bool
	currentURL string
	zoom       float64
	top        bool
}

// New resolves the initial geometry and prepares the controller. The native
// window does not exist until Startup.
func New(cfg config.LaunchConfig, deps Deps) *App {
	id := uuid.NewString()
	a := &App{
		id:       id,
		cfg:      cfg,
		settings: deps.Settings,
		store:    deps.Store,
		attach:   deps.Attach,
		spawn:    deps.Spawn,
		log:      deps.Log.With().Str("window", id[:8]).Logger(),
		zoom:     1,
		top:      cfg.Top,
	}
	if a.spawn == nil {
		a.spawn = ExecSpawner
	}
	a.initial = a.resolveGeometry()
	return a
}

// resolveGeometry: explicit flags win per axis, then the persisted record,
// then the settings defaults.
func (a *App) resolveGeometry() winstate.Geometry {
	defaults := winstate.Size{Width: a.settings.DefaultWidth, Height: a.settings.DefaultHeight}
	g := winstate.Geometry{Width: defaults.Width, Height: defaults.Height}
	if a.store != nil {
		g = a.store.Restore(defaults)
	}
	if a.cfg.Width != nil {
		g.Width = *a.cfg.Width
	}
	if a.cfg.Height != nil {
		g.Height = *a.cfg.Height
	}
	if a.cfg.X != nil {
		x := *a.cfg.X
		g.X = &x
	}
	if a.cfg.Y != nil {
		y := *a.cfg.Y
		g.Y = &y
	}
	return g
}

// ID identifies this window in logs.
func (a *App) ID() string { return a.id }

// Config returns the launch configuration.
func (a *App) Config() config.LaunchConfig { return a.cfg }

// Geometry returns the geometry the window is created with.
func (a *App) Geometry() winstate.Geometry { return a.initial }

// Logger returns the window's logger.
func (a *App) Logger() zerolog.Logger { return a.log }

// Startup is called by the host once the native window exists.
func (a *App) Startup(ctx context.Context) {
	a.mu.Lock()
	a.ctx = ctx
	win := a.attach(ctx)
	a.win = win
	a.mu.Unlock()

	if g := a.initial; g.X != nil && g.Y != nil {
		win.SetPosition(*g.X, *g.Y)
	}
	win.Show()

	if a.store != nil {
		a.store.Manage(win)
	}
	start := sampleGeometry(win)
	watchCtx, stop := context.WithCancel(ctx)
	a.mu.Lock()
	a.stopWatch = stop
	a.mu.Unlock()
	go watchGeometry(watchCtx, win, start, geometryPoll, a.geometryChanged)

	a.log.Info().
		Str("url", a.cfg.TargetURL()).
		Int("width", a.initial.Width).
		Int("height", a.initial.Height).
		Bool("top", a.cfg.Top).
		Bool("frame", a.cfg.Frame).
		Bool("child", a.cfg.Child).
		Msg("window created")
}

// DomReady is called by the host after every page load. The first load is
// the bundled bootstrap page, which is replaced by the target URL.
func (a *App) DomReady(ctx context.Context) {
	a.mu.Lock()
	win := a.win
	if win == nil {
		a.mu.Unlock()
		return
	}
	first := !a.booted
	a.booted = true
	zoom := a.zoom
	a.mu.Unlock()

	if first {
		target := a.cfg.TargetURL()
		a.log.Debug().Str("url", target).Msg("navigating to target")
		win.ExecJS("window.location.replace(" + jsString(target) + ")")
		return
	}
	win.ExecJS(pageScript())
	if zoom != 1 {
		win.ExecJS(zoomScript(zoom))
	}
}

// Shutdown stops the geometry watcher and flushes pending state writes.
func (a *App) Shutdown(ctx context.Context) {
	a.mu.Lock()
	stop := a.stopWatch
	a.stopWatch = nil
	a.mu.Unlock()
	if stop != nil {
		stop()
	}
	if a.store != nil {
		a.store.Close()
	}
	a.log.Info().Msg("window closed")
}

// ApplySettings swaps in reloaded settings and rebuilds the menu.
func (a *App) ApplySettings(s config.Settings) {
	a.mu.Lock()
	a.settings = s
	win := a.win
	a.mu.Unlock()
	if win != nil {
		win.SetMenu(a.Menu())
	}
}

func (a *App) geometryChanged(kind string) {
	a.log.Trace().Str("event", kind).Msg("geometry changed")
	if a.store != nil {
		a.store.Changed()
	}
}

// target returns the window menu actions apply to. A process owns a single
// window, so the focused window and the main window are the same one; nil
// before Startup.
func (a *App) target() Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.win
}

func (a *App) persist(w Window) {
	if a.store != nil {
		a.store.Save(w)
	}
}

// CurrentURL is the address of the loaded page as last reported by it,
// or the launch target before the page has reported.
func (a *App) CurrentURL() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.currentURL != "" {
		return a.currentURL
	}
	return a.cfg.TargetURL()
}

func (a *App) setCurrentURL(u string) {
	a.mu.Lock()
	a.currentURL = u
	a.mu.Unlock()
}

// CopyURL puts the current page URL on the clipboard.
func (a *App) CopyURL() {
	w := a.target()
	if w == nil {
		return
	}
	if err := w.SetClipboard(a.CurrentURL()); err != nil {
		a.log.Warn().Err(err).Msg("copy url")
	}
}

// OpenInBrowser opens the current page in the system browser.
func (a *App) OpenInBrowser() {
	if w := a.target(); w != nil {
		w.OpenExternal(a.CurrentURL())
	}
}

// Resize sets the window to a fixed size and persists it.
func (a *App) Resize(width, height int) {
	w := a.target()
	if w == nil {
		return
	}
	w.SetSize(width, height)
	a.persist(w)
}

// FlipSize swaps the window's width and height.
func (a *App) FlipSize() {
	w := a.target()
	if w == nil {
		return
	}
	width, height := w.Size()
	w.SetSize(height, width)
	a.persist(w)
}

// CenterWindow re-centres the window on its display.
func (a *App) CenterWindow() {
	w := a.target()
	if w == nil {
		return
	}
	w.Center()
	a.persist(w)
}

// Back navigates back in the page history.
func (a *App) Back() { a.exec("history.back()") }

// Forward navigates forward in the page history.
func (a *App) Forward() { a.exec("history.forward()") }

// Reload reloads the current page.
func (a *App) Reload() { a.exec("location.reload()") }

// LoadURL navigates the window to raw, applying the implicit http:// prefix.
func (a *App) LoadURL(raw string) {
	if raw == "" {
		return
	}
	a.exec("window.location.assign(" + jsString(config.TargetURL(raw)) + ")")
}

// ZoomIn increases the zoom factor by the configured step.
func (a *App) ZoomIn() { a.zoomBy(a.zoomStep()) }

// ZoomOut decreases the zoom factor by the configured step.
func (a *App) ZoomOut() { a.zoomBy(-a.zoomStep()) }

// ZoomReset restores 100% zoom.
func (a *App) ZoomReset() {
	a.mu.Lock()
	a.zoom = 1
	a.mu.Unlock()
	a.exec(zoomScript(1))
}

// Zoom returns the current zoom factor.
func (a *App) Zoom() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.zoom
}

func (a *App) zoomStep() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings.ZoomStep
}

func (a *App) zoomBy(delta float64) {
	a.mu.Lock()
	z := a.zoom + delta
	if z < MinZoom {
		z = MinZoom
	}
	if z > MaxZoom {
		z = MaxZoom
	}
	a.zoom = z
	a.mu.Unlock()
	a.exec(zoomScript(z))
}

// ToggleAlwaysOnTop flips the floating state of the window.
func (a *App) ToggleAlwaysOnTop() {
	w := a.target()
	if w == nil {
		return
	}
	a.mu.Lock()
	a.top = !a.top
	top := a.top
	a.mu.Unlock()
	w.SetAlwaysOnTop(top)
}

// ToggleKiosk switches fullscreen on and off.
func (a *App) ToggleKiosk() {
	if w := a.target(); w != nil {
		w.SetFullscreen(!w.IsFullscreen())
	}
}

// OpenWindow opens raw in a new window placed ChildOffset pixels right and
// down from this one, with the same size and launch flags.
func (a *App) OpenWindow(raw string) {
	w := a.target()
	if w == nil || raw == "" {
		return
	}
	x, y := w.Position()
	width, height := w.Size()
	args := ChildArgs(a.cfg, raw, x+ChildOffset, y+ChildOffset, width, height)
	if err := a.spawn(args); err != nil {
		a.log.Error().Err(err).Str("url", raw).Msg("open window")
		return
	}
	a.log.Info().Str("url", raw).Msg("opened child window")
}

func (a *App) exec(script string) {
	if w := a.target(); w != nil {
		w.ExecJS(script)
	}
}

func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func zoomScript(z float64) string {
	return "document.documentElement.style.zoom=" + jsString(strconv.FormatFloat(z, 'f', -1, 64))
}
