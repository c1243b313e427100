package app

// Bridge is bound as app.Bridge. The injected page script calls it over the
// webview's native message channel. Every method is a
// one-way command: nothing is returned to the page.
type Bridge struct {
	app *App
}

// NewBridge exposes a to the page.
func NewBridge(a *App) *Bridge {
	return &Bridge{app: a}
}

// MoveWindow moves the window to x, y.
func (b *Bridge) MoveWindow(x, y int) {
	if w := b.app.target(); w != nil {
		w.SetPosition(x, y)
	}
}

// SetPosition persists the window's current geometry.
func (b *Bridge) SetPosition() {
	if w := b.app.target(); w != nil {
		b.app.persist(w)
	}
}

func (b *Bridge) Back()            { b.app.Back() }
func (b *Bridge) Forward()         { b.app.Forward() }
func (b *Bridge) LoadURL(u string) { b.app.LoadURL(u) }
func (b *Bridge) ToggleKiosk()     { b.app.ToggleKiosk() }

// OpenWindow handles window.open and target=_blank links.
func (b *Bridge) OpenWindow(u string) { b.app.OpenWindow(u) }

// Navigated is reported by the page after each load.
func (b *Bridge) Navigated(u string) {
	if u != "" {
		b.app.setCurrentURL(u)
	}
}
