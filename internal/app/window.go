package app

// Window is the native window the controller drives. The host adapter
// implements it on top of the Wails runtime; tests use a fake.
type Window interface {
	Position() (x, y int)
	SetPosition(x, y int)
	Size() (width, height int)
	SetSize(width, height int)
	Center()
	Show()
	SetAlwaysOnTop(on bool)
	IsFullscreen() bool
	SetFullscreen(on bool)
	// ExecJS runs script in the loaded page. Fire and forget.
	ExecJS(script string)
	SetClipboard(text string) error
	OpenExternal(url string)
	SetMenu(items []MenuItem)
}
