package app

import (
	"context"
	"sync"
)

type fakeWindow struct {
	mu         sync.Mutex
	x, y, w, h int
	shown      bool
	top        bool
	fullscreen bool
	centered   int
	scripts    []string
	clipboard  string
	opened     []string
	menus      [][]MenuItem
}

func newFakeWindow(w, h int) *fakeWindow { return &fakeWindow{w: w, h: h} }

func (f *fakeWindow) Position() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.x, f.y
}

func (f *fakeWindow) SetPosition(x, y int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.x, f.y = x, y
}

func (f *fakeWindow) Size() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.w, f.h
}

func (f *fakeWindow) SetSize(w, h int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.w, f.h = w, h
}

func (f *fakeWindow) Center() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.centered++
	f.x, f.y = 100, 100
}

func (f *fakeWindow) Show() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shown = true
}

func (f *fakeWindow) SetAlwaysOnTop(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.top = on
}

func (f *fakeWindow) IsFullscreen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fullscreen
}

func (f *fakeWindow) SetFullscreen(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fullscreen = on
}

func (f *fakeWindow) ExecJS(script string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts = append(f.scripts, script)
}

func (f *fakeWindow) SetClipboard(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clipboard = text
	return nil
}

func (f *fakeWindow) OpenExternal(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened = append(f.opened, url)
}

func (f *fakeWindow) SetMenu(items []MenuItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.menus = append(f.menus, items)
}

func (f *fakeWindow) lastScript() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.scripts) == 0 {
		return ""
	}
	return f.scripts[len(f.scripts)-1]
}

func attachTo(w Window) func(context.Context) Window {
	return func(context.Context) Window { return w }
}
