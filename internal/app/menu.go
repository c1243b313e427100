package app

import (
	"fmt"

	"GoBroz/internal/util"
)

// MenuItem is one node of the application menu. A node has either an
// Action or Children; Separator nodes have neither.
type MenuItem struct {
	Label     string
	Key       string // accelerator, pressed together with Cmd (macOS) or Ctrl
	Separator bool
	Action    func()
	Children  []MenuItem
}

// PresetLabel formats a Resize entry, e.g. "1920 x 1080 (16:9)".
func PresetLabel(width, height int) string {
	return fmt.Sprintf("%d x %d (%s)", width, height, util.Ratio(width, height))
}

// Menu builds the application menu from the current settings.
func (a *App) Menu() []MenuItem {
	a.mu.Lock()
	presets := a.settings.Presets
	a.mu.Unlock()

	sizes := make([]MenuItem, 0, len(presets))
	for _, p := range presets {
		p := p
		sizes = append(sizes, MenuItem{
			Label:  PresetLabel(p.Width, p.Height),
			Action: func() { a.Resize(p.Width, p.Height) },
		})
	}

	return []MenuItem{
		{
			Label: "Broz",
			Children: []MenuItem{
				{Label: "Copy URL", Action: a.CopyURL},
				{Label: "Open in System Browser", Action: a.OpenInBrowser},
				{Separator: true},
				{Label: "Resize", Children: sizes},
				{Label: "Flip Size", Action: a.FlipSize},
				{Label: "Center Window", Action: a.CenterWindow},
			},
		},
		{
			Label: "Navigate",
			Children: []MenuItem{
				{Label: "Back", Key: "[", Action: a.Back},
				{Label: "Forward", Key: "]", Action: a.Forward},
				{Label: "Reload", Key: "r", Action: a.Reload},
			},
		},
		{
			Label: "View",
			Children: []MenuItem{
				{Label: "Zoom In", Key: "=", Action: a.ZoomIn},
				{Label: "Zoom Out", Key: "-", Action: a.ZoomOut},
				{Label: "Actual Size", Key: "0", Action: a.ZoomReset},
				{Separator: true},
				{Label: "Toggle Always on Top", Action: a.ToggleAlwaysOnTop},
				{Label: "Toggle Kiosk", Action: a.ToggleKiosk},
			},
		},
	}
}

// FindMenuItem walks the tree along labels, e.g. "Broz", "Flip Size".
func FindMenuItem(items []MenuItem, path ...string) (MenuItem, bool) {
	if len(path) == 0 {
		return MenuItem{}, false
	}
	for _, it := range items {
		if it.Separator || it.Label != path[0] {
			continue
		}
		if len(path) == 1 {
			return it, true
		}
		return FindMenuItem(it.Children, path[1:]...)
	}
	return MenuItem{}, false
}
