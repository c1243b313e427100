package host

import (
	goruntime "runtime"

	"GoBroz/internal/app"

	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
)

// BuildMenu converts the controller's menu tree into a Wails menu. On macOS
// the standard application and edit menus are kept so that Cmd+Q and
// clipboard shortcuts keep working.
func BuildMenu(items []app.MenuItem) *menu.Menu {
	m := menu.NewMenu()
	if goruntime.GOOS == "darwin" {
		m.Append(menu.AppMenu())
		m.Append(menu.EditMenu())
	}
	addItems(m, items)
	if goruntime.GOOS == "darwin" {
		m.Append(menu.WindowMenu())
	}
	return m
}

func addItems(m *menu.Menu, items []app.MenuItem) {
	for _, it := range items {
		switch {
		case it.Separator:
			m.AddSeparator()
		case len(it.Children) > 0:
			addItems(m.AddSubmenu(it.Label), it.Children)
		default:
			var accel *keys.Accelerator
			if it.Key != "" {
				accel = keys.CmdOrCtrl(it.Key)
			}
			action := it.Action
			m.AddText(it.Label, accel, func(*menu.CallbackData) {
				if action != nil {
					action()
				}
			})
		}
	}
}
