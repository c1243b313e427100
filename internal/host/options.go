package host

import (
	"GoBroz/internal/app"
	"GoBroz/internal/config"
	"GoBroz/internal/logging"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

// minimum window size; the drag hotspot alone needs 60px
const (
	minWidth  = 120
	minHeight = 80
)

// BuildOptions describes the native window for a.
func BuildOptions(a *app.App, log zerolog.Logger) *options.App {
	cfg := a.Config()
	g := a.Geometry()

	return &options.App{
		Title:     config.AppName,
		Width:     g.Width,
		Height:    g.Height,
		MinWidth:  minWidth,
		MinHeight: minHeight,
		Frameless: !cfg.Frame,
		// placed in OnStartup, shown once in position
		StartHidden:      g.X != nil && g.Y != nil,
		AlwaysOnTop:      cfg.Top,
		BackgroundColour: &options.RGBA{R: 30, G: 30, B: 30, A: 255},
		AssetServer: &assetserver.Options{
			Assets: app.Assets(),
		},
		Menu:       BuildMenu(a.Menu()),
		Logger:     logging.NewWails(log),
		LogLevel:   logging.Level(log),
		OnStartup:  a.Startup,
		OnDomReady: a.DomReady,
		OnShutdown: a.Shutdown,
		Bind: []interface{}{
			app.NewBridge(a),
		},
		Mac: &mac.Options{
			TitleBar: &mac.TitleBar{
				TitlebarAppearsTransparent: true,
				HideTitle:                  true,
				HideTitleBar:               false,
				FullSizeContent:            true,
				UseToolbar:                 false,
				HideToolbarSeparator:       true,
			},
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
		},
		Windows: &windows.Options{
			WebviewIsTransparent:              false,
			WindowIsTranslucent:               false,
			DisableFramelessWindowDecorations: false,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			ProgramName:         "broz",
		},
	}
}

// Run blocks until the window is closed.
func Run(opts *options.App) error {
	return wails.Run(opts)
}
