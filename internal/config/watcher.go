package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watch reloads the settings file whenever it changes and sends the result
// on updates until ctx is done. The parent directory is watched so that
// editors replacing the file by rename are seen too.
func Watch(ctx context.Context, path string, updates chan<- Settings, log zerolog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return err
	}
	log.Debug().Str("path", path).Msg("watching settings")

	go func() {
		defer watcher.Close()
		// editors emit several events per save; coalesce them
		var reload <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
					reload = time.After(100 * time.Millisecond)
				}
			case <-reload:
				reload = nil
				s := LoadSettingsOrDefault(path, log)
				log.Info().Str("path", path).Msg("settings reloaded")
				select {
				case updates <- s:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error().Err(err).Msg("settings watcher")
			}
		}
	}()
	return nil
}
