package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Preset is a fixed window size offered in the Resize menu.
type Preset struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Settings are the optional per-user defaults read from settings.yaml.
type Settings struct {
	DefaultURL    string        `yaml:"default_url"`
	DefaultWidth  int           `yaml:"default_width"`
	DefaultHeight int           `yaml:"default_height"`
	ZoomStep      float64       `yaml:"zoom_step"`
	SaveDelay     time.Duration `yaml:"save_delay"`
	Presets       []Preset      `yaml:"presets"`
}

// DefaultPresets are offered when settings.yaml does not list any.
var DefaultPresets = []Preset{
	{Width: 1920, Height: 1080},
	{Width: 1600, Height: 900},
	{Width: 1280, Height: 720},
	{Width: 960, Height: 540},
	{Width: 1080, Height: 1080},
	{Width: 800, Height: 600},
	{Width: 1080, Height: 1920},
	{Width: 720, Height: 1280},
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		DefaultURL:    DefaultURL,
		DefaultWidth:  960,
		DefaultHeight: 540,
		ZoomStep:      0.15,
		SaveDelay:     500 * time.Millisecond,
		Presets:       append([]Preset(nil), DefaultPresets...),
	}
}

// LoadSettings reads path and fills every missing or unusable field from
// Default. A missing file is not an error; a malformed one is, but the
// returned settings are still usable.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s.withDefaults(), nil
}

// LoadSettingsOrDefault is LoadSettings that logs failures instead of
// returning them.
func LoadSettingsOrDefault(path string, log zerolog.Logger) Settings {
	s, err := LoadSettings(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("using default settings")
	}
	return s
}

func (s Settings) withDefaults() Settings {
	d := Default()
	if s.DefaultURL == "" {
		s.DefaultURL = d.DefaultURL
	}
	if s.DefaultWidth <= 0 {
		s.DefaultWidth = d.DefaultWidth
	}
	if s.DefaultHeight <= 0 {
		s.DefaultHeight = d.DefaultHeight
	}
	if s.ZoomStep <= 0 {
		s.ZoomStep = d.ZoomStep
	}
	if s.SaveDelay <= 0 {
		s.SaveDelay = d.SaveDelay
	}
	presets := s.Presets[:0:0]
	for _, p := range s.Presets {
		if p.Width > 0 && p.Height > 0 {
			presets = append(presets, p)
		}
	}
	if len(presets) == 0 {
		presets = d.Presets
	}
	s.Presets = presets
	return s
}
