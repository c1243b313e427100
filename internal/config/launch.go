// Package config resolves command line input and the optional user settings
// file into the values a launch needs.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultURL is loaded when no address is given.
const DefaultURL = "https://github.com/antfu/broz#readme"

// Options is the raw, unvalidated CLI input.
type Options struct {
	Top    bool
	Frame  bool
	Width  string
	Height string
	X      string
	Y      string
	Child  bool
	Debug  bool
}

// LaunchConfig is resolved once per process and never mutated.
type LaunchConfig struct {
	URL    string
	Top    bool
	Frame  bool
	Width  *int // nil: use persisted or default geometry
	Height *int
	X      *int // set for windows spawned from another window
	Y      *int
	Child  bool
	Debug  bool // verbose logging, inherited by child windows
}

// ConfigError reports a flag value that is not a usable number.
type ConfigError struct {
	Flag  string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid --%s %q: %v", e.Flag, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid --%s %q", e.Flag, e.Value)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Resolve turns the positional url and flags into a LaunchConfig.
// An empty url falls back to fallback, or DefaultURL when fallback is empty.
func Resolve(url string, opts Options, fallback string) (LaunchConfig, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		url = fallback
	}
	if url == "" {
		url = DefaultURL
	}
	cfg := LaunchConfig{
		URL:   url,
		Top:   opts.Top,
		Frame: opts.Frame,
		Child: opts.Child,
		Debug: opts.Debug,
	}

	var err error
	if cfg.Width, err = parseSize("width", opts.Width); err != nil {
		return LaunchConfig{}, err
	}
	if cfg.Height, err = parseSize("height", opts.Height); err != nil {
		return LaunchConfig{}, err
	}
	if cfg.X, err = parseCoord("x", opts.X); err != nil {
		return LaunchConfig{}, err
	}
	if cfg.Y, err = parseCoord("y", opts.Y); err != nil {
		return LaunchConfig{}, err
	}
	return cfg, nil
}

// TargetURL is the address actually loaded: http:// is implied when the
// URL carries no scheme separator.
func (c LaunchConfig) TargetURL() string {
	return TargetURL(c.URL)
}

// TargetURL applies the implicit http:// prefix to raw.
func TargetURL(raw string) string {
	if strings.Contains(raw, "://") {
		return raw
	}
	return "http://" + raw
}

func parseSize(flag, v string) (*int, error) {
	n, err := parseInt(flag, v)
	if err != nil || n == nil {
		return n, err
	}
	if *n <= 0 {
		return nil, &ConfigError{Flag: flag, Value: v, Err: fmt.Errorf("must be positive")}
	}
	return n, nil
}

func parseCoord(flag, v string) (*int, error) {
	return parseInt(flag, v)
}

func parseInt(flag, v string) (*int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, &ConfigError{Flag: flag, Value: v, Err: err}
	}
	return &n, nil
}
