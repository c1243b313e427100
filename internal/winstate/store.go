// Package winstate persists window geometry across runs.
//
// The record lives in a small JSON file keyed by application identifier.
// Reads fall back to defaults on any failure and writes never surface
// errors to the caller: losing a window position is not worth a crash.
package winstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"GoBroz/internal/util"

	"github.com/rs/zerolog"
)

// DefaultSaveDelay coalesces bursts of move/resize events.
const DefaultSaveDelay = 500 * time.Millisecond

// Window is the part of a native window the store needs to read.
type Window interface {
	Position() (x, y int)
	Size() (width, height int)
}

// Size is a width/height pair.
type Size struct {
	Width  int
	Height int
}

// Geometry is the persisted window record. A nil X or Y lets the OS place
// the window.
type Geometry struct {
	X      *int `json:"x,omitempty"`
	Y      *int `json:"y,omitempty"`
	Width  int  `json:"width"`
	Height int  `json:"height"`
}

// GeometryOf samples the live geometry of w.
func GeometryOf(w Window) Geometry {
	x, y := w.Position()
	width, height := w.Size()
	return Geometry{X: &x, Y: &y, Width: width, Height: height}
}

// Store owns one geometry record.
type Store struct {
	path  string
	key   string
	delay time.Duration
	log   zerolog.Logger

	mu      sync.Mutex
	managed Window
	save    *util.Debouncer[Geometry]
}

// Option configures a Store.
type Option func(*Store)

// WithDelay sets the debounce window for Changed.
func WithDelay(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithLogger sets the logger used for swallowed persistence errors.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// Open returns a store for the record key inside the file at path.
// Nothing is read until Restore.
func Open(path, key string, opts ...Option) *Store {
	s := &Store{path: path, key: key, delay: DefaultSaveDelay, log: zerolog.Nop()}
	for _, o := range opts {
		o(s)
	}
	s.save = util.Debounce(s.write, s.delay)
	return s
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Restore returns the persisted geometry, or defaults with an unset
// position when there is no usable record.
func (s *Store) Restore(defaults Size) Geometry {
	fallback := Geometry{Width: defaults.Width, Height: defaults.Height}
	records, err := readRecords(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("window state unreadable, using defaults")
		}
		return fallback
	}
	g, ok := records[s.key]
	if !ok || g.Width <= 0 || g.Height <= 0 {
		return fallback
	}
	return g
}

// Manage binds the store to w; Changed then saves w's geometry.
func (s *Store) Manage(w Window) {
	s.mu.Lock()
	s.managed = w
	s.mu.Unlock()
}

// Changed records the managed window's current geometry and schedules a
// debounced write. Only the geometry seen by the last call within the delay
// is persisted.
func (s *Store) Changed() {
	s.mu.Lock()
	w := s.managed
	s.mu.Unlock()
	if w == nil {
		return
	}
	s.save.Call(GeometryOf(w))
}

// Save writes w's geometry immediately, superseding any pending write.
func (s *Store) Save(w Window) {
	s.save.Stop()
	s.write(GeometryOf(w))
}

// Close flushes a pending debounced write.
func (s *Store) Close() {
	s.save.Flush()
}

func (s *Store) write(g Geometry) {
	if err := s.put(g); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("window state not saved")
		return
	}
	s.log.Debug().Int("width", g.Width).Int("height", g.Height).Msg("window state saved")
}

// put overwrites this store's record, keeping records of other keys.
func (s *Store) put(g Geometry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := readRecords(s.path)
	if err != nil {
		records = map[string]Geometry{}
	}
	records[s.key] = g
	return s.writeRecords(records)
}

// writeRecords replaces the file atomically. s.mu must be held.
func (s *Store) writeRecords(records map[string]Geometry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode window state: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write window state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace window state: %w", err)
	}
	return nil
}

func readRecords(path string) (map[string]Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records map[string]Geometry
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode window state: %w", err)
	}
	if records == nil {
		records = map[string]Geometry{}
	}
	return records, nil
}

// Reset deletes this store's record. Other keys are kept.
func (s *Store) Reset() error {
	s.save.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := readRecords(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if _, ok := records[s.key]; !ok {
		return nil
	}
	delete(records, s.key)
	return s.writeRecords(records)
}

// Records returns every persisted record in the file.
func Records(path string) (map[string]Geometry, error) {
	return readRecords(path)
}
