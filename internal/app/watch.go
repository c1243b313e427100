package app

import (
	"context"
	"time"
)

// Geometry change kinds reported by watchGeometry.
const (
	EventMove   = "move"
	EventResize = "resize"
)

// geometrySample is a window's position and size at one instant.
type geometrySample struct {
	x, y, width, height int
}

func sampleGeometry(w Window) geometrySample {
	x, y := w.Position()
	width, height := w.Size()
	return geometrySample{x: x, y: y, width: width, height: height}
}

// watchGeometry samples w periodically and reports moves and resizes
// relative to last until ctx is done. The host exposes no window move/resize
// notifications, so changes are detected by comparison. last must be taken
// before the watcher starts or early changes are lost.
func watchGeometry(ctx context.Context, w Window, last geometrySample, every time.Duration, changed func(kind string)) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := sampleGeometry(w)
			if now.width != last.width || now.height != last.height {
				changed(EventResize)
			}
			if now.x != last.x || now.y != last.y {
				changed(EventMove)
			}
			last = now
		}
	}
}
