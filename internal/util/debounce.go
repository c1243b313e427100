// Package util holds small helpers shared by the window code.
package util

import (
	"sync"
	"time"
)

// Debouncer delays fn until calls stop arriving for the configured delay.
// Only the trailing edge fires, with the value of the last Call.
type Debouncer[T any] struct {
	mu      sync.Mutex
	fn      func(T)
	delay   time.Duration
	timer   *time.Timer
	pending bool
	last    T
	seq     uint64
}

// Debounce wraps fn so that bursts of Call collapse into one invocation.
func Debounce[T any](fn func(T), delay time.Duration) *Debouncer[T] {
	return &Debouncer[T]{fn: fn, delay: delay}
}

// Call (re)schedules fn(v). Any pending invocation is cancelled.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.last = v
	d.pending = true
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() { d.fire(seq) })
}

// fire runs fn unless a later Call, Flush or Stop superseded this timer.
func (d *Debouncer[T]) fire(seq uint64) {
	d.mu.Lock()
	if !d.pending || seq != d.seq {
		d.mu.Unlock()
		return
	}
	v := d.last
	d.pending = false
	d.timer = nil
	d.mu.Unlock()
	d.fn(v)
}

// Flush runs a pending invocation immediately. It reports whether one ran.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	v := d.last
	d.pending = false
	d.seq++
	d.mu.Unlock()
	d.fn(v)
	return true
}

// Stop drops a pending invocation without running it.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
	d.seq++
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
