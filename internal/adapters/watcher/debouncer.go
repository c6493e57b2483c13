// Package watcher re-runs work when a corpus file changes on disk.
package watcher

import (
	"sync"
	"time"

	"go.trai.ch/smolbuf"
)

// Debouncer coalesces rapid file system events into batched notifications.
type Debouncer struct {
	mu       sync.Mutex
	pending  *smolbuf.Map[struct{}]
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  smolbuf.NewMap[struct{}](0),
		window:   window,
		callback: callback,
	}
}

// Add adds a file path to the pending events set.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending.Set(smolbuf.New(path), struct{}{})

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()
	paths := d.drain()
	d.timer = nil
	d.mu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		go d.callback(paths)
	}
}

// Flush immediately runs the callback with all pending paths and blocks
// until it returns.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than processing twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	paths := d.drain()
	d.mu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

// Stop drops pending paths and cancels the timer. A callback already started
// keeps running.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.drain()
}

// drain empties the pending set and returns its paths in sorted order.
// Callers hold d.mu.
func (d *Debouncer) drain() []string {
	if d.pending.Len() == 0 {
		return nil
	}
	keys := d.pending.Keys()
	paths := make([]string, len(keys))
	for i := range keys {
		paths[i] = keys[i].String()
	}
	d.pending = smolbuf.NewMap[struct{}](0)
	return paths
}
