// Package watch recomputes reports when task log documents change on disk.
package watch

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of change events. When the window closes the
// callback runs once per changed path, with the last event seen for that
// path, in the order the paths first changed.
type Debouncer struct {
	window   time.Duration
	callback func(ChangeEvent)

	mu      sync.Mutex
	timer   *time.Timer
	order   []string
	pending map[string]ChangeEvent
	stopped bool
}

// NewDebouncer creates a debouncer with the given window duration.
func NewDebouncer(window time.Duration, callback func(ChangeEvent)) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
		pending:  make(map[string]ChangeEvent),
	}
}

// Trigger records ev and restarts the window.
func (d *Debouncer) Trigger(ev ChangeEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if _, ok := d.pending[ev.Path]; !ok {
		d.order = append(d.order, ev.Path)
	}
	d.pending[ev.Path] = ev
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	events := make([]ChangeEvent, 0, len(d.order))
	for _, path := range d.order {
		events = append(events, d.pending[path])
	}
	d.order = nil
	d.pending = make(map[string]ChangeEvent)
	d.mu.Unlock()

	if d.callback == nil {
		return
	}
	for _, ev := range events {
		d.callback(ev)
	}
}

// Stop cancels any pending callback. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
