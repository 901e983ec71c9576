package discovery

import (
	"sync"
	"time"
)

// debouncer coalesces events per path: only the last event seen within the
// delay is delivered.
type debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	timers  map[string]*time.Timer
	pending map[string]Event
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:   delay,
		timers:  make(map[string]*time.Timer),
		pending: make(map[string]Event),
	}
}

func (d *debouncer) add(e Event, fire func(Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if prev, ok := d.pending[e.Path]; ok && prev.Type == EventCreate && e.Type == EventModify {
		e.Type = EventCreate
	}
	d.pending[e.Path] = e

	if t, ok := d.timers[e.Path]; ok && t.Stop() {
		d.wg.Done()
	}

	var t *time.Timer
	d.wg.Add(1)
	t = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		if d.timers[e.Path] != t {
			// superseded by a later event
			d.mu.Unlock()
			return
		}
		ev := d.pending[e.Path]
		delete(d.timers, e.Path)
		delete(d.pending, e.Path)
		d.mu.Unlock()

		fire(ev)
	})
	d.timers[e.Path] = t
}

// stopAndWait drops pending events and waits for callbacks already running.
func (d *debouncer) stopAndWait(timeout time.Duration) bool {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
		delete(d.pending, key)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
