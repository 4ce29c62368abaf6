package fs

import (
	"sync"
	"time"

	"github.com/aretw0/gitrs/pkg/core"
)

// debouncer collapses bursts of events for the same path into the last one.
// Editors and atomic renames produce several raw notifications per logical
// change; subscribers only care about the final state.
type debouncer struct {
	mu      sync.Mutex
	wg      sync.WaitGroup
	delay   time.Duration
	timers  map[string]*time.Timer
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules emit(event) after the delay, replacing any pending emission
// for the same path.
func (d *debouncer) add(event core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if t, ok := d.timers[event.Path]; ok {
		// Stop returning true means the callback will never run, so its
		// waitgroup slot has to be released here.
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, event.Path)
	}

	d.wg.Add(1)
	var timer *time.Timer
	timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		// Only the current timer for this path may emit. A replaced timer
		// that lost the Stop race stays silent.
		current := d.timers[event.Path] == timer
		if current {
			delete(d.timers, event.Path)
		}
		stopped := d.stopped
		d.mu.Unlock()

		if current && !stopped {
			emit(event)
		}
	})
	d.timers[event.Path] = timer
}

// stopAndWait refuses further events, cancels pending timers and waits up
// to timeout for in-flight callbacks to finish.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for path, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, path)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
