// Package debounce provides a cancellable delayed-task primitive.
//
// A Debouncer holds at most one pending task. Triggering a new task cancels
// the pending one, so a burst of calls within the quiescence window runs
// only the last task, once, after the window has elapsed.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delays tasks and keeps only the most recent one.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	running int
	seq     uint64
}

// New returns a Debouncer with the given quiescence window.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the quiescence window, cancelling any
// task that is still pending.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.seq++
	seq := d.seq
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() { d.fire(seq) })
}

// fire runs the task scheduled under seq unless it has been superseded
// between the timer expiring and this call taking the lock.
func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.running++
	d.mu.Unlock()

	d.run(fn)
}

func (d *Debouncer) run(fn func()) {
	defer func() {
		d.mu.Lock()
		d.running--
		d.mu.Unlock()
	}()
	fn()
}

// Cancel drops the pending task. It reports whether a task was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	had := d.pending != nil
	d.stopLocked()
	d.seq++
	return had
}

// Busy reports whether a task is pending or currently running.
func (d *Debouncer) Busy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil || d.running > 0
}

// Flush runs the pending task immediately on the calling goroutine.
// It reports whether a task ran.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.pending
	d.stopLocked()
	d.seq++
	if fn != nil {
		d.running++
	}
	d.mu.Unlock()

	if fn == nil {
		return false
	}
	d.run(fn)
	return true
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}
