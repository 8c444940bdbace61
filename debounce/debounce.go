// Package debounce delays committing a value until input has been quiet for a
// fixed period.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period used for search input.
const DefaultDelay = time.Second

// Timer is the part of *time.Timer the debouncer needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run after d.
type AfterFunc func(d time.Duration, f func()) Timer

type Option func(*Debouncer)

// WithAfterFunc replaces time.AfterFunc, mainly for tests.
func WithAfterFunc(fn AfterFunc) Option {
	return func(d *Debouncer) { d.afterFunc = fn }
}

// Debouncer commits the latest pushed value once no new value has arrived
// for the delay. It is safe for concurrent use. commit runs with the
// debouncer's lock held and must not call back into the Debouncer.
type Debouncer struct {
	mu        sync.Mutex
	delay     time.Duration
	commit    func(string)
	afterFunc AfterFunc
	timer     Timer
	gen       uint64
	stopped   bool
}

func New(delay time.Duration, commit func(string), opts ...Option) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	d := &Debouncer{
		delay:  delay,
		commit: commit,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Push re-arms the timer with value, dropping any value still pending.
func (d *Debouncer) Push(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.cancelLocked()
	gen := d.gen
	d.timer = d.afterFunc(d.delay, func() { d.fire(gen, value) })
}

// Flush cancels any pending value and commits value immediately.
func (d *Debouncer) Flush(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.cancelLocked()
	d.commit(value)
}

// Stop cancels any pending value. No commit happens after Stop returns.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}

// Pending reports whether a value is waiting for the quiet period.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	// A timer that already fired and is waiting on mu sees a stale gen.
	d.gen++
}

func (d *Debouncer) fire(gen uint64, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || gen != d.gen {
		return
	}
	d.timer = nil
	d.gen++
	d.commit(value)
}
