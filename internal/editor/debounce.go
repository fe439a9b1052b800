package editor

import (
	"sync"
	"time"
)

// DefaultAutosaveDelay is how long input has to stay idle before the document is written.
const DefaultAutosaveDelay = 1000 * time.Millisecond

// Scheduler runs f once after d. The returned stop function reports whether
// it prevented f from running, like (*time.Timer).Stop.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// SchedulerFunc adapts a plain function to Scheduler.
type SchedulerFunc func(d time.Duration, f func()) (stop func() bool)

func (fn SchedulerFunc) AfterFunc(d time.Duration, f func()) func() bool { return fn(d, f) }

// WallClock schedules on runtime timers. f runs on the timer goroutine.
var WallClock Scheduler = SchedulerFunc(func(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
})

type AutosaveState int

const (
	AutosaveIdle AutosaveState = iota
	AutosavePending
)

func (s AutosaveState) String() string {
	switch s {
	case AutosavePending:
		return "pending"
	default:
		return "idle"
	}
}

// Debouncer coalesces bursts of Start calls into one call of fn, run once
// the bursts stop for the configured delay.
//
// Every arm gets a sequence number. A fire carrying an old sequence is
// dropped, so a timer that could not be stopped in time never runs fn twice.
type Debouncer struct {
	delay time.Duration
	sched Scheduler
	fn    func()

	mu    sync.Mutex
	state AutosaveState
	seq   uint64
	stop  func() bool
	runs  int
}

func NewDebouncer(delay time.Duration, sched Scheduler, fn func()) *Debouncer {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	if sched == nil {
		sched = WallClock
	}
	return &Debouncer{delay: delay, sched: sched, fn: fn}
}

func (d *Debouncer) Delay() time.Duration { return d.delay }

// Start arms the timer, cancelling and re-arming it when already pending.
func (d *Debouncer) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.seq++
	seq := d.seq
	d.state = AutosavePending
	d.stop = d.sched.AfterFunc(d.delay, func() { d.fire(seq) })
}

// Cancel drops a pending run. It is a no-op when idle.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.seq++
	d.state = AutosaveIdle
}

// Flush runs fn immediately if a run is pending and reports whether it did.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.state != AutosavePending {
		d.mu.Unlock()
		return false
	}
	d.stopLocked()
	d.seq++
	d.state = AutosaveIdle
	d.runs++
	d.mu.Unlock()

	if d.fn != nil {
		d.fn()
	}
	return true
}

func (d *Debouncer) State() AutosaveState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Runs reports how many times fn has been called.
func (d *Debouncer) Runs() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.runs
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || d.state != AutosavePending {
		d.mu.Unlock()
		return
	}
	d.state = AutosaveIdle
	d.stop = nil
	d.runs++
	d.mu.Unlock()

	if d.fn != nil {
		d.fn()
	}
}

func (d *Debouncer) stopLocked() {
	if d.stop != nil {
		_ = d.stop()
		d.stop = nil
	}
}
