package editor

import (
	"sort"
	"time"
)

// fakeClock is a virtual-time Scheduler. Timers fire only from Advance.
type fakeClock struct {
	now    time.Duration
	timers []*fakeTimer
	// unstoppable makes stop() report success without cancelling, to
	// exercise the stale-fire guard.
	unstoppable bool
}

type fakeTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) func() bool {
	t := &fakeTimer{at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return func() bool {
		if t.stopped || t.fired {
			return false
		}
		if !c.unstoppable {
			t.stopped = true
		}
		return true
	}
}

func (c *fakeClock) Advance(d time.Duration) {
	target := c.now + d
	for {
		due := c.due(target)
		if due == nil {
			break
		}
		c.now = due.at
		due.fired = true
		due.f()
	}
	c.now = target
}

func (c *fakeClock) due(target time.Duration) *fakeTimer {
	var pending []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= target {
			pending = append(pending, t)
		}
	}
	if len(pending) == 0 {
		return nil
	}
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].at < pending[j].at })
	return pending[0]
}

// recordingPrefs stamps each write with the virtual time it happened at.
type recordingPrefs struct {
	clock  *fakeClock
	values map[string]string
	writes []write
	fail   error
}

type write struct {
	at    time.Duration
	key   string
	value string
}

func newRecordingPrefs(c *fakeClock) *recordingPrefs {
	return &recordingPrefs{clock: c, values: map[string]string{}}
}

func (p *recordingPrefs) Load(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

func (p *recordingPrefs) Save(key, value string) error {
	if p.fail != nil {
		return p.fail
	}
	p.values[key] = value
	p.writes = append(p.writes, write{at: p.clock.now, key: key, value: value})
	return nil
}

func (p *recordingPrefs) writesFor(key string) []write {
	var out []write
	for _, w := range p.writes {
		if w.key == key {
			out = append(out, w)
		}
	}
	return out
}

type stubRenderer struct{ calls int }

func (r *stubRenderer) HTML(src string) string {
	r.calls++
	return "<p>" + src + "</p>"
}
