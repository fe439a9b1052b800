package editor

import (
	"testing"
	"time"
)

func TestDebouncer_BurstProducesOneRun(t *testing.T) {
	clock := &fakeClock{}
	runs := 0
	d := NewDebouncer(time.Second, clock, func() { runs++ })

	d.Start()
	clock.Advance(200 * time.Millisecond)
	d.Start()
	clock.Advance(200 * time.Millisecond)
	d.Start()

	if d.State() != AutosavePending {
		t.Fatalf("expected pending, got %v", d.State())
	}
	clock.Advance(999 * time.Millisecond)
	if runs != 0 {
		t.Fatalf("fired too early: runs=%d at %v", runs, clock.now)
	}
	clock.Advance(time.Millisecond)
	if runs != 1 {
		t.Fatalf("expected exactly one run at 1400ms, got %d", runs)
	}
	if d.State() != AutosaveIdle {
		t.Fatalf("expected idle after firing, got %v", d.State())
	}

	clock.Advance(10 * time.Second)
	if runs != 1 {
		t.Fatalf("expected no further runs, got %d", runs)
	}
}

func TestDebouncer_CancelPreventsRun(t *testing.T) {
	clock := &fakeClock{}
	runs := 0
	d := NewDebouncer(time.Second, clock, func() { runs++ })

	d.Start()
	clock.Advance(500 * time.Millisecond)
	d.Cancel()
	clock.Advance(5 * time.Second)

	if runs != 0 {
		t.Fatalf("cancelled debouncer ran %d times", runs)
	}
	if d.State() != AutosaveIdle {
		t.Fatalf("expected idle, got %v", d.State())
	}
	// Cancel when idle is harmless.
	d.Cancel()
}

func TestDebouncer_StaleFireIgnored(t *testing.T) {
	clock := &fakeClock{unstoppable: true}
	runs := 0
	d := NewDebouncer(time.Second, clock, func() { runs++ })

	d.Start()
	clock.Advance(500 * time.Millisecond)
	d.Start() // first timer keeps running

	clock.Advance(600 * time.Millisecond) // first timer fires at 1000ms with a stale seq
	if runs != 0 {
		t.Fatalf("stale fire should be dropped, runs=%d", runs)
	}
	clock.Advance(400 * time.Millisecond) // second timer fires at 1500ms
	if runs != 1 {
		t.Fatalf("expected one run, got %d", runs)
	}
}

func TestDebouncer_Flush(t *testing.T) {
	clock := &fakeClock{}
	runs := 0
	d := NewDebouncer(time.Second, clock, func() { runs++ })

	if d.Flush() {
		t.Fatalf("flush on idle debouncer should report false")
	}

	d.Start()
	if !d.Flush() {
		t.Fatalf("flush on pending debouncer should report true")
	}
	if runs != 1 {
		t.Fatalf("expected immediate run, got %d", runs)
	}
	clock.Advance(2 * time.Second)
	if runs != 1 {
		t.Fatalf("flushed timer should not fire again, runs=%d", runs)
	}
	if d.Runs() != 1 {
		t.Fatalf("Runs()=%d, want 1", d.Runs())
	}
}

func TestNewDebouncer_Defaults(t *testing.T) {
	d := NewDebouncer(0, nil, nil)
	if d.Delay() != DefaultAutosaveDelay {
		t.Fatalf("delay=%v, want %v", d.Delay(), DefaultAutosaveDelay)
	}
	if d.sched == nil {
		t.Fatalf("expected wall clock scheduler")
	}
}

func TestAutosaveState_String(t *testing.T) {
	if AutosaveIdle.String() != "idle" || AutosavePending.String() != "pending" {
		t.Fatalf("unexpected labels: %q %q", AutosaveIdle, AutosavePending)
	}
}
