package confirm

import (
	"testing"
	"time"
)

func TestTimerCountsDown(t *testing.T) {
	tm := NewTimer(nil)
	start := time.Unix(0, 0)
	tm.Start(start, time.Second)

	if !tm.Running() {
		t.Fatal("timer should be running after Start")
	}
	if got := tm.Remaining(); got != time.Second {
		t.Errorf("remaining after start = %v, want 1s", got)
	}

	if !tm.Tick(start.Add(400 * time.Millisecond)) {
		t.Error("tick before expiry should request a reschedule")
	}
	if got := tm.Remaining(); got != 600*time.Millisecond {
		t.Errorf("remaining = %v, want 600ms", got)
	}
}

func TestTimerTimeoutFiresOnce(t *testing.T) {
	fired := 0
	tm := NewTimer(func() { fired++ })
	start := time.Unix(0, 0)
	tm.Start(start, time.Second)

	if tm.Tick(start.Add(time.Second)) {
		t.Error("tick at expiry should not reschedule")
	}
	if fired != 1 {
		t.Fatalf("timeout fired %d times, want 1", fired)
	}
	if tm.Running() {
		t.Error("timer should stop on timeout")
	}
	if got := tm.Remaining(); got != 0 {
		t.Errorf("remaining after timeout = %v, want 0", got)
	}

	// A straggler tick after expiry is inert.
	tm.Tick(start.Add(2 * time.Second))
	if fired != 1 {
		t.Errorf("timeout fired %d times after straggler tick, want 1", fired)
	}
}

func TestTimerRemainingNeverNegative(t *testing.T) {
	tm := NewTimer(nil)
	start := time.Unix(0, 0)
	tm.Start(start, time.Second)

	tm.Tick(start.Add(5 * time.Second))
	if got := tm.Remaining(); got != 0 {
		t.Errorf("remaining = %v, want 0", got)
	}
}

func TestTimerCancelIdempotent(t *testing.T) {
	fired := 0
	tm := NewTimer(func() { fired++ })
	start := time.Unix(0, 0)
	tm.Start(start, time.Second)

	tm.Cancel()
	tm.Cancel()

	if tm.Running() {
		t.Error("timer should be stopped after Cancel")
	}
	if tm.Tick(start.Add(2 * time.Second)) {
		t.Error("tick after cancel should not reschedule")
	}
	if fired != 0 {
		t.Errorf("timeout fired %d times after cancel, want 0", fired)
	}
}

func TestTimerRestartAfterCancel(t *testing.T) {
	tm := NewTimer(nil)
	start := time.Unix(0, 0)
	tm.Start(start, time.Second)
	tm.Cancel()

	tm.Start(start.Add(time.Minute), 2*time.Second)
	if !tm.Running() {
		t.Fatal("timer should run after restart")
	}
	if !tm.Tick(start.Add(time.Minute + time.Second)) {
		t.Error("tick halfway through restarted countdown should reschedule")
	}
	if got := tm.Remaining(); got != time.Second {
		t.Errorf("remaining = %v, want 1s", got)
	}
}
