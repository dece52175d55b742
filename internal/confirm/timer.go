package confirm

import "time"

// Timer is a cooperative countdown. It owns no goroutine and schedules
// nothing itself: the caller feeds it the current time via Tick and uses
// the return value to decide whether to schedule another tick. This keeps
// every mutation on the single event-processing thread of the caller.
type Timer struct {
	limit     time.Duration
	start     time.Time
	remaining time.Duration
	running   bool
	onTimeout func()
}

// NewTimer creates a stopped timer. onTimeout fires exactly once per run,
// from within the Tick that observes expiry.
func NewTimer(onTimeout func()) *Timer {
	return &Timer{onTimeout: onTimeout}
}

// Start begins a countdown of limit from now. The caller must schedule
// the first Tick.
func (t *Timer) Start(now time.Time, limit time.Duration) {
	t.limit = limit
	t.start = now
	t.remaining = limit
	t.running = true
}

// Tick recomputes the remaining time. It returns true when another tick
// should be scheduled. On expiry the remaining time clamps to zero, the
// timer stops, and onTimeout fires.
func (t *Timer) Tick(now time.Time) bool {
	if !t.running {
		return false
	}
	elapsed := now.Sub(t.start)
	remaining := t.limit - elapsed
	if remaining <= 0 {
		t.remaining = 0
		t.running = false
		if t.onTimeout != nil {
			t.onTimeout()
		}
		return false
	}
	t.remaining = remaining
	return true
}

// Cancel stops the countdown without firing onTimeout. Idempotent; a tick
// arriving after Cancel is ignored.
func (t *Timer) Cancel() {
	t.running = false
}

// Running reports whether a countdown is in progress.
func (t *Timer) Running() bool {
	return t.running
}

// Remaining returns the time left as of the last Start or Tick. Never
// negative.
func (t *Timer) Remaining() time.Duration {
	return t.remaining
}
