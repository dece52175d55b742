package confirm

import (
	"math/rand"
	"testing"
	"time"
)

// fakeClock advances only when told to, so countdowns are deterministic.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type machineHarness struct {
	m        *Machine
	clock    *fakeClock
	confirms int
}

func newHarness(t *testing.T, d Difficulty, limit time.Duration) *machineHarness {
	t.Helper()
	h := &machineHarness{clock: &fakeClock{t: time.Unix(0, 0)}}
	h.m = NewMachine(Config{
		Difficulty: d,
		TimeLimit:  limit,
		OnConfirm:  func() { h.confirms++ },
		Rand:       rand.New(rand.NewSource(42)),
		Now:        h.clock.now,
	})
	return h
}

// drag runs a pointer session on a 0..100 track with a zero-size handle.
func (h *machineHarness) press(x float64) { h.m.Begin(x, 0, 100, 0) }
func (h *machineHarness) move(x float64)  { h.m.Update(x, 0) }

func TestEasyCompletesOnFullProgress(t *testing.T) {
	h := newHarness(t, Easy, 0)

	h.press(0)
	if h.m.Status() != StatusDragging {
		t.Fatalf("status after press = %v, want dragging", h.m.Status())
	}

	h.move(50)
	if h.m.Status() != StatusDragging {
		t.Fatalf("status at half progress = %v, want dragging", h.m.Status())
	}
	if h.confirms != 0 {
		t.Fatalf("confirms at half progress = %d, want 0", h.confirms)
	}

	// Easy has no countdown: an arbitrarily slow drag still completes.
	h.clock.advance(2 * time.Second)
	h.move(100)
	if h.m.Status() != StatusSuccess {
		t.Fatalf("status at full progress = %v, want success", h.m.Status())
	}
	if h.confirms != 1 {
		t.Errorf("confirms = %d, want 1", h.confirms)
	}
}

func TestEasyReleaseBeforeEndResets(t *testing.T) {
	h := newHarness(t, Easy, 0)

	h.press(0)
	h.move(80)
	h.m.Release()

	if h.m.Status() != StatusIdle {
		t.Errorf("status after early release = %v, want idle", h.m.Status())
	}
	if h.m.Progress() != 0 {
		t.Errorf("progress after reset = %v, want 0", h.m.Progress())
	}
	if h.confirms != 0 {
		t.Errorf("confirms = %d, want 0", h.confirms)
	}
}

func TestMediumCompletesWithinLimit(t *testing.T) {
	h := newHarness(t, Medium, time.Second)

	h.press(0)
	h.clock.advance(400 * time.Millisecond)
	h.m.Tick(h.clock.now())

	h.move(100)
	if h.m.Status() != StatusSuccess {
		t.Fatalf("status = %v, want success", h.m.Status())
	}
	if h.confirms != 1 {
		t.Errorf("confirms = %d, want 1", h.confirms)
	}
}

func TestMediumTimeoutForcesFailure(t *testing.T) {
	h := newHarness(t, Medium, time.Second)

	h.press(0)
	h.move(90)

	// The countdown expires with the handle just short of the end.
	h.clock.advance(1200 * time.Millisecond)
	if h.m.Tick(h.clock.now()) {
		t.Error("tick past expiry should not reschedule")
	}

	if h.m.Status() != StatusIdle {
		t.Errorf("status after timeout = %v, want idle", h.m.Status())
	}
	if h.m.Progress() != 0 {
		t.Errorf("progress after timeout = %v, want 0", h.m.Progress())
	}
	if h.confirms != 0 {
		t.Errorf("confirms = %d, want 0", h.confirms)
	}
}

// Tie-break policy: events are processed strictly in arrival order. When
// the timeout tick lands before the movement that would have completed
// the session, the timeout wins.
func TestMediumTimeoutTickBeforeFinalMove(t *testing.T) {
	h := newHarness(t, Medium, time.Second)

	h.press(0)
	h.clock.advance(time.Second)
	h.m.Tick(h.clock.now())
	h.move(100)

	if h.m.Status() != StatusIdle {
		t.Errorf("status = %v, want idle (timeout processed first)", h.m.Status())
	}
	if h.confirms != 0 {
		t.Errorf("confirms = %d, want 0", h.confirms)
	}
}

// And the mirror image: a movement processed before the expiry tick
// completes the session; the late tick is inert.
func TestMediumFinalMoveBeforeTimeoutTick(t *testing.T) {
	h := newHarness(t, Medium, time.Second)

	h.press(0)
	h.clock.advance(999 * time.Millisecond)
	h.m.Tick(h.clock.now())
	h.move(100)

	h.clock.advance(time.Millisecond)
	h.m.Tick(h.clock.now())

	if h.m.Status() != StatusSuccess {
		t.Errorf("status = %v, want success (movement processed first)", h.m.Status())
	}
	if h.confirms != 1 {
		t.Errorf("confirms = %d, want 1", h.confirms)
	}
}

func TestHardReleaseInsideZoneSucceeds(t *testing.T) {
	h := newHarness(t, Hard, time.Second)
	z := h.m.Zone()

	h.press(0)
	h.clock.advance(800 * time.Millisecond)
	h.m.Tick(h.clock.now())

	h.move((z.Start + z.End) / 2 * 100)
	if h.m.Status() != StatusDragging {
		t.Fatalf("hard must not complete on movement, status = %v", h.m.Status())
	}

	h.m.Release()
	if h.m.Status() != StatusSuccess {
		t.Fatalf("status after release inside zone = %v, want success", h.m.Status())
	}
	if h.confirms != 1 {
		t.Errorf("confirms = %d, want 1", h.confirms)
	}
}

func TestHardReleaseOutsideZoneResets(t *testing.T) {
	h := newHarness(t, Hard, time.Second)
	z := h.m.Zone()

	h.press(0)
	h.m.Tick(h.clock.now())
	h.move(100) // full progress is outside every zone unless End == 1
	if z.End < 1 {
		h.m.Release()
		if h.m.Status() != StatusIdle {
			t.Errorf("status after release outside zone = %v, want idle", h.m.Status())
		}
		if h.confirms != 0 {
			t.Errorf("confirms = %d, want 0", h.confirms)
		}
	}
}

func TestHardPassingThroughZoneDoesNotComplete(t *testing.T) {
	h := newHarness(t, Hard, time.Second)
	z := h.m.Zone()

	h.press(0)
	h.move((z.Start + z.End) / 2 * 100) // inside the zone
	h.move(95)                          // keeps adjusting past it

	if h.m.Status() != StatusDragging {
		t.Errorf("status = %v, want dragging", h.m.Status())
	}
	if h.confirms != 0 {
		t.Errorf("confirms = %d, want 0", h.confirms)
	}
}

// Time guard dominates the zone guard: a release inside the zone with the
// countdown already at zero fails.
func TestHardReleaseInZoneAfterExpiryResets(t *testing.T) {
	h := newHarness(t, Hard, time.Second)
	z := h.m.Zone()
	mid := (z.Start + z.End) / 2 * 100

	h.press(0)
	h.move(mid)
	h.clock.advance(time.Second)
	h.m.Tick(h.clock.now())

	// Timeout already reset the session; a late release is a no-op.
	h.m.Release()
	if h.m.Status() != StatusIdle {
		t.Errorf("status = %v, want idle", h.m.Status())
	}
	if h.confirms != 0 {
		t.Errorf("confirms = %d, want 0", h.confirms)
	}
}

func TestHardFailureRegeneratesZone(t *testing.T) {
	h := newHarness(t, Hard, time.Second)
	before := h.m.Zone()

	h.press(0)
	h.m.Tick(h.clock.now())
	h.move(5) // nowhere near the zone
	h.m.Release()

	after := h.m.Zone()
	if before == after {
		t.Error("zone should be regenerated on reset to idle")
	}
	if after.Start < ZoneStartMin || after.Start > ZoneStartMax {
		t.Errorf("regenerated zone start = %v out of bounds", after.Start)
	}
}

func TestCallbackFiresExactlyOncePerSuccess(t *testing.T) {
	h := newHarness(t, Easy, 0)

	h.press(0)
	h.move(100)
	if h.confirms != 1 {
		t.Fatalf("confirms = %d, want 1", h.confirms)
	}

	// Further input during the success hold must not re-fire.
	h.move(100)
	h.m.Release()
	h.m.Nudge(1)
	h.press(0)
	if h.confirms != 1 {
		t.Errorf("confirms after post-success input = %d, want 1", h.confirms)
	}
	if h.m.Status() != StatusSuccess {
		t.Errorf("status = %v, want success (hold until auto-reset)", h.m.Status())
	}
}

func TestAutoResetReturnsToIdle(t *testing.T) {
	h := newHarness(t, Hard, time.Second)
	z := h.m.Zone()

	h.press(0)
	h.m.Tick(h.clock.now())
	h.move((z.Start + z.End) / 2 * 100)
	h.m.Release()
	if h.m.Status() != StatusSuccess {
		t.Fatalf("status = %v, want success", h.m.Status())
	}

	h.m.AutoReset()
	if h.m.Status() != StatusIdle {
		t.Errorf("status after auto-reset = %v, want idle", h.m.Status())
	}
	if h.m.Progress() != 0 {
		t.Errorf("progress after auto-reset = %v, want 0", h.m.Progress())
	}
	if h.m.Zone() == z {
		t.Error("auto-reset should regenerate the hard-mode zone")
	}
}

func TestAutoResetIgnoredOutsideSuccess(t *testing.T) {
	h := newHarness(t, Easy, 0)

	h.press(0)
	h.move(40)
	h.m.AutoReset()

	if h.m.Status() != StatusDragging {
		t.Errorf("status = %v, want dragging (stale auto-reset ignored)", h.m.Status())
	}
}

func TestReentrantBeginIgnored(t *testing.T) {
	h := newHarness(t, Easy, 0)

	if !h.m.Begin(0, 0, 100, 0) {
		t.Fatal("first begin should start a session")
	}
	h.move(50)
	if h.m.Begin(0, 0, 100, 0) {
		t.Error("begin while dragging should be a no-op")
	}
	if h.m.Progress() != 0.5 {
		t.Errorf("progress = %v, want 0.5 (unchanged by re-entrant begin)", h.m.Progress())
	}
}

func TestKeyboardParityEasy(t *testing.T) {
	h := newHarness(t, Easy, 0)

	if !h.m.Activate() {
		t.Fatal("activation from idle should start a session")
	}
	for i := 0; i < 20; i++ {
		h.m.Nudge(1)
	}
	if h.m.Status() != StatusSuccess {
		t.Errorf("status after nudging to 1 = %v, want success", h.m.Status())
	}
	if h.confirms != 1 {
		t.Errorf("confirms = %d, want 1", h.confirms)
	}
}

func TestKeyboardSecondActivationIsRelease(t *testing.T) {
	h := newHarness(t, Hard, time.Second)
	z := h.m.Zone()

	h.m.Activate()
	h.m.Tick(h.clock.now())

	// Nudge into the zone, then activate again: same guard as release.
	steps := int((z.Start+z.End)/2/NudgeStep + 0.5)
	for i := 0; i < steps; i++ {
		h.m.Nudge(1)
	}
	if !z.Contains(h.m.Progress()) {
		t.Fatalf("progress %v not inside zone %+v", h.m.Progress(), z)
	}

	h.m.Activate()
	if h.m.Status() != StatusSuccess {
		t.Errorf("status after second activation inside zone = %v, want success", h.m.Status())
	}
	if h.confirms != 1 {
		t.Errorf("confirms = %d, want 1", h.confirms)
	}
}

func TestHardNudgeToFullNeverCompletes(t *testing.T) {
	h := newHarness(t, Hard, time.Second)

	h.m.Activate()
	h.m.Tick(h.clock.now())
	for i := 0; i < 25; i++ {
		h.m.Nudge(1)
	}

	if h.m.Progress() != 1 {
		t.Fatalf("progress = %v, want 1", h.m.Progress())
	}
	if h.m.Status() != StatusDragging {
		t.Errorf("status = %v, want dragging (hard completes only on release)", h.m.Status())
	}
	if h.confirms != 0 {
		t.Errorf("confirms = %d, want 0", h.confirms)
	}
}

func TestProgressStaysWithinBounds(t *testing.T) {
	h := newHarness(t, Medium, time.Hour)

	h.press(0)
	inputs := []float64{-1000, 50, 1e9, 0, 100.0001, -0.5, 99.999}
	for _, x := range inputs {
		h.move(x)
		p := h.m.Progress()
		if p < 0 || p > 1 {
			t.Fatalf("progress %v out of [0, 1] after move to %v", p, x)
		}
	}
	for i := 0; i < 50; i++ {
		h.m.Nudge(-1)
	}
	if p := h.m.Progress(); p < 0 || p > 1 {
		t.Fatalf("progress %v out of [0, 1] after nudges", p)
	}
}

func TestSnapshotNotifications(t *testing.T) {
	var snaps []Snapshot
	clock := &fakeClock{t: time.Unix(0, 0)}
	m := NewMachine(Config{
		Difficulty: Easy,
		OnChange:   func(s Snapshot) { snaps = append(snaps, s) },
		Rand:       rand.New(rand.NewSource(1)),
		Now:        clock.now,
	})

	m.Begin(0, 0, 100, 0)
	m.Update(50, 0)
	m.Update(100, 0)

	if len(snaps) != 3 {
		t.Fatalf("got %d snapshots, want 3", len(snaps))
	}
	if snaps[0].Status != StatusDragging || snaps[0].Progress != 0 {
		t.Errorf("first snapshot = %+v, want dragging at 0", snaps[0])
	}
	if snaps[1].Progress != 0.5 {
		t.Errorf("second snapshot progress = %v, want 0.5", snaps[1].Progress)
	}
	if snaps[2].Status != StatusSuccess {
		t.Errorf("final snapshot status = %v, want success", snaps[2].Status)
	}
}

func TestDefaultsApplied(t *testing.T) {
	m := NewMachine(Config{Difficulty: Medium})
	if m.TimeLimit() != DefaultTimeLimit {
		t.Errorf("time limit = %v, want %v", m.TimeLimit(), DefaultTimeLimit)
	}
	if m.ResetDelay() != DefaultResetDelay {
		t.Errorf("reset delay = %v, want %v", m.ResetDelay(), DefaultResetDelay)
	}
}
