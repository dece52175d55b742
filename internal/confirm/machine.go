package confirm

import (
	"math/rand"
	"time"
)

// Default durations, applied when Config leaves them zero.
const (
	DefaultTimeLimit  = 1000 * time.Millisecond
	DefaultResetDelay = 1500 * time.Millisecond
)

// Config is supplied by the embedding layer at construction and never
// mutated by the machine.
type Config struct {
	Difficulty Difficulty
	// TimeLimit is the countdown for timed difficulties.
	TimeLimit time.Duration
	// ResetDelay is how long the success state is held before the
	// automatic return to idle.
	ResetDelay time.Duration
	// OnConfirm fires exactly once per success, synchronously, before the
	// auto-reset is scheduled. Fire-and-forget: the machine never inspects
	// its outcome.
	OnConfirm func()
	// OnChange receives a snapshot after every state mutation.
	OnChange func(Snapshot)
	// Rand seeds zone generation. Defaults to a time-seeded source;
	// tests inject a fixed seed to pin zones.
	Rand *rand.Rand
	// Now defaults to time.Now; tests inject a fake clock.
	Now func() time.Time
}

// Machine owns session status and applies the difficulty's completion
// policy over the tracker, timer and zone. All methods must be called
// from a single goroutine; the machine does no locking and spawns
// nothing.
type Machine struct {
	cfg     Config
	status  Status
	tracker Tracker
	timer   *Timer
	zone    Zone
	rand    *rand.Rand
	now     func() time.Time
}

// NewMachine builds a machine in the idle state. For the hard difficulty
// the first target zone is generated immediately so it can be rendered
// before any gesture starts.
func NewMachine(cfg Config) *Machine {
	if cfg.TimeLimit <= 0 {
		cfg.TimeLimit = DefaultTimeLimit
	}
	if cfg.ResetDelay <= 0 {
		cfg.ResetDelay = DefaultResetDelay
	}

	m := &Machine{cfg: cfg, rand: cfg.Rand, now: cfg.Now}
	if m.rand == nil {
		m.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.timer = NewTimer(m.handleTimeout)
	if cfg.Difficulty == Hard {
		m.zone = NewZone(m.rand)
	}
	return m
}

// Begin starts a session from a pointer press. It returns true when a new
// session actually started; a press while already dragging or in the
// success hold is a silent no-op. The caller starts scheduling timer
// ticks when Begin returns true and the difficulty is timed.
func (m *Machine) Begin(pointerX, trackLeft, trackWidth, handleSize float64) bool {
	if m.status != StatusIdle {
		return false
	}
	m.tracker.Begin(pointerX, trackLeft, trackWidth, handleSize)
	m.startSession()
	return true
}

// Activate handles the keyboard activation key. From idle it starts a
// session exactly like a pointer press (geometry-free, progress moves via
// Nudge). While dragging it is treated exactly as a release, running the
// same completion guards. During the success hold it is ignored.
func (m *Machine) Activate() bool {
	switch m.status {
	case StatusIdle:
		m.startSession()
		return true
	case StatusDragging:
		m.Release()
	}
	return false
}

func (m *Machine) startSession() {
	m.status = StatusDragging
	if m.cfg.Difficulty.Timed() {
		m.timer.Start(m.now(), m.cfg.TimeLimit)
	}
	m.notify()
}

// Update feeds a pointer position into the live session. Ignored unless
// dragging. Easy and medium check completion here, on every movement: the
// user should not need to release to succeed.
func (m *Machine) Update(pointerX, trackLeft float64) {
	if m.status != StatusDragging {
		return
	}
	m.tracker.Update(pointerX, trackLeft)
	m.checkContinuous()
	m.notify()
}

// Nudge shifts progress from a directional key. Ignored unless dragging.
// Runs the same continuous completion check as pointer movement, which
// never completes hard sessions (those resolve only on release).
func (m *Machine) Nudge(direction int) {
	if m.status != StatusDragging {
		return
	}
	m.tracker.Nudge(float64(direction) * NudgeStep)
	m.checkContinuous()
	m.notify()
}

// checkContinuous applies the easy/medium completion policy after a
// progress update. Hard resolves only at release: the user may pass
// through the zone while still adjusting position.
func (m *Machine) checkContinuous() {
	if m.tracker.Progress() < 1 {
		return
	}
	switch m.cfg.Difficulty {
	case Easy:
		m.succeed()
	case Medium:
		if m.timer.Running() && m.timer.Remaining() > 0 {
			m.succeed()
		}
	}
}

// Release resolves the session at gesture end. Ignored unless dragging.
// Hard succeeds only when time remains and progress sits inside the
// target zone; every other release resets to idle.
func (m *Machine) Release() {
	if m.status != StatusDragging {
		return
	}
	if m.cfg.Difficulty == Hard &&
		m.timer.Running() && m.timer.Remaining() > 0 &&
		m.zone.Contains(m.tracker.Progress()) {
		m.succeed()
		return
	}
	m.resetToIdle()
}

// Tick drives the countdown. The embedding layer calls it from its
// scheduler while a timed session is dragging; the return value says
// whether another tick must be scheduled. A timeout forces a failure
// regardless of progress and resets to idle.
func (m *Machine) Tick(now time.Time) bool {
	if m.status != StatusDragging {
		return false
	}
	reschedule := m.timer.Tick(now)
	m.notify()
	return reschedule
}

// handleTimeout runs inside Timer.Tick when the countdown hits zero.
func (m *Machine) handleTimeout() {
	m.resetToIdle()
}

// AutoReset returns the machine to idle after the success hold. Called by
// the embedding layer when the reset delay elapses; ignored if the state
// already moved on (e.g. the widget was reconfigured).
func (m *Machine) AutoReset() {
	if m.status != StatusSuccess {
		return
	}
	m.resetToIdle()
}

// Reset forces the machine back to idle from any state without firing
// callbacks. Used on teardown or reconfiguration.
func (m *Machine) Reset() {
	m.resetToIdle()
}

func (m *Machine) succeed() {
	m.status = StatusSuccess
	m.timer.Cancel()
	if m.cfg.OnConfirm != nil {
		m.cfg.OnConfirm()
	}
	m.notify()
}

func (m *Machine) resetToIdle() {
	m.status = StatusIdle
	m.tracker.Reset()
	m.timer.Cancel()
	if m.cfg.Difficulty == Hard {
		m.zone = NewZone(m.rand)
	}
	m.notify()
}

func (m *Machine) notify() {
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.Snapshot())
	}
}

// Snapshot returns the current render-facing state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Status:    m.status,
		Progress:  m.tracker.Progress(),
		Remaining: m.timer.Remaining(),
		Zone:      m.zone,
	}
}

// Status returns the current session status.
func (m *Machine) Status() Status { return m.status }

// Progress returns the current normalized progress in [0, 1].
func (m *Machine) Progress() float64 { return m.tracker.Progress() }

// Remaining returns the countdown left; valid only while dragging on a
// timed difficulty.
func (m *Machine) Remaining() time.Duration { return m.timer.Remaining() }

// Zone returns the current target zone; meaningful only for hard.
func (m *Machine) Zone() Zone { return m.zone }

// Difficulty returns the configured difficulty.
func (m *Machine) Difficulty() Difficulty { return m.cfg.Difficulty }

// ResetDelay returns the configured success hold duration.
func (m *Machine) ResetDelay() time.Duration { return m.cfg.ResetDelay }

// TimeLimit returns the configured countdown duration.
func (m *Machine) TimeLimit() time.Duration { return m.cfg.TimeLimit }
