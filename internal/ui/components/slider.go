package components

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sohandillikar/statue-confirmation-component/internal/confirm"
	"github.com/sohandillikar/statue-confirmation-component/internal/ui/theme"
)

const (
	// HandleCells is the drag handle width in terminal cells.
	HandleCells = 2

	// tickInterval drives the countdown while a timed session is live.
	tickInterval = 50 * time.Millisecond
)

// Outcome of a resolved slider session.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeMiss
	OutcomeTimeout
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeMiss:
		return "miss"
	default:
		return "timeout"
	}
}

// ResolvedMsg is emitted when a slider session resolves, so the hosting
// screen can record the attempt.
type ResolvedMsg struct {
	SliderID  int
	Outcome   Outcome
	Progress  float64
	Zone      confirm.Zone
	Elapsed   time.Duration
	Remaining time.Duration
}

// timerTickMsg drives the countdown. It carries the slider id and the
// session generation so a tick scheduled for a superseded session is
// inert instead of mutating a newer one.
type timerTickMsg struct {
	sliderID int
	gen      int
}

// autoResetMsg returns the slider to idle after the success hold.
type autoResetMsg struct {
	sliderID int
	gen      int
}

var nextSliderID int

// Slider is the slide-to-confirm control: a track, a drag handle, and
// (per difficulty) a countdown and a target zone. It translates mouse
// and keyboard input into calls on the confirmation state machine and
// owns the tick scheduling the machine's cooperative timer needs.
type Slider struct {
	machine *confirm.Machine
	id      int
	gen     int
	started time.Time
	now     func() time.Time

	// Track geometry in screen cells, set by the hosting screen so mouse
	// coordinates can be mapped onto the track.
	x, y  int
	width int
}

// NewSlider creates a slider around a fresh machine built from cfg.
func NewSlider(cfg confirm.Config, width int) Slider {
	nextSliderID++
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return Slider{
		machine: confirm.NewMachine(cfg),
		id:      nextSliderID,
		now:     now,
		width:   width,
	}
}

// WithPosition places the track's left edge at screen cell (x, y).
func (s Slider) WithPosition(x, y int) Slider {
	s.x = x
	s.y = y
	return s
}

// Snapshot exposes the machine state for the hosting screen's labels.
func (s Slider) Snapshot() confirm.Snapshot {
	return s.machine.Snapshot()
}

// Machine returns the underlying state machine (used by tests and for
// teardown resets).
func (s Slider) Machine() *confirm.Machine {
	return s.machine
}

// Width returns the track width in cells.
func (s Slider) Width() int {
	return s.width
}

func (s Slider) Init() tea.Cmd {
	return nil
}

func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button != tea.MouseLeft || !s.hit(m.X, m.Y) {
			return s, nil
		}
		if !s.machine.Begin(float64(m.X), float64(s.x), float64(s.width), HandleCells) {
			return s, nil
		}
		return s.sessionStarted()

	case tea.MouseMotionMsg:
		m := msg.Mouse()
		before := s.machine.Status()
		s.machine.Update(float64(m.X), float64(s.x))
		return s.resolveAfterProgress(before)

	case tea.MouseReleaseMsg:
		return s.release()

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "space":
			if s.machine.Status() == confirm.StatusDragging {
				// Second activation runs the release guards.
				return s.release()
			}
			if s.machine.Activate() {
				return s.sessionStarted()
			}
			return s, nil
		case "left", "h":
			before := s.machine.Status()
			s.machine.Nudge(-1)
			return s.resolveAfterProgress(before)
		case "right", "l":
			before := s.machine.Status()
			s.machine.Nudge(1)
			return s.resolveAfterProgress(before)
		}

	case timerTickMsg:
		if msg.sliderID != s.id || msg.gen != s.gen {
			return s, nil // stale tick from a superseded session
		}
		before := s.machine.Snapshot()
		if s.machine.Tick(s.now()) {
			return s, s.tickCmd()
		}
		if s.machine.Status() == confirm.StatusIdle {
			// The countdown expired and forced a failure.
			s.gen++
			return s, s.resolvedCmd(OutcomeTimeout, before)
		}
		return s, nil

	case autoResetMsg:
		if msg.sliderID != s.id || msg.gen != s.gen {
			return s, nil
		}
		s.machine.AutoReset()
		s.gen++
		return s, nil
	}

	return s, nil
}

// sessionStarted bumps the generation and starts ticking when timed.
func (s Slider) sessionStarted() (Slider, tea.Cmd) {
	s.gen++
	s.started = s.now()
	if s.machine.Difficulty().Timed() {
		return s, s.tickCmd()
	}
	return s, nil
}

// release resolves a live session at gesture end. Ignored unless dragging.
func (s Slider) release() (Slider, tea.Cmd) {
	if s.machine.Status() != confirm.StatusDragging {
		return s, nil
	}
	before := s.machine.Snapshot()
	s.machine.Release()
	switch s.machine.Status() {
	case confirm.StatusSuccess:
		return s.succeeded(before)
	default:
		s.gen++
		return s, s.resolvedCmd(OutcomeMiss, before)
	}
}

// resolveAfterProgress handles the continuous completion path: easy and
// medium sessions may enter success on any progress update. Only the
// dragging-to-success transition resolves; input arriving during the
// success hold must stay inert or it would emit a second resolution and
// reschedule the auto-reset.
func (s Slider) resolveAfterProgress(before confirm.Status) (Slider, tea.Cmd) {
	if before != confirm.StatusDragging || s.machine.Status() != confirm.StatusSuccess {
		return s, nil
	}
	return s.succeeded(s.machine.Snapshot())
}

func (s Slider) succeeded(snap confirm.Snapshot) (Slider, tea.Cmd) {
	s.gen++
	gen := s.gen
	resetCmd := tea.Tick(s.machine.ResetDelay(), func(time.Time) tea.Msg {
		return autoResetMsg{sliderID: s.id, gen: gen}
	})
	return s, tea.Batch(s.resolvedCmd(OutcomeSuccess, snap), resetCmd)
}

func (s Slider) resolvedCmd(outcome Outcome, snap confirm.Snapshot) tea.Cmd {
	elapsed := s.now().Sub(s.started)
	id := s.id
	return func() tea.Msg {
		return ResolvedMsg{
			SliderID:  id,
			Outcome:   outcome,
			Progress:  snap.Progress,
			Zone:      snap.Zone,
			Elapsed:   elapsed,
			Remaining: snap.Remaining,
		}
	}
}

func (s Slider) tickCmd() tea.Cmd {
	id, gen := s.id, s.gen
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return timerTickMsg{sliderID: id, gen: gen}
	})
}

// hit reports whether the screen cell (x, y) lands on the track.
func (s Slider) hit(x, y int) bool {
	return y == s.y && x >= s.x && x < s.x+s.width
}

// View renders the track, the hard-mode zone, and the handle.
func (s Slider) View() string {
	snap := s.machine.Snapshot()

	travel := s.width - HandleCells
	if travel < 1 {
		travel = 1
	}
	handleAt := int(snap.Progress*float64(travel) + 0.5)

	zoneFrom, zoneTo := -1, -1
	if s.machine.Difficulty() == confirm.Hard {
		zoneFrom = int(snap.Zone.Start * float64(s.width))
		zoneTo = int(snap.Zone.End * float64(s.width))
	}

	var b strings.Builder
	for i := 0; i < s.width; i++ {
		switch {
		case i >= handleAt && i < handleAt+HandleCells:
			style := lipgloss.NewStyle().Foreground(theme.Handle)
			if snap.Status == confirm.StatusSuccess {
				style = style.Foreground(theme.Success)
			}
			b.WriteString(style.Render("█"))
		case i >= zoneFrom && i < zoneTo:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.ZoneMark).Render("▒"))
		case i < handleAt:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TrackFill).Render("━"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("─"))
		}
	}
	return b.String()
}
