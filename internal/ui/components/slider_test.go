package components

import (
	"math/rand"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sohandillikar/statue-confirmation-component/internal/confirm"
)

type sliderClock struct {
	t time.Time
}

func (c *sliderClock) now() time.Time { return c.t }

func (c *sliderClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSlider(d confirm.Difficulty, clock *sliderClock) Slider {
	return NewSlider(confirm.Config{
		Difficulty: d,
		Rand:       rand.New(rand.NewSource(7)),
		Now:        clock.now,
	}, 50).WithPosition(10, 5)
}

func clickAt(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func motionAt(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func releaseAt(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}
}

// drain runs a command and any batched subcommands, returning the
// produced messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findResolved(msgs []tea.Msg) (ResolvedMsg, bool) {
	for _, m := range msgs {
		if r, ok := m.(ResolvedMsg); ok {
			return r, true
		}
	}
	return ResolvedMsg{}, false
}

func TestSliderClickOnTrackStartsDragging(t *testing.T) {
	clock := &sliderClock{t: time.Unix(0, 0)}
	s := newTestSlider(confirm.Easy, clock)

	s, _ = s.Update(clickAt(10, 5))
	if got := s.Snapshot().Status; got != confirm.StatusDragging {
		t.Errorf("status after click = %v, want %v", got, confirm.StatusDragging)
	}
}

func TestSliderClickOffTrackIgnored(t *testing.T) {
	clock := &sliderClock{t: time.Unix(0, 0)}
	s := newTestSlider(confirm.Easy, clock)

	s, _ = s.Update(clickAt(10, 6)) // wrong row
	if got := s.Snapshot().Status; got != confirm.StatusIdle {
		t.Errorf("status after off-track click = %v, want %v", got, confirm.StatusIdle)
	}

	s, _ = s.Update(clickAt(60, 5)) // past the right edge
	if got := s.Snapshot().Status; got != confirm.StatusIdle {
		t.Errorf("status after off-track click = %v, want %v", got, confirm.StatusIdle)
	}
}

func TestSliderEasyDragToEndResolvesSuccess(t *testing.T) {
	clock := &sliderClock{t: time.Unix(0, 0)}
	s := newTestSlider(confirm.Easy, clock)

	s, _ = s.Update(clickAt(10, 5))
	s, cmd := s.Update(motionAt(70, 5))

	if got := s.Snapshot().Status; got != confirm.StatusSuccess {
		t.Fatalf("status = %v, want %v", got, confirm.StatusSuccess)
	}
	resolved, ok := findResolved(drain(cmd))
	if !ok {
		t.Fatal("expected a ResolvedMsg")
	}
	if resolved.Outcome != OutcomeSuccess {
		t.Errorf("outcome = %v, want %v", resolved.Outcome, OutcomeSuccess)
	}
	if resolved.Progress != 1 {
		t.Errorf("progress = %v, want 1", resolved.Progress)
	}
}

func TestSliderEarlyReleaseResolvesMiss(t *testing.T) {
	clock := &sliderClock{t: time.Unix(0, 0)}
	s := newTestSlider(confirm.Easy, clock)

	s, _ = s.Update(clickAt(10, 5))
	s, _ = s.Update(motionAt(30, 5))
	s, cmd := s.Update(releaseAt(30, 5))

	if got := s.Snapshot().Status; got != confirm.StatusIdle {
		t.Errorf("status = %v, want %v", got, confirm.StatusIdle)
	}
	resolved, ok := findResolved(drain(cmd))
	if !ok {
		t.Fatal("expected a ResolvedMsg")
	}
	if resolved.Outcome != OutcomeMiss {
		t.Errorf("outcome = %v, want %v", resolved.Outcome, OutcomeMiss)
	}
	if resolved.Progress <= 0 || resolved.Progress >= 1 {
		t.Errorf("progress = %v, want partial", resolved.Progress)
	}
}

func TestSliderReleaseWhenIdleIgnored(t *testing.T) {
	clock := &sliderClock{t: time.Unix(0, 0)}
	s := newTestSlider(confirm.Easy, clock)

	s, cmd := s.Update(releaseAt(30, 5))
	if cmd != nil {
		t.Error("expected no command for a release without a session")
	}
	if got := s.Snapshot().Status; got != confirm.StatusIdle {
		t.Errorf("status = %v, want %v", got, confirm.StatusIdle)
	}
}

func TestSliderKeyboardActivateAndNudge(t *testing.T) {
	clock := &sliderClock{t: time.Unix(0, 0)}
	s := newTestSlider(confirm.Easy, clock)

	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := s.Snapshot().Status; got != confirm.StatusDragging {
		t.Fatalf("status after enter = %v, want %v", got, confirm.StatusDragging)
	}

	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if got := s.Snapshot().Progress; got != confirm.NudgeStep {
		t.Errorf("progress after right = %v, want %v", got, confirm.NudgeStep)
	}

	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if got := s.Snapshot().Progress; got != 0 {
		t.Errorf("progress after left = %v, want 0", got)
	}
}

func TestSliderSecondActivationReleases(t *testing.T) {
	clock := &sliderClock{t: time.Unix(0, 0)}
	s := newTestSlider(confirm.Easy, clock)

	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	resolved, ok := findResolved(drain(cmd))
	if !ok {
		t.Fatal("expected a ResolvedMsg from the second activation")
	}
	if resolved.Outcome != OutcomeMiss {
		t.Errorf("outcome = %v, want %v", resolved.Outcome, OutcomeMiss)
	}
}

func TestSliderTimeoutResolvesTimeout(t *testing.T) {
	clock := &sliderClock{t: time.Unix(0, 0)}
	s := newTestSlider(confirm.Medium, clock)

	s, cmd := s.Update(clickAt(10, 5))
	if cmd == nil {
		t.Fatal("expected a tick command for a timed session")
	}
	tick := drain(cmd)[0]

	clock.advance(confirm.DefaultTimeLimit + time.Millisecond)
	s, cmd = s.Update(tick)

	if got := s.Snapshot().Status; got != confirm.StatusIdle {
		t.Errorf("status after expiry = %v, want %v", got, confirm.StatusIdle)
	}
	resolved, ok := findResolved(drain(cmd))
	if !ok {
		t.Fatal("expected a ResolvedMsg")
	}
	if resolved.Outcome != OutcomeTimeout {
		t.Errorf("outcome = %v, want %v", resolved.Outcome, OutcomeTimeout)
	}
}

func TestSliderStaleTickIgnored(t *testing.T) {
	clock := &sliderClock{t: time.Unix(0, 0)}
	s := newTestSlider(confirm.Medium, clock)

	s, cmd := s.Update(clickAt(10, 5))
	staleTick := drain(cmd)[0]

	// End the session and start a new one. The old tick now carries a
	// superseded generation.
	s, _ = s.Update(releaseAt(20, 5))
	s, _ = s.Update(clickAt(10, 5))

	clock.advance(confirm.DefaultTimeLimit * 2)
	s, cmd = s.Update(staleTick)
	if cmd != nil {
		t.Error("stale tick produced a command")
	}
	if got := s.Snapshot().Status; got != confirm.StatusDragging {
		t.Errorf("status = %v, want %v (stale tick must not expire new session)", got, confirm.StatusDragging)
	}
}

func TestSliderInputDuringSuccessHoldStaysInert(t *testing.T) {
	clock := &sliderClock{t: time.Unix(0, 0)}
	s := newTestSlider(confirm.Easy, clock)

	s, _ = s.Update(clickAt(10, 5))
	s, cmd := s.Update(motionAt(70, 5))

	var reset tea.Msg
	for _, m := range drain(cmd) {
		if _, ok := m.(autoResetMsg); ok {
			reset = m
		}
	}
	if reset == nil {
		t.Fatal("expected an auto-reset message after success")
	}

	// Pointer noise and nudges during the hold must not resolve a second
	// time or push the scheduled reset out.
	s, cmd = s.Update(motionAt(40, 5))
	if msgs := drain(cmd); len(msgs) != 0 {
		t.Errorf("motion during the success hold produced %d messages, want 0", len(msgs))
	}
	s, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if msgs := drain(cmd); len(msgs) != 0 {
		t.Errorf("nudge during the success hold produced %d messages, want 0", len(msgs))
	}
	if got := s.Snapshot().Status; got != confirm.StatusSuccess {
		t.Fatalf("status during hold = %v, want %v", got, confirm.StatusSuccess)
	}

	// The originally scheduled reset still lands.
	s, _ = s.Update(reset)
	if got := s.Snapshot().Status; got != confirm.StatusIdle {
		t.Errorf("status after scheduled reset = %v, want %v", got, confirm.StatusIdle)
	}
}

func TestSliderAutoResetAfterSuccess(t *testing.T) {
	clock := &sliderClock{t: time.Unix(0, 0)}
	s := newTestSlider(confirm.Easy, clock)

	s, _ = s.Update(clickAt(10, 5))
	s, cmd := s.Update(motionAt(70, 5))

	var reset tea.Msg
	for _, m := range drain(cmd) {
		if _, ok := m.(autoResetMsg); ok {
			reset = m
		}
	}
	if reset == nil {
		t.Fatal("expected an auto-reset message after success")
	}

	s, _ = s.Update(reset)
	if got := s.Snapshot().Status; got != confirm.StatusIdle {
		t.Errorf("status after auto reset = %v, want %v", got, confirm.StatusIdle)
	}
	if got := s.Snapshot().Progress; got != 0 {
		t.Errorf("progress after auto reset = %v, want 0", got)
	}
}

func TestSliderHardReleaseInZoneSucceeds(t *testing.T) {
	clock := &sliderClock{t: time.Unix(0, 0)}
	s := newTestSlider(confirm.Hard, clock)

	zone := s.Snapshot().Zone
	mid := (zone.Start + zone.End) / 2

	s, _ = s.Update(clickAt(10, 5))
	// Track spans x 10..60, travel is width minus handle.
	target := 10 + int(mid*float64(50-HandleCells)) + 1
	s, _ = s.Update(motionAt(target, 5))

	snap := s.Snapshot()
	if !snap.Zone.Contains(snap.Progress) {
		t.Fatalf("progress %v not inside zone [%v, %v]", snap.Progress, zone.Start, zone.End)
	}

	s, cmd := s.Update(releaseAt(target, 5))
	resolved, ok := findResolved(drain(cmd))
	if !ok {
		t.Fatal("expected a ResolvedMsg")
	}
	if resolved.Outcome != OutcomeSuccess {
		t.Errorf("outcome = %v, want %v", resolved.Outcome, OutcomeSuccess)
	}
	if got := s.Snapshot().Status; got != confirm.StatusSuccess {
		t.Errorf("status = %v, want %v", got, confirm.StatusSuccess)
	}
}

func TestSliderIndependentInstances(t *testing.T) {
	clock := &sliderClock{t: time.Unix(0, 0)}
	a := newTestSlider(confirm.Medium, clock)
	b := newTestSlider(confirm.Medium, clock)

	a, cmd := a.Update(clickAt(10, 5))
	tick := drain(cmd)[0]

	// A tick addressed to slider a must not touch slider b.
	clock.advance(confirm.DefaultTimeLimit * 2)
	b, bCmd := b.Update(tick)
	if bCmd != nil {
		t.Error("foreign tick produced a command")
	}
	if got := b.Snapshot().Status; got != confirm.StatusIdle {
		t.Errorf("slider b status = %v, want %v", got, confirm.StatusIdle)
	}
	if got := a.Snapshot().Status; got != confirm.StatusDragging {
		t.Errorf("slider a status = %v, want %v", got, confirm.StatusDragging)
	}
}
