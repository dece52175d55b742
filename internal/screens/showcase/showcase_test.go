package showcase

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sohandillikar/statue-confirmation-component/internal/confirm"
	"github.com/sohandillikar/statue-confirmation-component/internal/store"
	"github.com/sohandillikar/statue-confirmation-component/internal/ui/components"
	"github.com/sohandillikar/statue-confirmation-component/internal/ui/layout"
)

type fakeEventRepo struct {
	appended []store.AttemptEventData
}

func (f *fakeEventRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	f.appended = append(f.appended, data)
	return nil
}

func (f *fakeEventRepo) QueryAttempts(context.Context, store.QueryOpts) ([]store.AttemptRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) Stats(context.Context) ([]store.DifficultyStats, error) {
	return nil, nil
}

func (f *fakeEventRepo) PurgeAttempts(context.Context) (int, error) {
	return 0, nil
}

type fakeSnapshotRepo struct {
	saved []*store.Snapshot
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	f.saved = append(f.saved, snap)
	return nil
}

func (f *fakeSnapshotRepo) Latest(context.Context) (*store.Snapshot, error) {
	if len(f.saved) == 0 {
		return nil, nil
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeSnapshotRepo) Prune(context.Context, int) error {
	return nil
}

func resolve(t *testing.T, s *ShowcaseScreen, msg components.ResolvedMsg) {
	t.Helper()
	updated, cmd := s.Update(msg)
	if updated.(*ShowcaseScreen) != s {
		t.Fatal("expected in-place update")
	}
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	if _, ok := cmd().(attemptSavedMsg); !ok {
		t.Fatal("expected an attemptSavedMsg")
	}
}

func TestShowcaseRecordsSuccess(t *testing.T) {
	events := &fakeEventRepo{}
	snaps := &fakeSnapshotRepo{}
	s := New(confirm.Easy, nil, events, snaps)

	resolve(t, s, components.ResolvedMsg{
		Outcome:  components.OutcomeSuccess,
		Progress: 1,
		Elapsed:  700 * time.Millisecond,
	})

	if len(events.appended) != 1 {
		t.Fatalf("appended %d attempts, want 1", len(events.appended))
	}
	got := events.appended[0]
	if got.Difficulty != "easy" || got.Outcome != store.OutcomeSuccess {
		t.Errorf("recorded %s/%s, want easy/success", got.Difficulty, got.Outcome)
	}
	if got.ElapsedMs != 700 {
		t.Errorf("elapsed = %dms, want 700", got.ElapsedMs)
	}
	if got.SessionID == "" {
		t.Error("expected a session id")
	}
	if got.TimeLimitMs != 0 {
		t.Errorf("easy mode recorded a time limit of %dms", got.TimeLimitMs)
	}

	if len(snaps.saved) != 1 {
		t.Fatalf("saved %d snapshots, want 1", len(snaps.saved))
	}
	if snaps.saved[0].Data.TotalConfirms != 1 {
		t.Errorf("total confirms = %d, want 1", snaps.saved[0].Data.TotalConfirms)
	}

	if s.successes != 1 || s.misses != 0 || s.timeouts != 0 {
		t.Errorf("tallies = %d/%d/%d, want 1/0/0", s.successes, s.misses, s.timeouts)
	}
}

func TestShowcaseRecordsHardMiss(t *testing.T) {
	events := &fakeEventRepo{}
	s := New(confirm.Hard, nil, events, nil)

	resolve(t, s, components.ResolvedMsg{
		Outcome:  components.OutcomeMiss,
		Progress: 0.8,
		Zone:     confirm.Zone{Start: 0.4, End: 0.6},
		Elapsed:  300 * time.Millisecond,
	})

	got := events.appended[0]
	if got.Outcome != store.OutcomeMiss {
		t.Errorf("outcome = %s, want miss", got.Outcome)
	}
	if got.ZoneStart != 0.4 || got.ZoneEnd != 0.6 {
		t.Errorf("zone = [%v, %v], want [0.4, 0.6]", got.ZoneStart, got.ZoneEnd)
	}
	if got.TimeLimitMs != int(confirm.DefaultTimeLimit.Milliseconds()) {
		t.Errorf("time limit = %dms, want %d", got.TimeLimitMs, confirm.DefaultTimeLimit.Milliseconds())
	}
	if s.misses != 1 {
		t.Errorf("misses = %d, want 1", s.misses)
	}
}

func TestShowcaseTimeoutTally(t *testing.T) {
	events := &fakeEventRepo{}
	s := New(confirm.Medium, nil, events, nil)

	resolve(t, s, components.ResolvedMsg{
		Outcome:  components.OutcomeTimeout,
		Progress: 0.9,
		Elapsed:  confirm.DefaultTimeLimit,
	})

	if s.timeouts != 1 {
		t.Errorf("timeouts = %d, want 1", s.timeouts)
	}
	if events.appended[0].Outcome != store.OutcomeTimeout {
		t.Errorf("outcome = %s, want timeout", events.appended[0].Outcome)
	}
}

func TestShowcaseNilRepoSkipsSave(t *testing.T) {
	s := New(confirm.Easy, nil, nil, nil)

	_, cmd := s.Update(components.ResolvedMsg{Outcome: components.OutcomeSuccess, Progress: 1})
	if cmd != nil {
		t.Error("expected no save command without a repo")
	}
	if s.successes != 1 {
		t.Errorf("successes = %d, want 1", s.successes)
	}
}

func TestShowcasePrefsOverrideTimeLimit(t *testing.T) {
	prefs := &store.Preferences{TimeLimitMs: 800, ResetDelayMs: 500}
	s := New(confirm.Medium, prefs, nil, nil)

	if got := s.slider.Machine().TimeLimit(); got != 800*time.Millisecond {
		t.Errorf("time limit = %v, want 800ms", got)
	}
	if got := s.slider.Machine().ResetDelay(); got != 500*time.Millisecond {
		t.Errorf("reset delay = %v, want 500ms", got)
	}
}

func TestShowcaseMintsSessionIDPerDrag(t *testing.T) {
	events := &fakeEventRepo{}
	s := New(confirm.Easy, nil, events, nil)
	s.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	trackY := layout.HeaderHeight + trackRow

	runSession := func() {
		t.Helper()
		s.Update(tea.MouseClickMsg{X: 25, Y: trackY, Button: tea.MouseLeft})
		if got := s.slider.Snapshot().Status; got != confirm.StatusDragging {
			t.Fatalf("status = %v, want %v", got, confirm.StatusDragging)
		}
		s.Update(tea.MouseMotionMsg{X: 40, Y: trackY, Button: tea.MouseLeft})
		_, cmd := s.Update(tea.MouseReleaseMsg{X: 40, Y: trackY, Button: tea.MouseLeft})
		if cmd == nil {
			t.Fatal("expected a resolution command")
		}
		resolved, ok := cmd().(components.ResolvedMsg)
		if !ok {
			t.Fatal("expected a ResolvedMsg")
		}
		_, save := s.Update(resolved)
		if save == nil {
			t.Fatal("expected a save command")
		}
		save()
	}

	runSession()
	runSession()

	if len(events.appended) != 2 {
		t.Fatalf("appended %d attempts, want 2", len(events.appended))
	}
	a, b := events.appended[0], events.appended[1]
	if a.SessionID == "" || b.SessionID == "" {
		t.Fatal("expected session ids on both attempts")
	}
	if a.SessionID == b.SessionID {
		t.Errorf("both attempts share session id %s", a.SessionID)
	}
}

func TestShowcaseLeaveWhileDraggingRecordsAbort(t *testing.T) {
	events := &fakeEventRepo{}
	s := New(confirm.Medium, nil, events, nil)
	s.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	trackY := layout.HeaderHeight + trackRow

	s.Update(tea.MouseClickMsg{X: 25, Y: trackY, Button: tea.MouseLeft})
	s.Update(tea.MouseMotionMsg{X: 40, Y: trackY, Button: tea.MouseLeft})

	cmd := s.Leave()
	if cmd == nil {
		t.Fatal("expected an abort save command")
	}
	if _, ok := cmd().(attemptSavedMsg); !ok {
		t.Fatal("expected an attemptSavedMsg")
	}

	if len(events.appended) != 1 {
		t.Fatalf("appended %d attempts, want 1", len(events.appended))
	}
	got := events.appended[0]
	if got.Outcome != store.OutcomeAbort {
		t.Errorf("outcome = %s, want %s", got.Outcome, store.OutcomeAbort)
	}
	if got.Progress <= 0 || got.Progress >= 1 {
		t.Errorf("progress = %v, want partial", got.Progress)
	}
	if got.SessionID == "" {
		t.Error("expected a session id")
	}
	if got.TimeLimitMs != int(confirm.DefaultTimeLimit.Milliseconds()) {
		t.Errorf("time limit = %dms, want %d", got.TimeLimitMs, confirm.DefaultTimeLimit.Milliseconds())
	}
}

func TestShowcaseLeaveWhenIdleRecordsNothing(t *testing.T) {
	events := &fakeEventRepo{}
	s := New(confirm.Easy, nil, events, nil)

	if cmd := s.Leave(); cmd != nil {
		t.Error("expected no command without a live session")
	}
	if len(events.appended) != 0 {
		t.Errorf("appended %d attempts, want 0", len(events.appended))
	}
}

func TestShowcaseWindowSizePositionsTrack(t *testing.T) {
	s := New(confirm.Easy, nil, nil, nil)

	updated, _ := s.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	sc := updated.(*ShowcaseScreen)
	if sc.width != 100 || sc.height != 40 {
		t.Errorf("size = %dx%d, want 100x40", sc.width, sc.height)
	}
}
