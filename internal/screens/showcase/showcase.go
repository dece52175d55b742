package showcase

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/sohandillikar/statue-confirmation-component/internal/confirm"
	"github.com/sohandillikar/statue-confirmation-component/internal/screen"
	"github.com/sohandillikar/statue-confirmation-component/internal/store"
	"github.com/sohandillikar/statue-confirmation-component/internal/ui/components"
	"github.com/sohandillikar/statue-confirmation-component/internal/ui/layout"
	"github.com/sohandillikar/statue-confirmation-component/internal/ui/theme"
)

const (
	trackWidth = 50

	// trackRow is the track's row inside the content area. The view
	// renders the track on exactly this line so mouse coordinates map
	// back onto it.
	trackRow = 6
)

type attemptSavedMsg struct {
	err error
}

// ShowcaseScreen hosts a slide-to-confirm control at one difficulty and
// records every resolved attempt.
type ShowcaseScreen struct {
	slider     components.Slider
	eventRepo  store.EventRepo
	snapRepo   store.SnapshotRepo
	difficulty confirm.Difficulty
	timeLimit  time.Duration

	// sessionID identifies the current gesture session; a fresh one is
	// minted every time a drag starts.
	sessionID string

	width  int
	height int

	successes int
	misses    int
	timeouts  int

	lastOutcome *components.ResolvedMsg
	saveErr     string
}

var _ screen.Screen = (*ShowcaseScreen)(nil)
var _ screen.KeyHintProvider = (*ShowcaseScreen)(nil)
var _ screen.Leaver = (*ShowcaseScreen)(nil)

// New creates a showcase screen for the given difficulty, applying the
// saved preferences when present.
func New(difficulty confirm.Difficulty, prefs *store.Preferences, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *ShowcaseScreen {
	cfg := confirm.Config{Difficulty: difficulty}
	if prefs != nil {
		if prefs.TimeLimitMs > 0 {
			cfg.TimeLimit = time.Duration(prefs.TimeLimitMs) * time.Millisecond
		}
		if prefs.ResetDelayMs > 0 {
			cfg.ResetDelay = time.Duration(prefs.ResetDelayMs) * time.Millisecond
		}
	}

	s := &ShowcaseScreen{
		slider:     components.NewSlider(cfg, trackWidth),
		eventRepo:  eventRepo,
		snapRepo:   snapRepo,
		difficulty: difficulty,
		sessionID:  uuid.NewString(),
	}
	s.timeLimit = s.slider.Machine().TimeLimit()
	return s
}

func (s *ShowcaseScreen) Init() tea.Cmd {
	return nil
}

func (s *ShowcaseScreen) Title() string {
	return "Confirm (" + s.difficulty.String() + ")"
}

func (s *ShowcaseScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Drag/Enter", Description: "Slide"},
		{Key: "←→", Description: "Nudge"},
	}
	if s.difficulty == confirm.Hard {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "New zone"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *ShowcaseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		x := (s.width - trackWidth) / 2
		if x < 0 {
			x = 0
		}
		s.slider = s.slider.WithPosition(x, layout.HeaderHeight+trackRow)
		return s, nil

	case components.ResolvedMsg:
		switch msg.Outcome {
		case components.OutcomeSuccess:
			s.successes++
		case components.OutcomeMiss:
			s.misses++
		case components.OutcomeTimeout:
			s.timeouts++
		}
		s.lastOutcome = &msg
		return s, s.saveAttempt(msg)

	case attemptSavedMsg:
		if msg.err != nil {
			s.saveErr = msg.err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "r" && s.difficulty == confirm.Hard {
			s.slider.Machine().Reset()
			s.lastOutcome = nil
			return s, nil
		}
	}

	before := s.slider.Snapshot().Status
	var cmd tea.Cmd
	s.slider, cmd = s.slider.Update(msg)
	if before != confirm.StatusDragging && s.slider.Snapshot().Status == confirm.StatusDragging {
		// A new gesture session started: clear the previous verdict and
		// mint the id its attempt will be recorded under.
		s.lastOutcome = nil
		s.sessionID = uuid.NewString()
	}
	return s, cmd
}

// Leave records an aborted attempt when the screen is popped while a
// drag is still live. The slider never resolves an abandoned session
// itself, so this is the only place the abort outcome is written.
func (s *ShowcaseScreen) Leave() tea.Cmd {
	snap := s.slider.Snapshot()
	if snap.Status != confirm.StatusDragging || s.eventRepo == nil {
		return nil
	}

	data := store.AttemptEventData{
		SessionID:  s.sessionID,
		Difficulty: s.difficulty.String(),
		Outcome:    store.OutcomeAbort,
		Progress:   snap.Progress,
	}
	if s.difficulty == confirm.Hard {
		data.ZoneStart = snap.Zone.Start
		data.ZoneEnd = snap.Zone.End
	}
	if s.difficulty.Timed() {
		data.TimeLimitMs = int(s.timeLimit.Milliseconds())
		data.ElapsedMs = int((s.timeLimit - snap.Remaining).Milliseconds())
	}

	repo := s.eventRepo
	return func() tea.Msg {
		return attemptSavedMsg{err: repo.AppendAttempt(context.Background(), data)}
	}
}

// saveAttempt persists a resolved attempt and, on success, rolls the
// confirm total forward in the preferences snapshot.
func (s *ShowcaseScreen) saveAttempt(r components.ResolvedMsg) tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}

	data := store.AttemptEventData{
		SessionID:  s.sessionID,
		Difficulty: s.difficulty.String(),
		Outcome:    r.Outcome.String(),
		Progress:   r.Progress,
		ElapsedMs:  int(r.Elapsed.Milliseconds()),
	}
	if s.difficulty == confirm.Hard {
		data.ZoneStart = r.Zone.Start
		data.ZoneEnd = r.Zone.End
	}
	if s.difficulty.Timed() {
		data.TimeLimitMs = int(s.timeLimit.Milliseconds())
	}

	snapRepo := s.snapRepo
	eventRepo := s.eventRepo
	success := r.Outcome == components.OutcomeSuccess

	return func() tea.Msg {
		ctx := context.Background()
		if err := eventRepo.AppendAttempt(ctx, data); err != nil {
			return attemptSavedMsg{err: err}
		}
		if success && snapRepo != nil {
			if err := bumpTotalConfirms(ctx, snapRepo); err != nil {
				return attemptSavedMsg{err: err}
			}
		}
		return attemptSavedMsg{}
	}
}

func bumpTotalConfirms(ctx context.Context, repo store.SnapshotRepo) error {
	latest, err := repo.Latest(ctx)
	if err != nil {
		return err
	}

	next := &store.Snapshot{
		Sequence:  1,
		Timestamp: time.Now().UTC(),
		Data:      store.SnapshotData{Version: store.SnapshotVersion},
	}
	if latest != nil {
		next.Sequence = latest.Sequence + 1
		next.Data = latest.Data
	}
	next.Data.TotalConfirms++

	if err := repo.Save(ctx, next); err != nil {
		return err
	}
	return repo.Prune(ctx, store.SnapshotKeep)
}

func (s *ShowcaseScreen) View(width, height int) string {
	snap := s.slider.Snapshot()

	trackX := (width - trackWidth) / 2
	if trackX < 0 {
		trackX = 0
	}
	pad := strings.Repeat(" ", trackX)

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	lines := make([]string, trackRow+7)

	lines[1] = center(theme.Title.Render("Slide to confirm"))
	lines[3] = center(theme.Subtitle.Render(instruction(s.difficulty)))
	if s.difficulty == confirm.Hard {
		lines[5] = center(theme.Hint.Render("release inside the highlighted zone"))
	}
	lines[trackRow] = pad + s.slider.View()

	if s.difficulty.Timed() && snap.Status == confirm.StatusDragging {
		lines[trackRow+2] = pad + components.NewTimeBar(snap.Remaining, s.timeLimit, trackWidth).View()
	}

	lines[trackRow+4] = center(s.statusLine(snap))
	lines[trackRow+6] = center(theme.Hint.Render(fmt.Sprintf(
		"%d confirmed   %d missed   %d timed out",
		s.successes, s.misses, s.timeouts)))

	if s.saveErr != "" {
		lines = append(lines, center(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("save failed: "+s.saveErr)))
	}

	return strings.Join(lines, "\n")
}

func (s *ShowcaseScreen) statusLine(snap confirm.Snapshot) string {
	switch snap.Status {
	case confirm.StatusSuccess:
		return theme.Confirmed.Render("✔ Confirmed")
	case confirm.StatusDragging:
		return theme.Body.Render(fmt.Sprintf("%.0f%%", snap.Progress*100))
	}
	if s.lastOutcome != nil {
		switch s.lastOutcome.Outcome {
		case components.OutcomeMiss:
			return theme.Failed.Render("✗ Released too early")
		case components.OutcomeTimeout:
			return theme.Failed.Render("✗ Out of time")
		}
	}
	return theme.Hint.Render("ready")
}

func instruction(d confirm.Difficulty) string {
	switch d {
	case confirm.Easy:
		return "Drag the handle all the way to the right"
	case confirm.Medium:
		return "Drag the handle to the end before the timer runs out"
	default:
		return "Drop the handle inside the target zone before the timer runs out"
	}
}
