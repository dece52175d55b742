package settings

import (
	"context"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sohandillikar/statue-confirmation-component/internal/confirm"
	"github.com/sohandillikar/statue-confirmation-component/internal/router"
	"github.com/sohandillikar/statue-confirmation-component/internal/screen"
	"github.com/sohandillikar/statue-confirmation-component/internal/store"
	"github.com/sohandillikar/statue-confirmation-component/internal/ui/components"
	"github.com/sohandillikar/statue-confirmation-component/internal/ui/layout"
	"github.com/sohandillikar/statue-confirmation-component/internal/ui/theme"
)

// Accepted ranges for the numeric preferences, in milliseconds.
const (
	minTimeLimit = 100
	maxTimeLimit = 60000

	minResetDelay = 0
	maxResetDelay = 10000
)

const (
	fieldTimeLimit = iota
	fieldResetDelay
	fieldCount
)

type prefsLoadedMsg struct {
	snap *store.Snapshot
	err  error
}

type prefsSavedMsg struct {
	err error
}

// SettingsScreen edits the stored widget preferences.
type SettingsScreen struct {
	snapRepo store.SnapshotRepo

	inputs [fieldCount]components.TextInput
	focus  int

	latest *store.Snapshot
	loaded bool
	status string
	isErr  bool
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a new SettingsScreen.
func New(snapRepo store.SnapshotRepo) *SettingsScreen {
	s := &SettingsScreen{snapRepo: snapRepo}
	s.inputs[fieldTimeLimit] = components.NewTextInput("1000", true, 5)
	s.inputs[fieldResetDelay] = components.NewTextInput("1500", true, 5)
	s.inputs[fieldResetDelay].Model.Blur()
	return s
}

func (s *SettingsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		snap, err := s.snapRepo.Latest(context.Background())
		return prefsLoadedMsg{snap: snap, err: err}
	}
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case prefsLoadedMsg:
		s.loaded = true
		if msg.err != nil {
			s.status = "load failed: " + msg.err.Error()
			s.isErr = true
			return s, nil
		}
		s.latest = msg.snap
		if msg.snap != nil && msg.snap.Data.Prefs != nil {
			p := msg.snap.Data.Prefs
			if p.TimeLimitMs > 0 {
				s.inputs[fieldTimeLimit].Model.SetValue(strconv.Itoa(p.TimeLimitMs))
			}
			if p.ResetDelayMs > 0 {
				s.inputs[fieldResetDelay].Model.SetValue(strconv.Itoa(p.ResetDelayMs))
			}
		}
		return s, nil

	case prefsSavedMsg:
		if msg.err != nil {
			s.status = "save failed: " + msg.err.Error()
			s.isErr = true
		} else {
			s.status = "saved"
			s.isErr = false
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "down":
			s.setFocus((s.focus + 1) % fieldCount)
			return s, nil
		case "shift+tab", "up":
			s.setFocus((s.focus + fieldCount - 1) % fieldCount)
			return s, nil
		case "enter":
			return s, s.save()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *SettingsScreen) setFocus(i int) {
	s.inputs[s.focus].Model.Blur()
	s.focus = i
	s.inputs[s.focus].Model.Focus()
}

// save validates both fields and writes a new snapshot carrying the
// updated preferences.
func (s *SettingsScreen) save() tea.Cmd {
	limit, limitErr := s.inputs[fieldTimeLimit].NumericValue()
	limitOK := limitErr == nil && limit >= minTimeLimit && limit <= maxTimeLimit
	s.inputs[fieldTimeLimit].Submit(limitOK)

	delay, delayErr := s.inputs[fieldResetDelay].NumericValue()
	delayOK := delayErr == nil && delay >= minResetDelay && delay <= maxResetDelay
	s.inputs[fieldResetDelay].Submit(delayOK)

	if !limitOK || !delayOK {
		s.status = "values out of range"
		s.isErr = true
		return nil
	}

	next := &store.Snapshot{
		Sequence:  1,
		Timestamp: time.Now().UTC(),
		Data:      store.SnapshotData{Version: store.SnapshotVersion},
	}
	if s.latest != nil {
		next.Sequence = s.latest.Sequence + 1
		next.Data = s.latest.Data
	}
	if next.Data.Prefs == nil {
		next.Data.Prefs = &store.Preferences{Difficulty: confirm.Easy.String()}
	}
	next.Data.Prefs.TimeLimitMs = limit
	next.Data.Prefs.ResetDelayMs = delay
	s.latest = next

	repo := s.snapRepo
	return func() tea.Msg {
		ctx := context.Background()
		if err := repo.Save(ctx, next); err != nil {
			return prefsSavedMsg{err: err}
		}
		return prefsSavedMsg{err: repo.Prune(ctx, store.SnapshotKeep)}
	}
}

func (s *SettingsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading settings...")
	}

	label := func(text string, focused bool) string {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if focused {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		return style.Render(text)
	}

	rows := []string{
		"",
		theme.Title.Render("Settings"),
		"",
		label("Time limit (ms)", s.focus == fieldTimeLimit),
		s.inputs[fieldTimeLimit].View(),
		"",
		label("Reset delay (ms)", s.focus == fieldResetDelay),
		s.inputs[fieldResetDelay].View(),
		"",
		theme.Hint.Render("time limit applies to medium and hard modes"),
	}

	if s.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if s.isErr {
			style = style.Foreground(theme.Error)
		}
		rows = append(rows, "", style.Render(s.status))
	}

	card := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
