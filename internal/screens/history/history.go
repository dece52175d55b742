package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/sohandillikar/statue-confirmation-component/internal/router"
	"github.com/sohandillikar/statue-confirmation-component/internal/screen"
	"github.com/sohandillikar/statue-confirmation-component/internal/store"
	"github.com/sohandillikar/statue-confirmation-component/internal/ui/layout"
	"github.com/sohandillikar/statue-confirmation-component/internal/ui/theme"
)

type historyLoadedMsg struct {
	Attempts []store.AttemptRecord
	Stats    []store.DifficultyStats
	Err      error
}

// HistoryScreen displays past confirmation attempts and per-difficulty
// success rates.
type HistoryScreen struct {
	eventRepo store.EventRepo
	attempts  []store.AttemptRecord
	stats     []store.DifficultyStats
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		attempts, err := s.eventRepo.QueryAttempts(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		stats, err := s.eventRepo.Stats(ctx)
		if err != nil {
			return historyLoadedMsg{Attempts: attempts}
		}

		return historyLoadedMsg{Attempts: attempts, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Go confirm something!")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Per-difficulty summary first.
	for _, st := range s.stats {
		line := fmt.Sprintf("%-6s  %3d attempts  %3.0f%% confirmed",
			st.Difficulty, st.Attempts, st.SuccessRate()*100)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, a := range s.attempts {
		dateStr := a.Timestamp.Format("Jan 02 15:04")

		zoneStr := ""
		if a.Difficulty == "hard" {
			zoneStr = fmt.Sprintf("  zone %.0f-%.0f%%", a.ZoneStart*100, a.ZoneEnd*100)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-6s  %-7s  %3.0f%%  %4dms%s",
			prefix, dateStr, a.Difficulty, a.Outcome, a.Progress*100, a.ElapsedMs, zoneStr)

		style := lipgloss.NewStyle().Foreground(outcomeColor(a.Outcome))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func outcomeColor(outcome string) color.Color {
	switch outcome {
	case store.OutcomeSuccess:
		return theme.Success
	case store.OutcomeTimeout:
		return theme.Error
	case store.OutcomeMiss:
		return theme.Accent
	case store.OutcomeAbort:
		return theme.TextDim
	default:
		return theme.Text
	}
}
