package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sohandillikar/statue-confirmation-component/internal/confirm"
	"github.com/sohandillikar/statue-confirmation-component/internal/router"
	"github.com/sohandillikar/statue-confirmation-component/internal/screen"
	"github.com/sohandillikar/statue-confirmation-component/internal/screens/history"
	"github.com/sohandillikar/statue-confirmation-component/internal/screens/placeholder"
	"github.com/sohandillikar/statue-confirmation-component/internal/screens/settings"
	"github.com/sohandillikar/statue-confirmation-component/internal/screens/showcase"
	"github.com/sohandillikar/statue-confirmation-component/internal/store"
	"github.com/sohandillikar/statue-confirmation-component/internal/ui/components"
	"github.com/sohandillikar/statue-confirmation-component/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu          components.Menu
	totalConfirms int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. overrides, when non-nil, take precedence
// over the stored preferences for this run.
func New(eventRepo store.EventRepo, snapRepo store.SnapshotRepo, overrides *store.Preferences) *HomeScreen {
	// Load the snapshot for preferences and the running confirm total.
	var snap *store.Snapshot
	if snapRepo != nil {
		snap, _ = snapRepo.Latest(context.Background())
	}

	var totalConfirms int
	var prefs *store.Preferences
	if snap != nil {
		totalConfirms = snap.Data.TotalConfirms
		prefs = snap.Data.Prefs
	}
	prefs = mergePrefs(prefs, overrides)

	confirmItem := func(label string, d confirm.Difficulty) components.MenuItem {
		return components.MenuItem{Label: label, Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New(label)}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: showcase.New(d, prefs, eventRepo, snapRepo),
				}
			}
		}}
	}

	items := []components.MenuItem{
		confirmItem("CONFIRM (EASY)", confirm.Easy),
		confirmItem("CONFIRM (MEDIUM)", confirm.Medium),
		confirmItem("CONFIRM (HARD)", confirm.Hard),
		{Label: "SETTINGS", Action: func() tea.Cmd {
			if snapRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Settings")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(snapRepo)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	menu := components.NewMenu(items)
	if prefs != nil && prefs.Difficulty != "" {
		if d, err := confirm.ParseDifficulty(prefs.Difficulty); err == nil {
			menu.Selected = int(d)
		}
	}

	return &HomeScreen{
		menu:          menu,
		totalConfirms: totalConfirms,
	}
}

// mergePrefs layers non-zero override fields on top of the stored ones.
func mergePrefs(stored, overrides *store.Preferences) *store.Preferences {
	if overrides == nil {
		return stored
	}
	merged := *overrides
	if stored != nil {
		if merged.Difficulty == "" {
			merged.Difficulty = stored.Difficulty
		}
		if merged.TimeLimitMs == 0 {
			merged.TimeLimitMs = stored.TimeLimitMs
		}
		if merged.ResetDelayMs == 0 {
			merged.ResetDelayMs = stored.ResetDelayMs
		}
	}
	return &merged
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("STATUE")
	subtitle := theme.Subtitle.Render("a slide-to-confirm showcase")

	stats := theme.Hint.Render(fmt.Sprintf("%d confirmations so far", h.totalConfirms))

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		subtitle,
		"",
		stats,
		"",
		h.menu.View(),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
