package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sohandillikar/statue-confirmation-component/internal/router"
	"github.com/sohandillikar/statue-confirmation-component/internal/screen"
	"github.com/sohandillikar/statue-confirmation-component/internal/screens/home"
	"github.com/sohandillikar/statue-confirmation-component/internal/store"
	"github.com/sohandillikar/statue-confirmation-component/internal/ui/components"
	"github.com/sohandillikar/statue-confirmation-component/internal/ui/layout"
)

// Options carries the repositories the screens depend on. Nil repos
// degrade to placeholder screens instead of crashing. Prefs, when set,
// override the stored preferences for this run.
type Options struct {
	EventRepo store.EventRepo
	SnapRepo  store.SnapshotRepo
	Prefs     *store.Preferences
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	width    int
	height   int
	confirms int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	confirms := 0
	if opts.SnapRepo != nil {
		if snap, err := opts.SnapRepo.Latest(context.Background()); err == nil && snap != nil {
			confirms = snap.Data.TotalConfirms
		}
	}

	homeScreen := home.New(opts.EventRepo, opts.SnapRepo, opts.Prefs)
	return AppModel{
		router:   router.New(homeScreen),
		confirms: confirms,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Screens need the size too, for mouse hit geometry.
		cmd := m.router.Update(msg)
		return m, cmd

	case components.ResolvedMsg:
		if msg.Outcome == components.OutcomeSuccess {
			m.confirms++
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.confirms, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
		footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program. Mouse reporting is on for the
// whole run since dragging is the primary input.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
