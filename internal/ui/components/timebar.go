package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/sohandillikar/statue-confirmation-component/internal/ui/theme"
)

// lowTimeFraction is the remaining fraction under which the bar turns red.
const lowTimeFraction = 0.3

// TimeBar displays the countdown of a timed confirmation session as a
// draining horizontal bar with the remaining milliseconds on the right.
type TimeBar struct {
	Remaining time.Duration
	Limit     time.Duration
	Width     int
}

// NewTimeBar creates a countdown bar.
func NewTimeBar(remaining, limit time.Duration, width int) TimeBar {
	return TimeBar{
		Remaining: remaining,
		Limit:     limit,
		Width:     width,
	}
}

// View renders the countdown bar.
func (t TimeBar) View() string {
	frac := 0.0
	if t.Limit > 0 {
		frac = float64(t.Remaining) / float64(t.Limit)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	label := fmt.Sprintf("  %4dms", t.Remaining.Milliseconds())
	barWidth := t.Width - lipgloss.Width(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	fillColor := theme.Secondary
	if frac < lowTimeFraction {
		fillColor = theme.TimeLow
	}

	filledStr := lipgloss.NewStyle().
		Background(fillColor).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	return filledStr + emptyStr + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(label)
}
