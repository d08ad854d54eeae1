package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/rebalance/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the latest notice on the right. warn colors the notice as a problem.
func RenderStatusBar(width int, hints, notice string, warn bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	noticeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)
	if warn {
		noticeStyle = noticeStyle.Foreground(t.Orange)
	}

	left := " " + hints
	right := ""
	if notice != "" {
		right = noticeStyle.Render(notice + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Notice wins over hints when space runs out.
		left = ""
		padding = width - lipgloss.Width(right)
		if padding < 0 {
			padding = 0
		}
	}

	spacer := lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", padding))
	return style.Render(left + spacer + right)
}

