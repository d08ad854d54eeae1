package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/rebalance/internal/tui/theme"
)

func clamp01(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

// ColorForProgress goes from red to green as pct (0-1) climbs.
func ColorForProgress(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 0.75:
		return t.Green
	case pct >= 0.5:
		return t.Yellow
	case pct >= 0.25:
		return t.Orange
	default:
		return t.Red
	}
}

// ProgressBar renders a solid bar for pct (0-1) followed by the percentage.
func ProgressBar(pct float64, width int, color lipgloss.Color) string {
	t := theme.Active
	pct = clamp01(pct)
	if width < 4 {
		width = 4
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(pct) + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// LabeledBar renders "label  [bar] pct" with the label padded to labelW.
func LabeledBar(label string, pct float64, labelW, barWidth int, color lipgloss.Color) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)
	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		ProgressBar(pct, barWidth, color)
}

// SplitBar renders need vs want spending as one two-colored bar.
// With nothing spent the bar is empty.
func SplitBar(need, want int64, width int) string {
	t := theme.Active
	empty := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	total := need + want
	if total <= 0 || width <= 0 {
		return empty.Render(strings.Repeat("░", max(width, 0)))
	}

	needW := int(float64(need) / float64(total) * float64(width))
	if need > 0 && needW == 0 {
		needW = 1
	}
	if want > 0 && needW == width {
		needW = width - 1
	}

	needStyle := lipgloss.NewStyle().Foreground(t.Need()).Background(t.Surface)
	wantStyle := lipgloss.NewStyle().Foreground(t.Want()).Background(t.Surface)
	return needStyle.Render(strings.Repeat("█", needW)) + wantStyle.Render(strings.Repeat("█", width-needW))
}
