package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/rebalance/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs. Every key is the first letter of its name.
var Tabs = []Tab{
	{Name: "Home", Key: 'h'},
	{Name: "Calendar", Key: 'c'},
	{Name: "Debts", Key: 'd'},
	{Name: "Insight", Key: 'i'},
	{Name: "Reality", Key: 'r'},
}

// TabVisualWidth is the rendered width of one tab, padding included.
func TabVisualWidth(tab Tab, active bool) int {
	if active {
		return lipgloss.Width(tab.Name) + 2
	}
	// "[x]" replaces the first letter: one rune becomes three columns.
	return lipgloss.Width(tab.Name) + 2 + 2
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	dimKeyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	padStyle := lipgloss.NewStyle().Background(t.Surface)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		first, rest := string([]rune(tab.Name)[:1]), string([]rune(tab.Name)[1:])
		parts = append(parts, padStyle.Render(" ")+
			dimKeyStyle.Render("[")+keyStyle.Render(strings.ToLower(first))+dimKeyStyle.Render("]")+
			inactiveStyle.Render(rest)+padStyle.Render(" "))
	}

	row := strings.Join(parts, padStyle.Render(" "))
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
