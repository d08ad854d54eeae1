// Package tui provides the interactive Bubble Tea dashboard for rebalance.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/rebalance/internal/app"
	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/pipeline"
	"github.com/theirongolddev/rebalance/internal/tui/components"
	"github.com/theirongolddev/rebalance/internal/tui/theme"
)

const (
	tabHome = iota
	tabCalendar
	tabDebts
	tabInsight
	tabReality
)

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 160
	minContentHeight = 5
)

// App is the root Bubble Tea model. All state that outlives a keypress
// lives in the wrapped *app.App; App only holds view state.
type App struct {
	app *app.App

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Home: mood picker
	moodCursor int

	// Calendar and Insight share the month being viewed.
	viewYear  int
	viewMonth int
	viewDay   int

	// Debts
	debtCursor int
	confirmPay int64 // debt awaiting a second 'p' because it was paid this month

	// Transaction entry (huh form)
	form     *huh.Form
	formVals *txFormValues

	notice     string
	noticeWarn bool
}

// NewApp creates a new TUI app model over a.
func NewApp(a *app.App) App {
	now := a.Now()
	m := App{
		app:       a,
		viewYear:  now.Year(),
		viewMonth: int(now.Month()),
		viewDay:   now.Day(),
	}
	if cur := a.Snapshot().Mood; cur != nil {
		for i, mood := range model.Moods {
			if mood == *cur {
				m.moodCursor = i
			}
		}
	}
	return m
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

func (a *App) flash(format string, args ...any) {
	a.notice = fmt.Sprintf(format, args...)
	a.noticeWarn = false
}

func (a *App) warn(format string, args ...any) {
	a.notice = fmt.Sprintf(format, args...)
	a.noticeWarn = true
}

// checkPersist surfaces a failed write; the change itself already applied.
func (a *App) checkPersist() {
	if err := a.app.PersistErr(); err != nil {
		a.warn("not saved: %v", err)
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.contentWidth()).WithHeight(msg.Height - 2)
		}
		return a, nil

	case tea.MouseMsg:
		if a.form != nil || a.showHelp {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.switchTab(tab)
			}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			return a.updateForm(msg)
		}
		return a.updateKey(msg)
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "a":
		return a.openForm()
	case "esc":
		a.notice = ""
		a.confirmPay = 0
		return a, nil
	case "tab":
		a.switchTab((a.activeTab + 1) % len(components.Tabs))
		return a, nil
	case "shift+tab":
		a.switchTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
		return a, nil
	}

	var handled bool
	switch a.activeTab {
	case tabHome:
		handled = a.updateHome(key)
	case tabCalendar:
		handled = a.updateCalendar(key)
	case tabDebts:
		handled = a.updateDebts(key)
	case tabInsight:
		handled = a.updateMonthNav(key)
	case tabReality:
		handled = a.updateReality(key)
	}
	if handled {
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.switchTab(idx)
			return a, nil
		}
	}
	switch key {
	case "left":
		a.switchTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
	case "right":
		a.switchTab((a.activeTab + 1) % len(components.Tabs))
	}
	return a, nil
}

func (a *App) switchTab(idx int) {
	a.activeTab = idx
	a.confirmPay = 0
}

// updateMonthNav moves the viewed month with [ and ].
func (a *App) updateMonthNav(key string) bool {
	var step int
	switch key {
	case "[":
		step = -1
	case "]":
		step = 1
	default:
		return false
	}
	t := time.Date(a.viewYear, time.Month(a.viewMonth)+time.Month(step), 1, 0, 0, 0, 0, time.UTC)
	a.viewYear, a.viewMonth = t.Year(), int(t.Month())
	a.viewDay = min(a.viewDay, pipeline.DaysInMonth(a.viewYear, a.viewMonth))
	return true
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  rebalance needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

var helpSections = []struct {
	title    string
	bindings []struct{ key, desc string }
}{
	{"Navigation", []struct{ key, desc string }{
		{"h c d i r", "Jump to tab"},
		{"tab ← →", "Next / previous tab"},
		{"[ ]", "Previous / next month"},
		{"j k", "Move selection"},
	}},
	{"Actions", []struct{ key, desc string }{
		{"a", "Add transaction"},
		{"enter", "Set mood (Home)"},
		{"x", "Clear mood (Home)"},
		{"p", "Pay selected debt"},
		{"n", "New debt"},
		{"t", "Today (Calendar) / include debt (Reality)"},
		{"esc", "Cancel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}},
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range helpSections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

var tabHints = map[int]string{
	tabHome:     "[j/k]mood [enter]set [a]dd [?]help [q]uit",
	tabCalendar: "[←→↑↓]day [ [ ] ]month [t]oday [a]dd [?]help",
	tabDebts:    "[j/k]select [p]ay [n]ew [?]help [q]uit",
	tabInsight:  "[ [ ] ]month [a]dd [?]help [q]uit",
	tabReality:  "[t]oggle debt [a]dd [?]help [q]uit",
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, tabHints[a.activeTab], a.notice, a.noticeWarn)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.form != nil:
		content = a.form.View()
	case a.activeTab == tabHome:
		content = a.renderHomeTab(cw)
	case a.activeTab == tabCalendar:
		content = a.renderCalendarTab(cw)
	case a.activeTab == tabDebts:
		content = a.renderDebtsTab(cw)
	case a.activeTab == tabInsight:
		content = a.renderInsightTab(cw)
	case a.activeTab == tabReality:
		content = a.renderRealityTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes use the same widths RenderTabBar draws with.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // one-column separator
	}
	return -1
}
