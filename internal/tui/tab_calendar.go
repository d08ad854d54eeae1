package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/tui/components"
	"github.com/theirongolddev/rebalance/internal/tui/theme"
)

func (a *App) updateCalendar(key string) bool {
	if a.updateMonthNav(key) {
		return true
	}
	var step int
	switch key {
	case "left":
		step = -1
	case "right":
		step = 1
	case "up", "k":
		step = -7
	case "down", "j":
		step = 7
	case "t":
		now := a.app.Now()
		a.viewYear, a.viewMonth, a.viewDay = now.Year(), int(now.Month()), now.Day()
		return true
	default:
		return false
	}
	// Stepping off either end of the month carries into the next one.
	d := time.Date(a.viewYear, time.Month(a.viewMonth), a.viewDay+step, 0, 0, 0, 0, time.UTC)
	a.viewYear, a.viewMonth, a.viewDay = d.Year(), int(d.Month()), d.Day()
	return true
}

func (a App) renderCalendarTab(cw int) string {
	t := theme.Active
	days := a.app.Calendar(a.viewYear, a.viewMonth)
	stats := a.app.Month(a.viewYear, a.viewMonth)

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: cli.FormatMonth(a.viewYear, a.viewMonth) + " spent", Value: cli.FormatMoney(stats.Expense), Color: t.Expense()},
		{Label: "Earned", Value: cli.FormatMoney(stats.Income), Color: t.Income()},
		{Label: "Daily average", Value: cli.FormatMoney(stats.DailyAverage)},
		{Label: "Zero-spend days", Value: fmt.Sprintf("%d", stats.ZeroSpendDays), Color: t.Green},
	}, cw))
	b.WriteString("\n")

	cols := components.LayoutRow(cw, 2)
	gridW := cols[0]
	if a.isCompactLayout() {
		gridW = cw
	}
	grid := components.ContentCard(cli.FormatMonth(a.viewYear, a.viewMonth),
		a.renderMonthGrid(days, components.CardInnerWidth(gridW)), gridW)

	var sel model.DayData
	if a.viewDay >= 1 && a.viewDay <= len(days) {
		sel = days[a.viewDay-1]
	}
	detailW := cols[1]
	if a.isCompactLayout() {
		detailW = cw
	}
	detail := components.ContentCard(
		fmt.Sprintf("%04d-%02d-%02d  spent %s", a.viewYear, a.viewMonth, a.viewDay, cli.FormatMoney(sel.Spend)),
		renderDayItems(sel.Items, components.CardInnerWidth(detailW)),
		detailW,
	)

	if a.isCompactLayout() {
		b.WriteString(grid + "\n" + detail)
	} else {
		b.WriteString(components.CardRow([]string{grid, detail}))
	}
	return b.String()
}

// renderMonthGrid lays the month out Sunday-first. Each cell is two lines:
// the day number and its spend.
func (a App) renderMonthGrid(days []model.DayData, w int) string {
	t := theme.Active
	cell := max(w/7, 6)
	now := a.app.Now()

	head := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	dayStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spendStyle := lipgloss.NewStyle().Foreground(t.Expense()).Background(t.Surface)
	zeroStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for wd := 0; wd < 7; wd++ {
		b.WriteString(head.Render(fmt.Sprintf("%-*s", cell, cli.FormatDayOfWeek(wd))))
	}
	if len(days) == 0 {
		return b.String()
	}

	offset := int(time.Date(a.viewYear, time.Month(a.viewMonth), 1, 0, 0, 0, 0, time.UTC).Weekday())
	var top, bottom strings.Builder
	flush := func() {
		b.WriteString("\n" + top.String() + "\n" + bottom.String())
		top.Reset()
		bottom.Reset()
	}
	for i := 0; i < offset; i++ {
		top.WriteString(blank.Render(strings.Repeat(" ", cell)))
		bottom.WriteString(blank.Render(strings.Repeat(" ", cell)))
	}

	col := offset
	for _, d := range days {
		ds := dayStyle
		if d.Year == now.Year() && d.Month == int(now.Month()) && d.Day == now.Day() {
			ds = ds.Foreground(t.Accent).Bold(true).Underline(true)
		}
		ss := spendStyle
		spend := cli.FormatMoney(d.Spend)
		if d.Spend == 0 {
			ss, spend = zeroStyle, "·"
		}
		if d.Day == a.viewDay {
			ds = ds.Background(t.SurfaceHover)
			ss = ss.Background(t.SurfaceHover)
		}
		top.WriteString(ds.Render(fmt.Sprintf("%-*d", cell, d.Day)))
		bottom.WriteString(ss.Render(fmt.Sprintf("%-*s", cell, truncStr(spend, cell-1))))
		col++
		if col == 7 {
			flush()
			col = 0
		}
	}
	if col > 0 {
		flush()
	}
	return b.String()
}

func renderDayItems(items []model.Transaction, w int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(items) == 0 {
		return muted.Render("Nothing recorded. Press [a] to add to this day.")
	}
	text := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	in := lipgloss.NewStyle().Foreground(t.Income()).Background(t.Surface)
	out := lipgloss.NewStyle().Foreground(t.Expense()).Background(t.Surface)

	nameW := max(w-22, 8)
	var lines []string
	for _, tx := range items {
		amt := out
		if tx.Type == model.Income {
			amt = in
		}
		lines = append(lines, text.Render(fmt.Sprintf("%-*s", nameW, truncStr(tx.Name, nameW)))+
			amt.Render(fmt.Sprintf("%12s", cli.FormatTxAmount(tx))))
		meta := []string{}
		if n := cli.FormatNeed(tx.IsNeed); n != "" {
			meta = append(meta, n)
		}
		if len(tx.Feelings) > 0 {
			meta = append(meta, cli.FormatFeelings(tx.Feelings))
		}
		if tx.MoodAtTime != nil {
			meta = append(meta, "mood "+strings.ToLower(tx.MoodAtTime.Label()))
		}
		if len(meta) > 0 {
			lines = append(lines, muted.Render("  "+truncStr(strings.Join(meta, " · "), w-2)))
		}
		if tx.Note != "" {
			lines = append(lines, muted.Render("  "+truncStr(tx.Note, w-2)))
		}
	}
	return strings.Join(lines, "\n")
}
