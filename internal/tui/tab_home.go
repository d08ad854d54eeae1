package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/ledger"
	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/tui/components"
	"github.com/theirongolddev/rebalance/internal/tui/theme"
)

const recentCount = 6

func (a *App) updateHome(key string) bool {
	switch key {
	case "j", "down":
		if a.moodCursor < len(model.Moods)-1 {
			a.moodCursor++
		}
	case "k", "up":
		if a.moodCursor > 0 {
			a.moodCursor--
		}
	case "enter", " ":
		m := model.Moods[a.moodCursor]
		a.app.SetMood(m)
		a.flash("feeling %s", strings.ToLower(m.Label()))
		a.checkPersist()
	case "x":
		a.app.SetMood("")
		a.flash("mood cleared")
		a.checkPersist()
	default:
		return false
	}
	return true
}

func (a App) renderHomeTab(cw int) string {
	t := theme.Active
	data := a.app.Snapshot()
	now := a.app.Now()
	month := a.app.CurrentMonth()
	surv := a.app.Survival()

	balanceColor := t.Income()
	if month.Balance < 0 {
		balanceColor = t.Expense()
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Income " + cli.FormatMonth(month.Year, month.Month), Value: cli.FormatMoney(month.Income), Color: t.Income()},
		{Label: "Expense", Value: cli.FormatMoney(month.Expense), Note: fmt.Sprintf("%d records", month.TransactionCount), Color: t.Expense()},
		{Label: "Balance", Value: cli.FormatSigned(month.Balance), Color: balanceColor},
		{Label: "Runway", Value: cli.FormatRunway(surv.Runway) + " mo", Note: "on " + cli.FormatMoney(surv.EffectiveMonthlyCost) + "/mo", Color: t.Runway(surv.Runway)},
	}, cw))
	b.WriteString("\n")

	cols := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		cols = []int{cw}
	}

	moodCard := components.ContentCard("How are you feeling?", a.renderMoodPicker(data.Mood), cols[0])
	dueCard := components.ContentCard(
		fmt.Sprintf("Due today (day %d)", now.Day()),
		a.renderDueToday(a.app.DueOn(now.Day())),
		cols[len(cols)-1],
	)
	if len(cols) == 2 {
		b.WriteString(components.CardRow([]string{moodCard, dueCard}))
	} else {
		b.WriteString(moodCard + "\n" + dueCard)
	}
	b.WriteString("\n")

	b.WriteString(components.ContentCard("Recent", renderRecent(data.Transactions, components.CardInnerWidth(cw)), cw))

	if months := a.app.Months(); len(months) > 1 {
		vals := make([]float64, len(months))
		for i, m := range months {
			vals[len(months)-1-i] = float64(m.Expense)
		}
		b.WriteString("\n")
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Monthly spending (%d months)", len(months)),
			components.Sparkline(vals, t.Expense()),
			cw,
		))
	}
	return b.String()
}

func (a App) renderMoodPicker(current *model.Mood) string {
	t := theme.Active
	var lines []string
	for i, m := range model.Moods {
		marker := "  "
		if current != nil && *current == m {
			marker = "● "
		}
		style := lipgloss.NewStyle().Foreground(t.Mood(m)).Background(t.Surface)
		line := marker + m.Label()
		if i == a.moodCursor {
			style = style.Background(t.SurfaceHover).Bold(true)
			line = "› " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

func (a App) renderDueToday(due []model.Debt) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(due) == 0 {
		return muted.Render("Nothing due today.")
	}
	now := a.app.Now()
	paid := lipgloss.NewStyle().Foreground(t.Income()).Background(t.Surface)
	owed := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var lines []string
	for _, d := range due {
		status := owed.Render("due")
		if ledger.IsPaidThisCalendarMonth(d, now) {
			status = paid.Render("paid")
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			muted.Render(fmt.Sprintf("%-20s", truncStr(d.Name, 20))),
			muted.Render(fmt.Sprintf("%10s", cli.FormatMoney(d.MonthlyPay.Int64()))),
			status))
	}
	lines = append(lines, muted.Render("Pay from the Debts tab [d]."))
	return strings.Join(lines, "\n")
}

func renderRecent(txs []model.Transaction, w int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(txs) == 0 {
		return muted.Render("No transactions yet. Press [a] to add one.")
	}
	in := lipgloss.NewStyle().Foreground(t.Income()).Background(t.Surface)
	out := lipgloss.NewStyle().Foreground(t.Expense()).Background(t.Surface)
	text := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	nameW := max(w-44, 10)
	var lines []string
	for i, tx := range txs {
		if i == recentCount {
			break
		}
		amt := out
		if tx.Type == model.Income {
			amt = in
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
			muted.Render(fmt.Sprintf("%04d-%02d-%02d", tx.Year, tx.Month, tx.Day)),
			text.Render(fmt.Sprintf("%-*s", nameW, truncStr(tx.Name, nameW))),
			amt.Render(fmt.Sprintf("%10s", cli.FormatTxAmount(tx))),
			muted.Render(fmt.Sprintf("%-6s", cli.FormatNeed(tx.IsNeed)))))
	}
	return strings.Join(lines, "\n")
}
