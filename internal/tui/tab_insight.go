package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/pipeline"
	"github.com/theirongolddev/rebalance/internal/tui/components"
	"github.com/theirongolddev/rebalance/internal/tui/theme"
)

const insightFeelings = 6

func (a App) renderInsightTab(cw int) string {
	t := theme.Active
	stats := a.app.Month(a.viewYear, a.viewMonth)
	txs := a.app.Snapshot().Transactions
	needPct := pipeline.NeedPercent(stats)
	wantPct := int64(0)
	if stats.Expense > 0 {
		wantPct = 100 - needPct
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: cli.FormatMonth(a.viewYear, a.viewMonth), Value: cli.FormatSigned(stats.Balance), Note: fmt.Sprintf("%d records", stats.TransactionCount)},
		{Label: "Needs", Value: fmt.Sprintf("%d%%", needPct), Note: cli.FormatMoney(stats.NeedExpense), Color: t.Need()},
		{Label: "Wants", Value: fmt.Sprintf("%d%%", wantPct), Note: cli.FormatMoney(stats.WantExpense), Color: t.Want()},
		{Label: "Zero-spend days", Value: strconv.Itoa(stats.ZeroSpendDays), Note: "of " + strconv.Itoa(pipeline.DaysInMonth(a.viewYear, a.viewMonth)), Color: t.Green},
	}, cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	b.WriteString(components.ContentCard("Need vs want",
		components.SplitBar(stats.NeedExpense, stats.WantExpense, innerW)+"\n"+
			lipgloss.NewStyle().Foreground(t.Need()).Background(t.Surface).Render("█ need ")+
			lipgloss.NewStyle().Foreground(t.Want()).Background(t.Surface).Render("█ want"),
		cw))
	b.WriteString("\n")

	cols := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		cols = []int{cw, cw}
	}

	var top []string
	for i, tx := range pipeline.Top3Expenses(txs, a.viewYear, a.viewMonth) {
		nameW := max(components.CardInnerWidth(cols[0])-18, 8)
		top = append(top, muted.Render(fmt.Sprintf("%d. %-*s %12s", i+1, nameW, truncStr(tx.Name, nameW), cli.FormatMoney(tx.Amount.Int64()))))
	}
	if len(top) == 0 {
		top = []string{muted.Render("No expenses this month.")}
	}
	topCard := components.ContentCard("Top expenses", strings.Join(top, "\n"), cols[0])

	var feel []string
	for _, fc := range pipeline.TopFeelings(stats, insightFeelings) {
		feel = append(feel, muted.Render(fmt.Sprintf("%-12s ×%d", fc.Feeling, fc.Count)))
	}
	if len(feel) == 0 {
		feel = []string{muted.Render("No feelings tagged this month.")}
	}
	feelCard := components.ContentCard("Top feelings", strings.Join(feel, "\n"), cols[1])

	if a.isCompactLayout() {
		b.WriteString(topCard + "\n" + feelCard)
	} else {
		b.WriteString(components.CardRow([]string{topCard, feelCard}))
	}

	days := a.app.Calendar(a.viewYear, a.viewMonth)
	vals := make([]float64, len(days))
	labels := make([]string, len(days))
	for i, d := range days {
		vals[i] = float64(d.Spend)
		if d.Day == 1 || d.Day%5 == 0 {
			labels[i] = strconv.Itoa(d.Day)
		}
	}
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Daily spending",
		components.BarChart(vals, labels, t.Expense(), innerW, 6), cw))
	return b.String()
}
