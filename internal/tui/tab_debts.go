package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/ledger"
	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/pipeline"
	"github.com/theirongolddev/rebalance/internal/tui/components"
	"github.com/theirongolddev/rebalance/internal/tui/theme"
)

func (a *App) updateDebts(key string) bool {
	plans := a.app.Debts().Plans
	switch key {
	case "j", "down":
		if a.debtCursor < len(plans)-1 {
			a.debtCursor++
		}
		a.confirmPay = 0
	case "k", "up":
		if a.debtCursor > 0 {
			a.debtCursor--
		}
		a.confirmPay = 0
	case "p":
		if a.debtCursor >= len(plans) {
			return true
		}
		a.payDebt(plans[a.debtCursor])
	case "n":
		d := a.app.AddDebt(ledger.DefaultDebtName)
		a.debtCursor = len(a.app.Snapshot().Debts) - 1
		a.flash("added %q; fill it in with `rebalance debt set %d`", d.Name, d.ID)
		a.checkPersist()
	default:
		return false
	}
	return true
}

// payDebt records one monthly payment. A debt already paid this calendar
// month needs a second 'p' to confirm.
func (a *App) payDebt(plan model.DebtPlan) {
	id := plan.Debt.ID
	if plan.PaidThisMonth && a.confirmPay != id {
		a.confirmPay = id
		a.warn("%s was already paid this month; press p again to pay anyway", plan.Debt.Name)
		return
	}
	a.confirmPay = 0

	tx, err := a.app.PayDebt(id)
	if err != nil {
		a.warn("%v", err)
		return
	}
	d, _ := a.app.Debt(id)
	a.flash("paid %s toward %s, %s left", cli.FormatMoney(tx.Amount.Int64()), d.Name, cli.FormatMoney(d.Remaining.Int64()))
	a.checkPersist()
}

func (a App) renderDebtsTab(cw int) string {
	t := theme.Active
	now := a.app.Now()
	sum := a.app.Debts()

	freedom := "-"
	if d := pipeline.FreedomDate(sum, now); !d.IsZero() {
		freedom = d.Format("Jan 2006")
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Outstanding", Value: cli.FormatMoney(sum.TotalOutstanding), Color: t.Expense()},
		{Label: "Monthly payments", Value: cli.FormatMoney(sum.TotalMonthlyPayment)},
		{Label: "Paid off", Value: fmt.Sprintf("%d of %d", sum.PaidOffCount, len(sum.Plans)), Color: t.Income()},
		{Label: "Debt-free", Value: freedom, Note: cli.FormatMonths(sum.MonthsToFreedom)},
	}, cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard("Overall progress",
		components.ProgressBar(sum.ProgressPercent/100, max(innerW-6, 10), components.ColorForProgress(sum.ProgressPercent/100)),
		cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard(fmt.Sprintf("Debts (%d)", len(sum.Plans)), a.renderDebtList(sum.Plans, innerW), cw))

	if a.debtCursor < len(sum.Plans) {
		b.WriteString("\n")
		b.WriteString(a.renderDebtDetail(sum.Plans[a.debtCursor], cw))
	}
	return b.String()
}

func (a App) renderDebtList(plans []model.DebtPlan, w int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(plans) == 0 {
		return muted.Render("No debts. Press [n] to add one.")
	}
	head := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	row := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	sel := row.Background(t.SurfaceHover).Bold(true)
	flag := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface)

	nameW := max(w-60, 12)
	format := "%-2s%-*s %12s %10s %6s %4s %-12s"
	lines := []string{head.Render(fmt.Sprintf(format, "", nameW, "Name", "Remaining", "Monthly", "Rate", "Due", "Status"))}

	for i, p := range plans {
		status := ""
		switch {
		case p.PaidOff:
			status = "paid off"
		case p.PaidThisMonth:
			status = "paid ✓"
		case p.MonthsToPayoff > 0:
			status = cli.FormatMonths(p.MonthsToPayoff)
		}
		marker := "  "
		if p.HighPriority {
			marker = flag.Render("★ ")
		}
		style := row
		if i == a.debtCursor {
			style = sel
		}
		lines = append(lines, marker+style.Render(fmt.Sprintf("%-*s %12s %10s %6s %4s %-12s",
			nameW, truncStr(p.Debt.Name, nameW),
			cli.FormatMoney(p.Debt.Remaining.Int64()),
			cli.FormatMoney(p.Debt.MonthlyPay.Int64()),
			p.Debt.Interest+"%",
			p.Debt.Date,
			status)))
	}
	return strings.Join(lines, "\n")
}

func (a App) renderDebtDetail(p model.DebtPlan, cw int) string {
	t := theme.Active
	d := p.Debt
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	pct := 0.0
	if total := d.Total.Int64(); total > 0 {
		pct = float64(total-d.Remaining.Int64()) / float64(total)
	}
	innerW := components.CardInnerWidth(cw)

	var lines []string
	lines = append(lines, components.LabeledBar("Repaid", pct, 8, max(innerW-16, 10), components.ColorForProgress(pct)))
	payoff := "no monthly payment set"
	if !p.PayoffDate.IsZero() {
		payoff = fmt.Sprintf("paid off around %s (%s)", p.PayoffDate.Format("Jan 2006"), cli.FormatMonths(p.MonthsToPayoff))
	}
	if p.PaidOff {
		payoff = "paid off"
	}
	lines = append(lines, muted.Render(fmt.Sprintf("%s of %s repaid, %s",
		cli.FormatMoney(d.Total.Int64()-d.Remaining.Int64()), cli.FormatMoney(d.Total.Int64()), payoff)))
	if d.LastPaid != nil {
		lines = append(lines, muted.Render("Last paid "+cli.FormatDate(d.LastPaid.In(a.app.Now().Location()))))
	}
	if p.HighPriority {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface).
			Render("★ One of your highest-interest debts: extra payments here save the most."))
	}
	return components.ContentCard(d.Name, strings.Join(lines, "\n"), cw)
}
