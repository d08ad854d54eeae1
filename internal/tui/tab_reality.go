package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/tui/components"
	"github.com/theirongolddev/rebalance/internal/tui/theme"
)

func (a *App) updateReality(key string) bool {
	if key != "t" {
		return false
	}
	if a.app.ToggleIncludeDebt() {
		a.flash("debt payments now count toward monthly cost")
	} else {
		a.flash("debt payments no longer count toward monthly cost")
	}
	a.checkPersist()
	return true
}

func runwayVerdict(r model.Runway) string {
	switch {
	case r.Infinite:
		return "No monthly cost set, so your money never runs out on paper."
	case r.Months >= 6:
		return "More than half a year of breathing room."
	case r.Months >= 3:
		return "A few months of cushion. Keep building."
	case r.Months >= 1:
		return "Tight. One surprise bill could hurt."
	default:
		return "Less than a month covered."
	}
}

func (a App) renderRealityTab(cw int) string {
	t := theme.Active
	data := a.app.Snapshot()
	surv := a.app.Survival()
	month := a.app.CurrentMonth()
	debtPay := surv.EffectiveMonthlyCost - data.Settings.SurvivalCost.Int64()

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Runway", Value: cli.FormatRunway(surv.Runway) + " months", Note: runwayVerdict(surv.Runway), Color: t.Runway(surv.Runway)},
		{Label: "Total assets", Value: cli.FormatMoney(surv.TotalAssets)},
		{Label: "Monthly cost", Value: cli.FormatMoney(surv.EffectiveMonthlyCost)},
	}, cw))
	b.WriteString("\n")

	cols := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		cols = []int{cw, cw}
	}
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	kv := func(k, v string) string {
		return label.Render(fmt.Sprintf("%-22s", k)) + value.Render(fmt.Sprintf("%14s", v))
	}

	assets := strings.Join([]string{
		kv("Savings", cli.FormatMoney(data.Savings.Int64())),
		kv("This month's balance", cli.FormatSigned(month.Balance)),
		kv("Liquid", cli.FormatMoney(surv.LiquidAssets)),
		kv("Investments", cli.FormatMoney(data.Investments.Int64())),
	}, "\n")
	assetCard := components.ContentCard("Assets", assets, cols[0])

	include := "no"
	if data.Settings.IncludeDebtInSurvival {
		include = "yes"
	}
	cost := strings.Join([]string{
		kv("Survival cost", cli.FormatMoney(data.Settings.SurvivalCost.Int64())),
		kv("Debt payments", cli.FormatMoney(debtPay)),
		kv("Include debt [t]", include),
		kv("Effective", cli.FormatMoney(surv.EffectiveMonthlyCost)),
	}, "\n")
	costCard := components.ContentCard("Monthly cost", cost, cols[1])

	if a.isCompactLayout() {
		b.WriteString(assetCard + "\n" + costCard)
	} else {
		b.WriteString(components.CardRow([]string{assetCard, costCard}))
	}
	b.WriteString("\n")

	barW := max(components.CardInnerWidth(cw)-20, 10)
	bars := components.LabeledBar("Cash", surv.LiquidShare/100, 12, barW, t.Cyan) + "\n" +
		components.LabeledBar("Investments", surv.InvestShare/100, 12, barW, t.Blue) + "\n" +
		label.Render("Against a six-month cushion, each capped at 50%.")
	b.WriteString(components.ContentCard("Cushion", bars, cw))
	return b.String()
}
