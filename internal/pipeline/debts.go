package pipeline

import (
	"time"

	"github.com/theirongolddev/rebalance/internal/ledger"
	"github.com/theirongolddev/rebalance/internal/model"
)

// SummarizeDebts rolls up the debt list and projects each debt's payoff
// from now. Plans keep the list order.
func SummarizeDebts(debts []model.Debt, now time.Time) model.DebtSummary {
	priority := ledger.PriorityRanking(debts)

	summary := model.DebtSummary{
		TotalOutstanding:    ledger.TotalOutstanding(debts),
		TotalMonthlyPayment: ledger.TotalMonthlyPayment(debts),
		ProgressPercent:     ledger.OverallProgress(debts),
		PaidOffCount:        ledger.PaidOffCount(debts),
		MonthsToFreedom:     ledger.MonthsToFreedom(debts),
		Plans:               make([]model.DebtPlan, 0, len(debts)),
	}

	for _, d := range debts {
		plan := model.DebtPlan{
			Debt:           d,
			MonthsToPayoff: ledger.MonthsToPayoff(d),
			PaidOff:        ledger.IsPaidOff(d),
			HighPriority:   priority[d.ID],
			PaidThisMonth:  ledger.IsPaidThisCalendarMonth(d, now),
		}
		if plan.MonthsToPayoff > 0 {
			plan.PayoffDate = ledger.ProjectedPayoffDate(d, now)
		}
		summary.Plans = append(summary.Plans, plan)
	}
	return summary
}

// FreedomDate is when the last debt is projected to be paid off, or the
// zero time when no debt has a payoff horizon.
func FreedomDate(s model.DebtSummary, now time.Time) time.Time {
	if s.MonthsToFreedom == 0 {
		return time.Time{}
	}
	return now.AddDate(0, s.MonthsToFreedom, 0)
}
