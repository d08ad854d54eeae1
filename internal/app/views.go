package app

import (
	"github.com/theirongolddev/rebalance/internal/ledger"
	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/pipeline"
)

// CurrentMonth aggregates the calendar month containing the clock's now.
func (a *App) CurrentMonth() model.MonthlyStats {
	now := a.clock.Now()
	return a.Month(now.Year(), int(now.Month()))
}

// Month aggregates one calendar month.
func (a *App) Month(year, month int) model.MonthlyStats {
	return pipeline.MonthStats(a.Snapshot().Transactions, year, month)
}

// Months aggregates every month with transactions, most recent first.
func (a *App) Months() []model.MonthlyStats {
	return pipeline.AggregateMonths(a.Snapshot().Transactions)
}

// Calendar projects one month onto its days.
func (a *App) Calendar(year, month int) []model.DayData {
	return pipeline.Calendar(a.Snapshot().Transactions, year, month)
}

// Day returns one day's transactions.
func (a *App) Day(year, month, day int) model.DayData {
	return pipeline.DayView(a.Snapshot().Transactions, year, month, day)
}

// Survival projects the runway as of the clock's now.
func (a *App) Survival() model.SurvivalStats {
	return pipeline.SurvivalFor(a.Snapshot(), a.clock.Now())
}

// Debts summarizes the debt list as of the clock's now.
func (a *App) Debts() model.DebtSummary {
	return pipeline.SummarizeDebts(a.Snapshot().Debts, a.clock.Now())
}

// DueOn lists debts whose due day is day.
func (a *App) DueOn(day int) []model.Debt {
	return ledger.DueOn(a.Snapshot().Debts, day)
}
