package model

import "time"

// MonthlyStats aggregates every transaction in one calendar month.
type MonthlyStats struct {
	Year             int
	Month            int
	Income           int64
	Expense          int64
	Balance          int64
	NeedExpense      int64
	WantExpense      int64
	TransactionCount int
	FeelingCounts    map[string]int
	ZeroSpendDays    int
	DailyAverage     int64
}

// FeelingCount is one entry of a ranked feeling-tag list.
type FeelingCount struct {
	Feeling string
	Count   int
}

// DebtPlan is the payoff projection for a single debt.
type DebtPlan struct {
	Debt           Debt
	MonthsToPayoff int
	PayoffDate     time.Time // zero when MonthsToPayoff is 0
	PaidOff        bool
	HighPriority   bool
	PaidThisMonth  bool
}

// DebtSummary rolls up the whole debt list.
type DebtSummary struct {
	TotalOutstanding    int64
	TotalMonthlyPayment int64
	ProgressPercent     float64
	PaidOffCount        int
	MonthsToFreedom     int
	Plans               []DebtPlan
}
