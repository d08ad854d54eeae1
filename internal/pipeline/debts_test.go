package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/rebalance/internal/model"
)

func TestSummarizeDebts(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	paid := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	debts := []model.Debt{
		{ID: 1, Total: 300000, Remaining: 240000, MonthlyPay: 8000, Interest: "3.5", Date: "5", LastPaid: &paid},
		{ID: 2, Total: 1000, Remaining: 0, MonthlyPay: 100, Interest: "20"},
		{ID: 3, Total: 0, Remaining: 500, Interest: "1"},
	}

	s := SummarizeDebts(debts, now)
	assert.Equal(t, int64(240500), s.TotalOutstanding)
	assert.Equal(t, int64(8100), s.TotalMonthlyPayment)
	assert.Equal(t, 1, s.PaidOffCount)
	assert.Equal(t, 30, s.MonthsToFreedom)
	require.Len(t, s.Plans, 3)

	assert.True(t, s.Plans[0].HighPriority)
	assert.True(t, s.Plans[0].PaidThisMonth)
	assert.Equal(t, time.Date(2028, 9, 10, 0, 0, 0, 0, time.UTC), s.Plans[0].PayoffDate)

	assert.False(t, s.Plans[1].HighPriority, "paid-off debts are never flagged")
	assert.True(t, s.Plans[1].PaidOff)

	assert.Zero(t, s.Plans[2].MonthsToPayoff)
	assert.True(t, s.Plans[2].PayoffDate.IsZero())

	assert.Equal(t, time.Date(2028, 9, 10, 0, 0, 0, 0, time.UTC), FreedomDate(s, now))
	assert.True(t, FreedomDate(model.DebtSummary{}, now).IsZero())
}
