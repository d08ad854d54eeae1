package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/money"
)

func income(id int64, year, month, day int, amount int64) model.Transaction {
	return model.Transaction{
		ID: id, Year: year, Month: month, Day: day,
		Type: model.Income, Amount: money.Amount(amount), Feelings: []string{},
	}
}

func expense(id int64, year, month, day int, amount int64, need *bool, feelings ...string) model.Transaction {
	return model.Transaction{
		ID: id, Year: year, Month: month, Day: day,
		Type: model.Expense, Amount: money.Amount(amount), IsNeed: need, Feelings: feelings,
	}
}

func TestMonthStatsScenario(t *testing.T) {
	txs := []model.Transaction{
		income(1, 2026, 3, 1, 5000),
		expense(2, 2026, 3, 2, 2000, model.Bool(true)),
	}
	s := MonthStats(txs, 2026, 3)

	assert.Equal(t, int64(3000), s.Balance)
	assert.Equal(t, int64(2000), s.NeedExpense)
	assert.Equal(t, int64(0), s.WantExpense)
	assert.Equal(t, int64(100), NeedPercent(s))
	assert.Equal(t, 2, s.TransactionCount)
	assert.Equal(t, 30, s.ZeroSpendDays)
	assert.Equal(t, int64(2000), s.DailyAverage)
}

func TestMonthStatsEmpty(t *testing.T) {
	s := MonthStats(nil, 2024, 2)
	assert.Zero(t, s.Income)
	assert.Zero(t, s.Expense)
	assert.Zero(t, s.DailyAverage)
	assert.Equal(t, 29, s.ZeroSpendDays)
	assert.Zero(t, NeedPercent(s))
}

func TestAggregateMonthsOrderAndInvariants(t *testing.T) {
	txs := []model.Transaction{
		expense(1, 2025, 12, 31, 300, model.Bool(false), "guilty"),
		income(2, 2026, 1, 5, 1000),
		expense(3, 2026, 2, 3, 100, model.Bool(true), "happy", "relieved"),
		expense(4, 2026, 2, 3, 50, model.Bool(false), "happy"),
		expense(5, 2026, 2, 10, 25, model.Bool(true)),
		income(6, 2025, 12, 1, 200),
	}
	months := AggregateMonths(txs)
	require.Len(t, months, 3)

	assert.Equal(t, [2]int{2026, 2}, [2]int{months[0].Year, months[0].Month})
	assert.Equal(t, [2]int{2026, 1}, [2]int{months[1].Year, months[1].Month})
	assert.Equal(t, [2]int{2025, 12}, [2]int{months[2].Year, months[2].Month})

	for _, m := range months {
		assert.Equal(t, m.Income-m.Expense, m.Balance)
		assert.Equal(t, m.Expense, m.NeedExpense+m.WantExpense)
	}

	feb := months[0]
	assert.Equal(t, int64(175), feb.Expense)
	assert.Equal(t, 26, feb.ZeroSpendDays)
	assert.Equal(t, int64(88), feb.DailyAverage) // 87.5 rounds up
	assert.Equal(t, map[string]int{"happy": 2, "relieved": 1}, feb.FeelingCounts)

	jan := months[1]
	assert.Equal(t, 31, jan.ZeroSpendDays, "income days are not spend days")
}

func TestAggregateMonthsIgnoresListOrder(t *testing.T) {
	txs := []model.Transaction{
		expense(1, 2026, 2, 3, 100, model.Bool(true), "a"),
		income(2, 2026, 2, 5, 1000),
		expense(3, 2026, 2, 4, 40, model.Bool(false), "b", "a"),
	}
	reversed := []model.Transaction{txs[2], txs[1], txs[0]}
	assert.Equal(t, AggregateMonths(txs), AggregateMonths(reversed))
}

func TestNullNeedCountsInNeitherBucket(t *testing.T) {
	txs := []model.Transaction{
		expense(1, 2026, 2, 3, 100, nil),
		expense(2, 2026, 2, 3, 40, model.Bool(false)),
	}
	s := MonthStats(txs, 2026, 2)
	assert.Equal(t, int64(140), s.Expense)
	assert.Equal(t, int64(0), s.NeedExpense)
	assert.Equal(t, int64(40), s.WantExpense)
}

func TestTop3Expenses(t *testing.T) {
	txs := []model.Transaction{
		expense(1, 2026, 2, 1, 10, nil),
		expense(2, 2026, 2, 1, 90, nil),
		income(3, 2026, 2, 1, 500),
		expense(4, 2026, 2, 1, 90, nil),
		expense(5, 2026, 2, 1, 30, nil),
		expense(6, 2026, 3, 1, 999, nil),
	}
	top := Top3Expenses(txs, 2026, 2)
	require.Len(t, top, 3)
	assert.Equal(t, []int64{2, 4, 5}, []int64{top[0].ID, top[1].ID, top[2].ID})
}

func TestTopFeelings(t *testing.T) {
	s := model.MonthlyStats{FeelingCounts: map[string]int{"numb": 1, "happy": 3, "anxious": 3, "angry": 2}}
	got := TopFeelings(s, 3)
	assert.Equal(t, []model.FeelingCount{
		{Feeling: "anxious", Count: 3},
		{Feeling: "happy", Count: 3},
		{Feeling: "angry", Count: 2},
	}, got)
	assert.Len(t, TopFeelings(s, 0), 4)
}

func TestCalendar(t *testing.T) {
	txs := []model.Transaction{
		expense(1, 2026, 2, 14, 300, model.Bool(false)),
		income(2, 2026, 2, 14, 1000),
		expense(3, 2026, 2, 28, 20, model.Bool(true)),
		expense(4, 2026, 3, 14, 77, model.Bool(true)),
	}
	days := Calendar(txs, 2026, 2)
	require.Len(t, days, 28)
	assert.Equal(t, 1, days[0].Day)
	assert.Len(t, days[13].Items, 2)
	assert.Equal(t, int64(300), days[13].Spend)
	assert.Equal(t, int64(20), days[27].Spend)

	d := DayView(txs, 2026, 2, 14)
	assert.Equal(t, days[13], d)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 28, DaysInMonth(2100, 2))
	assert.Equal(t, 31, DaysInMonth(2026, 12))
	assert.Equal(t, 30, DaysInMonth(2026, 4))
}
