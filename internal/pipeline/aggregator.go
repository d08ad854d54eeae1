// Package pipeline derives statistics from the ledgers: monthly buckets,
// calendar projections, debt summaries and the survival runway.
package pipeline

import (
	"math"
	"sort"
	"time"

	"github.com/theirongolddev/rebalance/internal/model"
)

type monthKey struct {
	year, month int
}

type bucket struct {
	stats     model.MonthlyStats
	spendDays map[int]struct{}
}

// AggregateMonths computes one MonthlyStats per (year, month) present in
// txs, most recent month first. Input order does not matter.
func AggregateMonths(txs []model.Transaction) []model.MonthlyStats {
	buckets := make(map[monthKey]*bucket)

	for _, t := range txs {
		k := monthKey{t.Year, t.Month}
		b, ok := buckets[k]
		if !ok {
			b = newBucket(t.Year, t.Month)
			buckets[k] = b
		}
		b.add(t)
	}

	months := make([]model.MonthlyStats, 0, len(buckets))
	for _, b := range buckets {
		months = append(months, b.finish())
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year > months[j].Year
		}
		return months[i].Month > months[j].Month
	})
	return months
}

// MonthStats computes the statistics for a single month. A month with no
// transactions yields zero sums and every day counted as zero-spend.
func MonthStats(txs []model.Transaction, year, month int) model.MonthlyStats {
	b := newBucket(year, month)
	for _, t := range txs {
		if t.InMonth(year, month) {
			b.add(t)
		}
	}
	return b.finish()
}

func newBucket(year, month int) *bucket {
	return &bucket{
		stats: model.MonthlyStats{
			Year:          year,
			Month:         month,
			FeelingCounts: make(map[string]int),
		},
		spendDays: make(map[int]struct{}),
	}
}

func (b *bucket) add(t model.Transaction) {
	s := &b.stats
	s.TransactionCount++
	amount := t.Amount.Int64()

	switch t.Type {
	case model.Income:
		s.Income += amount
	case model.Expense:
		s.Expense += amount
		b.spendDays[t.Day] = struct{}{}
		// Expenses without a need/want flag count toward neither side.
		if t.IsNeed != nil {
			if *t.IsNeed {
				s.NeedExpense += amount
			} else {
				s.WantExpense += amount
			}
		}
	}

	for _, f := range t.Feelings {
		s.FeelingCounts[f]++
	}
}

func (b *bucket) finish() model.MonthlyStats {
	s := b.stats
	s.Balance = s.Income - s.Expense

	spendDays := len(b.spendDays)
	s.ZeroSpendDays = DaysInMonth(s.Year, s.Month) - spendDays
	if s.ZeroSpendDays < 0 {
		s.ZeroSpendDays = 0
	}
	if spendDays > 0 {
		s.DailyAverage = roundHalfUp(float64(s.Expense) / float64(spendDays))
	}
	return s
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Top3Expenses returns the month's three largest expenses. Equal amounts
// keep their list order.
func Top3Expenses(txs []model.Transaction, year, month int) []model.Transaction {
	var expenses []model.Transaction
	for _, t := range txs {
		if t.IsExpense() && t.InMonth(year, month) {
			expenses = append(expenses, t)
		}
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount > expenses[j].Amount
	})
	if len(expenses) > 3 {
		expenses = expenses[:3]
	}
	return expenses
}

// TopFeelings ranks a month's feeling tags by frequency, capped at limit
// (limit <= 0 means no cap). Equal counts sort by tag so the result does not
// depend on map order.
func TopFeelings(s model.MonthlyStats, limit int) []model.FeelingCount {
	out := make([]model.FeelingCount, 0, len(s.FeelingCounts))
	for f, n := range s.FeelingCounts {
		out = append(out, model.FeelingCount{Feeling: f, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Feeling < out[j].Feeling
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// NeedPercent is the rounded share of the month's expense marked as need.
func NeedPercent(s model.MonthlyStats) int64 {
	if s.Expense <= 0 {
		return 0
	}
	return roundHalfUp(float64(s.NeedExpense) / float64(s.Expense) * 100)
}

// Calendar returns one DayData per day of the month, 1 through the last day.
func Calendar(txs []model.Transaction, year, month int) []model.DayData {
	days := make([]model.DayData, DaysInMonth(year, month))
	for i := range days {
		days[i] = model.DayData{Day: i + 1, Month: month, Year: year}
	}
	for _, t := range txs {
		if !t.InMonth(year, month) || t.Day < 1 || t.Day > len(days) {
			continue
		}
		d := &days[t.Day-1]
		d.Items = append(d.Items, t)
		if t.IsExpense() {
			d.Spend += t.Amount.Int64()
		}
	}
	return days
}

// DayView returns the transactions of a single day with their summed expense.
func DayView(txs []model.Transaction, year, month, day int) model.DayData {
	d := model.DayData{Day: day, Month: month, Year: year}
	for _, t := range txs {
		if t.Day == day && t.InMonth(year, month) {
			d.Items = append(d.Items, t)
			if t.IsExpense() {
				d.Spend += t.Amount.Int64()
			}
		}
	}
	return d
}

// roundHalfUp rounds halves toward positive infinity.
func roundHalfUp(f float64) int64 {
	return int64(math.Floor(f + 0.5))
}
