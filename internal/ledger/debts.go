package ledger

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/money"
)

const (
	// DefaultDebtName labels a debt created without a name.
	DefaultDebtName = "New debt"

	// HighPriorityCount is how many debts, by interest rate, are flagged.
	HighPriorityCount = 3

	paymentNote = "Recorded automatically by one-click pay"
)

// DebtField names an editable debt attribute.
type DebtField string

const (
	FieldName       DebtField = "name"
	FieldTotal      DebtField = "total"
	FieldRemaining  DebtField = "remaining"
	FieldMonthlyPay DebtField = "monthlyPay"
	FieldInterest   DebtField = "interest"
	FieldDate       DebtField = "date"
)

var fieldAliases = map[string]DebtField{
	"name":        FieldName,
	"total":       FieldTotal,
	"remaining":   FieldRemaining,
	"monthlypay":  FieldMonthlyPay,
	"monthly-pay": FieldMonthlyPay,
	"monthly_pay": FieldMonthlyPay,
	"pay":         FieldMonthlyPay,
	"interest":    FieldInterest,
	"rate":        FieldInterest,
	"date":        FieldDate,
	"due":         FieldDate,
}

// ParseDebtField resolves a field name, accepting a few spellings.
func ParseDebtField(s string) (DebtField, error) {
	if f, ok := fieldAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("unknown debt field %q", s)
}

// NewDebt returns a debt with zeroed amounts, due on the 1st.
func NewDebt(id int64, name string) model.Debt {
	if strings.TrimSpace(name) == "" {
		name = DefaultDebtName
	}
	return model.Debt{ID: id, Name: name, Interest: "0", Date: "1"}
}

// AddDebt appends d.
func AddDebt(debts []model.Debt, d model.Debt) []model.Debt {
	out := make([]model.Debt, 0, len(debts)+1)
	out = append(out, debts...)
	return append(out, d)
}

// UpdateDebt sets one field on the debt with the given id. Amount fields are
// read with money.SafeInt; text fields are stored as given. An unknown id
// leaves the list unchanged.
func UpdateDebt(debts []model.Debt, id int64, field DebtField, value string) []model.Debt {
	out := make([]model.Debt, len(debts))
	copy(out, debts)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		switch field {
		case FieldName:
			out[i].Name = value
		case FieldTotal:
			out[i].Total = money.Amount(money.SafeInt(value))
		case FieldRemaining:
			out[i].Remaining = money.Amount(money.SafeInt(value))
		case FieldMonthlyPay:
			out[i].MonthlyPay = money.Amount(money.SafeInt(value))
		case FieldInterest:
			out[i].Interest = value
		case FieldDate:
			out[i].Date = value
		}
	}
	return out
}

// RemoveDebt drops the debt with the given id, if any.
func RemoveDebt(debts []model.Debt, id int64) []model.Debt {
	out := make([]model.Debt, 0, len(debts))
	for _, d := range debts {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return out
}

// FindDebt returns the debt with the given id.
func FindDebt(debts []model.Debt, id int64) (model.Debt, bool) {
	for _, d := range debts {
		if d.ID == id {
			return d, true
		}
	}
	return model.Debt{}, false
}

// Pay applies one monthly payment: the remaining balance drops by
// MonthlyPay (never below zero), LastPaid becomes now, and a matching need
// expense is produced. With no monthly payment set it returns
// ErrNoMonthlyPayment and leaves d untouched.
func Pay(d model.Debt, now time.Time, mood *model.Mood, txID int64) (model.Debt, model.Transaction, error) {
	pay := d.MonthlyPay.Int64()
	if pay <= 0 {
		return d, model.Transaction{}, ErrNoMonthlyPayment
	}

	remaining := d.Remaining.Int64() - pay
	if remaining < 0 {
		remaining = 0
	}
	paidAt := now.UTC().Truncate(time.Millisecond)

	updated := d
	updated.Remaining = money.Amount(remaining)
	updated.LastPaid = &paidAt

	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = DefaultDebtName
	}
	tx := model.Transaction{
		ID:         txID,
		Date:       paidAt,
		Day:        now.Day(),
		Month:      int(now.Month()),
		Year:       now.Year(),
		Type:       model.Expense,
		Name:       "Repayment: " + name,
		Amount:     money.Amount(pay),
		IsNeed:     model.Bool(true),
		Feelings:   []string{},
		Note:       paymentNote,
		MoodAtTime: mood,
	}
	return updated, tx, nil
}

// ApplyPayment runs Pay on the debt with the given id and returns both
// updated collections together. On any failure neither collection changes.
func ApplyPayment(
	debts []model.Debt,
	txs []model.Transaction,
	id int64,
	now time.Time,
	mood *model.Mood,
) ([]model.Debt, []model.Transaction, model.Transaction, error) {
	d, ok := FindDebt(debts, id)
	if !ok {
		return debts, txs, model.Transaction{}, &model.ValidationError{
			Op: "pay debt", Reason: fmt.Sprintf("no debt with id %d", id),
		}
	}

	updated, tx, err := Pay(d, now, mood, NextID(now, IDs(debts, txs)...))
	if err != nil {
		return debts, txs, model.Transaction{}, err
	}

	newDebts := make([]model.Debt, len(debts))
	copy(newDebts, debts)
	for i := range newDebts {
		if newDebts[i].ID == id {
			newDebts[i] = updated
		}
	}
	return newDebts, AddTransaction(txs, tx), tx, nil
}

// IsPaidOff reports whether nothing remains on the debt.
func IsPaidOff(d model.Debt) bool { return d.Remaining.Int64() <= 0 }

// IsPaidThisCalendarMonth reports whether the last one-click payment fell in
// the same calendar month as now (in now's location).
func IsPaidThisCalendarMonth(d model.Debt, now time.Time) bool {
	if d.LastPaid == nil {
		return false
	}
	lp := d.LastPaid.In(now.Location())
	return lp.Year() == now.Year() && lp.Month() == now.Month()
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)

// ParseInterest reads the leading decimal of a rate string such as "3.5" or
// "12%". Unreadable rates count as zero.
func ParseInterest(s string) decimal.Decimal {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(m, "."))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// PriorityRanking returns the ids of the high-priority debts: the top
// HighPriorityCount of all debts by descending interest (equal rates keep
// list order), minus any already paid off.
func PriorityRanking(debts []model.Debt) map[int64]bool {
	ranked := make([]model.Debt, len(debts))
	copy(ranked, debts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ParseInterest(ranked[i].Interest).GreaterThan(ParseInterest(ranked[j].Interest))
	})
	if len(ranked) > HighPriorityCount {
		ranked = ranked[:HighPriorityCount]
	}

	ids := make(map[int64]bool, len(ranked))
	for _, d := range ranked {
		if !IsPaidOff(d) {
			ids[d.ID] = true
		}
	}
	return ids
}

// MonthsToPayoff is ceil(Remaining / MonthlyPay). It returns 0 when no
// monthly payment is set, which callers read as "unknown".
func MonthsToPayoff(d model.Debt) int {
	pay := d.MonthlyPay.Int64()
	remaining := d.Remaining.Int64()
	if pay <= 0 || remaining <= 0 {
		return 0
	}
	return int((remaining + pay - 1) / pay)
}

// ProjectedPayoffDate advances from by MonthsToPayoff calendar months.
func ProjectedPayoffDate(d model.Debt, from time.Time) time.Time {
	return from.AddDate(0, MonthsToPayoff(d), 0)
}

// TotalOutstanding sums remaining balances.
func TotalOutstanding(debts []model.Debt) int64 {
	var sum int64
	for _, d := range debts {
		sum += d.Remaining.Int64()
	}
	return sum
}

// TotalMonthlyPayment sums scheduled monthly payments.
func TotalMonthlyPayment(debts []model.Debt) int64 {
	var sum int64
	for _, d := range debts {
		sum += d.MonthlyPay.Int64()
	}
	return sum
}

// OverallProgress is the percentage of the original balances already repaid.
// A debt's original balance is max(Total, Remaining), so debts whose total
// was never entered count from their current balance. Returns 0 when there
// is nothing to measure against.
func OverallProgress(debts []model.Debt) float64 {
	var baseline, remaining int64
	for _, d := range debts {
		r := d.Remaining.Int64()
		base := d.Total.Int64()
		if r > base {
			base = r
		}
		baseline += base
		remaining += r
	}
	if baseline == 0 {
		return 0
	}
	return float64(baseline-remaining) / float64(baseline) * 100
}

// PaidOffCount counts debts with nothing remaining.
func PaidOffCount(debts []model.Debt) int {
	n := 0
	for _, d := range debts {
		if IsPaidOff(d) {
			n++
		}
	}
	return n
}

// MonthsToFreedom is the longest payoff horizon across all debts.
func MonthsToFreedom(debts []model.Debt) int {
	longest := 0
	for _, d := range debts {
		if m := MonthsToPayoff(d); m > longest {
			longest = m
		}
	}
	return longest
}

// DueOn returns debts whose due day-of-month is day.
func DueOn(debts []model.Debt, day int) []model.Debt {
	var out []model.Debt
	for _, d := range debts {
		if money.SafeInt(d.Date) == int64(day) {
			out = append(out, d)
		}
	}
	return out
}
