// Package model defines the domain types for rebalance: transactions, debts,
// settings and the derived statistics computed from them.
package model

import (
	"time"

	"github.com/theirongolddev/rebalance/internal/money"
)

// TxType distinguishes money coming in from money going out.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// Valid reports whether t is one of the known types.
func (t TxType) Valid() bool { return t == Income || t == Expense }

// Transaction is a single cash-flow event. Day, Month and Year are derived
// from Date once, at creation, and are what aggregation buckets on.
type Transaction struct {
	ID         int64        `json:"id"`
	Date       time.Time    `json:"date"`
	Day        int          `json:"day"`
	Month      int          `json:"month"`
	Year       int          `json:"year"`
	Type       TxType       `json:"type"`
	Name       string       `json:"name"`
	Amount     money.Amount `json:"amount"`
	IsNeed     *bool        `json:"isNeed"`
	Feelings   []string     `json:"feelings"`
	Note       string       `json:"note"`
	MoodAtTime *Mood        `json:"moodAtTime"`
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool { return t.Type == Expense }

// InMonth reports whether the transaction falls in the given calendar month.
func (t Transaction) InMonth(year, month int) bool {
	return t.Year == year && t.Month == month
}

// Debt is a liability being paid down. Interest and Date (the due
// day-of-month) stay string-encoded as entered.
type Debt struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Total      money.Amount `json:"total"`
	Remaining  money.Amount `json:"remaining"`
	MonthlyPay money.Amount `json:"monthlyPay"`
	Interest   string       `json:"interest"`
	Date       string       `json:"date"`
	LastPaid   *time.Time   `json:"lastPaid,omitempty"`
}

// Settings holds the runway configuration.
type Settings struct {
	IncludeDebtInSurvival bool         `json:"includeDebtInSurvival"`
	SurvivalCost          money.Amount `json:"survivalCost"`
}

// TransactionForm is raw input from a form or the command line.
type TransactionForm struct {
	Type     TxType
	Amount   string
	Name     string
	Note     string
	IsNeed   bool
	Feelings []string
}

// AppData is the full persisted state and the JSON export format.
type AppData struct {
	Mood         *Mood         `json:"mood"`
	Savings      money.Amount  `json:"savings"`
	Investments  money.Amount  `json:"investments"`
	Debts        []Debt        `json:"debts"`
	Transactions []Transaction `json:"transactions"`
	Settings     Settings      `json:"settings"`
}

// DayData is one calendar day with its transactions and summed expense.
type DayData struct {
	Day   int
	Month int
	Year  int
	Items []Transaction
	Spend int64
}

// FeelingTags is the default tag palette offered when recording a
// transaction. Feelings are free text; these are suggestions.
var FeelingTags = []string{
	"grateful", "happy", "joyful", "relieved", "numb", "anxious", "angry", "guilty",
}

// ToggleFeeling removes tag from feelings if present, otherwise appends it.
// The input slice is not modified.
func ToggleFeeling(feelings []string, tag string) []string {
	out := make([]string, 0, len(feelings)+1)
	found := false
	for _, f := range feelings {
		if f == tag {
			found = true
			continue
		}
		out = append(out, f)
	}
	if !found {
		out = append(out, tag)
	}
	return out
}

// Bool returns a pointer to b, for IsNeed.
func Bool(b bool) *bool { return &b }
