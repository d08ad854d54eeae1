// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/money"
)

// FormatMoney formats a whole-currency amount with locale grouping.
// e.g., 1234567 -> "1,234,567"
func FormatMoney(n int64) string {
	return money.Format(n)
}

// FormatSigned prefixes non-negative amounts with "+".
func FormatSigned(n int64) string {
	if n >= 0 {
		return "+" + FormatMoney(n)
	}
	return FormatMoney(n)
}

// FormatTxAmount shows income as "+n" and expense as "-n".
func FormatTxAmount(t model.Transaction) string {
	if t.Type == model.Income {
		return "+" + FormatMoney(t.Amount.Int64())
	}
	return "-" + FormatMoney(t.Amount.Int64())
}

// FormatRunway renders a survival projection, "∞" when infinite.
func FormatRunway(r model.Runway) string {
	if r.Infinite {
		return "∞"
	}
	return fmt.Sprintf("%.1f", r.Months)
}

// FormatPercent formats a 0-100 value as a whole percentage.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}

// FormatMonths renders a payoff horizon; zero means unknown.
func FormatMonths(n int) string {
	switch {
	case n <= 0:
		return "-"
	case n == 1:
		return "1 month"
	default:
		return fmt.Sprintf("%d months", n)
	}
}

// FormatMonth renders a calendar month, e.g. "Mar 2026".
func FormatMonth(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// FormatDate renders a date as YYYY-MM-DD, or "-" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

// FormatNeed labels an expense's need/want flag.
func FormatNeed(isNeed *bool) string {
	switch {
	case isNeed == nil:
		return ""
	case *isNeed:
		return "need"
	default:
		return "want"
	}
}

// FormatFeelings joins tags for a table cell.
func FormatFeelings(feelings []string) string {
	return strings.Join(feelings, ", ")
}

// FormatMood renders a mood pointer, "-" when unset.
func FormatMood(m *model.Mood) string {
	if m == nil {
		return "-"
	}
	return m.Label()
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
