package export

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/rebalance/internal/model"
)

// BOM marks the CSV as UTF-8 for spreadsheet programs.
const BOM = "\ufeff"

// DateLayout is how transaction dates appear in reports.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	txHeaders       = []string{"Date", "Year", "Month", "Day", "Type", "Name", "Amount", "Need/Want", "Feelings", "Note"}
	debtHeaders     = []string{"Name", "Total", "Remaining", "Monthly payment", "Interest %", "Due day"}
	settingsHeaders = []string{"Setting", "Value"}
)

var sanitizer = strings.NewReplacer(",", "，", "\r\n", " ", "\n", " ", "\r", " ")

// Sanitize replaces commas with full-width commas and line breaks with
// spaces so a value can sit in one report cell unquoted.
func Sanitize(s string) string { return sanitizer.Replace(s) }

// CSV writes the three-section report: transactions, debts and a settings
// snapshot, separated by blank lines.
func CSV(w io.Writer, data model.AppData) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(bw)

	sections := []struct {
		title  string
		header []string
		rows   [][]string
	}{
		{"Transactions", txHeaders, transactionRows(data.Transactions)},
		{"Debts", debtHeaders, debtRows(data.Debts)},
		{"Settings", settingsHeaders, settingsRows(data)},
	}

	for i, sec := range sections {
		if i > 0 {
			cw.Flush()
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}
		if err := cw.Write([]string{"=== " + sec.title + " ==="}); err != nil {
			return err
		}
		if err := cw.Write(sec.header); err != nil {
			return err
		}
		if err := cw.WriteAll(sec.rows); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

func transactionRows(txs []model.Transaction) [][]string {
	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, []string{
			formatDate(t.Date),
			strconv.Itoa(t.Year),
			strconv.Itoa(t.Month),
			strconv.Itoa(t.Day),
			typeLabel(t.Type),
			Sanitize(t.Name),
			strconv.FormatInt(t.Amount.Int64(), 10),
			needLabel(t.IsNeed),
			Sanitize(strings.Join(t.Feelings, ";")),
			Sanitize(t.Note),
		})
	}
	return rows
}

func debtRows(debts []model.Debt) [][]string {
	rows := make([][]string, 0, len(debts))
	for _, d := range debts {
		rows = append(rows, []string{
			Sanitize(d.Name),
			strconv.FormatInt(d.Total.Int64(), 10),
			strconv.FormatInt(d.Remaining.Int64(), 10),
			strconv.FormatInt(d.MonthlyPay.Int64(), 10),
			Sanitize(d.Interest),
			Sanitize(d.Date),
		})
	}
	return rows
}

func settingsRows(data model.AppData) [][]string {
	return [][]string{
		{"Savings", strconv.FormatInt(data.Savings.Int64(), 10)},
		{"Investments", strconv.FormatInt(data.Investments.Int64(), 10)},
		{"Monthly survival cost", strconv.FormatInt(data.Settings.SurvivalCost.Int64(), 10)},
		{"Include debt in survival", yesNo(data.Settings.IncludeDebtInSurvival)},
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

func typeLabel(t model.TxType) string {
	if t == model.Income {
		return "Income"
	}
	return "Expense"
}

func needLabel(isNeed *bool) string {
	switch {
	case isNeed == nil:
		return ""
	case *isNeed:
		return "Need"
	default:
		return "Want"
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
