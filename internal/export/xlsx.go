package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/rebalance/internal/model"
)

const (
	sheetTransactions = "Transactions"
	sheetDebts        = "Debts"
	sheetSettings     = "Settings"
)

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

type styles struct {
	header, data, summary int
}

// XLSX writes a workbook with one sheet per report section. The
// transactions sheet ends with an income/expense totals row.
func XLSX(w io.Writer, data model.AppData) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	if err := f.SetSheetName("Sheet1", sheetTransactions); err != nil {
		return err
	}
	for _, name := range []string{sheetDebts, sheetSettings} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	if err := writeTransactions(f, st, data.Transactions); err != nil {
		return fmt.Errorf("transactions sheet: %w", err)
	}
	if err := writeSheet(f, st, sheetDebts, debtHeaders, debtRows(data.Debts)); err != nil {
		return fmt.Errorf("debts sheet: %w", err)
	}
	if err := writeSheet(f, st, sheetSettings, settingsHeaders, settingsRows(data)); err != nil {
		return fmt.Errorf("settings sheet: %w", err)
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error
	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
	if err != nil {
		return st, err
	}
	st.data, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    thinBorder,
	})
	if err != nil {
		return st, err
	}
	st.summary, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
	return st, err
}

// writeSheet fills a sheet with a styled header row followed by rows.
// Cells that hold whole numbers are written as numbers.
func writeSheet(f *excelize.File, st styles, sheet string, header []string, rows [][]string) error {
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}
	last := columnName(len(header))
	if err := f.SetCellStyle(sheet, "A1", last+"1", st.header); err != nil {
		return err
	}
	for i := 1; i <= len(header); i++ {
		width := 14.0
		if n := len(header[i-1]); float64(n)+4 > width {
			width = float64(n) + 4
		}
		if err := f.SetColWidth(sheet, columnName(i), columnName(i), width); err != nil {
			return err
		}
	}

	for i, r := range rows {
		row := i + 2
		if err := writeRow(f, sheet, row, r); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", last, row), st.data); err != nil {
			return err
		}
	}
	return nil
}

func writeTransactions(f *excelize.File, st styles, txs []model.Transaction) error {
	if err := writeSheet(f, st, sheetTransactions, txHeaders, transactionRows(txs)); err != nil {
		return err
	}

	var income, expense int64
	for _, t := range txs {
		if t.Type == model.Income {
			income += t.Amount.Int64()
		} else {
			expense += t.Amount.Int64()
		}
	}

	row := len(txs) + 2
	cells := []struct {
		col   string
		value any
	}{
		{"A", "Total"},
		{"E", "Income"},
		{"F", income},
		{"G", "Expense"},
		{"H", expense},
		{"J", fmt.Sprintf("%d records", len(txs))},
	}
	for _, c := range cells {
		if err := f.SetCellValue(sheetTransactions, fmt.Sprintf("%s%d", c.col, row), c.value); err != nil {
			return err
		}
	}
	if err := f.MergeCell(sheetTransactions, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row)); err != nil {
		return err
	}
	last := columnName(len(txHeaders))
	return f.SetCellStyle(sheetTransactions, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", last, row), st.summary)
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for i, v := range values {
		cell := fmt.Sprintf("%s%d", columnName(i+1), row)
		var err error
		if n, ok := wholeNumber(v); ok {
			err = f.SetCellValue(sheet, cell, n)
		} else {
			err = f.SetCellValue(sheet, cell, v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func columnName(n int) string {
	name, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return "A"
	}
	return name
}

func wholeNumber(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil
}
