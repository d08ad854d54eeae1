package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/rebalance/internal/model"
)

func TestFormatters(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatMoney(1234567))
	assert.Equal(t, "+3,000", FormatSigned(3000))
	assert.Equal(t, "-250", FormatSigned(-250))
	assert.Equal(t, "+0", FormatSigned(0))

	assert.Equal(t, "∞", FormatRunway(model.Runway{Infinite: true}))
	assert.Equal(t, "6.2", FormatRunway(model.Runway{Months: 6.2}))

	assert.Equal(t, "-", FormatMonths(0))
	assert.Equal(t, "1 month", FormatMonths(1))
	assert.Equal(t, "30 months", FormatMonths(30))

	assert.Equal(t, "Mar 2026", FormatMonth(2026, 3))
	assert.Equal(t, "-", FormatDate(time.Time{}))
	assert.Equal(t, "need", FormatNeed(model.Bool(true)))
	assert.Equal(t, "", FormatNeed(nil))
	assert.Equal(t, "-", FormatMood(nil))
	assert.Equal(t, "Hope", FormatMood(model.MoodPtr(model.MoodHope)))

	assert.Equal(t, "+5,000", FormatTxAmount(model.Transaction{Type: model.Income, Amount: 5000}))
	assert.Equal(t, "-12", FormatTxAmount(model.Transaction{Type: model.Expense, Amount: 12}))
}

func TestRenderTableAlignsWideRunes(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Name", "Amount"},
		Rows: [][]string{
			{"早餐", "80"},
			{"coffee", "1,200"},
		},
	})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 6)
	width := lipgloss.Width(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, lipgloss.Width(l), l)
	}
}

func TestRenderProgressBarClamps(t *testing.T) {
	assert.Contains(t, RenderProgressBar(150, 10), "100%")
	assert.Contains(t, RenderProgressBar(-5, 10), "0%")
}

func TestRenderSparkline(t *testing.T) {
	assert.Equal(t, "▁█", RenderSparkline([]float64{0, 10}))
	assert.Empty(t, RenderSparkline(nil))
}
