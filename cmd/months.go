package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/pipeline"
)

var flagMonthsLimit int

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "Income, expense and balance per month",
	Args:  cobra.NoArgs,
	RunE:  runMonths,
}

func init() {
	monthsCmd.Flags().IntVarP(&flagMonthsLimit, "limit", "n", 12, "Show at most this many months (0 for all)")
	rootCmd.AddCommand(monthsCmd)
}

func runMonths(_ *cobra.Command, _ []string) error {
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	months := s.app.Months()
	if len(months) == 0 {
		fmt.Println("\n  No transactions yet.")
		return nil
	}
	if flagMonthsLimit > 0 && len(months) > flagMonthsLimit {
		months = months[:flagMonthsLimit]
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHS"))
	fmt.Println()

	rows := make([][]string, 0, len(months))
	spend := make([]float64, len(months))
	for i, m := range months {
		rows = append(rows, []string{
			cli.FormatMonth(m.Year, m.Month),
			cli.FormatMoney(m.Income),
			cli.FormatMoney(m.Expense),
			cli.FormatSigned(m.Balance),
			fmt.Sprintf("%d%%", pipeline.NeedPercent(m)),
			cli.FormatMoney(m.DailyAverage),
			fmt.Sprintf("%d", m.ZeroSpendDays),
			fmt.Sprintf("%d", m.TransactionCount),
		})
		// oldest first for the trend line
		spend[len(months)-1-i] = float64(m.Expense)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Income", "Expense", "Balance", "Need", "Daily avg", "No-spend", "Count"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Spending trend  %s\n", cli.RenderSparkline(spend))
	return nil
}
