package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/pipeline"
)

var monthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "Statistics for one month",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)
}

func runMonth(_ *cobra.Command, args []string) error {
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	v := ""
	if len(args) == 1 {
		v = args[0]
	}
	year, month, err := parseMonth(v, s.app.Now())
	if err != nil {
		return err
	}
	m := s.app.Month(year, month)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTH  %s", cli.FormatMonth(year, month))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Income", cli.FormatMoney(m.Income)},
			{"Expense", cli.FormatMoney(m.Expense)},
			{"Balance", cli.FormatSigned(m.Balance)},
			{"---"},
			{"Need", cli.FormatMoney(m.NeedExpense)},
			{"Want", cli.FormatMoney(m.WantExpense)},
			{"Need share", fmt.Sprintf("%d%%", pipeline.NeedPercent(m))},
			{"---"},
			{"Transactions", fmt.Sprintf("%d", m.TransactionCount)},
			{"Zero-spend days", fmt.Sprintf("%d", m.ZeroSpendDays)},
			{"Daily average", cli.FormatMoney(m.DailyAverage)},
		},
	}))
	return nil
}
