package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/pipeline"
)

var (
	flagInsightMonth    string
	flagInsightFeelings int
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Where the money went and how it felt",
	Args:  cobra.NoArgs,
	RunE:  runInsight,
}

func init() {
	insightCmd.Flags().StringVar(&flagInsightMonth, "month", "", "Month, YYYY-MM (default current)")
	insightCmd.Flags().IntVar(&flagInsightFeelings, "feelings", 6, "How many feeling tags to show")
	rootCmd.AddCommand(insightCmd)
}

func runInsight(_ *cobra.Command, _ []string) error {
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	year, month, err := parseMonth(flagInsightMonth, s.app.Now())
	if err != nil {
		return err
	}
	txs := s.app.Snapshot().Transactions
	m := pipeline.MonthStats(txs, year, month)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("INSIGHT  %s", cli.FormatMonth(year, month))))
	fmt.Println()

	fmt.Print(cli.RenderKV([][2]string{
		{"Spent", cli.FormatMoney(m.Expense)},
		{"Need / want", fmt.Sprintf("%s / %s", cli.FormatMoney(m.NeedExpense), cli.FormatMoney(m.WantExpense))},
		{"Zero-spend days", fmt.Sprintf("%d", m.ZeroSpendDays)},
		{"Daily average", cli.FormatMoney(m.DailyAverage)},
	}))
	fmt.Printf("\n  need %s want  %d%% need\n\n",
		cli.RenderSplitBar(m.NeedExpense, m.WantExpense, 30), pipeline.NeedPercent(m))

	top := pipeline.Top3Expenses(txs, year, month)
	if len(top) > 0 {
		rows := make([][]string, 0, len(top))
		for i, t := range top {
			rows = append(rows, []string{
				fmt.Sprintf("%d. %s", i+1, t.Name),
				cli.FormatMoney(t.Amount.Int64()),
				cli.FormatNeed(t.IsNeed),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Largest expenses",
			Headers: []string{"Name", "Amount", "Need"},
			Rows:    rows,
		}))
	}

	feelings := pipeline.TopFeelings(m, flagInsightFeelings)
	if len(feelings) == 0 {
		fmt.Println("  No feelings tagged this month.")
		return nil
	}
	parts := make([]string, len(feelings))
	for i, f := range feelings {
		parts[i] = fmt.Sprintf("%s ×%d", f.Feeling, f.Count)
	}
	fmt.Printf("\n  Feelings  %s\n", strings.Join(parts, "  "))
	return nil
}
