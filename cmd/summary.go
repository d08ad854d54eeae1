package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/pipeline"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Overview of this month, your runway and your debts",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runOverview(_ *cobra.Command, _ []string) error {
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	a := s.app
	now := a.Now()
	snap := a.Snapshot()
	month := a.CurrentMonth()
	surv := a.Survival()
	debts := a.Debts()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("REBALANCE  %s", cli.FormatMonth(now.Year(), int(now.Month())))))
	fmt.Println()

	rows := [][]string{
		{"Mood", cli.FormatMood(snap.Mood)},
		{"---"},
		{"Income", cli.Income(cli.FormatMoney(month.Income))},
		{"Expense", cli.FormatMoney(month.Expense)},
		{"Balance", cli.FormatSigned(month.Balance)},
		{"Need share", fmt.Sprintf("%d%%", pipeline.NeedPercent(month))},
		{"---"},
		{"Liquid assets", cli.FormatMoney(surv.LiquidAssets)},
		{"Total assets", cli.FormatMoney(surv.TotalAssets)},
		{"Runway (months)", cli.FormatRunway(surv.Runway)},
		{"---"},
		{"Debt outstanding", cli.FormatMoney(debts.TotalOutstanding)},
		{"Debt progress", cli.FormatPercent(debts.ProgressPercent)},
		{"Debt-free in", cli.FormatMonths(debts.MonthsToFreedom)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	printDueToday(a.DueOn(now.Day()))
	return nil
}

func printDueToday(due []model.Debt) {
	if len(due) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("  Due today:")
	for _, d := range due {
		fmt.Printf("    %s  %s  (rebalance tx add --from-debt %d)\n",
			d.Name, cli.FormatMoney(d.MonthlyPay.Int64()), d.ID)
	}
}
