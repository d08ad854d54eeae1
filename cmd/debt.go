package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/ledger"
	"github.com/theirongolddev/rebalance/internal/pipeline"
)

var flagDebtForce bool

var debtCmd = &cobra.Command{
	Use:   "debt",
	Short: "Track debts and their payoff",
	RunE:  runDebtList,
}

var debtAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a debt (fill it in with `debt set`)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDebtAdd,
}

var debtSetCmd = &cobra.Command{
	Use:   "set <id> <field> <value>",
	Short: "Set one field: name, total, remaining, monthlyPay, interest or date",
	Example: `  rebalance debt set 1 remaining 240000
  rebalance debt set 1 interest 3.5
  rebalance debt set 1 date 5`,
	Args: cobra.ExactArgs(3),
	RunE: runDebtSet,
}

var debtPayCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Pay this month's installment and record it as an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtPay,
}

var debtRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a debt",
	Args:    cobra.ExactArgs(1),
	RunE:    runDebtRm,
}

var debtListCmd = &cobra.Command{
	Use:   "list",
	Short: "Debts with payoff projections",
	Args:  cobra.NoArgs,
	RunE:  runDebtList,
}

func init() {
	debtPayCmd.Flags().BoolVar(&flagDebtForce, "force", false, "Pay even if already paid this month")
	debtCmd.AddCommand(debtAddCmd, debtSetCmd, debtPayCmd, debtRmCmd, debtListCmd)
	rootCmd.AddCommand(debtCmd)
}

func runDebtAdd(_ *cobra.Command, args []string) error {
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	d := s.app.AddDebt(name)
	fmt.Printf("  Added %q (id %d)\n", d.Name, d.ID)
	return nil
}

func runDebtSet(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	field, err := ledger.ParseDebtField(args[1])
	if err != nil {
		return err
	}
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	if _, ok := s.app.Debt(id); !ok {
		fmt.Printf("  No debt with id %d.\n", id)
		return nil
	}
	s.app.UpdateDebt(id, field, args[2])
	fmt.Printf("  Set %s on debt %d.\n", field, id)
	return nil
}

func runDebtPay(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	d, ok := s.app.Debt(id)
	if !ok {
		return fmt.Errorf("no debt with id %d", id)
	}
	if ledger.IsPaidThisCalendarMonth(d, s.app.Now()) && !flagDebtForce {
		fmt.Printf("  %s is already paid this month (%s). Use --force to pay again.\n",
			d.Name, cli.FormatDate(d.LastPaid.In(s.app.Now().Location())))
		return nil
	}

	tx, err := s.app.PayDebt(id)
	if err != nil {
		return err
	}
	paid, _ := s.app.Debt(id)
	fmt.Printf("  Paid %s on %s. Remaining %s.\n",
		cli.FormatMoney(tx.Amount.Int64()), d.Name, cli.FormatMoney(paid.Remaining.Int64()))
	if ledger.IsPaidOff(paid) {
		fmt.Println("  " + cli.Income("Paid off!"))
	}
	return nil
}

func runDebtRm(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	s.app.RemoveDebt(id)
	fmt.Printf("  Removed debt %d.\n", id)
	return nil
}

func runDebtList(_ *cobra.Command, _ []string) error {
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	now := s.app.Now()
	sum := s.app.Debts()
	if len(sum.Plans) == 0 {
		fmt.Println("\n  No debts. Add one with `rebalance debt add`.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DEBTS"))
	fmt.Println()

	rows := make([][]string, 0, len(sum.Plans)+2)
	for _, p := range sum.Plans {
		flags := ""
		switch {
		case p.PaidOff:
			flags = "paid off"
		case p.HighPriority:
			flags = cli.Warn("priority")
		}
		if p.PaidThisMonth {
			if flags != "" {
				flags += ", "
			}
			flags += "paid this month"
		}
		rows = append(rows, []string{
			strconv.FormatInt(p.Debt.ID, 10),
			p.Debt.Name,
			cli.FormatMoney(p.Debt.Remaining.Int64()),
			cli.FormatMoney(p.Debt.MonthlyPay.Int64()),
			p.Debt.Interest + "%",
			p.Debt.Date,
			cli.FormatMonths(p.MonthsToPayoff),
			cli.FormatDate(p.PayoffDate),
			flags,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"", "TOTAL",
		cli.FormatMoney(sum.TotalOutstanding),
		cli.FormatMoney(sum.TotalMonthlyPayment),
		"", "", "", "", "",
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers:  []string{"ID", "Name", "Remaining", "Monthly", "Rate", "Due", "Left", "Payoff", ""},
		Rows:     rows,
		LeftCols: 2,
	}))

	fmt.Println()
	fmt.Printf("  Progress  %s\n", cli.RenderProgressBar(sum.ProgressPercent, 30))
	fmt.Printf("  Paid off  %d of %d\n", sum.PaidOffCount, len(sum.Plans))
	if freedom := pipeline.FreedomDate(sum, now); !freedom.IsZero() {
		fmt.Printf("  Debt-free %s (%s)\n", cli.FormatDate(freedom), cli.FormatMonths(sum.MonthsToFreedom))
	}
	return nil
}
