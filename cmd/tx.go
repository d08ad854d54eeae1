package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/ledger"
	"github.com/theirongolddev/rebalance/internal/model"
)

var (
	flagTxIncome   bool
	flagTxAmount   string
	flagTxName     string
	flagTxNote     string
	flagTxWant     bool
	flagTxFeelings []string
	flagTxDate     string
	flagTxFromDebt int64
	flagTxMonth    string
)

var txCmd = &cobra.Command{
	Use:     "tx",
	Aliases: []string{"transaction"},
	Short:   "Record and review transactions",
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	Example: `  rebalance tx add --amount 120 --name lunch --feel happy
  rebalance tx add --income --amount 52000 --name salary
  rebalance tx add --from-debt 1`,
	Args: cobra.NoArgs,
	RunE: runTxAdd,
}

var txEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace a transaction; unset flags keep their current values",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxEdit,
}

var txRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a transaction",
	Args:    cobra.ExactArgs(1),
	RunE:    runTxRm,
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a month's transactions",
	Args:  cobra.NoArgs,
	RunE:  runTxList,
}

var txDayCmd = &cobra.Command{
	Use:   "day [YYYY-MM-DD]",
	Short: "Show one day's transactions and any debts due that day",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTxDay,
}

func init() {
	for _, c := range []*cobra.Command{txAddCmd, txEditCmd} {
		c.Flags().BoolVar(&flagTxIncome, "income", false, "Record income instead of an expense")
		c.Flags().StringVarP(&flagTxAmount, "amount", "a", "", "Amount in whole currency units")
		c.Flags().StringVar(&flagTxName, "name", "", "Label")
		c.Flags().StringVar(&flagTxNote, "note", "", "Free-text note")
		c.Flags().BoolVar(&flagTxWant, "want", false, "Mark an expense as a want rather than a need")
		c.Flags().StringArrayVarP(&flagTxFeelings, "feel", "f", nil, "Feeling tag (repeatable)")
		c.Flags().StringVar(&flagTxDate, "date", "", "Day of the transaction, YYYY-MM-DD (default today)")
	}
	txAddCmd.Flags().Int64Var(&flagTxFromDebt, "from-debt", 0, "Pre-fill from a debt's monthly payment")
	txListCmd.Flags().StringVar(&flagTxMonth, "month", "", "Month to list, YYYY-MM (default current)")

	txCmd.AddCommand(txAddCmd, txEditCmd, txRmCmd, txListCmd, txDayCmd)
	rootCmd.AddCommand(txCmd)
}

func runTxAdd(cmd *cobra.Command, _ []string) error {
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	form := model.TransactionForm{Type: model.Expense, IsNeed: true}
	if flagTxFromDebt != 0 {
		d, ok := s.app.Debt(flagTxFromDebt)
		if !ok {
			return fmt.Errorf("no debt with id %d", flagTxFromDebt)
		}
		form.Name = d.Name
		form.Amount = strconv.FormatInt(d.MonthlyPay.Int64(), 10)
	}
	applyTxFlags(cmd, &form)

	at, err := parseDay(flagTxDate, s.app.Now())
	if err != nil {
		return err
	}
	tx, _, err := s.app.SaveTransaction(form, at, 0)
	if err != nil {
		return txError(err)
	}
	fmt.Printf("  Recorded %s %s (id %d)\n", tx.Name, cli.FormatTxAmount(tx), tx.ID)
	return nil
}

func runTxEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	existing, ok := s.app.Transaction(id)
	if !ok {
		fmt.Printf("  No transaction with id %d.\n", id)
		return nil
	}
	form := ledger.FormFrom(existing)
	applyTxFlags(cmd, &form)

	loc := s.app.Now().Location()
	at := existing.Date.In(loc)
	if existing.Date.IsZero() && existing.Year > 0 {
		at = time.Date(existing.Year, time.Month(existing.Month), existing.Day, 12, 0, 0, 0, loc)
	}
	if flagTxDate != "" {
		if at, err = parseDay(flagTxDate, at); err != nil {
			return err
		}
	}
	tx, ok, err := s.app.SaveTransaction(form, at, id)
	if err != nil {
		return txError(err)
	}
	if !ok {
		fmt.Printf("  No transaction with id %d.\n", id)
		return nil
	}
	fmt.Printf("  Updated %s %s\n", tx.Name, cli.FormatTxAmount(tx))
	return nil
}

// applyTxFlags overlays explicitly set flags on form.
func applyTxFlags(cmd *cobra.Command, form *model.TransactionForm) {
	f := cmd.Flags()
	if f.Changed("income") {
		form.Type = model.Expense
		if flagTxIncome {
			form.Type = model.Income
		}
	}
	if f.Changed("amount") {
		form.Amount = flagTxAmount
	}
	if f.Changed("name") {
		form.Name = flagTxName
	}
	if f.Changed("note") {
		form.Note = flagTxNote
	}
	if f.Changed("want") {
		form.IsNeed = !flagTxWant
	}
	if f.Changed("feel") {
		form.Feelings = nil
		for _, tag := range flagTxFeelings {
			form.Feelings = model.ToggleFeeling(form.Feelings, tag)
		}
	}
}

func txError(err error) error {
	if errors.Is(err, ledger.ErrEmptyAmount) {
		return fmt.Errorf("%w (use --amount)", err)
	}
	return err
}

func runTxRm(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	if _, ok := s.app.Transaction(id); !ok {
		fmt.Printf("  No transaction with id %d; nothing to delete.\n", id)
		return nil
	}
	s.app.DeleteTransaction(id)
	fmt.Printf("  Deleted transaction %d.\n", id)
	return nil
}

func runTxList(_ *cobra.Command, _ []string) error {
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	year, month, err := parseMonth(flagTxMonth, s.app.Now())
	if err != nil {
		return err
	}
	txs := ledger.ByMonth(s.app.Snapshot().Transactions, month, year)
	if len(txs) == 0 {
		fmt.Printf("\n  No transactions in %s.\n", cli.FormatMonth(year, month))
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TRANSACTIONS  %s", cli.FormatMonth(year, month))))
	fmt.Println()
	fmt.Print(cli.RenderTable(txTable(txs)))
	return nil
}

func runTxDay(_ *cobra.Command, args []string) error {
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	v := ""
	if len(args) == 1 {
		v = args[0]
	}
	day, err := parseDay(v, s.app.Now())
	if err != nil {
		return err
	}

	d := s.app.Day(day.Year(), int(day.Month()), day.Day())
	fmt.Println()
	fmt.Printf("  %s  spent %s\n", day.Format("Mon 2006-01-02"), cli.FormatMoney(d.Spend))
	if len(d.Items) > 0 {
		fmt.Print(cli.RenderTable(txTable(d.Items)))
	} else {
		fmt.Println("  Nothing recorded.")
	}
	printDueToday(s.app.DueOn(day.Day()))
	return nil
}

func txTable(txs []model.Transaction) cli.Table {
	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10),
			fmt.Sprintf("%04d-%02d-%02d", t.Year, t.Month, t.Day),
			t.Name,
			cli.FormatTxAmount(t),
			cli.FormatNeed(t.IsNeed),
			cli.FormatFeelings(t.Feelings),
			cli.FormatMood(t.MoodAtTime),
		})
	}
	return cli.Table{
		Headers:  []string{"ID", "Date", "Name", "Amount", "Need", "Feelings", "Mood"},
		Rows:     rows,
		LeftCols: 3,
	}
}
