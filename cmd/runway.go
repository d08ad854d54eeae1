package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/money"
)

var (
	flagRunwayCost        string
	flagRunwayIncludeDebt string
)

var runwayCmd = &cobra.Command{
	Use:     "runway",
	Aliases: []string{"reality", "survival"},
	Short:   "How many months your assets would last",
	Args:    cobra.NoArgs,
	RunE:    runRunway,
}

func init() {
	runwayCmd.Flags().StringVar(&flagRunwayCost, "cost", "", "Set the monthly survival cost")
	runwayCmd.Flags().StringVar(&flagRunwayIncludeDebt, "include-debt", "", "Count debt payments as monthly cost (true/false)")
	rootCmd.AddCommand(runwayCmd)
}

func runRunway(cmd *cobra.Command, _ []string) error {
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	settings := s.app.Snapshot().Settings
	changed := false
	if cmd.Flags().Changed("cost") {
		settings.SurvivalCost = money.Amount(money.SafeInt(flagRunwayCost))
		changed = true
	}
	if cmd.Flags().Changed("include-debt") {
		switch flagRunwayIncludeDebt {
		case "true", "yes", "1", "on":
			settings.IncludeDebtInSurvival = true
		case "false", "no", "0", "off":
			settings.IncludeDebtInSurvival = false
		default:
			return fmt.Errorf("--include-debt: expected true or false, got %q", flagRunwayIncludeDebt)
		}
		changed = true
	}
	if changed {
		s.app.SetSettings(settings)
	}

	surv := s.app.Survival()
	debt := s.app.Debts()

	fmt.Println()
	fmt.Println(cli.RenderTitle("REALITY CHECK"))
	fmt.Println()

	debtLine := "not counted"
	if settings.IncludeDebtInSurvival {
		debtLine = "+" + cli.FormatMoney(debt.TotalMonthlyPayment) + " debt payments"
	}
	fmt.Print(cli.RenderKV([][2]string{
		{"Liquid assets", cli.FormatMoney(surv.LiquidAssets)},
		{"Total assets", cli.FormatMoney(surv.TotalAssets)},
		{"Survival cost", cli.FormatMoney(settings.SurvivalCost.Int64())},
		{"Debt", debtLine},
		{"Monthly burn", cli.FormatMoney(surv.EffectiveMonthlyCost)},
	}))

	fmt.Println()
	if surv.Runway.Infinite {
		fmt.Println("  You could last " + cli.Income("∞") + " months (no monthly cost set).")
	} else {
		fmt.Printf("  You could last %s months.\n", cli.FormatRunway(surv.Runway))
	}
	fmt.Println()
	fmt.Printf("  Cash    %s\n", cli.RenderProgressBar(surv.LiquidShare, 20))
	fmt.Printf("  Invest  %s\n", cli.RenderProgressBar(surv.InvestShare, 20))
	fmt.Println(cli.Muted("          against a six-month cushion, each capped at 50%"))
	return nil
}
