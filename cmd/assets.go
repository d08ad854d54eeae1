package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/money"
)

var (
	flagSavings     string
	flagInvestments string
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Show or set savings and investments",
	Example: `  rebalance assets --savings 120,000
  rebalance assets --investments 50000`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func init() {
	assetsCmd.Flags().StringVar(&flagSavings, "savings", "", "Cash savings")
	assetsCmd.Flags().StringVar(&flagInvestments, "investments", "", "Investment holdings")
	rootCmd.AddCommand(assetsCmd)
}

func runAssets(cmd *cobra.Command, _ []string) error {
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	if cmd.Flags().Changed("savings") {
		s.app.SetSavings(money.SafeInt(flagSavings))
	}
	if cmd.Flags().Changed("investments") {
		s.app.SetInvestments(money.SafeInt(flagInvestments))
	}

	snap := s.app.Snapshot()
	fmt.Println()
	fmt.Print(cli.RenderKV([][2]string{
		{"Savings", cli.FormatMoney(snap.Savings.Int64())},
		{"Investments", cli.FormatMoney(snap.Investments.Int64())},
	}))
	return nil
}
