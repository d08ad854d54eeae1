package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	dbPath := flagDB
	if dbPath == "" {
		dbPath = config.DBPath(cfg)
	}
	fmt.Println("  [General]")
	fmt.Printf("    Database: %s\n", dbPath)
	fmt.Printf("    Locale:   %s\n", cfg.General.Locale)
	fmt.Println()

	fmt.Println("  [Defaults]")
	fmt.Printf("    Survival cost:            %s\n", cli.FormatMoney(cfg.Defaults.SurvivalCost))
	fmt.Printf("    Include debt in survival: %v\n", cfg.Defaults.IncludeDebtInSurvival)
	fmt.Printf("    Seed example debt:        %v\n", cfg.Defaults.SeedExampleDebt)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `rebalance setup` to reconfigure.")
	return nil
}
