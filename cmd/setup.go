package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/rebalance/internal/config"
	"github.com/theirongolddev/rebalance/internal/money"
	"github.com/theirongolddev/rebalance/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

var localeOptions = []string{"en", "de", "fr", "ja", "zh"}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	cost := strconv.FormatInt(cfg.Defaults.SurvivalCost, 10)
	includeDebt := cfg.Defaults.IncludeDebtInSurvival
	seed := cfg.Defaults.SeedExampleDebt
	themeName := cfg.Appearance.Theme
	locale := cfg.General.Locale

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}
	localeOpts := make([]huh.Option[string], 0, len(localeOptions))
	for _, l := range localeOptions {
		localeOpts = append(localeOpts, huh.NewOption(l, l))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to rebalance").
				Description("A few defaults for new databases. Existing data is not touched."),
			huh.NewInput().
				Title("Monthly survival cost").
				Description("The least you can live on per month.").
				Value(&cost).
				Validate(validateWholeAmount),
			huh.NewConfirm().
				Title("Count debt payments as survival cost?").
				Value(&includeDebt),
			huh.NewConfirm().
				Title("Start with an example debt?").
				Value(&seed),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&themeName),
			huh.NewSelect[string]().
				Title("Number format").
				Options(localeOpts...).
				Value(&locale),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	cfg.Defaults.SurvivalCost = money.SafeInt(strings.TrimSpace(cost))
	cfg.Defaults.IncludeDebtInSurvival = includeDebt
	cfg.Defaults.SeedExampleDebt = seed
	cfg.Appearance.Theme = themeName
	cfg.General.Locale = locale

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `rebalance setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func validateWholeAmount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("enter an amount")
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return errors.New("whole numbers only")
	}
	return nil
}
