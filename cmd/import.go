package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/rebalance/internal/export"
)

var flagImportYes bool

var importCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Replace all data with a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&flagImportYes, "yes", "y", false, "Overwrite existing data without asking")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	var (
		payload []byte
		err     error
	)
	if args[0] == "-" {
		payload, err = io.ReadAll(os.Stdin)
	} else {
		payload, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	data, err := export.Import(payload)
	if err != nil {
		return err
	}

	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	cur := s.app.Snapshot()
	if (len(cur.Transactions) > 0 || len(cur.Debts) > 0) && !flagImportYes {
		fmt.Printf("  This replaces %d transactions and %d debts. Re-run with --yes to continue.\n",
			len(cur.Transactions), len(cur.Debts))
		return nil
	}

	s.app.Import(data)
	fmt.Printf("  Imported %d transactions and %d debts.\n", len(data.Transactions), len(data.Debts))
	return nil
}
