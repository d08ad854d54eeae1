package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/model"
)

var moodCmd = &cobra.Command{
	Use:   "mood [chaos|anxious|numb|calm|hope|clear]",
	Short: "Show or set how you feel right now",
	Long: "Show or set the current mood. New transactions capture the mood " +
		"at the moment they are recorded.",
	Args: cobra.MaximumNArgs(1),
	RunE: runMood,
}

func init() {
	rootCmd.AddCommand(moodCmd)
}

func runMood(_ *cobra.Command, args []string) error {
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 0 {
		fmt.Printf("  Mood: %s\n", cli.FormatMood(s.app.Snapshot().Mood))
		ids := make([]string, len(model.Moods))
		for i, m := range model.Moods {
			ids[i] = string(m)
		}
		fmt.Printf("  Options: %s\n", strings.Join(ids, ", "))
		return nil
	}

	if args[0] == "clear" {
		s.app.SetMood("")
		fmt.Println("  Mood cleared.")
		return nil
	}

	m, err := model.ParseMood(strings.ToLower(args[0]))
	if err != nil {
		return err
	}
	s.app.SetMood(m)
	fmt.Printf("  Mood set to %s.\n", m.Label())
	return nil
}
