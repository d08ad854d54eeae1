package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/model"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [YYYY-MM]",
	Short: "Month grid with daily spending",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(_ *cobra.Command, args []string) error {
	s, err := openApp()
	if err != nil {
		return err
	}
	defer s.Close()

	v := ""
	if len(args) == 1 {
		v = args[0]
	}
	year, month, err := parseMonth(v, s.app.Now())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CALENDAR  %s", cli.FormatMonth(year, month))))
	fmt.Println()
	fmt.Print(renderCalendar(s.app.Calendar(year, month), s.app.Now()))
	return nil
}

// renderCalendar lays days out Sunday-first, each cell showing the day and
// its spend.
func renderCalendar(days []model.DayData, now time.Time) string {
	const cell = 9
	var b strings.Builder

	b.WriteString("  ")
	for wd := 0; wd < 7; wd++ {
		b.WriteString(cli.Muted(fmt.Sprintf("%-*s", cell, cli.FormatDayOfWeek(wd))))
	}
	b.WriteString("\n")
	if len(days) == 0 {
		return b.String()
	}

	first := time.Date(days[0].Year, time.Month(days[0].Month), 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())

	today := lipgloss.NewStyle().Bold(true).Underline(true)
	var top, bottom strings.Builder
	flush := func() {
		b.WriteString("  " + top.String() + "\n")
		b.WriteString("  " + bottom.String() + "\n")
		top.Reset()
		bottom.Reset()
	}

	for i := 0; i < offset; i++ {
		top.WriteString(strings.Repeat(" ", cell))
		bottom.WriteString(strings.Repeat(" ", cell))
	}
	for _, d := range days {
		label := fmt.Sprintf("%-*d", cell, d.Day)
		if d.Year == now.Year() && d.Month == int(now.Month()) && d.Day == now.Day() {
			label = today.Render(fmt.Sprintf("%d", d.Day)) + strings.Repeat(" ", cell-len(fmt.Sprintf("%d", d.Day)))
		}
		top.WriteString(label)

		spend := ""
		switch {
		case d.Spend > 0:
			spend = "-" + cli.FormatMoney(d.Spend)
		case len(d.Items) > 0:
			spend = "+"
		}
		bottom.WriteString(cli.Muted(fmt.Sprintf("%-*s", cell, spend)))

		if (offset+d.Day)%7 == 0 {
			flush()
		}
	}
	if top.Len() > 0 {
		flush()
	}
	return b.String()
}
