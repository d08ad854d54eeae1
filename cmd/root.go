// Package cmd implements the rebalance CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/rebalance/internal/app"
	"github.com/theirongolddev/rebalance/internal/clock"
	"github.com/theirongolddev/rebalance/internal/config"
	"github.com/theirongolddev/rebalance/internal/money"
	"github.com/theirongolddev/rebalance/internal/store"
)

var (
	flagDB    string
	flagNow   string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:           "rebalance",
	Short:         "Personal finance with feelings",
	Long:          "Track income, expenses, debts and how they make you feel, and see how long your money lasts.",
	RunE:          runOverview,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path (default from config or $"+config.EnvDB+")")
	rootCmd.PersistentFlags().StringVar(&flagNow, "now", "", "Pretend the current time is this (YYYY-MM-DD or RFC3339)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// session is an opened app plus what must be released afterwards.
type session struct {
	app   *app.App
	store *store.Store
	cfg   config.Config
}

func (s *session) Close() {
	if err := s.app.PersistErr(); err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: changes may not have been saved: %v\n", err)
	}
	_ = s.store.Close()
}

// openApp is the shared load path used by all commands.
func openApp() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}
	if err := money.SetLocale(cfg.General.Locale); err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: locale %q not recognized, using en\n", cfg.General.Locale)
	}

	clk, err := clockFromFlag(flagNow)
	if err != nil {
		return nil, err
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = config.DBPath(cfg)
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Opening %s\n", dbPath)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	var logOut io.Writer = os.Stderr
	if flagQuiet {
		logOut = io.Discard
	}
	a := app.New(st, app.Config{
		Clock:           clk,
		Logger:          log.New(logOut, "  ", 0),
		Settings:        cfg.Settings(),
		SeedExampleDebt: cfg.Defaults.SeedExampleDebt,
	})
	return &session{app: a, store: st, cfg: cfg}, nil
}

// clockFromFlag parses --now. Dates without a time are taken as noon local.
func clockFromFlag(v string) (clock.Clock, error) {
	if v == "" {
		return clock.NewReal(), nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return clock.NewFixed(t), nil
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		return nil, fmt.Errorf("--now: expected YYYY-MM-DD or RFC3339, got %q", v)
	}
	return clock.NewFixed(t.Add(12 * time.Hour)), nil
}

// parseMonth reads YYYY-MM; empty means the month containing now.
func parseMonth(v string, now time.Time) (year, month int, err error) {
	if v == "" {
		return now.Year(), int(now.Month()), nil
	}
	t, err := time.Parse("2006-01", v)
	if err != nil {
		return 0, 0, fmt.Errorf("month must be YYYY-MM, got %q", v)
	}
	return t.Year(), int(t.Month()), nil
}

// parseDay reads YYYY-MM-DD in local time; empty means now.
func parseDay(v string, now time.Time) (time.Time, error) {
	if v == "" {
		return now, nil
	}
	t, err := time.ParseInLocation("2006-01-02", v, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD, got %q", v)
	}
	// Keep the wall-clock time of now so same-day entries stay ordered.
	return time.Date(t.Year(), t.Month(), t.Day(), now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location()), nil
}

func parseID(v string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", v)
	}
	return id, nil
}
