package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/rebalance/internal/export"
	"github.com/theirongolddev/rebalance/internal/model"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your data as JSON, CSV or XLSX",
}

func newExportCmd(format, short, ext string, write func(io.Writer, model.AppData) error, binary bool) *cobra.Command {
	return &cobra.Command{
		Use:   format,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openApp()
			if err != nil {
				return err
			}
			defer s.Close()

			out := flagExportOut
			if out == "" && binary {
				out = fmt.Sprintf("rebalance-export-%s.%s", s.app.Now().Format("2006-01-02"), ext)
			}
			if out == "" || out == "-" {
				return write(os.Stdout, s.app.Snapshot())
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := write(f, s.app.Snapshot()); err != nil {
				_ = f.Close()
				return fmt.Errorf("writing %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Exported to %s\n", out)
			}
			return nil
		},
	}
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default stdout; xlsx defaults to a dated file)")
	exportCmd.AddCommand(
		newExportCmd("json", "Full snapshot, importable with `rebalance import`", "json", export.WriteJSON, false),
		newExportCmd("csv", "Spreadsheet-friendly report", "csv", export.CSV, false),
		newExportCmd("xlsx", "Excel workbook", "xlsx", export.XLSX, true),
	)
	rootCmd.AddCommand(exportCmd)
}
