package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/infrastructure/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export <budget.yaml>",
		Short: "Write a budget as XLSX or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "xlsx" && format != "pdf" {
				return fmt.Errorf("unsupported format %q (use xlsx or pdf)", format)
			}

			f, err := loadBudgetFile(args[0])
			if err != nil {
				return err
			}
			b, err := calculate(cmd.Context(), f, opts.log)
			if err != nil {
				return err
			}

			var body []byte
			if format == "pdf" {
				body, err = export.BudgetPDF(b)
			} else {
				body, err = export.BudgetXLSX(b)
			}
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}

			if out == "" {
				out = "orcamento." + format
			}
			if err := os.WriteFile(out, body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			opts.log.Debug("[orcamento] exported", zap.String("file", out), zap.Int("bytes", len(body)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s written (%d bytes)\n", out, len(body))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "xlsx", "Output format: xlsx or pdf")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default orcamento.<format>)")
	return cmd
}
