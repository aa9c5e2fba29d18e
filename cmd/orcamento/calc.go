package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	response "github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/dto/response"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCalcCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "calc <budget.yaml>",
		Short: "Print the breakdown of a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadBudgetFile(args[0])
			if err != nil {
				return err
			}
			b, err := calculate(cmd.Context(), f, opts.log)
			if err != nil {
				return err
			}
			opts.log.Debug("[orcamento] calculated", zap.String("file", args[0]), zap.Float64("total", b.Breakdown.Total))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(response.FromBudget(b))
			}
			return printBreakdown(cmd.OutOrStdout(), b)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the budget as JSON")
	return cmd
}

func printBreakdown(w io.Writer, b entities.Budget) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	bd := b.Breakdown
	rows := []struct {
		label string
		value float64
	}{
		{"Visita", bd.VisitFee},
		{"Mão de obra", bd.Labor},
		{"Peças", bd.Parts},
		{"Deslocamento", bd.Travel},
		{"Hospedagem", bd.Lodging},
		{"Alimentação", bd.Meals},
		{"Extras", bd.Extras},
		{"Subtotal", bd.Subtotal},
		{fmt.Sprintf("Desconto (%s%%)", decimal.NewFromFloat(bd.DiscountPercent).Round(2).String()), -bd.DiscountValue},
		{"Total", bd.Total},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t\n", r.label, pricing.FormatBRL(r.value)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
