// Command orcamento prices a budget described in a YAML file without touching
// the API or DynamoDB.
//
// Usage:
//
//	orcamento calc budget.yaml
//	orcamento calc budget.yaml --json
//	orcamento export budget.yaml --format pdf --out orcamento.pdf
package main

import (
	"fmt"
	"os"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/infrastructure/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	verbose bool
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "orcamento",
		Short:         "Offline budget calculator",
		Long:          `Computes a technician budget from a YAML file and prints the breakdown or writes it as XLSX/PDF.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.verbose {
				return nil
			}
			l, err := logger.New("debug")
			if err != nil {
				return err
			}
			opts.log = l
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	root.AddCommand(newCalcCmd(opts))
	root.AddCommand(newExportCmd(opts))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
