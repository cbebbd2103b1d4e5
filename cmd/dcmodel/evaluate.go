package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ja7ad/dcmodel/pkg/analysis"
	"github.com/ja7ad/dcmodel/pkg/report"
)

func evaluateCmd() *cobra.Command {
	var (
		pf     paramFlags
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Compute the P&L, cash flow and summary metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := pf.load(cmd.Flags())
			if err != nil {
				return err
			}
			r, err := analysis.New(nil).Run(cmd.Context(), p)
			if err != nil {
				return err
			}
			if asJSON {
				return report.WriteJSON(os.Stdout, r)
			}
			printReport(os.Stdout, r)
			return nil
		},
	}
	pf.register(cmd.Flags())
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full report as JSON instead of tables")
	return cmd
}
