package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ja7ad/dcmodel/pkg/analysis"
	"github.com/ja7ad/dcmodel/pkg/report"
)

func exportCmd() *cobra.Command {
	var (
		pf       paramFlags
		out      string
		withHTML bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write CSV and JSON (and optionally HTML) reports to a directory",
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
			paths, err := report.WriteFiles(out, r, withHTML)
			for _, path := range paths {
				fmt.Println(path)
			}
			if err != nil {
				slog.Error("export incomplete", "written", len(paths))
				return err
			}
			return nil
		},
	}
	pf.register(cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory")
	cmd.Flags().BoolVar(&withHTML, "html", false, "also write report.html")
	return cmd
}
