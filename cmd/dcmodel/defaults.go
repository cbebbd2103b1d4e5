package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ja7ad/dcmodel/pkg/params"
)

func defaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the reference parameter set as YAML",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return params.Encode(os.Stdout, params.Defaults())
		},
	}
}
