package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Environment variables read at startup (a .env file in the working
// directory is loaded first if present).
const (
	EnvAddr      = "DCMODEL_ADDR"
	EnvRedisAddr = "DCMODEL_REDIS_ADDR"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("loading .env", "err", err)
	}

	root := &cobra.Command{
		Use:   "dcmodel",
		Short: "Data center unit economics model",
		Long: `dcmodel projects the annual P&L, multi-year cash flow and payback of an
AI data center from a small set of capacity, pricing and cost parameters.

Parameters come from the built-in reference configuration, optionally
overlaid with a YAML or JSON file (-f) and individual flags.

Examples:
  dcmodel evaluate
  dcmodel evaluate -f site.yaml --years 15 --utilization 0.85
  dcmodel export -f site.yaml --out ./out --html
  dcmodel defaults > site.yaml
  dcmodel serve --addr :8080 --redis localhost:6379`,
		SilenceUsage: true,
	}

	root.AddCommand(evaluateCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(defaultsCmd())
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
