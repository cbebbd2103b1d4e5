// Package report renders model results as CSV, JSON and HTML.
package report

import (
	"github.com/ja7ad/dcmodel/pkg/engine"
	"github.com/ja7ad/dcmodel/pkg/params"
)

// Report is everything one evaluation produces.
type Report struct {
	Params    params.ParameterSet   `json:"params"`
	PnL       engine.PnLStatement   `json:"pnl"`
	CashFlow  engine.CashFlowTable  `json:"cashFlow"`
	Summary   engine.SummaryMetrics `json:"summary"`
	BreakEven *float64              `json:"breakEvenUtilization"` // nil: EBIT never crosses zero in [0,1]
	Insights  []engine.Insight      `json:"insights"`
}
