package engine

import (
	"fmt"

	"github.com/ja7ad/dcmodel/pkg/params"
	"github.com/ja7ad/dcmodel/pkg/util"
)

// Level grades an Insight.
type Level string

const (
	LevelGood    Level = "good"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Insight is a short qualitative reading of the results.
type Insight struct {
	Level   Level  `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Thresholds used by Insights.
const (
	StrongEBITMargin     = 0.30
	WeakEBITMargin       = 0.10
	FastPaybackYears     = 5
	SlowPaybackYears     = 10
	HighPowerShare       = 0.40 // power cost / revenue
	LowUtilizationWarn   = 0.60
	TargetUtilizationMin = 0.70
)

// Insights flags notable results: margin strength, payback speed, power
// intensity and utilization. Order is stable.
func Insights(p params.ParameterSet, pnl PnLStatement, m SummaryMetrics) []Insight {
	var out []Insight

	switch {
	case m.EBITMargin > StrongEBITMargin:
		out = append(out, Insight{LevelGood, "ebit_margin_strong",
			fmt.Sprintf("Strong profitability with EBIT margin above %.0f%%", StrongEBITMargin*100)})
	case m.EBITMargin < WeakEBITMargin:
		out = append(out, Insight{LevelWarning, "ebit_margin_weak",
			"Low profitability: consider optimizing costs or increasing utilization"})
	}

	switch {
	case m.PaybackPeriodYears == nil:
		out = append(out, Insight{LevelWarning, "payback_none",
			"Investment is not recovered within the projection horizon"})
	case *m.PaybackPeriodYears <= FastPaybackYears:
		out = append(out, Insight{LevelGood, "payback_fast",
			fmt.Sprintf("Attractive payback period of %d years", *m.PaybackPeriodYears)})
	case *m.PaybackPeriodYears > SlowPaybackYears:
		out = append(out, Insight{LevelWarning, "payback_slow",
			"Long payback period: economics may need to improve"})
	}

	if pnl.Revenue > 0 && util.SafeDiv(pnl.Power.Total, pnl.Revenue) > HighPowerShare {
		out = append(out, Insight{LevelWarning, "power_cost_high",
			"Power costs are high: consider power optimization or PPA strategies"})
	}

	if p.UtilizationRate < LowUtilizationWarn {
		out = append(out, Insight{LevelInfo, "utilization_low",
			fmt.Sprintf("Low utilization: improving to %.0f%%+ could significantly boost returns", TargetUtilizationMin*100)})
	}
	return out
}
