package engine

import (
	"github.com/ja7ad/dcmodel/pkg/params"
	"github.com/ja7ad/dcmodel/pkg/util"
)

// ComputeSummaryMetrics derives margins, payback and returns from a P&L and
// its cash-flow table.
func ComputeSummaryMetrics(pnl PnLStatement, cf CashFlowTable) (SummaryMetrics, error) {
	if cf.Len() == 0 {
		return SummaryMetrics{}, ErrEmptyCashFlow
	}

	m := SummaryMetrics{
		EBITMargin:              util.SafeDiv(pnl.EBIT, pnl.Revenue),
		NetMargin:               util.SafeDiv(pnl.NetIncome, pnl.Revenue),
		TotalInvestment:         pnl.TotalInvestment,
		ReturnOnInvestment:      util.SafeDiv(cf.Rows[0].OperatingCashFlow, pnl.TotalInvestment),
		FinalCumulativeCashFlow: cf.Rows[cf.Len()-1].CumulativeCashFlow,
	}
	if y, ok := cf.PaybackYear(); ok {
		m.PaybackPeriodYears = &y
	}
	return m, nil
}

// BreakEvenUtilization returns the utilization at which first-year EBIT is
// zero, holding every other parameter fixed. EBIT is linear in utilization,
// so this is solved in closed form from the two ends of [0,1]. ok is false
// when EBIT keeps one sign over the whole range.
func BreakEvenUtilization(p params.ParameterSet) (u float64, ok bool, err error) {
	v, err := params.Validate(p)
	if err != nil {
		return 0, false, err
	}

	v.UtilizationRate = 0
	e0 := pnlForYear(v, 1).EBIT
	v.UtilizationRate = 1
	e1 := pnlForYear(v, 1).EBIT

	s0, s1 := util.Sign(e0), util.Sign(e1)
	switch {
	case s0 == 0:
		return 0, true, nil
	case s0 == s1:
		return 0, false, nil
	}
	return e0 / (e0 - e1), true, nil
}
