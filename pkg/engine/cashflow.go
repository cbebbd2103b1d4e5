package engine

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/ja7ad/dcmodel/pkg/params"
)

// ComputeCashFlow projects years 1..years for p:
//
//	operating(y)  = EBIT(y) * (1 - taxRate) + depreciation(y)
//	outlay(y)     = totalInvestment if y == 1, else 0
//	cumulative(y) = cumulative(y-1) + operating(y) - outlay(y)
//
// It is pure: the same p and years always yield the same table.
func ComputeCashFlow(p params.ParameterSet, years int) (CashFlowTable, error) {
	if years < 1 || years > params.MaxProjectionYears {
		return CashFlowTable{}, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidHorizon, years, params.MaxProjectionYears)
	}
	v, err := params.Validate(p)
	if err != nil {
		return CashFlowTable{}, err
	}
	return cashFlow(v, years), nil
}

func cashFlow(p params.ParameterSet, years int) CashFlowTable {
	rows := make([]CashFlowRow, years)
	net := make([]float64, years)
	investment := p.TotalInvestment()

	for i := range rows {
		year := i + 1
		pl := pnlForYear(p, year)

		r := CashFlowRow{
			Year:              year,
			OperatingCashFlow: pl.EBIT*(1-p.TaxRate) + pl.Depreciation,
		}
		if year == 1 {
			r.CapitalOutlay = investment
		}
		r.NetCashFlow = r.OperatingCashFlow - r.CapitalOutlay
		net[i] = r.NetCashFlow
		rows[i] = r
	}

	cum := floats.CumSum(make([]float64, years), net)
	for i := range rows {
		rows[i].CumulativeCashFlow = cum[i]
	}
	return CashFlowTable{Rows: rows}
}
