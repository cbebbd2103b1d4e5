package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ja7ad/dcmodel/pkg/params"
)

// ComputePnL returns the first-year P&L for p. It fails with a
// *params.ValidationError when p is invalid; it never returns a partial statement.
func ComputePnL(p params.ParameterSet) (PnLStatement, error) {
	return PnLForYear(p, 1)
}

// PnLForYear returns the P&L for the given year (1-based). Revenue and opex
// are the same every year; depreciation phases out after its useful life.
func PnLForYear(p params.ParameterSet, year int) (PnLStatement, error) {
	if year < 1 {
		return PnLStatement{}, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	v, err := params.Validate(p)
	if err != nil {
		return PnLStatement{}, err
	}
	return pnlForYear(v, year), nil
}

// pnlForYear assumes p has been validated.
func pnlForYear(p params.ParameterSet, year int) PnLStatement {
	s := PnLStatement{
		Year:            year,
		Revenue:         p.RevenueRatePerGW * p.UtilizationRate * p.CapacityGW,
		Power:           computePower(p),
		TotalInvestment: p.TotalInvestment(),
	}

	s.Allocation = Allocation{
		GPU:     s.TotalInvestment * p.GPUAllocationFraction,
		Network: s.TotalInvestment * p.NetworkAllocationFraction,
	}
	s.Allocation.Other = s.TotalInvestment - s.Allocation.GPU - s.Allocation.Network

	s.Opex = make([]OpexLine, len(p.Opex))
	amounts := make([]float64, len(p.Opex))
	for i, it := range p.Opex {
		amounts[i] = opexAmount(it, s.Revenue, p.CapacityGW, s.TotalInvestment)
		s.Opex[i] = OpexLine{Name: it.Name, Mode: it.Mode, Amount: amounts[i]}
	}
	s.OpexItemsTotal = floats.Sum(amounts)
	s.TotalOpex = s.Power.Total + s.OpexItemsTotal

	s.Depreciation = depreciation(p, year)

	s.EBITDA = s.Revenue - s.TotalOpex
	s.EBIT = s.EBITDA - s.Depreciation
	s.EBT = s.EBIT // no interest
	s.Tax = math.Max(s.EBT, 0) * p.TaxRate
	s.NetIncome = s.EBT - s.Tax
	return s
}

func opexAmount(it params.OpexItem, revenue, capacityGW, investment float64) float64 {
	switch it.Mode {
	case params.OpexFlat:
		return it.Value
	case params.OpexPercentOfRevenue:
		return revenue * it.Value
	case params.OpexPerGW:
		return it.Value * capacityGW
	case params.OpexPercentOfCapex:
		return investment * it.Value
	default:
		// unreachable for validated input
		return 0
	}
}

// depreciation is straight-line. With EquipmentDepreciationYears > 0 the
// GPU+network share runs on its own (usually shorter) life and the rest on
// DepreciationYears; otherwise the whole investment uses DepreciationYears.
func depreciation(p params.ParameterSet, year int) float64 {
	inv := p.TotalInvestment()

	if p.EquipmentDepreciationYears <= 0 {
		if year <= p.DepreciationYears {
			return inv / float64(p.DepreciationYears)
		}
		return 0
	}

	equipment := inv * p.EquipmentFraction()
	var d float64
	if year <= p.EquipmentDepreciationYears {
		d += equipment / float64(p.EquipmentDepreciationYears)
	}
	if year <= p.DepreciationYears {
		d += (inv - equipment) / float64(p.DepreciationYears)
	}
	return d
}
