package engine

import (
	"github.com/ja7ad/dcmodel/pkg/params"
	"github.com/ja7ad/dcmodel/pkg/types"
)

// computePower prices the three draw regimes for one year.
//
// Capacity splits into a utilized share u and an unutilized share (1-u):
//
//	active   = capacity * u                      (full draw)
//	idle     = capacity * (1-u) * idleFraction   (parked but powered)
//	baseline = capacity * baselineFraction       (always on, independent of u)
//
// Each draw in GW becomes kWh/year via types.AnnualKWh and is charged at
// powerCostPerKWh * PUE.
func computePower(p params.ParameterSet) PowerCost {
	activeGW := p.CapacityGW * p.UtilizationRate
	idleGW := p.CapacityGW * (1 - p.UtilizationRate) * p.IdlePowerFraction
	baselineGW := p.CapacityGW * p.BaselinePowerFraction

	price := p.PowerCostPerKWh * p.PUE

	pc := PowerCost{
		ActiveKWh:   types.AnnualKWh(activeGW),
		IdleKWh:     types.AnnualKWh(idleGW),
		BaselineKWh: types.AnnualKWh(baselineGW),
	}
	pc.Active = pc.ActiveKWh * price
	pc.Idle = pc.IdleKWh * price
	pc.Baseline = pc.BaselineKWh * price
	pc.Total = pc.Active + pc.Idle + pc.Baseline
	return pc
}
