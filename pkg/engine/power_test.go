package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ja7ad/dcmodel/pkg/params"
)

func TestComputePower_Regimes(t *testing.T) {
	p := params.ParameterSet{
		CapacityGW:            2,
		UtilizationRate:       0.5,
		PowerCostPerKWh:       0.1,
		PUE:                   1.5,
		IdlePowerFraction:     0.2,
		BaselinePowerFraction: 0.1,
	}
	pc := computePower(p)

	// 1 GW-year = 8.76e9 kWh; price incl. PUE = 0.15
	assert.InDelta(t, 8.76e9, pc.ActiveKWh, 1)    // 2 * 0.5
	assert.InDelta(t, 1.752e9, pc.IdleKWh, 1)     // 2 * 0.5 * 0.2
	assert.InDelta(t, 1.752e9, pc.BaselineKWh, 1) // 2 * 0.1
	assert.InDelta(t, 1.314e9, pc.Active, money)
	assert.InDelta(t, 262.8e6, pc.Idle, money)
	assert.InDelta(t, 262.8e6, pc.Baseline, money)
	assert.InDelta(t, pc.Active+pc.Idle+pc.Baseline, pc.Total, 0)
}

func TestComputePower_FullUtilizationHasNoIdle(t *testing.T) {
	p := params.ParameterSet{CapacityGW: 1, UtilizationRate: 1, PowerCostPerKWh: 0.05, PUE: 1, IdlePowerFraction: 0.9}
	pc := computePower(p)
	assert.Equal(t, 0.0, pc.Idle)
	assert.InDelta(t, 438e6, pc.Active, money)
}

func TestComputePower_ZeroPriceIsFree(t *testing.T) {
	p := params.Defaults()
	p.PowerCostPerKWh = 0
	pc := computePower(p)
	assert.Equal(t, 0.0, pc.Total)
	assert.Greater(t, pc.ActiveKWh, 0.0, "energy is still drawn")
}
