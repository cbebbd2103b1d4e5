package params

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// OpexMode selects how an opex line item's Value is turned into an annual amount.
type OpexMode string

const (
	// OpexFlat is a fixed annual amount.
	OpexFlat OpexMode = "flat"
	// OpexPercentOfRevenue is a fraction [0..1] of annual revenue.
	OpexPercentOfRevenue OpexMode = "percent_of_revenue"
	// OpexPerGW is an annual amount per GW of capacity.
	OpexPerGW OpexMode = "per_gw"
	// OpexPercentOfCapex is a fraction [0..1] of the total investment.
	OpexPercentOfCapex OpexMode = "percent_of_capex"
)

// Modes lists every supported opex mode in display order.
var Modes = []OpexMode{OpexFlat, OpexPercentOfRevenue, OpexPerGW, OpexPercentOfCapex}

// IsFraction reports whether the mode's value is a fraction in [0..1].
func (m OpexMode) IsFraction() bool {
	return m == OpexPercentOfRevenue || m == OpexPercentOfCapex
}

// ParseMode parses an opex mode name. Dashes and case are tolerated.
func ParseMode(s string) (OpexMode, error) {
	m := OpexMode(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if slices.Contains(Modes, m) {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// OpexItem is one operating expense line. The meaning of Value depends on Mode:
//   - flat:               currency/year
//   - percent_of_revenue: fraction of revenue [0..1]
//   - per_gw:             currency/GW/year
//   - percent_of_capex:   fraction of total investment [0..1]
type OpexItem struct {
	Name  string   `json:"name" yaml:"name" validate:"required"`
	Mode  OpexMode `json:"mode" yaml:"mode" validate:"required,oneof=flat percent_of_revenue per_gw percent_of_capex"`
	Value float64  `json:"value" yaml:"value" validate:"gte=0"`
}

// Flat returns a fixed annual opex line.
func Flat(name string, amount float64) OpexItem {
	return OpexItem{Name: name, Mode: OpexFlat, Value: amount}
}

// PercentOfRevenue returns an opex line charged as a fraction of revenue.
func PercentOfRevenue(name string, fraction float64) OpexItem {
	return OpexItem{Name: name, Mode: OpexPercentOfRevenue, Value: fraction}
}

// PerGW returns an opex line charged per GW of capacity.
func PerGW(name string, amount float64) OpexItem {
	return OpexItem{Name: name, Mode: OpexPerGW, Value: amount}
}

// PercentOfCapex returns an opex line charged as a fraction of the investment.
func PercentOfCapex(name string, fraction float64) OpexItem {
	return OpexItem{Name: name, Mode: OpexPercentOfCapex, Value: fraction}
}

// ParseOpexItem parses "name:mode:value", e.g. "sga:percent_of_revenue:0.1".
func ParseOpexItem(s string) (OpexItem, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return OpexItem{}, fmt.Errorf("opex %q: want name:mode:value", s)
	}
	mode, err := ParseMode(parts[1])
	if err != nil {
		return OpexItem{}, fmt.Errorf("opex %q: %w", s, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return OpexItem{}, fmt.Errorf("opex %q: %w", s, err)
	}
	return OpexItem{Name: strings.TrimSpace(parts[0]), Mode: mode, Value: v}, nil
}

// ParameterSet holds the model inputs.
// Units:
//   - CapacityGW: gigawatts of IT capacity
//   - CapitalCostPerGW: currency per GW
//   - RevenueRatePerGW: currency per GW per year (at full utilization)
//   - PowerCostPerKWh: currency per kWh
//   - PUE: dimensionless multiplier >= 1
//   - *Fraction, UtilizationRate, TaxRate: [0..1]
//   - *Years: whole years
type ParameterSet struct {
	CapacityGW                 float64    `json:"capacityGW" yaml:"capacityGW" validate:"gt=0"`
	CapitalCostPerGW           float64    `json:"capitalCostPerGW" yaml:"capitalCostPerGW" validate:"gt=0"`
	GPUAllocationFraction      float64    `json:"gpuAllocationFraction" yaml:"gpuAllocationFraction" validate:"gte=0,lte=1"`
	NetworkAllocationFraction  float64    `json:"networkAllocationFraction" yaml:"networkAllocationFraction" validate:"gte=0,lte=1"`
	RevenueRatePerGW           float64    `json:"revenueRatePerGW" yaml:"revenueRatePerGW" validate:"gte=0"`
	UtilizationRate            float64    `json:"utilizationRate" yaml:"utilizationRate" validate:"gte=0,lte=1"`
	PowerCostPerKWh            float64    `json:"powerCostPerKWh" yaml:"powerCostPerKWh" validate:"gte=0"`
	PUE                        float64    `json:"pue" yaml:"pue" validate:"gte=1"`
	IdlePowerFraction          float64    `json:"idlePowerFraction" yaml:"idlePowerFraction" validate:"gte=0,lte=1"`
	BaselinePowerFraction      float64    `json:"baselinePowerFraction" yaml:"baselinePowerFraction" validate:"gte=0,lte=1"`
	Opex                       []OpexItem `json:"opex" yaml:"opex" validate:"unique=Name,dive"`
	DepreciationYears          int        `json:"depreciationYears" yaml:"depreciationYears" validate:"gt=0"`
	EquipmentDepreciationYears int        `json:"equipmentDepreciationYears" yaml:"equipmentDepreciationYears" validate:"gte=0"`
	TaxRate                    float64    `json:"taxRate" yaml:"taxRate" validate:"gte=0,lte=1"`
	ProjectionYears            int        `json:"projectionYears" yaml:"projectionYears" validate:"gt=0,lte=100"`
}

// MaxProjectionYears bounds every cash-flow horizon.
const MaxProjectionYears = 100

// Defaults returns the reference configuration. Every call returns a fresh
// value, so callers may mutate the result.
func Defaults() ParameterSet {
	return ParameterSet{
		CapacityGW:                1.0,
		CapitalCostPerGW:          30e9,
		GPUAllocationFraction:     0.6,
		NetworkAllocationFraction: 0.1,
		RevenueRatePerGW:          12e9,
		UtilizationRate:           0.7,
		PowerCostPerKWh:           0.05,
		PUE:                       1.2,
		IdlePowerFraction:         0.4,
		BaselinePowerFraction:     0.2,
		Opex: []OpexItem{
			PercentOfRevenue("sga", 0.10),
			PerGW("infrastructure_maintenance", 100e6),
			PercentOfCapex("property_tax", 0.007),
			PerGW("staffing", 50e6),
			PerGW("network", 50e6),
			PerGW("software_compliance", 30e6),
		},
		DepreciationYears:          10,
		EquipmentDepreciationYears: 5,
		TaxRate:                    0.15,
		ProjectionYears:            10,
	}
}

// Clone returns a deep copy.
func (p ParameterSet) Clone() ParameterSet {
	c := p
	c.Opex = slices.Clone(p.Opex)
	return c
}

// TotalInvestment is the full capital outlay: capital cost per GW times capacity.
func (p ParameterSet) TotalInvestment() float64 {
	return p.CapitalCostPerGW * p.CapacityGW
}

// EquipmentFraction is the GPU plus network share of the investment.
func (p ParameterSet) EquipmentFraction() float64 {
	return p.GPUAllocationFraction + p.NetworkAllocationFraction
}
