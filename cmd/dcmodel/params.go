package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ja7ad/dcmodel/pkg/params"
)

// paramFlags are the overrides shared by evaluate and export. Only flags the
// user actually set are applied.
type paramFlags struct {
	file        string
	years       int
	capacity    float64
	utilization float64
	price       float64
	pue         float64
	taxRate     float64
	opex        []string
}

func (f *paramFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.file, "file", "f", "", "parameter file (YAML or JSON) laid over the defaults")
	fs.IntVarP(&f.years, "years", "y", 0, "projection years (overrides projectionYears)")
	fs.Float64Var(&f.capacity, "capacity", 0, "capacity in GW")
	fs.Float64Var(&f.utilization, "utilization", 0, "utilization rate [0..1]")
	fs.Float64Var(&f.price, "price", 0, "power cost per kWh")
	fs.Float64Var(&f.pue, "pue", 0, "power usage effectiveness (>= 1)")
	fs.Float64Var(&f.taxRate, "tax", 0, "tax rate [0..1]")
	fs.StringArrayVar(&f.opex, "opex", nil, `opex line "name:mode:value", repeatable; replaces the configured list`)
}

func (f *paramFlags) load(fs *pflag.FlagSet) (params.ParameterSet, error) {
	p := params.Defaults()
	if f.file != "" {
		var err error
		if p, err = params.Load(f.file); err != nil {
			return params.ParameterSet{}, err
		}
	}

	if fs.Changed("years") {
		p.ProjectionYears = f.years
	}
	if fs.Changed("capacity") {
		p.CapacityGW = f.capacity
	}
	if fs.Changed("utilization") {
		p.UtilizationRate = f.utilization
	}
	if fs.Changed("price") {
		p.PowerCostPerKWh = f.price
	}
	if fs.Changed("pue") {
		p.PUE = f.pue
	}
	if fs.Changed("tax") {
		p.TaxRate = f.taxRate
	}
	if fs.Changed("opex") {
		p.Opex = nil
		for _, s := range f.opex {
			it, err := params.ParseOpexItem(s)
			if err != nil {
				return params.ParameterSet{}, fmt.Errorf("--opex %q: %w", s, err)
			}
			p.Opex = append(p.Opex, it)
		}
	}
	return p, nil
}
