package params

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ja7ad/dcmodel/pkg/types"
)

var _validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so callers can map violations back to their inputs.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(validateParameterSet, ParameterSet{})
	v.RegisterStructValidation(validateOpexItem, OpexItem{})
	return v
}

// validateParameterSet checks the rules that span more than one field.
func validateParameterSet(sl validator.StructLevel) {
	p := sl.Current().Interface().(ParameterSet)

	if p.IdlePowerFraction+p.BaselinePowerFraction > 1 {
		sl.ReportError(p.BaselinePowerFraction, "baselinePowerFraction", "BaselinePowerFraction", "power_regimes", "")
	}
	if p.EquipmentFraction() > 1 {
		sl.ReportError(p.NetworkAllocationFraction, "networkAllocationFraction", "NetworkAllocationFraction", "allocation", "")
	}

	// Range tags reject NaN and -Inf but not +Inf on fields with no upper bound.
	finite := true
	for _, f := range []struct {
		v           float64
		name, field string
	}{
		{p.CapacityGW, "capacityGW", "CapacityGW"},
		{p.CapitalCostPerGW, "capitalCostPerGW", "CapitalCostPerGW"},
		{p.RevenueRatePerGW, "revenueRatePerGW", "RevenueRatePerGW"},
		{p.PowerCostPerKWh, "powerCostPerKWh", "PowerCostPerKWh"},
		{p.PUE, "pue", "PUE"},
	} {
		if math.IsInf(f.v, 1) {
			sl.ReportError(f.v, f.name, f.field, "finite", "")
		}
		if !isFinite(f.v) {
			finite = false
		}
	}
	for _, it := range p.Opex {
		if !isFinite(it.Value) {
			finite = false
		}
	}
	if finite {
		checkMagnitudes(sl, p)
	}
}

// checkMagnitudes rejects finite inputs whose derived amounts overflow
// float64 anywhere in the model, up to the longest projection horizon.
func checkMagnitudes(sl validator.StructLevel, p ParameterSet) {
	reported := false
	report := func(v float64, name, field string) {
		sl.ReportError(v, name, field, "overflow", "")
		reported = true
	}

	investment := p.TotalInvestment()
	if math.IsInf(investment, 0) {
		report(p.CapitalCostPerGW, "capitalCostPerGW", "CapitalCostPerGW")
	}
	revenue := p.RevenueRatePerGW * p.UtilizationRate * p.CapacityGW
	if math.IsInf(revenue, 0) {
		report(p.RevenueRatePerGW, "revenueRatePerGW", "RevenueRatePerGW")
	}
	// active + idle + baseline draw never exceeds twice the capacity.
	power := 2 * types.AnnualKWh(p.CapacityGW) * p.PowerCostPerKWh * p.PUE
	if math.IsInf(power, 0) {
		report(p.PowerCostPerKWh, "powerCostPerKWh", "PowerCostPerKWh")
	}

	var opex float64
	for i, it := range p.Opex {
		var amount float64
		switch it.Mode {
		case OpexFlat:
			amount = it.Value
		case OpexPercentOfRevenue:
			amount = revenue * it.Value
		case OpexPerGW:
			amount = it.Value * p.CapacityGW
		case OpexPercentOfCapex:
			amount = investment * it.Value
		}
		if math.IsInf(amount, 0) && isFinite(opexBase(it.Mode, revenue, investment)) {
			report(it.Value, fmt.Sprintf("opex[%d].value", i), "Value")
		}
		opex += amount
	}

	if reported {
		return
	}
	span := float64(MaxProjectionYears) * (revenue + power + opex + 2*investment)
	if math.IsInf(span, 0) {
		report(p.CapacityGW, "capacityGW", "CapacityGW")
	}
}

// opexBase is the amount a fraction-mode line scales; other modes have none.
func opexBase(m OpexMode, revenue, investment float64) float64 {
	switch m {
	case OpexPercentOfRevenue:
		return revenue
	case OpexPercentOfCapex:
		return investment
	default:
		return 0
	}
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func validateOpexItem(sl validator.StructLevel) {
	it := sl.Current().Interface().(OpexItem)
	switch {
	case it.Mode.IsFraction() && it.Value > 1:
		sl.ReportError(it.Value, "value", "Value", "lte", "1")
	case math.IsInf(it.Value, 1):
		sl.ReportError(it.Value, "value", "Value", "finite", "")
	}
}

// Validate checks every field of raw against its range constraint and returns
// a copy of raw on success. It never stops at the first problem: the returned
// *ValidationError carries every violation. Values are never clamped.
func Validate(raw ParameterSet) (ParameterSet, error) {
	if err := _validate.Struct(raw); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return ParameterSet{}, fmt.Errorf("params: validate: %w", err)
		}
		out := &ValidationError{Violations: make([]FieldError, 0, len(verrs))}
		for _, fe := range verrs {
			out.Violations = append(out.Violations, FieldError{
				Field:  fieldPath(fe),
				Reason: reason(fe),
			})
		}
		return ParameterSet{}, out
	}
	return raw.Clone(), nil
}

// Validate is shorthand for Validate(p) when only the error matters.
func (p ParameterSet) Validate() error {
	_, err := Validate(p)
	return err
}

// fieldPath drops the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	_, rest, ok := strings.Cut(fe.Namespace(), ".")
	if !ok {
		return fe.Field()
	}
	return rest
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "must be > " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "unique":
		return "names must be unique"
	case "power_regimes":
		return "idlePowerFraction + baselinePowerFraction must be <= 1"
	case "finite":
		return "must be finite"
	case "overflow":
		return "is too large: derived amounts overflow"
	case "allocation":
		return "gpuAllocationFraction + networkAllocationFraction must be <= 1"
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}
