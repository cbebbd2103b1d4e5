package types

const (
	// HoursPerYear is the 365-day operating year used for annual energy.
	HoursPerYear = 8760.0
	// KWhPerGWh converts gigawatt-hours to kilowatt-hours.
	KWhPerGWh = 1e6
)

// AnnualKWh returns the energy drawn in a year by a constant load of gw gigawatts.
func AnnualKWh(gw float64) float64 {
	return gw * HoursPerYear * KWhPerGWh
}
