package engine

import "github.com/ja7ad/dcmodel/pkg/params"

// PowerCost is the annual power bill split by draw regime.
// kWh fields are IT energy before PUE; currency fields include PUE.
type PowerCost struct {
	ActiveKWh   float64 `json:"activeKWh"`
	IdleKWh     float64 `json:"idleKWh"`
	BaselineKWh float64 `json:"baselineKWh"`
	Active      float64 `json:"active"`
	Idle        float64 `json:"idle"`
	Baseline    float64 `json:"baseline"`
	Total       float64 `json:"total"`
}

// OpexLine is the annual amount charged for one configured opex item.
type OpexLine struct {
	Name   string          `json:"name"`
	Mode   params.OpexMode `json:"mode"`
	Amount float64         `json:"amount"`
}

// Allocation discloses how the investment splits across asset classes.
// It does not change any total.
type Allocation struct {
	GPU     float64 `json:"gpu"`
	Network float64 `json:"network"`
	Other   float64 `json:"other"`
}

// PnLStatement is one year's profit and loss. All amounts are currency per year.
type PnLStatement struct {
	Year            int        `json:"year"`
	Revenue         float64    `json:"revenue"`
	Power           PowerCost  `json:"power"`
	Opex            []OpexLine `json:"opex"`
	OpexItemsTotal  float64    `json:"opexItemsTotal"`
	TotalOpex       float64    `json:"totalOpex"` // power + opex items
	TotalInvestment float64    `json:"totalInvestment"`
	Allocation      Allocation `json:"allocation"`
	Depreciation    float64    `json:"depreciation"`
	EBITDA          float64    `json:"ebitda"`
	EBIT            float64    `json:"ebit"`
	EBT             float64    `json:"ebt"`
	Tax             float64    `json:"tax"`
	NetIncome       float64    `json:"netIncome"`
}

// CashFlowRow is one projection year.
type CashFlowRow struct {
	Year               int     `json:"year"`
	CapitalOutlay      float64 `json:"capitalOutlay"`
	OperatingCashFlow  float64 `json:"operatingCashFlow"`
	NetCashFlow        float64 `json:"netCashFlow"`
	CumulativeCashFlow float64 `json:"cumulativeCashFlow"`
}

// CashFlowTable holds rows for years 1..N in order.
type CashFlowTable struct {
	Rows []CashFlowRow `json:"rows"`
}

// Len returns the number of projected years.
func (t CashFlowTable) Len() int { return len(t.Rows) }

// PaybackYear returns the first year whose cumulative cash flow is >= 0.
// A cumulative value landing exactly on zero counts as paid back.
func (t CashFlowTable) PaybackYear() (int, bool) {
	for _, r := range t.Rows {
		if r.CumulativeCashFlow >= 0 {
			return r.Year, true
		}
	}
	return 0, false
}

// SummaryMetrics are the headline figures derived from a P&L and a cash flow.
// Margins are 0 when revenue is 0.
type SummaryMetrics struct {
	EBITMargin              float64 `json:"ebitMargin"`
	NetMargin               float64 `json:"netMargin"`
	PaybackPeriodYears      *int    `json:"paybackPeriodYears"` // nil: no payback within the horizon
	TotalInvestment         float64 `json:"totalInvestment"`
	ReturnOnInvestment      float64 `json:"returnOnInvestment"` // year-1 operating cash flow / investment
	FinalCumulativeCashFlow float64 `json:"finalCumulativeCashFlow"`
}
