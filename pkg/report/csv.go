package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/ja7ad/dcmodel/pkg/engine"
	"github.com/ja7ad/dcmodel/pkg/types"
	"github.com/ja7ad/dcmodel/pkg/util"
)

var (
	_cashFlowHeader = []string{
		"year", "capital_outlay", "operating_cash_flow", "net_cash_flow", "cumulative_cash_flow",
	}
	_summaryHeader = []string{
		"ebit_margin", "net_margin", "payback_period_years", "total_investment",
		"return_on_investment", "final_cumulative_cash_flow",
	}
)

// PnLHeader returns the P&L CSV header. Opex items get one column each,
// in configured order, between the power and total columns.
func PnLHeader(s engine.PnLStatement) []string {
	h := []string{"year", "revenue", "power_active", "power_idle", "power_baseline", "power_total"}
	for _, l := range s.Opex {
		h = append(h, "opex_"+SnakeCase(l.Name))
	}
	return append(h,
		"opex_items_total", "total_opex", "total_investment", "depreciation",
		"ebitda", "ebit", "ebt", "tax", "net_income",
	)
}

// WritePnLCSV writes the header and one data row for s.
func WritePnLCSV(w io.Writer, s engine.PnLStatement) error {
	row := []string{
		strconv.Itoa(s.Year),
		money(s.Revenue),
		money(s.Power.Active), money(s.Power.Idle), money(s.Power.Baseline), money(s.Power.Total),
	}
	for _, l := range s.Opex {
		row = append(row, money(l.Amount))
	}
	row = append(row,
		money(s.OpexItemsTotal), money(s.TotalOpex), money(s.TotalInvestment), money(s.Depreciation),
		money(s.EBITDA), money(s.EBIT), money(s.EBT), money(s.Tax), money(s.NetIncome),
	)
	return writeAll(w, PnLHeader(s), row)
}

// WriteCashFlowCSV writes one row per projection year.
func WriteCashFlowCSV(w io.Writer, t engine.CashFlowTable) error {
	rows := make([][]string, 0, t.Len())
	for _, r := range t.Rows {
		rows = append(rows, []string{
			strconv.Itoa(r.Year),
			money(r.CapitalOutlay),
			money(r.OperatingCashFlow),
			money(r.NetCashFlow),
			money(r.CumulativeCashFlow),
		})
	}
	return writeAll(w, _cashFlowHeader, rows...)
}

// WriteSummaryCSV writes the summary metrics. The payback cell is empty
// when the investment is never recovered.
func WriteSummaryCSV(w io.Writer, m engine.SummaryMetrics) error {
	payback := ""
	if m.PaybackPeriodYears != nil {
		payback = strconv.Itoa(*m.PaybackPeriodYears)
	}
	return writeAll(w, _summaryHeader, []string{
		util.FmtFloat(m.EBITMargin),
		util.FmtFloat(m.NetMargin),
		payback,
		money(m.TotalInvestment),
		util.FmtFloat(m.ReturnOnInvestment),
		money(m.FinalCumulativeCashFlow),
	})
}

// SnakeCase lowercases s and joins runs of letters and digits with '_'.
func SnakeCase(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte('_')
			pending = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func writeAll(w io.Writer, header []string, rows ...[]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func money(v float64) string { return types.Money(v).String() }
