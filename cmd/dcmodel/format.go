package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/ja7ad/dcmodel/pkg/report"
	"github.com/ja7ad/dcmodel/pkg/types"
)

const _console = `dcmodel - Data Center Unit Economics

       Capacity: %g GW
       Utilization: %.1f%%
       Power: $%g/kWh at PUE %g
       Investment: %s

Report as of %s:

`

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

func printReport(w io.Writer, r *report.Report) {
	p := r.Params
	fmt.Fprintf(w, _console, p.CapacityGW, p.UtilizationRate*100, p.PowerCostPerKWh, p.PUE,
		types.Money(r.Summary.TotalInvestment).Humanized(), time.Now().Format("2006-01-02 15:04:05"))

	printPnL(w, r)
	fmt.Fprintln(w)
	printCashFlow(w, r)
	fmt.Fprintln(w)
	printSummary(w, r)
}

func printPnL(w io.Writer, r *report.Report) {
	s := r.PnL
	tw := newTable(w)
	fmt.Fprintf(tw, "P&L (year %d)\t\t\n", s.Year)
	fmt.Fprintln(tw, "-----------\t-----\t")
	line := func(label string, v float64) { fmt.Fprintf(tw, "%s\t%s\t\n", label, types.Money(v).Humanized()) }

	line("Revenue", s.Revenue)
	line("Power (active)", s.Power.Active)
	line("Power (idle)", s.Power.Idle)
	line("Power (baseline)", s.Power.Baseline)
	for _, o := range s.Opex {
		line(o.Name, o.Amount)
	}
	line("Total opex", s.TotalOpex)
	line("EBITDA", s.EBITDA)
	line("Depreciation", s.Depreciation)
	line("EBIT", s.EBIT)
	line("Tax", s.Tax)
	line("Net income", s.NetIncome)
	tw.Flush()
}

func printCashFlow(w io.Writer, r *report.Report) {
	tw := newTable(w)
	fmt.Fprintln(tw, "YEAR\tOUTLAY\tOPERATING\tNET\tCUMULATIVE\t")
	fmt.Fprintln(tw, "----\t------\t---------\t---\t----------\t")
	for _, row := range r.CashFlow.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n", row.Year,
			types.Money(row.CapitalOutlay).Humanized(),
			types.Money(row.OperatingCashFlow).Humanized(),
			types.Money(row.NetCashFlow).Humanized(),
			types.Money(row.CumulativeCashFlow).Humanized(),
		)
	}
	tw.Flush()
}

func printSummary(w io.Writer, r *report.Report) {
	m := r.Summary
	fmt.Fprintln(w, "summary:")
	fmt.Fprintf(w, "- EBIT margin:       %.1f%%\n", m.EBITMargin*100)
	fmt.Fprintf(w, "- net margin:        %.1f%%\n", m.NetMargin*100)
	if m.PaybackPeriodYears != nil {
		fmt.Fprintf(w, "- payback:           %d years\n", *m.PaybackPeriodYears)
	} else {
		fmt.Fprintf(w, "- payback:           none within %d years\n", r.CashFlow.Len())
	}
	fmt.Fprintf(w, "- ROI (year 1):      %.1f%%\n", m.ReturnOnInvestment*100)
	fmt.Fprintf(w, "- final cumulative:  %s\n", types.Money(m.FinalCumulativeCashFlow).Humanized())
	if r.BreakEven != nil {
		fmt.Fprintf(w, "- break-even util.:  %.1f%%\n", *r.BreakEven*100)
	}
	for _, in := range r.Insights {
		fmt.Fprintf(w, "  [%s] %s\n", in.Level, in.Message)
	}
	fmt.Fprintln(w)
}
