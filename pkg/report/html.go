package report

import (
	"bytes"
	"html/template"
	"io"
	"strconv"

	"github.com/ja7ad/dcmodel/pkg/types"
)

// WriteHTML renders r as a single self-contained page.
func WriteHTML(w io.Writer, r *Report) error {
	var buf bytes.Buffer
	if err := _tpl.Execute(&buf, r); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var _funcs = template.FuncMap{
	"money": func(v float64) string { return types.Money(v).Humanized() },
	"pct":   func(v float64) string { return strconv.FormatFloat(v*100, 'f', 1, 64) + "%" },
}

var _tpl = template.Must(template.New("rep").Funcs(_funcs).Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Data Center Unit Economics</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px;margin-bottom:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
.small{color:#555}
.badge{display:inline-block;border:1px solid #ccd;padding:2px 6px;border-radius:6px;margin-right:6px;}
.good{background:#efe}.warning{background:#fee}.info{background:#eef}
</style>

<h1>Data Center Unit Economics</h1>

<p class="small">
Capacity: {{.Params.CapacityGW}} GW &nbsp;|&nbsp;
Utilization: {{pct .Params.UtilizationRate}} &nbsp;|&nbsp;
PUE: {{.Params.PUE}} &nbsp;|&nbsp;
Investment: {{money .Summary.TotalInvestment}}
</p>

<h2>Summary</h2>
<ul>
<li>EBIT margin: {{pct .Summary.EBITMargin}}</li>
<li>Net margin: {{pct .Summary.NetMargin}}</li>
<li>Payback: {{with .Summary.PaybackPeriodYears}}{{.}} years{{else}}not within {{len $.CashFlow.Rows}} years{{end}}</li>
<li>Return on investment (year 1): {{pct .Summary.ReturnOnInvestment}}</li>
<li>Final cumulative cash flow: {{money .Summary.FinalCumulativeCashFlow}}</li>
{{with .BreakEven}}<li>Break-even utilization: {{pct .}}</li>{{end}}
</ul>

{{if .Insights}}
<h2>Insights</h2>
<ul>
{{range .Insights}}
  <li><span class="badge {{.Level}}">{{.Level}}</span> {{.Message}}</li>
{{end}}
</ul>
{{end}}

<h2>P&amp;L (year {{.PnL.Year}})</h2>
<table>
<tbody>
<tr><td>Revenue</td><td>{{money .PnL.Revenue}}</td></tr>
<tr><td>Power (active)</td><td>{{money .PnL.Power.Active}}</td></tr>
<tr><td>Power (idle)</td><td>{{money .PnL.Power.Idle}}</td></tr>
<tr><td>Power (baseline)</td><td>{{money .PnL.Power.Baseline}}</td></tr>
{{range .PnL.Opex}}
<tr><td>{{.Name}} <span class="small">({{.Mode}})</span></td><td>{{money .Amount}}</td></tr>
{{end}}
<tr><th>Total opex</th><th>{{money .PnL.TotalOpex}}</th></tr>
<tr><td>EBITDA</td><td>{{money .PnL.EBITDA}}</td></tr>
<tr><td>Depreciation</td><td>{{money .PnL.Depreciation}}</td></tr>
<tr><th>EBIT</th><th>{{money .PnL.EBIT}}</th></tr>
<tr><td>Tax</td><td>{{money .PnL.Tax}}</td></tr>
<tr><th>Net income</th><th>{{money .PnL.NetIncome}}</th></tr>
</tbody>
</table>

<h2>Cash flow</h2>
<table>
<thead>
<tr><th>year</th><th>capital outlay</th><th>operating</th><th>net</th><th>cumulative</th></tr>
</thead>
<tbody>
{{range .CashFlow.Rows}}
<tr>
<td>{{.Year}}</td>
<td>{{money .CapitalOutlay}}</td>
<td>{{money .OperatingCashFlow}}</td>
<td>{{money .NetCashFlow}}</td>
<td>{{money .CumulativeCashFlow}}</td>
</tr>
{{end}}
</tbody>
</table>
</html>`))
