package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/dcmodel/pkg/engine"
	"github.com/ja7ad/dcmodel/pkg/params"
)

func defaultsReport(t *testing.T) *Report {
	t.Helper()
	p := params.Defaults()
	pnl, err := engine.ComputePnL(p)
	require.NoError(t, err)
	cf, err := engine.ComputeCashFlow(p, p.ProjectionYears)
	require.NoError(t, err)
	m, err := engine.ComputeSummaryMetrics(pnl, cf)
	require.NoError(t, err)
	return &Report{
		Params:   p,
		PnL:      pnl,
		CashFlow: cf,
		Summary:  m,
		Insights: engine.Insights(p, pnl, m),
	}
}

func readCSV(t *testing.T, b []byte) [][]string {
	t.Helper()
	recs, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
	require.NoError(t, err)
	return recs
}

func column(t *testing.T, header []string, name string) int {
	t.Helper()
	for i, h := range header {
		if h == name {
			return i
		}
	}
	t.Fatalf("column %q not in %v", name, header)
	return -1
}

func TestPnLHeader_OpexColumnsInOrder(t *testing.T) {
	s := engine.PnLStatement{Opex: []engine.OpexLine{{Name: "Site Lease"}, {Name: "sga"}}}
	h := PnLHeader(s)

	require.Len(t, h, 6+2+9)
	assert.Equal(t, []string{"year", "revenue", "power_active", "power_idle", "power_baseline", "power_total"}, h[:6])
	assert.Equal(t, []string{"opex_site_lease", "opex_sga"}, h[6:8])
	assert.Equal(t, "opex_items_total", h[8])
	assert.Equal(t, "net_income", h[len(h)-1])
}

func TestWritePnLCSV(t *testing.T) {
	s := engine.PnLStatement{
		Year:    1,
		Revenue: 400e6,
		Power:   engine.PowerCost{Active: 729_270_000, Idle: 22_783_200, Baseline: 56_958_000, Total: 809_011_200},
		Opex: []engine.OpexLine{
			{Name: "Site Lease", Mode: params.OpexFlat, Amount: 30e6},
		},
		OpexItemsTotal:  30e6,
		TotalOpex:       839_011_200,
		TotalInvestment: 1e9,
		Depreciation:    100e6,
		EBIT:            -542_604_800,
	}

	var buf bytes.Buffer
	require.NoError(t, WritePnLCSV(&buf, s))
	recs := readCSV(t, buf.Bytes())
	require.Len(t, recs, 2)
	h, row := recs[0], recs[1]
	require.Len(t, row, len(h))

	assert.Equal(t, "1", row[column(t, h, "year")])
	assert.Equal(t, "400000000.00", row[column(t, h, "revenue")])
	assert.Equal(t, "30000000.00", row[column(t, h, "opex_site_lease")])
	assert.Equal(t, "-542604800.00", row[column(t, h, "ebit")])
	assert.Equal(t, "0.00", row[column(t, h, "tax")])
}

func TestWriteCashFlowCSV(t *testing.T) {
	tbl := engine.CashFlowTable{Rows: []engine.CashFlowRow{
		{Year: 1, CapitalOutlay: 300, OperatingCashFlow: 100, NetCashFlow: -200, CumulativeCashFlow: -200},
		{Year: 2, OperatingCashFlow: 100, NetCashFlow: 100, CumulativeCashFlow: -100},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCashFlowCSV(&buf, tbl))
	recs := readCSV(t, buf.Bytes())

	require.Len(t, recs, 3)
	assert.Equal(t, _cashFlowHeader, recs[0])
	assert.Equal(t, []string{"1", "300.00", "100.00", "-200.00", "-200.00"}, recs[1])
	assert.Equal(t, []string{"2", "0.00", "100.00", "100.00", "-100.00"}, recs[2])
}

func TestWriteSummaryCSV(t *testing.T) {
	t.Run("no payback leaves the cell empty", func(t *testing.T) {
		m := engine.SummaryMetrics{EBITMargin: -1.356512, NetMargin: -1.356512, TotalInvestment: 1e9, ReturnOnInvestment: -0.3069536}

		var buf bytes.Buffer
		require.NoError(t, WriteSummaryCSV(&buf, m))
		recs := readCSV(t, buf.Bytes())

		require.Len(t, recs, 2)
		assert.Equal(t, _summaryHeader, recs[0])
		assert.Equal(t, []string{"-1.356512", "-1.356512", "", "1000000000.00", "-0.306954", "0.00"}, recs[1])
	})

	t.Run("payback year", func(t *testing.T) {
		year := 3
		m := engine.SummaryMetrics{EBITMargin: 0.25, PaybackPeriodYears: &year}

		var buf bytes.Buffer
		require.NoError(t, WriteSummaryCSV(&buf, m))
		recs := readCSV(t, buf.Bytes())

		assert.Equal(t, "0.25", recs[1][0])
		assert.Equal(t, "3", recs[1][2])
	})
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"sga":                   "sga",
		"Site Lease":            "site_lease",
		"Software & Compliance": "software_compliance",
		"  padded--name  ":      "padded_name",
		"Tier3":                 "tier3",
		"":                      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, SnakeCase(in), "input %q", in)
	}
}

func TestWriteJSON(t *testing.T) {
	r := defaultsReport(t)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, r))

	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	for _, k := range []string{"params", "pnl", "cashFlow", "summary", "breakEvenUtilization", "insights"} {
		assert.Contains(t, out, k)
	}
	assert.Equal(t, "null", string(out["breakEvenUtilization"]))

	var back Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, r.Summary.PaybackPeriodYears, back.Summary.PaybackPeriodYears)
	assert.InDelta(t, r.PnL.EBIT, back.PnL.EBIT, 1e-6)
}

func TestWriteHTML(t *testing.T) {
	r := defaultsReport(t)
	be := 0.25
	r.BreakEven = &be

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, r))
	page := buf.String()

	assert.Contains(t, page, "<title>Data Center Unit Economics</title>")
	assert.Contains(t, page, "$8.40B")
	assert.Contains(t, page, "Break-even utilization: 25.0%")
	assert.Contains(t, page, "infrastructure_maintenance")
	assert.Equal(t, r.CashFlow.Len(), strings.Count(page, "<tr>\n<td>"), "one table row per projection year")
}

func TestWriteFiles(t *testing.T) {
	r := defaultsReport(t)
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := WriteFiles(dir, r, true)
	require.NoError(t, err)
	require.Len(t, paths, 5)

	for _, name := range []string{PnLFile, CashFlowFile, SummaryFile, JSONFile, HTMLFile} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}

	b, err := os.ReadFile(filepath.Join(dir, CashFlowFile))
	require.NoError(t, err)
	assert.Len(t, readCSV(t, b), r.CashFlow.Len()+1)
}

func TestWriteFiles_CollectsEveryFailure(t *testing.T) {
	r := defaultsReport(t)
	dir := t.TempDir()
	// directories squatting on two target names make those creates fail
	require.NoError(t, os.Mkdir(filepath.Join(dir, PnLFile), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, JSONFile), 0o755))

	paths, err := WriteFiles(dir, r, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), PnLFile)
	assert.Contains(t, err.Error(), JSONFile)
	assert.Equal(t, []string{filepath.Join(dir, CashFlowFile), filepath.Join(dir, SummaryFile)}, paths)

	_, statErr := os.Stat(filepath.Join(dir, HTMLFile))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
