// Package engine is the financial model for a data center investment. It turns
// a params.ParameterSet into a one-year P&L, a multi-year cash-flow table and
// summary metrics. Every function is pure: no I/O, no shared state, no
// logging, so callers may invoke it concurrently and cache results keyed by
// the parameter set.
//
// Overview
//
//   - ComputePnL(p) (PnLStatement, error)
//     Revenue, power cost by regime, opex lines, depreciation, EBIT, tax and
//     net income for year 1. PnLForYear gives any later year.
//
//   - ComputeCashFlow(p, years) (CashFlowTable, error)
//     Operating cash flow per year, the capital outlay in year 1, and the
//     running cumulative total.
//
//   - ComputeSummaryMetrics(pnl, table) (SummaryMetrics, error)
//     EBIT and net margins, payback year, return on investment.
//
//   - BreakEvenUtilization(p) and Insights(p, pnl, metrics) add the
//     break-even utilization and qualitative flags.
//
// Power model
//
//	active   = capacityGW * u
//	idle     = capacityGW * (1-u) * idlePowerFraction
//	baseline = capacityGW * baselinePowerFraction
//	cost     = GW * 8760 h * 1e6 kWh/GWh * powerCostPerKWh * PUE   (per regime)
//
// Conventions
//
//   - Tax is max(EBT, 0) * taxRate: losses earn no tax credit in the P&L.
//     The cash-flow formula EBIT*(1-taxRate) is applied as-is.
//   - Margins are 0 when revenue is 0.
//   - Payback is the first year with cumulative cash flow >= 0; exactly zero
//     counts. No such year within the horizon yields a nil PaybackPeriodYears.
//   - Invalid parameters (including zero capacity) fail with
//     *params.ValidationError from every entry point. There are no partial
//     results.
package engine
