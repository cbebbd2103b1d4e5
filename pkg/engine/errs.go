package engine

import "errors"

var (
	// ErrInvalidHorizon indicates a cash-flow horizon outside 1..params.MaxProjectionYears.
	ErrInvalidHorizon = errors.New("engine: invalid projection horizon")

	// ErrInvalidYear indicates a P&L year below 1.
	ErrInvalidYear = errors.New("engine: invalid year")

	// ErrEmptyCashFlow indicates summary metrics were requested for a table with no rows.
	ErrEmptyCashFlow = errors.New("engine: empty cash flow table")
)
