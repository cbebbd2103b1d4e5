// Package analysis runs the financial engine end to end and assembles a
// report.Report, optionally reading through a cache.
package analysis

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"

	"github.com/ja7ad/dcmodel/pkg/cache"
	"github.com/ja7ad/dcmodel/pkg/engine"
	"github.com/ja7ad/dcmodel/pkg/params"
	"github.com/ja7ad/dcmodel/pkg/report"
)

// Analyzer is safe for concurrent use.
type Analyzer struct {
	cfg *Config

	hits, misses, cacheErrs atomic.Uint64
}

// New creates an Analyzer. Non-nil fields in cfg override defaults.
func New(cfg *Config) *Analyzer {
	base := _defaultConfig()
	if cfg == nil {
		return &Analyzer{cfg: base}
	}

	merged := *base
	if cfg.Cache != nil {
		merged.Cache = cfg.Cache
	}
	if cfg.Logger != nil {
		merged.Logger = cfg.Logger
	}
	return &Analyzer{cfg: &merged}
}

// Run validates p and evaluates it over p.ProjectionYears. A cache failure
// never fails Run: it is logged and the report is computed instead.
func (a *Analyzer) Run(ctx context.Context, p params.ParameterSet) (*report.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := params.Validate(p)
	if err != nil {
		return nil, err
	}

	var key string
	if a.cfg.Cache != nil {
		key, err = cache.Key(v, v.ProjectionYears)
		if err != nil {
			a.cacheFailed("key", err)
		} else if r, ok := a.lookup(ctx, key); ok {
			return r, nil
		}
	}

	r, err := evaluate(v)
	if err != nil {
		return nil, err
	}

	if key != "" {
		a.store(ctx, key, r)
	}
	return r, nil
}

// Stats returns a snapshot of cache counters.
func (a *Analyzer) Stats() Stats {
	return Stats{
		Hits:        a.hits.Load(),
		Misses:      a.misses.Load(),
		CacheErrors: a.cacheErrs.Load(),
	}
}

func evaluate(p params.ParameterSet) (*report.Report, error) {
	pnl, err := engine.ComputePnL(p)
	if err != nil {
		return nil, err
	}
	cf, err := engine.ComputeCashFlow(p, p.ProjectionYears)
	if err != nil {
		return nil, err
	}
	m, err := engine.ComputeSummaryMetrics(pnl, cf)
	if err != nil {
		return nil, err
	}
	r := &report.Report{
		Params:   p,
		PnL:      pnl,
		CashFlow: cf,
		Summary:  m,
		Insights: engine.Insights(p, pnl, m),
	}
	u, ok, err := engine.BreakEvenUtilization(p)
	if err != nil {
		return nil, err
	}
	if ok {
		r.BreakEven = &u
	}
	return r, nil
}

func (a *Analyzer) lookup(ctx context.Context, key string) (*report.Report, bool) {
	b, ok, err := a.cfg.Cache.Get(ctx, key)
	if err != nil {
		a.cacheFailed("get", err, slog.String("key", key))
		return nil, false
	}
	if !ok {
		a.misses.Add(1)
		return nil, false
	}
	var r report.Report
	if err := json.Unmarshal(b, &r); err != nil {
		a.cacheFailed("decode", err, slog.String("key", key))
		return nil, false
	}
	a.hits.Add(1)
	return &r, true
}

func (a *Analyzer) store(ctx context.Context, key string, r *report.Report) {
	b, err := json.Marshal(r)
	if err != nil {
		a.cacheFailed("encode", err, slog.String("key", key))
		return
	}
	if err := a.cfg.Cache.Set(ctx, key, b); err != nil {
		a.cacheFailed("set", err, slog.String("key", key))
	}
}

func (a *Analyzer) cacheFailed(op string, err error, attrs ...slog.Attr) {
	a.cacheErrs.Add(1)
	args := []any{slog.String("op", op), slog.Any("err", err)}
	for _, at := range attrs {
		args = append(args, at)
	}
	a.cfg.Logger.Warn("cache unavailable, computing", args...)
}
