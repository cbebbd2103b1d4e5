package analysis

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/dcmodel/pkg/cache"
	"github.com/ja7ad/dcmodel/pkg/engine"
	"github.com/ja7ad/dcmodel/pkg/params"
)

var errDown = errors.New("cache down")

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, errDown }
func (brokenCache) Set(context.Context, string, []byte) error { return errDown }

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestRun_AssemblesReport(t *testing.T) {
	p := params.Defaults()
	r, err := New(nil).Run(context.Background(), p)
	require.NoError(t, err)

	pnl, err := engine.ComputePnL(p)
	require.NoError(t, err)
	cf, err := engine.ComputeCashFlow(p, p.ProjectionYears)
	require.NoError(t, err)
	m, err := engine.ComputeSummaryMetrics(pnl, cf)
	require.NoError(t, err)

	assert.Equal(t, pnl, r.PnL)
	assert.Equal(t, cf, r.CashFlow)
	assert.Equal(t, m, r.Summary)
	assert.Equal(t, engine.Insights(p, pnl, m), r.Insights)
	require.NotNil(t, r.BreakEven)
	assert.InDelta(t, 286_656_000.0/1_180_064_000.0, *r.BreakEven, 1e-9)
	t.Logf("EBIT=%.0f payback=%d break-even=%.4f", r.PnL.EBIT, *r.Summary.PaybackPeriodYears, *r.BreakEven)
}

func TestRun_NoBreakEvenWhenNeverProfitable(t *testing.T) {
	p := params.Defaults()
	p.RevenueRatePerGW = 1e9 // below depreciation alone

	r, err := New(nil).Run(context.Background(), p)
	require.NoError(t, err)
	assert.Nil(t, r.BreakEven)
	assert.Nil(t, r.Summary.PaybackPeriodYears)
}

func TestRun_InvalidParams(t *testing.T) {
	mem := cache.NewMemory()
	a := New(&Config{Cache: mem})

	p := params.Defaults()
	p.UtilizationRate = 1.5
	p.PUE = 0.9

	r, err := a.Run(context.Background(), p)
	assert.Nil(t, r)
	var ve *params.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.True(t, ve.Has("utilizationRate"))
	assert.True(t, ve.Has("pue"))
	assert.Zero(t, mem.Len())
	assert.Equal(t, Stats{}, a.Stats())
}

func TestRun_CachesReports(t *testing.T) {
	mem := cache.NewMemory()
	a := New(&Config{Cache: mem})
	ctx := context.Background()

	first, err := a.Run(ctx, params.Defaults())
	require.NoError(t, err)
	second, err := a.Run(ctx, params.Defaults())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, Stats{Hits: 1, Misses: 1}, a.Stats())
	assert.Equal(t, 1, mem.Len())

	p := params.Defaults()
	p.ProjectionYears = 20
	third, err := a.Run(ctx, p)
	require.NoError(t, err)
	assert.Len(t, third.CashFlow.Rows, 20)
	assert.Equal(t, 2, mem.Len())
}

func TestRun_BrokenCacheFallsThrough(t *testing.T) {
	log, buf := bufferLogger()
	a := New(&Config{Cache: brokenCache{}, Logger: log})

	r, err := a.Run(context.Background(), params.Defaults())
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Equal(t, Stats{CacheErrors: 2}, a.Stats())
	assert.Contains(t, buf.String(), "op=get")
	assert.Contains(t, buf.String(), "op=set")
	assert.Contains(t, buf.String(), "cache down")
}

func TestRun_CorruptEntryIsRecomputed(t *testing.T) {
	mem := cache.NewMemory()
	log, buf := bufferLogger()
	a := New(&Config{Cache: mem, Logger: log})
	ctx := context.Background()

	p := params.Defaults()
	key, err := cache.Key(p, p.ProjectionYears)
	require.NoError(t, err)
	require.NoError(t, mem.Set(ctx, key, []byte("{not json")))

	r, err := a.Run(ctx, p)
	require.NoError(t, err)
	assert.NotNil(t, r.Summary.PaybackPeriodYears)
	assert.Contains(t, buf.String(), "op=decode")

	// the bad entry was replaced
	again, err := a.Run(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, r, again)
	assert.Equal(t, uint64(1), a.Stats().Hits)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Run(ctx, params.Defaults())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Concurrent(t *testing.T) {
	a := New(&Config{Cache: cache.NewMemory()})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := a.Run(context.Background(), params.Defaults())
			assert.NoError(t, err)
			assert.NotNil(t, r)
		}()
	}
	wg.Wait()

	s := a.Stats()
	assert.Equal(t, uint64(16), s.Hits+s.Misses)
}
