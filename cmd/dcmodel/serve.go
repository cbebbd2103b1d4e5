package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ja7ad/dcmodel/internal/server"
	"github.com/ja7ad/dcmodel/pkg/analysis"
	"github.com/ja7ad/dcmodel/pkg/cache"
)

func serveCmd() *cobra.Command {
	var (
		addr      string
		redisAddr string
		ttl       time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the model over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log := slog.Default()
			c, closeCache := newCache(ctx, log, redisAddr, ttl)
			defer closeCache()

			a := analysis.New(&analysis.Config{Cache: c, Logger: log})
			return server.New(a, log).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", envOr(EnvAddr, ":8080"), "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", os.Getenv(EnvRedisAddr), "Redis address for the result cache (empty: in-memory)")
	cmd.Flags().DurationVar(&ttl, "cache-ttl", time.Hour, "Redis entry TTL (0 = no expiry)")
	return cmd
}

// newCache prefers Redis when configured. An unreachable Redis is logged
// and kept: the analyzer computes through cache failures.
func newCache(ctx context.Context, log *slog.Logger, addr string, ttl time.Duration) (cache.Cache, func()) {
	if addr == "" {
		log.Info("using in-memory cache")
		return cache.NewMemory(), func() {}
	}

	r := cache.NewRedis(addr, ttl)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := r.Ping(pingCtx); err != nil {
		log.Warn("redis unreachable", "addr", addr, "err", err)
	} else {
		log.Info("using redis cache", "addr", addr, "ttl", ttl)
	}
	return r, func() { _ = r.Close() }
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
