// Package server exposes the model over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ja7ad/dcmodel/pkg/analysis"
)

const _shutdownTimeout = 5 * time.Second

// Server serves the JSON and CSV API.
type Server struct {
	analyzer *analysis.Analyzer
	log      *slog.Logger
	router   *gin.Engine
}

// New builds the router. A nil logger uses slog.Default().
func New(a *analysis.Analyzer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{analyzer: a, log: log, router: gin.New()}
	s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), _shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("server stopped")
	return nil
}

func (s *Server) routes() {
	s.router.Use(gin.Recovery(), requestID(), s.accessLog())

	s.router.GET("/healthz", handle(s.healthz))

	v1 := s.router.Group("/api/v1")
	v1.GET("/defaults", handle(s.defaults))
	v1.POST("/evaluate", handle(s.evaluate))
	v1.POST("/export/pnl.csv", handle(s.exportPnL))
	v1.POST("/export/cashflow.csv", handle(s.exportCashFlow))
}
