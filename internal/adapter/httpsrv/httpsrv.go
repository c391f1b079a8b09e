package httpsrv

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Server exposes metrics and a health endpoint while endpoints are being watched.
type Server struct {
	srv *http.Server
}

type ServerOptions struct {
	MetricsHandler http.Handler
	MetricsPath    string
	Progress       ProgressFunc
}

func NewServer(addr string, opts ServerOptions) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           newRouter(opts),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func newRouter(opts ServerOptions) *http.ServeMux {
	router := http.NewServeMux()

	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	router.Handle("GET /health", healthHandler(opts.Progress))

	if opts.MetricsHandler != nil {
		router.Handle(opts.MetricsPath, opts.MetricsHandler)
	}

	return router
}

func (s *Server) ListenAddr() string {
	return s.srv.Addr
}

func (s *Server) Start() error {
	err := s.srv.ListenAndServe()

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
