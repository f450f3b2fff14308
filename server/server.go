// Package server runs an http.Server around a handler with YAML/env
// configuration, an optional connection limit and signal-driven
// graceful shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/net/netutil"
)

// Server wraps an http.Server with lifecycle management.
type Server struct {
	cfg    Config
	srv    *http.Server
	log    *slog.Logger
	lis    net.Listener
	doneCh chan struct{}
}

// New builds a Server for the given handler. A nil logger falls back
// to slog.Default.
func New(cfg Config, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		cfg: cfg,
		srv: &http.Server{
			Addr:           cfg.Addr,
			Handler:        handler,
			ReadTimeout:    cfg.ReadTimeout,
			WriteTimeout:   cfg.WriteTimeout,
			IdleTimeout:    cfg.IdleTimeout,
			MaxHeaderBytes: cfg.MaxHeaderBytes,
		},
		log:    logger,
		doneCh: make(chan struct{}),
	}
}

// Addr returns the address the server is listening on. It is only
// meaningful after Start has returned.
func (s *Server) Addr() string {
	if s.lis == nil {
		return s.cfg.Addr
	}
	return s.lis.Addr().String()
}

// Start opens the listener and begins serving in a background
// goroutine. When MaxConns is set the listener caps simultaneous
// connections.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}

	if s.cfg.MaxConns > 0 {
		lis = netutil.LimitListener(lis, s.cfg.MaxConns)
	}

	s.lis = lis
	s.log.Info("server listening", "addr", lis.Addr().String())

	go func() {
		defer close(s.doneCh)
		if err := s.srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("server error", "error", err)
		}
	}()

	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests
// up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.srv.Shutdown(ctx)
	<-s.doneCh
	return err
}

// Run starts the server and blocks until SIGINT or SIGTERM, then shuts
// down gracefully within ShutdownTimeout.
func (s *Server) Run() error {
	if err := s.Start(); err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	sig := <-stop
	s.log.Info("shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		s.log.Error("shutdown error", "error", err)
		return err
	}

	s.log.Info("server stopped")
	return nil
}
