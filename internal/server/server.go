// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"

	"github.com/MKhiriev/go-eightball/internal/config"
	"github.com/MKhiriev/go-eightball/internal/logger"
)

type server struct {
	address    string
	httpServer *httpServer
	logger     *logger.Logger

	listen func(network, address string) (net.Listener, error)
}

func NewServer(handler http.Handler, cfg config.ServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.Address == "" {
		return nil, errNoAddress
	}
	if handler == nil {
		return nil, errNoHandler
	}

	return &server{
		address:    cfg.Address,
		httpServer: newHTTPServer(handler, cfg.Address, logger),
		logger:     logger,
		listen:     net.Listen,
	}, nil
}

// Run listens on the configured address and serves until ctx is cancelled,
// then drains in-flight requests for at most shutdownTimeout.
func (s *server) Run(ctx context.Context) error {
	ln, err := s.listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, ln)
}

func (s *server) serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)

	s.logger.Info().Str("address", ln.Addr().String()).Msg("launching HTTP server")
	go func() {
		errCh <- s.httpServer.serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info().Msg("server shut down gracefully")

	return <-errCh
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}
