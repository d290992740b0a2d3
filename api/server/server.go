// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/hookgate/hookgate/utils/logging"
)

const (
	baseURL = "/ext"

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server dispatches HTTP requests to the registered endpoints under /ext.
type Server struct {
	log    logging.Logger
	router *mux.Router
	srv    *http.Server
}

func New(
	log logging.Logger,
	host string,
	port uint16,
	allowedOrigins []string,
) *Server {
	router := mux.NewRouter()

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
	})
	handler := corsWrapper.Handler(gziphandler.GzipHandler(router))

	return &Server{
		log:    log,
		router: router,
		srv: &http.Server{
			Addr:              net.JoinHostPort(host, strconv.FormatUint(uint64(port), 10)),
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// AddRoute mounts [handler] at /ext/[base].
func (s *Server) AddRoute(handler http.Handler, base string) {
	url := baseURL + "/" + base
	s.log.Info("adding route",
		zap.String("url", url),
	)
	s.router.Handle(url, handler)
}

// AddMetricsRoute exposes the given gatherer at /ext/metrics.
func (s *Server) AddMetricsRoute(gatherer prometheus.Gatherer) {
	s.AddRoute(
		promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		"metrics",
	)
}

// Dispatch starts serving and blocks until the server is shut down.
func (s *Server) Dispatch() error {
	s.log.Info("API server listening",
		zap.String("address", s.srv.Addr),
	)
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server, waiting up to a fixed timeout for in-flight
// requests to finish.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
