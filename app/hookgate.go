// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hookgate/hookgate/admin"
	"github.com/hookgate/hookgate/api/health"
	"github.com/hookgate/hookgate/api/server"
	"github.com/hookgate/hookgate/config"
	"github.com/hookgate/hookgate/database"
	"github.com/hookgate/hookgate/database/leveldb"
	"github.com/hookgate/hookgate/database/memdb"
	"github.com/hookgate/hookgate/database/meterdb"
	"github.com/hookgate/hookgate/database/prefixdb"
	"github.com/hookgate/hookgate/hook"
	"github.com/hookgate/hookgate/service"
	"github.com/hookgate/hookgate/utils/logging"
	"github.com/hookgate/hookgate/utils/wrappers"
	"github.com/hookgate/hookgate/version"
)

var statePrefix = []byte("state")

type hookgate struct {
	log        logging.Logger
	logFactory logging.Factory
	db         database.Database
	server     *server.Server

	eg errgroup.Group
}

// New wires the database, the gate, and the API server together from [cfg].
func New(cfg config.Config) (App, error) {
	logFactory := logging.NewFactory(cfg.LoggingConfig)
	log, err := logFactory.Make("main")
	if err != nil {
		logFactory.Close()
		return nil, fmt.Errorf("couldn't create logger: %w", err)
	}

	log.Info("starting",
		zap.Stringer("version", version.Current),
		zap.Stringer("programID", cfg.ProgramID),
	)

	registry := prometheus.NewRegistry()

	var baseDB database.Database
	if cfg.DBType == config.MemDBName {
		baseDB = memdb.New()
	} else {
		baseDB, err = leveldb.New(cfg.DBPath)
		if err != nil {
			logFactory.Close()
			return nil, fmt.Errorf("couldn't open database at %s: %w", cfg.DBPath, err)
		}
	}

	db, err := meterdb.New("db", registry, baseDB)
	if err != nil {
		_ = baseDB.Close()
		logFactory.Close()
		return nil, err
	}

	adm := admin.New(log, prefixdb.New(statePrefix, db), cfg.ProgramID)

	gate, err := hook.New(log, "gate", registry)
	if err != nil {
		_ = db.Close()
		logFactory.Close()
		return nil, err
	}

	handler, err := service.NewHandler(log, adm, gate)
	if err != nil {
		_ = db.Close()
		logFactory.Close()
		return nil, err
	}

	srv := server.New(log, cfg.HTTPHost, cfg.HTTPPort, cfg.HTTPAllowedOrigins)
	srv.AddRoute(handler, service.Name)
	srv.AddMetricsRoute(registry)
	srv.AddRoute(
		health.NewHandler(log, map[string]health.Checker{
			"database": db,
		}),
		"health",
	)

	return &hookgate{
		log:        log,
		logFactory: logFactory,
		db:         db,
		server:     srv,
	}, nil
}

func (h *hookgate) Start() error {
	h.eg.Go(h.server.Dispatch)
	return nil
}

func (h *hookgate) Stop() error {
	h.log.Info("shutting down")
	return h.server.Shutdown()
}

// ExitCode waits for the server to exit and releases the database and the
// loggers.
func (h *hookgate) ExitCode() (int, error) {
	errs := wrappers.Errs{}
	errs.Add(
		h.eg.Wait(),
		h.db.Close(),
	)

	h.log.Stop()
	h.logFactory.Close()

	if errs.Errored() {
		return 1, errs.Err
	}
	return 0, nil
}
