// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

type App interface {
	// Start launches the application and returns immediately.
	Start() error

	// Stop notifies the application to exit and returns immediately.
	Stop() error

	// ExitCode blocks until the application finishes. It should only be
	// called after [Start] returns with no error.
	ExitCode() (int, error)
}

// Run starts [app], shuts it down on SIGINT or SIGTERM, and returns its
// exit code.
func Run(app App) int {
	if err := app.Start(); err != nil {
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	var eg errgroup.Group
	eg.Go(func() error {
		for range signals {
			return app.Stop()
		}
		return nil
	})

	exitCode, err := app.ExitCode()

	signal.Stop(signals)
	close(signals)

	if stopErr := eg.Wait(); stopErr != nil {
		return 1
	}
	if err != nil {
		return 1
	}
	return exitCode
}
