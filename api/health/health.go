// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hookgate/hookgate/utils/logging"
)

const checkTimeout = 5 * time.Second

// Checker reports on the health of a subsystem.
type Checker interface {
	HealthCheck(ctx context.Context) (interface{}, error)
}

type checkResult struct {
	Details interface{} `json:"details,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type response struct {
	Checks  map[string]checkResult `json:"checks"`
	Healthy bool                   `json:"healthy"`
}

// NewHandler returns a handler that runs every registered check and reports
// 200 if all pass, 503 otherwise.
func NewHandler(log logging.Logger, checks map[string]Checker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		defer cancel()

		reply := response{
			Checks:  make(map[string]checkResult, len(checks)),
			Healthy: true,
		}
		for name, check := range checks {
			details, err := check.HealthCheck(ctx)
			result := checkResult{Details: details}
			if err != nil {
				result.Error = err.Error()
				reply.Healthy = false
				log.Warn("failing health check",
					zap.String("check", name),
					zap.Error(err),
				)
			}
			reply.Checks[name] = result
		}

		w.Header().Set("Content-Type", "application/json")
		if !reply.Healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		if err := json.NewEncoder(w).Encode(reply); err != nil {
			log.Debug("failed to encode health response",
				zap.Error(err),
			)
		}
	})
}
