// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hookgate/hookgate/database/memdb"
	"github.com/hookgate/hookgate/utils/logging"
)

type failingChecker struct{}

func (failingChecker) HealthCheck(context.Context) (interface{}, error) {
	return nil, errors.New("unhealthy")
}

func TestHealthyDatabase(t *testing.T) {
	require := require.New(t)

	handler := NewHandler(logging.NoLog, map[string]Checker{
		"database": memdb.New(),
	})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ext/health", nil))

	require.Equal(http.StatusOK, w.Code)

	reply := response{}
	require.NoError(json.Unmarshal(w.Body.Bytes(), &reply))
	require.True(reply.Healthy)
	require.Contains(reply.Checks, "database")
}

func TestFailingCheck(t *testing.T) {
	require := require.New(t)

	handler := NewHandler(logging.NoLog, map[string]Checker{
		"database": memdb.New(),
		"failing":  failingChecker{},
	})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ext/health", nil))

	require.Equal(http.StatusServiceUnavailable, w.Code)

	reply := response{}
	require.NoError(json.Unmarshal(w.Body.Bytes(), &reply))
	require.False(reply.Healthy)
	require.Equal("unhealthy", reply.Checks["failing"].Error)
}
