// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hookgate/hookgate/ids"
	"github.com/hookgate/hookgate/utils/logging"
)

func buildConfig(t *testing.T, args ...string) (Config, error) {
	t.Helper()

	fs := BuildFlagSet("test")
	v, err := BuildViper(fs, args)
	require.NoError(t, err)
	return New(v)
}

func TestDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := buildConfig(t)
	require.NoError(err)

	require.Equal("127.0.0.1", cfg.HTTPHost)
	require.Equal(uint16(9750), cfg.HTTPPort)
	require.Equal(LevelDBName, cfg.DBType)
	require.Equal(logging.Info, cfg.LoggingConfig.LogLevel)
	require.Equal(logging.Info, cfg.LoggingConfig.DisplayLevel)
	require.NotEqual(ids.Address{}, cfg.ProgramID)
}

func TestFlagOverrides(t *testing.T) {
	require := require.New(t)

	program := ids.GenerateTestAddress()

	cfg, err := buildConfig(t,
		"--http-port", "8080",
		"--db-type", MemDBName,
		"--log-level", "debug",
		"--log-display-level", "error",
		"--program-id", program.String(),
	)
	require.NoError(err)

	require.Equal(uint16(8080), cfg.HTTPPort)
	require.Equal(MemDBName, cfg.DBType)
	require.Equal(logging.Debug, cfg.LoggingConfig.LogLevel)
	require.Equal(logging.Error, cfg.LoggingConfig.DisplayLevel)
	require.Equal(program, cfg.ProgramID)
}

func TestInvalidDBType(t *testing.T) {
	_, err := buildConfig(t, "--db-type", "bolt")
	require.ErrorIs(t, err, errInvalidDBType)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := buildConfig(t, "--log-level", "chatty")
	require.Error(t, err)
}

func TestInvalidProgramID(t *testing.T) {
	_, err := buildConfig(t, "--program-id", "not-an-address")
	require.Error(t, err)
}
