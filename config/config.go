// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/hookgate/hookgate/ids"
	"github.com/hookgate/hookgate/utils/hashing"
	"github.com/hookgate/hookgate/utils/logging"
)

var errInvalidDBType = errors.New("invalid database type")

// Config holds the daemon's parsed configuration.
type Config struct {
	HTTPHost           string
	HTTPPort           uint16
	HTTPAllowedOrigins []string

	DBType string
	DBPath string

	LoggingConfig logging.Config

	// ProgramID is the address every record address is derived against.
	ProgramID ids.Address
}

// New builds a Config from the values in [v].
func New(v *viper.Viper) (Config, error) {
	cfg := Config{
		HTTPHost:           v.GetString(HTTPHostKey),
		HTTPPort:           uint16(v.GetUint(HTTPPortKey)),
		HTTPAllowedOrigins: v.GetStringSlice(HTTPAllowedOriginsKey),
		DBType:             v.GetString(DBTypeKey),
		DBPath:             v.GetString(DBPathKey),
	}

	switch cfg.DBType {
	case LevelDBName, MemDBName:
	default:
		return Config{}, fmt.Errorf("%w: %q", errInvalidDBType, cfg.DBType)
	}

	loggingConfig, err := getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}
	cfg.LoggingConfig = loggingConfig

	programID, err := getProgramID(v)
	if err != nil {
		return Config{}, err
	}
	cfg.ProgramID = programID

	return cfg, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	cfg := logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			MaxSize:   8,
			MaxFiles:  7,
			MaxAge:    0,
			Directory: v.GetString(LogDirKey),
		},
		DisableWriterDisplaying: v.GetBool(LogDisableDisplayKey),
		LoggerName:              "hookgate",
	}

	logLevel, err := logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return logging.Config{}, err
	}
	cfg.LogLevel = logLevel

	cfg.DisplayLevel = logLevel
	if displayLevel := v.GetString(LogDisplayLevelKey); displayLevel != "" {
		cfg.DisplayLevel, err = logging.ToLevel(displayLevel)
		if err != nil {
			return logging.Config{}, err
		}
	}
	return cfg, nil
}

// getProgramID parses the configured program address. When none is given the
// daemon falls back to a fixed address derived from the module name, so a
// single-program deployment needs no flag.
func getProgramID(v *viper.Viper) (ids.Address, error) {
	str := v.GetString(ProgramIDKey)
	if str == "" {
		return ids.ToAddress(hashing.ComputeHash256([]byte("hookgate")))
	}
	return ids.FromString(str)
}
