// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey = "config-file"

	HTTPHostKey           = "http-host"
	HTTPPortKey           = "http-port"
	HTTPAllowedOriginsKey = "http-allowed-origins"

	DBTypeKey = "db-type"
	DBPathKey = "db-dir"

	LogLevelKey          = "log-level"
	LogDisplayLevelKey   = "log-display-level"
	LogDirKey            = "log-dir"
	LogDisableDisplayKey = "log-disable-display"

	ProgramIDKey = "program-id"
)
