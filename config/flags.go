// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	LevelDBName = "leveldb"
	MemDBName   = "memdb"
)

var defaultBaseDir = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hookgate"
	}
	return filepath.Join(home, ".hookgate")
}()

// BuildFlagSet returns the set of flags the daemon understands.
func BuildFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.String(ConfigFileKey, "", "path to an optional JSON config file")

	fs.String(HTTPHostKey, "127.0.0.1", "address the API server listens on")
	fs.Uint16(HTTPPortKey, 9750, "port the API server listens on")
	fs.StringSlice(HTTPAllowedOriginsKey, []string{"*"}, "origins allowed to access the API server")

	fs.String(DBTypeKey, LevelDBName, fmt.Sprintf("database backend, %q or %q", LevelDBName, MemDBName))
	fs.String(DBPathKey, filepath.Join(defaultBaseDir, "db"), "directory holding the database")

	fs.String(LogLevelKey, "info", "log level written to files")
	fs.String(LogDisplayLevelKey, "", "log level written to stdout, defaults to the file level")
	fs.String(LogDirKey, filepath.Join(defaultBaseDir, "logs"), "directory holding log files")
	fs.Bool(LogDisableDisplayKey, false, "disable logging to stdout")

	fs.String(ProgramIDKey, "", "address of the hook program records are derived for")

	return fs
}

// BuildViper parses [args] with [fs], reads the config file when one is
// given, and returns a viper instance with flag, file, and default values
// layered in that order.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if path := v.GetString(ConfigFileKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file %q: %w", path, err)
		}
	}
	return v, nil
}
