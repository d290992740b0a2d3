// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/hookgate/hookgate/app"
	"github.com/hookgate/hookgate/config"
)

func main() {
	fs := config.BuildFlagSet("hookgate")
	v, err := config.BuildViper(fs, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't parse flags: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.New(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't load config: %v\n", err)
		os.Exit(1)
	}

	hookgate, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't initialize: %v\n", err)
		os.Exit(1)
	}

	os.Exit(app.Run(hookgate))
}
