// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE]", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: extraneous arguments: %v", program, arguments)
	}

	theConfiguration := configuration.DefaultConfiguration()
	if 1 == len(options["config-file"]) {
		theConfiguration, err = configuration.GetConfiguration(options["config-file"][0])
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, options["config-file"][0], err)
		}
	} else if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	} else {
		// without a configuration file stay in the current directory
		theConfiguration.DataDirectory = "."
		theConfiguration.Logging.Directory = "."
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
		theConfiguration.Logging.Levels = map[string]string{
			logger.DefaultTag: "info",
		}
	}
	if len(options["quiet"]) > 0 {
		theConfiguration.Logging.Console = false
		theConfiguration.Logging.Levels = map[string]string{
			logger.DefaultTag: "critical",
		}
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("shell")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	s := newShell(theConfiguration, log, os.Stdin, os.Stdout, os.Stderr)
	s.run()
}
