// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/mattn/go-colorable"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/treeedit/background"
	"github.com/bitmark-inc/treeedit/editor"
	"github.com/bitmark-inc/treeedit/fault"
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
		fmt.Printf("%s\n", version)
		return
	}

	if len(options["help"]) > 0 {
		printUsage(program)
		return
	}

	configurationFile := ""
	switch n := len(options["config-file"]); n {
	case 0:
	case 1:
		configurationFile = options["config-file"][0]
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, n)
	}

	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	if verbose {
		theConfiguration.Logging.Console = true
		theConfiguration.Logging.Levels["main"] = "debug"
		theConfiguration.Logging.Levels["editor"] = "debug"
	}

	// start logging
	if err = os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q creation failed, error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %+v", theConfiguration)

	inputTerminal := terminal.IsTerminal(int(os.Stdin.Fd()))
	outputTerminal := terminal.IsTerminal(int(os.Stdout.Fd()))

	makeSettings := func(c *Configuration) editor.Settings {
		settings := c.Display.settings(outputTerminal)
		if quiet {
			settings.Refresh = false
		}
		return settings
	}

	out := colorable.NewColorableStdout()
	theEditor := editor.New(logger.New("editor"), editor.DefaultFactory, out, makeSettings(theConfiguration))

	// live reload of display settings
	if "" != configurationFile && theConfiguration.Watch {
		watcher, err := newConfigWatcher(configurationFile, logger.New("watcher"), func(c *Configuration) {
			theEditor.SetSettings(makeSettings(c))
		})
		if nil != err {
			log.Errorf("configuration watcher error: %s", err)
		} else {
			processes := background.Processes{
				watcher,
			}
			bg := background.Start(processes, nil)
			defer bg.Stop()
		}
	}

	sh := newShell(log, theEditor, out, colorable.NewColorableStderr(), theConfiguration.Prompt)
	sh.verbose = verbose

	failures := 0
	if len(arguments) > 0 {
		for _, fileName := range arguments {
			n, err := sh.runFile(fileName)
			failures += n
			if nil != err {
				log.Errorf("script: %q  error: %s", fileName, err)
				exitwithstatus.Message("%s: script: %q  error: %s", program, fileName, err)
			}
			if sh.quit {
				break
			}
		}
	} else {
		sh.interactive = inputTerminal && !quiet
		n, err := sh.run(os.Stdin, "stdin")
		failures += n
		if nil != err {
			log.Errorf("input error: %s", err)
			exitwithstatus.Message("%s: input error: %s", program, err)
		}
	}

	log.Infof("failed commands: %d", failures)
	if failures > 0 && !sh.interactive {
		exitwithstatus.Exit(1)
	}
}

func printUsage(program string) {
	fmt.Printf("usage: %s [--help] [--version] [--verbose] [--quiet] [--config-file=FILE] [SCRIPT...]\n", program)
	fmt.Printf("\n")
	fmt.Printf("  --help             (-h)  - display this message\n")
	fmt.Printf("  --version          (-V)  - display version string\n")
	fmt.Printf("  --verbose          (-v)  - debug logging to console, report deletes that remove nothing\n")
	fmt.Printf("  --quiet            (-q)  - no prompt and no display after each change\n")
	fmt.Printf("  --config-file=FILE (-c)  - Lua (.lua, .conf) or YAML (.yaml, .yml) configuration\n")
	fmt.Printf("\n")
	fmt.Printf("  SCRIPT                   - files of commands to run instead of reading standard input\n")
	fmt.Printf("\n")
	fmt.Printf("commands: root VALUE | add PARENT VALUE | update OLD NEW | delete VALUE | find VALUE\n")
	fmt.Printf("          show [--json|--ascii] | count | check | clear | help | quit\n")
}
