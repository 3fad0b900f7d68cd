// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlmap/fault"
)

type metadata struct {
	config  *Configuration
	newMap  mapMaker
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

var formatFlag = cli.StringFlag{
	Name:  "format, f",
	Value: jsonFormat,
	Usage: " result `FORMAT` [json|yaml]",
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "avlcheck"
	app.Usage = "exercise the avl ordered map"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "scenario",
			Usage:     "run scenarios and check the results",
			ArgsUsage: "NAME... | all\n   (ascending, descending, erase-inner, random)",
			Flags: []cli.Flag{
				formatFlag,
			},
			Action: runScenarios,
		},
		{
			Name:      "soak",
			Usage:     "random inserts and erases compared with a reference map",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " random `SEED` [configuration value]",
				},
				cli.IntFlag{
					Name:  "operations, o",
					Value: 0,
					Usage: " number of `COUNT` operations [configuration value]",
				},
				formatFlag,
			},
			Action: runSoak,
		},
		{
			Name:      "dump",
			Usage:     "insert integer keys and draw the resulting tree",
			ArgsUsage: "KEY...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "values",
					Usage: " also show the values",
				},
			},
			Action: runDump,
		},
		{
			Name:  "version",
			Usage: "display avlcheck version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command {
			return nil
		}

		file := c.GlobalString("config")
		if verbose && "" != file {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := getConfiguration(file)
		if nil != err {
			return err
		}
		if verbose {
			config.Logging.Console = true
		}

		if err := os.MkdirAll(config.Logging.Directory, 0o700); nil != err {
			return err
		}
		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			logger.Finalise()
			return err
		}

		log := logger.New("avlcheck")
		log.Infof("allocator: %s  soak: %+v", config.Allocator.Kind, config.Soak)

		c.App.Metadata["config"] = &metadata{
			config:  config,
			newMap:  config.Allocator.maker(),
			log:     log,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// flush the logs
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	return app
}
