// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/avlmap/background"
)

func runScenarios(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	names := []string(c.Args())
	if 0 == len(names) {
		return ErrMissingScenario
	}
	if 1 == len(names) && "all" == names[0] {
		names = scenarioNames
	}

	results := make([]result, 0, len(names))
	failed := make([]string, 0, len(names))
	for _, name := range names {
		r, err := runScenario(name, m.newMap, m.config.Soak, m.log)
		if nil != err {
			if m.verbose {
				fmt.Fprintf(m.e, "%s: %s\n", name, err)
			}
			failed = append(failed, name)
			continue
		}
		results = append(results, r)
	}

	if err := printResult(m.w, c.String("format"), results); nil != err {
		return err
	}
	if 0 != len(failed) {
		return fmt.Errorf("%w: %s", ErrScenarioFailed, strings.Join(failed, ", "))
	}
	return nil
}

func runSoak(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	soak := m.config.Soak
	if c.IsSet("seed") {
		soak.Seed = c.Uint64("seed")
	}
	if c.IsSet("operations") {
		soak.Operations = c.Int("operations")
	}
	if m.verbose {
		fmt.Fprintf(m.e, "soak: %+v\n", soak)
	}

	processes := background.Processes{}
	if soak.Report > 0 {
		processes = append(processes, &reporter{
			log:      m.log,
			interval: time.Duration(soak.Report) * time.Second,
		})
	}
	if m.verbose {
		processes = append(processes, newProgressBar(m.e, soak.Operations))
	}
	progress.Reset()
	p := background.Start(processes, soak.Operations)

	r, err := runScenario("random", m.newMap, soak, m.log)
	p.Stop()
	if nil != err {
		return err
	}
	return printResult(m.w, c.String("format"), r)
}

func runDump(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return ErrMissingKeys
	}

	tree := m.newMap()
	tree.SetLog(m.log)
	for i, s := range c.Args() {
		k, err := strconv.Atoi(s)
		if nil != err {
			return fmt.Errorf("%w: %q", ErrInvalidKey, s)
		}
		tree.Emplace(k, i)
	}

	fmt.Fprint(m.w, tree.Dump(c.Bool("values")))
	tree.Clear()
	return nil
}

// output formats
const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

func printResult(handle io.Writer, format string, message interface{}) error {
	switch format {
	case "", jsonFormat:
		return printJson(handle, message)
	case yamlFormat:
		return printYaml(handle, message)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func printYaml(handle io.Writer, message interface{}) error {
	e := yaml.NewEncoder(handle)
	e.SetIndent(2)
	if err := e.Encode(message); nil != err {
		return err
	}
	return e.Close()
}
