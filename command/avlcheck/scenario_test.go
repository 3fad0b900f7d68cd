// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/avlmap/fault"
)

func testSoak() SoakType {
	return SoakType{
		Seed:         7,
		Operations:   20000,
		KeyRange:     500,
		ErasePercent: 40,
	}
}

func TestScenarios(t *testing.T) {
	log := logger.New("avlcheck")
	for _, kind := range []string{heapAllocator, poolAllocator} {
		newMap := AllocatorType{Kind: kind, Retain: 2}.maker()
		for _, name := range scenarioNames {
			r, err := runScenario(name, newMap, testSoak(), log)
			require.NoError(t, err, "%s: %s", kind, name)
			assert.Equal(t, name, r.Name)
			assert.LessOrEqual(t, r.MaxImbalance, 1, "%s: %s", kind, name)
			assert.NotEmpty(t, r.Elapsed)
		}
	}
}

func TestBulkScenarioShape(t *testing.T) {
	log := logger.New("avlcheck")
	newMap := AllocatorType{Kind: heapAllocator}.maker()

	for _, name := range []string{"ascending", "descending"} {
		r, err := runScenario(name, newMap, testSoak(), log)
		require.NoError(t, err, name)
		assert.Equal(t, bulkKeys, r.Size, name)
		assert.Equal(t, bulkKeys, r.Operations, name)

		// 7000 keys fit in a height between log2(n+1) and 1.44 log2(n+2)
		assert.GreaterOrEqual(t, r.Height, 13, name)
		assert.LessOrEqual(t, r.Height, 18, name)
	}

	r, err := runScenario("erase-inner", newMap, testSoak(), log)
	require.NoError(t, err)
	assert.Equal(t, 6, r.Size)
	assert.Equal(t, 3, r.Height)
}

func TestRandomScenarioIsRepeatable(t *testing.T) {
	log := logger.New("avlcheck")
	newMap := AllocatorType{Kind: heapAllocator}.maker()

	a, err := runScenario("random", newMap, testSoak(), log)
	require.NoError(t, err)
	b, err := runScenario("random", newMap, testSoak(), log)
	require.NoError(t, err)
	assert.Equal(t, a.Size, b.Size)
	assert.Equal(t, a.Height, b.Height)
	assert.LessOrEqual(t, a.Size, testSoak().KeyRange)
}

func TestUnknownScenario(t *testing.T) {
	newMap := AllocatorType{Kind: heapAllocator}.maker()
	_, err := runScenario("sideways", newMap, testSoak(), logger.New("avlcheck"))
	assert.True(t, errors.Is(err, fault.ErrUnknownScenario), "wrong error: %v", err)
}

func TestLimitedAllocatorExhaustion(t *testing.T) {
	newMap := AllocatorType{Kind: limitedAllocator, Limit: 1024}.maker()
	assert.Panics(t, func() {
		_, _ = runScenario("ascending", newMap, testSoak(), logger.New("avlcheck"))
	})
}

// an app whose Before installs metadata without touching the logger setup
func testApp(w *bytes.Buffer) *cli.App {
	app := newApp()
	app.Writer = w
	app.ErrWriter = w
	app.Before = func(c *cli.Context) error {
		config := defaultConfiguration()
		config.Soak = testSoak()
		c.App.Metadata["config"] = &metadata{
			config: config,
			newMap: config.Allocator.maker(),
			log:    logger.New("avlcheck"),
			e:      w,
			w:      w,
		}
		return nil
	}
	app.After = nil
	return app
}

func TestScenarioCommand(t *testing.T) {
	var b bytes.Buffer
	err := testApp(&b).Run([]string{"avlcheck", "scenario", "all"})
	require.NoError(t, err)

	var results []result
	require.NoError(t, json.Unmarshal(b.Bytes(), &results))
	require.Len(t, results, len(scenarioNames))
	for i, r := range results {
		assert.Equal(t, scenarioNames[i], r.Name)
	}

	b.Reset()
	err = testApp(&b).Run([]string{"avlcheck", "scenario"})
	assert.Equal(t, ErrMissingScenario, err)

	b.Reset()
	err = testApp(&b).Run([]string{"avlcheck", "scenario", "ascending", "sideways"})
	assert.True(t, errors.Is(err, ErrScenarioFailed), "wrong error: %v", err)
	assert.Contains(t, err.Error(), "sideways")
}

func TestSoakCommand(t *testing.T) {
	var b bytes.Buffer
	err := testApp(&b).Run([]string{"avlcheck", "soak", "--seed", "99", "--operations", "5000"})
	require.NoError(t, err)

	var r result
	require.NoError(t, json.Unmarshal(b.Bytes(), &r))
	assert.Equal(t, "random", r.Name)
	assert.Equal(t, 5000, r.Operations)
}

func TestResultFormats(t *testing.T) {
	var b bytes.Buffer
	err := testApp(&b).Run([]string{"avlcheck", "scenario", "--format", "yaml", "erase-inner"})
	require.NoError(t, err)

	var results []result
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "erase-inner", results[0].Name)
	assert.Equal(t, 6, results[0].Size)
	assert.Equal(t, 1, results[0].MaxImbalance)

	err = testApp(&b).Run([]string{"avlcheck", "soak", "--format", "xml", "--operations", "10"})
	assert.True(t, errors.Is(err, ErrInvalidFormat), "wrong error: %v", err)
}

func TestDumpCommand(t *testing.T) {
	var b bytes.Buffer
	err := testApp(&b).Run([]string{"avlcheck", "dump", "--values", "2", "1", "3"})
	require.NoError(t, err)
	assert.Contains(t, b.String(), "2 → 0")
	assert.Contains(t, b.String(), "1 → 1")
	assert.Contains(t, b.String(), "3 → 2")

	err = testApp(&b).Run([]string{"avlcheck", "dump"})
	assert.Equal(t, ErrMissingKeys, err)

	err = testApp(&b).Run([]string{"avlcheck", "dump", "1", "two"})
	assert.True(t, errors.Is(err, ErrInvalidKey), "wrong error: %v", err)
}

func TestVersionCommand(t *testing.T) {
	var b bytes.Buffer
	app := newApp()
	app.Writer = &b
	require.NoError(t, app.Run([]string{"avlcheck", "version"}))
	assert.Equal(t, version+"\n", b.String())
}
