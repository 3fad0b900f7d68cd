// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/counter"
	"github.com/bitmark-inc/avlmap/fault"
)

// number of keys for the bulk insert scenarios
const bulkKeys = 7000

// how often a random run checks the whole tree
const checkInterval = 100000

// operations completed by the current random run
var progress counter.Counter

// result - summary of one scenario run
type result struct {
	Name         string `json:"name" yaml:"name"`
	Operations   int    `json:"operations" yaml:"operations"`
	Size         int    `json:"size" yaml:"size"`
	Height       int    `json:"height" yaml:"height"`
	MaxImbalance int    `json:"max_imbalance" yaml:"max_imbalance"`
	Elapsed      string `json:"elapsed" yaml:"elapsed"`
}

type scenarioFunc func(newMap mapMaker, soak SoakType, log *logger.L) (result, error)

// scenarios in the order "all" runs them
var scenarioNames = []string{"ascending", "descending", "erase-inner", "random"}

var scenarios = map[string]scenarioFunc{
	"ascending":   runAscending,
	"descending":  runDescending,
	"erase-inner": runEraseInner,
	"random":      runRandom,
}

// run one named scenario
func runScenario(name string, newMap mapMaker, soak SoakType, log *logger.L) (result, error) {
	f, ok := scenarios[name]
	if !ok {
		return result{}, fmt.Errorf("%w: %q", fault.ErrUnknownScenario, name)
	}

	start := time.Now()
	r, err := f(newMap, soak, log)
	r.Name = name
	r.Elapsed = time.Since(start).String()
	if nil != err {
		log.Errorf("scenario: %s  error: %s", name, err)
		return r, err
	}
	log.Infof("scenario: %s  operations: %d  size: %d  height: %d  elapsed: %s", name, r.Operations, r.Size, r.Height, r.Elapsed)
	return r, nil
}

// the map must hold exactly the expected keys, in order, and be
// balanced and internally consistent
func verify(m *intMap, expected []int) error {
	if m.Size() != len(expected) {
		return fmt.Errorf("%w: size: %d  expected: %d", fault.ErrReferenceMismatch, m.Size(), len(expected))
	}
	i := 0
	for k := range m.Keys() {
		if i >= len(expected) || k != expected[i] {
			return fmt.Errorf("%w: position: %d  key: %d", fault.ErrReferenceMismatch, i, k)
		}
		i += 1
	}
	if i != len(expected) {
		return fmt.Errorf("%w: traversed: %d  expected: %d", fault.ErrReferenceMismatch, i, len(expected))
	}
	if mi := m.MaxImbalance(); mi > 1 {
		return fmt.Errorf("%w: %d", fault.ErrBalanceFactor, mi)
	}
	return m.Check()
}

// summarise then empty the map
func finish(m *intMap, operations int) result {
	r := result{
		Operations:   operations,
		Size:         m.Size(),
		Height:       m.Height(),
		MaxImbalance: m.MaxImbalance(),
	}
	m.Clear()
	return r
}

func runAscending(newMap mapMaker, _ SoakType, _ *logger.L) (result, error) {
	return bulkInsert(newMap(), func(i int) int { return i })
}

func runDescending(newMap mapMaker, _ SoakType, _ *logger.L) (result, error) {
	return bulkInsert(newMap(), func(i int) int { return bulkKeys - 1 - i })
}

func bulkInsert(m *intMap, key func(int) int) (result, error) {
	expected := make([]int, bulkKeys)
	for i := 0; i < bulkKeys; i += 1 {
		k := key(i)
		m.Emplace(k, i)
		expected[i] = i
	}
	if err := verify(m, expected); nil != err {
		return result{}, err
	}
	return finish(m, bulkKeys), nil
}

func runEraseInner(newMap mapMaker, _ SoakType, _ *logger.L) (result, error) {
	m := newMap()
	keys := []int{5, 3, 8, 1, 4, 7, 9}
	for _, k := range keys {
		m.Emplace(k, k)
	}
	m.Erase(3)
	if m.Find(3).Valid() {
		return result{}, fmt.Errorf("%w: erased key: 3 still present", fault.ErrReferenceMismatch)
	}
	if err := verify(m, []int{1, 4, 5, 7, 8, 9}); nil != err {
		return result{}, err
	}
	return finish(m, len(keys)+1), nil
}

// random interleaving of inserts and erases checked against a Go map
func runRandom(newMap mapMaker, soak SoakType, log *logger.L) (result, error) {
	m := newMap()
	m.SetLog(log)

	rng := rand.New(rand.NewPCG(soak.Seed, soak.Seed))
	reference := make(map[int]int)

	progress.Reset()
	for i := 1; i <= soak.Operations; i += 1 {
		k := rng.IntN(soak.KeyRange)
		if rng.IntN(100) < soak.ErasePercent {
			m.Erase(k)
			delete(reference, k)
		} else {
			m.Emplace(k, i)
			reference[k] = i
		}
		progress.Increment()

		if 0 == i%checkInterval {
			log.Debugf("operations: %d  size: %d  height: %d", i, m.Size(), m.Height())
			if err := m.Check(); nil != err {
				return result{}, err
			}
		}
	}

	expected := make([]int, 0, len(reference))
	for k := range reference {
		expected = append(expected, k)
	}
	slices.Sort(expected)

	if err := verify(m, expected); nil != err {
		return result{}, err
	}
	for k, v := range m.All() {
		if reference[k] != v {
			return result{}, fmt.Errorf("%w: key: %d  value: %d  expected: %d", fault.ErrReferenceMismatch, k, v, reference[k])
		}
	}
	return finish(m, soak.Operations), nil
}
