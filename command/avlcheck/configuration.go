// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
)

// basic defaults
const (
	defaultLogDirectory = "."
	defaultLogFile      = "avlcheck.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultAllocator    = heapAllocator
	defaultRetain       = 8
	defaultSeed         = 1
	defaultOperations   = 100000
	defaultKeyRange     = 9999
	defaultErasePercent = 33
	defaultReport       = 10 // seconds between soak progress reports
)

// allocator kinds
const (
	heapAllocator    = "heap"
	poolAllocator    = "pool"
	limitedAllocator = "limited"
)

// AllocatorType - where the nodes of the maps come from
type AllocatorType struct {
	Kind   string `gluamapper:"kind" json:"kind"`
	Retain int    `gluamapper:"retain" json:"retain"` // pool: blocks kept for reuse
	Limit  int    `gluamapper:"limit" json:"limit"`   // limited: most records outstanding
}

// SoakType - parameters of the random operations run
type SoakType struct {
	Seed         uint64 `gluamapper:"seed" json:"seed"`
	Operations   int    `gluamapper:"operations" json:"operations"`
	KeyRange     int    `gluamapper:"key_range" json:"key_range"`
	ErasePercent int    `gluamapper:"erase_percent" json:"erase_percent"`
	Report       int    `gluamapper:"report_seconds" json:"report_seconds"` // 0 for no reports
}

// Configuration - everything read from the configuration file
type Configuration struct {
	Allocator AllocatorType        `gluamapper:"allocator" json:"allocator"`
	Soak      SoakType             `gluamapper:"soak" json:"soak"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

// the configuration used when no file is given
func defaultConfiguration() *Configuration {
	return &Configuration{
		Allocator: AllocatorType{
			Kind:   defaultAllocator,
			Retain: defaultRetain,
		},
		Soak: SoakType{
			Seed:         defaultSeed,
			Operations:   defaultOperations,
			KeyRange:     defaultKeyRange,
			ErasePercent: defaultErasePercent,
			Report:       defaultReport,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()
	if "" == configurationFileName {
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// log directory is relative to the configuration file
	if !filepath.IsAbs(options.Logging.Directory) {
		dataDirectory, _ := filepath.Split(configurationFileName)
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	return options, options.verify()
}

// check values that cannot be used
func (c *Configuration) verify() error {
	c.Allocator.Kind = strings.ToLower(c.Allocator.Kind)
	switch c.Allocator.Kind {
	case heapAllocator, poolAllocator:
	case limitedAllocator:
		if c.Allocator.Limit <= 0 {
			return fmt.Errorf("%w: allocator limit: %d", fault.ErrInvalidCount, c.Allocator.Limit)
		}
	default:
		return fmt.Errorf("%w: %q", fault.ErrUnknownAllocator, c.Allocator.Kind)
	}

	if c.Soak.Operations < 0 {
		return fmt.Errorf("%w: soak operations: %d", fault.ErrInvalidCount, c.Soak.Operations)
	}
	if c.Soak.KeyRange <= 0 {
		return fmt.Errorf("%w: soak key range: %d", fault.ErrInvalidCount, c.Soak.KeyRange)
	}
	if c.Soak.ErasePercent < 0 || c.Soak.ErasePercent > 100 {
		return fmt.Errorf("%w: soak erase percent: %d", fault.ErrInvalidCount, c.Soak.ErasePercent)
	}
	if c.Soak.Report < 0 {
		return fmt.Errorf("%w: soak report seconds: %d", fault.ErrInvalidCount, c.Soak.Report)
	}
	return nil
}

// intMap - the map type all scenarios run on
type intMap = avl.Map[int, int]

// mapMaker - creates empty maps that share one allocator
type mapMaker func() *intMap

func (a AllocatorType) maker() mapMaker {
	allocator := a.allocator()
	return func() *intMap {
		return avl.NewWithAllocator[int, int](cmp.Compare[int], allocator)
	}
}

// the allocator named by the configuration, verify() has already
// rejected unknown kinds
func (a AllocatorType) allocator() avl.Allocator[avl.Node[int, int]] {
	heap := avl.HeapAllocator[avl.Node[int, int]]{}
	switch a.Kind {
	case poolAllocator:
		return avl.NewPoolAllocator[avl.Node[int, int]](a.Retain)
	case limitedAllocator:
		return avl.NewLimitedAllocator[avl.Node[int, int]](heap, a.Limit)
	default:
		return heap
	}
}
