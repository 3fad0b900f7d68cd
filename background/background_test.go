// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/background"
	"github.com/bitmark-inc/avlmap/counter"
)

type ticker struct {
	ticks    counter.Counter
	finished bool
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {

	step := args.(uint64)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		state.ticks.Add(step)
		time.Sleep(time.Millisecond)
	}

	state.finished = true
}

func TestBackground(t *testing.T) {

	proc1 := &ticker{}
	proc2 := &ticker{}

	// list of background processes to start
	processes := background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, uint64(9))
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	for i, proc := range []*ticker{proc1, proc2} {
		assert.True(t, proc.finished, "%d: not finished", i)
		assert.NotZero(t, proc.ticks.Uint64(), "%d: never ran", i)
		assert.Equal(t, uint64(0), proc.ticks.Uint64()%9, "%d: wrong step", i)
	}

	// ticks stay put once stopped
	before := proc1.ticks.Uint64()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, before, proc1.ticks.Uint64())

	assert.NotPanics(t, p.Stop, "second stop")
}

func TestEmpty(t *testing.T) {
	p := background.Start(nil, nil)
	assert.NotPanics(t, p.Stop)
}
