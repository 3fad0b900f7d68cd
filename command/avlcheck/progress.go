// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/schollz/progressbar/v3"

	"github.com/bitmark-inc/avlmap/counter"
)

// reporter - logs the rate of a soak run while it proceeds
type reporter struct {
	log      *logger.L
	interval time.Duration
	reports  counter.Counter
}

// Run - log the operation count every interval until shutdown
func (r *reporter) Run(args interface{}, shutdown <-chan struct{}) {

	total := args.(int)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	last := progress.Uint64()
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			n := progress.Uint64()
			if n < last {
				last = 0 // a new run has started
			}
			rate := float64(n-last) / r.interval.Seconds()
			r.log.Infof("soak: %d of %d operations  rate: %.0f/s", n, total, rate)
			last = n
			r.reports.Increment()
		}
	}
	r.log.Debugf("soak: reporter stopped after %d reports", r.reports.Uint64())
}

// how often the console bar is redrawn
const barInterval = 100 * time.Millisecond

// progressBar - draws the soak progress on the console
type progressBar struct {
	bar *progressbar.ProgressBar
}

func newProgressBar(w io.Writer, total int) *progressBar {
	return &progressBar{
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("soak"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		),
	}
}

// Run - follow the operation count until shutdown
func (b *progressBar) Run(args interface{}, shutdown <-chan struct{}) {

	ticker := time.NewTicker(barInterval)
	defer ticker.Stop()

	for {
		select {
		case <-shutdown:
			_ = b.bar.Set(int(progress.Uint64()))
			_ = b.bar.Finish()
			return
		case <-ticker.C:
			_ = b.bar.Set(int(progress.Uint64()))
		}
	}
}
