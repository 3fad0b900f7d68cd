// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avlmap/counter"
	"github.com/bitmark-inc/avlmap/fault"
)

// Allocator - the memory resource that supplies blocks of records
//
// Allocate must return a block of zero length with a capacity of at
// least n records.  A block passed to Deallocate is no longer used by
// the caller and may be handed out again.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(block []T)
}

// HeapAllocator - obtain every block from the Go heap
type HeapAllocator[T any] struct{}

// Allocate - make a new block
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fault.ErrInvalidCount
	}
	return make([]T, 0, n), nil
}

// Deallocate - nothing to do, the garbage collector reclaims the block
func (HeapAllocator[T]) Deallocate(block []T) {}

// PoolStatistics - snapshot of a pool allocator's counters
type PoolStatistics struct {
	Allocated uint64 // blocks made fresh
	Reused    uint64 // blocks taken from the pool
	Released  uint64 // blocks returned by callers
	Pooled    int    // blocks currently held
}

// PoolAllocator - keeps released blocks and reuses them for later
// requests of the same or smaller size
//
// A single pool may be shared by maps running in different go
// routines.
type PoolAllocator[T any] struct {
	sync.Mutex
	retain    int
	pool      [][]T
	allocated counter.Counter
	reused    counter.Counter
	released  counter.Counter
}

// NewPoolAllocator - create a pool that holds up to retain blocks
func NewPoolAllocator[T any](retain int) *PoolAllocator[T] {
	return &PoolAllocator[T]{
		retain: retain,
		pool:   make([][]T, 0, retain),
	}
}

// Allocate - first fit from the pool, otherwise a new block
func (a *PoolAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fault.ErrInvalidCount
	}

	a.Lock()
	defer a.Unlock()

	for i, block := range a.pool {
		if cap(block) >= n {
			last := len(a.pool) - 1
			a.pool[i] = a.pool[last]
			a.pool[last] = nil
			a.pool = a.pool[:last]
			a.reused.Increment()
			return block[:0], nil
		}
	}
	a.allocated.Increment()
	return make([]T, 0, n), nil
}

// Deallocate - wipe the block and keep it if there is room
func (a *PoolAllocator[T]) Deallocate(block []T) {
	if nil == block {
		return
	}

	// drop references held by the records
	clear(block[:cap(block)])

	a.Lock()
	defer a.Unlock()

	a.released.Increment()
	if len(a.pool) < a.retain {
		a.pool = append(a.pool, block[:0])
	}
}

// Statistics - read the pool counters
func (a *PoolAllocator[T]) Statistics() PoolStatistics {
	a.Lock()
	defer a.Unlock()
	return PoolStatistics{
		Allocated: a.allocated.Uint64(),
		Reused:    a.reused.Uint64(),
		Released:  a.released.Uint64(),
		Pooled:    len(a.pool),
	}
}

// LimitedAllocator - enforce a budget of records on top of another
// allocator
type LimitedAllocator[T any] struct {
	base  Allocator[T]
	limit int
	inUse int
}

// NewLimitedAllocator - wrap base so that no more than limit records
// are outstanding at any time
func NewLimitedAllocator[T any](base Allocator[T], limit int) *LimitedAllocator[T] {
	return &LimitedAllocator[T]{
		base:  base,
		limit: limit,
	}
}

// Allocate - fails with ErrAllocatorExhausted when over budget
func (a *LimitedAllocator[T]) Allocate(n int) ([]T, error) {
	if a.inUse+n > a.limit {
		return nil, fault.ErrAllocatorExhausted
	}
	block, err := a.base.Allocate(n)
	if nil != err {
		return nil, err
	}
	a.inUse += cap(block)
	return block, nil
}

// Deallocate - return the block to the base allocator
func (a *LimitedAllocator[T]) Deallocate(block []T) {
	a.inUse -= cap(block)
	a.base.Deallocate(block)
}

// InUse - records currently outstanding
func (a *LimitedAllocator[T]) InUse() int {
	return a.inUse
}
