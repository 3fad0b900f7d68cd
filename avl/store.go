// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/fault"
)

// handle - position of a node in the arena, counting from one so that
// the zero value is "no node"
type handle int32

const none handle = 0

// arena sizing
const (
	initialRecords = 16
	maximumRecords = math.MaxInt32
)

// Node - a record in the arena
type Node[K, V any] struct {
	up     handle // parent node, never owns it; free list link when free
	left   handle // left sub-tree
	right  handle // right sub-tree
	height int32  // 0 marks a free record
	key    K      // key part for ordering
	value  V      // value part for data storage
}

// Key - read the key from a node
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node
func (p *Node[K, V]) Value() V {
	return p.value
}

// the arena of nodes for one map
type nodeStore[K, V any] struct {
	allocator Allocator[Node[K, V]]
	records   []Node[K, V]
	free      handle // linked list of reclaimed records
	freeNodes int    // number of records in the free list
	log       *logger.L
}

// access a record, the pointer is valid until the next newNode
func (s *nodeStore[K, V]) at(h handle) *Node[K, V] {
	return &s.records[h-1]
}

// true if h refers to a record in use
func (s *nodeStore[K, V]) live(h handle) bool {
	return h > none && int(h) <= len(s.records) && 0 != s.records[h-1].height
}

// allocate a new node, reuses reclaimed records if any are available
func (s *nodeStore[K, V]) newNode(key K, value V) handle {
	if none == s.free {
		if 0 != s.freeNodes {
			fault.Panic("avl: free list corrupt")
		}
		if len(s.records) == cap(s.records) {
			s.grow()
		}
		s.records = append(s.records, Node[K, V]{
			key:    key,
			value:  value,
			height: 1,
		})
		return handle(len(s.records))
	}

	h := s.free
	p := s.at(h)
	s.free = p.up
	s.freeNodes -= 1
	*p = Node[K, V]{
		key:    key,
		value:  value,
		height: 1,
	}
	return h
}

// move the arena to a block twice the size
func (s *nodeStore[K, V]) grow() {
	size := 2 * cap(s.records)
	if size < initialRecords {
		size = initialRecords
	}
	if size > maximumRecords {
		if cap(s.records) >= maximumRecords {
			fault.PanicWithError("avl: grow arena", fault.ErrTooManyNodes)
		}
		size = maximumRecords
	}

	block, err := s.allocator.Allocate(size)
	fault.PanicIfError("avl: allocate nodes", err)
	if cap(block) < size {
		fault.PanicWithError("avl: allocate nodes", fault.ErrAllocatorShortBlock)
	}

	old := s.records
	s.records = append(block[:0], old...)
	if nil != old {
		s.allocator.Deallocate(old)
	}

	if nil != s.log {
		s.log.Debugf("arena grown: %d → %d records", cap(old), cap(s.records))
	}
}

// drop the key and value held by a node, the links are kept
func (s *nodeStore[K, V]) destroy(h handle) {
	p := s.at(h)
	var key K
	var value V
	p.key = key
	p.value = value
}

// reclaim a node and keep it in the free list
func (s *nodeStore[K, V]) freeNode(h handle) {
	*s.at(h) = Node[K, V]{
		up: s.free, // use as free list pointer
	}
	s.free = h
	s.freeNodes += 1
}

// return the whole arena to the allocator
func (s *nodeStore[K, V]) release() {
	if nil != s.records {
		s.allocator.Deallocate(s.records)
	}
	s.records = nil
	s.free = none
	s.freeNodes = 0
}
