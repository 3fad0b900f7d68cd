// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered map held in an AVL balanced tree with the
// addition of parent links to allow iteration through the nodes
//
// Note: a map is not thread safe, so either access only in a single
//       go routine or use mutex/rwmutex to restrict access.
//
// Nodes are records in an arena obtained from an Allocator and are
// addressed by handles rather than pointers.  A node never moves to a
// different handle while it is in the tree, so removing one key does
// not disturb iterators positioned on other keys and previous nodes
// can be erased during iteration.
//
// Inserting an existing key overwrites the value associated with that
// key and leaves the shape of the tree untouched.
package avl
