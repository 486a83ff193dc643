// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avltree/counter"
)

// a node in the tree
type node struct {
	left   *node // left sub-tree
	right  *node // right sub-tree
	item   Item  // stored item, the ordering key included
	height int   // longest path to a leaf, 1 for a leaf
	size   int   // items in this sub-tree including self
}

// global data for allocator
var m sync.Mutex // to keep the free list in sync
var pool *node   // linked list of reclaimed nodes

var totalNodes counter.Counter // total nodes created
var freeNodes counter.Counter  // number of nodes in the pool

// allocate a new node, reuses reclaimed nodes if any are available
func newNode(item Item) *node {
	m.Lock()
	if nil == pool {
		if !freeNodes.IsZero() {
			panic("pool corrupt")
		}
		m.Unlock()
		totalNodes.Increment()
		return &node{
			item:   item,
			height: 1,
			size:   1,
		}
	}
	p := pool
	pool = p.left
	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	p.item = item
	p.height = 1
	p.size = 1
	freeNodes.Decrement()
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(p *node) {
	m.Lock()
	p.left = pool // use as free list pointer
	p.right = nil
	p.item = nil
	p.height = 0
	p.size = 0
	freeNodes.Increment()
	pool = p
	m.Unlock()
}

// PoolStatistics - total nodes ever created and nodes currently held
// in the reclaim pool
func PoolStatistics() (total uint64, free uint64) {
	return totalNodes.Uint64(), freeNodes.Uint64()
}

// internal: height of a possibly absent sub-tree
func height(p *node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// internal: item count of a possibly absent sub-tree
func size(p *node) int {
	if nil == p {
		return 0
	}
	return p.size
}
