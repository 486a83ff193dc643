// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// InOrderIterator - lazy ascending walk over the tree
//
// Note: mutating the tree while an iterator is live is undefined, a
//       fresh iterator must be constructed to restart the walk
type InOrderIterator struct {
	stack   []*node
	current *node
}

// InOrder - iterator yielding the items in ascending order
func (tree *Tree) InOrder() *InOrderIterator {
	it := &InOrderIterator{}
	it.descend(tree.root)
	return it
}

// internal: push the leftward chain starting at p
func (it *InOrderIterator) descend(p *node) {
	for nil != p {
		it.stack = append(it.stack, p)
		p = p.left
	}
}

// HasNext - true while more items remain
func (it *InOrderIterator) HasNext() bool {
	return len(it.stack) > 0
}

// Next - advance and yield the next item
//
// fails with fault.ErrIteratorExhausted after the last item
func (it *InOrderIterator) Next() (Item, error) {
	n := len(it.stack)
	if 0 == n {
		it.current = nil
		return nil, fault.ErrIteratorExhausted
	}
	p := it.stack[n-1]
	it.stack = it.stack[:n-1]
	it.descend(p.right)
	it.current = p
	return p.item, nil
}

// Item - the item at the current position
//
// fails with fault.ErrIteratorExhausted before the first Next or
// after the iterator ran off the end
func (it *InOrderIterator) Item() (Item, error) {
	if nil == it.current {
		return nil, fault.ErrIteratorExhausted
	}
	return it.current.item, nil
}

// one level-order frontier entry
type levelEntry struct {
	p     *node
	depth int
}

// LevelOrderIterator - lazy breadth first walk pairing each item
// with its depth from the root, the root is depth 0
//
// Note: mutating the tree while an iterator is live is undefined
type LevelOrderIterator struct {
	frontier []levelEntry
	current  *levelEntry
}

// LevelOrder - iterator yielding (depth, item) in breadth first order
func (tree *Tree) LevelOrder() *LevelOrderIterator {
	it := &LevelOrderIterator{}
	if nil != tree.root {
		it.frontier = append(it.frontier, levelEntry{p: tree.root, depth: 0})
	}
	return it
}

// HasNext - true while more items remain
func (it *LevelOrderIterator) HasNext() bool {
	return len(it.frontier) > 0
}

// Next - advance and yield the next depth and item
//
// fails with fault.ErrIteratorExhausted after the last item
func (it *LevelOrderIterator) Next() (int, Item, error) {
	if 0 == len(it.frontier) {
		it.current = nil
		return 0, nil, fault.ErrIteratorExhausted
	}
	e := it.frontier[0]
	it.frontier = it.frontier[1:]
	if nil != e.p.left {
		it.frontier = append(it.frontier, levelEntry{p: e.p.left, depth: e.depth + 1})
	}
	if nil != e.p.right {
		it.frontier = append(it.frontier, levelEntry{p: e.p.right, depth: e.depth + 1})
	}
	it.current = &e
	return e.depth, e.p.item, nil
}

// Item - the item at the current position
func (it *LevelOrderIterator) Item() (Item, error) {
	if nil == it.current {
		return nil, fault.ErrIteratorExhausted
	}
	return it.current.p.item, nil
}

// Level - the depth of the current position
func (it *LevelOrderIterator) Level() (int, error) {
	if nil == it.current {
		return 0, fault.ErrIteratorExhausted
	}
	return it.current.depth, nil
}
