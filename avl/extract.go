// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// First - return the lowest item without removing it
//
// fails with fault.ErrEmptyTree on an empty tree
func (tree *Tree) First() (Item, error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	p := tree.root
	for nil != p.left {
		p = p.left
	}
	return p.item, nil
}

// Last - return the highest item without removing it
//
// fails with fault.ErrEmptyTree on an empty tree
func (tree *Tree) Last() (Item, error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	p := tree.root
	for nil != p.right {
		p = p.right
	}
	return p.item, nil
}

// Pop - remove and return the highest item
//
// fails with fault.ErrEmptyTree on an empty tree
func (tree *Tree) Pop() (Item, error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	root, item := pop(tree.root)
	tree.root = root
	return item, nil
}

// PopLeft - remove and return the lowest item
//
// fails with fault.ErrEmptyTree on an empty tree
func (tree *Tree) PopLeft() (Item, error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	root, item := popleft(tree.root)
	tree.root = root
	return item, nil
}

// internal: extract the highest item of a non-empty sub-tree
//
// the rightmost node has no right child so its left sub-tree, at most
// one level high, is spliced into its place; size and height are
// re-derived on the way back up
func pop(p *node) (*node, Item) {
	if nil != p.right {
		r, item := pop(p.right)
		p.right = r
		return rebalance(p), item
	}
	item := p.item
	l := p.left
	freeNode(p)
	return l, item
}

// internal: extract the lowest item of a non-empty sub-tree
func popleft(p *node) (*node, Item) {
	if nil != p.left {
		l, item := popleft(p.left)
		p.left = l
		return rebalance(p), item
	}
	item := p.item
	r := p.right
	freeNode(p)
	return r, item
}
