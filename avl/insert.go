// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new item into the tree
//
// fails with fault.ErrDuplicateItem if an equal item is already
// present, leaving the tree unchanged
func (tree *Tree) Insert(item Item) error {
	root, err := insert(item, tree.root)
	if nil != err {
		return err
	}
	tree.root = root
	return nil
}

// internal routine for insert
func insert(item Item, p *node) (*node, error) {
	if nil == p { // insert new node
		return newNode(item), nil
	}
	switch p.item.Compare(item) {
	case +1: // p.item > item
		l, err := insert(item, p.left)
		if nil != err {
			return p, err
		}
		p.left = l
	case -1: // p.item < item
		r, err := insert(item, p.right)
		if nil != err {
			return p, err
		}
		p.right = r
	default:
		return p, fault.ErrDuplicateItem
	}
	return rebalance(p), nil
}

// Update - insert a new item or overwrite an existing equal item
//
// an overwrite replaces the stored item in place: no structural
// change, size and height stay the same
func (tree *Tree) Update(item Item) {
	tree.root = update(item, tree.root)
}

// internal routine for update
func update(item Item, p *node) *node {
	if nil == p {
		return newNode(item)
	}
	switch p.item.Compare(item) {
	case +1: // p.item > item
		p.left = update(item, p.left)
	case -1: // p.item < item
		p.right = update(item, p.right)
	default:
		p.item = item
		return p
	}
	return rebalance(p)
}
