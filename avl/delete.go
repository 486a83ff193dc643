// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - remove a specific item from the tree
// returns the stored item that was removed
//
// fails with fault.ErrItemNotFound leaving the tree unchanged
func (tree *Tree) Delete(key Item) (Item, error) {
	root, removed, err := remove(key, tree.root)
	if nil != err {
		return nil, err
	}
	tree.root = root
	return removed, nil
}

// internal delete routine
//
// a matched inner node keeps its shell: the item is replaced by the
// highest item of the left sub-tree, or failing that the lowest item
// of the right sub-tree; a matched leaf is pruned outright
func remove(key Item, p *node) (*node, Item, error) {
	if nil == p { // key not in tree
		return nil, nil, fault.ErrItemNotFound
	}
	switch p.item.Compare(key) {
	case +1: // p.item > key
		l, removed, err := remove(key, p.left)
		if nil != err {
			return p, nil, err
		}
		p.left = l
		return rebalance(p), removed, nil
	case -1: // p.item < key
		r, removed, err := remove(key, p.right)
		if nil != err {
			return p, nil, err
		}
		p.right = r
		return rebalance(p), removed, nil
	default: // found
		removed := p.item
		if nil != p.left {
			l, item := pop(p.left)
			p.left = l
			p.item = item
		} else if nil != p.right {
			r, item := popleft(p.right)
			p.right = r
			p.item = item
		} else {
			freeNode(p)
			return nil, removed, nil
		}
		return rebalance(p), removed, nil
	}
}
