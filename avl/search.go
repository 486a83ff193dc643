// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
// returns the stored item, which may carry more data than the key
// used to find it, or nil if no equal item is present
func (tree *Tree) Search(key Item) Item {
	return search(key, tree.root)
}

// internal search routine
func search(key Item, p *node) Item {
	if nil == p {
		return nil
	}
	switch p.item.Compare(key) {
	case +1: // p.item > key
		return search(key, p.left)
	case -1: // p.item < key
		return search(key, p.right)
	default:
		return p.item
	}
}

// Get - index to a specific item in sorted order
// returns nil if the index is out of range
func (tree *Tree) Get(index int) Item {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	return get(index, tree.root)
}

// internal: order statistic by sub-tree sizes
func get(index int, p *node) Item {
	if nil == p {
		return nil
	}

	nl := size(p.left)

	if index < nl {
		return get(index, p.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, p.right)
	}
	return p.item
}
