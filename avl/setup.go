// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - tree items must implement the Compare function
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root *node
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root: nil,
	}
}

// IsEmpty - true if tree contains no items
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of items currently in the tree
func (tree *Tree) Count() int {
	return size(tree.root)
}

// Height - length of the longest root to leaf path
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Clear - discard all items, the tree ends up empty
func (tree *Tree) Clear() {
	recycle(tree.root)
	tree.root = nil
}

// Clone - deep copy of the whole tree
//
// the clone shares no nodes with the original, mutating one tree
// never affects the other
func (tree *Tree) Clone() *Tree {
	return &Tree{
		root: clone(tree.root),
	}
}

// internal: recursive deep copy
func clone(p *node) *node {
	if nil == p {
		return nil
	}
	q := newNode(p.item)
	q.left = clone(p.left)
	q.right = clone(p.right)
	q.height = p.height
	q.size = p.size
	return q
}

// internal: return a whole sub-tree to the allocator
func recycle(p *node) {
	if nil == p {
		return
	}
	recycle(p.left)
	recycle(p.right)
	freeNode(p)
}
