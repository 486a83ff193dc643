// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckCounts - verify that the cached size and height of every
// sub-tree match a full recount
func (tree *Tree) CheckCounts() bool {
	return checkCounts(tree.root)
}

// internal: consistency checker
func checkCounts(p *node) bool {
	if nil == p {
		return true
	}
	if p.size != 1+size(p.left)+size(p.right) {
		fmt.Printf("fail at item: %v   cached size: %d  expected: %d\n", p.item, p.size, 1+size(p.left)+size(p.right))
		return false
	}
	h := height(p.left)
	if height(p.right) > h {
		h = height(p.right)
	}
	if p.height != 1+h {
		fmt.Printf("fail at item: %v   cached height: %d  expected: %d\n", p.item, p.height, 1+h)
		return false
	}
	if !checkCounts(p.left) {
		return false
	}
	return checkCounts(p.right)
}

// CheckBalance - verify the AVL invariant at every node
func (tree *Tree) CheckBalance() bool {
	return checkBalance(tree.root)
}

// internal: balance checker
func checkBalance(p *node) bool {
	if nil == p {
		return true
	}
	b := p.balanceFactor()
	if b < -1 || b > 1 {
		fmt.Printf("fail at item: %v   balance: %d\n", p.item, b)
		return false
	}
	if !checkBalance(p.left) {
		return false
	}
	return checkBalance(p.right)
}

// CheckOrder - verify that an in-order walk yields strictly
// ascending items
func (tree *Tree) CheckOrder() bool {
	var previous Item
	return checkOrder(tree.root, &previous)
}

// internal: order checker
func checkOrder(p *node, previous *Item) bool {
	if nil == p {
		return true
	}
	if !checkOrder(p.left, previous) {
		return false
	}
	if nil != *previous && -1 != (*previous).Compare(p.item) {
		fmt.Printf("fail at item: %v   previous: %v\n", p.item, *previous)
		return false
	}
	*previous = p.item
	return checkOrder(p.right, previous)
}
