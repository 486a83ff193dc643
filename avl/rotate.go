// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: re-derive the cached height and size from the children
func (p *node) fix() {
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
	p.size = 1 + size(p.left) + size(p.right)
}

// internal: balance factor, positive when right heavy
func (p *node) balanceFactor() int {
	return height(p.right) - height(p.left)
}

// internal: promote the right child, returns the new sub-tree root
//
// the old root adopts the promoted child's left sub-tree as its right
// sub-tree, both endpoints re-derive height and size from their new
// children before the caller sees them
func rotateLeft(p *node) *node {
	p1 := p.right
	p.right = p1.left
	p1.left = p
	p.fix()
	p1.fix()
	return p1
}

// internal: promote the left child, returns the new sub-tree root
func rotateRight(p *node) *node {
	p1 := p.left
	p.left = p1.right
	p1.right = p
	p.fix()
	p1.fix()
	return p1
}

// internal: restore the AVL invariant at p after a mutation below it
//
// at most one single or one double rotation per call
func rebalance(p *node) *node {
	p.fix()
	balance := p.balanceFactor()
	if balance < -1 {
		if p.left.balanceFactor() > 0 {
			p.left = rotateLeft(p.left) // LR case
		}
		return rotateRight(p)
	} else if balance > 1 {
		if p.right.balanceFactor() < 0 {
			p.right = rotateRight(p.right) // RL case
		}
		return rotateLeft(p)
	}
	return p
}
