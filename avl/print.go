// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
// returns the maximum depth of the tree
func (tree *Tree) Print(w io.Writer, withCounts bool) int {
	return printTree(w, tree.root, "", root, withCounts)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, p *node, prefix string, br branch, withCounts bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, withCounts)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if withCounts {
		fmt.Fprintf(w, "%v %+2d/[%d,%d]\n", p.item, p.balanceFactor(), size(p.left), size(p.right))
	} else {
		fmt.Fprintf(w, "%v\n", p.item)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, withCounts)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
