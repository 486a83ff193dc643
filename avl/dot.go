// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// DumpDot - write the tree as a Graphviz strict undirected graph
//
// one labelled vertex per item, named by the caller supplied prefix
// and a pre-order visitation counter, then one edge per parent/child
// pair; the text is for graphviz or a human, nothing reads it back
func (tree *Tree) DumpDot(w io.Writer, prefix string) error {
	vertices := []string(nil)
	edges := []string(nil)
	id := 0
	dotNode(tree.root, prefix, &id, &vertices, &edges)

	_, err := fmt.Fprintln(w, "strict graph {")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintln(w, "node [shape=rect]")
	if nil != err {
		return err
	}
	for _, v := range vertices {
		_, err = fmt.Fprintln(w, v)
		if nil != err {
			return err
		}
	}
	for _, e := range edges {
		_, err = fmt.Fprintln(w, e)
		if nil != err {
			return err
		}
	}
	_, err = fmt.Fprintln(w, "}")
	return err
}

// internal: pre-order walk assigning vertex ids
// returns the id given to p, -1 for an absent sub-tree
func dotNode(p *node, prefix string, id *int, vertices *[]string, edges *[]string) int {
	if nil == p {
		return -1
	}
	my := *id
	*id += 1
	*vertices = append(*vertices, fmt.Sprintf("%q [label=%q]", dotName(prefix, my), fmt.Sprintf("%v", p.item)))
	if l := dotNode(p.left, prefix, id, vertices, edges); l >= 0 {
		*edges = append(*edges, fmt.Sprintf("%q -- %q", dotName(prefix, my), dotName(prefix, l)))
	}
	if r := dotNode(p.right, prefix, id, vertices, edges); r >= 0 {
		*edges = append(*edges, fmt.Sprintf("%q -- %q", dotName(prefix, my), dotName(prefix, r)))
	}
	return my
}

// internal: vertex name from prefix and counter
func dotName(prefix string, id int) string {
	return fmt.Sprintf("%s%d", prefix, id)
}
