// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// the classic balanced insert order
func TestInsertScenario(t *testing.T) {
	tree := avl.New()
	for _, n := range []intItem{5, 3, 8, 1, 4, 7, 9} {
		if err := tree.Insert(n); nil != err {
			t.Fatalf("insert: %d error: %s", n, err)
		}
		checkInvariants(t, tree)
	}

	expected := []intItem{1, 3, 4, 5, 7, 8, 9}
	i := 0
	it := tree.InOrder()
	for it.HasNext() {
		item, err := it.Next()
		if nil != err {
			t.Fatalf("next error: %s", err)
		}
		if expected[i] != item.(intItem) {
			t.Fatalf("in-order [%d]: actual: %v  expected: %d", i, item, expected[i])
		}
		i += 1
	}
	if len(expected) != i {
		t.Fatalf("in-order yielded %d items, expected: %d", i, len(expected))
	}

	if 3 != tree.Height() {
		t.Fatalf("height: %d  expected: 3", tree.Height())
	}
}

// ascending inserts are the worst case for an unbalanced BST, the
// rebalancing must keep the height logarithmic
func TestAscendingInsert(t *testing.T) {
	tree := avl.New()
	for n := intItem(1); n <= 7; n += 1 {
		if err := tree.Insert(n); nil != err {
			t.Fatalf("insert: %d error: %s", n, err)
		}
		checkInvariants(t, tree)
	}
	if 3 != tree.Height() {
		t.Fatalf("height: %d  expected: 3", tree.Height())
	}

	tree.Clear()
	for n := intItem(1); n <= 100; n += 1 {
		if err := tree.Insert(n); nil != err {
			t.Fatalf("insert: %d error: %s", n, err)
		}
	}
	checkInvariants(t, tree)
	// AVL bound: height ≤ 1.44·log2(n+2)
	if tree.Height() > 9 {
		t.Fatalf("height: %d  beyond the AVL bound for 100 items", tree.Height())
	}
	tree.Clear()
}

// extraction round trip: n inserts then n pops leaves nothing behind
func TestPopRoundTrip(t *testing.T) {
	addList := []intItem{
		47, 12, 93, 5, 28, 61, 84, 19, 70, 33,
		2, 55, 98, 41, 76, 8, 66, 24, 89, 50,
	}

	tree := avl.New()
	for _, n := range addList {
		if err := tree.Insert(n); nil != err {
			t.Fatalf("insert: %d error: %s", n, err)
		}
	}

	// descending extraction
	previous := intItem(127)
	for i := 0; i < len(addList); i += 1 {
		item, err := tree.Pop()
		if nil != err {
			t.Fatalf("pop error: %s", err)
		}
		if item.(intItem) >= previous {
			t.Fatalf("pop not descending: %v after %d", item, previous)
		}
		previous = item.(intItem)
		checkInvariants(t, tree)
	}
	if !tree.IsEmpty() {
		t.Fatal("pops left items behind")
	}
	if _, err := tree.Pop(); fault.ErrEmptyTree != err {
		t.Fatalf("pop on empty tree returned: %v", err)
	}

	// ascending extraction
	for _, n := range addList {
		if err := tree.Insert(n); nil != err {
			t.Fatalf("insert: %d error: %s", n, err)
		}
	}
	previous = intItem(-1)
	for i := 0; i < len(addList); i += 1 {
		item, err := tree.PopLeft()
		if nil != err {
			t.Fatalf("popleft error: %s", err)
		}
		if item.(intItem) <= previous {
			t.Fatalf("popleft not ascending: %v after %d", item, previous)
		}
		previous = item.(intItem)
		checkInvariants(t, tree)
	}
	if !tree.IsEmpty() {
		t.Fatal("poplefts left items behind")
	}
	if _, err := tree.PopLeft(); fault.ErrEmptyTree != err {
		t.Fatalf("popleft on empty tree returned: %v", err)
	}
}

func TestFirstLast(t *testing.T) {
	tree := avl.New()
	for _, n := range []intItem{5, 3, 8, 1, 4, 7, 9} {
		if err := tree.Insert(n); nil != err {
			t.Fatalf("insert: %d error: %s", n, err)
		}
	}

	first, err := tree.First()
	if nil != err {
		t.Fatalf("first error: %s", err)
	}
	if intItem(1) != first.(intItem) {
		t.Fatalf("first: %v  expected: 1", first)
	}

	last, err := tree.Last()
	if nil != err {
		t.Fatalf("last error: %s", err)
	}
	if intItem(9) != last.(intItem) {
		t.Fatalf("last: %v  expected: 9", last)
	}

	// reading the extremes must not remove them
	if 7 != tree.Count() {
		t.Fatalf("count changed: %d", tree.Count())
	}
	tree.Clear()
}

// all the empty tree failure modes
func TestEmptyTreeFailures(t *testing.T) {
	tree := avl.New()

	if _, err := tree.Delete(intItem(1)); fault.ErrItemNotFound != err {
		t.Fatalf("delete returned: %v", err)
	}
	if _, err := tree.First(); fault.ErrEmptyTree != err {
		t.Fatalf("first returned: %v", err)
	}
	if _, err := tree.Last(); fault.ErrEmptyTree != err {
		t.Fatalf("last returned: %v", err)
	}
	if _, err := tree.Pop(); fault.ErrEmptyTree != err {
		t.Fatalf("pop returned: %v", err)
	}
	if _, err := tree.PopLeft(); fault.ErrEmptyTree != err {
		t.Fatalf("popleft returned: %v", err)
	}
	if nil != tree.Search(intItem(1)) {
		t.Fatal("search on empty tree found an item")
	}
	if 0 != tree.Height() {
		t.Fatalf("height of empty tree: %d", tree.Height())
	}
}

// remove of an absent key must leave the tree untouched
func TestDeleteAbsent(t *testing.T) {
	tree := avl.New()
	for _, n := range []intItem{10, 20} {
		if err := tree.Insert(n); nil != err {
			t.Fatalf("insert: %d error: %s", n, err)
		}
	}

	if _, err := tree.Delete(intItem(15)); fault.ErrItemNotFound != err {
		t.Fatalf("delete returned: %v", err)
	}
	if 2 != tree.Count() {
		t.Fatalf("failed delete changed count: %d", tree.Count())
	}
	checkInvariants(t, tree)

	if _, err := tree.Delete(intItem(10)); nil != err {
		t.Fatalf("delete 10 error: %s", err)
	}
	if _, err := tree.Delete(intItem(20)); nil != err {
		t.Fatalf("delete 20 error: %s", err)
	}
	if 0 != tree.Count() {
		t.Fatalf("count: %d  expected: 0", tree.Count())
	}
	if !tree.IsEmpty() {
		t.Fatal("tree is not empty")
	}
	if _, err := tree.First(); fault.ErrEmptyTree != err {
		t.Fatalf("first returned: %v", err)
	}
}
