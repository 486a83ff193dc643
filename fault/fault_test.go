// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/avltree/fault"
)

var (
	ErrEmptyOne    = fault.EmptyError("empty one")
	ErrExistsOne   = fault.ExistsError("exists one")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrIteratorOne = fault.IteratorError("iterator one")
	ErrNotFoundOne = fault.NotFoundError("not found one")
)

// test that each error belongs to exactly one class
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		empty    bool
		exists   bool
		invalid  bool
		iterator bool
		notFound bool
	}{
		{ErrEmptyOne, true, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false},
		{ErrInvalidOne, false, false, true, false, false},
		{ErrIteratorOne, false, false, false, true, false},
		{ErrNotFoundOne, false, false, false, false, true},
		{fault.ErrDuplicateItem, false, true, false, false, false},
		{fault.ErrEmptyTree, true, false, false, false, false},
		{fault.ErrInvalidCommand, false, false, true, false, false},
		{fault.ErrItemNotFound, false, false, false, false, true},
		{fault.ErrIteratorExhausted, false, false, false, true, false},
	}

	for i, item := range errorList {
		if fault.IsErrEmpty(item.err) != item.empty {
			t.Errorf("%d: wrong empty class for: %v", i, item.err)
		}
		if fault.IsErrExists(item.err) != item.exists {
			t.Errorf("%d: wrong exists class for: %v", i, item.err)
		}
		if fault.IsErrInvalid(item.err) != item.invalid {
			t.Errorf("%d: wrong invalid class for: %v", i, item.err)
		}
		if fault.IsErrIterator(item.err) != item.iterator {
			t.Errorf("%d: wrong iterator class for: %v", i, item.err)
		}
		if fault.IsErrNotFound(item.err) != item.notFound {
			t.Errorf("%d: wrong not found class for: %v", i, item.err)
		}
	}
}

// canonical instances must compare equal to themselves only
func TestInstances(t *testing.T) {
	if error(fault.ErrDuplicateItem) == error(fault.ExistsError("duplicate item X")) {
		t.Errorf("different text compares equal")
	}
	if error(fault.ErrDuplicateItem) != error(fault.ErrDuplicateItem) {
		t.Errorf("identical error not equal to itself")
	}
	if fault.ErrEmptyTree.Error() != "tree is empty" {
		t.Errorf("unexpected message: %q", fault.ErrEmptyTree.Error())
	}
}
