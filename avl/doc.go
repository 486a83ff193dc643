// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced binary search tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height and item count of its sub-tree so that
// Height and Count are O(1) reads and rebalancing never re-walks a
// sub-tree.  Items carry their own ordering through the Compare
// method; Insert rejects a duplicate item while Update overwrites the
// stored item in place.
//
// Pop and PopLeft remove and return the extreme items, priority queue
// style, and are also the replacement source for Delete.  Lazy
// in-order and level-order iterators, an ASCII printer and two export
// encoders (binary snapshot and Graphviz DOT) read the structure
// without mutating it.
package avl
