// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"encoding"
	"encoding/binary"
	"io"

	"github.com/bitmark-inc/avltree/fault"
)

// Dump - write a binary snapshot of the tree
//
// layout, all integers little endian:
//
//	int32             item count
//	count × 2 × int32 per node, in breadth first discovery order, the
//	                  interleaved left and right child slots: 0 for an
//	                  absent child, otherwise the 1 based breadth
//	                  first discovery order of that child
//	count × record    int32 byte count followed by the bytes from the
//	                  item's MarshalBinary
//
// every item must implement encoding.BinaryMarshaler or the dump
// fails with fault.ErrItemNotBinary before any bytes are written
func (tree *Tree) Dump(w io.Writer) error {

	// discovery order; the slot map yields 0 for the nil child
	order := make([]*node, 0, tree.Count())
	slot := make(map[*node]int32)
	if nil != tree.root {
		order = append(order, tree.root)
		slot[tree.root] = 1
	}
	for i := 0; i < len(order); i += 1 {
		p := order[i]
		if nil != p.left {
			order = append(order, p.left)
			slot[p.left] = int32(len(order))
		}
		if nil != p.right {
			order = append(order, p.right)
			slot[p.right] = int32(len(order))
		}
	}

	payload := make([][]byte, len(order))
	for i, p := range order {
		im, ok := p.item.(encoding.BinaryMarshaler)
		if !ok {
			return fault.ErrItemNotBinary
		}
		data, err := im.MarshalBinary()
		if nil != err {
			return err
		}
		payload[i] = data
	}

	err := binary.Write(w, binary.LittleEndian, int32(len(order)))
	if nil != err {
		return err
	}
	for _, p := range order {
		lr := [2]int32{slot[p.left], slot[p.right]}
		err = binary.Write(w, binary.LittleEndian, lr)
		if nil != err {
			return err
		}
	}
	for _, data := range payload {
		err = binary.Write(w, binary.LittleEndian, int32(len(data)))
		if nil != err {
			return err
		}
		_, err = w.Write(data)
		if nil != err {
			return err
		}
	}
	return nil
}
