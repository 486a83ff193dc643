// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
)

// intItem - the shell stores plain integers
type intItem int64

// Compare - three way integer comparison for the AVL interface
func (i intItem) Compare(x interface{}) int {
	j := x.(intItem)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// MarshalBinary - 8 byte little endian representation for snapshots
func (i intItem) MarshalBinary() ([]byte, error) {
	buffer := make([]byte, 8)
	binary.LittleEndian.PutUint64(buffer, uint64(i))
	return buffer, nil
}
