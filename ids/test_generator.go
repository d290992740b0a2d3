// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

var offset = uint64(0)

// GenerateTestAddress returns a new address that should only be used for
// testing
func GenerateTestAddress() Address {
	offset++
	var addr Address
	for i := uint64(0); i < 8; i++ {
		addr[i] = byte(offset >> (8 * i))
	}
	return addr
}
