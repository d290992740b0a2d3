// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/hookgate/hookgate/utils/formatting"
)

const AddressLen = 32

// Empty is a useful all zero value
var (
	Empty = Address{}

	errWrongAddressLen = errors.New("wrong address length")
)

// Address wraps a 32 byte identifier of an account owner, a mint, or a
// program-owned record.
type Address [AddressLen]byte

// ToAddress attempts to convert a byte slice into an address
func ToAddress(bytes []byte) (Address, error) {
	if len(bytes) != AddressLen {
		return Empty, fmt.Errorf("%w: expected %d bytes but got %d", errWrongAddressLen, AddressLen, len(bytes))
	}
	var addr Address
	copy(addr[:], bytes)
	return addr, nil
}

// FromString is the inverse of Address.String()
func FromString(addrStr string) (Address, error) {
	bytes, err := formatting.Decode(addrStr)
	if err != nil {
		return Empty, err
	}
	return ToAddress(bytes)
}

func (addr Address) MarshalJSON() ([]byte, error) {
	str, err := formatting.Encode(addr[:])
	if err != nil {
		return nil, err
	}
	return []byte(`"` + str + `"`), nil
}

func (addr *Address) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == "null" {
		return nil
	}
	if len(str) < 2 {
		return errWrongAddressLen
	}
	parsed, err := FromString(str[1 : len(str)-1])
	if err != nil {
		return err
	}
	*addr = parsed
	return nil
}

func (addr Address) MarshalText() ([]byte, error) {
	str, err := formatting.Encode(addr[:])
	return []byte(str), err
}

func (addr *Address) UnmarshalText(text []byte) error {
	parsed, err := FromString(string(text))
	if err != nil {
		return err
	}
	*addr = parsed
	return nil
}

// Bytes returns the 32 byte identifier as a slice. It is assumed this slice
// is not modified.
func (addr Address) Bytes() []byte {
	return addr[:]
}

// Hex returns a hex encoded string of this address.
func (addr Address) Hex() string {
	return hex.EncodeToString(addr.Bytes())
}

func (addr Address) String() string {
	// We assume that the maximum size of a byte slice that
	// can be stringified is at least the length of an address
	str, _ := formatting.Encode(addr.Bytes())
	return str
}
