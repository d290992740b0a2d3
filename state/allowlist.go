// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state owns the persisted records of the gate: the allow-list and
// its admin authority. Records are located only through deterministic
// derivation from fixed seed literals; there is no free-form lookup.
package state

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hookgate/hookgate/ids"
	"github.com/hookgate/hookgate/utils/hashing"
)

const (
	recordTagLen = 8
	lengthLen    = 4
	bumpLen      = 1

	// MaxAddresses bounds the record size. The membership scan is linear and
	// runs under a bounded computation budget, so operators are expected to
	// keep the list far below this.
	MaxAddresses = 1024
)

var (
	// recordTag identifies the allow-list record on the wire. It is the first
	// 8 bytes of the hash of "account:Whitelist".
	recordTag = hashing.ComputeHash256([]byte("account:Whitelist"))[:recordTagLen]

	ErrWrongRecordTag   = errors.New("wrong record tag")
	ErrRecordTooShort   = errors.New("record too short")
	ErrTrailingBytes    = errors.New("trailing bytes after record")
	ErrTooManyAddresses = errors.New("too many addresses")
)

// AllowList is the ordered sequence of owner addresses permitted to transfer
// the gated token, along with the bump needed to re-derive the record's
// address. Insertion order is preserved.
type AllowList struct {
	Addresses []ids.Address
	Bump      byte
}

// Size returns the number of bytes Bytes will produce. It is used to size the
// record allocation in advance of creation. Growth beyond the allocated size
// is an operator concern; this package only reports the requirement.
func (l *AllowList) Size() int {
	return recordTagLen + lengthLen + len(l.Addresses)*ids.AddressLen + bumpLen
}

// Contains reports whether [owner] is on the list. Linear scan; the list is
// expected to stay short.
func (l *AllowList) Contains(owner ids.Address) bool {
	for _, addr := range l.Addresses {
		if addr == owner {
			return true
		}
	}
	return false
}

// Bytes returns the packed record:
//
//	[8 byte record tag][4 byte length][length * 32 byte address][1 byte bump]
func (l *AllowList) Bytes() []byte {
	bytes := make([]byte, l.Size())
	offset := copy(bytes, recordTag)

	binary.LittleEndian.PutUint32(bytes[offset:], uint32(len(l.Addresses)))
	offset += lengthLen

	for _, addr := range l.Addresses {
		offset += copy(bytes[offset:], addr[:])
	}

	bytes[offset] = l.Bump
	return bytes
}

// ParseAllowList is the inverse of Bytes.
func ParseAllowList(bytes []byte) (*AllowList, error) {
	if len(bytes) < recordTagLen+lengthLen+bumpLen {
		return nil, fmt.Errorf("%w: have %d bytes", ErrRecordTooShort, len(bytes))
	}
	if string(bytes[:recordTagLen]) != string(recordTag) {
		return nil, ErrWrongRecordTag
	}
	offset := recordTagLen

	numAddresses := binary.LittleEndian.Uint32(bytes[offset:])
	offset += lengthLen

	if numAddresses > MaxAddresses {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyAddresses, numAddresses, MaxAddresses)
	}
	if expected := offset + int(numAddresses)*ids.AddressLen + bumpLen; len(bytes) != expected {
		if len(bytes) < expected {
			return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrRecordTooShort, len(bytes), expected)
		}
		return nil, ErrTrailingBytes
	}

	list := &AllowList{
		Addresses: make([]ids.Address, numAddresses),
	}
	for i := range list.Addresses {
		copy(list.Addresses[i][:], bytes[offset:])
		offset += ids.AddressLen
	}
	list.Bump = bytes[offset]
	return list, nil
}
