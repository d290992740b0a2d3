// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hookgate/hookgate/ids"
)

func TestAllowListBytesLayout(t *testing.T) {
	require := require.New(t)

	addr := ids.GenerateTestAddress()
	list := &AllowList{
		Addresses: []ids.Address{addr},
		Bump:      7,
	}

	bytes := list.Bytes()
	require.Len(bytes, list.Size())
	require.Len(bytes, 8+4+32+1)

	// record tag
	require.Equal([]byte(recordTag), bytes[:8])
	// little-endian length
	require.Equal(uint32(1), binary.LittleEndian.Uint32(bytes[8:12]))
	// address payload
	require.Equal(addr[:], bytes[12:44])
	// bump
	require.Equal(byte(7), bytes[44])
}

func TestAllowListRoundTrip(t *testing.T) {
	require := require.New(t)

	list := &AllowList{
		Addresses: []ids.Address{
			ids.GenerateTestAddress(),
			ids.GenerateTestAddress(),
			ids.GenerateTestAddress(),
		},
		Bump: 255,
	}

	parsed, err := ParseAllowList(list.Bytes())
	require.NoError(err)
	require.Equal(list, parsed)
}

func TestAllowListEmptyRoundTrip(t *testing.T) {
	require := require.New(t)

	list := &AllowList{Bump: 3}

	bytes := list.Bytes()
	require.Len(bytes, 13)

	parsed, err := ParseAllowList(bytes)
	require.NoError(err)
	require.Empty(parsed.Addresses)
	require.Equal(byte(3), parsed.Bump)
}

func TestParseAllowListErrors(t *testing.T) {
	list := &AllowList{
		Addresses: []ids.Address{ids.GenerateTestAddress()},
		Bump:      1,
	}
	valid := list.Bytes()

	tests := []struct {
		name        string
		bytes       []byte
		expectedErr error
	}{
		{
			name:        "empty",
			bytes:       nil,
			expectedErr: ErrRecordTooShort,
		},
		{
			name:        "wrong tag",
			bytes:       append([]byte("\x00\x00\x00\x00\x00\x00\x00\x00"), valid[8:]...),
			expectedErr: ErrWrongRecordTag,
		},
		{
			name:        "truncated addresses",
			bytes:       valid[:len(valid)-2],
			expectedErr: ErrRecordTooShort,
		},
		{
			name:        "trailing bytes",
			bytes:       append(append([]byte{}, valid...), 0xff),
			expectedErr: ErrTrailingBytes,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseAllowList(test.bytes)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestAllowListContains(t *testing.T) {
	require := require.New(t)

	member := ids.GenerateTestAddress()
	stranger := ids.GenerateTestAddress()

	list := &AllowList{Addresses: []ids.Address{member}}
	require.True(list.Contains(member))
	require.False(list.Contains(stranger))
}

func TestDeriveRecordAddressDeterministic(t *testing.T) {
	require := require.New(t)

	program := ids.GenerateTestAddress()

	addr1, bump1, err := DeriveRecordAddress(program, []byte(WhitelistSeed))
	require.NoError(err)

	addr2, bump2, err := DeriveRecordAddress(program, []byte(WhitelistSeed))
	require.NoError(err)

	require.Equal(addr1, addr2)
	require.Equal(bump1, bump2)

	// The stored bump must reproduce the same address.
	require.Equal(addr1, DeriveRecordAddressWithBump(program, bump1, []byte(WhitelistSeed)))
}

func TestDeriveRecordAddressDomains(t *testing.T) {
	require := require.New(t)

	program := ids.GenerateTestAddress()

	whitelist, _, err := DeriveRecordAddress(program, []byte(WhitelistSeed))
	require.NoError(err)

	authority, _, err := DeriveRecordAddress(program, []byte(AuthoritySeed))
	require.NoError(err)

	mint := ids.GenerateTestAddress()
	metas, _, err := DeriveRecordAddress(program, []byte(ExtraAccountMetasSeed), mint[:])
	require.NoError(err)

	require.NotEqual(whitelist, authority)
	require.NotEqual(whitelist, metas)
	require.NotEqual(authority, metas)
}
