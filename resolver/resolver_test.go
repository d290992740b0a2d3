// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hookgate/hookgate/ids"
	"github.com/hookgate/hookgate/state"
)

func TestResolveSingleEntry(t *testing.T) {
	require := require.New(t)

	metas, err := Resolve(ids.GenerateTestAddress())
	require.NoError(err)
	require.Len(metas, 1)

	meta := metas[0]
	require.False(meta.IsSigner)
	require.False(meta.IsWritable)

	seeds, err := meta.Seeds()
	require.NoError(err)
	require.Len(seeds, 1)
	require.Equal([]byte(state.WhitelistSeed), seeds[0])
}

func TestResolveDeterministic(t *testing.T) {
	require := require.New(t)

	mint := ids.GenerateTestAddress()

	metas1, err := Resolve(mint)
	require.NoError(err)

	metas2, err := Resolve(mint)
	require.NoError(err)

	// Bit-identical output across calls.
	require.Equal(RecordBytes(metas1), RecordBytes(metas2))

	// The result does not vary with the mint.
	otherMint := ids.GenerateTestAddress()
	metas3, err := Resolve(otherMint)
	require.NoError(err)
	require.Equal(RecordBytes(metas1), RecordBytes(metas3))
}

func TestResolveZeroMint(t *testing.T) {
	_, err := Resolve(ids.Empty)
	require.ErrorIs(t, err, ErrZeroMint)
}

func TestRecordRoundTrip(t *testing.T) {
	require := require.New(t)

	metas, err := Resolve(ids.GenerateTestAddress())
	require.NoError(err)

	bytes := RecordBytes(metas)
	require.Len(bytes, SizeOf(len(metas)))
	require.Len(bytes, 8+4+4+EntryLen)

	parsed, err := ParseRecord(bytes)
	require.NoError(err)
	require.Equal(metas, parsed)
}

func TestParseRecordErrors(t *testing.T) {
	metas, err := Resolve(ids.GenerateTestAddress())
	require.NoError(t, err)
	valid := RecordBytes(metas)

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
			bytes:       append(make([]byte, 8), valid[8:]...),
			expectedErr: ErrWrongRecordTag,
		},
		{
			name:        "truncated entry",
			bytes:       valid[:len(valid)-1],
			expectedErr: ErrWrongRecordLen,
		},
		{
			name:        "trailing bytes",
			bytes:       append(append([]byte{}, valid...), 0x00),
			expectedErr: ErrWrongRecordLen,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseRecord(test.bytes)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestMetadataRecordAddressPerMint(t *testing.T) {
	require := require.New(t)

	program := ids.GenerateTestAddress()
	mint1 := ids.GenerateTestAddress()
	mint2 := ids.GenerateTestAddress()

	addr1, bump1, err := MetadataRecordAddress(program, mint1)
	require.NoError(err)

	addr2, _, err := MetadataRecordAddress(program, mint2)
	require.NoError(err)

	// One metadata record per mint.
	require.NotEqual(addr1, addr2)

	// Re-derivable from the stored bump.
	require.Equal(addr1, state.DeriveRecordAddressWithBump(
		program,
		bump1,
		[]byte(state.ExtraAccountMetasSeed),
		mint1[:],
	))
}

func TestSeedTooLong(t *testing.T) {
	_, err := NewSeedDerivedMeta(false, false, make([]byte, 31))
	require.ErrorIs(t, err, ErrSeedTooLong)
}
