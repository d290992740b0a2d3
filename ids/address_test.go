// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToAddress(t *testing.T) {
	require := require.New(t)

	bytes := make([]byte, AddressLen)
	bytes[0] = 0x01
	bytes[31] = 0xff

	addr, err := ToAddress(bytes)
	require.NoError(err)
	require.Equal(bytes, addr.Bytes())

	_, err = ToAddress(bytes[:16])
	require.ErrorIs(err, errWrongAddressLen)

	_, err = ToAddress(append(bytes, 0x00))
	require.ErrorIs(err, errWrongAddressLen)
}

func TestAddressStringRoundTrip(t *testing.T) {
	require := require.New(t)

	addr := GenerateTestAddress()
	parsed, err := FromString(addr.String())
	require.NoError(err)
	require.Equal(addr, parsed)
}

func TestAddressJSONRoundTrip(t *testing.T) {
	require := require.New(t)

	addr := GenerateTestAddress()
	b, err := json.Marshal(addr)
	require.NoError(err)

	var parsed Address
	require.NoError(json.Unmarshal(b, &parsed))
	require.Equal(addr, parsed)
}

func TestAddressFromStringBadChecksum(t *testing.T) {
	addr := GenerateTestAddress()
	str := addr.String()

	// Flip a character to invalidate the checksum
	mutated := []byte(str)
	if mutated[0] == '2' {
		mutated[0] = '3'
	} else {
		mutated[0] = '2'
	}

	_, err := FromString(string(mutated))
	require.Error(t, err)
}
