// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/hookgate/hookgate/utils/hashing"
)

var errMissingHexPrefix = errors.New("missing 0x prefix to hex encoding")

// EncodeHex converts bytes to a hex string with a 4 byte checksum appended
// and a 0x prefix.
func EncodeHex(b []byte) string {
	checked := make([]byte, len(b)+checksumLen)
	copy(checked, b)
	copy(checked[len(b):], hashing.Checksum(b, checksumLen))
	return fmt.Sprintf("0x%x", checked)
}

// DecodeHex is the inverse of EncodeHex.
func DecodeHex(str string) ([]byte, error) {
	if !strings.HasPrefix(str, "0x") {
		return nil, errMissingHexPrefix
	}
	b, err := hex.DecodeString(str[2:])
	if err != nil {
		return nil, err
	}
	if len(b) < checksumLen {
		return nil, ErrMissingChecksum
	}

	rawBytes := b[:len(b)-checksumLen]
	checksum := b[len(b)-checksumLen:]

	if !bytes.Equal(checksum, hashing.Checksum(rawBytes, checksumLen)) {
		return nil, ErrBadChecksum
	}
	return rawBytes, nil
}
