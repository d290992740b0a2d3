// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58/base58"

	"github.com/hookgate/hookgate/utils/hashing"
)

const (
	checksumLen = 4

	// maximum length byte slice can be marshalled to a string
	maxCB58Size = 16 * 1024 // 16 KB
)

var (
	ErrMissingChecksum = errors.New("input string is smaller than the checksum size")
	ErrBadChecksum     = errors.New("invalid input checksum")
)

// Encode formats bytes in checksummed base-58 encoding.
func Encode(b []byte) (string, error) {
	if len(b) > maxCB58Size {
		return "", fmt.Errorf("byte slice length (%d) > maximum for cb58 (%d)", len(b), maxCB58Size)
	}
	checked := make([]byte, len(b)+checksumLen)
	copy(checked, b)
	copy(checked[len(b):], hashing.Checksum(b, checksumLen))
	return base58.Encode(checked), nil
}

// Decode is the inverse of Encode.
func Decode(str string) ([]byte, error) {
	if len(str) == 0 {
		return []byte{}, nil
	}
	b, err := base58.Decode(str)
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
