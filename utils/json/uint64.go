// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package json

import (
	"errors"
	"strconv"
)

var errWrongType = errors.New("expected a quoted number")

// Uint64 is a uint64 that marshals to and from a quoted decimal string, so
// amounts survive JSON clients that round numbers to float64.
type Uint64 uint64

func (u Uint64) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(u), 10) + `"`), nil
}

func (u *Uint64) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == "null" {
		return nil
	}
	if len(str) < 2 || str[0] != '"' || str[len(str)-1] != '"' {
		return errWrongType
	}
	val, err := strconv.ParseUint(str[1:len(str)-1], 10, 64)
	if err != nil {
		return err
	}
	*u = Uint64(val)
	return nil
}
