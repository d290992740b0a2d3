// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"errors"

	"github.com/hookgate/hookgate/ids"
	"github.com/hookgate/hookgate/utils/hashing"
)

// Seed literals of the records owned by the gate. The record addresses are
// derived from these seeds and nothing else, so there is exactly one of each
// record per program address.
const (
	// WhitelistSeed locates the allow-list record.
	WhitelistSeed = "whitelist"

	// AuthoritySeed locates the record holding the admin authority address.
	AuthoritySeed = "whitelist-authority"

	// ExtraAccountMetasSeed prefixes the metadata record of a gated mint.
	ExtraAccountMetasSeed = "extra-account-metas"
)

// derivationMarker domain-separates record addresses from holder addresses.
const derivationMarker = "hookgate:record"

var ErrNoValidBump = errors.New("no valid derivation bump")

// DeriveRecordAddress returns the canonical record address for [seeds]
// relative to [program], along with the bump that produced it. The bump must
// be stored: re-deriving the address later only needs the seeds and the bump.
//
// Candidates are tried with the bump counting down from 255. Addresses whose
// last byte is zero are reserved for top-level program addresses and are
// skipped, which is why the bump is part of the scheme at all.
func DeriveRecordAddress(program ids.Address, seeds ...[]byte) (ids.Address, byte, error) {
	for bump := 255; bump >= 0; bump-- {
		addr := deriveWithBump(program, byte(bump), seeds)
		if addr[ids.AddressLen-1] != 0 {
			return addr, byte(bump), nil
		}
	}
	return ids.Empty, 0, ErrNoValidBump
}

// DeriveRecordAddressWithBump re-derives a record address from its stored
// bump. It performs no canonicality check; callers that need the canonical
// address should use DeriveRecordAddress.
func DeriveRecordAddressWithBump(program ids.Address, bump byte, seeds ...[]byte) ids.Address {
	return deriveWithBump(program, bump, seeds)
}

func deriveWithBump(program ids.Address, bump byte, seeds [][]byte) ids.Address {
	preimage := make([]byte, 0, 64)
	for _, seed := range seeds {
		preimage = append(preimage, seed...)
	}
	preimage = append(preimage, bump)
	preimage = append(preimage, program[:]...)
	preimage = append(preimage, derivationMarker...)
	return ids.Address(hashing.ComputeHash256Array(preimage))
}
