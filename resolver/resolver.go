// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package resolver

import (
	"errors"

	"github.com/hookgate/hookgate/ids"
	"github.com/hookgate/hookgate/state"
)

var ErrZeroMint = errors.New("zero mint address")

// Resolve returns the ordered extra accounts a gate invocation for [mint]
// needs. It is pure and deterministic: every gated mint resolves to the same
// single entry, a read-only reference to the allow-list record. The mint is
// accepted for symmetry with the hook invocation protocol.
func Resolve(mint ids.Address) ([]ExtraAccountMeta, error) {
	if mint == ids.Empty {
		return nil, ErrZeroMint
	}
	allowListMeta, err := NewSeedDerivedMeta(
		false, // isSigner
		false, // isWritable
		[]byte(state.WhitelistSeed),
	)
	if err != nil {
		return nil, err
	}
	return []ExtraAccountMeta{allowListMeta}, nil
}

// MetadataRecordAddress returns the canonical address of the metadata record
// for [mint], along with its derivation bump.
func MetadataRecordAddress(program, mint ids.Address) (ids.Address, byte, error) {
	return state.DeriveRecordAddress(
		program,
		[]byte(state.ExtraAccountMetasSeed),
		mint[:],
	)
}
