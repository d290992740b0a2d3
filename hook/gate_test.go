// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package hook

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/hookgate/hookgate/admin"
	"github.com/hookgate/hookgate/database/memdb"
	"github.com/hookgate/hookgate/ids"
	"github.com/hookgate/hookgate/state"
	"github.com/hookgate/hookgate/token"
	"github.com/hookgate/hookgate/utils/logging"
)

func newTestGate(t *testing.T) *Gate {
	gate, err := New(logging.NoLog, "", prometheus.NewRegistry())
	require.NoError(t, err)
	return gate
}

// sourceBytes packs a holder account for [owner] with the transfer-hook
// extension set to [transferring].
func sourceBytes(mint, owner ids.Address, transferring bool) []byte {
	account := &token.Account{
		Mint:   mint,
		Owner:  owner,
		Amount: 1000,
		State:  token.StateInitialized,
	}
	account.SetTransferHookAccount(transferring)
	return account.Bytes()
}

func TestAuthorizeWhitelistedOwner(t *testing.T) {
	require := require.New(t)

	gate := newTestGate(t)

	mint := ids.GenerateTestAddress()
	owner := ids.GenerateTestAddress()
	destination := ids.GenerateTestAddress()
	allowList := &state.AllowList{Addresses: []ids.Address{owner}}

	err := gate.Authorize(
		sourceBytes(mint, owner, true),
		mint,
		destination,
		owner,
		allowList,
		1,
	)
	require.NoError(err)
}

func TestAuthorizeUnknownOwner(t *testing.T) {
	require := require.New(t)

	gate := newTestGate(t)

	mint := ids.GenerateTestAddress()
	member := ids.GenerateTestAddress()
	stranger := ids.GenerateTestAddress()
	allowList := &state.AllowList{Addresses: []ids.Address{member}}

	err := gate.Authorize(
		sourceBytes(mint, stranger, true),
		mint,
		ids.GenerateTestAddress(),
		stranger,
		allowList,
		1,
	)
	require.ErrorIs(err, ErrNotWhitelisted)
}

func TestAuthorizeNotTransferring(t *testing.T) {
	require := require.New(t)

	gate := newTestGate(t)

	mint := ids.GenerateTestAddress()
	owner := ids.GenerateTestAddress()
	allowList := &state.AllowList{Addresses: []ids.Address{owner}}

	err := gate.Authorize(
		sourceBytes(mint, owner, false),
		mint,
		ids.GenerateTestAddress(),
		owner,
		allowList,
		1,
	)
	require.ErrorIs(err, ErrNotTransferring)
}

// A standalone invocation must fail with ErrNotTransferring before the
// membership scan runs, regardless of whether the owner is on the list.
func TestAuthorizeOrdering(t *testing.T) {
	require := require.New(t)

	gate := newTestGate(t)

	mint := ids.GenerateTestAddress()
	member := ids.GenerateTestAddress()
	stranger := ids.GenerateTestAddress()
	allowList := &state.AllowList{Addresses: []ids.Address{member}}

	for _, owner := range []ids.Address{member, stranger} {
		err := gate.Authorize(
			sourceBytes(mint, owner, false),
			mint,
			ids.GenerateTestAddress(),
			owner,
			allowList,
			1,
		)
		require.ErrorIs(err, ErrNotTransferring)
		require.NotErrorIs(err, ErrNotWhitelisted)
	}
}

func TestAuthorizeMissingHookExtension(t *testing.T) {
	require := require.New(t)

	gate := newTestGate(t)

	mint := ids.GenerateTestAddress()
	owner := ids.GenerateTestAddress()
	allowList := &state.AllowList{Addresses: []ids.Address{owner}}

	// A base account without the transfer-hook extension is the wrong kind
	// of account, not a non-transfer.
	account := &token.Account{
		Mint:   mint,
		Owner:  owner,
		Amount: 1000,
		State:  token.StateInitialized,
	}

	err := gate.Authorize(
		account.Bytes(),
		mint,
		ids.GenerateTestAddress(),
		owner,
		allowList,
		1,
	)
	require.ErrorIs(err, token.ErrMalformedAccount)
	require.NotErrorIs(err, ErrNotTransferring)
}

func TestAuthorizeUndecodableSource(t *testing.T) {
	gate := newTestGate(t)

	owner := ids.GenerateTestAddress()
	allowList := &state.AllowList{Addresses: []ids.Address{owner}}

	err := gate.Authorize(
		[]byte("not a token account"),
		ids.GenerateTestAddress(),
		ids.GenerateTestAddress(),
		owner,
		allowList,
		1,
	)
	require.ErrorIs(t, err, token.ErrMalformedAccount)
}

func TestAuthorizeAccountMismatch(t *testing.T) {
	require := require.New(t)

	gate := newTestGate(t)

	mint := ids.GenerateTestAddress()
	owner := ids.GenerateTestAddress()
	allowList := &state.AllowList{Addresses: []ids.Address{owner}}

	// Declared owner disagrees with the account's recorded owner.
	err := gate.Authorize(
		sourceBytes(mint, ids.GenerateTestAddress(), true),
		mint,
		ids.GenerateTestAddress(),
		owner,
		allowList,
		1,
	)
	require.ErrorIs(err, ErrAccountMismatch)
}

func TestAuthorizeAmountNotInspected(t *testing.T) {
	require := require.New(t)

	gate := newTestGate(t)

	mint := ids.GenerateTestAddress()
	owner := ids.GenerateTestAddress()
	allowList := &state.AllowList{Addresses: []ids.Address{owner}}

	// The gate enforces identity, not quantity: any amount passes, even one
	// larger than the account balance. Balance bookkeeping is the engine's
	// job.
	for _, amount := range []uint64{0, 1, 1 << 62} {
		err := gate.Authorize(
			sourceBytes(mint, owner, true),
			mint,
			ids.GenerateTestAddress(),
			owner,
			allowList,
			amount,
		)
		require.NoError(err)
	}
}

func TestAuthorizeAfterRemoval(t *testing.T) {
	require := require.New(t)

	gate := newTestGate(t)

	mint := ids.GenerateTestAddress()
	owner := ids.GenerateTestAddress()

	allowList := &state.AllowList{Addresses: []ids.Address{owner}}
	source := sourceBytes(mint, owner, true)

	require.NoError(gate.Authorize(source, mint, ids.GenerateTestAddress(), owner, allowList, 1))

	// Empty the list and the same owner is denied.
	allowList.Addresses = nil
	err := gate.Authorize(source, mint, ids.GenerateTestAddress(), owner, allowList, 1)
	require.ErrorIs(err, ErrNotWhitelisted)
}

// Drives the gate against a list managed through the admin layer over a live
// database, rather than a hand-built one.
func TestAuthorizeAdministeredAllowList(t *testing.T) {
	require := require.New(t)

	gate := newTestGate(t)
	adm := admin.New(logging.NoLog, memdb.New(), ids.GenerateTestAddress())

	authority := ids.GenerateTestAddress()
	mint := ids.GenerateTestAddress()
	owner := ids.GenerateTestAddress()
	destination := ids.GenerateTestAddress()

	_, err := adm.InitializeAllowList(authority)
	require.NoError(err)
	require.NoError(adm.Add(authority, owner))

	allowList, err := adm.GetAllowList()
	require.NoError(err)
	require.NoError(gate.Authorize(sourceBytes(mint, owner, true), mint, destination, owner, allowList, 1))

	// Outside a transfer the owner is rejected before membership is
	// consulted.
	err = gate.Authorize(sourceBytes(mint, owner, false), mint, destination, owner, allowList, 1)
	require.ErrorIs(err, ErrNotTransferring)
	require.NotErrorIs(err, ErrNotWhitelisted)

	require.NoError(adm.Remove(authority, owner))
	allowList, err = adm.GetAllowList()
	require.NoError(err)

	err = gate.Authorize(sourceBytes(mint, owner, true), mint, destination, owner, allowList, 1)
	require.ErrorIs(err, ErrNotWhitelisted)
}
