// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package admin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hookgate/hookgate/database"
	"github.com/hookgate/hookgate/database/memdb"
	"github.com/hookgate/hookgate/ids"
	"github.com/hookgate/hookgate/resolver"
	"github.com/hookgate/hookgate/state"
	"github.com/hookgate/hookgate/utils/logging"
)

func newTestAdmin() (*Admin, *memdb.Database, ids.Address) {
	db := memdb.New()
	program := ids.GenerateTestAddress()
	return New(logging.NoLog, db, program), db, program
}

func TestInitializeAllowList(t *testing.T) {
	require := require.New(t)

	admin, _, program := newTestAdmin()
	authority := ids.GenerateTestAddress()

	bump, err := admin.InitializeAllowList(authority)
	require.NoError(err)

	// The record is empty and carries the canonical bump.
	list, err := admin.GetAllowList()
	require.NoError(err)
	require.Empty(list.Addresses)
	require.Equal(bump, list.Bump)

	_, expectedBump, err := state.DeriveRecordAddress(program, []byte(state.WhitelistSeed))
	require.NoError(err)
	require.Equal(expectedBump, bump)
}

func TestInitializeAllowListTwice(t *testing.T) {
	require := require.New(t)

	admin, _, _ := newTestAdmin()
	authority := ids.GenerateTestAddress()

	_, err := admin.InitializeAllowList(authority)
	require.NoError(err)

	_, err = admin.InitializeAllowList(authority)
	require.ErrorIs(err, ErrAlreadyInitialized)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	require := require.New(t)

	admin, _, _ := newTestAdmin()
	authority := ids.GenerateTestAddress()
	owner := ids.GenerateTestAddress()

	_, err := admin.InitializeAllowList(authority)
	require.NoError(err)

	before, err := admin.GetAllowList()
	require.NoError(err)

	require.NoError(admin.Add(authority, owner))

	list, err := admin.GetAllowList()
	require.NoError(err)
	require.Equal([]ids.Address{owner}, list.Addresses)

	require.NoError(admin.Remove(authority, owner))

	// add then remove restores the prior value
	after, err := admin.GetAllowList()
	require.NoError(err)
	require.Equal(before.Bytes(), after.Bytes())
}

func TestAddDuplicate(t *testing.T) {
	require := require.New(t)

	admin, _, _ := newTestAdmin()
	authority := ids.GenerateTestAddress()
	owner := ids.GenerateTestAddress()

	_, err := admin.InitializeAllowList(authority)
	require.NoError(err)

	require.NoError(admin.Add(authority, owner))

	err = admin.Add(authority, owner)
	require.ErrorIs(err, ErrDuplicateAddress)

	// The failed add left the list untouched.
	list, err := admin.GetAllowList()
	require.NoError(err)
	require.Equal([]ids.Address{owner}, list.Addresses)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	require := require.New(t)

	admin, _, _ := newTestAdmin()
	authority := ids.GenerateTestAddress()

	_, err := admin.InitializeAllowList(authority)
	require.NoError(err)

	require.NoError(admin.Remove(authority, ids.GenerateTestAddress()))
}

func TestMutationsRequireAuthority(t *testing.T) {
	require := require.New(t)

	admin, _, _ := newTestAdmin()
	authority := ids.GenerateTestAddress()
	stranger := ids.GenerateTestAddress()
	owner := ids.GenerateTestAddress()

	_, err := admin.InitializeAllowList(authority)
	require.NoError(err)

	err = admin.Add(stranger, owner)
	require.ErrorIs(err, ErrUnauthorized)

	err = admin.Remove(stranger, owner)
	require.ErrorIs(err, ErrUnauthorized)

	// Nothing was written by the rejected mutations.
	list, err := admin.GetAllowList()
	require.NoError(err)
	require.Empty(list.Addresses)
}

func TestMutationsBeforeInitialize(t *testing.T) {
	require := require.New(t)

	admin, _, _ := newTestAdmin()
	authority := ids.GenerateTestAddress()
	owner := ids.GenerateTestAddress()

	err := admin.Add(authority, owner)
	require.ErrorIs(err, ErrNotInitialized)

	err = admin.Remove(authority, owner)
	require.ErrorIs(err, ErrNotInitialized)

	_, err = admin.GetAllowList()
	require.ErrorIs(err, ErrNotInitialized)
}

func TestFailedMutationLeavesBaseUntouched(t *testing.T) {
	require := require.New(t)

	admin, db, _ := newTestAdmin()
	authority := ids.GenerateTestAddress()
	owner := ids.GenerateTestAddress()

	_, err := admin.InitializeAllowList(authority)
	require.NoError(err)
	require.NoError(admin.Add(authority, owner))

	countBefore, err := database.Count(db)
	require.NoError(err)

	err = admin.Add(ids.GenerateTestAddress(), ids.GenerateTestAddress())
	require.ErrorIs(err, ErrUnauthorized)

	countAfter, err := database.Count(db)
	require.NoError(err)
	require.Equal(countBefore, countAfter)
}

func TestInitializeExtraAccountMetas(t *testing.T) {
	require := require.New(t)

	admin, db, program := newTestAdmin()
	mint := ids.GenerateTestAddress()

	recordAddr, size, err := admin.InitializeExtraAccountMetas(mint)
	require.NoError(err)
	require.Equal(resolver.SizeOf(1), size)

	expectedAddr, _, err := resolver.MetadataRecordAddress(program, mint)
	require.NoError(err)
	require.Equal(expectedAddr, recordAddr)

	recordBytes, err := state.GetRecord(db, recordAddr)
	require.NoError(err)
	require.Len(recordBytes, size)

	metas, err := resolver.ParseRecord(recordBytes)
	require.NoError(err)
	require.Len(metas, 1)

	// Creating the record again must fail.
	_, _, err = admin.InitializeExtraAccountMetas(mint)
	require.ErrorIs(err, ErrAlreadyInitialized)

	// A different mint gets its own record.
	_, _, err = admin.InitializeExtraAccountMetas(ids.GenerateTestAddress())
	require.NoError(err)
}

func TestInitializeExtraAccountMetasZeroMint(t *testing.T) {
	admin, _, _ := newTestAdmin()

	_, _, err := admin.InitializeExtraAccountMetas(ids.Empty)
	require.ErrorIs(t, err, resolver.ErrZeroMint)
}
