// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package versiondb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hookgate/hookgate/database"
	"github.com/hookgate/hookgate/database/memdb"
)

func TestInterface(t *testing.T) {
	for _, test := range database.Tests {
		baseDB := memdb.New()
		test(t, New(baseDB))
	}
}

func TestCommit(t *testing.T) {
	require := require.New(t)

	baseDB := memdb.New()
	db := New(baseDB)

	key := []byte("hello")
	value := []byte("world")

	require.NoError(db.Put(key, value))

	// The base database must not see the write before commit.
	has, err := baseDB.Has(key)
	require.NoError(err)
	require.False(has)

	require.NoError(db.Commit())

	v, err := baseDB.Get(key)
	require.NoError(err)
	require.Equal(value, v)
}

func TestAbort(t *testing.T) {
	require := require.New(t)

	baseDB := memdb.New()
	db := New(baseDB)

	key := []byte("hello")
	value := []byte("world")

	require.NoError(db.Put(key, value))

	v, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, v)

	db.Abort()

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	has, err := baseDB.Has(key)
	require.NoError(err)
	require.False(has)
}

func TestCommitShadowsDelete(t *testing.T) {
	require := require.New(t)

	baseDB := memdb.New()
	db := New(baseDB)

	key := []byte("hello")
	value := []byte("world")

	require.NoError(baseDB.Put(key, value))
	require.NoError(db.Delete(key))

	_, err := db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Commit())

	has, err := baseDB.Has(key)
	require.NoError(err)
	require.False(has)
}

func TestIteratorMerges(t *testing.T) {
	require := require.New(t)

	baseDB := memdb.New()
	db := New(baseDB)

	require.NoError(baseDB.Put([]byte("a"), []byte("1")))
	require.NoError(baseDB.Put([]byte("c"), []byte("3")))
	require.NoError(db.Put([]byte("b"), []byte("2")))
	require.NoError(db.Delete([]byte("c")))

	iterator := db.NewIterator()
	defer iterator.Release()

	require.True(iterator.Next())
	require.Equal([]byte("a"), iterator.Key())
	require.Equal([]byte("1"), iterator.Value())

	require.True(iterator.Next())
	require.Equal([]byte("b"), iterator.Key())
	require.Equal([]byte("2"), iterator.Value())

	require.False(iterator.Next())
	require.NoError(iterator.Error())
}
