// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package leveldb is the persistent backend of the gate's record store.
package leveldb

import (
	"context"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"golang.org/x/exp/slices"

	"github.com/hookgate/hookgate/database"
)

const (
	// Name is the name of this database for database switches
	Name = "leveldb"

	// DefaultBlockCacheSize is the number of bytes to use for block caching in
	// leveldb.
	DefaultBlockCacheSize = 12 * opt.MiB

	// DefaultWriteBufferSize is the number of bytes to use for buffers in
	// leveldb.
	DefaultWriteBufferSize = 12 * opt.MiB

	// DefaultHandleCap is the number of files descriptors to cap levelDB to
	// use.
	DefaultHandleCap = 1024

	// DefaultBitsPerKey is the number of bits to add to the bloom filter per
	// key.
	DefaultBitsPerKey = 10
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Batch    = (*batch)(nil)
	_ database.Iterator = (*iter)(nil)
)

// Database is a persistent key-value store. Apart from basic data storage
// functionality it also supports batch writes and iterating over the keyspace
// in binary-alphabetical order.
type Database struct {
	db *leveldb.DB
}

// New returns a wrapped LevelDB object.
func New(file string) (*Database, error) {
	db, err := leveldb.OpenFile(file, &opt.Options{
		BlockCacheCapacity:     DefaultBlockCacheSize,
		WriteBuffer:            DefaultWriteBufferSize / 2,
		OpenFilesCacheCapacity: DefaultHandleCap,
		Filter:                 filter.NewBloomFilter(DefaultBitsPerKey),
	})
	if err != nil {
		return nil, err
	}
	return &Database{db: db}, nil
}

func (db *Database) Has(key []byte) (bool, error) {
	has, err := db.db.Has(key, nil)
	return has, updateError(err)
}

func (db *Database) Get(key []byte) ([]byte, error) {
	value, err := db.db.Get(key, nil)
	return value, updateError(err)
}

func (db *Database) Put(key, value []byte) error {
	return updateError(db.db.Put(key, value, nil))
}

func (db *Database) Delete(key []byte) error {
	return updateError(db.db.Delete(key, nil))
}

func (db *Database) NewBatch() database.Batch {
	return &batch{db: db}
}

func (db *Database) NewIterator() database.Iterator {
	return db.NewIteratorWithStartAndPrefix(nil, nil)
}

func (db *Database) NewIteratorWithStart(start []byte) database.Iterator {
	return db.NewIteratorWithStartAndPrefix(start, nil)
}

func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	return db.NewIteratorWithStartAndPrefix(nil, prefix)
}

func (db *Database) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	dbRange := util.BytesPrefix(prefix)
	if bytesLess(dbRange.Start, start) {
		dbRange.Start = start
	}
	return &iter{it: db.db.NewIterator(dbRange, nil)}
}

func bytesLess(a, b []byte) bool {
	return string(a) < string(b)
}

func (db *Database) Compact(start, limit []byte) error {
	return updateError(db.db.CompactRange(util.Range{Start: start, Limit: limit}))
}

func (db *Database) Close() error {
	return updateError(db.db.Close())
}

func (db *Database) HealthCheck(context.Context) (interface{}, error) {
	// LevelDB surfaces unhealthiness through errors on regular operations, so
	// probe with a read.
	_, err := db.db.Has([]byte("\x00"), nil)
	return nil, updateError(err)
}

type batch struct {
	database.BatchOps

	db *Database
}

func (b *batch) Write() error {
	inner := new(leveldb.Batch)
	for _, op := range b.Ops {
		if op.Delete {
			inner.Delete(op.Key)
		} else {
			inner.Put(op.Key, op.Value)
		}
	}
	return updateError(b.db.db.Write(inner, nil))
}

func (b *batch) Inner() database.Batch {
	return b
}

type iter struct {
	it iterator.Iterator

	key, value []byte
}

func (it *iter) Next() bool {
	hasNext := it.it.Next()
	if hasNext {
		// LevelDB reuses the key and value buffers across Next calls.
		it.key = slices.Clone(it.it.Key())
		it.value = slices.Clone(it.it.Value())
	} else {
		it.key = nil
		it.value = nil
	}
	return hasNext
}

func (it *iter) Error() error {
	return updateError(it.it.Error())
}

func (it *iter) Key() []byte {
	return it.key
}

func (it *iter) Value() []byte {
	return it.value
}

func (it *iter) Release() {
	it.it.Release()
}

// updateError casts leveldb specific errors to their database package
// equivalents.
func updateError(err error) error {
	switch err {
	case leveldb.ErrClosed:
		return database.ErrClosed
	case leveldb.ErrNotFound:
		return database.ErrNotFound
	default:
		return err
	}
}
