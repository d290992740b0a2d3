// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package database

import (
	"github.com/hookgate/hookgate/ids"
)

func PutAddress(db KeyValueWriter, key []byte, val ids.Address) error {
	return db.Put(key, val[:])
}

func GetAddress(db KeyValueReader, key []byte) (ids.Address, error) {
	b, err := db.Get(key)
	if err != nil {
		return ids.Empty, err
	}
	return ids.ToAddress(b)
}

func Count(db Iteratee) (int, error) {
	iterator := db.NewIterator()
	defer iterator.Release()

	count := 0
	for iterator.Next() {
		count++
	}
	return count, iterator.Error()
}
