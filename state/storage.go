// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/hookgate/hookgate/database"
	"github.com/hookgate/hookgate/ids"
)

/*
 * gateDB
 * |-. records
 * | |-- derivedAllowListAddress -> packed allow-list record
 * | '-- derivedMetadataAddress  -> packed extra-account-meta list
 * '-. authority
 *   '-- derivedAuthorityAddress -> admin address
 */

// HasRecord reports whether a record exists at [addr].
func HasRecord(db database.KeyValueReader, addr ids.Address) (bool, error) {
	return db.Has(addr[:])
}

// GetAllowList fetches and decodes the allow-list record at [addr].
func GetAllowList(db database.KeyValueReader, addr ids.Address) (*AllowList, error) {
	bytes, err := db.Get(addr[:])
	if err != nil {
		return nil, err
	}
	return ParseAllowList(bytes)
}

// SetAllowList writes the packed allow-list record at [addr].
func SetAllowList(db database.KeyValueWriter, addr ids.Address, list *AllowList) error {
	return db.Put(addr[:], list.Bytes())
}

// GetAuthority fetches the admin authority record at [addr].
func GetAuthority(db database.KeyValueReader, addr ids.Address) (ids.Address, error) {
	return database.GetAddress(db, addr[:])
}

// SetAuthority writes the admin authority record at [addr].
func SetAuthority(db database.KeyValueWriter, addr ids.Address, authority ids.Address) error {
	return database.PutAddress(db, addr[:], authority)
}

// GetRecord fetches the raw record bytes at [addr].
func GetRecord(db database.KeyValueReader, addr ids.Address) ([]byte, error) {
	return db.Get(addr[:])
}

// SetRecord writes raw record bytes at [addr].
func SetRecord(db database.KeyValueWriter, addr ids.Address, bytes []byte) error {
	return db.Put(addr[:], bytes)
}
