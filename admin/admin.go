// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package admin is the privileged mutation surface of the gate: it creates
// the allow-list and metadata records and edits the allow-list's membership.
// Every operation runs against a buffered view of the record store and
// commits only if the whole operation succeeded, so a failed operation
// leaves no partial state behind.
package admin

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/hookgate/hookgate/database"
	"github.com/hookgate/hookgate/database/versiondb"
	"github.com/hookgate/hookgate/ids"
	"github.com/hookgate/hookgate/resolver"
	"github.com/hookgate/hookgate/state"
	"github.com/hookgate/hookgate/utils/logging"
)

var (
	// ErrAlreadyInitialized is returned when a record creation is attempted
	// where a record already exists.
	ErrAlreadyInitialized = errors.New("record already initialized")

	// ErrNotInitialized is returned when a mutation is attempted before the
	// allow-list record was created.
	ErrNotInitialized = errors.New("allow list not initialized")

	// ErrUnauthorized is returned when a mutation is attempted by an actor
	// other than the stored authority.
	ErrUnauthorized = errors.New("actor is not the allow list authority")

	// ErrDuplicateAddress is returned when an address that is already on the
	// list is added again. The list behaves as a set.
	ErrDuplicateAddress = errors.New("address already whitelisted")
)

// Admin mutates the gate's records on behalf of the token issuer.
type Admin struct {
	log     logging.Logger
	program ids.Address

	// lock serializes mutations, standing in for the ledger's exclusive
	// write locking of the allow-list record.
	lock sync.Mutex
	db   database.Database
}

// New returns an admin operating on the records of [program] stored in [db].
func New(log logging.Logger, db database.Database, program ids.Address) *Admin {
	return &Admin{
		log:     log,
		program: program,
		db:      db,
	}
}

// InitializeAllowList creates the empty allow-list record and stores [actor]
// as the authority for all future mutations. It fails if the record already
// exists; there is exactly one allow-list per deployment and no path ever
// destroys it.
func (a *Admin) InitializeAllowList(actor ids.Address) (byte, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	view := versiondb.New(a.db)
	defer view.Abort()

	listAddr, bump, err := state.DeriveRecordAddress(a.program, []byte(state.WhitelistSeed))
	if err != nil {
		return 0, err
	}

	exists, err := state.HasRecord(view, listAddr)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("%w: allow list at %s", ErrAlreadyInitialized, listAddr)
	}

	list := &state.AllowList{Bump: bump}
	if err := state.SetAllowList(view, listAddr, list); err != nil {
		return 0, err
	}

	authorityAddr, _, err := state.DeriveRecordAddress(a.program, []byte(state.AuthoritySeed))
	if err != nil {
		return 0, err
	}
	if err := state.SetAuthority(view, authorityAddr, actor); err != nil {
		return 0, err
	}

	if err := view.Commit(); err != nil {
		return 0, err
	}

	a.log.Info("initialized allow list",
		zap.Stringer("address", listAddr),
		zap.Uint8("bump", bump),
		zap.Stringer("authority", actor),
	)
	return bump, nil
}

// InitializeExtraAccountMetas creates the metadata record for [mint], sized
// for exactly the entries the resolver reports. The external transfer engine
// reads this record to learn which accounts to attach to a gate invocation.
func (a *Admin) InitializeExtraAccountMetas(mint ids.Address) (ids.Address, int, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	metas, err := resolver.Resolve(mint)
	if err != nil {
		return ids.Empty, 0, err
	}

	view := versiondb.New(a.db)
	defer view.Abort()

	recordAddr, bump, err := resolver.MetadataRecordAddress(a.program, mint)
	if err != nil {
		return ids.Empty, 0, err
	}

	exists, err := state.HasRecord(view, recordAddr)
	if err != nil {
		return ids.Empty, 0, err
	}
	if exists {
		return ids.Empty, 0, fmt.Errorf("%w: extra account metas at %s", ErrAlreadyInitialized, recordAddr)
	}

	recordBytes := resolver.RecordBytes(metas)
	if err := state.SetRecord(view, recordAddr, recordBytes); err != nil {
		return ids.Empty, 0, err
	}

	if err := view.Commit(); err != nil {
		return ids.Empty, 0, err
	}

	a.log.Info("initialized extra account metas",
		zap.Stringer("mint", mint),
		zap.Stringer("address", recordAddr),
		zap.Uint8("bump", bump),
		zap.Int("size", len(recordBytes)),
	)
	return recordAddr, len(recordBytes), nil
}

// Add appends [owner] to the allow-list. The list keeps set semantics:
// adding an address twice fails rather than storing a duplicate.
func (a *Admin) Add(actor, owner ids.Address) error {
	a.lock.Lock()
	defer a.lock.Unlock()

	view := versiondb.New(a.db)
	defer view.Abort()

	listAddr, list, err := a.getAllowList(view)
	if err != nil {
		return err
	}
	if err := a.checkAuthority(view, actor); err != nil {
		return err
	}

	if list.Contains(owner) {
		return fmt.Errorf("%w: %s", ErrDuplicateAddress, owner)
	}
	if len(list.Addresses) >= state.MaxAddresses {
		return fmt.Errorf("%w: %d", state.ErrTooManyAddresses, len(list.Addresses))
	}

	list.Addresses = append(list.Addresses, owner)
	if err := state.SetAllowList(view, listAddr, list); err != nil {
		return err
	}
	if err := view.Commit(); err != nil {
		return err
	}

	a.log.Info("whitelisted address",
		zap.Stringer("address", owner),
		zap.Int("listSize", len(list.Addresses)),
	)
	return nil
}

// Remove deletes [owner] from the allow-list. Removing an address that is
// not on the list is a no-op success, which keeps removal idempotent.
func (a *Admin) Remove(actor, owner ids.Address) error {
	a.lock.Lock()
	defer a.lock.Unlock()

	view := versiondb.New(a.db)
	defer view.Abort()

	listAddr, list, err := a.getAllowList(view)
	if err != nil {
		return err
	}
	if err := a.checkAuthority(view, actor); err != nil {
		return err
	}

	if !list.Contains(owner) {
		return nil
	}

	addresses := list.Addresses[:0]
	for _, addr := range list.Addresses {
		if addr != owner {
			addresses = append(addresses, addr)
		}
	}
	list.Addresses = addresses

	if err := state.SetAllowList(view, listAddr, list); err != nil {
		return err
	}
	if err := view.Commit(); err != nil {
		return err
	}

	a.log.Info("removed whitelisted address",
		zap.Stringer("address", owner),
		zap.Int("listSize", len(list.Addresses)),
	)
	return nil
}

// GetAllowList returns the current allow-list.
func (a *Admin) GetAllowList() (*state.AllowList, error) {
	_, list, err := a.getAllowList(a.db)
	return list, err
}

func (a *Admin) getAllowList(db database.KeyValueReader) (ids.Address, *state.AllowList, error) {
	listAddr, _, err := state.DeriveRecordAddress(a.program, []byte(state.WhitelistSeed))
	if err != nil {
		return ids.Empty, nil, err
	}
	list, err := state.GetAllowList(db, listAddr)
	if err == database.ErrNotFound {
		return ids.Empty, nil, ErrNotInitialized
	}
	if err != nil {
		return ids.Empty, nil, err
	}
	return listAddr, list, nil
}

func (a *Admin) checkAuthority(db database.KeyValueReader, actor ids.Address) error {
	authorityAddr, _, err := state.DeriveRecordAddress(a.program, []byte(state.AuthoritySeed))
	if err != nil {
		return err
	}
	authority, err := state.GetAuthority(db, authorityAddr)
	if err == database.ErrNotFound {
		return ErrNotInitialized
	}
	if err != nil {
		return err
	}
	if authority != actor {
		return fmt.Errorf("%w: %s", ErrUnauthorized, actor)
	}
	return nil
}
