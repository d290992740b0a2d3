// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hook implements the authorization gate the external transfer
// engine invokes mid-transfer. The gate never moves value; it only decides
// whether the enclosing transfer may complete.
package hook

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hookgate/hookgate/ids"
	"github.com/hookgate/hookgate/state"
	"github.com/hookgate/hookgate/token"
	"github.com/hookgate/hookgate/utils/logging"
)

var (
	// ErrNotTransferring is returned when the gate is invoked outside a real
	// transfer. The check exists to stop direct calls from probing
	// allow-list membership or spoofing an authorization.
	ErrNotTransferring = errors.New("source account is not mid-transfer")

	// ErrNotWhitelisted is returned when the owner of the source account is
	// not on the allow-list.
	ErrNotWhitelisted = errors.New("owner is not whitelisted")

	// ErrAccountMismatch is returned when the source account's recorded mint
	// or owner disagrees with the declared ones.
	ErrAccountMismatch = errors.New("source account does not match declared mint and owner")
)

// Gate authorizes transfers of the gated token.
type Gate struct {
	metrics

	log logging.Logger
}

// New returns a gate that logs to [log] and reports its decisions to
// [registerer].
func New(log logging.Logger, namespace string, registerer prometheus.Registerer) (*Gate, error) {
	g := &Gate{log: log}
	return g, g.metrics.Initialize(namespace, registerer)
}

// Authorize decides whether the in-flight transfer of [amount] out of the
// account packed in [source] may complete. It is invoked by the external
// transfer engine as one step of its own atomic transfer; any returned error
// fails that whole transfer.
//
// Two checks run in a fixed order. The transferring check runs first so that
// a standalone invocation never learns membership information through the
// returned error. The amount is accepted but not inspected: the gate
// enforces identity, not quantity limits. The destination is likewise only
// part of the invocation protocol.
func (g *Gate) Authorize(
	source []byte,
	mint ids.Address,
	destination ids.Address,
	owner ids.Address,
	allowList *state.AllowList,
	amount uint64,
) error {
	sourceAccount, err := token.ParseAccount(source)
	if err != nil {
		g.malformed.Inc()
		return err
	}
	if sourceAccount.Mint != mint || sourceAccount.Owner != owner {
		g.malformed.Inc()
		return fmt.Errorf("%w: mint %s owner %s", ErrAccountMismatch, sourceAccount.Mint, sourceAccount.Owner)
	}

	if err := g.checkIsTransferring(sourceAccount); err != nil {
		return err
	}

	if !allowList.Contains(owner) {
		g.deniedNotWhitelisted.Inc()
		g.log.Debug("denied transfer",
			zap.Stringer("owner", owner),
			zap.Stringer("mint", mint),
		)
		return fmt.Errorf("%w: %s", ErrNotWhitelisted, owner)
	}

	g.authorized.Inc()
	g.log.Verbo("authorized transfer",
		zap.Stringer("owner", owner),
		zap.Stringer("mint", mint),
		zap.Stringer("destination", destination),
		zap.Uint64("amount", amount),
	)
	return nil
}

// checkIsTransferring fails unless the source account's transfer-hook
// extension reports a transfer in progress. A missing or undecodable
// extension is the wrong kind of account, which is a different failure class
// than a legitimate call made outside a transfer.
func (g *Gate) checkIsTransferring(sourceAccount *token.Account) error {
	hookAccount, err := sourceAccount.TransferHookAccount()
	if err != nil {
		g.malformed.Inc()
		return err
	}
	if !hookAccount.Transferring {
		g.deniedNotTransferring.Inc()
		return ErrNotTransferring
	}
	return nil
}
