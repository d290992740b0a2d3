// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"fmt"
)

// Extension types understood by this package. The numbering is part of the
// wire format shared with the external transfer engine.
const (
	// ExtensionTransferHook marks a mint whose transfers must invoke the
	// gate.
	ExtensionTransferHook uint16 = 14

	// ExtensionTransferHookAccount carries the transfer-in-progress flag on a
	// holder account.
	ExtensionTransferHookAccount uint16 = 15
)

const transferHookAccountLen = 1

// TransferHookAccount is the decoded transfer-hook extension of a holder
// account. The external transfer engine sets Transferring immediately before
// invoking the gate and clears it immediately after, so observing it true is
// the only proof that a gate invocation is part of a genuine transfer.
type TransferHookAccount struct {
	Transferring bool
}

// TransferHookAccount returns the decoded transfer-hook extension. An account
// without the extension is the wrong kind of account to be gated, which is
// surfaced as ErrMalformedAccount.
func (a *Account) TransferHookAccount() (*TransferHookAccount, error) {
	value, ok := a.Extension(ExtensionTransferHookAccount)
	if !ok {
		return nil, fmt.Errorf("%w: missing transfer hook extension", ErrMalformedAccount)
	}
	if len(value) != transferHookAccountLen {
		return nil, fmt.Errorf("%w: transfer hook extension has %d bytes, expected %d",
			ErrMalformedAccount, len(value), transferHookAccountLen)
	}
	return &TransferHookAccount{
		Transferring: value[0] != 0,
	}, nil
}

// SetTransferHookAccount appends or overwrites the transfer-hook extension.
// It exists for embedding engines and tests; the gate itself never mutates
// accounts.
func (a *Account) SetTransferHookAccount(transferring bool) {
	value := []byte{0}
	if transferring {
		value[0] = 1
	}
	for i, ext := range a.extensions {
		if ext.typ == ExtensionTransferHookAccount {
			a.extensions[i].value = value
			return
		}
	}
	a.extensions = append(a.extensions, extension{
		typ:   ExtensionTransferHookAccount,
		value: value,
	})
}
