// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package token decodes the packed byte representation of a token account as
// produced by the external transfer engine. The gate only ever reads these
// accounts; it never writes them.
package token

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hookgate/hookgate/ids"
)

const (
	mintLen            = ids.AddressLen
	ownerLen           = ids.AddressLen
	amountLen          = 8
	optionTagLen       = 4
	stateLen           = 1
	delegatedAmountLen = 8

	// BaseAccountLen is the size of an account without extensions.
	BaseAccountLen = mintLen + ownerLen + amountLen +
		optionTagLen + ids.AddressLen + // delegate
		stateLen +
		optionTagLen + amountLen + // native amount
		delegatedAmountLen +
		optionTagLen + ids.AddressLen // close authority

	accountTypeOffset = BaseAccountLen
	tlvOffset         = accountTypeOffset + 1

	tlvHeaderLen = 4 // 2 byte type + 2 byte length

	optionTagNone = 0
	optionTagSome = 1

	// AccountTypeAccount tags the byte representation of a holder account, as
	// opposed to a mint.
	AccountTypeAccount = 2
)

// Account states
const (
	StateUninitialized uint8 = iota
	StateInitialized
	StateFrozen
)

var (
	// ErrMalformedAccount is returned whenever the packed representation
	// cannot be decoded. It indicates the wrong kind of account was supplied,
	// which is a different failure class than a well-formed account that is
	// not mid-transfer.
	ErrMalformedAccount = errors.New("malformed token account")

	errBufferTooShort    = errors.New("buffer too short")
	errWrongAccountType  = errors.New("wrong account type")
	errInvalidOptionTag  = errors.New("invalid option tag")
	errTrailingTLVBytes  = errors.New("trailing bytes after last extension")
	errUninitializedAcct = errors.New("account is uninitialized")
)

// Account is the decoded form of a token account.
type Account struct {
	Mint            ids.Address
	Owner           ids.Address
	Amount          uint64
	Delegate        *ids.Address
	State           uint8
	NativeAmount    *uint64
	DelegatedAmount uint64
	CloseAuthority  *ids.Address

	// extensions in the order they appear in the packed representation
	extensions []extension
}

type extension struct {
	typ   uint16
	value []byte
}

// ParseAccount decodes the packed representation of a token account. All
// decode failures are wrapped in ErrMalformedAccount.
func ParseAccount(bytes []byte) (*Account, error) {
	if len(bytes) < BaseAccountLen {
		return nil, fmt.Errorf("%w: %s: have %d bytes, need %d",
			ErrMalformedAccount, errBufferTooShort, len(bytes), BaseAccountLen)
	}

	account := &Account{}
	offset := 0

	copy(account.Mint[:], bytes[offset:])
	offset += mintLen

	copy(account.Owner[:], bytes[offset:])
	offset += ownerLen

	account.Amount = binary.LittleEndian.Uint64(bytes[offset:])
	offset += amountLen

	delegate, read, err := unpackOptionalAddress(bytes[offset:])
	if err != nil {
		return nil, fmt.Errorf("%w: delegate: %s", ErrMalformedAccount, err)
	}
	account.Delegate = delegate
	offset += read

	account.State = bytes[offset]
	offset += stateLen

	nativeAmount, read, err := unpackOptionalAmount(bytes[offset:])
	if err != nil {
		return nil, fmt.Errorf("%w: native amount: %s", ErrMalformedAccount, err)
	}
	account.NativeAmount = nativeAmount
	offset += read

	account.DelegatedAmount = binary.LittleEndian.Uint64(bytes[offset:])
	offset += delegatedAmountLen

	closeAuthority, _, err := unpackOptionalAddress(bytes[offset:])
	if err != nil {
		return nil, fmt.Errorf("%w: close authority: %s", ErrMalformedAccount, err)
	}
	account.CloseAuthority = closeAuthority

	if account.State == StateUninitialized {
		return nil, fmt.Errorf("%w: %s", ErrMalformedAccount, errUninitializedAcct)
	}

	if len(bytes) == BaseAccountLen {
		return account, nil
	}

	// Everything after the base record is the account type tag followed by
	// type-length-value extension entries.
	if bytes[accountTypeOffset] != AccountTypeAccount {
		return nil, fmt.Errorf("%w: %s: %d", ErrMalformedAccount, errWrongAccountType, bytes[accountTypeOffset])
	}

	extensions, err := parseExtensions(bytes[tlvOffset:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedAccount, err)
	}
	account.extensions = extensions
	return account, nil
}

func parseExtensions(bytes []byte) ([]extension, error) {
	var extensions []extension
	for len(bytes) > 0 {
		if len(bytes) < tlvHeaderLen {
			return nil, errTrailingTLVBytes
		}
		typ := binary.LittleEndian.Uint16(bytes)
		length := int(binary.LittleEndian.Uint16(bytes[2:]))
		bytes = bytes[tlvHeaderLen:]

		if len(bytes) < length {
			return nil, fmt.Errorf("%s: extension %d claims %d bytes, %d remain",
				errBufferTooShort, typ, length, len(bytes))
		}
		extensions = append(extensions, extension{
			typ:   typ,
			value: bytes[:length],
		})
		bytes = bytes[length:]
	}
	return extensions, nil
}

// Extension returns the raw value of the first extension of the requested
// type.
func (a *Account) Extension(typ uint16) ([]byte, bool) {
	for _, ext := range a.extensions {
		if ext.typ == typ {
			return ext.value, true
		}
	}
	return nil, false
}

// Bytes returns the packed representation of this account. It is the inverse
// of ParseAccount and exists for embedding engines and tests that need to
// construct accounts.
func (a *Account) Bytes() []byte {
	size := BaseAccountLen
	if len(a.extensions) > 0 {
		size += 1 // account type tag
		for _, ext := range a.extensions {
			size += tlvHeaderLen + len(ext.value)
		}
	}

	bytes := make([]byte, size)
	offset := 0

	copy(bytes[offset:], a.Mint[:])
	offset += mintLen

	copy(bytes[offset:], a.Owner[:])
	offset += ownerLen

	binary.LittleEndian.PutUint64(bytes[offset:], a.Amount)
	offset += amountLen

	offset += packOptionalAddress(bytes[offset:], a.Delegate)

	bytes[offset] = a.State
	offset += stateLen

	offset += packOptionalAmount(bytes[offset:], a.NativeAmount)

	binary.LittleEndian.PutUint64(bytes[offset:], a.DelegatedAmount)
	offset += delegatedAmountLen

	offset += packOptionalAddress(bytes[offset:], a.CloseAuthority)

	if len(a.extensions) == 0 {
		return bytes
	}

	bytes[offset] = AccountTypeAccount
	offset++

	for _, ext := range a.extensions {
		binary.LittleEndian.PutUint16(bytes[offset:], ext.typ)
		binary.LittleEndian.PutUint16(bytes[offset+2:], uint16(len(ext.value)))
		offset += tlvHeaderLen
		copy(bytes[offset:], ext.value)
		offset += len(ext.value)
	}
	return bytes
}

func unpackOptionalAddress(bytes []byte) (*ids.Address, int, error) {
	read := optionTagLen + ids.AddressLen
	switch binary.LittleEndian.Uint32(bytes) {
	case optionTagNone:
		return nil, read, nil
	case optionTagSome:
		addr := ids.Address{}
		copy(addr[:], bytes[optionTagLen:])
		return &addr, read, nil
	default:
		return nil, 0, errInvalidOptionTag
	}
}

func packOptionalAddress(bytes []byte, addr *ids.Address) int {
	if addr != nil {
		binary.LittleEndian.PutUint32(bytes, optionTagSome)
		copy(bytes[optionTagLen:], addr[:])
	}
	return optionTagLen + ids.AddressLen
}

func unpackOptionalAmount(bytes []byte) (*uint64, int, error) {
	read := optionTagLen + amountLen
	switch binary.LittleEndian.Uint32(bytes) {
	case optionTagNone:
		return nil, read, nil
	case optionTagSome:
		amount := binary.LittleEndian.Uint64(bytes[optionTagLen:])
		return &amount, read, nil
	default:
		return nil, 0, errInvalidOptionTag
	}
}

func packOptionalAmount(bytes []byte, amount *uint64) int {
	if amount != nil {
		binary.LittleEndian.PutUint32(bytes, optionTagSome)
		binary.LittleEndian.PutUint64(bytes[optionTagLen:], *amount)
	}
	return optionTagLen + amountLen
}
