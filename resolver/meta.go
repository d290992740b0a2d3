// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package resolver advertises which extra accounts the external transfer
// engine must attach when it invokes the gate. The engine reads the packed
// metadata record at setup time, resolves each entry to a concrete account,
// and passes those accounts along with the hook invocation.
package resolver

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hookgate/hookgate/utils/hashing"
)

const (
	// EntryLen is the packed size of one ExtraAccountMeta:
	// 1 byte discriminator, 32 byte config, 1 byte isSigner, 1 byte
	// isWritable.
	EntryLen = 35

	headerLen = recordTagLen + lengthLen + countLen

	recordTagLen = 8
	lengthLen    = 4
	countLen     = 4

	addressConfigLen = 32

	// Entry discriminators
	discriminatorLiteral     = 0
	discriminatorSeedDerived = 1

	// Seed rule kinds packed inside the address config
	seedKindLiteral = 1
)

var (
	// executeTag identifies the metadata record on the wire. It is the first
	// 8 bytes of the hash of "transfer-hook-interface:execute".
	executeTag = hashing.ComputeHash256([]byte("transfer-hook-interface:execute"))[:recordTagLen]

	ErrSeedTooLong      = errors.New("seed does not fit in address config")
	ErrWrongRecordTag   = errors.New("wrong record tag")
	ErrRecordTooShort   = errors.New("record too short")
	ErrWrongRecordLen   = errors.New("record length field mismatch")
	ErrUnknownSeedKind  = errors.New("unknown seed kind")
	ErrBadDiscriminator = errors.New("unknown entry discriminator")
)

// ExtraAccountMeta describes one additional account a hook invocation needs:
// either a literal address or a derivation rule for one, plus the signer and
// writability requirements the engine must honor when attaching it.
type ExtraAccountMeta struct {
	Discriminator byte
	AddressConfig [addressConfigLen]byte
	IsSigner      bool
	IsWritable    bool
}

// NewSeedDerivedMeta returns an entry whose address is derived from the given
// literal seeds relative to the gate's program address.
func NewSeedDerivedMeta(isSigner, isWritable bool, seeds ...[]byte) (ExtraAccountMeta, error) {
	meta := ExtraAccountMeta{
		Discriminator: discriminatorSeedDerived,
		IsSigner:      isSigner,
		IsWritable:    isWritable,
	}
	offset := 0
	for _, seed := range seeds {
		// each packed seed rule is [kind][len][bytes]
		if offset+2+len(seed) > addressConfigLen {
			return ExtraAccountMeta{}, fmt.Errorf("%w: %d seed bytes", ErrSeedTooLong, len(seed))
		}
		meta.AddressConfig[offset] = seedKindLiteral
		meta.AddressConfig[offset+1] = byte(len(seed))
		copy(meta.AddressConfig[offset+2:], seed)
		offset += 2 + len(seed)
	}
	return meta, nil
}

// Seeds unpacks the literal seeds from the address config of a seed-derived
// entry.
func (m *ExtraAccountMeta) Seeds() ([][]byte, error) {
	if m.Discriminator != discriminatorSeedDerived {
		return nil, fmt.Errorf("%w: %d", ErrBadDiscriminator, m.Discriminator)
	}
	var seeds [][]byte
	config := m.AddressConfig[:]
	for len(config) >= 2 && config[0] != 0 {
		if config[0] != seedKindLiteral {
			return nil, fmt.Errorf("%w: %d", ErrUnknownSeedKind, config[0])
		}
		seedLen := int(config[1])
		if 2+seedLen > len(config) {
			return nil, fmt.Errorf("%w: seed claims %d bytes", ErrSeedTooLong, seedLen)
		}
		seeds = append(seeds, config[2:2+seedLen])
		config = config[2+seedLen:]
	}
	return seeds, nil
}

// Bytes returns the 35 byte packed entry.
func (m *ExtraAccountMeta) Bytes() []byte {
	bytes := make([]byte, EntryLen)
	bytes[0] = m.Discriminator
	copy(bytes[1:], m.AddressConfig[:])
	if m.IsSigner {
		bytes[33] = 1
	}
	if m.IsWritable {
		bytes[34] = 1
	}
	return bytes
}

func parseEntry(bytes []byte) ExtraAccountMeta {
	meta := ExtraAccountMeta{
		Discriminator: bytes[0],
		IsSigner:      bytes[33] != 0,
		IsWritable:    bytes[34] != 0,
	}
	copy(meta.AddressConfig[:], bytes[1:33])
	return meta
}

// SizeOf returns the packed size of a metadata record holding [numMetas]
// entries. It is used to size the record allocation at setup time.
func SizeOf(numMetas int) int {
	return headerLen + numMetas*EntryLen
}

// RecordBytes packs the metadata record:
//
//	[8 byte execute tag][4 byte length][4 byte count][count * 35 byte entry]
//
// The length field covers everything after itself.
func RecordBytes(metas []ExtraAccountMeta) []byte {
	bytes := make([]byte, SizeOf(len(metas)))
	offset := copy(bytes, executeTag)

	binary.LittleEndian.PutUint32(bytes[offset:], uint32(countLen+len(metas)*EntryLen))
	offset += lengthLen

	binary.LittleEndian.PutUint32(bytes[offset:], uint32(len(metas)))
	offset += countLen

	for i := range metas {
		offset += copy(bytes[offset:], metas[i].Bytes())
	}
	return bytes
}

// ParseRecord is the inverse of RecordBytes.
func ParseRecord(bytes []byte) ([]ExtraAccountMeta, error) {
	if len(bytes) < headerLen {
		return nil, fmt.Errorf("%w: have %d bytes", ErrRecordTooShort, len(bytes))
	}
	if string(bytes[:recordTagLen]) != string(executeTag) {
		return nil, ErrWrongRecordTag
	}
	length := binary.LittleEndian.Uint32(bytes[recordTagLen:])
	count := binary.LittleEndian.Uint32(bytes[recordTagLen+lengthLen:])

	if int(length) != countLen+int(count)*EntryLen {
		return nil, fmt.Errorf("%w: length %d with %d entries", ErrWrongRecordLen, length, count)
	}
	if len(bytes) != SizeOf(int(count)) {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrWrongRecordLen, len(bytes), SizeOf(int(count)))
	}

	metas := make([]ExtraAccountMeta, count)
	offset := headerLen
	for i := range metas {
		metas[i] = parseEntry(bytes[offset : offset+EntryLen])
		offset += EntryLen
	}
	return metas, nil
}
