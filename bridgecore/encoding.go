// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridgecore

import (
	"encoding/binary"
	"fmt"

	"github.com/luxfi/bridgecore/chainhost"
)

// Wire layout: fixed field order, little-endian integers, length-prefixed
// variable-length fields.
//
// ValidatorSet:  bump(1) threshold(1) count(1) signers(count*32)
// BridgingRequest: sender(32) amount(8 LE) receiver(32) destination_chain(4 LE)

// Encode serializes vs into its account layout.
func (vs *ValidatorSet) Encode() []byte {
	buf := make([]byte, 3+len(vs.Signers)*32)
	buf[0] = vs.Bump
	buf[1] = vs.Threshold
	buf[2] = byte(len(vs.Signers))
	for i, s := range vs.Signers {
		copy(buf[3+i*32:3+i*32+32], s[:])
	}
	return buf
}

// DecodeValidatorSet parses a ValidatorSet account payload.
func DecodeValidatorSet(data []byte) (*ValidatorSet, error) {
	if len(data) < 3 {
		return nil, fmt.Errorf("bridgecore: validator set account too short: %d bytes", len(data))
	}
	count := int(data[2])
	want := 3 + count*32
	if len(data) != want {
		return nil, fmt.Errorf("bridgecore: validator set account has %d signers but %d bytes (want %d)", count, len(data), want)
	}
	vs := &ValidatorSet{
		Bump:      data[0],
		Threshold: data[1],
		Signers:   make([]chainhost.PublicKey, count),
	}
	for i := 0; i < count; i++ {
		copy(vs.Signers[i][:], data[3+i*32:3+i*32+32])
	}
	return vs, nil
}

// Encode serializes br into its account layout.
func (br *BridgingRequest) Encode() []byte {
	buf := make([]byte, 32+8+32+4)
	copy(buf[0:32], br.Sender[:])
	binary.LittleEndian.PutUint64(buf[32:40], br.Amount)
	copy(buf[40:72], br.Receiver[:])
	binary.LittleEndian.PutUint32(buf[72:76], br.DestinationChain)
	return buf
}

// DecodeBridgingRequest parses a BridgingRequest account payload.
func DecodeBridgingRequest(data []byte) (*BridgingRequest, error) {
	const want = 32 + 8 + 32 + 4
	if len(data) != want {
		return nil, fmt.Errorf("bridgecore: bridging request account has %d bytes (want %d)", len(data), want)
	}
	br := &BridgingRequest{}
	copy(br.Sender[:], data[0:32])
	br.Amount = binary.LittleEndian.Uint64(data[32:40])
	copy(br.Receiver[:], data[40:72])
	br.DestinationChain = binary.LittleEndian.Uint32(data[72:76])
	return br, nil
}
