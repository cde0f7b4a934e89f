// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bridgecore is the on-chain core of a cross-chain token bridge:
// a quorum-gated validator set that mints wrapped tokens on inbound
// bridging, burns them on outbound bridging requests, and rotates its
// own membership. It consumes chain primitives (account storage, PDA
// derivation, the token program) through the chainhost package and never
// reimplements them.
package bridgecore

import "github.com/luxfi/bridgecore/chainhost"

// MinValidators and MaxValidators are the structural bounds a
// ValidatorSet's signer list must fall within, absent a Config override.
const (
	MinValidators = 4
	MaxValidators = 19
)

// ValidatorSetSeed is the fixed seed under which the ValidatorSet
// singleton account is derived.
const ValidatorSetSeed = "validator-set"

// BridgingRequestSeed is the fixed seed prefix under which a sender's
// BridgingRequest account is derived; the sender's public key is appended
// as the second seed component.
const BridgingRequestSeed = "bridging_request"

// ReceiverLength is the fixed byte length of a BridgingRequest's foreign
// chain recipient address.
const ReceiverLength = 32

// ValidatorSet is the durable record of authorized co-signers, derived
// deterministically from ValidatorSetSeed under the program's address.
type ValidatorSet struct {
	Signers   []chainhost.PublicKey
	Threshold uint8
	Bump      uint8
}

// Threshold computes ceil(2n/3) for n signers, the single formula this
// module uses everywhere a threshold is (re)computed.
func Threshold(n int) uint8 {
	return uint8((2*n + 2) / 3)
}

// isMember reports whether key appears in the signer list.
func (vs *ValidatorSet) isMember(key chainhost.PublicKey) bool {
	for _, s := range vs.Signers {
		if s == key {
			return true
		}
	}
	return false
}

// BridgingRequest is a per-sender outbound escrow record, derived from
// BridgingRequestSeed and the sender's public key.
type BridgingRequest struct {
	Sender           chainhost.PublicKey
	Amount           uint64
	Receiver         [ReceiverLength]byte
	DestinationChain uint32
}

// Cosigner is one entry in the trailing co-signer list a privileged
// operation is authorized against: a claimed public key, plus whether the
// runtime has verified that this account actually signed the current
// transaction.
type Cosigner struct {
	Key    chainhost.PublicKey
	Signed bool
}
