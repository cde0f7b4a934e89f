// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridgecore

import "github.com/luxfi/bridgecore/chainhost"

// VerifyQuorum is the pure predicate reused by every privileged
// operation: membership, uniqueness, and count against vs's threshold.
//
// Checks run in this order, short-circuiting on first failure:
//  1. len(cosigners) < vs.Threshold -> ErrNotEnoughSigners, checked
//     before any per-signer validation.
//  2. For each cosigner in order: a repeated key, a key absent from
//     vs.Signers, or a key the runtime did not mark as signed ->
//     ErrInvalidSigner.
func VerifyQuorum(vs *ValidatorSet, cosigners []Cosigner) error {
	if len(cosigners) < int(vs.Threshold) {
		return ErrNotEnoughSigners
	}

	seen := make(map[chainhost.PublicKey]bool, len(cosigners))
	for _, cs := range cosigners {
		if seen[cs.Key] {
			return ErrInvalidSigner
		}
		seen[cs.Key] = true

		if !cs.Signed || !vs.isMember(cs.Key) {
			return ErrInvalidSigner
		}
	}
	return nil
}
