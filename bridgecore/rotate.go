// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridgecore

import (
	"context"

	"go.uber.org/zap"

	"github.com/luxfi/bridgecore/chainhost"
)

// ValidatorSetChange overwrites the signer list and recomputes the
// threshold. The PDA's bump is unchanged; its address does not move. The
// new set takes effect for the next transaction — this call itself is
// authorized against the set that was current on entry.
//
// Check order, quorum first (unlike Initialize, which has no quorum):
//  1. VerifyQuorum against the current signers/threshold.
//  2. len(newSet) >= configured MinValidators, else ErrMinValidatorsNotMet.
//  3. len(newSet) <= configured MaxValidators, else ErrMaxValidatorsExceeded.
//  4. newSet pairwise distinct, else ErrValidatorsNotUnique.
func (p *Program) ValidatorSetChange(ctx context.Context, signer chainhost.PublicKey, newSet []chainhost.PublicKey, trailing []chainhost.PublicKey) (*ValidatorSet, error) {
	vs, addr, err := p.loadValidatorSet(ctx)
	if err != nil {
		return nil, err
	}

	cosigners := p.cosigners(ctx, trailing)
	if err := VerifyQuorum(vs, cosigners); err != nil {
		p.logWarn("validator_set_change rejected", zap.String("reason", err.Error()))
		return nil, err
	}

	n := len(newSet)
	if n < p.Config.minValidators() {
		p.logWarn("validator_set_change rejected", zap.Int("signers", n), zap.String("reason", ErrMinValidatorsNotMet.Error()))
		return nil, ErrMinValidatorsNotMet
	}
	if n > p.Config.maxValidators() {
		p.logWarn("validator_set_change rejected", zap.Int("signers", n), zap.String("reason", ErrMaxValidatorsExceeded.Error()))
		return nil, ErrMaxValidatorsExceeded
	}
	if hasDuplicate(newSet) {
		p.logWarn("validator_set_change rejected", zap.String("reason", ErrValidatorsNotUnique.Error()))
		return nil, ErrValidatorsNotUnique
	}

	updated := &ValidatorSet{
		Signers:   append([]chainhost.PublicKey(nil), newSet...),
		Threshold: Threshold(n),
		Bump:      vs.Bump,
	}
	if err := p.Store.Put(ctx, addr, signer, updated.Encode()); err != nil {
		return nil, err
	}

	p.logInfo("validator set rotated", zap.Int("signers", n), zap.Uint8("threshold", updated.Threshold), zap.String("digest", auditDigest(updated.Encode())))
	return updated, nil
}
