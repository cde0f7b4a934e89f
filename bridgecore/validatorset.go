// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridgecore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/luxfi/bridgecore/chainhost"
)

// Initialize creates the ValidatorSet singleton. It is open (no deployer
// authority check) but single-shot: the first caller to supply a valid
// candidate list wins the race.
//
// Preconditions, checked in order, first failure wins:
//  1. len(candidates) >= configured MinValidators, else ErrMinValidatorsNotMet.
//  2. len(candidates) <= configured MaxValidators, else ErrMaxValidatorsExceeded.
//  3. candidates pairwise distinct, else ErrValidatorsNotUnique.
//  4. the ValidatorSet PDA does not yet exist, else a plain (non-sentinel)
//     "already initialized" error. This check is a Store.Get made here;
//     the error is built by the core, not returned by the runtime.
func (p *Program) Initialize(ctx context.Context, payer chainhost.PublicKey, candidates []chainhost.PublicKey) (*ValidatorSet, error) {
	n := len(candidates)
	if n < p.Config.minValidators() {
		p.logWarn("initialize rejected", zap.Int("candidates", n), zap.String("reason", ErrMinValidatorsNotMet.Error()))
		return nil, ErrMinValidatorsNotMet
	}
	if n > p.Config.maxValidators() {
		p.logWarn("initialize rejected", zap.Int("candidates", n), zap.String("reason", ErrMaxValidatorsExceeded.Error()))
		return nil, ErrMaxValidatorsExceeded
	}
	if hasDuplicate(candidates) {
		p.logWarn("initialize rejected", zap.String("reason", ErrValidatorsNotUnique.Error()))
		return nil, ErrValidatorsNotUnique
	}

	addr, bump, err := p.validatorSetAddress()
	if err != nil {
		return nil, err
	}

	if _, exists, err := p.Store.Get(ctx, addr); err != nil {
		return nil, err
	} else if exists {
		return nil, fmt.Errorf("bridgecore: validator set at %s is already initialized", addr)
	}

	vs := &ValidatorSet{
		Signers:   append([]chainhost.PublicKey(nil), candidates...),
		Threshold: Threshold(n),
		Bump:      bump,
	}
	if err := p.Store.Put(ctx, addr, payer, vs.Encode()); err != nil {
		return nil, err
	}

	p.logInfo("validator set initialized", zap.Int("signers", n), zap.Uint8("threshold", vs.Threshold), zap.String("digest", auditDigest(vs.Encode())))
	return vs, nil
}
