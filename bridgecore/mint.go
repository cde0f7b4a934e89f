// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridgecore

import (
	"context"

	"go.uber.org/zap"

	"github.com/luxfi/bridgecore/chainhost"
)

// BridgeTokens is the quorum-authorized inbound mint: it verifies the
// trailing co-signers against the current ValidatorSet, ensures the
// recipient's associated token account exists, and mints amount units to
// it with the ValidatorSet PDA as minting authority.
//
// Token-layer failures (mint-authority mismatch being the canonical
// example) propagate unmodified; there is no local recovery.
func (p *Program) BridgeTokens(ctx context.Context, payer, mint, recipient chainhost.PublicKey, amount uint64, trailing []chainhost.PublicKey) (chainhost.PublicKey, error) {
	vs, vsAddr, err := p.loadValidatorSet(ctx)
	if err != nil {
		return chainhost.PublicKey{}, err
	}

	cosigners := p.cosigners(ctx, trailing)
	if err := VerifyQuorum(vs, cosigners); err != nil {
		p.logWarn("bridge_tokens rejected", zap.String("reason", err.Error()))
		return chainhost.PublicKey{}, err
	}

	recipientATA, err := p.Token.EnsureAssociatedAccount(ctx, payer, recipient, mint)
	if err != nil {
		return chainhost.PublicKey{}, err
	}

	if err := p.Token.MintTo(ctx, mint, vsAddr, recipientATA, amount); err != nil {
		return chainhost.PublicKey{}, err
	}

	p.logInfo("bridge_tokens", zap.Uint64("amount", amount), zap.String("recipient", recipient.String()))
	return recipientATA, nil
}
