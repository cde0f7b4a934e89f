// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridgecore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/luxfi/bridgecore/chainhost"
)

// BridgeRequest is the user-initiated half of the outbound state machine:
// it escrows amount wrapped tokens and materializes a per-sender
// BridgingRequest account. Custody model: the escrowed amount is burned
// from the sender's associated token account (see DESIGN.md for why burn
// was chosen over a program-held escrow account).
//
// Preconditions, checked in order, first failure wins:
//  1. signersATA is initialized and owned by signer for mint, else
//     ErrAccountNotInitialized.
//  2. signersATA's balance >= amount, else ErrInsufficientFunds.
//  3. receiver is exactly ReceiverLength bytes, else ErrInvalidReceiverLength.
//  4. no live BridgingRequest exists for signer, else a plain
//     (non-sentinel) "already in use" error. This check is a Store.Get
//     made here; the error is built by the core, not returned by the
//     runtime.
func (p *Program) BridgeRequest(ctx context.Context, signer, signersATA, mint chainhost.PublicKey, amount uint64, receiver []byte, destinationChain uint32) (*BridgingRequest, error) {
	owner, acctMint, err := p.Token.AccountOwnerAndMint(ctx, signersATA)
	if err != nil || owner != signer || acctMint != mint {
		p.logWarn("bridge_request rejected", zap.String("reason", ErrAccountNotInitialized.Error()))
		return nil, ErrAccountNotInitialized
	}

	balance, err := p.Token.BalanceOf(ctx, signersATA)
	if err != nil {
		return nil, err
	}
	if balance < amount {
		p.logWarn("bridge_request rejected", zap.String("reason", ErrInsufficientFunds.Error()))
		return nil, ErrInsufficientFunds
	}

	if len(receiver) != ReceiverLength {
		p.logWarn("bridge_request rejected", zap.String("reason", ErrInvalidReceiverLength.Error()))
		return nil, ErrInvalidReceiverLength
	}

	addr, _, err := p.bridgingRequestAddress(signer)
	if err != nil {
		return nil, err
	}
	if _, exists, err := p.Store.Get(ctx, addr); err != nil {
		return nil, err
	} else if exists {
		return nil, fmt.Errorf("bridgecore: bridging request at %s is already in use", addr)
	}

	if err := p.Token.Burn(ctx, signersATA, mint, signer, amount); err != nil {
		return nil, err
	}

	br := &BridgingRequest{Sender: signer, Amount: amount, DestinationChain: destinationChain}
	copy(br.Receiver[:], receiver)

	if err := p.Store.Put(ctx, addr, signer, br.Encode()); err != nil {
		return nil, err
	}

	p.logInfo("bridge_request", zap.String("sender", signer.String()), zap.Uint64("amount", amount), zap.String("digest", auditDigest(br.Encode())))
	return br, nil
}

// CloseRequest is the quorum-gated half of the outbound state machine: it
// deallocates the sender's BridgingRequest account and refunds its rent
// to signer. Because BridgeRequest already burned the escrowed tokens,
// there is no further token-side effect here.
func (p *Program) CloseRequest(ctx context.Context, signer chainhost.PublicKey, trailing []chainhost.PublicKey) error {
	vs, _, err := p.loadValidatorSet(ctx)
	if err != nil {
		return err
	}

	cosigners := p.cosigners(ctx, trailing)
	if err := VerifyQuorum(vs, cosigners); err != nil {
		p.logWarn("close_request rejected", zap.String("reason", err.Error()))
		return err
	}

	addr, _, err := p.bridgingRequestAddress(signer)
	if err != nil {
		return err
	}

	if err := p.Store.Delete(ctx, addr, signer); err != nil {
		return err
	}

	p.logInfo("close_request", zap.String("sender", signer.String()))
	return nil
}
