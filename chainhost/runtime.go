// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chainhost defines the primitives the bridge core consumes from
// its hosting chain runtime: account storage, program-derived-address
// derivation, and the token program. The core never implements any of
// these itself; it only orchestrates calls through this boundary.
package chainhost

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// PublicKey is the 32-byte account identifier used throughout the bridge
// core. It is the same type the wider Solana Go ecosystem uses, so a real
// host can pass its own keys through without conversion.
type PublicKey = solana.PublicKey

// AccountStore persists the program-owned accounts (ValidatorSet,
// BridgingRequest). A real host backs this with on-chain account storage;
// chainhost/memhost backs it with an in-memory key/value store for tests.
type AccountStore interface {
	// Get returns the raw account bytes for addr, or exists=false if the
	// account has never been allocated.
	Get(ctx context.Context, addr PublicKey) (data []byte, exists bool, err error)

	// Put allocates or overwrites the account at addr with data, charging
	// rent to payer on first allocation.
	Put(ctx context.Context, addr PublicKey, payer PublicKey, data []byte) error

	// Delete deallocates the account at addr, refunding its rent to
	// refundee. Deleting an account that does not exist is an error.
	Delete(ctx context.Context, addr PublicKey, refundee PublicKey) error
}

// Runtime exposes the host's transaction-scoped facts: address derivation
// and which accounts the host has verified as having signed the current
// transaction.
type Runtime interface {
	// FindProgramAddress derives the canonical PDA and bump for seeds
	// under programID, the same derivation a Solana runtime performs.
	FindProgramAddress(programID PublicKey, seeds ...[]byte) (PublicKey, uint8, error)

	// IsSigner reports whether the host has verified that account signed
	// the transaction currently being processed. The core never verifies
	// signatures itself; it only asks the runtime.
	IsSigner(ctx context.Context, account PublicKey) bool
}

// TokenProgram is the cross-program-invoked token primitive: mint,
// transfer, burn, balance reads, and associated-token-account lookup.
// mint-authority mismatches and similar failures are surfaced unmodified
// by implementations of this interface.
type TokenProgram interface {
	// EnsureAssociatedAccount returns the associated token account for
	// (owner, mint), creating it (paid by payer) if it does not exist.
	EnsureAssociatedAccount(ctx context.Context, payer, owner, mint PublicKey) (PublicKey, error)

	// MintTo mints amount units of mint into the account at to. authority
	// must equal the mint's recorded mint authority or the call fails.
	MintTo(ctx context.Context, mint, authority, to PublicKey, amount uint64) error

	// Burn burns amount units from account, which must be owned by owner.
	Burn(ctx context.Context, account, mint, owner PublicKey, amount uint64) error

	// Transfer moves amount units from one token account to another,
	// authorized by owner.
	Transfer(ctx context.Context, from, to, owner PublicKey, amount uint64) error

	// BalanceOf returns the token balance held by account.
	BalanceOf(ctx context.Context, account PublicKey) (uint64, error)

	// AccountOwnerAndMint returns the owner and mint recorded against a
	// token account.
	AccountOwnerAndMint(ctx context.Context, account PublicKey) (owner, mint PublicKey, err error)

	// MintAuthority returns the current mint authority of mint.
	MintAuthority(ctx context.Context, mint PublicKey) (PublicKey, error)
}
