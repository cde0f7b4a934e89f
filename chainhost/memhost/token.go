// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memhost

import (
	"context"
	"errors"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/luxfi/bridgecore/chainhost"
)

// Token-layer errors. These propagate unmodified through the bridge core
// rather than being wrapped into one of its own sentinel codes; they model
// the failures a real token program would return.
var (
	ErrMintNotInitialized    = errors.New("memhost: mint has no recorded authority")
	ErrMintAuthorityMismatch = errors.New("memhost: mint authority mismatch")
	ErrTokenAccountNotFound  = errors.New("memhost: token account not initialized")
	ErrTokenOwnerMismatch    = errors.New("memhost: token account owner or mint mismatch")
	ErrTokenInsufficient     = errors.New("memhost: token account balance below requested amount")
)

type tokenAccount struct {
	owner  chainhost.PublicKey
	mint   chainhost.PublicKey
	amount uint64
}

// TokenProgram is an in-memory stand-in for the SPL-token-program CPI
// surface the bridge core consumes. Real deployments wire a host that
// issues actual cross-program invocations; this implementation exists
// purely to make the core's behavior testable.
type TokenProgram struct {
	mu       sync.RWMutex
	mintAuth map[chainhost.PublicKey]chainhost.PublicKey
	accounts map[chainhost.PublicKey]*tokenAccount
}

// NewTokenProgram returns an empty in-memory token program.
func NewTokenProgram() *TokenProgram {
	return &TokenProgram{
		mintAuth: make(map[chainhost.PublicKey]chainhost.PublicKey),
		accounts: make(map[chainhost.PublicKey]*tokenAccount),
	}
}

// SetMintAuthority records mint's authority. Test setup helper standing in
// for the mint's on-chain authority field; production hosts read this
// straight from the mint account instead of a side table.
func (t *TokenProgram) SetMintAuthority(mint, authority chainhost.PublicKey) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mintAuth[mint] = authority
}

// MintAuthority implements chainhost.TokenProgram.
func (t *TokenProgram) MintAuthority(ctx context.Context, mint chainhost.PublicKey) (chainhost.PublicKey, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	auth, ok := t.mintAuth[mint]
	if !ok {
		return chainhost.PublicKey{}, ErrMintNotInitialized
	}
	return auth, nil
}

// EnsureAssociatedAccount implements chainhost.TokenProgram. payer is
// accepted for interface parity; the in-memory ledger does not meter
// rent.
func (t *TokenProgram) EnsureAssociatedAccount(ctx context.Context, payer, owner, mint chainhost.PublicKey) (chainhost.PublicKey, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return chainhost.PublicKey{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.accounts[ata]; !ok {
		t.accounts[ata] = &tokenAccount{owner: owner, mint: mint}
	}
	return ata, nil
}

// MintTo implements chainhost.TokenProgram. authority must equal the
// mint's recorded authority, or the call fails exactly as an on-chain
// mint-authority-mismatch would.
func (t *TokenProgram) MintTo(ctx context.Context, mint, authority, to chainhost.PublicKey, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	auth, ok := t.mintAuth[mint]
	if !ok {
		return ErrMintNotInitialized
	}
	if auth != authority {
		return ErrMintAuthorityMismatch
	}

	acct, ok := t.accounts[to]
	if !ok {
		return ErrTokenAccountNotFound
	}
	acct.amount += amount
	return nil
}

// Burn implements chainhost.TokenProgram.
func (t *TokenProgram) Burn(ctx context.Context, account, mint, owner chainhost.PublicKey, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	acct, ok := t.accounts[account]
	if !ok {
		return ErrTokenAccountNotFound
	}
	if acct.owner != owner || acct.mint != mint {
		return ErrTokenOwnerMismatch
	}
	if acct.amount < amount {
		return ErrTokenInsufficient
	}
	acct.amount -= amount
	return nil
}

// Transfer implements chainhost.TokenProgram.
func (t *TokenProgram) Transfer(ctx context.Context, from, to, owner chainhost.PublicKey, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	src, ok := t.accounts[from]
	if !ok {
		return ErrTokenAccountNotFound
	}
	if src.owner != owner {
		return ErrTokenOwnerMismatch
	}
	if src.amount < amount {
		return ErrTokenInsufficient
	}
	dst, ok := t.accounts[to]
	if !ok {
		return ErrTokenAccountNotFound
	}
	src.amount -= amount
	dst.amount += amount
	return nil
}

// BalanceOf implements chainhost.TokenProgram.
func (t *TokenProgram) BalanceOf(ctx context.Context, account chainhost.PublicKey) (uint64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	acct, ok := t.accounts[account]
	if !ok {
		return 0, ErrTokenAccountNotFound
	}
	return acct.amount, nil
}

// AccountOwnerAndMint implements chainhost.TokenProgram.
func (t *TokenProgram) AccountOwnerAndMint(ctx context.Context, account chainhost.PublicKey) (owner, mint chainhost.PublicKey, err error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	acct, ok := t.accounts[account]
	if !ok {
		return chainhost.PublicKey{}, chainhost.PublicKey{}, ErrTokenAccountNotFound
	}
	return acct.owner, acct.mint, nil
}
