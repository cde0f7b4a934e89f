// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package memhost is an in-memory reference implementation of
// chainhost.AccountStore and chainhost.Runtime, serving as the test
// harness through which the bridge core's behavior is exercised.
package memhost

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/luxfi/database"
	"github.com/luxfi/database/memdb"

	"github.com/luxfi/bridgecore/chainhost"
)

// Host is a single in-memory account store plus a transaction-scoped
// signer set. It is not safe to share across concurrently executing
// calls that disagree about which accounts are signed; each call site
// is expected to set signers immediately before invoking a bridgecore
// operation, matching the single-threaded, one-transaction-at-a-time
// runtime model the core assumes.
type Host struct {
	mu      sync.RWMutex
	db      database.Database
	signers map[chainhost.PublicKey]bool
}

// New returns a Host backed by an in-memory key/value store.
func New() *Host {
	return &Host{
		db:      memdb.New(),
		signers: make(map[chainhost.PublicKey]bool),
	}
}

// Get implements chainhost.AccountStore.
func (h *Host) Get(ctx context.Context, addr chainhost.PublicKey) ([]byte, bool, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	data, err := h.db.Get(addr[:])
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Put implements chainhost.AccountStore. payer is accepted for parity
// with a real rent-charging runtime but is ignored here: no rent is
// charged, and the in-memory store never runs out of space.
func (h *Host) Put(ctx context.Context, addr, payer chainhost.PublicKey, data []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.db.Put(addr[:], data)
}

// Delete implements chainhost.AccountStore.
func (h *Host) Delete(ctx context.Context, addr, refundee chainhost.PublicKey) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	has, err := h.db.Has(addr[:])
	if err != nil {
		return err
	}
	if !has {
		return fmt.Errorf("memhost: account %s is not allocated", addr)
	}
	return h.db.Delete(addr[:])
}

// Exists reports whether an account has been allocated, without copying
// its contents. Useful for preconditions that only need a presence check.
func (h *Host) Exists(addr chainhost.PublicKey) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	has, _ := h.db.Has(addr[:])
	return has
}

// FindProgramAddress implements chainhost.Runtime by delegating to the
// real Solana PDA derivation, so bump/seed arithmetic is not reimplemented
// by the bridge core or by this harness.
func (h *Host) FindProgramAddress(programID chainhost.PublicKey, seeds ...[]byte) (chainhost.PublicKey, uint8, error) {
	return solana.FindProgramAddress(seeds, programID)
}

// SetSigners replaces the set of accounts the harness presents as having
// signed the transaction under construction. Call it immediately before
// each bridgecore operation under test.
func (h *Host) SetSigners(keys ...chainhost.PublicKey) {
	h.mu.Lock()
	defer h.mu.Unlock()
	signers := make(map[chainhost.PublicKey]bool, len(keys))
	for _, k := range keys {
		signers[k] = true
	}
	h.signers = signers
}

// IsSigner implements chainhost.Runtime.
func (h *Host) IsSigner(ctx context.Context, account chainhost.PublicKey) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.signers[account]
}
