// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memhost

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/bridgecore/chainhost"
)

func testKey(b byte) chainhost.PublicKey {
	var buf [32]byte
	buf[0] = b
	return solana.PublicKeyFromBytes(buf[:])
}

func TestAccountStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	host := New()
	addr := testKey(1)
	payer := testKey(2)

	_, exists, err := host.Get(ctx, addr)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, host.Put(ctx, addr, payer, []byte("hello")))

	data, exists, err := host.Get(ctx, addr)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, []byte("hello"), data)

	require.NoError(t, host.Delete(ctx, addr, payer))
	_, exists, err = host.Get(ctx, addr)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestDeleteUnallocatedFails(t *testing.T) {
	host := New()
	err := host.Delete(context.Background(), testKey(9), testKey(1))
	require.Error(t, err)
}

func TestSignerTracking(t *testing.T) {
	host := New()
	a, b := testKey(1), testKey(2)

	host.SetSigners(a)
	require.True(t, host.IsSigner(context.Background(), a))
	require.False(t, host.IsSigner(context.Background(), b))
}

func TestTokenProgramMintBurnTransfer(t *testing.T) {
	ctx := context.Background()
	tp := NewTokenProgram()

	mint := testKey(10)
	authority := testKey(11)
	owner := testKey(12)
	payer := testKey(13)

	tp.SetMintAuthority(mint, authority)

	ata, err := tp.EnsureAssociatedAccount(ctx, payer, owner, mint)
	require.NoError(t, err)

	wantATA, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	require.NoError(t, err)
	require.Equal(t, wantATA, ata)

	require.NoError(t, tp.MintTo(ctx, mint, authority, ata, 500))
	balance, err := tp.BalanceOf(ctx, ata)
	require.NoError(t, err)
	require.Equal(t, uint64(500), balance)

	require.ErrorIs(t, tp.MintTo(ctx, mint, testKey(99), ata, 1), ErrMintAuthorityMismatch)

	require.NoError(t, tp.Burn(ctx, ata, mint, owner, 200))
	balance, err = tp.BalanceOf(ctx, ata)
	require.NoError(t, err)
	require.Equal(t, uint64(300), balance)

	other := testKey(14)
	otherATA, err := tp.EnsureAssociatedAccount(ctx, payer, other, mint)
	require.NoError(t, err)
	require.NoError(t, tp.Transfer(ctx, ata, otherATA, owner, 100))

	balance, err = tp.BalanceOf(ctx, otherATA)
	require.NoError(t, err)
	require.Equal(t, uint64(100), balance)
}
