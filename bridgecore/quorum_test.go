// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridgecore

import (
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/luxfi/bridgecore/chainhost"
)

func key(b byte) chainhost.PublicKey {
	var buf [32]byte
	buf[0] = b
	buf[31] = 0x42
	return solana.PublicKeyFromBytes(buf[:])
}

func tenSignerSet() *ValidatorSet {
	signers := make([]chainhost.PublicKey, 10)
	for i := range signers {
		signers[i] = key(byte(i + 1))
	}
	return &ValidatorSet{Signers: signers, Threshold: Threshold(10), Bump: 255}
}

func signed(keys ...chainhost.PublicKey) []Cosigner {
	out := make([]Cosigner, len(keys))
	for i, k := range keys {
		out[i] = Cosigner{Key: k, Signed: true}
	}
	return out
}

func TestVerifyQuorum(t *testing.T) {
	vs := tenSignerSet()

	tests := []struct {
		name      string
		cosigners []Cosigner
		wantErr   error
	}{
		{
			name:      "exact threshold, all members, all signed",
			cosigners: signed(key(1), key(2), key(3), key(4), key(5), key(6), key(7)),
			wantErr:   nil,
		},
		{
			name:      "below threshold",
			cosigners: signed(key(1), key(2)),
			wantErr:   ErrNotEnoughSigners,
		},
		{
			name:      "non-member present",
			cosigners: signed(key(1), key(2), key(3), key(4), key(5), key(6), key(99)),
			wantErr:   ErrInvalidSigner,
		},
		{
			name: "claimed cosigner not actually marked signed",
			cosigners: append(
				signed(key(1), key(2), key(3), key(4), key(5), key(6)),
				Cosigner{Key: key(7), Signed: false},
			),
			wantErr: ErrInvalidSigner,
		},
		{
			name:      "duplicate cosigner rejected even though raw count meets threshold",
			cosigners: signed(key(1), key(1), key(2), key(3), key(4), key(5), key(6)),
			wantErr:   ErrInvalidSigner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyQuorum(vs, tt.cosigners)
			if err != tt.wantErr {
				t.Fatalf("VerifyQuorum() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		n    int
		want uint8
	}{
		{4, 3},
		{9, 6},
		{10, 7},
		{19, 13},
	}
	for _, tt := range tests {
		if got := Threshold(tt.n); got != tt.want {
			t.Errorf("Threshold(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
