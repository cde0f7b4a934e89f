// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridgecore

import (
	"context"
	"testing"

	"github.com/luxfi/bridgecore/chainhost/memhost"
)

func initializedTenValidatorProgram(t *testing.T) (*Program, *memhost.Host) {
	t.Helper()
	p, host := newTestProgram()
	ctx := context.Background()
	candidates := keys(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	if _, err := p.Initialize(ctx, key(0xA0), candidates); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return p, host
}

func TestValidatorSetChangeRotatesStaleSigners(t *testing.T) {
	p, host := initializedTenValidatorProgram(t)
	ctx := context.Background()

	newSet := keys(5, 6, 7, 8, 9, 10, 11, 12, 13, 14)
	host.SetSigners(keys(1, 2, 3, 4, 5, 6, 7)...)
	vs, err := p.ValidatorSetChange(ctx, key(0xA0), newSet, keys(1, 2, 3, 4, 5, 6, 7))
	if err != nil {
		t.Fatalf("ValidatorSetChange() error = %v", err)
	}
	if vs.Threshold != 7 {
		t.Fatalf("Threshold = %d, want 7", vs.Threshold)
	}

	host.SetSigners(keys(1, 2, 3, 4, 5, 6, 7)...)
	_, err = p.BridgeTokens(ctx, key(0xA0), key(0xB0), key(0xC0), 1, keys(1, 2, 3, 4, 5, 6, 7))
	if err != ErrInvalidSigner {
		t.Fatalf("stale cosigners err = %v, want ErrInvalidSigner", err)
	}
}

func TestValidatorSetChangeRejections(t *testing.T) {
	ctx := context.Background()

	t.Run("new set too small", func(t *testing.T) {
		p, host := initializedTenValidatorProgram(t)
		host.SetSigners(keys(1, 2, 3, 4, 5, 6, 7)...)
		_, err := p.ValidatorSetChange(ctx, key(0xA0), keys(1, 2, 3), keys(1, 2, 3, 4, 5, 6, 7))
		if err != ErrMinValidatorsNotMet {
			t.Fatalf("err = %v, want ErrMinValidatorsNotMet", err)
		}
	})

	t.Run("new set has duplicate", func(t *testing.T) {
		p, host := initializedTenValidatorProgram(t)
		host.SetSigners(keys(1, 2, 3, 4, 5, 6, 7)...)
		_, err := p.ValidatorSetChange(ctx, key(0xA0), keys(1, 2, 3, 4, 1), keys(1, 2, 3, 4, 5, 6, 7))
		if err != ErrValidatorsNotUnique {
			t.Fatalf("err = %v, want ErrValidatorsNotUnique", err)
		}
	})

	t.Run("too few cosigners", func(t *testing.T) {
		p, host := initializedTenValidatorProgram(t)
		host.SetSigners(keys(1, 2)...)
		_, err := p.ValidatorSetChange(ctx, key(0xA0), keys(1, 2, 3, 4, 5), keys(1, 2))
		if err != ErrNotEnoughSigners {
			t.Fatalf("err = %v, want ErrNotEnoughSigners", err)
		}
	})

	t.Run("cosigner not a member", func(t *testing.T) {
		p, host := initializedTenValidatorProgram(t)
		host.SetSigners(keys(1, 2, 3, 4, 5, 6, 99)...)
		_, err := p.ValidatorSetChange(ctx, key(0xA0), keys(1, 2, 3, 4, 5), keys(1, 2, 3, 4, 5, 6, 99))
		if err != ErrInvalidSigner {
			t.Fatalf("err = %v, want ErrInvalidSigner", err)
		}
	})
}
