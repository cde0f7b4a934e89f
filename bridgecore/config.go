// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridgecore

import "github.com/luxfi/bridgecore/chainhost"

// Config fixes the program identity and the structural bounds a
// deployment runs with. The zero value runs the package defaults:
// MinValidators 4, MaxValidators 19.
type Config struct {
	// ProgramID is the program address ValidatorSet and BridgingRequest
	// accounts are derived under.
	ProgramID chainhost.PublicKey

	// MinValidators overrides MinValidators when non-zero.
	MinValidators uint8

	// MaxValidators overrides MaxValidators when non-zero.
	MaxValidators uint8
}

func (c Config) minValidators() int {
	if c.MinValidators == 0 {
		return MinValidators
	}
	return int(c.MinValidators)
}

func (c Config) maxValidators() int {
	if c.MaxValidators == 0 {
		return MaxValidators
	}
	return int(c.MaxValidators)
}
