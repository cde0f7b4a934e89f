// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridgecore

import "errors"

// Validation errors: deterministic, stable-identifier failures the core
// raises after inspecting its own inputs. Runtime-surface and token-layer
// errors are never wrapped into these; they bubble up from chainhost
// unmodified instead.
var (
	ErrMinValidatorsNotMet   = errors.New("MinValidatorsNotMet")
	ErrMaxValidatorsExceeded = errors.New("MaxValidatorsExceeded")
	ErrValidatorsNotUnique   = errors.New("ValidatorsNotUnique")
	ErrNotEnoughSigners      = errors.New("NotEnoughSigners")
	ErrInvalidSigner         = errors.New("InvalidSigner")
	ErrInsufficientFunds     = errors.New("InsufficientFunds")
	ErrAccountNotInitialized = errors.New("AccountNotInitialized")

	// ErrInvalidReceiverLength is the decode-level failure raised when a
	// bridge_request's receiver argument is not exactly ReceiverLength
	// bytes. It is a boundary decode error, not one of the runtime's
	// enumerated validation codes, but is deterministic for the same
	// reason: the core checked it before modifying any account.
	ErrInvalidReceiverLength = errors.New("invalid receiver length")
)
