// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridgecore

import (
	"context"
	"encoding/hex"
	"fmt"

	log "github.com/luxfi/log"
	"github.com/zeebo/blake3"
	"go.uber.org/zap"

	"github.com/luxfi/bridgecore/chainhost"
)

// auditDigest fingerprints an encoded account payload for the audit log
// line accompanying a mutation. It is observability only: no precondition
// check depends on it, and it plays no role in PDA derivation, which is
// delegated to the runtime's FindProgramAddress.
func auditDigest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// Program wires the bridge core's operations to a concrete chainhost: an
// account store, a runtime (for PDA derivation and signer verification),
// and a token program. One Program instance corresponds to one deployed
// bridge program identity.
type Program struct {
	Config

	Store   chainhost.AccountStore
	Runtime chainhost.Runtime
	Token   chainhost.TokenProgram

	log log.Logger
}

// NewProgram constructs a Program. A nil logger falls back to an info
// level test logger, matching how this corpus's own client wrappers
// construct a default logger when the caller supplies none.
func NewProgram(cfg Config, store chainhost.AccountStore, rt chainhost.Runtime, token chainhost.TokenProgram, logger log.Logger) *Program {
	if logger == nil {
		logger = log.NewTestLogger(log.InfoLevel)
	}
	return &Program{
		Config:  cfg,
		Store:   store,
		Runtime: rt,
		Token:   token,
		log:     logger,
	}
}

func (p *Program) validatorSetAddress() (chainhost.PublicKey, uint8, error) {
	return p.Runtime.FindProgramAddress(p.ProgramID, []byte(ValidatorSetSeed))
}

func (p *Program) bridgingRequestAddress(sender chainhost.PublicKey) (chainhost.PublicKey, uint8, error) {
	return p.Runtime.FindProgramAddress(p.ProgramID, []byte(BridgingRequestSeed), sender[:])
}

// ValidatorSetAddress derives the ValidatorSet PDA. Exported so a
// deployer can bind a mint's authority to it before any bridge_tokens
// call is made — the program itself never sets mint authority; that is
// the token program's concern.
func (p *Program) ValidatorSetAddress() (chainhost.PublicKey, uint8, error) {
	return p.validatorSetAddress()
}

// BridgingRequestAddress derives sender's BridgingRequest PDA.
func (p *Program) BridgingRequestAddress(sender chainhost.PublicKey) (chainhost.PublicKey, uint8, error) {
	return p.bridgingRequestAddress(sender)
}

// loadValidatorSet fetches and decodes the ValidatorSet singleton. The
// "not initialized" case is a runtime-surface condition (there is no
// account yet), so it is surfaced as a plain error, not one of the
// enumerated validation codes.
func (p *Program) loadValidatorSet(ctx context.Context) (*ValidatorSet, chainhost.PublicKey, error) {
	addr, _, err := p.validatorSetAddress()
	if err != nil {
		return nil, chainhost.PublicKey{}, err
	}
	data, exists, err := p.Store.Get(ctx, addr)
	if err != nil {
		return nil, addr, err
	}
	if !exists {
		return nil, addr, fmt.Errorf("bridgecore: validator set at %s is not initialized", addr)
	}
	vs, err := DecodeValidatorSet(data)
	return vs, addr, err
}

// cosigners asks the runtime which of the given keys it has verified as
// having signed the current transaction, building the list VerifyQuorum
// expects.
func (p *Program) cosigners(ctx context.Context, keys []chainhost.PublicKey) []Cosigner {
	out := make([]Cosigner, len(keys))
	for i, k := range keys {
		out[i] = Cosigner{Key: k, Signed: p.Runtime.IsSigner(ctx, k)}
	}
	return out
}

func hasDuplicate(keys []chainhost.PublicKey) bool {
	seen := make(map[chainhost.PublicKey]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			return true
		}
		seen[k] = true
	}
	return false
}

func (p *Program) logInfo(msg string, fields ...zap.Field) {
	p.log.Info(msg, fields...)
}

func (p *Program) logWarn(msg string, fields ...zap.Field) {
	p.log.Warn(msg, fields...)
}
