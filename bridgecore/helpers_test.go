// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridgecore

import (
	"testing"

	"github.com/luxfi/bridgecore/chainhost"
	"github.com/luxfi/bridgecore/chainhost/memhost"
)

// setMintAuthority binds mint's authority for tests exercising
// BridgeTokens. A real deployment sets this once, off-chain, on the token
// program directly; the bridge core never writes mint authority itself.
func setMintAuthority(t *testing.T, p *Program, mint, authority chainhost.PublicKey) {
	t.Helper()
	tp, ok := p.Token.(*memhost.TokenProgram)
	if !ok {
		t.Fatalf("Program.Token is not *memhost.TokenProgram")
	}
	tp.SetMintAuthority(mint, authority)
}
