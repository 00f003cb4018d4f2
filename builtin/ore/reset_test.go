// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ore

import (
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oreprotocol/ore/builtin/reverts"
	"github.com/oreprotocol/ore/ore"
)

func (e *testEnv) reset(signer, topMiner solana.PublicKey) error {
	return e.process([]solana.PublicKey{signer}, e.p.ResetAccounts(signer, e.ata(topMiner), e.addrs), Reset{})
}

func TestReset(t *testing.T) {
	env := newEnv(t, &defaultArgs)

	require.NoError(t, env.reset(env.admin, env.bob))

	assert.Equal(t, uint64(2_200), env.supply())
	assert.Equal(t, uint64(500+667), env.balance(env.bob))
	assert.Equal(t, uint64(333), env.treasury().Motherlode)
	assert.Equal(t, uint64(333), env.tokenAccount(env.addrs.TreasuryTokens).Amount)
	assert.Equal(t, &Board{RoundID: 1, StartSlot: 0, EndSlot: ore.RoundSlots}, env.board())

	ev := env.events()[1].(*ResetEvent)
	assert.Equal(t, uint64(1), ev.RoundID)
	assert.Equal(t, uint64(1_000), ev.Minted)
	assert.Equal(t, uint64(667), ev.Primary)
	assert.Equal(t, uint64(333), ev.Motherlode)
	assert.Equal(t, env.bob, ev.TopMiner)

	// the round is still running
	assert.True(t, reverts.IsKind(env.reset(env.admin, env.bob), reverts.InvalidArgument))

	env.clock.Advance(time.Duration(ore.RoundSlots) * 400 * time.Millisecond)
	require.NoError(t, env.reset(env.admin, env.alice))
	assert.Equal(t, &Board{RoundID: 2, StartSlot: ore.RoundSlots, EndSlot: 2 * ore.RoundSlots}, env.board())
	assert.Equal(t, uint64(700+667), env.balance(env.alice))
	assert.Equal(t, uint64(666), env.treasury().Motherlode)
}

func TestResetRequiresAdmin(t *testing.T) {
	env := newEnv(t, &defaultArgs)
	assert.True(t, reverts.IsKind(env.reset(env.alice, env.alice), reverts.IncorrectAuthority))

	err := env.process(nil, env.p.ResetAccounts(env.admin, env.ata(env.bob), env.addrs), Reset{})
	assert.True(t, reverts.IsKind(err, reverts.MissingAuthorization))
}

func TestResetCapsAtMaxSupply(t *testing.T) {
	args := defaultArgs
	args.MaxSupply = 1_500
	env := newEnv(t, &args)

	require.NoError(t, env.reset(env.admin, env.bob))
	assert.Equal(t, uint64(1_500), env.supply())
	ev := env.events()[1].(*ResetEvent)
	assert.Equal(t, uint64(300), ev.Minted)
	assert.Equal(t, ev.Minted, ev.Primary+ev.Motherlode)

	env.clock.Advance(time.Hour)
	require.NoError(t, env.reset(env.admin, env.bob))
	assert.Equal(t, uint64(1_500), env.supply())
	assert.Equal(t, uint64(2), env.board().RoundID)
}
