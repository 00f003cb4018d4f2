// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ore

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oreprotocol/ore/accrual"
	"github.com/oreprotocol/ore/builtin/reverts"
)

func TestBuryWithoutStake(t *testing.T) {
	env := newEnv(t, &defaultArgs)

	// requests above the balance are clamped
	require.NoError(t, env.bury(env.alice, 1_000))

	assert.Equal(t, uint64(0), env.balance(env.alice))
	assert.Equal(t, uint64(500), env.supply())
	assert.Equal(t, uint64(0), env.tokenAccount(env.addrs.TreasuryTokens).Amount)

	tr := env.treasury()
	assert.Equal(t, uint64(700), tr.TotalBuried)
	assert.Equal(t, uint64(0), tr.TotalShared)
	assert.True(t, tr.Index.IsZero())

	events := env.events()
	require.Len(t, events, 2)
	ev := events[1].(*BuryEvent)
	assert.Equal(t, uint64(700), ev.Transferred)
	assert.Equal(t, uint64(700), ev.Buried)
	assert.Equal(t, uint64(0), ev.Shared)
	assert.Equal(t, uint64(500), ev.NewCirculatingSupply)
	assert.Equal(t, uint64(1_700_000_000), ev.Timestamp)
}

func TestBuryWithStake(t *testing.T) {
	env := newEnv(t, &defaultArgs)
	require.NoError(t, env.deposit(env.bob, 500))

	require.NoError(t, env.bury(env.alice, 1_000))

	tr := env.treasury()
	assert.Equal(t, uint64(560), tr.TotalBuried)
	assert.Equal(t, uint64(140), tr.TotalShared)
	assert.Equal(t, uint64(140), tr.TotalUnclaimed)
	assert.Equal(t, uint64(500), tr.TotalStaked)
	want, _ := accrual.Share(500, 140)
	assert.Equal(t, want, tr.Index)

	assert.Equal(t, uint64(1_200-560), env.supply())
	assert.Equal(t, uint64(500+140), env.tokenAccount(env.addrs.TreasuryTokens).Amount)

	events := env.events()
	ev := events[len(events)-1].(*BuryEvent)
	assert.Equal(t, uint64(700), ev.Transferred)
	assert.Equal(t, uint64(140), ev.Shared)
	assert.Equal(t, uint64(560), ev.Buried)
	assert.Equal(t, tr.Index.Bytes(), ev.Index)
}

func TestBuryRejects(t *testing.T) {
	env := newEnv(t, &defaultArgs)
	accounts, err := env.p.BuryAccounts(env.alice, env.addrs)
	require.NoError(t, err)

	tests := []struct {
		name     string
		signers  []solana.PublicKey
		accounts []solana.PublicKey
		amount   uint64
		kind     reverts.Kind
	}{
		{"unsigned", nil, accounts, 1, reverts.MissingAuthorization},
		{"zero", []solana.PublicKey{env.alice}, accounts, 0, reverts.AmountTooSmall},
		{"accounts", []solana.PublicKey{env.alice}, accounts[:8], 1, reverts.InsufficientAccounts},
		{"sender of someone else", []solana.PublicKey{env.alice}, replace(accounts, 1, env.ata(env.bob)), 1, reverts.AddressMismatch},
		{"board", []solana.PublicKey{env.alice}, replace(accounts, 2, key(9)), 1, reverts.AddressMismatch},
		{"treasury", []solana.PublicKey{env.alice}, replace(accounts, 5, key(9)), 1, reverts.AddressMismatch},
		{"treasury tokens", []solana.PublicKey{env.alice}, replace(accounts, 6, env.ata(env.alice)), 1, reverts.AddressMismatch},
		{"ore program", []solana.PublicKey{env.alice}, replace(accounts, 8, key(9)), 1, reverts.IncorrectAuthority},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := env.process(tt.signers, tt.accounts, Bury{Amount: tt.amount})
			kind, ok := reverts.KindOf(err)
			require.True(t, ok, "%v", err)
			assert.Equal(t, tt.kind, kind)
		})
	}
	assert.Equal(t, uint64(700), env.balance(env.alice))
	assert.Equal(t, uint64(1_200), env.supply())
}

func TestBuryEmptyBalance(t *testing.T) {
	env := newEnv(t, &defaultArgs)
	require.NoError(t, env.bury(env.alice, 700))
	require.NoError(t, env.bury(env.alice, 1))

	tr := env.treasury()
	assert.Equal(t, uint64(700), tr.TotalBuried)
	ev := env.events()[2].(*BuryEvent)
	assert.Equal(t, uint64(0), ev.Transferred)
}
