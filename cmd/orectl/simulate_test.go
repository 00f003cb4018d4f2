// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orep "github.com/oreprotocol/ore/builtin/ore"
	"github.com/oreprotocol/ore/builtin/rewardslock"
	"github.com/oreprotocol/ore/ledger"
	"github.com/oreprotocol/ore/ore"
	"github.com/oreprotocol/ore/token"
)

func TestSimulation(t *testing.T) {
	l, closeLedger, err := openLedger("")
	require.NoError(t, err)
	defer closeLedger()

	sim := newSimulation(l, DefaultConfig())
	require.NoError(t, sim.run())

	var balance uint64
	require.NoError(t, l.Execute(token.ProgramID, nil, func(tx *ledger.Tx) error {
		ata, err := token.AssociatedAddress(sim.alice, sim.mint)
		if err != nil {
			return err
		}
		acc, err := token.GetAccount(tx, ata.Address)
		if err != nil {
			return err
		}
		balance = acc.Amount
		return nil
	}))
	// alice staked 50 and received nearly all of the 2 shared by bob's bury
	assert.Greater(t, balance, 51*ore.ONE)
	assert.LessOrEqual(t, balance, 52*ore.ONE)

	var out bytes.Buffer
	require.NoError(t, printEvents(&out, l, 0, sim.ore.ID(), sim.lock.ID()))
	for _, want := range []string{
		"*ore.InitializeEvent", "*ore.StakeEvent", "*ore.BuryEvent", "*ore.ResetEvent", "*ore.LpPoolEvent",
		"*rewardslock.VaultInitializedEvent", "*rewardslock.ClaimEvent",
	} {
		assert.Contains(t, out.String(), want)
	}

	events, err := l.Events(0, 0)
	require.NoError(t, err)
	var claims []*rewardslock.ClaimEvent
	for _, ev := range events {
		if ev.Program != sim.lock.ID() {
			continue
		}
		decoded, err := rewardslock.DecodeEvent(ev.Data)
		require.NoError(t, err)
		if claim, ok := decoded.(*rewardslock.ClaimEvent); ok {
			claims = append(claims, claim)
		}
	}
	require.Len(t, claims, 1)
	assert.Equal(t, sim.alice, claims[0].Beneficiary)
	assert.Equal(t, ore.ONE, claims[0].Amount)

	pool, err := sim.ore.Deriver().LpPool(sim.mint)
	require.NoError(t, err)
	acc, err := l.Account(pool.Address)
	require.NoError(t, err)
	assert.Equal(t, sim.ore.ID(), acc.Owner)
}

func TestSimulationsDoNotCollide(t *testing.T) {
	l, closeLedger, err := openLedger("")
	require.NoError(t, err)
	defer closeLedger()

	require.NoError(t, newSimulation(l, DefaultConfig()).run())
	require.NoError(t, newSimulation(l, DefaultConfig()).run(), "fresh keys per run")
}

func TestLaunch(t *testing.T) {
	l, closeLedger, err := openLedger("")
	require.NoError(t, err)
	defer closeLedger()

	cliff := int64(1_500)
	cfg := DefaultConfig()
	cfg.Mint = Key(newKey())
	cfg.LpPool = &LpPoolConfig{QuoteMint: Key(newKey())}
	cfg.Vaults = []VaultConfig{
		{Label: "team", Beneficiary: Key(newKey()), Schedule: ScheduleConfig{StartTs: 1_000, CliffTs: &cliff, PeriodSeconds: 100, ReleasePerPeriod: 5, PeriodCount: 10}},
		{Beneficiary: Key(newKey()), Schedule: ScheduleConfig{StartTs: 1_000, PeriodSeconds: 60, ReleasePerPeriod: 1, PeriodCount: 3}},
	}
	require.NoError(t, cfg.Validate())

	payer := newKey()
	require.NoError(t, l.Airdrop(payer, 1_000_000_000))

	p, lock := orep.New(cfg.OreProgram.PublicKey()), rewardslock.New(cfg.RewardsLockProgram.PublicKey())
	plan, err := buildPlan(cfg, payer, cfg.Mint.PublicKey(), p, lock)
	require.NoError(t, err)
	require.NotNil(t, plan.lpPool)
	assert.Equal(t, cfg.Mint.PublicKey(), plan.lpPool.baseMint, "base mint defaults to the deployment mint")
	require.Len(t, plan.vaults, 2)
	assert.Equal(t, "team", plan.vaults[0].label)
	assert.Equal(t, "vault-1", plan.vaults[1].label)
	assert.True(t, plan.vaults[0].schedule.HasCliff)

	statuses, err := executeLaunch(l, plan, p, lock)
	require.NoError(t, err)
	require.Len(t, statuses, 3)
	for _, s := range statuses {
		assert.True(t, s.created, s.name)
	}

	acc, err := l.Account(plan.lpPool.address.Address)
	require.NoError(t, err)
	pool, err := orep.DecodeLpPool(acc.Data)
	require.NoError(t, err)
	assert.Equal(t, cfg.LpPool.QuoteMint.PublicKey(), pool.QuoteMint)
	assert.Equal(t, payer, pool.Authority)

	acc, err = l.Account(plan.vaults[0].address.Address)
	require.NoError(t, err)
	v, err := rewardslock.DecodeVault(acc.Data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Vaults[0].Beneficiary.PublicKey(), v.Beneficiary)
	assert.Equal(t, plan.vaults[0].schedule, v.Schedule)

	var out bytes.Buffer
	printLaunch(&out, plan, statuses)
	assert.Contains(t, out.String(), plan.lpPool.address.Address.String())
	assert.Contains(t, out.String(), "team")
	assert.Contains(t, out.String(), "created")

	// a second launch resumes without touching what exists
	before := l.NextSeq()
	statuses, err = executeLaunch(l, plan, p, lock)
	require.NoError(t, err)
	for _, s := range statuses {
		assert.False(t, s.created, s.name)
	}
	assert.Equal(t, before, l.NextSeq())
}

func TestBuildPlanNeedsBaseMint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LpPool = &LpPoolConfig{QuoteMint: Key(newKey())}
	_, err := buildPlan(cfg, newKey(), solana.PublicKey{}, orep.New(cfg.OreProgram.PublicKey()), rewardslock.New(cfg.RewardsLockProgram.PublicKey()))
	assert.ErrorContains(t, err, "base mint")
}
