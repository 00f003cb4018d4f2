// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	orep "github.com/oreprotocol/ore/builtin/ore"
	"github.com/oreprotocol/ore/builtin/rewardslock"
	"github.com/oreprotocol/ore/ledger"
	"github.com/oreprotocol/ore/ore"
	"github.com/oreprotocol/ore/schedule"
	"github.com/oreprotocol/ore/token"
)

const simulationLamports = 10_000_000_000

// simulation drives a fresh deployment through every instruction.
type simulation struct {
	l    *ledger.Ledger
	cfg  *Config
	ore  *orep.Program
	lock *rewardslock.Program

	mint              solana.PublicKey
	admin, alice, bob solana.PublicKey
	addrs             orep.Addresses
}

func newSimulation(l *ledger.Ledger, cfg *Config) *simulation {
	return &simulation{
		l:     l,
		cfg:   cfg,
		ore:   orep.New(cfg.OreProgram.PublicKey()),
		lock:  rewardslock.New(cfg.RewardsLockProgram.PublicKey()),
		mint:  newKey(),
		admin: newKey(),
		alice: newKey(),
		bob:   newKey(),
	}
}

func (s *simulation) run() (err error) {
	if s.addrs, err = s.ore.Addresses(s.mint); err != nil {
		return err
	}
	steps := []struct {
		name string
		fn   func() error
	}{
		{"fund", s.fund},
		{"create mint", s.createMint},
		{"initialize", func() error {
			return s.ore.Process(s.l, []solana.PublicKey{s.admin}, s.ore.InitializeAccounts(s.admin, s.addrs), orep.Initialize{
				RewardPerRound: s.cfg.RewardPerRound,
				MaxSupply:      s.cfg.MaxSupply,
				MotherlodeBps:  s.cfg.MotherlodeBps,
				StakeBps:       s.cfg.StakeBps,
			})
		}},
		{"deposit", func() error {
			accounts, err := s.ore.DepositAccounts(s.alice, s.addrs)
			if err != nil {
				return err
			}
			return s.ore.Process(s.l, []solana.PublicKey{s.alice}, accounts, orep.Deposit{Amount: 50 * ore.ONE})
		}},
		{"bury", func() error {
			accounts, err := s.ore.BuryAccounts(s.bob, s.addrs)
			if err != nil {
				return err
			}
			return s.ore.Process(s.l, []solana.PublicKey{s.bob}, accounts, orep.Bury{Amount: 20 * ore.ONE})
		}},
		{"claim yield", func() error {
			accounts, err := s.ore.WithdrawAccounts(s.alice, s.addrs)
			if err != nil {
				return err
			}
			return s.ore.Process(s.l, []solana.PublicKey{s.alice}, accounts, orep.ClaimYield{Amount: math.MaxUint64})
		}},
		{"reset", func() error {
			bobTokens, err := token.AssociatedAddress(s.bob, s.mint)
			if err != nil {
				return err
			}
			return s.ore.Process(s.l, []solana.PublicKey{s.admin}, s.ore.ResetAccounts(s.admin, bobTokens.Address, s.addrs), orep.Reset{})
		}},
		{"vest", s.vest},
		{"launch lp pool", s.launchLpPool},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return errors.WithMessagef(err, "simulate %s", step.name)
		}
		logger.Debug("simulation step done", "step", step.name)
	}
	return nil
}

func (s *simulation) fund() error {
	for _, who := range []solana.PublicKey{s.admin, s.alice, s.bob} {
		if err := s.l.Airdrop(who, simulationLamports); err != nil {
			return err
		}
	}
	return nil
}

// createMint mints 100 tokens each to alice and bob, then hands the mint
// authority to the treasury.
func (s *simulation) createMint() error {
	return s.l.Execute(token.ProgramID, []solana.PublicKey{s.admin, s.mint}, func(tx *ledger.Tx) error {
		if err := token.InitializeMint(tx, s.admin, s.mint, s.admin, ore.TokenDecimals); err != nil {
			return err
		}
		auth, err := tx.Signer(s.admin)
		if err != nil {
			return err
		}
		for _, who := range []solana.PublicKey{s.alice, s.bob} {
			ata, err := token.CreateAssociated(tx, s.admin, who, s.mint)
			if err != nil {
				return err
			}
			if err := token.MintTo(tx, s.mint, ata, 100*ore.ONE, auth); err != nil {
				return err
			}
		}
		return token.SetAuthority(tx, s.mint, s.addrs.Treasury, auth)
	})
}

// vest locks ten tokens for alice, released hourly from an hour ago, and
// claims what has vested.
func (s *simulation) vest() error {
	now := s.l.Clock().UnixTimestamp
	sched := schedule.Schedule{
		Start:            now - 3_600,
		PeriodSeconds:    3_600,
		ReleasePerPeriod: ore.ONE,
		PeriodCount:      10,
	}
	accounts, err := s.lock.InitializeVaultAccounts(s.admin, s.alice, sched)
	if err != nil {
		return err
	}
	if err := s.lock.Process(s.l, []solana.PublicKey{s.admin}, accounts, rewardslock.InitializeVault{
		Beneficiary: s.alice,
		Schedule:    sched,
	}); err != nil {
		return err
	}
	return s.lock.Process(s.l, []solana.PublicKey{s.alice}, []solana.PublicKey{accounts[0], s.alice}, rewardslock.Claim{})
}

// launchLpPool opens the pool of the simulated mint against the configured
// quote mint, or a fresh one.
func (s *simulation) launchLpPool() error {
	quote := newKey()
	if s.cfg.LpPool != nil {
		quote = s.cfg.LpPool.QuoteMint.PublicKey()
	}
	plan, err := buildPlan(&Config{LpPool: &LpPoolConfig{QuoteMint: Key(quote)}}, s.admin, s.mint, s.ore, s.lock)
	if err != nil {
		return err
	}
	_, err = executeLaunch(s.l, plan, s.ore, s.lock)
	return err
}

// printEvents writes the events of programs emitted from sequence from.
func printEvents(w io.Writer, l *ledger.Ledger, from uint64, oreID, lockID solana.PublicKey) error {
	events, err := l.Events(from, 0)
	if err != nil {
		return err
	}
	for _, ev := range events {
		var (
			decoded any
			err     error
		)
		switch ev.Program {
		case oreID:
			decoded, err = orep.DecodeEvent(ev.Data)
		case lockID:
			decoded, err = rewardslock.DecodeEvent(ev.Data)
		default:
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "event %d", ev.Seq)
		}
		fmt.Fprintf(w, "#%d slot=%d %T %+v\n", ev.Seq, ev.Slot, decoded, decoded)
	}
	return nil
}
