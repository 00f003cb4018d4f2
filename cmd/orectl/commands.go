// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	orep "github.com/oreprotocol/ore/builtin/ore"
	"github.com/oreprotocol/ore/builtin/rewardslock"
	"github.com/oreprotocol/ore/pda"
	"github.com/oreprotocol/ore/reward"
	"github.com/oreprotocol/ore/schedule"
)

func printDerived(w io.Writer, name string, d pda.Derived) {
	fmt.Fprintf(w, "%-16s %s (bump %d)\n", name, d.Address, d.Bump)
}

func deriveAction(ctx *cli.Context) error {
	cfg := config(ctx)
	if cfg.Mint == (Key{}) {
		return errors.New("mint is not configured")
	}
	mint := cfg.Mint.PublicKey()
	p := orep.New(cfg.OreProgram.PublicKey())
	d := p.Deriver()

	derived := map[string]func() (pda.Derived, error){
		"config":   func() (pda.Derived, error) { return d.Config(mint) },
		"treasury": func() (pda.Derived, error) { return d.Treasury(mint) },
		"board":    func() (pda.Derived, error) { return d.Board(mint) },
	}
	names := []string{"config", "treasury", "board"}
	if s := ctx.String(authorityFlag.Name); s != "" {
		authority, err := parseKey(s)
		if err != nil {
			return err
		}
		derived["stake"] = func() (pda.Derived, error) { return d.Stake(mint, authority) }
		names = append(names, "stake")
	}
	if s := ctx.String(baseMintFlag.Name); s != "" {
		base, err := parseKey(s)
		if err != nil {
			return err
		}
		derived["lp_pool"] = func() (pda.Derived, error) { return d.LpPool(base) }
		names = append(names, "lp_pool")
	}

	for _, name := range names {
		res, err := derived[name]()
		if err != nil {
			return errors.Wrapf(err, "derive %s", name)
		}
		printDerived(os.Stdout, name, res)
	}
	addrs, err := p.Addresses(mint)
	if err != nil {
		return err
	}
	fmt.Printf("%-16s %s\n", "treasury_tokens", addrs.TreasuryTokens)
	return nil
}

func scheduleFromFlags(ctx *cli.Context) schedule.Schedule {
	return schedule.Schedule{
		Start:            ctx.Int64(startFlag.Name),
		HasCliff:         ctx.IsSet(cliffFlag.Name),
		Cliff:            ctx.Int64(cliffFlag.Name),
		PeriodSeconds:    ctx.Int64(periodFlag.Name),
		ReleasePerPeriod: ctx.Uint64(releaseFlag.Name),
		PeriodCount:      ctx.Uint64(countFlag.Name),
	}
}

func vestingAction(ctx *cli.Context) error {
	s := scheduleFromFlags(ctx)
	now := time.Now().Unix()
	if ctx.IsSet(nowFlag.Name) {
		now = ctx.Int64(nowFlag.Name)
	}
	claimed := ctx.Uint64(claimedFlag.Name)
	hash := s.Hash()

	fmt.Printf("total      %d\n", s.Total())
	fmt.Printf("released   %d\n", s.Released(now))
	fmt.Printf("claimable  %d\n", s.Claimable(now, claimed))
	fmt.Printf("hash       %s\n", hex.EncodeToString(hash[:]))

	if b := ctx.String(beneficiaryFlag.Name); b != "" {
		beneficiary, err := parseKey(b)
		if err != nil {
			return err
		}
		vault, err := rewardslock.New(config(ctx).RewardsLockProgram.PublicKey()).VaultAddress(beneficiary, s)
		if err != nil {
			return err
		}
		printDerived(os.Stdout, "vault", vault)
	}
	return nil
}

func buryAction(ctx *cli.Context) error {
	stakeBps := config(ctx).StakeBps
	if ctx.IsSet(stakeBpsFlag.Name) {
		stakeBps = ctx.Uint64(stakeBpsFlag.Name)
	}
	b := reward.Bury(
		ctx.Uint64(amountFlag.Name),
		ctx.Uint64(balanceFlag.Name),
		stakeBps,
		ctx.Uint64(totalStakedFlag.Name),
	)
	fmt.Printf("transferred  %d\n", b.Transferred)
	fmt.Printf("shared       %d\n", b.Shared)
	fmt.Printf("burned       %d\n", b.Burned)
	fmt.Printf("index delta  %s (%.9f per unit)\n", b.Delta, b.Delta.Float64())
	return nil
}

func splitAction(ctx *cli.Context) error {
	cfg := config(ctx)
	total, motherlodeBps := cfg.RewardPerRound, cfg.MotherlodeBps
	if ctx.IsSet(totalFlag.Name) {
		total = ctx.Uint64(totalFlag.Name)
	}
	if ctx.IsSet(motherlodeBpsFlag.Name) {
		motherlodeBps = ctx.Uint64(motherlodeBpsFlag.Name)
	}
	primary, motherlode := reward.Split(total, motherlodeBps)
	fmt.Printf("primary     %d\n", primary)
	fmt.Printf("motherlode  %d\n", motherlode)
	return nil
}

func simulateAction(ctx *cli.Context) error {
	cfg := config(ctx)
	dataDir := cfg.DataDir
	if ctx.Bool(memFlag.Name) {
		dataDir = ""
	}
	l, closeLedger, err := openLedger(dataDir)
	if err != nil {
		return err
	}
	defer closeLedger()

	sim := newSimulation(l, cfg)
	from := l.NextSeq()
	if err := sim.run(); err != nil {
		return err
	}
	logger.Info("simulation done", "mint", sim.mint, "data-dir", dataDir)
	return printEvents(os.Stdout, l, from, sim.ore.ID(), sim.lock.ID())
}

func launchAction(ctx *cli.Context) error {
	cfg := config(ctx)
	payer := cfg.Payer
	if payer == (Key{}) {
		payer = cfg.Admin
	}
	if payer == (Key{}) {
		return errors.New("launch needs a payer or admin")
	}
	if cfg.LpPool == nil && len(cfg.Vaults) == 0 {
		return errors.New("nothing to launch: configure lp_pool or vaults")
	}

	dataDir := cfg.DataDir
	if ctx.Bool(memFlag.Name) {
		dataDir = ""
	}
	l, closeLedger, err := openLedger(dataDir)
	if err != nil {
		return err
	}
	defer closeLedger()

	if fund := ctx.Uint64(fundFlag.Name); fund > 0 {
		if err := l.Airdrop(payer.PublicKey(), fund); err != nil {
			return err
		}
	}

	p := orep.New(cfg.OreProgram.PublicKey())
	lock := rewardslock.New(cfg.RewardsLockProgram.PublicKey())
	plan, err := buildPlan(cfg, payer.PublicKey(), cfg.Mint.PublicKey(), p, lock)
	if err != nil {
		return err
	}
	statuses, err := executeLaunch(l, plan, p, lock)
	printLaunch(os.Stdout, plan, statuses)
	return err
}

func newKey() solana.PublicKey {
	return solana.NewWallet().PublicKey()
}
