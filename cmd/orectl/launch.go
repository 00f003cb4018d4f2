// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	orep "github.com/oreprotocol/ore/builtin/ore"
	"github.com/oreprotocol/ore/builtin/rewardslock"
	"github.com/oreprotocol/ore/ledger"
	"github.com/oreprotocol/ore/pda"
	"github.com/oreprotocol/ore/schedule"
)

// launchPlan is every account a launch opens, derived up front.
type launchPlan struct {
	payer  solana.PublicKey
	lpPool *lpPoolPlan
	vaults []vaultPlan
}

type lpPoolPlan struct {
	address   pda.Derived
	baseMint  solana.PublicKey
	quoteMint solana.PublicKey
}

type vaultPlan struct {
	label       string
	address     pda.Derived
	beneficiary solana.PublicKey
	schedule    schedule.Schedule
}

// launchStatus reports what a launch did with one planned account.
type launchStatus struct {
	name    string
	address solana.PublicKey
	created bool
}

func buildPlan(cfg *Config, payer, mint solana.PublicKey, p *orep.Program, lock *rewardslock.Program) (*launchPlan, error) {
	plan := &launchPlan{payer: payer}

	if cfg.LpPool != nil {
		base := mint
		if cfg.LpPool.BaseMint != nil {
			base = cfg.LpPool.BaseMint.PublicKey()
		}
		if base.IsZero() {
			return nil, errors.New("lp_pool: base mint is neither configured nor the deployment mint")
		}
		d, err := p.Deriver().LpPool(base)
		if err != nil {
			return nil, errors.Wrap(err, "derive lp pool")
		}
		plan.lpPool = &lpPoolPlan{address: d, baseMint: base, quoteMint: cfg.LpPool.QuoteMint.PublicKey()}
	}

	for i, v := range cfg.Vaults {
		s := v.Schedule.Schedule()
		d, err := lock.VaultAddress(v.Beneficiary.PublicKey(), s)
		if err != nil {
			return nil, errors.Wrapf(err, "derive vaults[%d]", i)
		}
		label := v.Label
		if label == "" {
			label = fmt.Sprintf("vault-%d", i)
		}
		plan.vaults = append(plan.vaults, vaultPlan{
			label:       label,
			address:     d,
			beneficiary: v.Beneficiary.PublicKey(),
			schedule:    s,
		})
	}
	return plan, nil
}

// executeLaunch opens the planned accounts in order, one operation each.
// Accounts that already exist are left untouched, so a launch can be
// resumed.
func executeLaunch(l *ledger.Ledger, plan *launchPlan, p *orep.Program, lock *rewardslock.Program) ([]launchStatus, error) {
	var out []launchStatus

	open := func(name string, addr solana.PublicKey, fn func() error) error {
		acc, err := l.Account(addr)
		if err != nil {
			return err
		}
		if !acc.IsEmpty() {
			logger.Info("account exists, skipped", "name", name, "address", addr)
			out = append(out, launchStatus{name: name, address: addr})
			return nil
		}
		if err := fn(); err != nil {
			return errors.WithMessagef(err, "launch %s", name)
		}
		logger.Info("account opened", "name", name, "address", addr)
		out = append(out, launchStatus{name: name, address: addr, created: true})
		return nil
	}

	signers := []solana.PublicKey{plan.payer}
	if lp := plan.lpPool; lp != nil {
		if err := open("lp_pool", lp.address.Address, func() error {
			accounts, err := p.InitializeLpPoolAccounts(plan.payer, lp.baseMint, lp.quoteMint)
			if err != nil {
				return err
			}
			return p.Process(l, signers, accounts, orep.InitializeLpPool{BaseMint: lp.baseMint, QuoteMint: lp.quoteMint})
		}); err != nil {
			return out, err
		}
	}
	for _, v := range plan.vaults {
		if err := open(v.label, v.address.Address, func() error {
			accounts, err := lock.InitializeVaultAccounts(plan.payer, v.beneficiary, v.schedule)
			if err != nil {
				return err
			}
			return lock.Process(l, signers, accounts, rewardslock.InitializeVault{Beneficiary: v.beneficiary, Schedule: v.schedule})
		}); err != nil {
			return out, err
		}
	}
	return out, nil
}

func printLaunch(w io.Writer, plan *launchPlan, statuses []launchStatus) {
	created := make(map[solana.PublicKey]bool, len(statuses))
	for _, s := range statuses {
		created[s.address] = s.created
	}
	state := func(addr solana.PublicKey) string {
		if created[addr] {
			return "created"
		}
		return "exists"
	}
	if lp := plan.lpPool; lp != nil {
		fmt.Fprintf(w, "%-16s %s (bump %d) base=%s quote=%s %s\n",
			"lp_pool", lp.address.Address, lp.address.Bump, lp.baseMint, lp.quoteMint, state(lp.address.Address))
	}
	for _, v := range plan.vaults {
		fmt.Fprintf(w, "%-16s %s (bump %d) beneficiary=%s total=%d %s\n",
			v.label, v.address.Address, v.address.Bump, v.beneficiary, v.schedule.Total(), state(v.address.Address))
	}
}
