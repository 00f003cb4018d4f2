// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ore

import (
	"github.com/gagliardetto/solana-go"

	"github.com/oreprotocol/ore/builtin/reverts"
	"github.com/oreprotocol/ore/ledger"
	"github.com/oreprotocol/ore/ore"
)

// initializeLpPool records the liquidity pool of a base mint. The payer
// becomes its authority.
//
// Accounts: lp_pool, payer, base_mint, quote_mint, system.
func (p *Program) initializeLpPool(tx *ledger.Tx, accounts []solana.PublicKey, args InitializeLpPool) error {
	if err := expectAccounts(accounts, 5); err != nil {
		return err
	}
	poolAddr, payer, baseMint, quoteMint, system := accounts[0], accounts[1], accounts[2], accounts[3], accounts[4]

	if !tx.IsSigner(payer) {
		return reverts.Newf(reverts.MissingAuthorization, "payer %s did not sign", payer)
	}
	if !baseMint.Equals(args.BaseMint) || !quoteMint.Equals(args.QuoteMint) {
		return reverts.New(reverts.AssetMismatch, "mint accounts do not match arguments")
	}
	d, err := p.pda.Verify(poolAddr, ore.LpPoolSeed, args.BaseMint[:])
	if err != nil {
		return err
	}
	if err := expectProgram(system, solana.SystemProgramID); err != nil {
		return err
	}
	empty, err := isEmpty(tx, poolAddr)
	if err != nil {
		return err
	}
	if !empty {
		return reverts.Newf(reverts.AlreadyInitialized, "lp pool %s exists", poolAddr)
	}

	if err := tx.CreateAccount(payer, poolAddr, LpPoolSize, p.id, &d); err != nil {
		return err
	}
	pool := LpPool{
		BaseMint:  args.BaseMint,
		QuoteMint: args.QuoteMint,
		Authority: payer,
		Bump:      d.Bump,
	}
	if err := p.store(tx, poolAddr, pool.Encode()); err != nil {
		return err
	}
	logger.Debug("lp pool initialized", "base", args.BaseMint, "quote", args.QuoteMint)
	return p.emit(tx, EventLpPool, &LpPoolEvent{
		Pool:      poolAddr,
		BaseMint:  args.BaseMint,
		QuoteMint: args.QuoteMint,
		Authority: payer,
		Bump:      d.Bump,
		Timestamp: timestamp(tx),
	})
}
