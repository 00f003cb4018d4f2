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
	"github.com/oreprotocol/ore/reward"
	"github.com/oreprotocol/ore/token"
)

// bury moves tokens from the signer into the treasury, shares stake_bps of
// them with stakers and burns the rest. The request is clamped to the
// sender's balance.
//
// Accounts: signer, sender, board, config, mint, treasury, treasury_tokens, token, ore.
func (p *Program) bury(tx *ledger.Tx, accounts []solana.PublicKey, args Bury) error {
	if err := expectAccounts(accounts, 9); err != nil {
		return err
	}
	signer, sender, boardAddr, configAddr := accounts[0], accounts[1], accounts[2], accounts[3]
	mint, treasuryAddr, treasuryTokens := accounts[4], accounts[5], accounts[6]
	tokenProgram, oreProgram := accounts[7], accounts[8]

	signerAuth, err := tx.Signer(signer)
	if err != nil {
		return err
	}
	if args.Amount == 0 {
		return reverts.New(reverts.AmountTooSmall, "nothing to bury")
	}
	cfg, err := p.loadConfig(tx, configAddr, mint)
	if err != nil {
		return err
	}
	if err := expectAssociated(sender, signer, mint); err != nil {
		return err
	}
	if _, err := p.loadBoard(tx, boardAddr, mint); err != nil {
		return err
	}
	treasury, treasuryD, err := p.loadTreasury(tx, treasuryAddr, mint)
	if err != nil {
		return err
	}
	if err := expectAssociated(treasuryTokens, treasuryAddr, mint); err != nil {
		return err
	}
	if err := expectProgram(tokenProgram, token.ProgramID); err != nil {
		return err
	}
	if err := expectProgram(oreProgram, p.id); err != nil {
		return err
	}

	from, err := token.GetAccount(tx, sender)
	if err != nil {
		return err
	}
	burial := reward.Bury(args.Amount, from.Amount, cfg.StakeBps, treasury.TotalStaked)

	if err := token.Transfer(tx, sender, treasuryTokens, burial.Transferred, signerAuth); err != nil {
		return err
	}
	if burial.Shared > 0 {
		treasury.Index = treasury.Index.Add(burial.Delta)
		treasury.TotalShared = ore.SatAdd(treasury.TotalShared, burial.Shared)
		treasury.TotalUnclaimed = ore.SatAdd(treasury.TotalUnclaimed, burial.Shared)
	}

	treasuryAuth, err := tx.Authorize(treasuryD)
	if err != nil {
		return err
	}
	if err := token.Burn(tx, treasuryTokens, mint, burial.Burned, treasuryAuth); err != nil {
		return err
	}
	treasury.TotalBuried = ore.SatAdd(treasury.TotalBuried, burial.Burned)
	if err := p.store(tx, treasuryAddr, treasury.Encode()); err != nil {
		return err
	}

	m, err := token.GetMint(tx, mint)
	if err != nil {
		return err
	}
	logger.Debug("shared", "amount", burial.Shared, "index", treasury.Index)
	logger.Debug("buried", "amount", burial.Burned, "requested", args.Amount, "supply", m.Supply)
	metricTotalBuried().Set(int64(min(treasury.TotalBuried, 1<<63-1)))
	metricTotalShared().Set(int64(min(treasury.TotalShared, 1<<63-1)))

	return p.emit(tx, EventBury, &BuryEvent{
		Transferred:          burial.Transferred,
		Buried:               burial.Burned,
		Shared:               burial.Shared,
		NewCirculatingSupply: m.Supply,
		Index:                treasury.Index.Bytes(),
		Timestamp:            timestamp(tx),
	})
}
