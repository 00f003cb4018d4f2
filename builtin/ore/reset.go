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

// reset closes the current round and opens the next one. The round reward,
// capped by the remaining supply, is minted by the treasury and split
// between the round's top miner and the motherlode.
//
// Accounts: signer, config, board, mint, treasury, treasury_tokens, top_miner_tokens, token.
func (p *Program) reset(tx *ledger.Tx, accounts []solana.PublicKey) error {
	if err := expectAccounts(accounts, 8); err != nil {
		return err
	}
	signer, configAddr, boardAddr, mint := accounts[0], accounts[1], accounts[2], accounts[3]
	treasuryAddr, treasuryTokens, topMinerTokens, tokenProgram := accounts[4], accounts[5], accounts[6], accounts[7]

	if _, err := tx.Signer(signer); err != nil {
		return err
	}
	cfg, err := p.loadConfig(tx, configAddr, mint)
	if err != nil {
		return err
	}
	if !cfg.Admin.Equals(signer) {
		return reverts.Newf(reverts.IncorrectAuthority, "%s is not the admin", signer)
	}
	board, err := p.loadBoard(tx, boardAddr, mint)
	if err != nil {
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
	top, err := token.GetAccount(tx, topMinerTokens)
	if err != nil {
		return err
	}
	if !top.Mint.Equals(mint) {
		return reverts.Newf(reverts.AssetMismatch, "top miner account holds %s, not %s", top.Mint, mint)
	}

	slot := tx.Clock().Slot
	if slot < board.EndSlot {
		return reverts.Newf(reverts.InvalidArgument, "round %d ends at slot %d", board.RoundID, board.EndSlot)
	}

	m, err := token.GetMint(tx, mint)
	if err != nil {
		return err
	}
	minted := min(cfg.RewardPerRound, ore.SatSub(cfg.MaxSupply, m.Supply))
	primary, motherlode := reward.Split(minted, cfg.MotherlodeBps)

	auth, err := tx.Authorize(treasuryD)
	if err != nil {
		return err
	}
	if err := token.MintTo(tx, mint, treasuryTokens, motherlode, auth); err != nil {
		return err
	}
	if err := token.MintTo(tx, mint, topMinerTokens, primary, auth); err != nil {
		return err
	}
	treasury.Motherlode = ore.SatAdd(treasury.Motherlode, motherlode)

	board.RoundID++
	board.StartSlot = slot
	board.EndSlot = ore.SatAdd(slot, ore.RoundSlots)

	if err := p.store(tx, boardAddr, board.Encode()); err != nil {
		return err
	}
	if err := p.store(tx, treasuryAddr, treasury.Encode()); err != nil {
		return err
	}

	logger.Debug("round reset", "round", board.RoundID, "minted", minted, "primary", primary, "motherlode", motherlode)
	return p.emit(tx, EventReset, &ResetEvent{
		RoundID:    board.RoundID,
		StartSlot:  board.StartSlot,
		EndSlot:    board.EndSlot,
		Minted:     minted,
		Primary:    primary,
		Motherlode: motherlode,
		TopMiner:   top.Owner,
		Timestamp:  timestamp(tx),
	})
}
