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
	"github.com/oreprotocol/ore/token"
)

// initialize creates the config, treasury, board and treasury token
// account of a mint whose mint authority is already the treasury.
//
// Accounts: signer, config, treasury, board, mint, treasury_tokens, system, token.
func (p *Program) initialize(tx *ledger.Tx, accounts []solana.PublicKey, args Initialize) error {
	if err := expectAccounts(accounts, 8); err != nil {
		return err
	}
	signer, configAddr, treasuryAddr, boardAddr := accounts[0], accounts[1], accounts[2], accounts[3]
	mint, treasuryTokens, system, tokenProgram := accounts[4], accounts[5], accounts[6], accounts[7]

	if _, err := tx.Signer(signer); err != nil {
		return err
	}
	if args.MotherlodeBps > ore.DenominatorBPS || args.StakeBps > ore.DenominatorBPS {
		return reverts.Newf(reverts.InvalidArgument, "basis points above %d", ore.DenominatorBPS)
	}

	configD, err := p.pda.Verify(configAddr, ore.ConfigSeed, mint[:])
	if err != nil {
		return err
	}
	treasuryD, err := p.pda.Verify(treasuryAddr, ore.TreasurySeed, mint[:])
	if err != nil {
		return err
	}
	boardD, err := p.pda.Verify(boardAddr, ore.BoardSeed, mint[:])
	if err != nil {
		return err
	}
	if err := expectAssociated(treasuryTokens, treasuryAddr, mint); err != nil {
		return err
	}
	if err := expectProgram(system, solana.SystemProgramID); err != nil {
		return err
	}
	if err := expectProgram(tokenProgram, token.ProgramID); err != nil {
		return err
	}

	m, err := token.GetMint(tx, mint)
	if err != nil {
		return err
	}
	if !m.Authority.Equals(treasuryAddr) {
		return reverts.Newf(reverts.IncorrectAuthority, "mint authority is %s, not the treasury", m.Authority)
	}

	cfg := Config{
		Admin:          signer,
		Mint:           mint,
		RewardPerRound: args.RewardPerRound,
		MaxSupply:      args.MaxSupply,
		MotherlodeBps:  args.MotherlodeBps,
		StakeBps:       args.StakeBps,
	}
	slot := tx.Clock().Slot
	board := Board{StartSlot: slot, EndSlot: slot}

	if err := tx.CreateAccount(signer, configAddr, ConfigSize, p.id, &configD); err != nil {
		return err
	}
	if err := tx.CreateAccount(signer, treasuryAddr, TreasurySize, p.id, &treasuryD); err != nil {
		return err
	}
	if err := tx.CreateAccount(signer, boardAddr, BoardSize, p.id, &boardD); err != nil {
		return err
	}
	if _, err := token.CreateAssociated(tx, signer, treasuryAddr, mint); err != nil {
		return err
	}
	if err := p.store(tx, configAddr, cfg.Encode()); err != nil {
		return err
	}
	if err := p.store(tx, treasuryAddr, (&Treasury{}).Encode()); err != nil {
		return err
	}
	if err := p.store(tx, boardAddr, board.Encode()); err != nil {
		return err
	}

	logger.Debug("initialized", "mint", mint, "admin", signer)
	return p.emit(tx, EventInitialize, &InitializeEvent{
		Mint:           mint,
		Admin:          signer,
		RewardPerRound: args.RewardPerRound,
		MaxSupply:      args.MaxSupply,
		MotherlodeBps:  args.MotherlodeBps,
		StakeBps:       args.StakeBps,
		Timestamp:      timestamp(tx),
	})
}

// setAdmin hands the config to a new admin.
//
// Accounts: signer, config.
func (p *Program) setAdmin(tx *ledger.Tx, accounts []solana.PublicKey, args SetAdmin) error {
	if err := expectAccounts(accounts, 2); err != nil {
		return err
	}
	signer, configAddr := accounts[0], accounts[1]
	if _, err := tx.Signer(signer); err != nil {
		return err
	}

	data, err := tx.Data(p.id, configAddr)
	if err != nil {
		return err
	}
	cfg, err := DecodeConfig(data)
	if err != nil {
		return err
	}
	if _, err := p.pda.Verify(configAddr, ore.ConfigSeed, cfg.Mint[:]); err != nil {
		return err
	}
	if !cfg.Admin.Equals(signer) {
		return reverts.Newf(reverts.IncorrectAuthority, "%s is not the admin", signer)
	}

	previous := cfg.Admin
	cfg.Admin = args.Admin
	if err := p.store(tx, configAddr, cfg.Encode()); err != nil {
		return err
	}
	logger.Debug("admin changed", "mint", cfg.Mint, "admin", args.Admin)
	return p.emit(tx, EventSetAdmin, &SetAdminEvent{
		Mint:      cfg.Mint,
		Previous:  previous,
		Admin:     args.Admin,
		Timestamp: timestamp(tx),
	})
}
