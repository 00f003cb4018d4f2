// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ore

import (
	"github.com/gagliardetto/solana-go"

	"github.com/oreprotocol/ore/token"
)

// Addresses are the derived accounts of one deployment.
type Addresses struct {
	Mint           solana.PublicKey
	Config         solana.PublicKey
	Treasury       solana.PublicKey
	Board          solana.PublicKey
	TreasuryTokens solana.PublicKey
}

// Addresses derives the accounts of the deployment for mint.
func (p *Program) Addresses(mint solana.PublicKey) (Addresses, error) {
	config, err := p.pda.Config(mint)
	if err != nil {
		return Addresses{}, err
	}
	treasury, err := p.pda.Treasury(mint)
	if err != nil {
		return Addresses{}, err
	}
	board, err := p.pda.Board(mint)
	if err != nil {
		return Addresses{}, err
	}
	tokens, err := token.AssociatedAddress(treasury.Address, mint)
	if err != nil {
		return Addresses{}, err
	}
	return Addresses{
		Mint:           mint,
		Config:         config.Address,
		Treasury:       treasury.Address,
		Board:          board.Address,
		TreasuryTokens: tokens.Address,
	}, nil
}

func (p *Program) InitializeAccounts(signer solana.PublicKey, a Addresses) []solana.PublicKey {
	return []solana.PublicKey{signer, a.Config, a.Treasury, a.Board, a.Mint, a.TreasuryTokens, solana.SystemProgramID, token.ProgramID}
}

func (p *Program) BuryAccounts(signer solana.PublicKey, a Addresses) ([]solana.PublicKey, error) {
	sender, err := token.AssociatedAddress(signer, a.Mint)
	if err != nil {
		return nil, err
	}
	return []solana.PublicKey{signer, sender.Address, a.Board, a.Config, a.Mint, a.Treasury, a.TreasuryTokens, token.ProgramID, p.id}, nil
}

func (p *Program) DepositAccounts(signer solana.PublicKey, a Addresses) ([]solana.PublicKey, error) {
	sender, stake, err := p.stakeAccounts(signer, a)
	if err != nil {
		return nil, err
	}
	return []solana.PublicKey{signer, sender, a.Config, a.Mint, stake, a.Treasury, a.TreasuryTokens, solana.SystemProgramID, token.ProgramID}, nil
}

// WithdrawAccounts also serves ClaimYield.
func (p *Program) WithdrawAccounts(signer solana.PublicKey, a Addresses) ([]solana.PublicKey, error) {
	recipient, stake, err := p.stakeAccounts(signer, a)
	if err != nil {
		return nil, err
	}
	return []solana.PublicKey{signer, recipient, a.Config, a.Mint, stake, a.Treasury, a.TreasuryTokens, token.ProgramID}, nil
}

func (p *Program) ResetAccounts(signer, topMinerTokens solana.PublicKey, a Addresses) []solana.PublicKey {
	return []solana.PublicKey{signer, a.Config, a.Board, a.Mint, a.Treasury, a.TreasuryTokens, topMinerTokens, token.ProgramID}
}

func (p *Program) SetAdminAccounts(signer solana.PublicKey, a Addresses) []solana.PublicKey {
	return []solana.PublicKey{signer, a.Config}
}

func (p *Program) InitializeLpPoolAccounts(payer, baseMint, quoteMint solana.PublicKey) ([]solana.PublicKey, error) {
	pool, err := p.pda.LpPool(baseMint)
	if err != nil {
		return nil, err
	}
	return []solana.PublicKey{pool.Address, payer, baseMint, quoteMint, solana.SystemProgramID}, nil
}

func (p *Program) stakeAccounts(signer solana.PublicKey, a Addresses) (tokens, stake solana.PublicKey, err error) {
	ata, err := token.AssociatedAddress(signer, a.Mint)
	if err != nil {
		return
	}
	d, err := p.pda.Stake(a.Mint, signer)
	if err != nil {
		return
	}
	return ata.Address, d.Address, nil
}
