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
	"github.com/oreprotocol/ore/pda"
	"github.com/oreprotocol/ore/token"
)

func expectAccounts(accounts []solana.PublicKey, n int) error {
	if len(accounts) != n {
		return reverts.Newf(reverts.InsufficientAccounts, "want %d accounts, got %d", n, len(accounts))
	}
	return nil
}

func expectProgram(supplied, want solana.PublicKey) error {
	if !supplied.Equals(want) {
		return reverts.Newf(reverts.IncorrectAuthority, "program %s, want %s", supplied, want)
	}
	return nil
}

// expectAssociated checks that supplied is the token account of wallet for mint.
func expectAssociated(supplied, wallet, mint solana.PublicKey) error {
	ata, err := token.AssociatedAddress(wallet, mint)
	if err != nil {
		return err
	}
	if !ata.Address.Equals(supplied) {
		return reverts.Newf(reverts.AddressMismatch, "token account: expected %s, got %s", ata.Address, supplied)
	}
	return nil
}

func isEmpty(tx *ledger.Tx, addr solana.PublicKey) (bool, error) {
	acc, err := tx.Account(addr)
	if err != nil {
		return false, err
	}
	return acc.IsEmpty(), nil
}

func (p *Program) loadConfig(tx *ledger.Tx, addr, mint solana.PublicKey) (*Config, error) {
	if _, err := p.pda.Verify(addr, ore.ConfigSeed, mint[:]); err != nil {
		return nil, err
	}
	data, err := tx.Data(p.id, addr)
	if err != nil {
		return nil, err
	}
	cfg, err := DecodeConfig(data)
	if err != nil {
		return nil, err
	}
	if !cfg.Mint.Equals(mint) {
		return nil, reverts.Newf(reverts.AssetMismatch, "config is for mint %s, not %s", cfg.Mint, mint)
	}
	return cfg, nil
}

func (p *Program) loadTreasury(tx *ledger.Tx, addr, mint solana.PublicKey) (*Treasury, pda.Derived, error) {
	d, err := p.pda.Verify(addr, ore.TreasurySeed, mint[:])
	if err != nil {
		return nil, pda.Derived{}, err
	}
	data, err := tx.Data(p.id, addr)
	if err != nil {
		return nil, pda.Derived{}, err
	}
	t, err := DecodeTreasury(data)
	if err != nil {
		return nil, pda.Derived{}, err
	}
	return t, d, nil
}

func (p *Program) loadBoard(tx *ledger.Tx, addr, mint solana.PublicKey) (*Board, error) {
	if _, err := p.pda.Verify(addr, ore.BoardSeed, mint[:]); err != nil {
		return nil, err
	}
	data, err := tx.Data(p.id, addr)
	if err != nil {
		return nil, err
	}
	return DecodeBoard(data)
}

func (p *Program) loadStake(tx *ledger.Tx, addr, mint, authority solana.PublicKey) (*Stake, error) {
	if _, err := p.pda.Verify(addr, ore.StakeSeed, mint[:], authority[:]); err != nil {
		return nil, err
	}
	data, err := tx.Data(p.id, addr)
	if err != nil {
		return nil, err
	}
	s, err := DecodeStake(data)
	if err != nil {
		return nil, err
	}
	if !s.Authority.Equals(authority) {
		return nil, reverts.Newf(reverts.IncorrectAuthority, "stake belongs to %s, not %s", s.Authority, authority)
	}
	return s, nil
}

func (p *Program) store(tx *ledger.Tx, addr solana.PublicKey, data []byte) error {
	return tx.SetData(p.id, addr, data)
}

func (p *Program) emit(tx *ledger.Tx, kind uint8, ev any) error {
	data, err := encodeEvent(kind, ev)
	if err != nil {
		return err
	}
	tx.Emit(data)
	return nil
}

func timestamp(tx *ledger.Tx) uint64 {
	return uint64(max(tx.Clock().UnixTimestamp, 0))
}
