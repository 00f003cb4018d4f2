// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token is the fungible token primitive the protocol moves value
// with. Records are owned by the token program id.
package token

import (
	gmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/gagliardetto/solana-go"

	"github.com/oreprotocol/ore/builtin/reverts"
	"github.com/oreprotocol/ore/ledger"
	"github.com/oreprotocol/ore/pda"
)

// ProgramID owns every mint and token account.
var ProgramID = solana.TokenProgramID

// Host is the part of the ledger the token primitive runs on.
type Host interface {
	Data(owner, addr solana.PublicKey) ([]byte, error)
	SetData(owner, addr solana.PublicKey, data []byte) error
	CreateAccount(payer, address solana.PublicKey, size int, owner solana.PublicKey, seeds *pda.Derived) error
}

var _ Host = (*ledger.Tx)(nil)

// GetMint loads the mint at addr.
func GetMint(h Host, addr solana.PublicKey) (*Mint, error) {
	data, err := h.Data(ProgramID, addr)
	if err != nil {
		return nil, err
	}
	m, err := DecodeMint(data)
	if err != nil {
		return nil, reverts.Newf(reverts.AssetMismatch, "%s is not a mint", addr)
	}
	return m, nil
}

// GetAccount loads the token account at addr.
func GetAccount(h Host, addr solana.PublicKey) (*Account, error) {
	data, err := h.Data(ProgramID, addr)
	if err != nil {
		return nil, err
	}
	a, err := DecodeAccount(data)
	if err != nil {
		return nil, reverts.Newf(reverts.AssetMismatch, "%s is not a token account", addr)
	}
	return a, nil
}

// InitializeMint creates a mint at a freshly signed address.
func InitializeMint(h Host, payer, mint, authority solana.PublicKey, decimals uint8) error {
	if err := h.CreateAccount(payer, mint, MintSize, ProgramID, nil); err != nil {
		return err
	}
	m := Mint{Authority: authority, Decimals: decimals}
	return h.SetData(ProgramID, mint, m.encode())
}

// AssociatedAddress returns the canonical token account of wallet for mint.
func AssociatedAddress(wallet, mint solana.PublicKey) (pda.Derived, error) {
	addr, bump, err := solana.FindAssociatedTokenAddress(wallet, mint)
	if err != nil {
		return pda.Derived{}, err
	}
	return pda.Derived{
		Program: solana.SPLAssociatedTokenAccountProgramID,
		Seeds:   [][]byte{wallet[:], ProgramID[:], mint[:]},
		Address: addr,
		Bump:    bump,
	}, nil
}

// CreateAssociated creates the associated token account of wallet for mint,
// paid by payer. Wallet may be a derived address.
func CreateAssociated(h Host, payer, wallet, mint solana.PublicKey) (solana.PublicKey, error) {
	if _, err := GetMint(h, mint); err != nil {
		return solana.PublicKey{}, err
	}
	ata, err := AssociatedAddress(wallet, mint)
	if err != nil {
		return solana.PublicKey{}, err
	}
	if err := h.CreateAccount(payer, ata.Address, AccountSize, ProgramID, &ata); err != nil {
		return solana.PublicKey{}, err
	}
	a := Account{Mint: mint, Owner: wallet}
	if err := h.SetData(ProgramID, ata.Address, a.encode()); err != nil {
		return solana.PublicKey{}, err
	}
	return ata.Address, nil
}

// Transfer moves amount between two accounts of the same mint. auth must
// be the owner of from.
func Transfer(h Host, from, to solana.PublicKey, amount uint64, auth ledger.Authority) error {
	src, err := GetAccount(h, from)
	if err != nil {
		return err
	}
	dst, err := GetAccount(h, to)
	if err != nil {
		return err
	}
	if !src.Mint.Equals(dst.Mint) {
		return reverts.Newf(reverts.AssetMismatch, "transfer from %s mint to %s mint", src.Mint, dst.Mint)
	}
	if !src.Owner.Equals(auth.Address()) {
		return reverts.Newf(reverts.IncorrectAuthority, "%s does not own %s", auth.Address(), from)
	}
	if src.Amount < amount {
		return reverts.Newf(reverts.InsufficientFunds, "%s holds %d, wants %d", from, src.Amount, amount)
	}
	if from.Equals(to) {
		return nil
	}
	next, overflow := gmath.SafeAdd(dst.Amount, amount)
	if overflow {
		return reverts.New(reverts.InvalidArgument, "balance overflow")
	}
	src.Amount -= amount
	dst.Amount = next
	if err := h.SetData(ProgramID, from, src.encode()); err != nil {
		return err
	}
	return h.SetData(ProgramID, to, dst.encode())
}

// Burn destroys amount from account and lowers the supply of mint.
func Burn(h Host, account, mint solana.PublicKey, amount uint64, auth ledger.Authority) error {
	acc, err := GetAccount(h, account)
	if err != nil {
		return err
	}
	if !acc.Mint.Equals(mint) {
		return reverts.Newf(reverts.AssetMismatch, "%s holds %s, not %s", account, acc.Mint, mint)
	}
	if !acc.Owner.Equals(auth.Address()) {
		return reverts.Newf(reverts.IncorrectAuthority, "%s does not own %s", auth.Address(), account)
	}
	if acc.Amount < amount {
		return reverts.Newf(reverts.InsufficientFunds, "%s holds %d, burning %d", account, acc.Amount, amount)
	}
	m, err := GetMint(h, mint)
	if err != nil {
		return err
	}
	acc.Amount -= amount
	m.Supply -= min(amount, m.Supply)
	if err := h.SetData(ProgramID, account, acc.encode()); err != nil {
		return err
	}
	return h.SetData(ProgramID, mint, m.encode())
}

// MintTo issues amount of mint into to. auth must be the mint authority.
func MintTo(h Host, mint, to solana.PublicKey, amount uint64, auth ledger.Authority) error {
	m, err := GetMint(h, mint)
	if err != nil {
		return err
	}
	if !m.Authority.Equals(auth.Address()) {
		return reverts.Newf(reverts.IncorrectAuthority, "%s is not the authority of %s", auth.Address(), mint)
	}
	acc, err := GetAccount(h, to)
	if err != nil {
		return err
	}
	if !acc.Mint.Equals(mint) {
		return reverts.Newf(reverts.AssetMismatch, "%s holds %s, not %s", to, acc.Mint, mint)
	}
	supply, overflow := gmath.SafeAdd(m.Supply, amount)
	if overflow {
		return reverts.New(reverts.InvalidArgument, "supply overflow")
	}
	m.Supply = supply
	acc.Amount += amount // bounded by supply
	if err := h.SetData(ProgramID, mint, m.encode()); err != nil {
		return err
	}
	return h.SetData(ProgramID, to, acc.encode())
}

// SetAuthority hands the mint authority of mint to next.
func SetAuthority(h Host, mint, next solana.PublicKey, auth ledger.Authority) error {
	m, err := GetMint(h, mint)
	if err != nil {
		return err
	}
	if !m.Authority.Equals(auth.Address()) {
		return reverts.Newf(reverts.IncorrectAuthority, "%s is not the authority of %s", auth.Address(), mint)
	}
	m.Authority = next
	return h.SetData(ProgramID, mint, m.encode())
}
