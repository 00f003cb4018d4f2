// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/oreprotocol/ore/layout"
)

const (
	// MintSize is the encoded size of a Mint.
	MintSize = 32 + 8 + 1
	// AccountSize is the encoded size of an Account.
	AccountSize = 32 + 32 + 8
)

// Mint is a fungible asset.
type Mint struct {
	Authority solana.PublicKey
	Supply    uint64
	Decimals  uint8
}

func (m *Mint) encode() []byte {
	return layout.NewWriter(MintSize).Key(m.Authority).U64(m.Supply).U8(m.Decimals).Finish()
}

// DecodeMint parses a raw mint record.
func DecodeMint(b []byte) (*Mint, error) {
	if len(b) != MintSize {
		return nil, errors.Errorf("mint: want %d bytes, got %d", MintSize, len(b))
	}
	r := layout.NewReader(b)
	return &Mint{
		Authority: r.Key(),
		Supply:    r.U64(),
		Decimals:  r.U8(),
	}, nil
}

// Account is a balance of one mint held by one owner.
type Account struct {
	Mint   solana.PublicKey
	Owner  solana.PublicKey
	Amount uint64
}

func (a *Account) encode() []byte {
	return layout.NewWriter(AccountSize).Key(a.Mint).Key(a.Owner).U64(a.Amount).Finish()
}

// DecodeAccount parses a raw token account record.
func DecodeAccount(b []byte) (*Account, error) {
	if len(b) != AccountSize {
		return nil, errors.Errorf("token account: want %d bytes, got %d", AccountSize, len(b))
	}
	r := layout.NewReader(b)
	return &Account{
		Mint:   r.Key(),
		Owner:  r.Key(),
		Amount: r.U64(),
	}, nil
}
