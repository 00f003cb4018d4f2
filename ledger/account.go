// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"bytes"
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

const accountHeaderSize = 32 + 8

// Account is the raw state held at an address.
type Account struct {
	Owner    solana.PublicKey
	Lamports uint64
	Data     []byte
}

// IsEmpty reports whether the account holds no data.
func (a *Account) IsEmpty() bool {
	return len(a.Data) == 0
}

func (a *Account) clone() *Account {
	return &Account{
		Owner:    a.Owner,
		Lamports: a.Lamports,
		Data:     bytes.Clone(a.Data),
	}
}

func (a *Account) encode() []byte {
	b := make([]byte, accountHeaderSize+len(a.Data))
	copy(b, a.Owner[:])
	binary.LittleEndian.PutUint64(b[32:], a.Lamports)
	copy(b[accountHeaderSize:], a.Data)
	return b
}

func decodeAccount(b []byte) (*Account, error) {
	if len(b) < accountHeaderSize {
		return nil, errors.Errorf("account: short encoding %d bytes", len(b))
	}
	a := &Account{
		Owner:    solana.PublicKeyFromBytes(b[:32]),
		Lamports: binary.LittleEndian.Uint64(b[32:]),
	}
	if len(b) > accountHeaderSize {
		a.Data = bytes.Clone(b[accountHeaderSize:])
	}
	return a, nil
}

// Authority proves that the current operation may act for an address,
// either because the address signed or because the executing program
// presented the seed path the address was derived from.
type Authority struct {
	address solana.PublicKey
}

func (a Authority) Address() solana.PublicKey {
	return a.address
}

// Clock is the host's notion of time.
type Clock struct {
	Slot          uint64
	UnixTimestamp int64
}
