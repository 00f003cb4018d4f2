// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import "github.com/oreprotocol/ore/ore"

// AccountStorageOverhead is charged on top of the data size of every account.
const AccountStorageOverhead = 128

// Rent prices account storage. An account holding MinimumBalance of its size
// is never reclaimed.
type Rent struct {
	LamportsPerByteYear uint64
	ExemptionYears      uint64
}

// DefaultRent matches the mainnet parameters of the hosting ledger.
var DefaultRent = Rent{
	LamportsPerByteYear: 3480,
	ExemptionYears:      2,
}

// MinimumBalance returns the storage deposit for an account of size bytes.
func (r Rent) MinimumBalance(size int) uint64 {
	bytes := uint64(AccountStorageOverhead + max(size, 0))
	return ore.SatMul(ore.SatMul(bytes, r.LamportsPerByteYear), r.ExemptionYears)
}
