// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package accrual distributes a shared pool of value over stake in O(1) per
// operation using a cumulative per-unit index.
package accrual

import (
	"math"
	"math/big"

	"github.com/holiman/uint256"
)

// FractionalBits is the number of fractional bits of an Index.
const FractionalBits = 64

// Size is the encoded size of an Index.
const Size = 32

// Index is an unsigned fixed-point number with FractionalBits fractional
// bits, held in 256 bits. Its zero value is 0. Index is a value type; copies
// never alias.
type Index struct {
	v uint256.Int
}

// Share returns the index growth that distributes amount over totalStaked
// units of stake. It reports false, and the index must not move, when nothing
// is staked; the caller keeps the amount.
func Share(totalStaked, amount uint64) (Index, bool) {
	if totalStaked == 0 {
		return Index{}, false
	}
	var d Index
	d.v.SetUint64(amount)
	d.v.Lsh(&d.v, FractionalBits)
	d.v.Div(&d.v, uint256.NewInt(totalStaked))
	return d, true
}

// Owed returns what stake units earned while the index moved from lastSynced
// to current, floored to the base unit. It never pays more than accrued and
// saturates at MaxUint64.
func Owed(stake uint64, current, lastSynced Index) uint64 {
	if stake == 0 || current.v.Cmp(&lastSynced.v) <= 0 {
		return 0
	}
	var diff uint256.Int
	diff.Sub(&current.v, &lastSynced.v)

	prod, overflow := new(uint256.Int).MulOverflow(&diff, uint256.NewInt(stake))
	if overflow {
		return math.MaxUint64
	}
	prod.Rsh(prod, FractionalBits)
	if !prod.IsUint64() {
		return math.MaxUint64
	}
	return prod.Uint64()
}

// Add returns i+d, saturating at the largest representable index.
func (i Index) Add(d Index) Index {
	var out Index
	if _, overflow := out.v.AddOverflow(&i.v, &d.v); overflow {
		out.v.SetAllOne()
	}
	return out
}

func (i Index) Cmp(o Index) int {
	return i.v.Cmp(&o.v)
}

func (i Index) IsZero() bool {
	return i.v.IsZero()
}

// Bytes returns the 32-byte little-endian encoding.
func (i Index) Bytes() [Size]byte {
	be := i.v.Bytes32()
	var le [Size]byte
	for n := range be {
		le[n] = be[Size-1-n]
	}
	return le
}

// FromBytes decodes a 32-byte little-endian encoding.
func FromBytes(le [Size]byte) Index {
	var be [Size]byte
	for n := range le {
		be[n] = le[Size-1-n]
	}
	var i Index
	i.v.SetBytes32(be[:])
	return i
}

// FromUint64 returns the index with integer part n.
func FromUint64(n uint64) Index {
	var i Index
	i.v.SetUint64(n)
	i.v.Lsh(&i.v, FractionalBits)
	return i
}

// Float64 is an approximation for display.
func (i Index) Float64() float64 {
	f, _ := new(big.Float).SetInt(i.v.ToBig()).Float64()
	return f / (1 << FractionalBits)
}

func (i Index) String() string {
	return i.v.Dec()
}
