// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ore

import (
	"math"

	gmath "github.com/ethereum/go-ethereum/common/math"
)

// Saturating arithmetic for token amounts. Amounts never wrap.

func SatMul(x, y uint64) uint64 {
	if v, overflow := gmath.SafeMul(x, y); !overflow {
		return v
	}
	return math.MaxUint64
}

func SatAdd(x, y uint64) uint64 {
	if v, overflow := gmath.SafeAdd(x, y); !overflow {
		return v
	}
	return math.MaxUint64
}

func SatSub(x, y uint64) uint64 {
	if v, overflow := gmath.SafeSub(x, y); !overflow {
		return v
	}
	return 0
}

// BpsOf returns floor(amount * bps / DenominatorBPS), saturating the product.
func BpsOf(amount, bps uint64) uint64 {
	return SatMul(amount, bps) / DenominatorBPS
}
