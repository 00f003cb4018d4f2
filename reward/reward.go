// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package reward holds the value-conserving accounting of bury and round
// rewards. Every function here satisfies inputs == sum of outputs exactly.
package reward

import (
	"github.com/oreprotocol/ore/accrual"
	"github.com/oreprotocol/ore/ore"
)

// Burial is the outcome of burying tokens.
type Burial struct {
	Transferred uint64
	Shared      uint64
	Burned      uint64

	// Delta is the accrual index growth; zero when nothing was shared.
	Delta accrual.Index
}

// Bury clamps the requested amount to the sender's balance, shares stakeBps
// of it with stakers and burns the rest. With nothing staked the whole
// amount is burned.
func Bury(requested, balance, stakeBps, totalStaked uint64) Burial {
	b := Burial{Transferred: min(requested, balance)}

	if totalStaked > 0 {
		b.Shared = min(ore.BpsOf(b.Transferred, stakeBps), b.Transferred)
		if b.Shared > 0 {
			b.Delta, _ = accrual.Share(totalStaked, b.Shared)
		}
	}
	b.Burned = b.Transferred - b.Shared
	return b
}

// Split divides a round reward between the primary recipient and the
// motherlode. The primary share is the remainder, so the two always sum to
// total.
func Split(total, motherlodeBps uint64) (primary, motherlode uint64) {
	motherlode = min(ore.BpsOf(total, motherlodeBps), total)
	return total - motherlode, motherlode
}
