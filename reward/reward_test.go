// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reward

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oreprotocol/ore/accrual"
)

func TestBury(t *testing.T) {
	b := Bury(1000, 700, 2000, 500)
	assert.Equal(t, uint64(700), b.Transferred)
	assert.Equal(t, uint64(140), b.Shared)
	assert.Equal(t, uint64(560), b.Burned)
	want, _ := accrual.Share(500, 140)
	assert.Equal(t, want, b.Delta)

	b = Bury(1000, 700, 2000, 0)
	assert.Equal(t, uint64(700), b.Transferred)
	assert.Equal(t, uint64(0), b.Shared)
	assert.Equal(t, uint64(700), b.Burned)
	assert.True(t, b.Delta.IsZero())
}

func TestBuryEdges(t *testing.T) {
	tests := []struct {
		name                            string
		requested, balance, bps, staked uint64
		transferred, shared, burned     uint64
	}{
		{"zero amount", 0, 100, 5000, 10, 0, 0, 0},
		{"zero balance", 100, 0, 5000, 10, 0, 0, 0},
		{"zero bps", 100, 100, 0, 10, 100, 0, 100},
		{"full bps", 100, 100, 10000, 10, 100, 100, 0},
		{"share floors", 9, 9, 1000, 10, 9, 0, 9},
		{"huge amount saturates", math.MaxUint64, math.MaxUint64, 10000, 1, math.MaxUint64, math.MaxUint64 / 10000, math.MaxUint64 - math.MaxUint64/10000},
		{"bps above denominator", 100, 100, 20000, 10, 100, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Bury(tt.requested, tt.balance, tt.bps, tt.staked)
			assert.Equal(t, tt.transferred, b.Transferred)
			assert.Equal(t, tt.shared, b.Shared)
			assert.Equal(t, tt.burned, b.Burned)
		})
	}
}

func TestBuryConserves(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for i := 0; i < 5000; i++ {
		var requested, balance, bps, staked uint64
		f.Fuzz(&requested)
		f.Fuzz(&balance)
		f.Fuzz(&bps)
		f.Fuzz(&staked)
		bps %= 10001
		if i%4 == 0 {
			staked = 0
		}

		b := Bury(requested, balance, bps, staked)
		require.Equal(t, min(requested, balance), b.Transferred)
		require.Equal(t, b.Transferred, b.Shared+b.Burned)
		require.True(t, b.Shared <= b.Transferred)
		if staked == 0 {
			require.Zero(t, b.Shared)
		}
	}
}

func TestSplit(t *testing.T) {
	primary, motherlode := Split(777, 3333)
	assert.Equal(t, uint64(258), motherlode)
	assert.Equal(t, uint64(519), primary)

	primary, motherlode = Split(100, 0)
	assert.Equal(t, uint64(100), primary)
	assert.Zero(t, motherlode)

	primary, motherlode = Split(100, 10000)
	assert.Zero(t, primary)
	assert.Equal(t, uint64(100), motherlode)
}

func TestSplitCompleteness(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for i := 0; i < 5000; i++ {
		var total, bps uint64
		f.Fuzz(&total)
		f.Fuzz(&bps)
		bps %= 10001

		primary, motherlode := Split(total, bps)
		require.Equal(t, total, primary+motherlode)
	}
}
