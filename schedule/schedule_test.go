// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package schedule

import (
	"crypto/sha256"
	"math"
	"sort"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oreprotocol/ore/ore"
)

func TestReleased(t *testing.T) {
	s := Schedule{Start: 1000, PeriodSeconds: 100, ReleasePerPeriod: 5, PeriodCount: 10}

	tests := []struct {
		now      int64
		expected uint64
	}{
		{999, 0},
		{1000, 0},
		{1050, 0},
		{1099, 0},
		{1100, 5},
		{1250, 10},
		{1999, 45},
		{2000, 50},
		{2500, 50},
		{math.MaxInt64, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, s.Released(tt.now), "now=%d", tt.now)
	}
	assert.Equal(t, uint64(50), s.Total())
}

func TestReleasedWithCliff(t *testing.T) {
	s := Schedule{Start: 1000, HasCliff: true, Cliff: 1300, PeriodSeconds: 100, ReleasePerPeriod: 5, PeriodCount: 10}

	assert.Equal(t, uint64(0), s.Released(1100))
	assert.Equal(t, uint64(0), s.Released(1299))
	// periods are counted from start, not from the cliff
	assert.Equal(t, uint64(15), s.Released(1300))
}

func TestReleasedDegeneratePeriod(t *testing.T) {
	for _, period := range []int64{0, -1, math.MinInt64} {
		s := Schedule{Start: 10, PeriodSeconds: period, ReleasePerPeriod: 7, PeriodCount: 3}
		assert.Equal(t, uint64(0), s.Released(9))
		assert.Equal(t, uint64(21), s.Released(10))
	}

	s := Schedule{Start: 10, HasCliff: true, Cliff: 20, ReleasePerPeriod: 7, PeriodCount: 3}
	assert.Equal(t, uint64(0), s.Released(15))
	assert.Equal(t, uint64(21), s.Released(20))
}

func TestReleasedSaturates(t *testing.T) {
	s := Schedule{Start: math.MinInt64, PeriodSeconds: 1, ReleasePerPeriod: math.MaxUint64, PeriodCount: math.MaxUint64}
	assert.Equal(t, uint64(math.MaxUint64), s.Total())
	assert.Equal(t, uint64(math.MaxUint64), s.Released(math.MaxInt64))
}

func TestClaimable(t *testing.T) {
	s := Schedule{Start: 1000, PeriodSeconds: 100, ReleasePerPeriod: 5, PeriodCount: 10}

	assert.Equal(t, uint64(5), s.Claimable(1100, 0))
	assert.Equal(t, uint64(0), s.Claimable(1100, 5))
	assert.Equal(t, uint64(5), s.Claimable(1250, 5))
	assert.Equal(t, uint64(0), s.Claimable(1250, 100), "never negative")
}

func TestReleasedMonotonic(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for i := 0; i < 500; i++ {
		var s Schedule
		f.Fuzz(&s)
		s.PeriodSeconds = s.PeriodSeconds%100_000 + 1
		s.PeriodCount %= 1000

		times := make([]int64, 16)
		for j := range times {
			f.Fuzz(&times[j])
		}
		sort.Slice(times, func(a, b int) bool { return times[a] < times[b] })

		var prev uint64
		for _, now := range times {
			r := s.Released(now)
			require.GreaterOrEqual(t, r, prev)
			require.LessOrEqual(t, r, s.Total())
			prev = r
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	s := Schedule{Start: -5, HasCliff: true, Cliff: 77, PeriodSeconds: 86_400, ReleasePerPeriod: 10_000, PeriodCount: 180}
	enc := s.Encode()
	require.Len(t, enc, EncodedSize)

	got, err := Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	enc[8] = 2
	_, err = Decode(enc)
	assert.Error(t, err)
	_, err = Decode(enc[:10])
	assert.Error(t, err)
}

func TestHashLayout(t *testing.T) {
	s := Schedule{Start: 1, HasCliff: true, Cliff: 2, PeriodSeconds: 3, ReleasePerPeriod: 4, PeriodCount: 5}

	raw := append([]byte{}, ore.VaultScheduleSeed...)
	raw = append(raw, 1, 0, 0, 0, 0, 0, 0, 0)
	raw = append(raw, 1)
	raw = append(raw, 2, 0, 0, 0, 0, 0, 0, 0)
	raw = append(raw, 3, 0, 0, 0, 0, 0, 0, 0)
	raw = append(raw, 4, 0, 0, 0, 0, 0, 0, 0)
	raw = append(raw, 5, 0, 0, 0, 0, 0, 0, 0)
	assert.Equal(t, sha256.Sum256(raw), s.Hash())
}

func TestHashIgnoresUnsetCliffValue(t *testing.T) {
	a := Schedule{Start: 1, PeriodSeconds: 3, ReleasePerPeriod: 4, PeriodCount: 5}
	b := a
	b.Cliff = 99
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestHashSingleFieldChanges(t *testing.T) {
	base := Schedule{Start: 1000, HasCliff: true, Cliff: 1500, PeriodSeconds: 100, ReleasePerPeriod: 5, PeriodCount: 10}
	variants := []Schedule{base, base, base, base, base, base}
	variants[0].Start++
	variants[1].HasCliff = false
	variants[2].Cliff++
	variants[3].PeriodSeconds++
	variants[4].ReleasePerPeriod++
	variants[5].PeriodCount++

	seen := map[[32]byte]bool{base.Hash(): true}
	for i, v := range variants {
		h := v.Hash()
		assert.False(t, seen[h], "variant %d collides", i)
		seen[h] = true
	}
}
