// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rewardslock

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oreprotocol/ore/builtin/reverts"
	"github.com/oreprotocol/ore/schedule"
)

var tenPeriods = schedule.Schedule{Start: 1000, PeriodSeconds: 100, ReleasePerPeriod: 5, PeriodCount: 10}

func key(b byte) solana.PublicKey {
	return solana.PublicKeyFromBytes(bytes.Repeat([]byte{b}, 32))
}

func TestVaultClaim(t *testing.T) {
	v := &Vault{Beneficiary: key(1), Schedule: tenPeriods}

	assert.Equal(t, uint64(5), v.Claim(1100))
	assert.Equal(t, uint64(0), v.Claim(1100))
	assert.Equal(t, uint64(5), v.Claim(1250))
	assert.Equal(t, uint64(10), v.Claimed)
	assert.Equal(t, uint64(40), v.Claim(2500))
	assert.Equal(t, uint64(0), v.Claim(9999))
}

func TestVaultClaimNeverExceedsReleased(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for n := 0; n < 500; n++ {
		var s schedule.Schedule
		f.Fuzz(&s)
		s.ReleasePerPeriod %= 1 << 20
		s.PeriodCount %= 1 << 10
		s.Start %= 1 << 40

		v := &Vault{Schedule: s}
		now := s.Start - 10
		for k := 0; k < 20; k++ {
			var step uint16
			f.Fuzz(&step)
			now += int64(step)
			v.Claim(now)
			require.LessOrEqual(t, v.Claimed, s.Released(now))
			require.Equal(t, uint64(0), v.Claim(now))
		}
	}
}

func TestVaultEncoding(t *testing.T) {
	v := &Vault{
		Beneficiary: key(3),
		Schedule:    schedule.Schedule{Start: 1, HasCliff: true, Cliff: 2, PeriodSeconds: 3, ReleasePerPeriod: 4, PeriodCount: 5},
		Claimed:     6,
		Bump:        7,
	}
	b := v.Encode()
	require.Len(t, b, VaultSize)
	assert.Equal(t, byte(1), b[0])
	assert.Equal(t, v.Schedule.Encode(), b[40:40+schedule.EncodedSize])

	got, err := DecodeVault(b)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	b[0] = 2
	_, err = DecodeVault(b)
	assert.True(t, reverts.IsKind(err, reverts.InvalidAccountData))
}

func TestInstructionWireFormat(t *testing.T) {
	ins := InitializeVault{Beneficiary: key(1), Schedule: tenPeriods}
	data := ins.Encode()
	assert.Equal(t, OpInitializeVault, data[0])
	assert.Equal(t, tenPeriods.Encode(), data[33:])

	got, err := DecodeInstruction(data)
	require.NoError(t, err)
	assert.Equal(t, ins, got)

	got, err = DecodeInstruction(Claim{}.Encode())
	require.NoError(t, err)
	assert.Equal(t, Claim{}, got)

	for _, bad := range [][]byte{nil, {7}, data[:20], append(Claim{}.Encode(), 1)} {
		_, err := DecodeInstruction(bad)
		assert.True(t, reverts.IsKind(err, reverts.InvalidInstructionData), "%x", bad)
	}
}
