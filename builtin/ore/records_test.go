// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oreprotocol/ore/accrual"
	"github.com/oreprotocol/ore/builtin/reverts"
	"github.com/oreprotocol/ore/ore"
)

func TestRecordLayouts(t *testing.T) {
	assert.Equal(t, 136, ConfigSize)
	assert.Equal(t, 80, TreasurySize)
	assert.Equal(t, 40, BoardSize)
	assert.Equal(t, 120, StakeSize)
	assert.Equal(t, 112, LpPoolSize)

	cfg := &Config{Admin: key(1), Mint: key(2), RewardPerRound: 3, MaxSupply: 4, MotherlodeBps: 5, StakeBps: 6}
	b := cfg.Encode()
	assert.Equal(t, []byte{ore.AccountConfig, 0, 0, 0, 0, 0, 0, 0}, b[:8])
	assert.Equal(t, key(1).Bytes(), b[8:40])
	assert.Equal(t, []byte{3, 0, 0, 0, 0, 0, 0, 0}, b[72:80])

	decoded, err := DecodeConfig(b)
	require.NoError(t, err)
	assert.Equal(t, cfg, decoded)
}

func TestRecordIndexesSurvive(t *testing.T) {
	index, _ := accrual.Share(3, 7)

	tr := &Treasury{TotalStaked: 3, Index: index, Motherlode: 1, TotalBuried: 2, TotalShared: 7, TotalUnclaimed: 7}
	got, err := DecodeTreasury(tr.Encode())
	require.NoError(t, err)
	assert.Equal(t, tr, got)

	s := &Stake{Authority: key(4), Balance: 3, RewardsIndex: index, LastClaimAt: -1, LifetimeRewards: 9}
	gotStake, err := DecodeStake(s.Encode())
	require.NoError(t, err)
	assert.Equal(t, s, gotStake)
}

func TestRecordDiscriminator(t *testing.T) {
	board := (&Board{RoundID: 1}).Encode()
	_, err := DecodeBoard(board[:BoardSize-1])
	assert.True(t, reverts.IsKind(err, reverts.InvalidAccountData))

	_, err = DecodeTreasury(make([]byte, TreasurySize))
	assert.True(t, reverts.IsKind(err, reverts.InvalidAccountData))

	cfgLike := make([]byte, BoardSize)
	cfgLike[0] = ore.AccountConfig
	_, err = DecodeBoard(cfgLike)
	assert.True(t, reverts.IsKind(err, reverts.InvalidAccountData))
}

func TestStakeReconcile(t *testing.T) {
	s := &Stake{Balance: 100}
	index, _ := accrual.Share(400, 100)

	assert.Equal(t, uint64(25), s.Reconcile(index))
	assert.Equal(t, uint64(25), s.Rewards)
	assert.Equal(t, index, s.RewardsIndex)

	// reconciling twice at the same index pays nothing more
	assert.Equal(t, uint64(0), s.Reconcile(index))
	assert.Equal(t, uint64(25), s.LifetimeRewards)
}
