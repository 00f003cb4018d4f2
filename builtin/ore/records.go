// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ore

import (
	"github.com/gagliardetto/solana-go"

	"github.com/oreprotocol/ore/accrual"
	"github.com/oreprotocol/ore/builtin/reverts"
	"github.com/oreprotocol/ore/layout"
	"github.com/oreprotocol/ore/ore"
)

// Encoded record sizes, header included.
const (
	ConfigSize   = ore.RecordHeaderSize + 32 + 32 + 8*4 + 32
	TreasurySize = ore.RecordHeaderSize + 8 + accrual.Size + 8*4
	BoardSize    = ore.RecordHeaderSize + 8*4
	StakeSize    = ore.RecordHeaderSize + 32 + 8*2 + accrual.Size + 8*4
	LpPoolSize   = ore.RecordHeaderSize + 32*3 + 1 + 7
)

// Config is the protocol configuration of one mint.
type Config struct {
	Admin          solana.PublicKey
	Mint           solana.PublicKey
	RewardPerRound uint64
	MaxSupply      uint64
	MotherlodeBps  uint64
	StakeBps       uint64
}

func (c *Config) Encode() []byte {
	return layout.NewWriter(ConfigSize).
		Header(ore.AccountConfig).
		Key(c.Admin).
		Key(c.Mint).
		U64(c.RewardPerRound).
		U64(c.MaxSupply).
		U64(c.MotherlodeBps).
		U64(c.StakeBps).
		Skip(32).
		Finish()
}

func DecodeConfig(b []byte) (*Config, error) {
	r, err := open(b, ConfigSize, ore.AccountConfig)
	if err != nil {
		return nil, err
	}
	return &Config{
		Admin:          r.Key(),
		Mint:           r.Key(),
		RewardPerRound: r.U64(),
		MaxSupply:      r.U64(),
		MotherlodeBps:  r.U64(),
		StakeBps:       r.U64(),
	}, nil
}

// Treasury holds staked and buried value, the staking accrual index and
// the motherlode.
type Treasury struct {
	TotalStaked    uint64
	Index          accrual.Index
	Motherlode     uint64
	TotalBuried    uint64
	TotalShared    uint64
	TotalUnclaimed uint64
}

func (t *Treasury) Encode() []byte {
	index := t.Index.Bytes()
	return layout.NewWriter(TreasurySize).
		Header(ore.AccountTreasury).
		U64(t.TotalStaked).
		Bytes(index[:]).
		U64(t.Motherlode).
		U64(t.TotalBuried).
		U64(t.TotalShared).
		U64(t.TotalUnclaimed).
		Finish()
}

func DecodeTreasury(b []byte) (*Treasury, error) {
	r, err := open(b, TreasurySize, ore.AccountTreasury)
	if err != nil {
		return nil, err
	}
	t := &Treasury{TotalStaked: r.U64()}
	t.Index = accrual.FromBytes([accrual.Size]byte(r.Bytes(accrual.Size)))
	t.Motherlode = r.U64()
	t.TotalBuried = r.U64()
	t.TotalShared = r.U64()
	t.TotalUnclaimed = r.U64()
	return t, nil
}

// Board tracks the current round.
type Board struct {
	RoundID   uint64
	StartSlot uint64
	EndSlot   uint64
	EpochID   uint64
}

func (b *Board) Encode() []byte {
	return layout.NewWriter(BoardSize).
		Header(ore.AccountBoard).
		U64(b.RoundID).
		U64(b.StartSlot).
		U64(b.EndSlot).
		U64(b.EpochID).
		Finish()
}

func DecodeBoard(data []byte) (*Board, error) {
	r, err := open(data, BoardSize, ore.AccountBoard)
	if err != nil {
		return nil, err
	}
	return &Board{
		RoundID:   r.U64(),
		StartSlot: r.U64(),
		EndSlot:   r.U64(),
		EpochID:   r.U64(),
	}, nil
}

// Stake is one staker's position. RewardsIndex is the treasury index the
// position was last reconciled at.
type Stake struct {
	Authority       solana.PublicKey
	Balance         uint64
	Rewards         uint64
	RewardsIndex    accrual.Index
	LastClaimAt     int64
	LastDepositAt   int64
	LastWithdrawAt  int64
	LifetimeRewards uint64
}

func (s *Stake) Encode() []byte {
	index := s.RewardsIndex.Bytes()
	return layout.NewWriter(StakeSize).
		Header(ore.AccountStake).
		Key(s.Authority).
		U64(s.Balance).
		U64(s.Rewards).
		Bytes(index[:]).
		I64(s.LastClaimAt).
		I64(s.LastDepositAt).
		I64(s.LastWithdrawAt).
		U64(s.LifetimeRewards).
		Finish()
}

func DecodeStake(b []byte) (*Stake, error) {
	r, err := open(b, StakeSize, ore.AccountStake)
	if err != nil {
		return nil, err
	}
	s := &Stake{
		Authority: r.Key(),
		Balance:   r.U64(),
		Rewards:   r.U64(),
	}
	s.RewardsIndex = accrual.FromBytes([accrual.Size]byte(r.Bytes(accrual.Size)))
	s.LastClaimAt = r.I64()
	s.LastDepositAt = r.I64()
	s.LastWithdrawAt = r.I64()
	s.LifetimeRewards = r.U64()
	return s, nil
}

// Reconcile credits the yield accrued since the position was last synced
// and copies the current index into it.
func (s *Stake) Reconcile(current accrual.Index) uint64 {
	owed := accrual.Owed(s.Balance, current, s.RewardsIndex)
	s.Rewards = ore.SatAdd(s.Rewards, owed)
	s.LifetimeRewards = ore.SatAdd(s.LifetimeRewards, owed)
	s.RewardsIndex = current
	return owed
}

// LpPool records the liquidity pool of a base mint.
type LpPool struct {
	BaseMint  solana.PublicKey
	QuoteMint solana.PublicKey
	Authority solana.PublicKey
	Bump      uint8
}

func (p *LpPool) Encode() []byte {
	return layout.NewWriter(LpPoolSize).
		Header(ore.AccountLpPool).
		Key(p.BaseMint).
		Key(p.QuoteMint).
		Key(p.Authority).
		U8(p.Bump).
		Skip(7).
		Finish()
}

func DecodeLpPool(b []byte) (*LpPool, error) {
	r, err := open(b, LpPoolSize, ore.AccountLpPool)
	if err != nil {
		return nil, err
	}
	return &LpPool{
		BaseMint:  r.Key(),
		QuoteMint: r.Key(),
		Authority: r.Key(),
		Bump:      r.U8(),
	}, nil
}

// open checks size and discriminator and returns a reader past the header.
func open(b []byte, size int, disc uint8) (*layout.Reader, error) {
	if len(b) != size {
		return nil, reverts.Newf(reverts.InvalidAccountData, "record of %d bytes, want %d", len(b), size)
	}
	r := layout.NewReader(b)
	if got := r.Header(); got != disc {
		return nil, reverts.Newf(reverts.InvalidAccountData, "discriminator %d, want %d", got, disc)
	}
	return r, nil
}
