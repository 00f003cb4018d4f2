// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ore

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/oreprotocol/ore/accrual"
)

// Event payloads are the event kind byte followed by the rlp encoded event.
const (
	EventBury uint8 = iota + 1
	EventStake
	EventReset
	EventInitialize
	EventSetAdmin
	EventLpPool
)

// BuryEvent is emitted by Bury.
type BuryEvent struct {
	Transferred          uint64
	Buried               uint64
	Shared               uint64
	NewCirculatingSupply uint64
	Index                [accrual.Size]byte
	Timestamp            uint64
}

// StakeEvent is emitted by Deposit, Withdraw and ClaimYield.
type StakeEvent struct {
	Op          uint8
	Authority   solana.PublicKey
	Amount      uint64
	Balance     uint64
	Rewards     uint64
	TotalStaked uint64
	Timestamp   uint64
}

// ResetEvent is emitted by Reset.
type ResetEvent struct {
	RoundID    uint64
	StartSlot  uint64
	EndSlot    uint64
	Minted     uint64
	Primary    uint64
	Motherlode uint64
	TopMiner   solana.PublicKey
	Timestamp  uint64
}

// InitializeEvent is emitted by Initialize.
type InitializeEvent struct {
	Mint           solana.PublicKey
	Admin          solana.PublicKey
	RewardPerRound uint64
	MaxSupply      uint64
	MotherlodeBps  uint64
	StakeBps       uint64
	Timestamp      uint64
}

// SetAdminEvent is emitted by SetAdmin.
type SetAdminEvent struct {
	Mint      solana.PublicKey
	Previous  solana.PublicKey
	Admin     solana.PublicKey
	Timestamp uint64
}

// LpPoolEvent is emitted by InitializeLpPool.
type LpPoolEvent struct {
	Pool      solana.PublicKey
	BaseMint  solana.PublicKey
	QuoteMint solana.PublicKey
	Authority solana.PublicKey
	Bump      uint8
	Timestamp uint64
}

func encodeEvent(kind uint8, ev any) ([]byte, error) {
	data, err := rlp.EncodeToBytes(ev)
	if err != nil {
		return nil, errors.Wrap(err, "encode event")
	}
	return append([]byte{kind}, data...), nil
}

// DecodeEvent parses an event payload emitted by the program.
func DecodeEvent(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, errors.New("empty event")
	}
	var ev any
	switch data[0] {
	case EventBury:
		ev = new(BuryEvent)
	case EventStake:
		ev = new(StakeEvent)
	case EventReset:
		ev = new(ResetEvent)
	case EventInitialize:
		ev = new(InitializeEvent)
	case EventSetAdmin:
		ev = new(SetAdminEvent)
	case EventLpPool:
		ev = new(LpPoolEvent)
	default:
		return nil, errors.Errorf("unknown event kind %d", data[0])
	}
	if err := rlp.DecodeBytes(data[1:], ev); err != nil {
		return nil, errors.Wrap(err, "decode event")
	}
	return ev, nil
}
