// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ore

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/oreprotocol/ore/builtin/reverts"
	"github.com/oreprotocol/ore/layout"
)

// Op is the instruction discriminator, the first byte of every payload.
type Op uint8

const (
	OpInitialize Op = iota + 1
	OpBury
	OpDeposit
	OpWithdraw
	OpClaimYield
	OpReset
	OpSetAdmin
	OpInitializeLpPool
)

var opNames = map[Op]string{
	OpInitialize:       "initialize",
	OpBury:             "bury",
	OpDeposit:          "deposit",
	OpWithdraw:         "withdraw",
	OpClaimYield:       "claim_yield",
	OpReset:            "reset",
	OpSetAdmin:         "set_admin",
	OpInitializeLpPool: "initialize_lp_pool",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// Instruction is a decoded instruction payload.
type Instruction interface {
	Op() Op
	Encode() []byte
}

type Initialize struct {
	RewardPerRound uint64
	MaxSupply      uint64
	MotherlodeBps  uint64
	StakeBps       uint64
}

func (Initialize) Op() Op { return OpInitialize }

func (i Initialize) Encode() []byte {
	return layout.NewWriter(1 + 8*4).
		U8(uint8(OpInitialize)).
		U64(i.RewardPerRound).
		U64(i.MaxSupply).
		U64(i.MotherlodeBps).
		U64(i.StakeBps).
		Finish()
}

type Bury struct{ Amount uint64 }

func (Bury) Op() Op           { return OpBury }
func (b Bury) Encode() []byte { return encodeAmount(OpBury, b.Amount) }

type Deposit struct{ Amount uint64 }

func (Deposit) Op() Op           { return OpDeposit }
func (d Deposit) Encode() []byte { return encodeAmount(OpDeposit, d.Amount) }

type Withdraw struct{ Amount uint64 }

func (Withdraw) Op() Op           { return OpWithdraw }
func (w Withdraw) Encode() []byte { return encodeAmount(OpWithdraw, w.Amount) }

type ClaimYield struct{ Amount uint64 }

func (ClaimYield) Op() Op           { return OpClaimYield }
func (c ClaimYield) Encode() []byte { return encodeAmount(OpClaimYield, c.Amount) }

type Reset struct{}

func (Reset) Op() Op         { return OpReset }
func (Reset) Encode() []byte { return []byte{uint8(OpReset)} }

type SetAdmin struct{ Admin solana.PublicKey }

func (SetAdmin) Op() Op { return OpSetAdmin }

func (s SetAdmin) Encode() []byte {
	return layout.NewWriter(1 + 32).U8(uint8(OpSetAdmin)).Key(s.Admin).Finish()
}

type InitializeLpPool struct {
	BaseMint  solana.PublicKey
	QuoteMint solana.PublicKey
}

func (InitializeLpPool) Op() Op { return OpInitializeLpPool }

func (i InitializeLpPool) Encode() []byte {
	return layout.NewWriter(1 + 64).
		U8(uint8(OpInitializeLpPool)).
		Key(i.BaseMint).
		Key(i.QuoteMint).
		Finish()
}

func encodeAmount(op Op, amount uint64) []byte {
	return layout.NewWriter(1 + 8).U8(uint8(op)).U64(amount).Finish()
}

// DecodeInstruction parses a payload. Unknown discriminators and payloads
// of the wrong length are rejected with InvalidInstructionData.
func DecodeInstruction(data []byte) (Instruction, error) {
	r := layout.NewReader(data)
	op := Op(r.U8())

	var ins Instruction
	switch op {
	case OpInitialize:
		ins = Initialize{
			RewardPerRound: r.U64(),
			MaxSupply:      r.U64(),
			MotherlodeBps:  r.U64(),
			StakeBps:       r.U64(),
		}
	case OpBury:
		ins = Bury{Amount: r.U64()}
	case OpDeposit:
		ins = Deposit{Amount: r.U64()}
	case OpWithdraw:
		ins = Withdraw{Amount: r.U64()}
	case OpClaimYield:
		ins = ClaimYield{Amount: r.U64()}
	case OpReset:
		ins = Reset{}
	case OpSetAdmin:
		ins = SetAdmin{Admin: r.Key()}
	case OpInitializeLpPool:
		ins = InitializeLpPool{BaseMint: r.Key(), QuoteMint: r.Key()}
	default:
		return nil, reverts.Newf(reverts.InvalidInstructionData, "unknown instruction %d", uint8(op))
	}
	if err := r.Done(); err != nil {
		return nil, reverts.Newf(reverts.InvalidInstructionData, "%s: %v", op, err)
	}
	return ins, nil
}
