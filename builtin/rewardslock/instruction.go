// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rewardslock

import (
	"github.com/gagliardetto/solana-go"

	"github.com/oreprotocol/ore/builtin/reverts"
	"github.com/oreprotocol/ore/layout"
	"github.com/oreprotocol/ore/schedule"
)

// Instruction discriminators.
const (
	OpInitializeVault uint8 = iota
	OpClaim
)

// Instruction is a decoded instruction payload.
type Instruction interface {
	Encode() []byte
}

// InitializeVault opens the vault of beneficiary for schedule.
type InitializeVault struct {
	Beneficiary solana.PublicKey
	Schedule    schedule.Schedule
}

func (i InitializeVault) Encode() []byte {
	w := layout.NewWriter(1 + 32 + schedule.EncodedSize).
		U8(OpInitializeVault).
		Key(i.Beneficiary)
	return i.Schedule.Write(w).Finish()
}

// Claim releases what the vault has vested so far.
type Claim struct{}

func (Claim) Encode() []byte { return []byte{OpClaim} }

// DecodeInstruction parses a payload.
func DecodeInstruction(data []byte) (Instruction, error) {
	r := layout.NewReader(data)
	var ins Instruction
	switch op := r.U8(); {
	case r.Err() != nil:
		return nil, reverts.New(reverts.InvalidInstructionData, "empty payload")
	case op == OpInitializeVault:
		ins = InitializeVault{Beneficiary: r.Key(), Schedule: schedule.Read(r)}
	case op == OpClaim:
		ins = Claim{}
	default:
		return nil, reverts.Newf(reverts.InvalidInstructionData, "unknown instruction %d", op)
	}
	if err := r.Done(); err != nil {
		return nil, reverts.Newf(reverts.InvalidInstructionData, "%v", err)
	}
	return ins, nil
}
