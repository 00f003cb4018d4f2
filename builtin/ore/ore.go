// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package ore implements the protocol program: configuration, staking,
// burying with yield sharing and round resets.
package ore

import (
	"github.com/gagliardetto/solana-go"

	"github.com/oreprotocol/ore/builtin/reverts"
	"github.com/oreprotocol/ore/ledger"
	"github.com/oreprotocol/ore/log"
	"github.com/oreprotocol/ore/metrics"
	"github.com/oreprotocol/ore/pda"
)

var (
	logger = log.WithContext("pkg", "ore")

	metricOps         = metrics.LazyLoadCounterVec("ops_count", []string{"op", "result"})
	metricTotalBuried = metrics.LazyLoadGauge("treasury_total_buried")
	metricTotalShared = metrics.LazyLoadGauge("treasury_total_shared")
	metricTotalStaked = metrics.LazyLoadGauge("treasury_total_staked")
)

// Program is the protocol program deployed at one program id.
type Program struct {
	id  solana.PublicKey
	pda *pda.Deriver
}

// New creates the program for the given id.
func New(id solana.PublicKey) *Program {
	return &Program{id: id, pda: pda.New(id)}
}

func (p *Program) ID() solana.PublicKey {
	return p.id
}

// Deriver derives the program's accounts.
func (p *Program) Deriver() *pda.Deriver {
	return p.pda
}

// Execute decodes data and runs the instruction against accounts inside
// tx. tx must be executing this program.
func (p *Program) Execute(tx *ledger.Tx, accounts []solana.PublicKey, data []byte) (err error) {
	ins, err := DecodeInstruction(data)
	if err != nil {
		metricOps().AddWithLabel(1, map[string]string{"op": "unknown", "result": "rejected"})
		return err
	}
	defer func() {
		result := "ok"
		if err != nil {
			result = "rejected"
		}
		metricOps().AddWithLabel(1, map[string]string{"op": ins.Op().String(), "result": result})
	}()

	if !tx.Program().Equals(p.id) {
		return reverts.Newf(reverts.IncorrectAuthority, "executing %s, not %s", tx.Program(), p.id)
	}

	switch ins := ins.(type) {
	case Initialize:
		return p.initialize(tx, accounts, ins)
	case Bury:
		return p.bury(tx, accounts, ins)
	case Deposit:
		return p.deposit(tx, accounts, ins)
	case Withdraw:
		return p.withdraw(tx, accounts, ins)
	case ClaimYield:
		return p.claimYield(tx, accounts, ins)
	case Reset:
		return p.reset(tx, accounts)
	case SetAdmin:
		return p.setAdmin(tx, accounts, ins)
	case InitializeLpPool:
		return p.initializeLpPool(tx, accounts, ins)
	default:
		return reverts.Newf(reverts.InvalidInstructionData, "unhandled instruction %s", ins.Op())
	}
}

// Process runs one instruction as an atomic ledger operation.
func (p *Program) Process(l *ledger.Ledger, signers, accounts []solana.PublicKey, ins Instruction) error {
	data := ins.Encode()
	return l.Execute(p.id, signers, func(tx *ledger.Tx) error {
		return p.Execute(tx, accounts, data)
	})
}
