// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"bytes"

	"github.com/gagliardetto/solana-go"

	"github.com/oreprotocol/ore/builtin/reverts"
	"github.com/oreprotocol/ore/pda"
)

// Tx is the view of the ledger during one operation. Reads see the
// operation's own writes; nothing is visible to others until commit.
type Tx struct {
	ledger  *Ledger
	program solana.PublicKey
	clock   Clock
	signers map[solana.PublicKey]bool
	staged  map[solana.PublicKey]*Account
	events  []*Event
}

func newTx(l *Ledger, program solana.PublicKey, signers []solana.PublicKey) *Tx {
	tx := &Tx{
		ledger:  l,
		program: program,
		clock:   l.Clock(),
		signers: make(map[solana.PublicKey]bool, len(signers)),
		staged:  make(map[solana.PublicKey]*Account),
	}
	for _, s := range signers {
		tx.signers[s] = true
	}
	return tx
}

// Program is the program executing the operation.
func (tx *Tx) Program() solana.PublicKey {
	return tx.program
}

// Clock is fixed for the duration of the operation.
func (tx *Tx) Clock() Clock {
	return tx.clock
}

func (tx *Tx) MinimumBalance(size int) uint64 {
	return tx.ledger.MinimumBalance(size)
}

func (tx *Tx) IsSigner(addr solana.PublicKey) bool {
	return tx.signers[addr]
}

// Signer returns the authority of a party that signed the operation.
func (tx *Tx) Signer(addr solana.PublicKey) (Authority, error) {
	if !tx.signers[addr] {
		return Authority{}, reverts.Newf(reverts.MissingAuthorization, "%s did not sign", addr)
	}
	return Authority{address: addr}, nil
}

// Authorize lets the executing program act for a derived address it owns.
// The seed path must recompute to the address under the executing program.
func (tx *Tx) Authorize(d pda.Derived) (Authority, error) {
	if !d.Program.Equals(tx.program) {
		return Authority{}, reverts.Newf(reverts.IncorrectAuthority, "%s cannot sign for program %s", tx.program, d.Program)
	}
	addr, err := pda.CreateAddress(d.Program, d.SeedPath())
	if err != nil || !addr.Equals(d.Address) {
		return Authority{}, reverts.Newf(reverts.IncorrectAuthority, "seed path does not derive %s", d.Address)
	}
	return Authority{address: addr}, nil
}

// Account returns a copy of the account at addr.
func (tx *Tx) Account(addr solana.PublicKey) (*Account, error) {
	if acc, ok := tx.staged[addr]; ok {
		return acc.clone(), nil
	}
	return tx.ledger.Account(addr)
}

// Data returns the data of an account that must be owned by owner.
func (tx *Tx) Data(owner, addr solana.PublicKey) ([]byte, error) {
	acc, err := tx.Account(addr)
	if err != nil {
		return nil, err
	}
	if acc.IsEmpty() {
		return nil, reverts.Newf(reverts.InvalidAccountData, "account %s is not initialized", addr)
	}
	if !acc.Owner.Equals(owner) {
		return nil, reverts.Newf(reverts.IncorrectAuthority, "account %s is owned by %s, not %s", addr, acc.Owner, owner)
	}
	return acc.Data, nil
}

// SetData overwrites the data of an account owned by owner. The size of an
// account never changes after creation.
func (tx *Tx) SetData(owner, addr solana.PublicKey, data []byte) error {
	acc, err := tx.Account(addr)
	if err != nil {
		return err
	}
	if !acc.Owner.Equals(owner) {
		return reverts.Newf(reverts.IncorrectAuthority, "account %s is owned by %s, not %s", addr, acc.Owner, owner)
	}
	if len(acc.Data) != len(data) {
		return reverts.Newf(reverts.InvalidArgument, "account %s holds %d bytes, got %d", addr, len(acc.Data), len(data))
	}
	acc.Data = bytes.Clone(data)
	tx.put(addr, acc)
	return nil
}

// CreateAccount allocates size zeroed bytes at address, assigns it to owner
// and funds it with the storage deposit taken from payer. A derived address
// is authorized by its seed path (seeds non-nil); any other address must
// have signed.
func (tx *Tx) CreateAccount(payer, address solana.PublicKey, size int, owner solana.PublicKey, seeds *pda.Derived) error {
	if !tx.signers[payer] {
		return reverts.Newf(reverts.MissingAuthorization, "payer %s did not sign", payer)
	}
	if seeds == nil {
		if !tx.signers[address] {
			return reverts.Newf(reverts.MissingAuthorization, "new account %s did not sign", address)
		}
	} else {
		// associated token accounts are derived by the ATA program on behalf of the caller
		if !seeds.Program.Equals(tx.program) && !seeds.Program.Equals(solana.SPLAssociatedTokenAccountProgramID) {
			return reverts.Newf(reverts.IncorrectAuthority, "%s cannot create an address of program %s", tx.program, seeds.Program)
		}
		addr, err := pda.CreateAddress(seeds.Program, seeds.SeedPath())
		if err != nil || !addr.Equals(address) {
			return reverts.Newf(reverts.AddressMismatch, "seed path does not derive %s", address)
		}
	}

	acc, err := tx.Account(address)
	if err != nil {
		return err
	}
	if !acc.IsEmpty() || !acc.Owner.Equals(solana.SystemProgramID) {
		return reverts.Newf(reverts.AlreadyInitialized, "account %s already in use", address)
	}

	// a prefunded address only needs the difference
	deposit := tx.MinimumBalance(size)
	var due uint64
	if acc.Lamports < deposit {
		due = deposit - acc.Lamports
	}
	if address.Equals(payer) {
		return reverts.New(reverts.InvalidArgument, "payer cannot fund itself")
	}
	payerAcc, err := tx.Account(payer)
	if err != nil {
		return err
	}
	if payerAcc.Lamports < due {
		return reverts.Newf(reverts.InsufficientFunds, "payer holds %d lamports, needs %d", payerAcc.Lamports, due)
	}
	payerAcc.Lamports -= due
	tx.put(payer, payerAcc)

	acc.Owner = owner
	acc.Lamports += due
	acc.Data = make([]byte, size)
	tx.put(address, acc)
	return nil
}

// Emit appends data to the event log on behalf of the executing program.
func (tx *Tx) Emit(data []byte) {
	tx.events = append(tx.events, &Event{
		Program:   tx.program,
		Slot:      tx.clock.Slot,
		Timestamp: uint64(max(tx.clock.UnixTimestamp, 0)),
		Data:      bytes.Clone(data),
	})
}

func (tx *Tx) put(addr solana.PublicKey, acc *Account) {
	tx.staged[addr] = acc
}
