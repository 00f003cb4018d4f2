// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package rewardslock implements vesting vaults. A vault is content
// addressed: its address is derived from the beneficiary and the hash of
// its schedule, so one beneficiary holds at most one vault per schedule.
package rewardslock

import (
	"github.com/gagliardetto/solana-go"

	"github.com/oreprotocol/ore/builtin/reverts"
	"github.com/oreprotocol/ore/ledger"
	"github.com/oreprotocol/ore/log"
	"github.com/oreprotocol/ore/metrics"
	"github.com/oreprotocol/ore/pda"
	"github.com/oreprotocol/ore/schedule"
)

var (
	logger = log.WithContext("pkg", "rewardslock")

	metricOps     = metrics.LazyLoadCounterVec("rewardslock_ops_count", []string{"op", "result"})
	metricClaimed = metrics.LazyLoadCounter("rewardslock_claimed_total")
)

// Program is the rewards-lock program deployed at one program id.
type Program struct {
	id  solana.PublicKey
	pda *pda.Deriver
}

func New(id solana.PublicKey) *Program {
	return &Program{id: id, pda: pda.New(id)}
}

func (p *Program) ID() solana.PublicKey {
	return p.id
}

// VaultAddress derives the vault of beneficiary for s.
func (p *Program) VaultAddress(beneficiary solana.PublicKey, s schedule.Schedule) (pda.Derived, error) {
	return p.pda.Vault(beneficiary, s.Hash())
}

// Execute decodes data and runs the instruction inside tx.
func (p *Program) Execute(tx *ledger.Tx, accounts []solana.PublicKey, data []byte) (err error) {
	ins, err := DecodeInstruction(data)
	if err != nil {
		return err
	}
	op := "claim"
	if _, ok := ins.(InitializeVault); ok {
		op = "initialize_vault"
	}
	defer func() {
		result := "ok"
		if err != nil {
			result = "rejected"
		}
		metricOps().AddWithLabel(1, map[string]string{"op": op, "result": result})
	}()

	if !tx.Program().Equals(p.id) {
		return reverts.Newf(reverts.IncorrectAuthority, "executing %s, not %s", tx.Program(), p.id)
	}
	switch ins := ins.(type) {
	case InitializeVault:
		return p.InitializeVault(tx, accounts, ins)
	default:
		_, err := p.Claim(tx, accounts)
		return err
	}
}

// Process runs one instruction as an atomic ledger operation.
func (p *Program) Process(l *ledger.Ledger, signers, accounts []solana.PublicKey, ins Instruction) error {
	data := ins.Encode()
	return l.Execute(p.id, signers, func(tx *ledger.Tx) error {
		return p.Execute(tx, accounts, data)
	})
}

// InitializeVault creates the vault at its derived address, funded with
// the storage deposit by payer.
//
// Accounts: vault, payer, beneficiary, system.
func (p *Program) InitializeVault(tx *ledger.Tx, accounts []solana.PublicKey, args InitializeVault) error {
	if len(accounts) != 4 {
		return reverts.Newf(reverts.InsufficientAccounts, "want 4 accounts, got %d", len(accounts))
	}
	vaultAddr, payer, beneficiary, system := accounts[0], accounts[1], accounts[2], accounts[3]

	if !tx.IsSigner(payer) {
		return reverts.Newf(reverts.MissingAuthorization, "payer %s did not sign", payer)
	}
	if !system.Equals(solana.SystemProgramID) {
		return reverts.Newf(reverts.IncorrectAuthority, "program %s, want system", system)
	}
	if !beneficiary.Equals(args.Beneficiary) {
		return reverts.Newf(reverts.InvalidArgument, "beneficiary account %s does not match %s", beneficiary, args.Beneficiary)
	}
	d, err := p.VaultAddress(args.Beneficiary, args.Schedule)
	if err != nil {
		return err
	}
	if !d.Address.Equals(vaultAddr) {
		return reverts.Newf(reverts.AddressMismatch, "vault: expected %s, got %s", d.Address, vaultAddr)
	}
	acc, err := tx.Account(vaultAddr)
	if err != nil {
		return err
	}
	if !acc.IsEmpty() {
		return reverts.Newf(reverts.AlreadyInitialized, "vault %s exists", vaultAddr)
	}

	if err := tx.CreateAccount(payer, vaultAddr, VaultSize, p.id, &d); err != nil {
		return err
	}
	v := Vault{Beneficiary: args.Beneficiary, Schedule: args.Schedule, Bump: d.Bump}
	if err := tx.SetData(p.id, vaultAddr, v.Encode()); err != nil {
		return err
	}
	logger.Debug("vault initialized", "vault", vaultAddr, "beneficiary", args.Beneficiary, "total", args.Schedule.Total())
	return emit(tx, EventVaultInitialized, &VaultInitializedEvent{
		Vault:       vaultAddr,
		Beneficiary: args.Beneficiary,
		Total:       args.Schedule.Total(),
		Bump:        d.Bump,
		Timestamp:   uint64(max(tx.Clock().UnixTimestamp, 0)),
	})
}

// Claim advances the vault's claimed amount to everything released at the
// ledger's current time and returns the increase.
//
// Accounts: vault, beneficiary.
func (p *Program) Claim(tx *ledger.Tx, accounts []solana.PublicKey) (uint64, error) {
	if len(accounts) != 2 {
		return 0, reverts.Newf(reverts.InsufficientAccounts, "want 2 accounts, got %d", len(accounts))
	}
	vaultAddr, beneficiary := accounts[0], accounts[1]

	if _, err := tx.Signer(beneficiary); err != nil {
		return 0, err
	}
	data, err := tx.Data(p.id, vaultAddr)
	if err != nil {
		return 0, err
	}
	v, err := DecodeVault(data)
	if err != nil {
		return 0, err
	}
	if !v.Beneficiary.Equals(beneficiary) {
		return 0, reverts.Newf(reverts.IncorrectAuthority, "vault belongs to %s", v.Beneficiary)
	}
	d, err := p.VaultAddress(v.Beneficiary, v.Schedule)
	if err != nil {
		return 0, err
	}
	if !d.Address.Equals(vaultAddr) {
		return 0, reverts.Newf(reverts.AddressMismatch, "vault: expected %s, got %s", d.Address, vaultAddr)
	}

	now := tx.Clock().UnixTimestamp
	amount := v.Claim(now)
	if err := tx.SetData(p.id, vaultAddr, v.Encode()); err != nil {
		return 0, err
	}

	if err := emit(tx, EventClaim, &ClaimEvent{
		Vault:       vaultAddr,
		Beneficiary: beneficiary,
		Amount:      amount,
		Claimed:     v.Claimed,
		Timestamp:   uint64(max(now, 0)),
	}); err != nil {
		return 0, err
	}

	metricClaimed().Add(int64(min(amount, 1<<63-1)))
	logger.Debug("vault claimed", "vault", vaultAddr, "amount", amount, "claimed", v.Claimed)
	return amount, nil
}

// InitializeVaultAccounts lists the accounts of InitializeVault.
func (p *Program) InitializeVaultAccounts(payer, beneficiary solana.PublicKey, s schedule.Schedule) ([]solana.PublicKey, error) {
	d, err := p.VaultAddress(beneficiary, s)
	if err != nil {
		return nil, err
	}
	return []solana.PublicKey{d.Address, payer, beneficiary, solana.SystemProgramID}, nil
}
