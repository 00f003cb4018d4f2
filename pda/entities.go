// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pda

import (
	"github.com/gagliardetto/solana-go"

	"github.com/oreprotocol/ore/ore"
)

// Config is the protocol config of the deployment for mint.
func (d *Deriver) Config(mint solana.PublicKey) (Derived, error) {
	return d.Derive(ore.ConfigSeed, mint[:])
}

// Treasury is the treasury of the deployment for mint.
func (d *Deriver) Treasury(mint solana.PublicKey) (Derived, error) {
	return d.Derive(ore.TreasurySeed, mint[:])
}

func (d *Deriver) Board(mint solana.PublicKey) (Derived, error) {
	return d.Derive(ore.BoardSeed, mint[:])
}

func (d *Deriver) Stake(mint, authority solana.PublicKey) (Derived, error) {
	return d.Derive(ore.StakeSeed, mint[:], authority[:])
}

// LpPool is keyed by the base mint only; there is at most one per base mint.
func (d *Deriver) LpPool(baseMint solana.PublicKey) (Derived, error) {
	return d.Derive(ore.LpPoolSeed, baseMint[:])
}

// Vault is content addressed by the hash of its schedule.
func (d *Deriver) Vault(beneficiary solana.PublicKey, scheduleHash [32]byte) (Derived, error) {
	return d.Derive(ore.VaultSeed, beneficiary[:], scheduleHash[:])
}
