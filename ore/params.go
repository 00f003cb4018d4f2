// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ore

// Constants of the protocol.
const (
	DenominatorBPS uint64 = 10_000 // basis points denominator.

	TokenDecimals uint8 = 11

	// RoundSlots is the length of a mining round in slots.
	RoundSlots uint64 = 150

	// ONE is one whole token in base units.
	ONE uint64 = 100_000_000_000
)

// Seed tags used to derive protocol accounts.
var (
	BoardSeed         = []byte("board")
	ConfigSeed        = []byte("config")
	StakeSeed         = []byte("stake")
	TreasurySeed      = []byte("treasury")
	LpPoolSeed        = []byte("lp_pool")
	VaultSeed         = []byte("vault")
	VaultScheduleSeed = []byte("vault_schedule")
)

// Account discriminators, stored in the first byte of every record.
const (
	AccountConfig   uint8 = 101
	AccountTreasury uint8 = 104
	AccountBoard    uint8 = 105
	AccountStake    uint8 = 108
	AccountLpPool   uint8 = 110

	AccountVault uint8 = 1
)

// RecordHeaderSize is the size of the discriminator header preceding every record.
const RecordHeaderSize = 8
