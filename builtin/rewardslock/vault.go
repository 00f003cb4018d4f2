// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rewardslock

import (
	"github.com/gagliardetto/solana-go"

	"github.com/oreprotocol/ore/builtin/reverts"
	"github.com/oreprotocol/ore/layout"
	"github.com/oreprotocol/ore/ore"
	"github.com/oreprotocol/ore/schedule"
)

// VaultSize is the encoded size of a Vault.
const VaultSize = ore.RecordHeaderSize + 32 + schedule.EncodedSize + 8 + 1

// Vault locks rewards of a beneficiary behind a release schedule.
type Vault struct {
	Beneficiary solana.PublicKey
	Schedule    schedule.Schedule
	Claimed     uint64
	Bump        uint8
}

// Claimable returns what the beneficiary may claim at now.
func (v *Vault) Claimable(now int64) uint64 {
	return v.Schedule.Claimable(now, v.Claimed)
}

// Claim marks everything claimable at now as claimed and returns it.
// A second call at the same now returns 0.
func (v *Vault) Claim(now int64) uint64 {
	amount := v.Claimable(now)
	v.Claimed = ore.SatAdd(v.Claimed, amount)
	return amount
}

func (v *Vault) Encode() []byte {
	w := layout.NewWriter(VaultSize).
		Header(ore.AccountVault).
		Key(v.Beneficiary)
	return v.Schedule.Write(w).
		U64(v.Claimed).
		U8(v.Bump).
		Finish()
}

func DecodeVault(b []byte) (*Vault, error) {
	if len(b) != VaultSize {
		return nil, reverts.Newf(reverts.InvalidAccountData, "vault of %d bytes, want %d", len(b), VaultSize)
	}
	r := layout.NewReader(b)
	if disc := r.Header(); disc != ore.AccountVault {
		return nil, reverts.Newf(reverts.InvalidAccountData, "discriminator %d, want %d", disc, ore.AccountVault)
	}
	v := &Vault{
		Beneficiary: r.Key(),
		Schedule:    schedule.Read(r),
		Claimed:     r.U64(),
		Bump:        r.U8(),
	}
	if err := r.Done(); err != nil {
		return nil, reverts.Newf(reverts.InvalidAccountData, "vault: %v", err)
	}
	return v, nil
}
