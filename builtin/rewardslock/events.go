// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rewardslock

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/oreprotocol/ore/ledger"
)

// Event payloads are the event kind byte followed by the rlp encoded event.
const (
	EventVaultInitialized uint8 = iota + 1
	EventClaim
)

// VaultInitializedEvent is emitted by InitializeVault.
type VaultInitializedEvent struct {
	Vault       solana.PublicKey
	Beneficiary solana.PublicKey
	Total       uint64
	Bump        uint8
	Timestamp   uint64
}

// ClaimEvent is emitted by Claim.
type ClaimEvent struct {
	Vault       solana.PublicKey
	Beneficiary solana.PublicKey
	Amount      uint64
	Claimed     uint64
	Timestamp   uint64
}

func emit(tx *ledger.Tx, kind uint8, ev any) error {
	data, err := rlp.EncodeToBytes(ev)
	if err != nil {
		return errors.Wrap(err, "encode event")
	}
	tx.Emit(append([]byte{kind}, data...))
	return nil
}

// DecodeEvent parses an event payload emitted by the program.
func DecodeEvent(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, errors.New("empty event")
	}
	var ev any
	switch data[0] {
	case EventVaultInitialized:
		ev = new(VaultInitializedEvent)
	case EventClaim:
		ev = new(ClaimEvent)
	default:
		return nil, errors.Errorf("unknown event kind %d", data[0])
	}
	if err := rlp.DecodeBytes(data[1:], ev); err != nil {
		return nil, errors.Wrap(err, "decode event")
	}
	return ev, nil
}
