// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oreprotocol/ore/builtin/reverts"
)

func TestInstructionWireFormat(t *testing.T) {
	assert.Equal(t, []byte{byte(OpBury), 0xe8, 0x03, 0, 0, 0, 0, 0, 0}, Bury{Amount: 1_000}.Encode())
	assert.Equal(t, []byte{byte(OpReset)}, Reset{}.Encode())

	for _, ins := range []Instruction{
		defaultArgs,
		Bury{Amount: 1},
		Deposit{Amount: 2},
		Withdraw{Amount: 3},
		ClaimYield{Amount: 4},
		Reset{},
		SetAdmin{Admin: key(5)},
		InitializeLpPool{BaseMint: key(6), QuoteMint: key(7)},
	} {
		got, err := DecodeInstruction(ins.Encode())
		require.NoError(t, err, ins.Op().String())
		assert.Equal(t, ins, got)
	}
}

func TestDecodeInstructionRejects(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		{0},
		{byte(OpBury), 1, 2, 3},
		append(Bury{Amount: 1}.Encode(), 0),
		{byte(OpInitializeLpPool + 1)},
	} {
		_, err := DecodeInstruction(data)
		assert.True(t, reverts.IsKind(err, reverts.InvalidInstructionData), "%x", data)
	}
}
