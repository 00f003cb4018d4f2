// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package layout

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReader(t *testing.T) {
	k := solana.PublicKeyFromBytes(bytes.Repeat([]byte{7}, 32))
	b := NewWriter(1 + 1 + 8 + 8 + 32 + 3).
		U8(9).
		Bool(true).
		U64(1<<40 + 1).
		I64(-5).
		Key(k).
		Skip(3).
		Finish()

	assert.Equal(t, []byte{9, 1, 1, 0, 0, 0, 0, 1, 0, 0}, b[:10])

	r := NewReader(b)
	assert.Equal(t, uint8(9), r.U8())
	assert.True(t, r.Bool())
	assert.Equal(t, uint64(1<<40+1), r.U64())
	assert.Equal(t, int64(-5), r.I64())
	assert.Equal(t, k, r.Key())
	r.Skip(3)
	require.NoError(t, r.Done())
}

func TestReaderErrors(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	assert.Equal(t, uint64(0), r.U64())
	assert.ErrorIs(t, r.Err(), ErrShort)
	assert.Equal(t, uint8(0), r.U8())
	assert.ErrorIs(t, r.Done(), ErrShort)

	r = NewReader([]byte{2})
	r.Bool()
	assert.Error(t, r.Done())

	r = NewReader([]byte{1, 0})
	r.U8()
	assert.Error(t, r.Done())
}

func TestWriterPanicsOnShortLayout(t *testing.T) {
	assert.Panics(t, func() { NewWriter(9).U64(1).Finish() })
}
