// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaturating(t *testing.T) {
	assert.Equal(t, uint64(6), SatMul(2, 3))
	assert.Equal(t, uint64(math.MaxUint64), SatMul(math.MaxUint64, 2))
	assert.Equal(t, uint64(5), SatAdd(2, 3))
	assert.Equal(t, uint64(math.MaxUint64), SatAdd(math.MaxUint64, 1))
	assert.Equal(t, uint64(1), SatSub(3, 2))
	assert.Equal(t, uint64(0), SatSub(2, 3))
}

func TestBpsOf(t *testing.T) {
	assert.Equal(t, uint64(140), BpsOf(700, 2000))
	assert.Equal(t, uint64(258), BpsOf(777, 3333))
	assert.Equal(t, uint64(0), BpsOf(9, 1000))
	assert.Equal(t, uint64(math.MaxUint64/DenominatorBPS), BpsOf(math.MaxUint64, 5000))
}
