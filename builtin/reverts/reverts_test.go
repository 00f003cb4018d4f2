// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestReverts(t *testing.T) {
	revert := New(AddressMismatch, "stake")
	assert.Equal(t, "address mismatch: stake", revert.Error())
	assert.Equal(t, AddressMismatch, revert.Kind())
	assert.Equal(t, []byte{1, 0, 0, 0}, revert.Code())

	assert.True(t, IsRevertErr(revert))
	assert.False(t, IsRevertErr(nil))
	assert.False(t, IsRevertErr(fmt.Errorf("test")))
	assert.False(t, IsRevertErr(big.NewInt(0)))
}

func TestKindOfWrapped(t *testing.T) {
	err := errors.Wrap(Newf(InsufficientFunds, "need %d", 5), "withdraw")

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, InsufficientFunds, kind)
	assert.True(t, IsKind(err, InsufficientFunds))
	assert.False(t, IsKind(err, AmountTooSmall))

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "incorrect authority", IncorrectAuthority.String())
	assert.Equal(t, "unknown(99)", Kind(99).String())
	assert.Equal(t, "already initialized", New(AlreadyInitialized, "").Error())
}
