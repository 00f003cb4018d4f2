// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Kind classifies why an operation was rejected. The numeric value is the
// error code reported to external callers and must stay stable.
type Kind uint32

const (
	AddressMismatch Kind = iota + 1
	AlreadyInitialized
	MissingAuthorization
	AssetMismatch
	AmountTooSmall
	InsufficientAccounts
	IncorrectAuthority
	InvalidInstructionData
	InsufficientFunds
	InvalidArgument
	InvalidAccountData
)

var kindNames = map[Kind]string{
	AddressMismatch:        "address mismatch",
	AlreadyInitialized:     "already initialized",
	MissingAuthorization:   "missing authorization",
	AssetMismatch:          "asset mismatch",
	AmountTooSmall:         "amount too small",
	InsufficientAccounts:   "insufficient accounts",
	IncorrectAuthority:     "incorrect authority",
	InvalidInstructionData: "invalid instruction data",
	InsufficientFunds:      "insufficient funds",
	InvalidArgument:        "invalid argument",
	InvalidAccountData:     "invalid account data",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint32(k))
}

// Error is a rejected operation. It carries exactly one Kind.
type Error struct {
	kind    Kind
	message string
}

func New(kind Kind, message string) *Error {
	return &Error{
		kind:    kind,
		message: message,
	}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	if e.message == "" {
		return e.kind.String()
	}
	return e.kind.String() + ": " + e.message
}

func (e *Error) Kind() Kind {
	return e.kind
}

// Code returns the 4-byte little-endian error code.
func (e *Error) Code() []byte {
	if e == nil {
		return nil
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(e.kind))
	return b[:]
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var re *Error
	if errors.As(err, &re) && re != nil {
		return re.kind, true
	}
	return 0, false
}

// IsKind reports whether err is a revert of the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func IsRevertErr(err any) bool {
	if err == nil {
		return false
	}
	e, ok := err.(error)
	if !ok {
		return false
	}
	_, ok = KindOf(e)
	return ok
}
