// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package schedule computes linear, periodic release schedules with an
// optional cliff.
package schedule

import (
	"crypto/sha256"
	"math"

	"github.com/pkg/errors"

	"github.com/oreprotocol/ore/layout"
	"github.com/oreprotocol/ore/ore"
)

// EncodedSize is the size of the canonical schedule encoding.
const EncodedSize = 8 + 1 + 8 + 8 + 8 + 8

// Schedule releases ReleasePerPeriod every PeriodSeconds after Start, for
// PeriodCount periods. Nothing is released before the cliff, when set.
type Schedule struct {
	Start            int64
	HasCliff         bool
	Cliff            int64
	PeriodSeconds    int64
	ReleasePerPeriod uint64
	PeriodCount      uint64
}

// Total returns the amount released once the schedule has fully vested.
func (s Schedule) Total() uint64 {
	return ore.SatMul(s.ReleasePerPeriod, s.PeriodCount)
}

// Released returns the cumulative amount released at now.
// A non-positive period length unlocks the whole total at once.
func (s Schedule) Released(now int64) uint64 {
	if now < s.Start {
		return 0
	}
	if s.HasCliff && now < s.Cliff {
		return 0
	}
	if s.PeriodSeconds <= 0 {
		return s.Total()
	}
	elapsed := satSub(now, s.Start)
	periods := min(uint64(elapsed/s.PeriodSeconds), s.PeriodCount)
	return ore.SatMul(s.ReleasePerPeriod, periods)
}

// Claimable returns what is released at now but not yet claimed.
func (s Schedule) Claimable(now int64, claimed uint64) uint64 {
	released := s.Released(now)
	if claimed >= released {
		return 0
	}
	return released - claimed
}

// Encode returns the canonical encoding: fields in declaration order,
// fixed-width little endian, the cliff as a flag byte followed by its value
// (zero when unset).
func (s Schedule) Encode() []byte {
	return s.Write(layout.NewWriter(EncodedSize)).Finish()
}

// Write appends the canonical encoding to w.
func (s Schedule) Write(w *layout.Writer) *layout.Writer {
	var cliff int64
	if s.HasCliff {
		cliff = s.Cliff
	}
	return w.I64(s.Start).
		Bool(s.HasCliff).
		I64(cliff).
		I64(s.PeriodSeconds).
		U64(s.ReleasePerPeriod).
		U64(s.PeriodCount)
}

// Read consumes a canonical encoding from r. Errors stick to r.
func Read(r *layout.Reader) Schedule {
	s := Schedule{Start: r.I64(), HasCliff: r.Bool()}
	if cliff := r.I64(); s.HasCliff {
		s.Cliff = cliff
	}
	s.PeriodSeconds = r.I64()
	s.ReleasePerPeriod = r.U64()
	s.PeriodCount = r.U64()
	return s
}

// Decode parses a canonical encoding.
func Decode(b []byte) (Schedule, error) {
	r := layout.NewReader(b)
	s := Read(r)
	if err := r.Done(); err != nil {
		return Schedule{}, errors.Wrap(err, "schedule")
	}
	return s, nil
}

// Hash is the content hash the vault address is derived from:
// sha256 over the domain tag followed by the canonical encoding.
func (s Schedule) Hash() [32]byte {
	h := sha256.New()
	h.Write(ore.VaultScheduleSeed)
	h.Write(s.Encode())
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// satSub returns a-b for a >= b, saturating at MaxInt64.
func satSub(a, b int64) int64 {
	d := a - b
	if d < 0 {
		return math.MaxInt64
	}
	return d
}
