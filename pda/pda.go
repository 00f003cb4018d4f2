// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package pda derives program addresses: account addresses computed from a
// program id and public seeds that no private key can sign for.
package pda

import (
	"bytes"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/oreprotocol/ore/builtin/reverts"
	"github.com/oreprotocol/ore/cache"
)

const defaultCacheSize = 4096

var (
	ErrTooManySeeds = errors.New("too many seeds")
	ErrSeedTooLong  = errors.New("seed exceeds max seed length")
	ErrNoViableBump = errors.New("no viable bump")
)

// Derived is a derived address together with the seed path that produced it.
// The seed path doubles as the program's signing capability for the address.
type Derived struct {
	Program solana.PublicKey
	Seeds   [][]byte
	Address solana.PublicKey
	Bump    uint8
}

// SeedPath returns the seeds followed by the bump seed.
func (d Derived) SeedPath() [][]byte {
	path := make([][]byte, 0, len(d.Seeds)+1)
	path = append(path, d.Seeds...)
	return append(path, []byte{d.Bump})
}

// Deriver derives addresses owned by one program.
type Deriver struct {
	program solana.PublicKey
	cache   *cache.LRU[string, Derived]
}

// New creates a deriver for the given program id.
func New(program solana.PublicKey) *Deriver {
	c, err := cache.NewLRU[string, Derived](defaultCacheSize)
	if err != nil {
		panic(err) // size is a positive constant
	}
	return &Deriver{program: program, cache: c}
}

func (d *Deriver) Program() solana.PublicKey {
	return d.program
}

// Derive returns the address for tag and seeds, and the smallest bump seed
// for which the address falls off the ed25519 curve.
func (d *Deriver) Derive(tag []byte, seeds ...[]byte) (Derived, error) {
	all := make([][]byte, 0, len(seeds)+1)
	all = append(all, tag)
	all = append(all, seeds...)

	if err := checkSeeds(all); err != nil {
		return Derived{}, err
	}
	derived, err := d.cache.GetOrLoad(cacheKey(d.program, all), func(string) (Derived, error) {
		return find(d.program, cloneSeeds(all))
	})
	if err != nil {
		return Derived{}, err
	}
	// cached seeds are shared; callers get their own
	derived.Seeds = cloneSeeds(derived.Seeds)
	return derived, nil
}

// Verify recomputes the address for tag and seeds and rejects with
// AddressMismatch when supplied differs.
func (d *Deriver) Verify(supplied solana.PublicKey, tag []byte, seeds ...[]byte) (Derived, error) {
	derived, err := d.Derive(tag, seeds...)
	if err != nil {
		return Derived{}, err
	}
	if !derived.Address.Equals(supplied) {
		return Derived{}, reverts.Newf(reverts.AddressMismatch, "%s: expected %s, got %s", tag, derived.Address, supplied)
	}
	return derived, nil
}

// CreateAddress recomputes the address for a full seed path, bump included.
func CreateAddress(program solana.PublicKey, seedPath [][]byte) (solana.PublicKey, error) {
	if err := checkSeeds(seedPath[:max(len(seedPath)-1, 0)]); err != nil {
		return solana.PublicKey{}, err
	}
	return solana.CreateProgramAddress(seedPath, program)
}

func find(program solana.PublicKey, seeds [][]byte) (Derived, error) {
	path := make([][]byte, len(seeds)+1)
	copy(path, seeds)
	for bump := 0; bump <= 255; bump++ {
		path[len(seeds)] = []byte{byte(bump)}
		addr, err := solana.CreateProgramAddress(path, program)
		if err != nil {
			continue // on curve
		}
		return Derived{
			Program: program,
			Seeds:   seeds,
			Address: addr,
			Bump:    uint8(bump),
		}, nil
	}
	return Derived{}, ErrNoViableBump
}

func cloneSeeds(seeds [][]byte) [][]byte {
	out := make([][]byte, len(seeds))
	for i, s := range seeds {
		out[i] = bytes.Clone(s)
	}
	return out
}

func checkSeeds(seeds [][]byte) error {
	// one slot is reserved for the bump
	if len(seeds)+1 > solana.MaxSeeds {
		return errors.Wrapf(ErrTooManySeeds, "%d seeds", len(seeds))
	}
	for i, s := range seeds {
		if len(s) > solana.MaxSeedLength {
			return errors.Wrapf(ErrSeedTooLong, "seed %d has %d bytes", i, len(s))
		}
	}
	return nil
}

func cacheKey(program solana.PublicKey, seeds [][]byte) string {
	var b bytes.Buffer
	b.Grow(32 + len(seeds)*33)
	b.Write(program[:])
	for _, s := range seeds {
		b.WriteByte(byte(len(s)))
		b.Write(s)
	}
	return b.String()
}
