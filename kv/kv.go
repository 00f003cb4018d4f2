// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv

// Getter defines methods to read kv.
type Getter interface {
	// Get returns the value of key.
	// An error is returned if key is not found; check it via IsNotFound.
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	IsNotFound(err error) bool
}

// Putter defines methods to write kv.
type Putter interface {
	Put(key, val []byte) error
	Delete(key []byte) error
}

// Batch collects writes applied atomically by Write.
type Batch interface {
	Putter
	Len() int
	Write() error
}

// Range is the key range [From, To). A nil bound is unbounded.
type Range struct {
	From []byte
	To   []byte
}

// Pair is a kv pair visited by Iterate.
type Pair struct {
	Key   []byte
	Value []byte
}

// Store is a kv store with atomic batches and ordered iteration.
type Store interface {
	Getter
	Putter
	NewBatch() Batch
	// Iterate visits pairs in key order until fn returns false.
	Iterate(r Range, fn func(Pair) bool) error
}

// StoreCloser is a Store holding resources.
type StoreCloser interface {
	Store
	Close() error
}

// Bucket prefixes every key with its name.
type Bucket string

func (b Bucket) Key(key []byte) []byte {
	k := make([]byte, 0, len(b)+len(key))
	k = append(k, b...)
	return append(k, key...)
}

// Range returns the range covering every key in the bucket.
func (b Bucket) Range() Range {
	to := []byte(b)
	to[len(to)-1]++ // bucket names are ascii
	return Range{From: []byte(b), To: to}
}
