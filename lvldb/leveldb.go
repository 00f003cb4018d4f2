// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package lvldb implements kv.Store on goleveldb. The ledger keeps accounts
// and its event log here.
package lvldb

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/oreprotocol/ore/kv"
	"github.com/oreprotocol/ore/metrics"
)

var _ kv.StoreCloser = (*LevelDB)(nil)

var (
	metricBatchWrites = metrics.LazyLoadCounterVec("lvldb_batch_writes_count", []string{"result"})
	metricBatchOps    = metrics.LazyLoadHistogram("lvldb_batch_ops", []int64{1, 2, 4, 8, 16, 32, 64})
)

const minCacheMiB = 16

// Options tune a persistent store. Zero values pick small defaults.
type Options struct {
	// CacheSize in MiB, split between the block cache and the write buffer.
	CacheSize              int
	OpenFilesCacheCapacity int
	// NoSync skips fsync on writes. A crash may lose the latest operations
	// but never tears a batch.
	NoSync bool
}

// LevelDB is a kv.Store backed by goleveldb.
type LevelDB struct {
	db       *leveldb.DB
	writeOpt *opt.WriteOptions
}

// New opens the store at path, creating it when missing.
func New(path string, opts Options) (*LevelDB, error) {
	stg, err := storage.OpenFile(path, false)
	if err != nil {
		return nil, errors.Wrapf(err, "open level db storage %s", path)
	}
	return open(stg, opts)
}

// NewMem opens an empty store held in memory.
func NewMem() (*LevelDB, error) {
	return open(storage.NewMemStorage(), Options{NoSync: true})
}

func open(stg storage.Storage, opts Options) (*LevelDB, error) {
	cacheSize := max(opts.CacheSize, minCacheMiB)
	db, err := leveldb.Open(stg, &opt.Options{
		OpenFilesCacheCapacity: max(opts.OpenFilesCacheCapacity, 16),
		BlockCacheCapacity:     cacheSize / 2 * opt.MiB,
		WriteBuffer:            cacheSize / 4 * opt.MiB,
		Filter:                 filter.NewBloomFilter(10),
	})
	if err != nil {
		stg.Close()
		return nil, errors.Wrap(err, "open level db")
	}
	return &LevelDB{db: db, writeOpt: &opt.WriteOptions{Sync: !opts.NoSync}}, nil
}

// IsNotFound reports whether err is the missing key error of Get.
func (ldb *LevelDB) IsNotFound(err error) bool {
	return errors.Is(err, leveldb.ErrNotFound)
}

func (ldb *LevelDB) Get(key []byte) ([]byte, error) {
	return ldb.db.Get(key, nil)
}

func (ldb *LevelDB) Has(key []byte) (bool, error) {
	return ldb.db.Has(key, nil)
}

func (ldb *LevelDB) Put(key, value []byte) error {
	return ldb.db.Put(key, value, ldb.writeOpt)
}

func (ldb *LevelDB) Delete(key []byte) error {
	return ldb.db.Delete(key, ldb.writeOpt)
}

// Close releases the store. Later calls fail.
func (ldb *LevelDB) Close() error {
	return ldb.db.Close()
}

// NewBatch starts a batch applied atomically by Write.
func (ldb *LevelDB) NewBatch() kv.Batch {
	return &batch{ldb: ldb, b: new(leveldb.Batch)}
}

// Iterate visits r in key order. Pairs passed to fn are copies.
func (ldb *LevelDB) Iterate(r kv.Range, fn func(kv.Pair) bool) error {
	it := ldb.db.NewIterator(&util.Range{Start: r.From, Limit: r.To}, nil)
	defer it.Release()
	for it.Next() {
		if !fn(kv.Pair{Key: bytes.Clone(it.Key()), Value: bytes.Clone(it.Value())}) {
			break
		}
	}
	return it.Error()
}

type batch struct {
	ldb *LevelDB
	b   *leveldb.Batch
}

func (b *batch) Put(key, value []byte) error {
	b.b.Put(key, value)
	return nil
}

func (b *batch) Delete(key []byte) error {
	b.b.Delete(key)
	return nil
}

func (b *batch) Len() int {
	return b.b.Len()
}

func (b *batch) Write() error {
	metricBatchOps().Observe(int64(b.b.Len()))
	if err := b.ldb.db.Write(b.b, b.ldb.writeOpt); err != nil {
		metricBatchWrites().AddWithLabel(1, map[string]string{"result": "failed"})
		return errors.Wrap(err, "write batch")
	}
	metricBatchWrites().AddWithLabel(1, map[string]string{"result": "ok"})
	return nil
}
